package avl

// Remove deletes v from the tree and returns the stored value, which
// may be Compare-equal but not identical to v.
//
// A value that is not present yields (nil, nil) and leaves the tree
// untouched. Returns ErrNilValue if v is nil.
// Complexity: O(log n)
func (t *Tree) Remove(v Item) (Item, error) {
	if v == nil {
		return nil, ErrNilValue
	}
	if t.root == nil {
		return nil, nil
	}

	// Walk to the target, recording the ancestors above it.
	parents, kinds := t.pathBuffers()
	depth := 0
	target := t.root
	for target != nil {
		c := v.Compare(target.value)
		if c == 0 {
			break
		}
		parents[depth] = target
		if c < 0 {
			kinds[depth] = childLeft
			target = target.left
		} else {
			kinds[depth] = childRight
			target = target.right
		}
		depth++
	}
	if target == nil {
		clear(parents[:depth])

		return nil, nil
	}

	removed := target.value

	switch {
	case target.left == nil && target.right == nil:
		// Leaf: detach from its recorded parent.
		t.relink(parents, kinds, depth, nil)
	case target.left == nil:
		// One child: splice the lone child into the target's slot.
		t.relink(parents, kinds, depth, target.right)
		target.right = nil
	case target.right == nil:
		t.relink(parents, kinds, depth, target.left)
		target.left = nil
	default:
		// Two children: overwrite the target's value with its in-order
		// successor, then detach the successor. The path keeps growing
		// during the descent so the replay covers the successor's
		// ancestors too.
		parents[depth] = target
		kinds[depth] = childRight
		depth++
		succ := target.right
		for succ.left != nil {
			parents[depth] = succ
			kinds[depth] = childLeft
			depth++
			succ = succ.left
		}
		target.value = succ.value

		// The successor holds at most a right child, so detaching it
		// is itself a leaf or one-child splice.
		if kinds[depth-1] == childLeft {
			parents[depth-1].left = succ.right
		} else {
			parents[depth-1].right = succ.right
		}
		succ.right = nil
	}

	t.replay(parents, kinds, depth)
	t.count--

	return removed, nil
}

// relink replaces the child slot that held the removed node with repl.
// A path of depth zero means the removed node was the root.
func (t *Tree) relink(parents []*Node, kinds []childKind, depth int, repl *Node) {
	if depth == 0 {
		t.root = repl

		return
	}
	if kinds[depth-1] == childLeft {
		parents[depth-1].left = repl
	} else {
		parents[depth-1].right = repl
	}
}
