package avl

// Add inserts v into the tree, keeping it AVL-balanced.
//
// Duplicates are rejected silently: inserting a value that is already
// present leaves the tree and its size unchanged. Returns ErrNilValue
// if v is nil.
// Complexity: O(log n)
func (t *Tree) Add(v Item) error {
	if v == nil {
		return ErrNilValue
	}
	if t.root == nil {
		t.root = &Node{value: v}
		t.count = 1

		return nil
	}

	// Walk from the root to the attach position, recording every
	// visited ancestor and the direction taken from it.
	parents, kinds := t.pathBuffers()
	depth := 0
	cur := t.root
	for cur != nil {
		c := v.Compare(cur.value)
		if c == 0 {
			clear(parents[:depth])

			return nil // value already present
		}
		parents[depth] = cur
		if c < 0 {
			kinds[depth] = childLeft
			cur = cur.left
		} else {
			kinds[depth] = childRight
			cur = cur.right
		}
		depth++
	}

	// Attach the new leaf below the last recorded ancestor.
	leaf := &Node{value: v}
	if kinds[depth-1] == childLeft {
		parents[depth-1].left = leaf
	} else {
		parents[depth-1].right = leaf
	}

	t.replay(parents, kinds, depth)
	t.count++

	return nil
}

// replay walks the recorded ancestor path bottom-up: each ancestor has
// its cached metadata refreshed and is then rebalanced against its own
// parent. The root gets an explicit final pass, covering the case
// where the root itself went out of balance.
func (t *Tree) replay(parents []*Node, kinds []childKind, depth int) {
	for i := depth - 1; i > 0; i-- {
		n := parents[i]
		n.update()
		t.rebalance(n, parents[i-1], kinds[i-1])
	}
	clear(parents[:depth])

	if t.root == nil {
		return
	}
	t.root.update()
	t.rebalance(t.root, nil, childLeft)
}
