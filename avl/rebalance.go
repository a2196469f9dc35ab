package avl

// update refreshes the cached balance factor and height of n from its
// current children. An absent child counts as height -1.
func (n *Node) update() {
	lh, rh := -1, -1
	if n.left != nil {
		lh = n.left.height
	}
	if n.right != nil {
		rh = n.right.height
	}
	n.balance = lh - rh
	if rh > lh {
		lh = rh
	}
	n.height = lh + 1
}

// rebalance restores the AVL invariant at target, whose metadata was
// just refreshed. parent and kind locate target's slot; a nil parent
// means target currently roots the tree. At most one outer rotation
// fires per call, optionally preceded by one inner rotation that
// straightens a left-right or right-left shape.
func (t *Tree) rebalance(target, parent *Node, kind childKind) {
	switch {
	case target.balance > 1:
		// Left-heavy. A right-heavy left child marks the left-right
		// case: rotate the child leftward around itself first.
		if target.left.balance < 0 {
			t.rotateLeft(target.left, target, childLeft)
		}
		t.rotateRight(target, parent, kind)
	case target.balance < -1:
		// Right-heavy, mirrored.
		if target.right.balance > 0 {
			t.rotateRight(target.right, target, childRight)
		}
		t.rotateLeft(target, parent, kind)
	}
}

// rotateRight rotates target clockwise around its left child and hands
// the pivot to parent in the given direction, or makes it the new tree
// root when parent is nil. No-op when target has no left child.
//
// Metadata refresh order matters: target first, then pivot, because the
// pivot's height now depends on target's.
func (t *Tree) rotateRight(target, parent *Node, kind childKind) {
	pivot := target.left
	if pivot == nil {
		return
	}

	target.left = pivot.right
	pivot.right = target

	switch {
	case parent == nil:
		t.root = pivot
	case kind == childLeft:
		parent.left = pivot
	default:
		parent.right = pivot
	}

	target.update()
	pivot.update()
}

// rotateLeft is the mirror of rotateRight: counterclockwise around
// target's right child.
func (t *Tree) rotateLeft(target, parent *Node, kind childKind) {
	pivot := target.right
	if pivot == nil {
		return
	}

	target.right = pivot.left
	pivot.left = target

	switch {
	case parent == nil:
		t.root = pivot
	case kind == childLeft:
		parent.left = pivot
	default:
		parent.right = pivot
	}

	target.update()
	pivot.update()
}
