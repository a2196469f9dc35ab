package avl

import (
	"errors"
	"fmt"
)

// Order selects the traversal sequence used by Walk.
type Order int

const (
	// PreOrder visits a node before its left and right subtrees.
	PreOrder Order = iota

	// InOrder visits the left subtree, the node, then the right
	// subtree, yielding values in ascending order.
	InOrder

	// PostOrder visits both subtrees before the node.
	PostOrder

	// LevelOrder visits nodes breadth-first, each level left to right.
	LevelOrder
)

// Walk traverses the tree in the given order, calling visit for every
// value. A non-nil error from visit aborts the walk and is returned
// wrapped; returning ErrStopWalk stops the walk early and Walk reports
// nil. The tree is never mutated.
// Complexity: O(n)
func (t *Tree) Walk(order Order, visit func(Item) error) error {
	if visit == nil {
		return ErrNilVisitor
	}

	var err error
	switch order {
	case PreOrder, InOrder, PostOrder:
		err = walkDepth(t.root, order, visit)
	case LevelOrder:
		err = walkLevel(t.root, t.count, visit)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownOrder, order)
	}
	if errors.Is(err, ErrStopWalk) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("avl: visit error: %w", err)
	}

	return nil
}

// walkDepth runs the three depth-first orders over the subtree at n.
func walkDepth(n *Node, order Order, visit func(Item) error) error {
	if n == nil {
		return nil
	}
	if order == PreOrder {
		if err := visit(n.value); err != nil {
			return err
		}
	}
	if err := walkDepth(n.left, order, visit); err != nil {
		return err
	}
	if order == InOrder {
		if err := visit(n.value); err != nil {
			return err
		}
	}
	if err := walkDepth(n.right, order, visit); err != nil {
		return err
	}
	if order == PostOrder {
		if err := visit(n.value); err != nil {
			return err
		}
	}

	return nil
}

// walkLevel runs the breadth-first order using a FIFO queue seeded with
// the root; every dequeued node is visited before its children are
// enqueued, left then right.
func walkLevel(root *Node, count int, visit func(Item) error) error {
	if root == nil {
		return nil
	}

	queue := make([]*Node, 0, count)
	queue = append(queue, root)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if err := visit(n.value); err != nil {
			return err
		}
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}

	return nil
}

// Preorder returns all values depth-first, each node before its
// subtrees; the root comes first.
// Complexity: O(n)
func (t *Tree) Preorder() []Item { return t.collect(PreOrder) }

// Inorder returns all values in ascending order.
// Complexity: O(n)
func (t *Tree) Inorder() []Item { return t.collect(InOrder) }

// Postorder returns all values depth-first, each node after its
// subtrees; the root comes last.
// Complexity: O(n)
func (t *Tree) Postorder() []Item { return t.collect(PostOrder) }

// Levelorder returns all values breadth-first, level by level.
// Complexity: O(n)
func (t *Tree) Levelorder() []Item { return t.collect(LevelOrder) }

// collect snapshots a full traversal into a fresh slice of length
// Size. The slice copies values, not node references.
func (t *Tree) collect(order Order) []Item {
	out := make([]Item, 0, t.count)
	_ = t.Walk(order, func(v Item) error {
		out = append(out, v)

		return nil
	})

	return out
}
