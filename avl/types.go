// Package avl defines the Tree and Node types, the Item value contract,
// sentinel errors, and construction options for the iterative AVL engine.
package avl

import "errors"

// Sentinel errors for avl operations.
var (
	// ErrNilValue is returned when a nil Item is passed to Add, Remove,
	// Get, or Contains.
	ErrNilValue = errors.New("avl: value is nil")

	// ErrNilVisitor is returned when Walk is given a nil visit function.
	ErrNilVisitor = errors.New("avl: visit function is nil")

	// ErrUnknownOrder is returned when Walk is given an Order outside
	// the four defined traversal orders.
	ErrUnknownOrder = errors.New("avl: unknown traversal order")

	// ErrStopWalk stops a Walk early when returned from a visit
	// function. Walk filters it out and reports a clean stop.
	ErrStopWalk = errors.New("avl: walk stopped")
)

// Item is a single comparable value stored in the tree.
//
// Implementations must define a total order over their own type;
// comparing Items of different dynamic types may panic.
type Item interface {
	// Compare returns a negative number if the receiver orders before
	// than, zero if they are equal, and a positive number otherwise.
	Compare(than Item) int
}

// childKind marks the direction taken from an ancestor while walking
// from the root toward a target position.
type childKind uint8

const (
	childLeft childKind = iota
	childRight
)

// Node is a single tree node: one value, two owning child links, and
// cached height and balance factor.
//
// height obeys height = max(height(left), height(right)) + 1 with an
// absent child counting as -1, so a leaf has height 0. balance is
// height(left) - height(right) under the same convention. Both caches
// are refreshed bottom-up after every structural change.
type Node struct {
	value   Item
	left    *Node
	right   *Node
	height  int
	balance int
}

// Value returns the value stored at n.
func (n *Node) Value() Item { return n.value }

// Left returns the left child, or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, or nil.
func (n *Node) Right() *Node { return n.right }

// Height returns the cached height of the subtree rooted at n.
func (n *Node) Height() int { return n.height }

// BalanceFactor returns the cached balance factor of n.
func (n *Node) BalanceFactor() int { return n.balance }

// Tree is an AVL-balanced binary search tree of distinct Items.
//
// A Tree is not safe for concurrent use; guard it externally if it is
// shared between goroutines.
type Tree struct {
	root  *Node
	count int

	// Scratch ancestor-path buffers reused across mutations. Entries
	// are cleared after every replay so detached nodes are not
	// retained beyond the operation that removed them.
	parents []*Node
	kinds   []childKind
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithCapacity pre-sizes the internal ancestor-path scratch for a tree
// expected to grow to n elements, avoiding regrowth during the first
// mutations. Values <= 0 are ignored.
func WithCapacity(n int) Option {
	return func(t *Tree) {
		if n > 0 {
			t.parents = make([]*Node, n/2+1)
			t.kinds = make([]childKind, n/2+1)
		}
	}
}

// New creates an empty Tree with the given options.
// Complexity: O(1)
func New(opts ...Option) *Tree {
	t := &Tree{}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Size returns the number of stored elements.
// Complexity: O(1)
func (t *Tree) Size() int { return t.count }

// IsEmpty reports whether the tree holds no elements.
// Complexity: O(1)
func (t *Tree) IsEmpty() bool { return t.count == 0 }

// Height returns the cached height of the root, or -1 for an empty
// tree.
// Complexity: O(1)
func (t *Tree) Height() int {
	if t.root == nil {
		return -1
	}

	return t.root.height
}

// Clear discards the root and resets the count to zero without
// traversing the tree.
// Complexity: O(1)
func (t *Tree) Clear() {
	t.root = nil
	t.count = 0
}

// Root returns the root node for structural verification.
//
// Diagnostic accessor: production code must not depend on it; use
// Validate for invariant checking.
func (t *Tree) Root() *Node { return t.root }

// pathBuffers returns the ancestor-path scratch sized for the current
// tree. size/2+1 slots cover the deepest possible root-to-target walk
// in a tree that satisfies the AVL invariant, including the successor
// extension used by Remove.
func (t *Tree) pathBuffers() ([]*Node, []childKind) {
	bound := t.count/2 + 1
	if cap(t.parents) < bound {
		t.parents = make([]*Node, bound)
		t.kinds = make([]childKind, bound)
	}

	return t.parents[:bound], t.kinds[:bound]
}
