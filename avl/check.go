package avl

import (
	"errors"
	"fmt"
)

// Sentinel errors for structural verification.
var (
	// ErrOrderViolated indicates a value outside its BST bounds.
	ErrOrderViolated = errors.New("avl: BST ordering violated")

	// ErrHeightCacheStale indicates a cached height that disagrees with
	// the actual subtree heights.
	ErrHeightCacheStale = errors.New("avl: cached height mismatch")

	// ErrBalanceCacheStale indicates a cached balance factor that
	// disagrees with the actual subtree heights.
	ErrBalanceCacheStale = errors.New("avl: cached balance factor mismatch")

	// ErrUnbalanced indicates a balance factor of magnitude > 1.
	ErrUnbalanced = errors.New("avl: balance factor out of range")

	// ErrCountMismatch indicates the stored size disagrees with the
	// number of reachable nodes.
	ErrCountMismatch = errors.New("avl: node count mismatch")
)

// Validate walks the whole tree and verifies every structural
// invariant: strict BST ordering, cached heights, cached balance
// factors, the AVL bound, and the element count. It returns nil for a
// valid tree or an error naming the first violated property.
//
// Intended for tests and diagnostics; it visits every node.
// Complexity: O(n)
func (t *Tree) Validate() error {
	n, _, err := validate(t.root, nil, nil)
	if err != nil {
		return err
	}
	if n != t.count {
		return fmt.Errorf("%w: counted %d, recorded %d", ErrCountMismatch, n, t.count)
	}

	return nil
}

// validate checks the subtree at n against the exclusive bounds
// (lo, hi) and returns its node count and height.
func validate(n *Node, lo, hi Item) (int, int, error) {
	if n == nil {
		return 0, -1, nil
	}
	if lo != nil && n.value.Compare(lo) <= 0 {
		return 0, 0, fmt.Errorf("%w: %v not above %v", ErrOrderViolated, n.value, lo)
	}
	if hi != nil && n.value.Compare(hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: %v not below %v", ErrOrderViolated, n.value, hi)
	}

	cl, hl, err := validate(n.left, lo, n.value)
	if err != nil {
		return 0, 0, err
	}
	cr, hr, err := validate(n.right, n.value, hi)
	if err != nil {
		return 0, 0, err
	}

	h := max(hl, hr) + 1
	if n.height != h {
		return 0, 0, fmt.Errorf("%w: %v cached %d, actual %d", ErrHeightCacheStale, n.value, n.height, h)
	}
	if n.balance != hl-hr {
		return 0, 0, fmt.Errorf("%w: %v cached %d, actual %d", ErrBalanceCacheStale, n.value, n.balance, hl-hr)
	}
	if n.balance > 1 || n.balance < -1 {
		return 0, 0, fmt.Errorf("%w: %d at %v", ErrUnbalanced, n.balance, n.value)
	}

	return cl + cr + 1, h, nil
}
