// Package avl provides a self-balancing binary search tree (AVL tree)
// with a fully iterative maintenance engine: no recursion is involved
// in insertion, deletion, or rebalancing.
//
// What
//
//   - Ordered set of distinct Items with O(log n) Add, Remove, Get,
//     and Contains.
//   - Four traversal orders — Preorder, Inorder, Postorder,
//     Levelorder — returned as value snapshots, plus a visitor-style
//     Walk with early-stop support.
//   - O(1) Size, IsEmpty, Height, and Clear.
//   - Validate, a full structural self-check for tests and
//     diagnostics.
//
// How balance is maintained
//
//	Mutations walk from the root to the target position while
//	recording the ancestor chain and the direction taken at each
//	ancestor into a bounded path (size/2+1 slots). After the
//	structural change, the path is replayed in reverse: each ancestor
//	has its cached height and balance factor recomputed from its
//	current children and is rebalanced against its own parent, with a
//	final explicit pass over the root. Rebalancing applies at most one
//	outer rotation per ancestor, optionally preceded by one inner
//	rotation for the left-right and right-left shapes. Deletion reuses
//	the same engine, extending the recorded path while descending to
//	the in-order successor of a two-child node.
//
// Values
//
//	Stored values implement Item, a single Compare method defining a
//	total order. Int, String, and the generic Ordered[T] wrapper cover
//	the common primitive cases. No duplicate values are ever stored:
//	inserting an existing value is a silent no-op.
//
// Concurrency
//
//	A Tree is a single-owner, in-process structure. Operations run
//	synchronously to completion, never block, and are not safe for
//	concurrent mutation; guard a shared tree externally.
//
// Complexity (n = elements stored)
//
//   - Add / Remove / Get / Contains:  O(log n)
//   - Traversals / Walk / Validate:   O(n)
//   - Size / IsEmpty / Height / Clear: O(1)
//
// Usage
//
//	t := avl.New()
//	for _, v := range []avl.Int{50, 25, 75} {
//	    if err := t.Add(v); err != nil {
//	        // only ErrNilValue is possible here
//	    }
//	}
//	got, _ := t.Get(avl.Int(25))   // Int(25)
//	sorted := t.Inorder()          // [25 50 75]
//	removed, _ := t.Remove(avl.Int(50))
//
// Errors
//
//   - ErrNilValue      if a nil Item is passed to Add, Remove, Get, or Contains.
//   - ErrNilVisitor    if Walk is given a nil visit function.
//   - ErrUnknownOrder  if Walk is given an undefined Order.
//   - ErrStopWalk      returned by a visitor to stop a Walk cleanly.
//
// Absent results are normal returns, not errors: Remove and Get yield
// a nil Item for values that are not present.
package avl
