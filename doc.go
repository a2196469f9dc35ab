// Package lvltree is a small family of ordered in-memory tree
// structures with predictable balance guarantees.
//
// 🚀 What is lvltree?
//
//	A pure-Go library of self-balancing search trees built around one
//	idea: keep the maintenance logic iterative and inspectable.
//		• avl/ — an AVL ordered set with iterative insertion, deletion,
//		  and rebalancing, four traversal orders, and a structural
//		  self-checker
//
// ✨ Why choose lvltree?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - No hidden recursion – balance maintenance replays an explicit
//     ancestor path, so degenerate inputs never threaten the stack
//   - Verifiable – every invariant the trees rely on is checkable at
//     runtime through Validate
//   - Pure Go – no cgo
//
// Quick ASCII example:
//
//	    2
//	   / \
//	  1   3
//
//	inserting 1, 2, 3 in order triggers a single left rotation and
//	yields the balanced tree above.
//
// Dive into the avl package documentation for the full API, invariants,
// and complexity table.
//
//	go get github.com/katalvlaran/lvltree
package lvltree
