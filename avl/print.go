package avl

import (
	"fmt"
	"strings"
)

// String renders the tree level by level for debugging, one tree level
// per line with values separated by single spaces. An empty tree
// renders as the empty string.
// Complexity: O(n)
func (t *Tree) String() string {
	if t.root == nil {
		return ""
	}

	var b strings.Builder
	level := []*Node{t.root}
	for len(level) > 0 {
		next := make([]*Node, 0, 2*len(level))
		for i, n := range level {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%v", n.value)
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		if len(next) > 0 {
			b.WriteByte('\n')
		}
		level = next
	}

	return b.String()
}
