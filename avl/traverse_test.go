package avl_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltree/avl"
)

// perfectTree builds the complete tree
//
//	    4
//	   / \
//	  2   6
//	 / \ / \
//	1  3 5  7
func perfectTree(t *testing.T) *avl.Tree {
	t.Helper()

	return buildTree(t, 4, 2, 6, 1, 3, 5, 7)
}

func TestTraversals_Orders(t *testing.T) {
	tr := perfectTree(t)

	assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, ints(tr.Preorder()))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, ints(tr.Inorder()))
	assert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, ints(tr.Postorder()))
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, ints(tr.Levelorder()))
}

// TestTraversals_Snapshot verifies traversal results copy values and
// stay intact across later mutations.
func TestTraversals_Snapshot(t *testing.T) {
	tr := buildTree(t, 2, 1, 3)
	snap := tr.Inorder()

	_, err := tr.Remove(avl.Int(2))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, ints(snap))
	assert.Equal(t, []int{1, 3}, ints(tr.Inorder()))
}

func TestWalk_Levelorder(t *testing.T) {
	tr := perfectTree(t)

	var seen []int
	err := tr.Walk(avl.LevelOrder, func(v avl.Item) error {
		seen = append(seen, int(v.(avl.Int)))

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, seen)
}

func TestWalk_EarlyStop(t *testing.T) {
	tr := perfectTree(t)

	var seen []int
	err := tr.Walk(avl.InOrder, func(v avl.Item) error {
		seen = append(seen, int(v.(avl.Int)))
		if len(seen) == 3 {
			return avl.ErrStopWalk
		}

		return nil
	})
	assert.NoError(t, err, "ErrStopWalk is a clean stop, not a failure")
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestWalk_VisitError(t *testing.T) {
	tr := perfectTree(t)
	errBoom := errors.New("boom")

	visits := 0
	err := tr.Walk(avl.PreOrder, func(avl.Item) error {
		visits++
		if visits == 2 {
			return errBoom
		}

		return nil
	})
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 2, visits, "walk aborts at the failing visit")
}

func TestWalk_BadInput(t *testing.T) {
	tr := perfectTree(t)

	err := tr.Walk(avl.InOrder, nil)
	assert.ErrorIs(t, err, avl.ErrNilVisitor)

	err = tr.Walk(avl.Order(99), func(avl.Item) error { return nil })
	assert.ErrorIs(t, err, avl.ErrUnknownOrder)
}

func TestWalk_EmptyTree(t *testing.T) {
	visits := 0
	err := avl.New().Walk(avl.PostOrder, func(avl.Item) error {
		visits++

		return nil
	})
	assert.NoError(t, err)
	assert.Zero(t, visits)
}
