package avl

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Int is a convenience Item over int.
type Int int

// Compare implements Item; panics if than is not an Int.
func (x Int) Compare(than Item) int {
	o := than.(Int)
	switch {
	case x < o:
		return -1
	case x > o:
		return 1
	}

	return 0
}

// String is a convenience Item over string.
type String string

// Compare implements Item; panics if than is not a String.
func (x String) Compare(than Item) int {
	o := than.(String)
	switch {
	case x < o:
		return -1
	case x > o:
		return 1
	}

	return 0
}

// Ordered adapts any ordered primitive to an Item.
type Ordered[T constraints.Ordered] struct {
	V T
}

// String formats the wrapped value alone, so trees of Ordered items
// print cleanly.
func (x Ordered[T]) String() string { return fmt.Sprint(x.V) }

// Compare implements Item; panics if than is not an Ordered[T] of the
// same T.
func (x Ordered[T]) Compare(than Item) int {
	o := than.(Ordered[T])
	switch {
	case x.V < o.V:
		return -1
	case x.V > o.V:
		return 1
	}

	return 0
}
