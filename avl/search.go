package avl

// Get returns the stored value equal to v, or nil when no such value
// exists. The returned Item may be Compare-equal but not identical to
// v. Returns ErrNilValue if v is nil.
// Complexity: O(log n)
func (t *Tree) Get(v Item) (Item, error) {
	if v == nil {
		return nil, ErrNilValue
	}

	cur := t.root
	for cur != nil {
		c := v.Compare(cur.value)
		switch {
		case c == 0:
			return cur.value, nil
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	return nil, nil
}

// Contains reports whether a value equal to v is stored in the tree.
// Returns ErrNilValue if v is nil.
// Complexity: O(log n)
func (t *Tree) Contains(v Item) (bool, error) {
	found, err := t.Get(v)

	return found != nil, err
}
