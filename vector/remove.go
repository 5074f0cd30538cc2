package vector

// Remove erases every element equal to value, preserving the order of the
// rest, and reports how many were removed.
func Remove[T comparable](v *Vector[T], value T) (int, error) {
	return RemoveIf(v, func(x T) bool { return x == value })
}

// RemoveIf erases every element for which pred returns true, preserving
// the order of the rest, and reports how many were removed. Cannot fail for
// element types without failable hooks; otherwise a relocation failure
// leaves the vector valid but unspecified (basic guarantee) and the count
// reflects what was compacted.
func RemoveIf[T any](v *Vector[T], pred func(T) bool) (int, error) {
	kept := 0
	for i := 0; i < v.size; i++ {
		if pred(v.buf[i]) {
			v.destroy(i)
			continue
		}
		if i != kept {
			if err := v.relocate(kept, i); err != nil {
				removed := v.size - kept
				v.destroyRange(kept, v.size)
				v.size = kept
				return removed, err
			}
		}
		kept++
	}
	removed := v.size - kept
	v.destroyRange(kept, v.size)
	v.size = kept
	return removed, nil
}
