package vector

import "fmt"

// Slot lifecycle. A live slot holds a constructed element; a destroyed slot
// is reset to the zero value so the block never pins referents of dead
// elements. Slots in [size, cap) are always in the destroyed state.

// construct places a copy of value into slot i. The slot must be destroyed.
func (v *Vector[T]) construct(i int, value T) error {
	if v.copyFn != nil {
		c, err := v.copyFn(value)
		if err != nil {
			return fmt.Errorf("vector: copy element into slot %d: %w", i, err)
		}
		v.buf[i] = c
		return nil
	}
	v.buf[i] = value
	return nil
}

// copyOf duplicates value through the copier when one is installed.
func (v *Vector[T]) copyOf(value T) (T, error) {
	if v.copyFn == nil {
		return value, nil
	}
	return v.copyFn(value)
}

// destroy resets slot i to the destroyed state.
func (v *Vector[T]) destroy(i int) {
	var zero T
	v.buf[i] = zero
}

// destroyRange destroys slots [first, last).
func (v *Vector[T]) destroyRange(first, last int) {
	var zero T
	for i := first; i < last; i++ {
		v.buf[i] = zero
	}
}

// relocate transfers the element in slot src into slot dst, preferring the
// path that cannot fail. With a failable mover and no copier the source
// element may be consumed even when an error is returned.
func (v *Vector[T]) relocate(dst, src int) error {
	switch {
	case v.moveFn == nil:
		v.buf[dst] = v.buf[src]
	case v.copyFn != nil:
		c, err := v.copyFn(v.buf[src])
		if err != nil {
			return fmt.Errorf("vector: copy element from slot %d: %w", src, err)
		}
		v.buf[dst] = c
	default:
		m, err := v.moveFn(&v.buf[src])
		if err != nil {
			return fmt.Errorf("vector: move element from slot %d: %w", src, err)
		}
		v.buf[dst] = m
	}
	return nil
}

// releaseBlock hands the storage block back to the allocator. All slots
// must already be destroyed.
func (v *Vector[T]) releaseBlock() {
	if v.buf != nil {
		v.mem.Deallocate(v.buf)
		v.buf = nil
	}
}

// reset destroys every live element and releases the block, leaving an
// empty vector with zero capacity.
func (v *Vector[T]) reset() {
	v.destroyRange(0, v.size)
	v.size = 0
	v.releaseBlock()
}
