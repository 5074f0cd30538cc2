package memory

import "errors"

// ErrAllocation is wrapped by every Allocate failure, whatever the
// underlying allocator.
var ErrAllocation = errors.New("memory: allocation failure")

// Allocator supplies raw storage blocks of element slots. A block returned
// by Allocate has len == cap == n and every slot in its zero state; callers
// treat the slots as uninitialized and never read one before constructing
// into it. Deallocate must only be called once per block, with no live
// elements left in it.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(block []T)
}

// DefaultAllocator returns an allocator usable anywhere an Allocator is
// required. It is safe to share between goroutines.
func DefaultAllocator[T any]() Allocator[T] { return NewGoAllocator[T]() }
