package memory

// GoAllocator allocates blocks from the Go heap and leaves reclamation to
// the garbage collector. It is stateless: every GoAllocator for a given
// element type compares equal, so containers using it always take the O(1)
// block-adoption paths on move and swap.
type GoAllocator[T any] struct{}

func NewGoAllocator[T any]() *GoAllocator[T] { return &GoAllocator[T]{} }

func (a *GoAllocator[T]) Allocate(n int) ([]T, error) {
	return make([]T, n), nil
}

func (a *GoAllocator[T]) Deallocate(block []T) {}

func (a *GoAllocator[T]) Equal(other Allocator[T]) bool {
	_, ok := other.(*GoAllocator[T])
	return ok
}
