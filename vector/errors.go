package vector

import "errors"

var (
	// ErrOutOfRange is wrapped by checked accessors and mutators handed an
	// index outside the live range.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrLengthExceeded is wrapped when a requested capacity cannot be
	// represented.
	ErrLengthExceeded = errors.New("vector: length exceeds maximum size")

	// ErrIncompatibleAllocators is returned by Swap when neither allocator
	// propagates and they do not compare equal.
	ErrIncompatibleAllocators = errors.New("vector: allocators neither propagate nor compare equal")
)
