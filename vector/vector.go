// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vector

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/SoWeBegin/containers-go/internal/debug"
	"github.com/SoWeBegin/containers-go/memory"
)

// Vector is a growable array of T. The zero value is not usable; construct
// with New and friends.
type Vector[T any] struct {
	mem  memory.Allocator[T]
	buf  []T // the storage block; len(buf) is the capacity
	size int

	// optional element hooks, see WithCopier and WithMover
	copyFn func(T) (T, error)
	moveFn func(*T) (T, error)
}

// Option configures a Vector at construction.
type Option[T any] func(*Vector[T])

// WithCopier installs the element copy hook. Every operation that has to
// duplicate an element (PushBack, Insert, Clone, CopyFrom, fills) runs the
// value through fn; a failure aborts the operation at its documented
// guarantee level. Without a copier, elements are duplicated by plain
// assignment, which cannot fail.
func WithCopier[T any](fn func(T) (T, error)) Option[T] {
	return func(v *Vector[T]) { v.copyFn = fn }
}

// WithMover installs the element relocation hook, used when elements change
// slots (reallocation, insert and erase shifts). fn must leave the source
// slot destroyed. Without a mover, relocation is plain assignment and
// cannot fail; installing one marks the element type as having a failable
// move, so reallocation falls back to the copier when present, and shifting
// operations degrade from the strong to the basic guarantee.
func WithMover[T any](fn func(*T) (T, error)) Option[T] {
	return func(v *Vector[T]) { v.moveFn = fn }
}

// New returns an empty vector with no storage block allocated.
func New[T any](mem memory.Allocator[T], opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{mem: mem}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewLen returns a vector holding n zero-valued elements.
func NewLen[T any](mem memory.Allocator[T], n int, opts ...Option[T]) (*Vector[T], error) {
	var zero T
	return NewFill(mem, n, zero, opts...)
}

// NewFill returns a vector holding n copies of value.
func NewFill[T any](mem memory.Allocator[T], n int, value T, opts ...Option[T]) (*Vector[T], error) {
	v := New(mem, opts...)
	if err := v.Assign(n, value); err != nil {
		v.reset()
		return nil, err
	}
	return v, nil
}

// Of returns a vector holding copies of the given values.
func Of[T any](mem memory.Allocator[T], values ...T) (*Vector[T], error) {
	v := New[T](mem)
	if err := v.AssignValues(values...); err != nil {
		v.reset()
		return nil, err
	}
	return v, nil
}

// NewFromRange returns a vector holding copies of the elements in
// [first, last). Both positions must refer into the same source vector.
func NewFromRange[T any](mem memory.Allocator[T], first, last Iterator[T], opts ...Option[T]) (*Vector[T], error) {
	v := New(mem, opts...)
	if err := v.AssignRange(first, last); err != nil {
		v.reset()
		return nil, err
	}
	return v, nil
}

// Release destroys every element and hands the storage block back to the
// allocator. The vector stays usable and is simply empty with zero
// capacity; releasing an empty vector is a no-op.
func (v *Vector[T]) Release() { v.reset() }

// Len reports the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap reports the capacity of the current storage block.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// IsNull reports whether no storage block is allocated.
func (v *Vector[T]) IsNull() bool { return v.buf == nil }

// MaxSize reports the largest element count whose byte size is representable.
func (v *Vector[T]) MaxSize() int {
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if sz == 0 {
		sz = 1
	}
	return math.MaxInt / sz
}

// Allocator returns the vector's memory provider.
func (v *Vector[T]) Allocator() memory.Allocator[T] { return v.mem }

// At returns the element at index i, or an ErrOutOfRange error when i is
// outside [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d with size %d", ErrOutOfRange, i, v.size)
	}
	return v.buf[i], nil
}

// Set overwrites the element at index i, or returns an ErrOutOfRange error
// when i is outside [0, Len()).
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: index %d with size %d", ErrOutOfRange, i, v.size)
	}
	v.buf[i] = value
	return nil
}

// Value returns the element at index i without a bounds check.
// Precondition: 0 <= i < Len().
func (v *Vector[T]) Value(i int) T {
	debug.Assert(i >= 0 && i < v.size, "vector: Value index out of range")
	return v.buf[i]
}

// Front returns the first element. Precondition: the vector is non-empty.
func (v *Vector[T]) Front() T {
	debug.Assert(v.size > 0, "vector: Front on empty vector")
	return v.buf[0]
}

// Back returns the last element. Precondition: the vector is non-empty.
func (v *Vector[T]) Back() T {
	debug.Assert(v.size > 0, "vector: Back on empty vector")
	return v.buf[v.size-1]
}

// Data returns the live elements as a slice sharing the vector's storage,
// or nil when the vector is empty. The slice is invalidated by any
// reallocating or shifting operation.
func (v *Vector[T]) Data() []T {
	if v.size == 0 {
		return nil
	}
	return v.buf[:v.size:v.size]
}
