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

	"github.com/SoWeBegin/containers-go/internal/debug"
)

// Iterator is a position in a vector. Positions in [Begin(), End()) refer
// to live elements; End() is one past the last. Iterators are values:
// advancing returns a new position and a traversal can be restarted from
// Begin() at any time. Any reallocating or shifting operation on the
// underlying vector invalidates existing iterators.
type Iterator[T any] struct {
	vec *Vector[T]
	pos int
}

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() Iterator[T] { return Iterator[T]{vec: v, pos: 0} }

// End returns the position one past the last element.
func (v *Vector[T]) End() Iterator[T] { return Iterator[T]{vec: v, pos: v.size} }

// Next returns the following position.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{vec: it.vec, pos: it.pos + 1} }

// Prev returns the preceding position.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{vec: it.vec, pos: it.pos - 1} }

// Add returns the position d places further (negative d moves backward).
func (it Iterator[T]) Add(d int) Iterator[T] { return Iterator[T]{vec: it.vec, pos: it.pos + d} }

// Pos returns the element index the iterator refers to.
func (it Iterator[T]) Pos() int { return it.pos }

// Value returns the element at the iterator's position.
// Precondition: the position is in [Begin(), End()).
func (it Iterator[T]) Value() T {
	debug.Assert(it.vec != nil && it.pos >= 0 && it.pos < it.vec.size,
		"vector: iterator dereference out of range")
	return it.vec.buf[it.pos]
}

// Equal reports whether two iterators denote the same position of the same
// vector.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.vec == other.vec && it.pos == other.pos
}

// ReverseIterator walks a vector from the last element toward the first.
// As with the classic adaptor it stores the base position one past the
// element it denotes.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// RBegin returns the reverse position of the last element.
func (v *Vector[T]) RBegin() ReverseIterator[T] { return ReverseIterator[T]{base: v.End()} }

// REnd returns the reverse position one before the first element.
func (v *Vector[T]) REnd() ReverseIterator[T] { return ReverseIterator[T]{base: v.Begin()} }

// Next returns the following reverse position (one element closer to the
// front).
func (r ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Prev()}
}

// Value returns the element at the reverse position.
func (r ReverseIterator[T]) Value() T { return r.base.Prev().Value() }

// Equal reports whether two reverse iterators denote the same position.
func (r ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return r.base.Equal(other.base)
}

// rangeLen validates an iterator pair and returns the number of elements
// in [first, last).
func rangeLen[T any](first, last Iterator[T]) (int, error) {
	if first.vec == nil || first.vec != last.vec {
		return 0, fmt.Errorf("%w: iterators from different vectors", ErrOutOfRange)
	}
	if first.pos < 0 || last.pos > first.vec.size || first.pos > last.pos {
		return 0, fmt.Errorf("%w: range [%d, %d) with size %d",
			ErrOutOfRange, first.pos, last.pos, first.vec.size)
	}
	return last.pos - first.pos, nil
}
