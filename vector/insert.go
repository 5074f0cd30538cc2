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

import "fmt"

// PushBack appends a copy of value. Strong guarantee: on failure the
// vector's size, capacity and contents are unchanged.
func (v *Vector[T]) PushBack(value T) error {
	val, err := v.copyOf(value)
	if err != nil {
		return fmt.Errorf("vector: copy element for append: %w", err)
	}
	return v.appendOne(val)
}

// EmplaceBack appends the element produced by construct. Strong guarantee.
func (v *Vector[T]) EmplaceBack(construct func() (T, error)) error {
	val, err := construct()
	if err != nil {
		return fmt.Errorf("vector: construct element for append: %w", err)
	}
	return v.appendOne(val)
}

// appendOne takes ownership of an already constructed element. The element
// is built before any storage is touched, so a failure here can only come
// from reallocation, which is itself strong.
func (v *Vector[T]) appendOne(val T) error {
	if err := v.ensureSpare(1); err != nil {
		return err
	}
	v.buf[v.size] = val
	v.size++
	return nil
}

// Insert places a copy of value at index i, shifting [i, Len()) one slot
// right. i == Len() appends. Strong guarantee for the append position and
// for element types without failable hooks; otherwise a failure during the
// shift leaves the vector valid but unspecified (basic guarantee).
func (v *Vector[T]) Insert(i int, value T) error {
	return v.insertAt(i, 1, func(int) (T, error) { return v.copyOf(value) })
}

// InsertN places n copies of value at index i. Guarantees as for Insert.
func (v *Vector[T]) InsertN(i, n int, value T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", ErrOutOfRange, n)
	}
	return v.insertAt(i, n, func(int) (T, error) { return v.copyOf(value) })
}

// InsertValues places copies of the given values at index i, in order.
// Guarantees as for Insert.
func (v *Vector[T]) InsertValues(i int, values ...T) error {
	return v.insertAt(i, len(values), func(k int) (T, error) { return v.copyOf(values[k]) })
}

// InsertRange places copies of the elements in [first, last) at index i.
// The range must not refer into v. Guarantees as for Insert.
func (v *Vector[T]) InsertRange(i int, first, last Iterator[T]) error {
	n, err := rangeLen(first, last)
	if err != nil {
		return err
	}
	return v.insertAt(i, n, func(k int) (T, error) { return v.copyOf(first.Add(k).Value()) })
}

// Emplace places the element produced by construct at index i.
// Guarantees as for Insert.
func (v *Vector[T]) Emplace(i int, construct func() (T, error)) error {
	return v.insertAt(i, 1, func(int) (T, error) { return construct() })
}

// insertAt opens n slots at i and fills them with elem(0..n-1).
func (v *Vector[T]) insertAt(i, n int, elem func(k int) (T, error)) error {
	if i < 0 || i > v.size {
		return fmt.Errorf("%w: insert at %d with size %d", ErrOutOfRange, i, v.size)
	}
	if n == 0 {
		return nil
	}
	if n == 1 && i == v.size {
		// single append: build first so reallocation is never wasted and
		// the guarantee covers capacity as well
		val, err := elem(0)
		if err != nil {
			return fmt.Errorf("vector: construct element %d: %w", i, err)
		}
		return v.appendOne(val)
	}
	if err := v.ensureSpare(n); err != nil {
		return err
	}
	s := v.size
	if i == s {
		// append run: nothing shifts, so constructed elements can be
		// unwound and the guarantee stays strong
		for k := 0; k < n; k++ {
			val, err := elem(k)
			if err != nil {
				v.destroyRange(s, s+k)
				return fmt.Errorf("vector: construct element %d: %w", s+k, err)
			}
			v.buf[s+k] = val
		}
		v.size = s + n
		return nil
	}
	if err := v.shiftRight(i, n); err != nil {
		return err
	}
	v.size = s + n
	for k := 0; k < n; k++ {
		val, err := elem(k)
		if err != nil {
			// slots [i+k, i+n) stay destroyed; basic guarantee
			return fmt.Errorf("vector: construct element %d: %w", i+k, err)
		}
		v.buf[i+k] = val
	}
	return nil
}

// shiftRight relocates [i, size) to [i+n, size+n), leaving slots [i, i+n)
// destroyed. Capacity must already cover size+n. A relocation failure
// destroys the elements stranded past the live range and returns with size
// unchanged (basic guarantee).
func (v *Vector[T]) shiftRight(i, n int) error {
	s := v.size
	if v.moveFn == nil {
		copy(v.buf[i+n:s+n], v.buf[i:s])
		v.destroyRange(i, i+n)
		return nil
	}
	for j := s - 1; j >= i; j-- {
		if err := v.relocate(j+n, j); err != nil {
			v.destroyRange(s, s+n)
			return err
		}
	}
	v.destroyRange(i, i+n)
	return nil
}
