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

// Assign replaces the contents with n copies of value, reallocating only
// when n exceeds the current capacity. Basic guarantee.
func (v *Vector[T]) Assign(n int, value T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", ErrOutOfRange, n)
	}
	return v.assign(n, func(int) (T, error) { return v.copyOf(value) })
}

// AssignValues replaces the contents with copies of the given values.
// Basic guarantee.
func (v *Vector[T]) AssignValues(values ...T) error {
	return v.assign(len(values), func(k int) (T, error) { return v.copyOf(values[k]) })
}

// AssignRange replaces the contents with copies of the elements in
// [first, last). The range must not refer into v. Basic guarantee.
func (v *Vector[T]) AssignRange(first, last Iterator[T]) error {
	n, err := rangeLen(first, last)
	if err != nil {
		return err
	}
	return v.assign(n, func(k int) (T, error) { return v.copyOf(first.Add(k).Value()) })
}

func (v *Vector[T]) assign(n int, elem func(k int) (T, error)) error {
	if n > v.MaxSize() {
		return fmt.Errorf("%w: %d slots requested, maximum %d", ErrLengthExceeded, n, v.MaxSize())
	}
	if n > v.Cap() {
		// contents are going away anyway; grab the replacement block before
		// tearing anything down so an allocation failure leaves v intact
		newBuf, err := v.mem.Allocate(n)
		if err != nil {
			return fmt.Errorf("vector: allocate %d slots: %w", n, err)
		}
		v.destroyRange(0, v.size)
		v.size = 0
		v.releaseBlock()
		v.buf = newBuf
	} else {
		v.destroyRange(0, v.size)
		v.size = 0
	}
	for k := 0; k < n; k++ {
		val, err := elem(k)
		if err != nil {
			v.size = k
			return fmt.Errorf("vector: construct element %d: %w", k, err)
		}
		v.buf[k] = val
	}
	v.size = n
	return nil
}

// Reserve guarantees capacity for at least n elements; it never shrinks.
// Strong guarantee.
func (v *Vector[T]) Reserve(n int) error {
	if n > v.MaxSize() {
		return fmt.Errorf("%w: %d slots requested, maximum %d", ErrLengthExceeded, n, v.MaxSize())
	}
	if n <= v.Cap() {
		return nil
	}
	return v.reallocStrong(n)
}

// ShrinkToFit reallocates the block to exactly Len() slots, releasing it
// entirely when the vector is empty. Strong guarantee.
func (v *Vector[T]) ShrinkToFit() error {
	if v.Cap() == v.size {
		return nil
	}
	return v.reallocStrong(v.size)
}

// Resize adjusts the length to n, destroying trailing elements when
// shrinking and appending zero values when growing.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeFill(n, zero)
}

// ResizeFill adjusts the length to n, destroying trailing elements when
// shrinking and appending copies of value when growing. Each appended copy
// is constructed under the append strong guarantee; a mid-way failure
// leaves the elements appended so far in place.
func (v *Vector[T]) ResizeFill(n int, value T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", ErrOutOfRange, n)
	}
	if n < v.size {
		v.destroyRange(n, v.size)
		v.size = n
		return nil
	}
	if n > v.Cap() {
		if err := v.Reserve(n); err != nil {
			return err
		}
	}
	for v.size < n {
		val, err := v.copyOf(value)
		if err != nil {
			return fmt.Errorf("vector: copy element for resize: %w", err)
		}
		v.buf[v.size] = val
		v.size++
	}
	return nil
}
