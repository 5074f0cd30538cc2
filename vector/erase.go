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

// Erase removes the element at index i, shifting the tail down one slot.
// Capacity is unchanged. Cannot fail for element types without failable
// hooks; otherwise a relocation failure leaves the vector valid but
// unspecified (basic guarantee).
func (v *Vector[T]) Erase(i int) error {
	return v.EraseRange(i, i+1)
}

// EraseRange removes the elements in [first, last), shifting the tail down
// over the gap. Guarantees as for Erase.
func (v *Vector[T]) EraseRange(first, last int) error {
	if first < 0 || last > v.size || first > last {
		return fmt.Errorf("%w: erase [%d, %d) with size %d", ErrOutOfRange, first, last, v.size)
	}
	n := last - first
	if n == 0 {
		return nil
	}
	v.destroyRange(first, last)
	if v.moveFn == nil {
		copy(v.buf[first:], v.buf[last:v.size])
	} else {
		for j := last; j < v.size; j++ {
			if err := v.relocate(j-n, j); err != nil {
				// keep what was compacted so far
				v.destroyRange(j-n, v.size)
				v.size = j - n
				return err
			}
		}
	}
	v.destroyRange(v.size-n, v.size)
	v.size -= n
	return nil
}

// PopBack removes the last element.
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return fmt.Errorf("%w: pop on empty vector", ErrOutOfRange)
	}
	v.destroy(v.size - 1)
	v.size--
	return nil
}

// Clear destroys every element. The storage block is retained.
func (v *Vector[T]) Clear() {
	v.destroyRange(0, v.size)
	v.size = 0
}
