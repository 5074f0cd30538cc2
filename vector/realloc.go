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

// reallocStrong replaces the storage block with one of newCap slots,
// newCap >= size. Either the vector ends up fully reallocated or it is left
// untouched and the error is returned; the old block is released only after
// the new one is fully populated.
//
// The one exception is a vector whose elements have a failable mover and no
// copier: its elements cannot be transferred without consuming them, so a
// mid-transfer failure leaves the vector valid but with its moved-out
// prefix destroyed (basic guarantee).
func (v *Vector[T]) reallocStrong(newCap int) error {
	if newCap == 0 {
		v.releaseBlock()
		return nil
	}
	newBuf, err := v.mem.Allocate(newCap)
	if err != nil {
		return fmt.Errorf("vector: allocate %d slots: %w", newCap, err)
	}
	if err := v.transferInto(newBuf); err != nil {
		v.mem.Deallocate(newBuf)
		return err
	}
	old := v.buf
	v.destroyRange(0, v.size)
	v.buf = newBuf
	if old != nil {
		v.mem.Deallocate(old)
	}
	return nil
}

// transferInto populates dst[:size] from the live elements. On failure the
// constructed prefix of dst is destroyed before returning, so dst can be
// handed straight back to the allocator.
func (v *Vector[T]) transferInto(dst []T) error {
	var zero T
	switch {
	case v.moveFn == nil:
		// relocation by assignment cannot fail
		copy(dst, v.buf[:v.size])
	case v.copyFn != nil:
		// a failable move must not consume elements mid-operation; copy
		// instead, and unwind the copies already made on failure
		for i := 0; i < v.size; i++ {
			c, err := v.copyFn(v.buf[i])
			if err != nil {
				for k := i - 1; k >= 0; k-- {
					dst[k] = zero
				}
				return fmt.Errorf("vector: copy element %d during reallocation: %w", i, err)
			}
			dst[i] = c
		}
	default:
		for i := 0; i < v.size; i++ {
			m, err := v.moveFn(&v.buf[i])
			if err != nil {
				for k := i - 1; k >= 0; k-- {
					dst[k] = zero
				}
				return fmt.Errorf("vector: move element %d during reallocation: %w", i, err)
			}
			dst[i] = m
		}
	}
	return nil
}
