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

	"github.com/SoWeBegin/containers-go/memory"
)

// Clone returns an independent copy of v holding exactly Len() slots. The
// copy's allocator is chosen by the provider's copy-construction policy
// (memory.SelectOnCopy). Strong guarantee: a failure leaves v untouched and
// returns with nothing allocated.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{
		mem:    memory.SelectOnCopy(v.mem),
		copyFn: v.copyFn,
		moveFn: v.moveFn,
	}
	if v.size == 0 {
		return out, nil
	}
	buf, err := out.mem.Allocate(v.size)
	if err != nil {
		return nil, fmt.Errorf("vector: allocate %d slots: %w", v.size, err)
	}
	var zero T
	for i := 0; i < v.size; i++ {
		c, err := v.copyOf(v.buf[i])
		if err != nil {
			for k := i - 1; k >= 0; k-- {
				buf[k] = zero
			}
			out.mem.Deallocate(buf)
			return nil, fmt.Errorf("vector: copy element %d: %w", i, err)
		}
		buf[i] = c
	}
	out.buf = buf
	out.size = v.size
	return out, nil
}

// CopyFrom replaces the contents of v with copies of src's elements. The
// allocator is adopted from src when its provider propagates on copy
// assignment; the block is reallocated only when src is larger than v's
// capacity. Basic guarantee.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if memory.Propagates[T](src.mem, memory.OpCopyAssign) && !memory.Equal(v.mem, src.mem) {
		// the old block must go back to the allocator that produced it
		v.reset()
		v.mem = src.mem
	} else if memory.Propagates[T](src.mem, memory.OpCopyAssign) {
		v.mem = src.mem
	}
	return v.assign(src.size, func(k int) (T, error) { return v.copyOf(src.buf[k]) })
}

// Take transfers ownership of src's block, provider and element hooks into
// a new vector in O(1). src is left empty with zero capacity. Never fails.
func Take[T any](src *Vector[T]) *Vector[T] {
	out := &Vector[T]{
		mem:    src.mem,
		buf:    src.buf,
		size:   src.size,
		copyFn: src.copyFn,
		moveFn: src.moveFn,
	}
	src.buf = nil
	src.size = 0
	return out
}

// MoveFrom transfers src's contents into v. When src's provider propagates
// on move assignment or the two providers compare equal this is an O(1)
// block adoption; otherwise the providers are incompatible and every
// element is transferred into a freshly allocated destination block, which
// is O(N) and can fail. Either way src is left empty. On a transfer failure
// v is untouched but src may have lost moved-out elements.
func (v *Vector[T]) MoveFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if prop := memory.Propagates[T](src.mem, memory.OpMoveAssign); prop || memory.Equal(v.mem, src.mem) {
		v.reset()
		if prop {
			v.mem = src.mem
		}
		v.buf = src.buf
		v.size = src.size
		src.buf = nil
		src.size = 0
		return nil
	}

	var newBuf []T
	if src.size > 0 {
		var err error
		newBuf, err = v.mem.Allocate(src.size)
		if err != nil {
			return fmt.Errorf("vector: allocate %d slots: %w", src.size, err)
		}
		var zero T
		for i := 0; i < src.size; i++ {
			val, err := src.moveOut(i)
			if err != nil {
				for k := i - 1; k >= 0; k-- {
					newBuf[k] = zero
				}
				v.mem.Deallocate(newBuf)
				return fmt.Errorf("vector: move element %d: %w", i, err)
			}
			newBuf[i] = val
		}
	}
	size := src.size
	src.reset()
	v.destroyRange(0, v.size)
	v.size = 0
	v.releaseBlock()
	v.buf = newBuf
	v.size = size
	return nil
}

// moveOut consumes the element in slot i, leaving the slot destroyed.
func (v *Vector[T]) moveOut(i int) (T, error) {
	if v.moveFn != nil {
		return v.moveFn(&v.buf[i])
	}
	val := v.buf[i]
	v.destroy(i)
	return val, nil
}

// Swap exchanges the two vectors' blocks, sizes and element hooks in O(1).
// Providers are exchanged only when one of them propagates on swap;
// otherwise they must compare equal and stay put. Swapping with
// non-propagating unequal providers fails with ErrIncompatibleAllocators
// and changes nothing.
func (v *Vector[T]) Swap(other *Vector[T]) error {
	if v == other {
		return nil
	}
	switch {
	case memory.Propagates[T](v.mem, memory.OpSwap) || memory.Propagates[T](other.mem, memory.OpSwap):
		v.mem, other.mem = other.mem, v.mem
	case !memory.Equal(v.mem, other.mem):
		return ErrIncompatibleAllocators
	}
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
	v.copyFn, other.copyFn = other.copyFn, v.copyFn
	v.moveFn, other.moveFn = other.moveFn, v.moveFn
	return nil
}
