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

package memory

// Containers copy, move and swap; whether their allocator travels along is
// the allocator's decision, not the container's. Allocators opt in through
// the optional interfaces below, and containers consult the package-level
// decision functions instead of type-switching inline.

// Op identifies the container operation asking about propagation.
type Op int

const (
	OpCopyAssign Op = iota
	OpMoveAssign
	OpSwap
)

// Propagator is implemented by allocators that want to replace the
// destination container's allocator during assignment or swap.
type Propagator interface {
	PropagateOnCopy() bool
	PropagateOnMove() bool
	PropagateOnSwap() bool
}

// Equaler is implemented by allocators that can compare equal to another
// instance. Two equal allocators must be able to deallocate each other's
// blocks.
type Equaler[T any] interface {
	Equal(other Allocator[T]) bool
}

// CopySelector is implemented by allocators that hand a different allocator
// to copies of their container (the copy-construction policy).
type CopySelector[T any] interface {
	SelectOnCopy() Allocator[T]
}

// Propagates reports whether a travels with its container's contents for
// the given operation. Allocators that do not implement Propagator never
// propagate.
func Propagates[T any](a Allocator[T], op Op) bool {
	p, ok := a.(Propagator)
	if !ok {
		return false
	}
	switch op {
	case OpCopyAssign:
		return p.PropagateOnCopy()
	case OpMoveAssign:
		return p.PropagateOnMove()
	case OpSwap:
		return p.PropagateOnSwap()
	}
	return false
}

// Equal reports whether blocks allocated by a may be deallocated by b and
// vice versa. Identity always qualifies; beyond that the allocator decides
// via Equaler.
func Equal[T any](a, b Allocator[T]) bool {
	if a == b {
		return true
	}
	if eq, ok := a.(Equaler[T]); ok && eq.Equal(b) {
		return true
	}
	if eq, ok := b.(Equaler[T]); ok && eq.Equal(a) {
		return true
	}
	return false
}

// SelectOnCopy returns the allocator a copy of a container should use.
// Defaults to the source's allocator.
func SelectOnCopy[T any](a Allocator[T]) Allocator[T] {
	if s, ok := a.(CopySelector[T]); ok {
		return s.SelectOnCopy()
	}
	return a
}
