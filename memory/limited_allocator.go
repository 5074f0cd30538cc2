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

import (
	"fmt"
	"sync/atomic"
)

// LimitedAllocator wraps an Allocator with a slot budget. Requests that
// would take the outstanding total past the budget fail with an
// ErrAllocation-wrapped error instead of being passed through.
type LimitedAllocator[T any] struct {
	mem   Allocator[T]
	limit int64
	sz    int64
}

func NewLimitedAllocator[T any](mem Allocator[T], limit int) *LimitedAllocator[T] {
	return &LimitedAllocator[T]{mem: mem, limit: int64(limit)}
}

func (a *LimitedAllocator[T]) Allocate(n int) ([]T, error) {
	if atomic.LoadInt64(&a.sz)+int64(n) > a.limit {
		return nil, fmt.Errorf("%w: %d slots requested, %d of %d in use",
			ErrAllocation, n, atomic.LoadInt64(&a.sz), a.limit)
	}
	out, err := a.mem.Allocate(n)
	if err != nil {
		return nil, err
	}
	atomic.AddInt64(&a.sz, int64(n))
	return out, nil
}

func (a *LimitedAllocator[T]) Deallocate(block []T) {
	atomic.AddInt64(&a.sz, int64(len(block)*-1))
	a.mem.Deallocate(block)
}

var _ Allocator[int] = (*LimitedAllocator[int])(nil)
