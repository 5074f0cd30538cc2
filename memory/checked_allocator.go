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
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"unsafe"
)

// CheckedAllocator wraps an Allocator and tracks every outstanding block
// together with the caller that requested it, so tests can assert that a
// container released everything it took.
type CheckedAllocator[T any] struct {
	mem Allocator[T]
	sz  int64

	blocks sync.Map
}

func NewCheckedAllocator[T any](mem Allocator[T]) *CheckedAllocator[T] {
	return &CheckedAllocator[T]{mem: mem}
}

// CurrentAlloc reports the number of slots currently held.
func (a *CheckedAllocator[T]) CurrentAlloc() int { return int(atomic.LoadInt64(&a.sz)) }

func (a *CheckedAllocator[T]) Allocate(n int) ([]T, error) {
	out, err := a.mem.Allocate(n)
	if err != nil {
		return nil, err
	}
	atomic.AddInt64(&a.sz, int64(n))
	if n == 0 {
		return out, nil
	}

	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(out)))
	if pc, _, l, ok := runtime.Caller(allocFrames); ok {
		a.blocks.Store(ptr, &dalloc{pc: pc, line: l, sz: n})
	}
	return out, nil
}

func (a *CheckedAllocator[T]) Deallocate(block []T) {
	atomic.AddInt64(&a.sz, int64(len(block)*-1))
	defer a.mem.Deallocate(block)

	if len(block) == 0 {
		return
	}

	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	a.blocks.Delete(ptr)
}

// typically allocations happen inside the container, not by consumers
// calling Allocate directly. As a result we want to skip the caller frames
// of the container's inner workings in order to find the caller that
// actually triggered the allocation via Reserve/PushBack/etc.
const defAllocFrames = 3

// Use the environment variable CONTAINERS_CHECKED_ALLOC_FRAMES to control
// how many frames up it checks when storing the caller for allocations
// when using this to find leaks.
var allocFrames int = defAllocFrames

func init() {
	if val, ok := os.LookupEnv("CONTAINERS_CHECKED_ALLOC_FRAMES"); ok {
		if f, err := strconv.Atoi(val); err == nil {
			allocFrames = f
		}
	}
}

type dalloc struct {
	pc   uintptr
	line int
	sz   int
}

type TestingT interface {
	Errorf(format string, args ...interface{})
	Helper()
}

// AssertSize fails t unless exactly sz slots are outstanding, reporting the
// origin of every leaked block.
func (a *CheckedAllocator[T]) AssertSize(t TestingT, sz int) {
	a.blocks.Range(func(_, value interface{}) bool {
		info := value.(*dalloc)
		f := runtime.FuncForPC(info.pc)
		t.Errorf("LEAK of %d slots FROM %s line %d\n", info.sz, f.Name(), info.line)
		return true
	})

	if int(atomic.LoadInt64(&a.sz)) != sz {
		t.Helper()
		t.Errorf("invalid outstanding slots exp=%d, got=%d", sz, a.sz)
	}
}

type CheckedAllocatorScope[T any] struct {
	alloc *CheckedAllocator[T]
	sz    int
}

func NewCheckedAllocatorScope[T any](alloc *CheckedAllocator[T]) *CheckedAllocatorScope[T] {
	sz := atomic.LoadInt64(&alloc.sz)
	return &CheckedAllocatorScope[T]{alloc: alloc, sz: int(sz)}
}

func (c *CheckedAllocatorScope[T]) CheckSize(t TestingT) {
	sz := int(atomic.LoadInt64(&c.alloc.sz))
	if c.sz != sz {
		t.Helper()
		t.Errorf("invalid outstanding slots exp=%d, got=%d", c.sz, sz)
	}
}

var _ Allocator[int] = (*CheckedAllocator[int])(nil)
