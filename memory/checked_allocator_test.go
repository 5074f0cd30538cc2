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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeT struct {
	errs int
}

func (f *fakeT) Errorf(string, ...interface{}) { f.errs++ }
func (f *fakeT) Helper()                       {}

func TestCheckedAllocator_Balanced(t *testing.T) {
	mem := NewCheckedAllocator(NewGoAllocator[int]())

	b1, err := mem.Allocate(8)
	require.NoError(t, err)
	b2, err := mem.Allocate(16)
	require.NoError(t, err)
	assert.Equal(t, 24, mem.CurrentAlloc())

	mem.Deallocate(b1)
	mem.Deallocate(b2)
	assert.Zero(t, mem.CurrentAlloc())

	var ft fakeT
	mem.AssertSize(&ft, 0)
	assert.Zero(t, ft.errs)
}

func TestCheckedAllocator_ReportsLeak(t *testing.T) {
	mem := NewCheckedAllocator(NewGoAllocator[int]())

	_, err := mem.Allocate(8)
	require.NoError(t, err)

	var ft fakeT
	mem.AssertSize(&ft, 0)
	assert.NotZero(t, ft.errs)
}

func TestCheckedAllocatorScope(t *testing.T) {
	mem := NewCheckedAllocator(NewGoAllocator[int]())
	scope := NewCheckedAllocatorScope(mem)

	block, err := mem.Allocate(4)
	require.NoError(t, err)

	var ft fakeT
	scope.CheckSize(&ft)
	assert.NotZero(t, ft.errs)

	mem.Deallocate(block)
	ft = fakeT{}
	scope.CheckSize(&ft)
	assert.Zero(t, ft.errs)
}
