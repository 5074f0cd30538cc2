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

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoWeBegin/containers-go/memory"
	"github.com/SoWeBegin/containers-go/vector"
)

func TestEraseRange(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator[int]())
	defer mem.AssertSize(t, 0)

	v, err := vector.Of[int](mem, 10, 20, 30, 40)
	require.NoError(t, err)
	defer v.Release()

	capBefore := v.Cap()
	require.NoError(t, v.EraseRange(1, 3))
	assert.Equal(t, []int{10, 40}, v.Data())
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, capBefore, v.Cap(), "capacity never shrinks on erase")
}

func TestEraseSingle(t *testing.T) {
	tests := []struct {
		name string
		at   int
		want []int
	}{
		{"front", 0, []int{20, 30}},
		{"middle", 1, []int{10, 30}},
		{"back", 2, []int{10, 20}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mem := memory.NewGoAllocator[int]()
			v, err := vector.Of[int](mem, 10, 20, 30)
			require.NoError(t, err)

			require.NoError(t, v.Erase(test.at))
			assert.Equal(t, test.want, v.Data())
		})
	}
}

func TestEraseOutOfRange(t *testing.T) {
	mem := memory.NewGoAllocator[int]()
	v, err := vector.Of[int](mem, 1, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, v.Erase(2), vector.ErrOutOfRange)
	assert.ErrorIs(t, v.EraseRange(1, 3), vector.ErrOutOfRange)
	assert.ErrorIs(t, v.EraseRange(2, 1), vector.ErrOutOfRange)
	assert.Equal(t, []int{1, 2}, v.Data())
}

func TestPopBack(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator[int]())
	defer mem.AssertSize(t, 0)

	v, err := vector.Of[int](mem, 1, 2)
	require.NoError(t, err)
	defer v.Release()

	require.NoError(t, v.PopBack())
	require.NoError(t, v.PopBack())
	assert.True(t, v.Empty())
	assert.ErrorIs(t, v.PopBack(), vector.ErrOutOfRange)
}

func TestClearKeepsBlock(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator[int]())
	defer mem.AssertSize(t, 0)

	v, err := vector.Of[int](mem, 1, 2, 3)
	require.NoError(t, err)
	defer v.Release()

	capBefore := v.Cap()
	v.Clear()
	assert.True(t, v.Empty())
	assert.False(t, v.IsNull())
	assert.Equal(t, capBefore, v.Cap())
}

func TestRemove(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator[int]())
	defer mem.AssertSize(t, 0)

	v, err := vector.Of[int](mem, 1, 7, 2, 7, 3, 7)
	require.NoError(t, err)
	defer v.Release()

	n, err := vector.Remove(v, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{1, 2, 3}, v.Data())

	n, err = vector.Remove(v, 42)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRemoveIf(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator[int]())
	defer mem.AssertSize(t, 0)

	v, err := vector.Of[int](mem, 1, 2, 3, 4, 5, 6)
	require.NoError(t, err)
	defer v.Release()

	n, err := vector.RemoveIf(v, func(x int) bool { return x%2 == 0 })
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{1, 3, 5}, v.Data())
}
