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

func TestForwardIteration(t *testing.T) {
	mem := memory.NewGoAllocator[int]()
	v, err := vector.Of[int](mem, 1, 2, 3, 4)
	require.NoError(t, err)

	var got []int
	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	// restartable: a second pass yields the same sequence
	got = got[:0]
	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestReverseIteration(t *testing.T) {
	mem := memory.NewGoAllocator[int]()
	v, err := vector.Of[int](mem, 1, 2, 3)
	require.NoError(t, err)

	var got []int
	for it := v.RBegin(); !it.Equal(v.REnd()); it = it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{3, 2, 1}, got)
}

func TestIterationOverEmpty(t *testing.T) {
	mem := memory.NewGoAllocator[int]()
	v := vector.New[int](mem)

	assert.True(t, v.Begin().Equal(v.End()))
	assert.True(t, v.RBegin().Equal(v.REnd()))
}

func TestIteratorArithmetic(t *testing.T) {
	mem := memory.NewGoAllocator[int]()
	v, err := vector.Of[int](mem, 10, 20, 30, 40)
	require.NoError(t, err)

	it := v.Begin().Add(2)
	assert.Equal(t, 30, it.Value())
	assert.Equal(t, 2, it.Pos())
	assert.Equal(t, 20, it.Prev().Value())
	assert.True(t, v.Begin().Add(4).Equal(v.End()))
}

func TestRangeValidation(t *testing.T) {
	mem := memory.NewGoAllocator[int]()
	a, err := vector.Of[int](mem, 1, 2, 3)
	require.NoError(t, err)
	b, err := vector.Of[int](mem, 4, 5)
	require.NoError(t, err)

	err = a.InsertRange(0, a.Begin(), b.End())
	assert.ErrorIs(t, err, vector.ErrOutOfRange)

	err = a.InsertRange(0, a.End(), a.Begin())
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
}
