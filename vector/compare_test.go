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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoWeBegin/containers-go/memory"
	"github.com/SoWeBegin/containers-go/vector"
)

func mustOf(t *testing.T, values ...int) *vector.Vector[int] {
	t.Helper()
	v, err := vector.Of[int](memory.NewGoAllocator[int](), values...)
	require.NoError(t, err)
	return v
}

func TestEqual(t *testing.T) {
	a := mustOf(t, 1, 2, 3)
	b := mustOf(t, 1, 2, 3)
	c := mustOf(t, 1, 2)
	d := mustOf(t, 1, 2, 4)

	assert.True(t, vector.Equal(a, a), "reflexive")
	assert.True(t, vector.Equal(a, b))
	assert.True(t, vector.Equal(b, a), "symmetric")
	assert.False(t, vector.Equal(a, c), "size differs")
	assert.False(t, vector.Equal(a, d), "element differs")
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, 0},
		{"element decides", []int{1, 2, 3}, []int{1, 2, 4}, -1},
		{"prefix orders first", []int{1, 2}, []int{1, 2, 3}, -1},
		{"greater", []int{2}, []int{1, 9, 9}, +1},
		{"both empty", nil, nil, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := mustOf(t, test.a...)
			b := mustOf(t, test.b...)
			assert.Equal(t, test.want, vector.Compare(a, b))
			assert.Equal(t, -test.want, vector.Compare(b, a))
		})
	}
}

func TestDerivedRelations(t *testing.T) {
	a := mustOf(t, 1, 2, 3)
	b := mustOf(t, 1, 2, 4)

	assert.True(t, vector.Less(a, b))
	assert.True(t, vector.LessEqual(a, b))
	assert.True(t, vector.LessEqual(a, a))
	assert.True(t, vector.Greater(b, a))
	assert.True(t, vector.GreaterEqual(b, a))
	assert.True(t, vector.GreaterEqual(a, a))
	assert.False(t, vector.Less(b, a))
}

func TestEqualFunc(t *testing.T) {
	mem := memory.NewGoAllocator[string]()
	a, err := vector.Of[string](mem, "GO", "Lang")
	require.NoError(t, err)
	b, err := vector.Of[string](mem, "go", "lang")
	require.NoError(t, err)

	assert.False(t, vector.Equal(a, b))
	assert.True(t, vector.EqualFunc(a, b, strings.EqualFold))
}

func TestCompareFunc(t *testing.T) {
	mem := memory.NewGoAllocator[string]()
	a, err := vector.Of[string](mem, "b")
	require.NoError(t, err)
	b, err := vector.Of[string](mem, "A", "z")
	require.NoError(t, err)

	cmp := func(x, y string) int { return strings.Compare(strings.ToLower(x), strings.ToLower(y)) }
	assert.Equal(t, +1, vector.CompareFunc(a, b, cmp))
	assert.Equal(t, -1, vector.CompareFunc(b, a, cmp))
}
