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

import "golang.org/x/exp/constraints"

// Equal reports whether a and b hold the same number of elements with
// pairwise equal values.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.buf[i] != b.buf[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically: the first unequal element pair
// decides, and a prefix orders before its extension. The result is -1, 0
// or +1.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return +1
		}
		return 0
	})
}

// CompareFunc is Compare with a caller-supplied element ordering.
func CompareFunc[T any](a, b *Vector[T], cmp func(x, y T) int) int {
	n := a.size
	if b.size < n {
		n = b.size
	}
	for i := 0; i < n; i++ {
		if c := cmp(a.buf[i], b.buf[i]); c != 0 {
			return c
		}
	}
	switch {
	case a.size < b.size:
		return -1
	case a.size > b.size:
		return +1
	}
	return 0
}

// Less reports whether a orders strictly before b.
func Less[T constraints.Ordered](a, b *Vector[T]) bool { return Compare(a, b) < 0 }

// LessEqual reports whether a orders before b or equals it.
func LessEqual[T constraints.Ordered](a, b *Vector[T]) bool { return Compare(a, b) <= 0 }

// Greater reports whether a orders strictly after b.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool { return Compare(a, b) > 0 }

// GreaterEqual reports whether a orders after b or equals it.
func GreaterEqual[T constraints.Ordered](a, b *Vector[T]) bool { return Compare(a, b) >= 0 }
