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

	"github.com/JohnCGriffin/overflow"
)

// grownCapacity doubles the current capacity, starting from 1 when there is
// no block, until it covers required. Doubling keeps total relocation work
// across N appends linear, so appends stay amortized O(1). When doubling
// would leave the representable range the exact requirement is used
// instead.
func (v *Vector[T]) grownCapacity(required int) (int, error) {
	max := v.MaxSize()
	if required > max {
		return 0, fmt.Errorf("%w: %d slots requested, maximum %d", ErrLengthExceeded, required, max)
	}
	c := v.Cap()
	if c == 0 {
		c = 1
	}
	for c < required {
		next, ok := overflow.Mul(c, 2)
		if !ok || next > max {
			return required, nil
		}
		c = next
	}
	return c, nil
}

// ensureSpare guarantees capacity for extra more elements, reallocating
// under the strong guarantee when the current block is too small.
func (v *Vector[T]) ensureSpare(extra int) error {
	required, ok := overflow.Add(v.size, extra)
	if !ok {
		return fmt.Errorf("%w: size %d plus %d overflows", ErrLengthExceeded, v.size, extra)
	}
	if required <= v.Cap() {
		return nil
	}
	newCap, err := v.grownCapacity(required)
	if err != nil {
		return err
	}
	return v.reallocStrong(newCap)
}
