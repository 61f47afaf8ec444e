/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package selection

import (
	"fmt"
	"math/bits"

	"github.com/orderstats/orderstats-go/common"
	"github.com/orderstats/orderstats-go/view"
)

// Select returns the value that would occupy sorted position rank if v[lo:hi)
// were sorted in increasing order. The range is permuted in place so that the
// returned value sits at index rank, everything left of it compares <= and
// everything right of it compares >=; no other ordering survives the call.
//
// Pivots come from a median-of-three sample. A shrinkage watchdog charges
// every partition that fails to shed at least a quarter of the range against
// a logarithmic budget; once the budget is spent the remainder of the call
// uses median-of-medians pivots, bounding the worst case to O(hi-lo).
func Select[T any](v view.Mutable[T], lo, hi, rank int, op common.ItemOrderOp[T]) (T, error) {
	var zero T
	if hi <= lo {
		return zero, common.ErrEmptyInput
	}
	if rank < lo || rank >= hi {
		return zero, fmt.Errorf("%w: rank %d not in [%d, %d)", common.ErrOutOfBounds, rank, lo, hi)
	}
	budget := 2 * bits.Len(uint(hi-lo))
	for hi-lo > 1 {
		var p int
		if budget > 0 {
			p = medianOfThree(v, lo, hi, op)
		} else {
			p = medianOfMedians(v, lo, hi, op)
		}
		j := Partition(v, lo, hi, p, op)
		if j == rank {
			return v.At(j), nil
		}
		size := hi - lo
		if j < rank {
			lo = j + 1
		} else {
			hi = j
		}
		if hi-lo > size-size/4 {
			budget--
		}
	}
	return v.At(lo), nil
}
