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
	"github.com/orderstats/orderstats-go/common"
	"github.com/orderstats/orderstats-go/view"
)

// medianOfMedians returns the index of a pivot value guaranteed to leave at
// least 3/10 of v[lo:hi) on either side of a partition. It sorts each group
// of five in place, gathers the group medians at the front of the range and
// selects their median with a selection loop that itself only ever uses
// median-of-medians pivots, keeping the whole call O(hi-lo).
func medianOfMedians[T any](v view.Mutable[T], lo, hi int, op common.ItemOrderOp[T]) int {
	n := hi - lo
	if n <= 5 {
		insertionSort(v, lo, hi, op)
		return lo + n/2
	}
	medians := 0
	for g := lo; g < hi; g += 5 {
		ge := g + 5
		if ge > hi {
			ge = hi
		}
		insertionSort(v, g, ge, op)
		v.Swap(lo+medians, g+(ge-g)/2)
		medians++
	}
	return selectGuaranteed(v, lo, lo+medians, lo+medians/2, op)
}

// selectGuaranteed places the value of the given rank at its sorted position
// within v[lo:hi) using only median-of-medians pivots and returns that
// position (which equals rank). Worst-case linear.
func selectGuaranteed[T any](v view.Mutable[T], lo, hi, rank int, op common.ItemOrderOp[T]) int {
	for hi-lo > 1 {
		p := medianOfMedians(v, lo, hi, op)
		j := Partition(v, lo, hi, p, op)
		if j == rank {
			return j
		}
		if j < rank {
			lo = j + 1
		} else {
			hi = j
		}
	}
	return lo
}
