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

// Package selection partially reorders mutable views so that requested ranks
// land at their sorted positions without a full sort. All operations permute
// elements in place and never change the multiset of values.
package selection

import (
	"github.com/orderstats/orderstats-go/common"
	"github.com/orderstats/orderstats-go/view"
)

// Partition reorders v[lo:hi) around the value at index p and returns the
// index where that value ends up. Afterwards every element left of the
// returned index compares <= the pivot value and every element right of it
// compares >= the pivot value; ties may land on either side and no ordering
// is guaranteed within each side. Single pass, O(hi-lo) comparisons.
// Ranges shorter than two elements are already partitioned; p is ignored and
// lo is returned unchanged.
func Partition[T any](v view.Mutable[T], lo, hi, p int, op common.ItemOrderOp[T]) int {
	if hi-lo < 2 {
		return lo
	}
	v.Swap(lo, p)
	pivot := v.At(lo)
	i := lo
	j := hi
	for {
		for op.Compare(v.At(i+1), pivot) < 0 {
			i++
			if i == hi-1 {
				break
			}
		}
		i++
		for op.Compare(pivot, v.At(j-1)) < 0 {
			j--
			if j == lo+1 {
				break
			}
		}
		j--
		if i >= j {
			break
		}
		v.Swap(i, j)
	}
	v.Swap(lo, j)
	return j
}

// medianOfThree returns the index of the median of the first, middle and
// last element of v[lo:hi). Cheap pivot heuristic for the common path.
func medianOfThree[T any](v view.Mutable[T], lo, hi int, op common.ItemOrderOp[T]) int {
	ia := lo
	ib := lo + (hi-lo)/2
	ic := hi - 1
	if op.Compare(v.At(ia), v.At(ib)) > 0 {
		ia, ib = ib, ia
	}
	if op.Compare(v.At(ib), v.At(ic)) > 0 {
		ib = ic
		if op.Compare(v.At(ia), v.At(ib)) > 0 {
			ib = ia
		}
	}
	return ib
}

// insertionSort orders v[lo:hi) in place. Used only on constant-size group
// ranges by the median-of-medians pivot.
func insertionSort[T any](v view.Mutable[T], lo, hi int, op common.ItemOrderOp[T]) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && op.Compare(v.At(j), v.At(j-1)) < 0; j-- {
			v.Swap(j, j-1)
		}
	}
}
