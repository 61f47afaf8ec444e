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
	"slices"

	"github.com/orderstats/orderstats-go/common"
	"github.com/orderstats/orderstats-go/view"
)

// rankTask is one pending unit of multi-rank work: the target ranks
// ranks[rankLo:rankHi] are known to lie inside the index range [lo, hi).
type rankTask struct {
	lo, hi         int
	rankLo, rankHi int
}

// SelectMany resolves every requested rank against v[lo:hi) in one combined
// traversal, sharing partitioning work across ranks instead of running one
// full pass per rank. Duplicate ranks are collapsed. The result maps each
// distinct requested rank to its value; v is left permuted so that every
// resolved rank sits at its sorted position.
//
// The middle rank of each pending subset is resolved first; once its value is
// in place no lower rank can live at a higher index and vice versa, so the
// lower and upper halves of the subset recurse into the two tightened
// subranges. An explicit work stack holds the pending subsets, bounding stack
// growth by the number of distinct ranks rather than by the range length.
func SelectMany[T any](v view.Mutable[T], lo, hi int, ranks []int, op common.ItemOrderOp[T]) (map[int]T, error) {
	if len(ranks) == 0 {
		return map[int]T{}, nil
	}
	if hi <= lo {
		return nil, common.ErrEmptyInput
	}
	sorted := slices.Clone(ranks)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	if sorted[0] < lo || sorted[len(sorted)-1] >= hi {
		return nil, fmt.Errorf("%w: ranks must be in [%d, %d)", common.ErrOutOfBounds, lo, hi)
	}

	out := make(map[int]T, len(sorted))
	stack := make([]rankTask, 0, 16)
	stack = append(stack, rankTask{lo: lo, hi: hi, rankLo: 0, rankHi: len(sorted)})
	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if task.rankLo >= task.rankHi {
			continue
		}
		mid := task.rankLo + (task.rankHi-task.rankLo)/2
		rank := sorted[mid]
		item, err := Select(v, task.lo, task.hi, rank, op)
		if err != nil {
			return nil, err
		}
		out[rank] = item
		stack = append(stack,
			rankTask{lo: task.lo, hi: rank, rankLo: task.rankLo, rankHi: mid},
			rankTask{lo: rank + 1, hi: task.hi, rankLo: mid + 1, rankHi: task.rankHi},
		)
	}
	return out, nil
}
