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

// Package minmax finds extrema with a single linear scan over the total-order
// comparator. Nothing is reordered. Strict variants reject unorderable values
// with ErrUndefinedOrder; SkipNaN variants exclude them from the candidate
// set. Among equal extrema the lowest index wins.
package minmax

import (
	"fmt"

	"github.com/orderstats/orderstats-go/common"
	"github.com/orderstats/orderstats-go/view"
)

// ArgMin returns the index of the minimal value of v.
func ArgMin[T any](v view.Mutable[T], op common.ItemOrderOp[T]) (int, error) {
	return argExtremum(v, op, false, true)
}

// ArgMax returns the index of the maximal value of v.
func ArgMax[T any](v view.Mutable[T], op common.ItemOrderOp[T]) (int, error) {
	return argExtremum(v, op, false, false)
}

// ArgMinSkipNaN returns the index of the minimal orderable value of v,
// skipping unorderable entries.
func ArgMinSkipNaN[T any](v view.Mutable[T], op common.ItemOrderOp[T]) (int, error) {
	return argExtremum(v, op, true, true)
}

// ArgMaxSkipNaN returns the index of the maximal orderable value of v,
// skipping unorderable entries.
func ArgMaxSkipNaN[T any](v view.Mutable[T], op common.ItemOrderOp[T]) (int, error) {
	return argExtremum(v, op, true, false)
}

// Min returns the minimal value of v.
func Min[T any](v view.Mutable[T], op common.ItemOrderOp[T]) (T, error) {
	i, err := ArgMin(v, op)
	return valueAt(v, i, err)
}

// Max returns the maximal value of v.
func Max[T any](v view.Mutable[T], op common.ItemOrderOp[T]) (T, error) {
	i, err := ArgMax(v, op)
	return valueAt(v, i, err)
}

// MinSkipNaN returns the minimal orderable value of v.
func MinSkipNaN[T any](v view.Mutable[T], op common.ItemOrderOp[T]) (T, error) {
	i, err := ArgMinSkipNaN(v, op)
	return valueAt(v, i, err)
}

// MaxSkipNaN returns the maximal orderable value of v.
func MaxSkipNaN[T any](v view.Mutable[T], op common.ItemOrderOp[T]) (T, error) {
	i, err := ArgMaxSkipNaN(v, op)
	return valueAt(v, i, err)
}

func argExtremum[T any](v view.Mutable[T], op common.ItemOrderOp[T], skipNaN, wantMin bool) (int, error) {
	n := v.Len()
	if n == 0 {
		return 0, common.ErrEmptyInput
	}
	best := -1
	var bestItem T
	for i := 0; i < n; i++ {
		item := v.At(i)
		if op.IsNaN(item) {
			if skipNaN {
				continue
			}
			return 0, fmt.Errorf("%w: unorderable value at index %d", common.ErrUndefinedOrder, i)
		}
		if best == -1 {
			best, bestItem = i, item
			continue
		}
		c := op.Compare(item, bestItem)
		if (wantMin && c < 0) || (!wantMin && c > 0) {
			best, bestItem = i, item
		}
	}
	if best == -1 {
		return 0, fmt.Errorf("%w: no orderable values", common.ErrEmptyInput)
	}
	return best, nil
}

func valueAt[T any](v view.Mutable[T], i int, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	return v.At(i), nil
}
