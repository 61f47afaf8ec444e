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

// Package quantile maps fractional quantile requests onto the selection
// engine and combines the resolved rank values per an interpolation policy.
//
// Every operation permutes the supplied view in place as a side effect of
// resolving ranks; callers that need the original element order must pass a
// copy. The multiset of values is never changed.
package quantile

import (
	"fmt"

	"github.com/orderstats/orderstats-go/common"
	"github.com/orderstats/orderstats-go/selection"
	"github.com/orderstats/orderstats-go/view"
)

// Quantile returns the q-th quantile of v under the given interpolation
// policy. q must lie in [0, 1]; q=0 is the minimum and q=1 the maximum.
// Strict NaN mode: any unorderable element fails with ErrUndefinedOrder
// before the view is mutated.
func Quantile[T any](v view.Mutable[T], q float64, policy Policy, op common.ItemOrderOp[T]) (T, error) {
	var zero T
	res, err := Quantiles(v, []float64{q}, policy, op)
	if err != nil {
		return zero, err
	}
	return res[0], nil
}

// Quantiles resolves a batch of quantiles against the same data in one
// combined traversal, sharing partitioning work across all requested ranks.
// Results are aligned with qs; duplicate entries are allowed and cheap.
func Quantiles[T any](v view.Mutable[T], qs []float64, policy Policy, op common.ItemOrderOp[T]) ([]T, error) {
	if err := checkRequest(v, qs, policy, op); err != nil {
		return nil, err
	}
	for i, n := 0, v.Len(); i < n; i++ {
		if op.IsNaN(v.At(i)) {
			return nil, fmt.Errorf("%w: unorderable value at index %d", common.ErrUndefinedOrder, i)
		}
	}
	return quantilesPrefix(v, v.Len(), qs, policy, op)
}

// QuantileSkipNaN is Quantile in skip mode: unorderable elements are moved
// out of the candidate set before selection begins. Fails with ErrEmptyInput
// when no orderable element remains.
func QuantileSkipNaN[T any](v view.Mutable[T], q float64, policy Policy, op common.ItemOrderOp[T]) (T, error) {
	var zero T
	res, err := QuantilesSkipNaN(v, []float64{q}, policy, op)
	if err != nil {
		return zero, err
	}
	return res[0], nil
}

// QuantilesSkipNaN is the batch variant of QuantileSkipNaN.
func QuantilesSkipNaN[T any](v view.Mutable[T], qs []float64, policy Policy, op common.ItemOrderOp[T]) ([]T, error) {
	if err := checkRequest(v, qs, policy, op); err != nil {
		return nil, err
	}
	m := compactOrderable(v, op)
	if m == 0 {
		return nil, fmt.Errorf("%w: no orderable values", common.ErrEmptyInput)
	}
	return quantilesPrefix(v, m, qs, policy, op)
}

// Median returns the 0.5 quantile.
func Median[T any](v view.Mutable[T], policy Policy, op common.ItemOrderOp[T]) (T, error) {
	return Quantile(v, 0.5, policy, op)
}

// checkRequest validates everything that can fail before any element moves.
func checkRequest[T any](v view.Mutable[T], qs []float64, policy Policy, op common.ItemOrderOp[T]) error {
	if err := checkSupported(policy, op); err != nil {
		return err
	}
	for _, q := range qs {
		if q < 0 || q > 1 {
			return fmt.Errorf("%w: %v", common.ErrInvalidQuantile, q)
		}
	}
	if v.Len() == 0 {
		return common.ErrEmptyInput
	}
	return nil
}

// quantilesPrefix resolves qs against the candidate set v[0:n). The target
// ranks of all requests are gathered first so the selection engine can
// resolve them in a single shared traversal.
func quantilesPrefix[T any](v view.Mutable[T], n int, qs []float64, policy Policy, op common.ItemOrderOp[T]) ([]T, error) {
	ranks := make([]int, 0, 2*len(qs))
	for _, q := range qs {
		if policy.needsLower(q, n) {
			ranks = append(ranks, lowerRank(q, n))
		}
		if policy.needsHigher(q, n) {
			ranks = append(ranks, higherRank(q, n))
		}
	}
	resolved, err := selection.SelectMany(v, 0, n, ranks, op)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(qs))
	for i, q := range qs {
		var vLo, vHi T
		if policy.needsLower(q, n) {
			vLo = resolved[lowerRank(q, n)]
		}
		if policy.needsHigher(q, n) {
			vHi = resolved[higherRank(q, n)]
		}
		out[i] = interpolate(policy, vLo, vHi, q, n, op)
	}
	return out, nil
}

// compactOrderable swaps every unorderable element to the tail of v and
// returns the length of the orderable prefix. Two-pointer, single pass.
func compactOrderable[T any](v view.Mutable[T], op common.ItemOrderOp[T]) int {
	i := 0
	j := v.Len() - 1
	for {
		for i <= j && !op.IsNaN(v.At(i)) {
			i++
		}
		for j > i && op.IsNaN(v.At(j)) {
			j--
		}
		if i >= j {
			return i
		}
		v.Swap(i, j)
		i++
		j--
	}
}
