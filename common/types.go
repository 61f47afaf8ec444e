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

package common

// CompareFn is a three-way comparison over two items: negative when a orders
// before b, zero when they are equivalent, positive when a orders after b.
type CompareFn[T any] func(a, b T) int

// ItemOrderOp resolves the ordering contract for an element type.
//
// Compare must be a strict total order over all orderable values of T.
// IsNaN reports whether an item is an unorderable sentinel (floating-point
// not-a-number); implementations for totally ordered types return false for
// every item. Compare is never invoked on items for which IsNaN is true:
// strict-mode operations reject such inputs with ErrUndefinedOrder before
// comparing, skip-mode operations exclude them from the candidate set.
type ItemOrderOp[T any] interface {
	Compare(a, b T) int
	IsNaN(item T) bool
}

// ItemLerpOp extends ItemOrderOp with the arithmetic needed by the Linear
// and Midpoint interpolation policies. frac is in [0, 1]; Lerp(lo, hi, 0)
// must equal lo and Lerp(lo, hi, 1) must equal hi.
type ItemLerpOp[T any] interface {
	ItemOrderOp[T]
	Lerp(lo, hi T, frac float64) T
}
