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

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// NaturalOrderOp orders any totally ordered type by its natural order.
// It reports no item as unorderable, which makes it wrong for float element
// types that may carry NaN; use ItemOrderDoubleOp or ItemOrderFloatOp there.
type NaturalOrderOp[T constraints.Ordered] struct{}

func (NaturalOrderOp[T]) Compare(a, b T) int {
	return cmp.Compare(a, b)
}

func (NaturalOrderOp[T]) IsNaN(item T) bool {
	return false
}
