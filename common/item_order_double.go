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

import "math"

// ItemOrderDoubleOp orders float64 items. NaN values are reported as
// unorderable rather than folded into the order.
type ItemOrderDoubleOp struct{}

func (ItemOrderDoubleOp) Compare(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func (ItemOrderDoubleOp) IsNaN(item float64) bool {
	return math.IsNaN(item)
}

func (ItemOrderDoubleOp) Lerp(lo, hi float64, frac float64) float64 {
	return lo + frac*(hi-lo)
}
