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

// ItemOrderFloatOp orders float32 items. NaN values are reported as
// unorderable rather than folded into the order.
type ItemOrderFloatOp struct{}

func (ItemOrderFloatOp) Compare(a, b float32) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func (ItemOrderFloatOp) IsNaN(item float32) bool {
	return math.IsNaN(float64(item))
}

func (ItemOrderFloatOp) Lerp(lo, hi float32, frac float64) float32 {
	return float32(float64(lo) + frac*(float64(hi)-float64(lo)))
}
