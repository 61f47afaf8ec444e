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

// ItemOrderLongOp orders int64 items. Lerp rounds half away from zero so the
// midpoint of two adjacent integers resolves deterministically.
type ItemOrderLongOp struct{}

func (ItemOrderLongOp) Compare(a, b int64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func (ItemOrderLongOp) IsNaN(item int64) bool {
	return false
}

func (ItemOrderLongOp) Lerp(lo, hi int64, frac float64) int64 {
	return lo + int64(math.Round(frac*float64(hi-lo)))
}
