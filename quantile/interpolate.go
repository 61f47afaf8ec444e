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

package quantile

import (
	"fmt"
	"math"

	"github.com/orderstats/orderstats-go/common"
)

// Policy selects how a fractional quantile index between two integer ranks
// is resolved to a value.
type Policy int

const (
	// Lower takes the value at the rank below the fractional index.
	Lower Policy = iota
	// Higher takes the value at the rank above the fractional index.
	Higher
	// Nearest takes whichever rank is closer; an exact tie resolves to the
	// higher rank.
	Nearest
	// Linear interpolates lower + frac*(higher-lower). Requires an element
	// type with arithmetic (common.ItemLerpOp).
	Linear
	// Midpoint averages the two rank values. Same type requirement as Linear.
	Midpoint
)

func (p Policy) String() string {
	switch p {
	case Lower:
		return "lower"
	case Higher:
		return "higher"
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	case Midpoint:
		return "midpoint"
	default:
		return "unknown"
	}
}

// fractionalIndex maps a quantile to its position in the sorted order of n
// elements: q*(n-1). q=0 and q=1 land exactly on ranks 0 and n-1.
func fractionalIndex(q float64, n int) float64 {
	return q * float64(n-1)
}

func lowerRank(q float64, n int) int {
	return int(math.Floor(fractionalIndex(q, n)))
}

func higherRank(q float64, n int) int {
	return int(math.Ceil(fractionalIndex(q, n)))
}

// rankFraction is how far the fractional index sits above the lower rank,
// in [0, 1).
func rankFraction(q float64, n int) float64 {
	i := fractionalIndex(q, n)
	return i - math.Floor(i)
}

func (p Policy) needsLower(q float64, n int) bool {
	switch p {
	case Lower, Linear, Midpoint:
		return true
	case Higher:
		return false
	case Nearest:
		return rankFraction(q, n) < 0.5
	default:
		panic("invalid interpolation policy")
	}
}

func (p Policy) needsHigher(q float64, n int) bool {
	switch p {
	case Lower:
		return false
	case Higher, Linear, Midpoint:
		return true
	case Nearest:
		return rankFraction(q, n) >= 0.5
	default:
		panic("invalid interpolation policy")
	}
}

// checkSupported rejects arithmetic policies for ops without arithmetic.
// Called before any element is moved.
func checkSupported[T any](p Policy, op common.ItemOrderOp[T]) error {
	switch p {
	case Lower, Higher, Nearest:
		return nil
	case Linear, Midpoint:
		if _, ok := op.(common.ItemLerpOp[T]); !ok {
			return fmt.Errorf("%w: %s", common.ErrUnsupportedPolicy, p)
		}
		return nil
	default:
		return fmt.Errorf("%w: policy %d", common.ErrUnsupportedPolicy, int(p))
	}
}

// interpolate combines the resolved lower and higher rank values for one
// quantile. Only the values the policy declared as needed are meaningful.
func interpolate[T any](p Policy, vLo, vHi T, q float64, n int, op common.ItemOrderOp[T]) T {
	switch p {
	case Lower:
		return vLo
	case Higher:
		return vHi
	case Nearest:
		if rankFraction(q, n) < 0.5 {
			return vLo
		}
		return vHi
	case Linear:
		return op.(common.ItemLerpOp[T]).Lerp(vLo, vHi, rankFraction(q, n))
	case Midpoint:
		return op.(common.ItemLerpOp[T]).Lerp(vLo, vHi, 0.5)
	default:
		panic("invalid interpolation policy")
	}
}
