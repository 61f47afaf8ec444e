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

// Package testutils generates deterministic pseudo-random test vectors so
// randomized property tests reproduce without a seed flag.
package testutils

import (
	"encoding/binary"

	"github.com/twmb/murmur3"
)

const defaultVectorSeed = uint64(9001)

// Source yields a deterministic stream of 64-bit values derived from a seed
// by hashing a counter.
type Source struct {
	seed    uint64
	counter uint64
	scratch [8]byte
}

func NewSource(seed uint64) *Source {
	return &Source{seed: seed}
}

func (s *Source) Next() uint64 {
	s.counter++
	binary.LittleEndian.PutUint64(s.scratch[:], s.counter)
	return murmur3.SeedSum64(s.seed, s.scratch[:])
}

// RandomDoubles returns n deterministic float64 values in [0, 1).
func RandomDoubles(n int, seed uint64) []float64 {
	src := NewSource(seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(src.Next()>>11) / float64(uint64(1)<<53)
	}
	return out
}

// RandomLongs returns n deterministic int64 values in [0, bound).
func RandomLongs(n int, bound int64, seed uint64) []int64 {
	src := NewSource(seed)
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(src.Next() % uint64(bound))
	}
	return out
}

// ShuffledLongs returns the values 0..n-1 in a deterministic shuffled order.
func ShuffledLongs(n int, seed uint64) []int64 {
	src := NewSource(seed)
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(i)
	}
	for i := n - 1; i > 0; i-- {
		j := int(src.Next() % uint64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// DefaultSeed is the seed used by tests that need only one vector.
func DefaultSeed() uint64 {
	return defaultVectorSeed
}
