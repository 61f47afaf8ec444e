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

package view

// Strided is one lane of a multi-dimensional array: n elements of a flat
// buffer starting at offset, stride positions apart. It is the shape an
// axis-addressable array hands the selection engine when operating along one
// of its axes.
type Strided[T any] struct {
	data   []T
	offset int
	stride int
	n      int
}

func NewStrided[T any](data []T, offset, stride, n int) Mutable[T] {
	return Strided[T]{data: data, offset: offset, stride: stride, n: n}
}

func (s Strided[T]) Len() int {
	return s.n
}

func (s Strided[T]) At(i int) T {
	return s.data[s.offset+i*s.stride]
}

func (s Strided[T]) Set(i int, item T) {
	s.data[s.offset+i*s.stride] = item
}

func (s Strided[T]) Swap(i, j int) {
	a, b := s.offset+i*s.stride, s.offset+j*s.stride
	s.data[a], s.data[b] = s.data[b], s.data[a]
}

// Lanes decomposes a row-major array of the given shape into the 1-D lanes
// running along axis. Each lane aliases the original buffer, so mutating a
// lane mutates the array. Panics if axis is out of range or the shape does
// not match the buffer length.
func Lanes[T any](data []T, shape []int, axis int) []Mutable[T] {
	if axis < 0 || axis >= len(shape) {
		panic("axis out of range")
	}
	total := 1
	for _, d := range shape {
		total *= d
	}
	if total != len(data) {
		panic("shape does not match buffer length")
	}

	// Row-major strides.
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}

	numLanes := 1
	for i, d := range shape {
		if i != axis {
			numLanes *= d
		}
	}
	lanes := make([]Mutable[T], 0, numLanes)
	if numLanes == 0 {
		return lanes
	}

	// Iterate the index space of the remaining axes and emit one lane per
	// combination.
	index := make([]int, len(shape))
	for {
		offset := 0
		for i, v := range index {
			offset += v * strides[i]
		}
		lanes = append(lanes, NewStrided(data, offset, strides[axis], shape[axis]))

		i := len(shape) - 1
		for ; i >= 0; i-- {
			if i == axis {
				continue
			}
			index[i]++
			if index[i] < shape[i] {
				break
			}
			index[i] = 0
		}
		if i < 0 {
			return lanes
		}
	}
}
