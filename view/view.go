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

// Package view defines the mutable sequence boundary consumed by the
// selection and quantile packages. Selection permutes elements through this
// interface in place; it never changes the multiset of values behind it.
// Callers that need the original order must operate on a copy.
package view

// Mutable is a mutably borrowed, index-addressable lane of items. The caller
// owns the underlying storage for the duration of the call.
type Mutable[T any] interface {
	Len() int
	At(i int) T
	Set(i int, item T)
	Swap(i, j int)
}

// Slice adapts a plain slice to the Mutable interface.
type Slice[T any] []T

func (s Slice[T]) Len() int       { return len(s) }
func (s Slice[T]) At(i int) T     { return s[i] }
func (s Slice[T]) Set(i int, v T) { s[i] = v }
func (s Slice[T]) Swap(i, j int)  { s[i], s[j] = s[j], s[i] }

// NewSlice wraps a slice as a Mutable lane. The lane aliases the slice, so
// mutating the lane mutates the slice.
func NewSlice[T any](items []T) Mutable[T] {
	return Slice[T](items)
}
