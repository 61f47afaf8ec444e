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

import "errors"

// Error kinds shared by all order-statistics operations. They are
// deterministic precondition failures, never transient: callers should test
// them with errors.Is and must not retry.
var (
	// ErrEmptyInput is returned when an operation is requested on zero
	// orderable elements.
	ErrEmptyInput = errors.New("operation is undefined for empty input")

	// ErrOutOfBounds is returned when a requested rank or index is outside
	// the addressed range.
	ErrOutOfBounds = errors.New("rank out of bounds")

	// ErrInvalidQuantile is returned when a quantile lies outside [0, 1].
	ErrInvalidQuantile = errors.New("quantile must be between 0 and 1 inclusive")

	// ErrUndefinedOrder is returned by strict-mode operations when the data
	// contains a value with no defined ordering, such as a floating-point NaN.
	ErrUndefinedOrder = errors.New("ordering is undefined for input value")

	// ErrUnsupportedPolicy is returned when an interpolation policy that
	// requires arithmetic is requested for an element type without it.
	ErrUnsupportedPolicy = errors.New("interpolation policy unsupported for item type")
)
