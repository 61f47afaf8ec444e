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

package minmax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderstats/orderstats-go/common"
	"github.com/orderstats/orderstats-go/view"
)

func TestArgMinArgMax(t *testing.T) {
	data := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	op := common.ItemOrderDoubleOp{}
	v := view.NewSlice(data)

	i, err := ArgMin(v, op)
	require.NoError(t, err)
	assert.Equal(t, 1, i, "first of the two 1s wins")

	i, err = ArgMax(v, op)
	require.NoError(t, err)
	assert.Equal(t, 5, i)

	minVal, err := Min(v, op)
	require.NoError(t, err)
	assert.Equal(t, 1.0, minVal)

	maxVal, err := Max(v, op)
	require.NoError(t, err)
	assert.Equal(t, 9.0, maxVal)
}

func TestArgExtremaDoNotReorder(t *testing.T) {
	data := []float64{3, 1, 4, 1, 5}
	_, err := ArgMin(view.NewSlice(data), common.ItemOrderDoubleOp{})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 4, 1, 5}, data)
}

func TestArgMinSkipNaN(t *testing.T) {
	op := common.ItemOrderDoubleOp{}

	// [3.0, NaN, 1.0]: strict mode refuses, skip mode finds index 2.
	data := []float64{3.0, math.NaN(), 1.0}
	_, err := ArgMin(view.NewSlice(data), op)
	assert.ErrorIs(t, err, common.ErrUndefinedOrder)

	i, err := ArgMinSkipNaN(view.NewSlice(data), op)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = ArgMaxSkipNaN(view.NewSlice(data), op)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	got, err := MinSkipNaN(view.NewSlice(data), op)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = MaxSkipNaN(view.NewSlice(data), op)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestExtremaErrors(t *testing.T) {
	op := common.ItemOrderDoubleOp{}

	_, err := ArgMin(view.NewSlice([]float64{}), op)
	assert.ErrorIs(t, err, common.ErrEmptyInput)

	_, err = ArgMaxSkipNaN(view.NewSlice([]float64{}), op)
	assert.ErrorIs(t, err, common.ErrEmptyInput)

	_, err = ArgMinSkipNaN(view.NewSlice([]float64{math.NaN(), math.NaN()}), op)
	assert.ErrorIs(t, err, common.ErrEmptyInput)

	_, err = Max(view.NewSlice([]float64{1, math.NaN()}), op)
	assert.ErrorIs(t, err, common.ErrUndefinedOrder)
}

func TestExtremaAlongAxis(t *testing.T) {
	// Column extrema of a 3x2 matrix.
	data := []int64{
		4, 7,
		1, 9,
		6, 2,
	}
	lanes := view.Lanes(data, []int{3, 2}, 0)
	require.Len(t, lanes, 2)
	op := common.ItemOrderLongOp{}

	i, err := ArgMin(lanes[0], op)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = ArgMax(lanes[1], op)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
}

func TestExtremaOnStrings(t *testing.T) {
	data := []string{"dog", "cat", "elephant", "ant", "bear"}
	op := common.ItemOrderStringOp{}

	got, err := Min(view.NewSlice(data), op)
	require.NoError(t, err)
	assert.Equal(t, "ant", got)

	got, err = Max(view.NewSlice(data), op)
	require.NoError(t, err)
	assert.Equal(t, "elephant", got)
}
