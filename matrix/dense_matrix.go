// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matrix

import "github.com/blastkernel/blast/simd"

// DenseMatrix is the standard strided collaborator the panel-packed
// containers pack from and unpack to, and that test reference
// implementations compute against directly.
type DenseMatrix[T simd.Real] struct {
	data       []T
	rows, cols int
	order      StorageOrder
	spacing    int
}

// NewDenseMatrix allocates a zeroed rows x cols matrix with the given
// storage order.
func NewDenseMatrix[T simd.Real](rows, cols int, order StorageOrder) *DenseMatrix[T] {
	spacing := rows
	if order == RowMajor {
		spacing = cols
	}
	return &DenseMatrix[T]{
		data: make([]T, rows*cols), rows: rows, cols: cols,
		order: order, spacing: spacing,
	}
}

func (d *DenseMatrix[T]) Rows() int    { return d.rows }
func (d *DenseMatrix[T]) Cols() int    { return d.cols }
func (d *DenseMatrix[T]) Data() []T    { return d.data }
func (d *DenseMatrix[T]) Spacing() int { return d.spacing }

func (d *DenseMatrix[T]) index(i, j int) int {
	if d.order == ColumnMajor {
		return j*d.spacing + i
	}
	return i*d.spacing + j
}

func (d *DenseMatrix[T]) At(i, j int) T       { return d.data[d.index(i, j)] }
func (d *DenseMatrix[T]) Set(i, j int, v T)   { d.data[d.index(i, j)] = v }

// Ptr returns a Pointer over the full matrix, aligned and padded flags
// both false (a dense matrix makes neither guarantee).
func (d *DenseMatrix[T]) Ptr() Pointer[T] {
	return NewDensePointer[T](d.data, d.spacing, d.order, false, false)
}
