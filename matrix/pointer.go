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

// Package matrix implements the matrix-pointer abstraction that decouples
// the kernel and driver layers from storage geometry: a value-type handle
// over either panel-packed or dense strided storage, in row-major or
// column-major order, that can offset itself, transpose, and narrow to a
// single row or column.
package matrix

import "github.com/blastkernel/blast/simd"

// StorageOrder selects how a dense matrix's elements are laid out in its
// backing slice. Panel-packed storage has its own fixed internal layout
// and ignores this beyond interpreting logical rows/cols consistently.
type StorageOrder int

const (
	ColumnMajor StorageOrder = iota
	RowMajor
)

// Pointer is a value-type handle into a matrix's storage. Copies are
// cheap: every implementation carries a slice header (shared backing
// array) plus small scalar fields, never a nested pointer.
type Pointer[T simd.Real] interface {
	// At returns a pointer offset by (di, dj) in logical index.
	At(di, dj int) Pointer[T]
	// Trans returns a pointer over the transpose of the viewed matrix.
	Trans() Pointer[T]
	// Unaligned returns a pointer with aligned = false: the caller
	// promises nothing about alignment.
	Unaligned() Pointer[T]
	// Hmove advances along the major storage axis (the K-step direction
	// for an operand walked column-by-column, e.g. A in gemm_nt).
	Hmove(k int) Pointer[T]
	// Vmove advances along the minor storage axis.
	Vmove(k int) Pointer[T]

	Load() simd.Vec[T]
	MaskedLoad(mask simd.Mask[T]) simd.Vec[T]
	Store(v simd.Vec[T])
	MaskedStore(v simd.Vec[T], mask simd.Mask[T])
	Broadcast() T

	Element(i, j int) T
	SetElement(i, j int, v T)

	Aligned() bool
	Padded() bool
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
