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

import (
	"unsafe"

	"github.com/blastkernel/blast/internal/config"
	"github.com/blastkernel/blast/simd"
)

// StaticPanelMatrix and DynamicPanelMatrix exist only to own
// cache-line-aligned memory in the panel-packed layout and produce
// matrix pointers over it; both allocate exactly once, at construction.
// Go has no compile-time integer shape parameters, so "static" here means
// "shape fixed for the container's lifetime", not a distinct generic
// type from "dynamic" — both are backed by the same implementation.

const cacheLineBytes = 64

// PanelMatrix is the shared implementation behind StaticPanelMatrix and
// DynamicPanelMatrix (kept as two constructors rather than two types per
// DESIGN.md's resolution of the register-tile Open Question: one
// concrete implementation, shape fixed at construction either way).
type PanelMatrix[T simd.Real] struct {
	data       []T
	rows, cols int
	w          int
}

// panelWidth returns simd.Lanes[T](), unless BLAST_PANEL_OVERRIDE names a
// different tile width for testing the packing arithmetic in isolation.
func panelWidth[T simd.Real]() int {
	if w := config.PanelOverride(); w > 0 {
		return w
	}
	return simd.Lanes[T]()
}

// newPanelStorage allocates a backing slice of n elements whose first
// element sits at a cache-line-aligned address. Go's allocator aligns a
// []T only to T's own required alignment, never to an arbitrary larger
// boundary, so this over-allocates by one cache line of elements and slices
// back down to the first aligned element, the same trick malloc_aligned
// callers use when handed a plain allocator.
func newPanelStorage[T simd.Real](rows, cols, w int) []T {
	n := PanelStorageLenWidth[T](rows, cols, w)
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	extra := cacheLineBytes / elemSize
	buf := make([]T, n+extra)

	base := uintptr(unsafe.Pointer(&buf[0]))
	misalignment := base % cacheLineBytes
	offset := 0
	if misalignment != 0 {
		offset = int(cacheLineBytes-misalignment) / elemSize
	}
	return buf[offset : offset+n]
}

// NewStaticPanelMatrix constructs a panel-packed rows x cols matrix whose
// shape does not change for the container's lifetime.
func NewStaticPanelMatrix[T simd.Real](rows, cols int) *PanelMatrix[T] {
	w := panelWidth[T]()
	return &PanelMatrix[T]{data: newPanelStorage[T](rows, cols, w), rows: rows, cols: cols, w: w}
}

// NewDynamicPanelMatrix constructs a panel-packed matrix with a runtime
// shape determined at construction, identical in layout and operations
// to NewStaticPanelMatrix.
func NewDynamicPanelMatrix[T simd.Real](rows, cols int) *PanelMatrix[T] {
	return NewStaticPanelMatrix[T](rows, cols)
}

func (m *PanelMatrix[T]) Rows() int { return m.rows }
func (m *PanelMatrix[T]) Cols() int { return m.cols }
func (m *PanelMatrix[T]) Data() []T { return m.data }

// Ptr returns an aligned, padded Pointer over the whole matrix.
func (m *PanelMatrix[T]) Ptr() Pointer[T] {
	return NewPanelPointerWidth[T](m.data, m.rows, m.cols, m.w, true, true)
}

func (m *PanelMatrix[T]) Spacing() int {
	w := m.w
	return ceilDiv(m.cols, w) * w * w
}

// Pack copies dense into this panel-packed container, overwriting padding
// tail elements with zero.
func (m *PanelMatrix[T]) Pack(dense *DenseMatrix[T]) {
	for i := range m.data {
		m.data[i] = 0
	}
	p := m.Ptr()
	for j := 0; j < m.cols; j++ {
		for i := 0; i < m.rows; i++ {
			p.SetElement(i, j, dense.At(i, j))
		}
	}
}

// Unpack copies this panel-packed container into dense, which must already
// have matching shape.
func (m *PanelMatrix[T]) Unpack(dense *DenseMatrix[T]) {
	p := m.Ptr()
	for j := 0; j < m.cols; j++ {
		for i := 0; i < m.rows; i++ {
			dense.Set(i, j, p.Element(i, j))
		}
	}
}
