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

// PanelPointer views a panel-packed matrix: an M x N logical matrix whose
// storage is partitioned into W x W column-major tiles. Tile (I, J)
// occupies a contiguous W*W block at offset I*spacing + J*W*W, where
// spacing = ceil(N/W)*W*W; within a tile, element (i, j) sits at
// (i mod W) + (j mod W)*W.
//
// A PanelPointer is a value type: Trans, At, Hmove and Vmove all return
// new values sharing the same backing slice.
type PanelPointer[T simd.Real] struct {
	data       []T
	w          int
	rows, cols int // shape of the underlying (untransposed) storage
	spacing    int
	row, col   int // current logical position, in untransposed storage coordinates
	trans      bool
	aligned    bool
	padded     bool
}

// NewPanelPointer wraps data as a panel-packed rows x cols matrix. data
// must be at least PanelStorageLen(rows, cols) elements long and its tail
// padding must already be zeroed (the container types guarantee this).
func NewPanelPointer[T simd.Real](data []T, rows, cols int, aligned, padded bool) PanelPointer[T] {
	return NewPanelPointerWidth[T](data, rows, cols, simd.Lanes[T](), aligned, padded)
}

// NewPanelPointerWidth is NewPanelPointer with an explicit tile width,
// for tests that exercise the packing arithmetic itself independent of
// simd.Lanes[T](); production callers go through NewPanelPointer, which
// always ties the tile width to the detected lane width.
func NewPanelPointerWidth[T simd.Real](data []T, rows, cols, w int, aligned, padded bool) PanelPointer[T] {
	spacing := ceilDiv(cols, w) * w * w
	return PanelPointer[T]{
		data: data, w: w, rows: rows, cols: cols, spacing: spacing,
		aligned: aligned, padded: padded,
	}
}

// PanelStorageLen returns the number of elements a panel-packed rows x cols
// matrix occupies, including zero-padded tail tiles.
func PanelStorageLen[T simd.Real](rows, cols int) int {
	return PanelStorageLenWidth[T](rows, cols, simd.Lanes[T]())
}

// PanelStorageLenWidth is PanelStorageLen with an explicit tile width; see
// NewPanelPointerWidth.
func PanelStorageLenWidth[T simd.Real](rows, cols, w int) int {
	spacing := ceilDiv(cols, w) * w * w
	return ceilDiv(rows, w) * spacing
}

func (p PanelPointer[T]) viewToStorage(i, j int) (int, int) {
	if p.trans {
		return p.row + j, p.col + i
	}
	return p.row + i, p.col + j
}

func (p PanelPointer[T]) index(r, c int) int {
	w := p.w
	I := r / w
	J := c / w
	return I*p.spacing + J*w*w + (r%w)*1 + (c%w)*w
}

func (p PanelPointer[T]) At(di, dj int) Pointer[T] {
	np := p
	if p.trans {
		np.col += di
		np.row += dj
	} else {
		np.row += di
		np.col += dj
	}
	return np
}

func (p PanelPointer[T]) Trans() Pointer[T] {
	np := p
	np.trans = !np.trans
	return np
}

func (p PanelPointer[T]) Unaligned() Pointer[T] {
	np := p
	np.aligned = false
	return np
}

func (p PanelPointer[T]) Hmove(k int) Pointer[T] { return p.At(0, k) }
func (p PanelPointer[T]) Vmove(k int) Pointer[T] { return p.At(k, 0) }

func (p PanelPointer[T]) Element(i, j int) T {
	r, c := p.viewToStorage(i, j)
	return p.data[p.index(r, c)]
}

func (p PanelPointer[T]) SetElement(i, j int, v T) {
	r, c := p.viewToStorage(i, j)
	p.data[p.index(r, c)] = v
}

// Load reads a full SIMD vector along the view's row direction starting
// at the pointer's current logical position; panel layout guarantees this
// is a contiguous W-element read inside one tile as long as the caller
// never crosses a panel boundary (the driver layer's contract).
func (p PanelPointer[T]) Load() simd.Vec[T] {
	tmp := make([]T, p.w)
	for k := range tmp {
		tmp[k] = p.Element(k, 0)
	}
	return simd.Load(tmp)
}

func (p PanelPointer[T]) MaskedLoad(mask simd.Mask[T]) simd.Vec[T] {
	tmp := make([]T, mask.NumLanes())
	for k := range tmp {
		tmp[k] = p.Element(k, 0)
	}
	return simd.MaskedLoad(tmp, mask)
}

func (p PanelPointer[T]) Store(v simd.Vec[T]) {
	data := v.Data()
	for k := 0; k < len(data); k++ {
		p.SetElement(k, 0, data[k])
	}
}

func (p PanelPointer[T]) MaskedStore(v simd.Vec[T], mask simd.Mask[T]) {
	data := v.Data()
	for k := 0; k < len(data); k++ {
		if mask.Active(k) {
			p.SetElement(k, 0, data[k])
		}
	}
}

func (p PanelPointer[T]) Broadcast() T { return p.Element(0, 0) }

func (p PanelPointer[T]) Aligned() bool { return p.aligned }
func (p PanelPointer[T]) Padded() bool  { return p.padded }
