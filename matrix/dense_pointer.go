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

// DensePointer views a standard strided matrix with spacing as its
// leading dimension. The matrix-pointer abstraction unifies this with
// PanelPointer behind the Pointer interface, so drivers are written once
// and work over either layout.
type DensePointer[T simd.Real] struct {
	data     []T
	order    StorageOrder
	spacing  int // leading dimension, in elements
	row, col int
	trans    bool
	aligned  bool
	padded   bool
}

func NewDensePointer[T simd.Real](data []T, spacing int, order StorageOrder, aligned, padded bool) DensePointer[T] {
	return DensePointer[T]{data: data, order: order, spacing: spacing, aligned: aligned, padded: padded}
}

func (p DensePointer[T]) viewToStorage(i, j int) (int, int) {
	if p.trans {
		return p.row + j, p.col + i
	}
	return p.row + i, p.col + j
}

func (p DensePointer[T]) index(r, c int) int {
	if p.order == ColumnMajor {
		return c*p.spacing + r
	}
	return r*p.spacing + c
}

func (p DensePointer[T]) At(di, dj int) Pointer[T] {
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

func (p DensePointer[T]) Trans() Pointer[T] {
	np := p
	np.trans = !np.trans
	return np
}

func (p DensePointer[T]) Unaligned() Pointer[T] {
	np := p
	np.aligned = false
	return np
}

func (p DensePointer[T]) Hmove(k int) Pointer[T] { return p.At(0, k) }
func (p DensePointer[T]) Vmove(k int) Pointer[T] { return p.At(k, 0) }

func (p DensePointer[T]) Element(i, j int) T {
	r, c := p.viewToStorage(i, j)
	return p.data[p.index(r, c)]
}

func (p DensePointer[T]) SetElement(i, j int, v T) {
	r, c := p.viewToStorage(i, j)
	p.data[p.index(r, c)] = v
}

func (p DensePointer[T]) Load() simd.Vec[T] {
	n := simd.Lanes[T]()
	tmp := make([]T, n)
	for k := range tmp {
		tmp[k] = p.Element(k, 0)
	}
	return simd.Load(tmp)
}

func (p DensePointer[T]) MaskedLoad(mask simd.Mask[T]) simd.Vec[T] {
	tmp := make([]T, mask.NumLanes())
	for k := range tmp {
		if mask.Active(k) {
			tmp[k] = p.Element(k, 0)
		}
	}
	return simd.MaskedLoad(tmp, mask)
}

func (p DensePointer[T]) Store(v simd.Vec[T]) {
	data := v.Data()
	for k := 0; k < len(data); k++ {
		p.SetElement(k, 0, data[k])
	}
}

func (p DensePointer[T]) MaskedStore(v simd.Vec[T], mask simd.Mask[T]) {
	data := v.Data()
	for k := 0; k < len(data); k++ {
		if mask.Active(k) {
			p.SetElement(k, 0, data[k])
		}
	}
}

func (p DensePointer[T]) Broadcast() T { return p.Element(0, 0) }

func (p DensePointer[T]) Aligned() bool { return p.aligned }
func (p DensePointer[T]) Padded() bool  { return p.padded }
