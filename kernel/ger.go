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

package kernel

import (
	"github.com/blastkernel/blast/matrix"
	"github.com/blastkernel/blast/simd"
)

// Ger is the innermost hot path: tile += alpha * a * bT, for a column
// vector a of length tile.Rows() and a row vector b of length tile.Cols().
// Phase one materializes the RM scaled column registers once, outside the
// j loop, matching the register-pressure budget the tile was constructed
// under.
func (t *RegisterTile[T]) Ger(alpha T, a, b matrix.VectorPointer[T]) {
	ax := make([]simd.Vec[T], t.rowGroups())
	for i := range ax {
		ax[i] = scale(alpha, a.Slice(t.w*i).Load(t.w))
	}
	for j := 0; j < t.n; j++ {
		bx := simd.Set(b.At(j))
		for i := range ax {
			t.regs[i][j] = simd.FMA(ax[i], bx, t.regs[i][j])
		}
	}
}

// GerPartial is Ger short-circuited to the leading (m, n) submatrix: the
// column loop stops at j >= n, and row groups with w*i >= m are skipped.
func (t *RegisterTile[T]) GerPartial(alpha T, a, b matrix.VectorPointer[T], m, n int) {
	fullRows, rem := m/t.w, m%t.w
	rowLimit := fullRows
	if rem > 0 {
		rowLimit = fullRows + 1
	}
	if rowLimit > t.rowGroups() {
		rowLimit = t.rowGroups()
	}
	ax := make([]simd.Vec[T], rowLimit)
	for i := 0; i < rowLimit; i++ {
		if i < fullRows {
			ax[i] = scale(alpha, a.Slice(t.w*i).Load(t.w))
		} else {
			ax[i] = scale(alpha, a.Slice(t.w*i).MaskedLoad(simd.TailMask[T](rem)))
		}
	}
	for j := 0; j < n && j < t.n; j++ {
		bx := simd.Set(b.At(j))
		for i := 0; i < rowLimit; i++ {
			t.regs[i][j] = simd.FMA(ax[i], bx, t.regs[i][j])
		}
	}
}
