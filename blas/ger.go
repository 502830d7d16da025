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

package blas

import (
	"github.com/blastkernel/blast/internal/blastlog"
	"github.com/blastkernel/blast/kernel"
	"github.com/blastkernel/blast/matrix"
	"github.com/blastkernel/blast/simd"
)

// Ger computes A += alpha*x*yT in place over an M x N matrix, x a column
// vector of length M and y a row vector of length N, tiling the same
// row-strip / column-block ladder as Gemm.
func Ger[T simd.Real](alpha T, x, y matrix.Pointer[T], a matrix.Pointer[T], m, n int) error {
	if m < 0 || n < 0 {
		return shapeErr("ger", "negative dimension (m=%d, n=%d)", m, n)
	}
	blastlog.Debug("ger", "m", m, "n", n)
	w := simd.Lanes[T]()
	i := 0
	for i+2*w < m && i+4*w != m {
		gerRowStrip(3*w, alpha, x, y, a, i, n, w, m)
		i += 3 * w
	}
	for i+w < m {
		gerRowStrip(2*w, alpha, x, y, a, i, n, w, m)
		i += 2 * w
	}
	for i < m {
		gerRowStrip(w, alpha, x, y, a, i, n, w, m)
		i += w
	}
	return nil
}

func gerRowStrip[T simd.Real](km int, alpha T, x, y matrix.Pointer[T], a matrix.Pointer[T], i, n, w, m int) {
	mrows := km
	if i+km > m {
		mrows = m - i
	}
	tile := kernel.NewRegisterTile[T](km, w)

	j := 0
	for ; j+w <= n; j += w {
		gerTileStep(tile, alpha, x.At(i, 0), y.At(0, j), a.At(i, j), mrows, w, km)
	}
	if j < n {
		gerTileStep(tile, alpha, x.At(i, 0), y.At(0, j), a.At(i, j), mrows, n-j, km)
	}
}

func gerTileStep[T simd.Real](tile *kernel.RegisterTile[T], alpha T, px, py matrix.Pointer[T], pa matrix.Pointer[T], mrows, ncols, km int) {
	xcol := matrix.Column[T](px)
	yrow := matrix.Row[T](py)
	if mrows == km && ncols == tile.Cols() {
		tile.Load(pa)
		tile.Ger(alpha, xcol, yrow)
		tile.Store(pa)
		return
	}
	tile.LoadPartial(1, pa, mrows, ncols)
	tile.GerPartial(alpha, xcol, yrow, mrows, ncols)
	tile.StorePartial(pa, mrows, ncols)
}
