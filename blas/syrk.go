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

// Syrk computes the lower triangle of C := alpha*A*A^T + beta*C in
// place for an N x N symmetric destination, a an N x K operand stored
// and positioned the ordinary (untransposed) way — Syrk builds its own
// a.Trans() internally to supply Gemm's "B = A^T" operand, so callers
// never pass a pre-transposed pointer here themselves. The strict upper
// triangle of C is left untouched.
//
// Unlike Gemm's row-strip ladder, each strip here is exactly one
// register group (w rows) tall: a diagonal tile's triangular masked
// store (kernel.RegisterTile.StoreLower) is only valid when the tile's
// single row group lines up exactly with its column block, which a
// taller 3T/2T strip straddling the diagonal would break. The ladder's
// wider strips earn their keep amortizing Gemm's K-loop across more
// rows; Syrk's inner loop is a single Gemm call per block regardless,
// so there is nothing to amortize by widening it.
func Syrk[T simd.Real](alpha T, a matrix.Pointer[T], beta T, c matrix.Pointer[T], n, k int) error {
	if n < 0 || k < 0 {
		return shapeErr("syrk", "negative dimension (n=%d, k=%d)", n, k)
	}
	blastlog.Debug("syrk", "n", n, "k", k)
	w := simd.Lanes[T]()
	aT := a.Trans() // the K x N "B" operand Gemm's inner loop expects
	for i := 0; i < n; i += w {
		mrows := w
		if i+w > n {
			mrows = n - i
		}
		tile := kernel.NewRegisterTile[T](w, w)
		for j := 0; j <= i && j < n; j += w {
			ncols := w
			if j+w > n {
				ncols = n - j
			}
			tile.Reset()
			syrkTileStep(tile, alpha, a.At(i, 0), aT.At(0, j), beta, c.At(i, j), k, mrows, ncols, w, i == j)
		}
	}
	return nil
}

func syrkTileStep[T simd.Real](tile *kernel.RegisterTile[T], alpha T, pa, pb matrix.Pointer[T], beta T, pc matrix.Pointer[T], k, mrows, ncols, w int, diagonal bool) {
	full := mrows == w && ncols == w
	if full {
		tile.Gemm(k, alpha, pa, pb)
		tile.Axpy(beta, pc)
	} else {
		tile.GemmPartial(k, alpha, pa, pb, mrows, ncols)
		tile.AxpyPartial(beta, pc, mrows, ncols)
	}

	switch {
	case diagonal && full:
		tile.StoreLower(pc)
	case diagonal:
		tile.StoreLowerPartial(pc, mrows, ncols)
	case full:
		tile.Store(pc)
	default:
		tile.StorePartial(pc, mrows, ncols)
	}
}
