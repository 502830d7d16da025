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

// Gemm computes D = alpha*A*B + beta*C for an M x N x K problem, tiling
// the M x N destination onto the largest-kernel-first row-strip ladder
// (3T, 2T, 1T rows by T columns, T = simd.Lanes[T]()) with the
// "i + 4T != M" tuning guard preserved, and within each strip a T-column
// ladder plus one possibly-partial tail column block. No separate
// remainder code path exists: every edge is handled by the partial
// kernel calls' masked loads/stores.
//
// a is a Pointer over A (M x K): a.At(i, 0) positions at row i, column
// 0, and the kernel's K-step loop advances it by Hmove(1) per step. b is
// a Pointer over B viewed as K x N: b.At(0, j) positions at the top of
// column j, and the kernel's K-step loop advances it by Vmove(1) per
// step. For the "gemm_nt" case, where B is stored N x K, callers pass
// that storage's pointer through Pointer.Trans so it views K x N.
func Gemm[T simd.Real](alpha T, a, b matrix.Pointer[T], beta T, c, d matrix.Pointer[T], m, n, k int) error {
	if m < 0 || n < 0 || k < 0 {
		return shapeErr("gemm", "negative dimension (m=%d, n=%d, k=%d)", m, n, k)
	}
	blastlog.Debug("gemm", "m", m, "n", n, "k", k)
	w := simd.Lanes[T]()
	i := 0
	for i+2*w < m && i+4*w != m {
		gemmRowStrip(3*w, alpha, a, b, beta, c, d, i, n, k, w, m)
		i += 3 * w
	}
	for i+w < m {
		gemmRowStrip(2*w, alpha, a, b, beta, c, d, i, n, k, w, m)
		i += 2 * w
	}
	for i < m {
		gemmRowStrip(w, alpha, a, b, beta, c, d, i, n, k, w, m)
		i += w
	}
	return nil
}

func gemmRowStrip[T simd.Real](km int, alpha T, a, b matrix.Pointer[T], beta T, c, d matrix.Pointer[T], i, n, k, w, m int) {
	mrows := km
	if i+km > m {
		mrows = m - i
	}
	tile := kernel.NewRegisterTile[T](km, w)

	j := 0
	for ; j+w <= n; j += w {
		tile.Reset()
		gemmTileStep(tile, alpha, a.At(i, 0), b.At(0, j), beta, c.At(i, j), d.At(i, j), k, mrows, w, km)
	}
	if j < n {
		tile.Reset()
		gemmTileStep(tile, alpha, a.At(i, 0), b.At(0, j), beta, c.At(i, j), d.At(i, j), k, mrows, n-j, km)
	}
}

func gemmTileStep[T simd.Real](tile *kernel.RegisterTile[T], alpha T, pa, pb matrix.Pointer[T], beta T, pc, pd matrix.Pointer[T], k, mrows, ncols, km int) {
	if mrows == km && ncols == tile.Cols() {
		tile.Gemm(k, alpha, pa, pb)
		tile.Axpy(beta, pc)
		tile.Store(pd)
		return
	}
	tile.GemmPartial(k, alpha, pa, pb, mrows, ncols)
	tile.AxpyPartial(beta, pc, mrows, ncols)
	tile.StorePartial(pd, mrows, ncols)
}
