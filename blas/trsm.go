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

// Trsm solves C := C * A^-1 in place for an M x N right-upper-triangular
// system, A an N x N upper-triangular operand and C the M x N right-hand
// side overwritten with the solution. Only (Right, Upper) is supported,
// matching kernel.RegisterTile.Trsm.
//
// Unlike Gemm, a single kernel.Trsm call already solves every one of the
// tile's N columns together — the register tile's column capacity is the
// whole register budget, not a sub-block of it — so the driver needs only
// a row-strip walk, never a nested column-block loop. Each strip is one
// register group (w rows) rather than Gemm's 3T/2T/1T ladder: a wider
// strip buys Gemm headroom to amortize its K-step loop across more rows,
// but Trsm has no K-loop to amortize, and the tile's register need
// already scales with the whole column count N (not a fixed T), so
// widening the row dimension on top of that would just make `N` run out
// of registers sooner for no benefit.
func Trsm[T simd.Real](side kernel.Side, uplo kernel.Uplo, a, c matrix.Pointer[T], m, n int) error {
	if side != kernel.Right || uplo != kernel.Upper {
		return ErrUnsupportedOperation
	}
	if m < 0 || n < 0 {
		return shapeErr("trsm", "negative dimension (m=%d, n=%d)", m, n)
	}
	blastlog.Debug("trsm", "m", m, "n", n)
	w := simd.Lanes[T]()
	for i := 0; i < m; i += w {
		mrows := w
		if i+w > m {
			mrows = m - i
		}
		if err := trsmRowStrip(w, a, c, i, n, mrows); err != nil {
			return err
		}
	}
	return nil
}

func trsmRowStrip[T simd.Real](km int, a, c matrix.Pointer[T], i, n, mrows int) error {
	tile := kernel.NewRegisterTile[T](km, n)
	if mrows == km {
		tile.Load(c.At(i, 0))
	} else {
		tile.LoadPartial(1, c.At(i, 0), mrows, n)
	}
	if err := tile.Trsm(kernel.Right, kernel.Upper, a); err != nil {
		return err
	}
	if mrows == km {
		tile.Store(c.At(i, 0))
	} else {
		tile.StorePartial(c.At(i, 0), mrows, n)
	}
	return nil
}
