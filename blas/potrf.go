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

// Potrf factors the N x N symmetric positive-definite matrix a in place
// as a lower-triangular Cholesky factor L (A = L*L^T), leaving the
// strict upper triangle untouched: the classical right-looking blocked
// algorithm over column panels of width simd.Lanes[T](), three steps per
// panel.
//
// Each panel's diagonal block is factored in its own small (w x pw)
// tile — kernel.RegisterTile.Potrf needs only rows >= cols, not the
// whole remaining matrix height, so the diagonal step stays cheap
// regardless of N. The panel below the diagonal block is then solved
// with Trsm against the just-factored lower-triangular block (presented
// transposed, i.e. Upper, exactly the orientation kernel.RegisterTile.Trsm
// expects), and the trailing submatrix is updated with one
// Syrk(alpha=-1, beta=1, ...) call. Folding the diagonal factor and the
// panel solve into a single oversized tile (one call covering every
// remaining row) would need a register count proportional to N/w and
// blow the register budget for anything past a couple of panels, which
// is why this is the textbook three-step shape rather than the
// two-step shortcut a narrower reading of kernel.RegisterTile.Potrf's
// own all-row-groups loop might suggest.
func Potrf[T simd.Real](a matrix.Pointer[T], n int) error {
	if n < 0 {
		return shapeErr("potrf", "negative dimension (n=%d)", n)
	}
	blastlog.Debug("potrf", "n", n)
	w := simd.Lanes[T]()
	for p := 0; p < n; p += w {
		pw := w
		if p+w > n {
			pw = n - p
		}

		diag := kernel.NewRegisterTile[T](w, pw)
		diag.LoadPartial(1, a.At(p, p), pw, pw)
		if err := diag.Potrf(); err != nil {
			return err
		}
		diag.StoreLowerPartial(a.At(p, p), pw, pw)

		rem := n - (p + pw)
		if rem > 0 {
			if err := Trsm[T](kernel.Right, kernel.Upper, a.At(p, p).Trans(), a.At(p+pw, p), rem, pw); err != nil {
				return err
			}
			if err := Syrk[T](-1, a.At(p+pw, p), 1, a.At(p+pw, p+pw), rem, pw); err != nil {
				return err
			}
		}
	}
	return nil
}
