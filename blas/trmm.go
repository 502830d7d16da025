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

// Trmm computes C += alpha*B*A in place for an M x N destination, A an
// N x N lower-triangular operand and B the M x N left operand. Like
// Trsm, kernel.RegisterTile.TrmmRightLower already walks every one of
// the tile's N columns in one call, so the driver needs only a
// row-strip walk, one register group (w rows) per strip — the same
// reasoning as Trsm: there is no K-loop here to amortize across a wider
// strip, and N alone already sets the tile's register need.
//
// TrmmRightLower accumulates via FMA into whatever is already resident
// in the tile's registers, so each strip loads the existing destination
// block before calling it (not Reset), then stores the accumulated
// result back — the same Load/compute/Store shape as Trsm, but
// additive rather than a solve.
//
// TrmmRightLower has no masked/partial variant: it always loads a full
// register group per row, so M must be a multiple of simd.Lanes[T]().
// This mirrors the omission in the register-tile layer itself.
func Trmm[T simd.Real](alpha T, b, a, c matrix.Pointer[T], m, n int) error {
	if m < 0 || n < 0 {
		return shapeErr("trmm", "negative dimension (m=%d, n=%d)", m, n)
	}
	blastlog.Debug("trmm", "m", m, "n", n)
	w := simd.Lanes[T]()
	if m%w != 0 {
		return shapeErr("trmm", "m=%d is not a multiple of lane width %d", m, w)
	}
	for i := 0; i < m; i += w {
		trmmRowStrip(w, alpha, b, a, c, i, n)
	}
	return nil
}

func trmmRowStrip[T simd.Real](km int, alpha T, b, a, c matrix.Pointer[T], i, n int) {
	tile := kernel.NewRegisterTile[T](km, n)
	tile.Load(c.At(i, 0))
	tile.TrmmRightLower(alpha, b.At(i, 0), a)
	tile.Store(c.At(i, 0))
}
