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

// TrmmLeftUpper accumulates tile += alpha * A * B, with A upper-triangular
// of size Rows() x Rows() and B of size Rows() x Cols(). pa and pb are
// positioned at column 0 / row 0 respectively and advance by one column /
// row per step.
func (t *RegisterTile[T]) TrmmLeftUpper(alpha T, pa, pb matrix.Pointer[T]) {
	rm := t.rowGroups()
	for k := 0; k < t.m; k++ {
		boundary := k / t.w
		rem := (k + 1) % t.w
		limit := boundary
		if limit >= rm {
			limit = rm - 1
		}
		ax := make([]simd.Vec[T], limit+1)
		for i := 0; i <= limit; i++ {
			if i < boundary || rem == 0 {
				ax[i] = scale(alpha, pa.At(t.w*i, 0).Load())
			} else {
				ax[i] = scale(alpha, pa.At(t.w*i, 0).MaskedLoad(simd.TailMask[T](rem)))
			}
		}
		for j := 0; j < t.n; j++ {
			bx := simd.Set(pb.At(0, j).Broadcast())
			for i := 0; i <= limit; i++ {
				t.regs[i][j] = simd.FMA(ax[i], bx, t.regs[i][j])
			}
		}
		pa = pa.Hmove(1)
		pb = pb.Vmove(1)
	}
}

// TrmmRightLower accumulates tile += alpha * B * A, with A lower-triangular
// of size Cols() x Cols(). pb and pa are positioned at column 0 / row 0
// respectively and advance by one column / row per step.
func (t *RegisterTile[T]) TrmmRightLower(alpha T, pb, pa matrix.Pointer[T]) {
	rm := t.rowGroups()
	for k := 0; k < t.n; k++ {
		bx := make([]simd.Vec[T], rm)
		for i := 0; i < rm; i++ {
			bx[i] = scale(alpha, pb.At(t.w*i, 0).Load())
		}
		for j := 0; j <= k && j < t.n; j++ {
			ajk := simd.Set(pa.At(0, j).Broadcast())
			for i := 0; i < rm; i++ {
				t.regs[i][j] = simd.FMA(bx[i], ajk, t.regs[i][j])
			}
		}
		pb = pb.Hmove(1)
		pa = pa.Vmove(1)
	}
}
