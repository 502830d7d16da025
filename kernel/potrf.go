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

import "github.com/blastkernel/blast/simd"

// Potrf factors the leading Cols() x Cols() block of the tile in place as
// a lower-triangular Cholesky factor, and simultaneously applies the
// corresponding triangular solve to the rows below it (rows() >= cols()
// is required so the tile holds a full column-panel of a blocked
// factorization, not just the diagonal block).
//
// No pivoting: the input must be positive definite. A non-positive
// diagonal is undefined behavior by contract (NaN propagates, not
// checked) to keep the hot loop branch-free, matching the source this is
// ported from. Only the rows() < cols() precondition, which is cheap to
// check once and a real caller mistake rather than a numerical edge case,
// is reported.
func (t *RegisterTile[T]) Potrf() error {
	if t.m < t.n {
		return ErrShapeMismatch
	}
	rm := t.rowGroups()
	for k := 0; k < t.n; k++ {
		for j := 0; j < k; j++ {
			akj := simd.Set(t.regs[k/t.w][j].Lane(k % t.w))
			for i := 0; i < rm; i++ {
				t.regs[i][k] = simd.FNMA(akj, t.regs[i][j], t.regs[i][k])
			}
		}

		d := simd.Sqrt(simd.Set(t.regs[k/t.w][k].Lane(k % t.w))).Lane(0)
		diagGroup := k / t.w

		for i := 0; i < rm; i++ {
			switch {
			case i < diagGroup:
				t.regs[i][k] = simd.Zero[T]()
			case i == diagGroup:
				mask := simd.GreaterEqual(simd.IndexSequence[T](), simd.Set(T(k%t.w)))
				divided := simd.Div(t.regs[i][k], simd.Set(d))
				t.regs[i][k] = simd.Blend(divided, simd.Zero[T](), mask)
			default:
				t.regs[i][k] = simd.Div(t.regs[i][k], simd.Set(d))
			}
		}
	}
	return nil
}
