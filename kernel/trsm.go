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

// Trsm solves the tile in place against the triangular operand pa. Only
// (Right, Upper) is implemented, matching the source this is ported from:
// the unused (Left, Lower) path was left as dead, commented-out code
// there and is not guessed at here, per the spec's own instruction to
// leave it unimplemented rather than interpret commented-out source.
func (t *RegisterTile[T]) Trsm(side Side, uplo Uplo, pa matrix.Pointer[T]) error {
	if side != Right || uplo != Upper {
		return ErrUnsupportedTrsm
	}
	rm := t.rowGroups()
	for j := 0; j < t.n; j++ {
		for k := 0; k < j; k++ {
			akj := simd.Set(pa.At(k, j).Broadcast())
			for i := 0; i < rm; i++ {
				t.regs[i][j] = simd.FNMA(akj, t.regs[i][k], t.regs[i][j])
			}
		}
		ajj := simd.Set(pa.At(j, j).Broadcast())
		for i := 0; i < rm; i++ {
			t.regs[i][j] = simd.Div(t.regs[i][j], ajj)
		}
	}
	return nil
}
