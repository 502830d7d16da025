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

import "github.com/blastkernel/blast/matrix"

// Gemm accumulates a K-step rank-1 update into the tile: for k in
// [0, K), ger(alpha, column(pa), row(pb)), then advances pa along its
// column (K) direction and pb along its row (K) direction. The
// driver-level D = alpha*A*B + beta*C flow (Reset, this loop with alpha
// applied in each rank-1 update, Axpy, Store) lives in package blas.
func (t *RegisterTile[T]) Gemm(k int, alpha T, pa, pb matrix.Pointer[T]) {
	for s := 0; s < k; s++ {
		t.Ger(alpha, matrix.Column(pa), matrix.Row(pb))
		pa = pa.Hmove(1)
		pb = pb.Vmove(1)
	}
}

// GemmPartial is Gemm limited to the leading (m, n) submatrix of the tile.
func (t *RegisterTile[T]) GemmPartial(k int, alpha T, pa, pb matrix.Pointer[T], m, n int) {
	for s := 0; s < k; s++ {
		t.GerPartial(alpha, matrix.Column(pa), matrix.Row(pb), m, n)
		pa = pa.Hmove(1)
		pb = pb.Vmove(1)
	}
}
