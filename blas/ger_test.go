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
	"math"
	"math/rand"
	"testing"

	"github.com/blastkernel/blast/matrix"
)

func TestGerIdentity(t *testing.T) {
	const m, n = 11, 7
	rng := rand.New(rand.NewSource(11))
	alpha := 1.5

	c0 := randomDense(m, n, rng)
	xVec := matrix.NewDenseMatrix[float64](m, 1, matrix.ColumnMajor)
	yVec := matrix.NewDenseMatrix[float64](1, n, matrix.ColumnMajor)
	for i := 0; i < m; i++ {
		xVec.Set(i, 0, rng.Float64()*2-1)
	}
	for j := 0; j < n; j++ {
		yVec.Set(0, j, rng.Float64()*2-1)
	}

	c := matrix.NewDenseMatrix[float64](m, n, matrix.ColumnMajor)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			c.Set(i, j, c0.At(i, j))
		}
	}

	if err := Ger[float64](alpha, xVec.Ptr(), yVec.Ptr(), c.Ptr(), m, n); err != nil {
		t.Fatalf("Ger: %v", err)
	}

	tol := 1e-9
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			want := c0.At(i, j) + alpha*xVec.At(i, 0)*yVec.At(0, j)
			if math.Abs(c.At(i, j)-want) > tol {
				t.Fatalf("(%d,%d): got %v, want %v", i, j, c.At(i, j), want)
			}
		}
	}
}

func TestGerEdgeSweep(t *testing.T) {
	const M, N = 13, 9
	for m := 1; m <= M; m++ {
		for n := 1; n <= N; n++ {
			rng := rand.New(rand.NewSource(int64(1000 + m*100 + n)))
			alpha := 0.8
			c0 := randomDense(m, n, rng)
			xVec := matrix.NewDenseMatrix[float64](m, 1, matrix.ColumnMajor)
			yVec := matrix.NewDenseMatrix[float64](1, n, matrix.ColumnMajor)
			for i := 0; i < m; i++ {
				xVec.Set(i, 0, rng.Float64()*2-1)
			}
			for j := 0; j < n; j++ {
				yVec.Set(0, j, rng.Float64()*2-1)
			}

			// Copy c0's data before mutating in place.
			c := matrix.NewDenseMatrix[float64](m, n, matrix.ColumnMajor)
			for i := 0; i < m; i++ {
				for j := 0; j < n; j++ {
					c.Set(i, j, c0.At(i, j))
				}
			}

			if err := Ger[float64](alpha, xVec.Ptr(), yVec.Ptr(), c.Ptr(), m, n); err != nil {
				t.Fatalf("Ger(%d,%d): %v", m, n, err)
			}

			for i := 0; i < m; i++ {
				for j := 0; j < n; j++ {
					want := c0.At(i, j) + alpha*xVec.At(i, 0)*yVec.At(0, j)
					if math.Abs(c.At(i, j)-want) > 1e-9 {
						t.Fatalf("(m=%d,n=%d) (%d,%d): got %v, want %v", m, n, i, j, c.At(i, j), want)
					}
				}
			}
		}
	}
}
