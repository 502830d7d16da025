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

	"github.com/blastkernel/blast/kernel"
	"github.com/blastkernel/blast/matrix"
)

func upperTriangular(n int, rng *rand.Rand) *matrix.DenseMatrix[float64] {
	a := matrix.NewDenseMatrix[float64](n, n, matrix.ColumnMajor)
	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			if i == j {
				a.Set(i, j, 2+rng.Float64())
			} else {
				a.Set(i, j, rng.Float64()*0.1)
			}
		}
	}
	return a
}

func checkTrsmScenario(t *testing.T, m, n int, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a := upperTriangular(n, rng)
	x := randomDense(m, n, rng)

	c := matrix.NewDenseMatrix[float64](m, n, matrix.ColumnMajor)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for s := 0; s <= j; s++ {
				sum += x.At(i, s) * a.At(s, j)
			}
			c.Set(i, j, sum)
		}
	}

	if err := Trsm[float64](kernel.Right, kernel.Upper, a.Ptr(), c.Ptr(), m, n); err != nil {
		t.Fatalf("Trsm(%d,%d): %v", m, n, err)
	}

	tol := 1e-7
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if math.Abs(c.At(i, j)-x.At(i, j)) > tol {
				t.Fatalf("(m=%d,n=%d) (%d,%d): got %v, want %v", m, n, i, j, c.At(i, j), x.At(i, j))
			}
		}
	}
}

func TestTrsmInverse(t *testing.T) {
	scenarios := [][2]int{{8, 8}, {19, 5}, {1, 1}, {23, 11}}
	for i, s := range scenarios {
		checkTrsmScenario(t, s[0], s[1], int64(200+i))
	}
}

func TestTrsmEdgeSweep(t *testing.T) {
	const M, N = 15, 9
	for m := 1; m <= M; m++ {
		for n := 1; n <= N; n++ {
			checkTrsmScenario(t, m, n, int64(3000+m*100+n))
		}
	}
}

func TestTrsmUnsupportedCombination(t *testing.T) {
	a := matrix.NewDenseMatrix[float64](2, 2, matrix.ColumnMajor)
	c := matrix.NewDenseMatrix[float64](2, 2, matrix.ColumnMajor)
	if err := Trsm[float64](kernel.Left, kernel.Lower, a.Ptr(), c.Ptr(), 2, 2); err != ErrUnsupportedOperation {
		t.Fatalf("got %v, want ErrUnsupportedOperation", err)
	}
}
