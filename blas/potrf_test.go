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
	"github.com/blastkernel/blast/simd"
)

// spdMatrix builds a symmetric positive-definite n x n matrix as X^T*X
// plus a diagonal shift, so Potrf always has a valid factorization to
// find regardless of n.
func spdMatrix(n int, rng *rand.Rand) *matrix.DenseMatrix[float64] {
	x := randomDense(n, n, rng)
	a := matrix.NewDenseMatrix[float64](n, n, matrix.ColumnMajor)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for s := 0; s < n; s++ {
				sum += x.At(s, i) * x.At(s, j)
			}
			if i == j {
				sum += float64(n)
			}
			a.Set(i, j, sum)
		}
	}
	return a
}

func checkPotrfScenario(t *testing.T, n int, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a := spdMatrix(n, rng)

	c := matrix.NewDenseMatrix[float64](n, n, matrix.ColumnMajor)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c.Set(i, j, a.At(i, j))
		}
	}

	if err := Potrf[float64](c.Ptr(), n); err != nil {
		t.Fatalf("Potrf(%d): %v", n, err)
	}

	l := func(i, j int) float64 {
		if j > i {
			return 0
		}
		return c.At(i, j)
	}

	tol := 1e-7
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			var sum float64
			for s := 0; s <= j; s++ {
				sum += l(i, s) * l(j, s)
			}
			if math.Abs(sum-a.At(i, j)) > tol {
				t.Fatalf("Potrf(%d) (%d,%d): L*L^T=%v, want %v", n, i, j, sum, a.At(i, j))
			}
		}
	}
}

func TestPotrfSingleTile(t *testing.T) {
	w := simd.Lanes[float64]()
	checkPotrfScenario(t, 4, 900)
	checkPotrfScenario(t, 8, 901)
	checkPotrfScenario(t, w, 902)
}

// TestPotrfMultiPanel exercises the whole-matrix panel-blocked driver at
// sizes spanning several panels, supplemented beyond the distilled
// spec's single-tile N=4/N=8 scenarios.
func TestPotrfMultiPanel(t *testing.T) {
	w := simd.Lanes[float64]()
	sizes := []int{2 * w, 3 * w, 4 * w, 4*w + 3}
	for i, n := range sizes {
		checkPotrfScenario(t, n, int64(910+i))
	}
}

func TestPotrfRejectsNegativeSize(t *testing.T) {
	a := matrix.NewDenseMatrix[float64](2, 2, matrix.ColumnMajor)
	if err := Potrf[float64](a.Ptr(), -1); err == nil {
		t.Fatalf("Potrf(-1): want error")
	}
}
