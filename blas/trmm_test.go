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

func lowerTriangular(n int, rng *rand.Rand) *matrix.DenseMatrix[float64] {
	a := matrix.NewDenseMatrix[float64](n, n, matrix.ColumnMajor)
	for j := 0; j < n; j++ {
		for i := j; i < n; i++ {
			a.Set(i, j, rng.Float64()*2-1)
		}
	}
	return a
}

func checkTrmmScenario(t *testing.T, m, n int, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a := lowerTriangular(n, rng)
	b := randomDense(m, n, rng)
	c0 := randomDense(m, n, rng)
	alpha := 1.75

	c := matrix.NewDenseMatrix[float64](m, n, matrix.ColumnMajor)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			c.Set(i, j, c0.At(i, j))
		}
	}

	if err := Trmm[float64](alpha, b.Ptr(), a.Ptr(), c.Ptr(), m, n); err != nil {
		t.Fatalf("Trmm(%d,%d): %v", m, n, err)
	}

	tol := 1e-9
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for s := j; s < n; s++ {
				sum += b.At(i, s) * a.At(s, j)
			}
			want := c0.At(i, j) + alpha*sum
			if math.Abs(c.At(i, j)-want) > tol {
				t.Fatalf("(m=%d,n=%d) (%d,%d): got %v, want %v", m, n, i, j, c.At(i, j), want)
			}
		}
	}
}

func TestTrmmAccumulate(t *testing.T) {
	w := simd.Lanes[float64]()
	scenarios := [][2]int{{w, w}, {2 * w, w}, {3 * w, 5}, {w, 1}}
	for i, s := range scenarios {
		checkTrmmScenario(t, s[0], s[1], int64(400+i))
	}
}

func TestTrmmRequiresMultipleOfLaneWidth(t *testing.T) {
	w := simd.Lanes[float64]()
	a := matrix.NewDenseMatrix[float64](w, w, matrix.ColumnMajor)
	b := matrix.NewDenseMatrix[float64](w+1, w, matrix.ColumnMajor)
	c := matrix.NewDenseMatrix[float64](w+1, w, matrix.ColumnMajor)
	if err := Trmm[float64](1, b.Ptr(), a.Ptr(), c.Ptr(), w+1, w); err == nil {
		t.Fatalf("Trmm: want error for m=%d not a multiple of %d", w+1, w)
	}
}
