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

func checkSyrkScenario(t *testing.T, n, k int, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a := randomDense(n, k, rng)
	c0 := randomDense(n, n, rng)
	alpha, beta := 1.5, 0.75

	c := matrix.NewDenseMatrix[float64](n, n, matrix.ColumnMajor)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c.Set(i, j, c0.At(i, j))
		}
	}

	if err := Syrk[float64](alpha, a.Ptr(), beta, c.Ptr(), n, k); err != nil {
		t.Fatalf("Syrk(%d,%d): %v", n, k, err)
	}

	tol := 1e-9
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			var sum float64
			for s := 0; s < k; s++ {
				sum += a.At(i, s) * a.At(j, s)
			}
			want := alpha*sum + beta*c0.At(i, j)
			if math.Abs(c.At(i, j)-want) > tol {
				t.Fatalf("(n=%d,k=%d) (%d,%d): got %v, want %v", n, k, i, j, c.At(i, j), want)
			}
		}
	}

	// The strict upper triangle must be left untouched.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if c.At(i, j) != c0.At(i, j) {
				t.Fatalf("(n=%d,k=%d) upper (%d,%d): got %v, want untouched %v", n, k, i, j, c.At(i, j), c0.At(i, j))
			}
		}
	}
}

func TestSyrkScenarios(t *testing.T) {
	scenarios := [][2]int{{8, 8}, {19, 5}, {1, 1}, {23, 11}, {16, 16}}
	for i, s := range scenarios {
		checkSyrkScenario(t, s[0], s[1], int64(500+i))
	}
}

func TestSyrkEdgeSweep(t *testing.T) {
	const N, K = 15, 4
	for n := 1; n <= N; n++ {
		checkSyrkScenario(t, n, K, int64(5000+n))
	}
}
