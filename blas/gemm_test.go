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

func randomDense(rows, cols int, rng *rand.Rand) *matrix.DenseMatrix[float64] {
	d := matrix.NewDenseMatrix[float64](rows, cols, matrix.ColumnMajor)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			d.Set(i, j, rng.Float64()*2-1)
		}
	}
	return d
}

func naiveGemm(a, b, c *matrix.DenseMatrix[float64], alpha, beta float64, m, n, k int) *matrix.DenseMatrix[float64] {
	want := matrix.NewDenseMatrix[float64](m, n, matrix.ColumnMajor)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := beta * c.At(i, j)
			for s := 0; s < k; s++ {
				sum += alpha * a.At(i, s) * b.At(s, j)
			}
			want.Set(i, j, sum)
		}
	}
	return want
}

func checkGemmScenario(t *testing.T, m, n, k int, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a := randomDense(m, k, rng)
	b := randomDense(k, n, rng)
	c := randomDense(m, n, rng)
	alpha, beta := 1.25, 0.5

	d := matrix.NewDenseMatrix[float64](m, n, matrix.ColumnMajor)
	if err := Gemm[float64](alpha, a.Ptr(), b.Ptr(), beta, c.Ptr(), d.Ptr(), m, n, k); err != nil {
		t.Fatalf("Gemm(%d,%d,%d): %v", m, n, k, err)
	}
	want := naiveGemm(a, b, c, alpha, beta, m, n, k)

	tol := 1e-9
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if math.Abs(d.At(i, j)-want.At(i, j)) > tol {
				t.Fatalf("(m=%d,n=%d,k=%d) (%d,%d): got %v, want %v", m, n, k, i, j, d.At(i, j), want.At(i, j))
			}
		}
	}
}

func TestGemmScenarios(t *testing.T) {
	scenarios := [][3]int{{8, 8, 24}, {19, 15, 17}, {12, 1, 2}, {3, 2, 11}, {19, 19, 19}}
	for i, s := range scenarios {
		checkGemmScenario(t, s[0], s[1], s[2], int64(100+i))
	}
}

// TestGemmEdgeSweep exercises property 7: every (m, n) with 1 <= m <= M,
// 1 <= n <= N, for a fixed K, which includes the driver's "i + 4*T == M"
// guard boundary (M = 4*T) at lane widths T <= 4.
func TestGemmEdgeSweep(t *testing.T) {
	const M, N, K = 17, 13, 5
	rng := rand.New(rand.NewSource(7))
	a := randomDense(M, K, rng)
	b := randomDense(K, N, rng)
	c := randomDense(M, N, rng)
	alpha, beta := 0.75, 1.5

	for m := 1; m <= M; m++ {
		for n := 1; n <= N; n++ {
			d := matrix.NewDenseMatrix[float64](m, n, matrix.ColumnMajor)
			if err := Gemm[float64](alpha, a.Ptr(), b.Ptr(), beta, c.Ptr(), d.Ptr(), m, n, K); err != nil {
				t.Fatalf("Gemm(%d,%d): %v", m, n, err)
			}
			for i := 0; i < m; i++ {
				for j := 0; j < n; j++ {
					want := beta * c.At(i, j)
					for s := 0; s < K; s++ {
						want += alpha * a.At(i, s) * b.At(s, j)
					}
					if math.Abs(d.At(i, j)-want) > 1e-9 {
						t.Fatalf("(m=%d,n=%d) (%d,%d): got %v, want %v", m, n, i, j, d.At(i, j), want)
					}
				}
			}
		}
	}
}

func checkGemmTilingCase(t *testing.T, m, n, k int, rng *rand.Rand) {
	t.Helper()
	a := randomDense(m, k, rng)
	b := randomDense(k, n, rng)
	c := randomDense(m, n, rng)
	d := matrix.NewDenseMatrix[float64](m, n, matrix.ColumnMajor)
	if err := Gemm[float64](1, a.Ptr(), b.Ptr(), 0, c.Ptr(), d.Ptr(), m, n, k); err != nil {
		t.Fatalf("Gemm(%d,%d): %v", m, n, err)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var want float64
			for s := 0; s < k; s++ {
				want += a.At(i, s) * b.At(s, j)
			}
			if math.Abs(d.At(i, j)-want) > 1e-9 {
				t.Fatalf("(m=%d,n=%d) (%d,%d): got %v, want %v", m, n, i, j, d.At(i, j), want)
			}
		}
	}
}

// TestGemmTilingInvariant is property 8: the driver tiling ladder must
// agree with a naive reference for M, N on a step grid over 1..50. The
// grid does not land on M = 4*T at every lane width; TestGemmFourTGuard
// covers that case.
func TestGemmTilingInvariant(t *testing.T) {
	const K = 6
	rng := rand.New(rand.NewSource(8))
	for m := 1; m <= 50; m += 7 {
		for n := 1; n <= 50; n += 11 {
			checkGemmTilingCase(t, m, n, K, rng)
		}
	}
}

// TestGemmFourTGuard hits the "i + 4*T == M" guard directly: at every
// dispatch level this sweep's fixed step sizes may skip M = 4*T (e.g.
// AVX512 float64, T=8, 4T=32, never lands on 1,8,...,50's step-7 grid),
// so this exercises it explicitly regardless of simd.Lanes[float64]().
func TestGemmFourTGuard(t *testing.T) {
	const K = 6
	w := simd.Lanes[float64]()
	rng := rand.New(rand.NewSource(9))
	for _, n := range []int{1, w, w + 1, 3 * w} {
		checkGemmTilingCase(t, 4*w, n, K, rng)
	}
}
