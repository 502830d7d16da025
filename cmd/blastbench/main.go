// Command blastbench times one run of a whole-matrix blas driver (Gemm or
// Potrf) on a square problem whose size is set with -n, and reports its
// GFLOP/s. It runs no reference implementation.
//
// Usage:
//
//	blastbench -op gemm -n 256
//	blastbench -op potrf -n 512
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/blastkernel/blast/blas"
	"github.com/blastkernel/blast/matrix"
	"github.com/blastkernel/blast/simd"
)

var (
	op = flag.String("op", "gemm", "Operation to benchmark: gemm, potrf")
	n  = flag.Int("n", 256, "Problem size (square matrices of this dimension)")
)

func main() {
	flag.Parse()

	switch *op {
	case "gemm":
		runGemm(*n)
	case "potrf":
		runPotrf(*n)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown -op %q (want gemm or potrf)\n\n", *op)
		flag.Usage()
		os.Exit(1)
	}
}

func randomDense(rows, cols int, rng *rand.Rand) *matrix.DenseMatrix[float64] {
	d := matrix.NewDenseMatrix[float64](rows, cols, matrix.ColumnMajor)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			d.Set(i, j, rng.Float64()*2-1)
		}
	}
	return d
}

func runGemm(n int) {
	rng := rand.New(rand.NewSource(1))
	a := randomDense(n, n, rng)
	b := randomDense(n, n, rng)
	c := matrix.NewDenseMatrix[float64](n, n, matrix.ColumnMajor)
	d := matrix.NewDenseMatrix[float64](n, n, matrix.ColumnMajor)

	start := time.Now()
	if err := blas.Gemm[float64](1, a.Ptr(), b.Ptr(), 0, c.Ptr(), d.Ptr(), n, n, n); err != nil {
		fmt.Fprintf(os.Stderr, "Error: gemm(%d): %v\n", n, err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	flops := 2.0 * float64(n) * float64(n) * float64(n)
	report("gemm", n, elapsed, flops)
}

func runPotrf(n int) {
	rng := rand.New(rand.NewSource(1))
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

	start := time.Now()
	if err := blas.Potrf[float64](a.Ptr(), n); err != nil {
		fmt.Fprintf(os.Stderr, "Error: potrf(%d): %v\n", n, err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	flops := float64(n) * float64(n) * float64(n) / 3.0
	report("potrf", n, elapsed, flops)
}

func report(op string, n int, elapsed time.Duration, flops float64) {
	gflops := flops / elapsed.Seconds() / 1e9
	fmt.Printf("%s n=%d simd=%s lanes=%d time=%v %.2f GFLOP/s\n",
		op, n, simd.CurrentLevel(), simd.Lanes[float64](), elapsed, gflops)
}
