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

// Package kernel implements the register-tile primitive: a fixed-shape
// matrix of SIMD lane groups, with the load/store/rank-1-update/
// triangular-solve/Cholesky-step operations the block-decomposition
// drivers in package blas tile whole-matrix operations onto.
//
// A RegisterTile never returns an error from its hot-path operations
// (Ger, Gemm, Load, Store). They do allocate: every simd operation
// returns a freshly allocated lane slice, and Ger allocates its scaled
// column registers on each call. The two operations that can hit a genuinely unimplemented or invalid case
// (Trsm, Potrf) return a sentinel error instead of panicking, since both
// are reachable with ordinary, not-obviously-wrong caller input.
package kernel

import (
	"fmt"

	"github.com/blastkernel/blast/matrix"
	"github.com/blastkernel/blast/simd"
)

// RegisterTile is the compile-time-shaped (in spirit; Go has no
// const-generic integers, so the shape is fixed once at construction)
// register-resident matrix described in the package doc.
type RegisterTile[T simd.Real] struct {
	m, n int // logical shape: m rows (multiple of w), n columns
	w    int
	regs [][]simd.Vec[T] // regs[i][j], i in [0, m/w), j in [0, n)
}

// NewRegisterTile constructs a zeroed tile of shape m x n. m must be a
// multiple of simd.Lanes[T](); the register-pressure invariant
// (m/w)*n + m/w + 1 <= simd.RegisterCapacity() must hold. Both are
// precondition violations and panic, the nearest Go equivalent of the
// spec's "a tile that would exceed this is a compile error".
func NewRegisterTile[T simd.Real](m, n int) *RegisterTile[T] {
	w := simd.Lanes[T]()
	if m%w != 0 {
		panic(fmt.Sprintf("kernel: tile row count %d is not a multiple of lane width %d", m, w))
	}
	rm := m / w
	if rm*n+rm+1 > simd.RegisterCapacity() {
		panic(fmt.Sprintf("kernel: tile shape (%d, %d) needs %d registers, exceeds capacity %d",
			m, n, rm*n+rm+1, simd.RegisterCapacity()))
	}
	t := &RegisterTile[T]{m: m, n: n, w: w, regs: make([][]simd.Vec[T], rm)}
	for i := range t.regs {
		t.regs[i] = make([]simd.Vec[T], n)
		for j := range t.regs[i] {
			t.regs[i][j] = simd.Zero[T]()
		}
	}
	return t
}

func (t *RegisterTile[T]) Rows() int { return t.m }
func (t *RegisterTile[T]) Cols() int { return t.n }

func (t *RegisterTile[T]) rowGroups() int { return len(t.regs) }

// Reset zeroes every register.
func (t *RegisterTile[T]) Reset() {
	for i := range t.regs {
		for j := range t.regs[i] {
			t.regs[i][j] = simd.Zero[T]()
		}
	}
}

func scale[T simd.Real](alpha T, v simd.Vec[T]) simd.Vec[T] {
	return simd.Mul(v, simd.Set(alpha))
}

// Load reads the full tile from p, positioned at the tile's (0, 0).
func (t *RegisterTile[T]) Load(p matrix.Pointer[T]) {
	for j := 0; j < t.n; j++ {
		for i := 0; i < t.rowGroups(); i++ {
			t.regs[i][j] = p.At(t.w*i, j).Load()
		}
	}
}

// LoadScaled reads beta*p into the full tile.
func (t *RegisterTile[T]) LoadScaled(beta T, p matrix.Pointer[T]) {
	for j := 0; j < t.n; j++ {
		for i := 0; i < t.rowGroups(); i++ {
			t.regs[i][j] = scale(beta, p.At(t.w*i, j).Load())
		}
	}
}

// LoadPartial reads beta*p into the leading (m, n) submatrix of the tile;
// registers outside that submatrix are left untouched.
func (t *RegisterTile[T]) LoadPartial(beta T, p matrix.Pointer[T], m, n int) {
	fullRows, rem := m/t.w, m%t.w
	for j := 0; j < n && j < t.n; j++ {
		for i := 0; i < fullRows && i < t.rowGroups(); i++ {
			t.regs[i][j] = scale(beta, p.At(t.w*i, j).Load())
		}
		if rem > 0 && fullRows < t.rowGroups() {
			pp := p.At(t.w*fullRows, j)
			if p.Aligned() && p.Padded() {
				t.regs[fullRows][j] = scale(beta, pp.Load())
			} else {
				mask := simd.TailMask[T](rem)
				t.regs[fullRows][j] = scale(beta, pp.MaskedLoad(mask))
			}
		}
	}
}

// Store writes the full tile to p.
func (t *RegisterTile[T]) Store(p matrix.Pointer[T]) {
	for j := 0; j < t.n; j++ {
		for i := 0; i < t.rowGroups(); i++ {
			p.At(t.w*i, j).Store(t.regs[i][j])
		}
	}
}

// StorePartial writes the leading (m, n) submatrix of the tile to p,
// leaving elements with i >= m or j >= n in the destination untouched.
func (t *RegisterTile[T]) StorePartial(p matrix.Pointer[T], m, n int) {
	fullRows, rem := m/t.w, m%t.w
	for j := 0; j < n && j < t.n; j++ {
		for i := 0; i < fullRows && i < t.rowGroups(); i++ {
			p.At(t.w*i, j).Store(t.regs[i][j])
		}
		if rem > 0 && fullRows < t.rowGroups() {
			mask := simd.TailMask[T](rem)
			p.At(t.w*fullRows, j).MaskedStore(t.regs[fullRows][j], mask)
		}
	}
}

// StoreLower writes only elements (i, j) with i >= j to p.
func (t *RegisterTile[T]) StoreLower(p matrix.Pointer[T]) {
	t.storeLower(p, t.m, t.n)
}

// StoreLowerPartial is StoreLower limited to the leading (m, n) submatrix.
func (t *RegisterTile[T]) StoreLowerPartial(p matrix.Pointer[T], m, n int) {
	t.storeLower(p, m, n)
}

func (t *RegisterTile[T]) storeLower(p matrix.Pointer[T], m, n int) {
	fullRows, rem := m/t.w, m%t.w
	for j := 0; j < n && j < t.n; j++ {
		diagGroup := j / t.w
		for i := 0; i < t.rowGroups(); i++ {
			if i < diagGroup {
				continue // entirely above the diagonal, not part of L
			}
			if i >= fullRows+boolToInt(rem > 0) {
				continue // outside the (m, n) submatrix
			}
			v := t.regs[i][j]
			if i == diagGroup {
				mask := simd.GreaterEqual(simd.IndexSequence[T](), simd.Set(T(j%t.w)))
				if i == fullRows && rem > 0 {
					p.At(t.w*i, j).MaskedStore(v, andMask(mask, simd.TailMask[T](rem)))
				} else {
					p.At(t.w*i, j).MaskedStore(v, mask)
				}
				continue
			}
			if i == fullRows && rem > 0 {
				p.At(t.w*i, j).MaskedStore(v, simd.TailMask[T](rem))
				continue
			}
			p.At(t.w*i, j).Store(v)
		}
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func andMask[T simd.Real](a, b simd.Mask[T]) simd.Mask[T] {
	n := a.NumLanes()
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.Active(i) && b.Active(i)
	}
	return simd.MaskFromBits[T](bits)
}

// Scale multiplies every register by broadcast(alpha).
func (t *RegisterTile[T]) Scale(alpha T) {
	for i := range t.regs {
		for j := range t.regs[i] {
			t.regs[i][j] = scale(alpha, t.regs[i][j])
		}
	}
}

// Axpy performs tile += beta * load(p) over the full tile shape.
func (t *RegisterTile[T]) Axpy(beta T, p matrix.Pointer[T]) {
	for j := 0; j < t.n; j++ {
		for i := 0; i < t.rowGroups(); i++ {
			t.regs[i][j] = simd.FMA(simd.Set(beta), p.At(t.w*i, j).Load(), t.regs[i][j])
		}
	}
}

// AxpyPartial is Axpy limited to the leading (m, n) submatrix, with the
// same edge policy as LoadPartial.
func (t *RegisterTile[T]) AxpyPartial(beta T, p matrix.Pointer[T], m, n int) {
	fullRows, rem := m/t.w, m%t.w
	for j := 0; j < n && j < t.n; j++ {
		for i := 0; i < fullRows && i < t.rowGroups(); i++ {
			t.regs[i][j] = simd.FMA(simd.Set(beta), p.At(t.w*i, j).Load(), t.regs[i][j])
		}
		if rem > 0 && fullRows < t.rowGroups() {
			pp := p.At(t.w*fullRows, j)
			var loaded simd.Vec[T]
			if p.Aligned() && p.Padded() {
				loaded = pp.Load()
			} else {
				loaded = pp.MaskedLoad(simd.TailMask[T](rem))
			}
			t.regs[fullRows][j] = simd.FMA(simd.Set(beta), loaded, t.regs[fullRows][j])
		}
	}
}
