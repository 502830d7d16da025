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

// Package simd provides the portable SIMD vector primitive that the
// register-tile kernels are built from: a fixed-width lane group of a
// single IEEE-754 type, with runtime CPU dispatch selecting the lane
// width once at process start.
//
// Every operation here is total: none of them can fail. Vec is a small
// value type wrapping a lane slice, and every operation that returns a
// Vec allocates a new lane slice for it.
package simd

// Real is the constraint satisfied by the scalar element type T. The
// kernel layer is monomorphic in T at compile time; only IEEE-754
// float32 and float64 are supported (no complex, no mixed precision).
type Real interface {
	~float32 | ~float64
}

// Vec is an opaque value of Lanes[T]() lanes of T. Vec instances should
// not be constructed directly; use Zero, Set, or Load.
type Vec[T Real] struct {
	data []T
}

// NumLanes returns the number of lanes held in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data exposes the lane contents. Intended for tests and debugging; the
// driver and kernel layers never need to inspect a Vec's lanes directly.
func (v Vec[T]) Data() []T {
	return v.data
}

// Lane returns the value of a single lane.
func (v Vec[T]) Lane(i int) T {
	return v.data[i]
}

// Mask is the result of a lane-wise comparison. It selects lanes for
// Blend, MaskedLoad and MaskedStore.
type Mask[T Real] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// Active reports whether lane i is selected.
func (m Mask[T]) Active(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// MaskFromBits builds a Mask directly from a per-lane boolean slice, for
// callers (such as the register-tile layer's combined triangular+tail
// masking) that need to combine two masks the comparison operators alone
// can't express.
func MaskFromBits[T Real](bits []bool) Mask[T] {
	cp := make([]bool, len(bits))
	copy(cp, bits)
	return Mask[T]{bits: cp}
}
