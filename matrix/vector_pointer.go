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

package matrix

import "github.com/blastkernel/blast/simd"

// VectorPointer narrows a Pointer to a single row or column, the shape
// GER's operands and GEMM's K-step column/row walk need.
type VectorPointer[T simd.Real] struct {
	base       Pointer[T]
	horizontal bool
}

// Column narrows p to the column vector starting at p's current position.
func Column[T simd.Real](p Pointer[T]) VectorPointer[T] {
	return VectorPointer[T]{base: p, horizontal: false}
}

// Row narrows p to the row vector starting at p's current position.
func Row[T simd.Real](p Pointer[T]) VectorPointer[T] {
	return VectorPointer[T]{base: p, horizontal: true}
}

// At returns the k-th element of the vector.
func (v VectorPointer[T]) At(k int) T {
	if v.horizontal {
		return v.base.Element(0, k)
	}
	return v.base.Element(k, 0)
}

// Slice returns a VectorPointer advanced by k elements along its own axis.
func (v VectorPointer[T]) Slice(k int) VectorPointer[T] {
	if v.horizontal {
		return VectorPointer[T]{base: v.base.Hmove(k), horizontal: true}
	}
	return VectorPointer[T]{base: v.base.Vmove(k), horizontal: false}
}

// Load reads lanes contiguous elements starting at the vector's current
// position.
func (v VectorPointer[T]) Load(lanes int) simd.Vec[T] {
	tmp := make([]T, lanes)
	for k := range tmp {
		tmp[k] = v.At(k)
	}
	return simd.Load(tmp)
}

// MaskedLoad reads the elements of the active lanes only, zero-filling
// where mask is inactive.
func (v VectorPointer[T]) MaskedLoad(mask simd.Mask[T]) simd.Vec[T] {
	tmp := make([]T, mask.NumLanes())
	for k := range tmp {
		if mask.Active(k) {
			tmp[k] = v.At(k)
		}
	}
	return simd.MaskedLoad(tmp, mask)
}

// Broadcast returns the k-th element of the vector, for use as a scalar.
func (v VectorPointer[T]) Broadcast(k int) T { return v.At(k) }
