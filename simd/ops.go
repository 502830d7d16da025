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

package simd

import "math"

// Zero returns a vector of Lanes[T]() zero lanes.
func Zero[T Real]() Vec[T] {
	return Vec[T]{data: make([]T, Lanes[T]())}
}

// Set (broadcast) returns a vector with every lane set to value.
func Set[T Real](value T) Vec[T] {
	n := Lanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Load reads a full vector from src. The caller guarantees
// len(src) >= Lanes[T](); panel-form callers never read across a panel
// boundary, so this is always a contiguous same-tile read.
func Load[T Real](src []T) Vec[T] {
	n := Lanes[T]()
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// MaskedLoad reads src where mask is active and zero-fills the
// remaining lanes (§4.1 masked_load).
func MaskedLoad[T Real](src []T, mask Mask[T]) Vec[T] {
	n := Lanes[T]()
	data := make([]T, n)
	for i := 0; i < n && i < len(src); i++ {
		if mask.Active(i) {
			data[i] = src[i]
		}
	}
	return Vec[T]{data: data}
}

// Store writes all lanes of v to dst.
func Store[T Real](v Vec[T], dst []T) {
	copy(dst[:len(v.data)], v.data)
}

// MaskedStore writes only the lanes where mask is active, leaving the
// rest of dst untouched (§4.1 masked_store, the partial-store contract
// that testable property 2 checks).
func MaskedStore[T Real](v Vec[T], dst []T, mask Mask[T]) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		if mask.Active(i) {
			dst[i] = v.data[i]
		}
	}
}

// Broadcast loads the single value at src[0] into every lane.
func Broadcast[T Real](src []T) Vec[T] {
	return Set(src[0])
}

// FMA returns a*b + c with a single rounding.
func FMA[T Real](a, b, c Vec[T]) Vec[T] {
	n := Lanes[T]()
	data := make([]T, n)
	for i := 0; i < n; i++ {
		data[i] = fmaLane(a.data[i], b.data[i], c.data[i])
	}
	return Vec[T]{data: data}
}

// FNMA returns c - a*b with a single rounding.
func FNMA[T Real](a, b, c Vec[T]) Vec[T] {
	n := Lanes[T]()
	data := make([]T, n)
	for i := 0; i < n; i++ {
		data[i] = fnmaLane(a.data[i], b.data[i], c.data[i])
	}
	return Vec[T]{data: data}
}

func fmaLane[T Real](a, b, c T) T {
	switch v := any(a).(type) {
	case float32:
		return any(float32(math.FMA(float64(v), float64(any(b).(float32)), float64(any(c).(float32))))).(T)
	case float64:
		return any(math.FMA(v, any(b).(float64), any(c).(float64))).(T)
	default:
		return c
	}
}

func fnmaLane[T Real](a, b, c T) T {
	switch v := any(a).(type) {
	case float32:
		return any(float32(math.FMA(-float64(v), float64(any(b).(float32)), float64(any(c).(float32))))).(T)
	case float64:
		return any(math.FMA(-v, any(b).(float64), any(c).(float64))).(T)
	default:
		return c
	}
}

// Mul performs element-wise multiplication.
func Mul[T Real](a, b Vec[T]) Vec[T] {
	n := Lanes[T]()
	data := make([]T, n)
	for i := 0; i < n; i++ {
		data[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: data}
}

// Div performs element-wise division.
func Div[T Real](a, b Vec[T]) Vec[T] {
	n := Lanes[T]()
	data := make([]T, n)
	for i := 0; i < n; i++ {
		data[i] = a.data[i] / b.data[i]
	}
	return Vec[T]{data: data}
}

// Abs computes the element-wise absolute value.
func Abs[T Real](v Vec[T]) Vec[T] {
	n := len(v.data)
	data := make([]T, n)
	for i := 0; i < n; i++ {
		if v.data[i] < 0 {
			data[i] = -v.data[i]
		} else {
			data[i] = v.data[i]
		}
	}
	return Vec[T]{data: data}
}

// Max returns the element-wise maximum.
func Max[T Real](a, b Vec[T]) Vec[T] {
	n := Lanes[T]()
	data := make([]T, n)
	for i := 0; i < n; i++ {
		if a.data[i] > b.data[i] {
			data[i] = a.data[i]
		} else {
			data[i] = b.data[i]
		}
	}
	return Vec[T]{data: data}
}

// Sqrt computes the element-wise square root.
func Sqrt[T Real](v Vec[T]) Vec[T] {
	n := len(v.data)
	data := make([]T, n)
	for i := 0; i < n; i++ {
		data[i] = sqrtLane(v.data[i])
	}
	return Vec[T]{data: data}
}

func sqrtLane[T Real](a T) T {
	switch v := any(a).(type) {
	case float32:
		return any(float32(math.Sqrt(float64(v)))).(T)
	case float64:
		return any(math.Sqrt(v)).(T)
	default:
		return a
	}
}

// Reciprocal computes the element-wise reciprocal 1/x.
func Reciprocal[T Real](v Vec[T]) Vec[T] {
	one := Set[T](1)
	return Div(one, v)
}

// IndexSequence returns the lane-indexed vector [0, 1, ..., W-1].
func IndexSequence[T Real]() Vec[T] {
	n := Lanes[T]()
	data := make([]T, n)
	for i := 0; i < n; i++ {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// GreaterThan performs an element-wise > comparison, returning a Mask.
func GreaterThan[T Real](a, b Vec[T]) Mask[T] {
	n := Lanes[T]()
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessThan performs an element-wise < comparison, returning a Mask.
func LessThan[T Real](a, b Vec[T]) Mask[T] {
	n := Lanes[T]()
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterEqual performs an element-wise >= comparison, returning a Mask.
func GreaterEqual[T Real](a, b Vec[T]) Mask[T] {
	n := Lanes[T]()
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] >= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Blend selects lane-wise between a (mask true) and b (mask false).
func Blend[T Real](a, b Vec[T], mask Mask[T]) Vec[T] {
	n := Lanes[T]()
	data := make([]T, n)
	for i := 0; i < n; i++ {
		if mask.Active(i) {
			data[i] = a.data[i]
		} else {
			data[i] = b.data[i]
		}
	}
	return Vec[T]{data: data}
}

// ReduceMax returns the largest lane value.
func ReduceMax[T Real](v Vec[T]) T {
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// TailMask builds a mask with the first count lanes active, used by
// drivers and the register tile to handle an (m, n) smaller than the
// kernel's native shape without a separate code path.
func TailMask[T Real](count int) Mask[T] {
	n := Lanes[T]()
	if count < 0 {
		count = 0
	}
	if count > n {
		count = n
	}
	bits := make([]bool, n)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}
