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

//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// registerCapacity is the x86 vector register file size assumed by the
// kernel layer: 16 YMM registers pre-AVX512, 32 ZMM registers once
// AVX512F widens the register file itself, not just the lane width.
var registerCapacity = 16

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentWidth = 16
		return
	}

	switch {
	case cpu.X86.HasAVX512F:
		currentLevel = DispatchAVX512
		currentWidth = 64
		registerCapacity = 32
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
	default:
		// Every amd64 CPU Go supports has SSE2; treat that width as
		// the scalar-mode baseline rather than falling back further.
		currentLevel = DispatchScalar
		currentWidth = 16
	}
}
