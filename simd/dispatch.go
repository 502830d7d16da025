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

import (
	"os"
	"strconv"
	"sync"
	"unsafe"

	"github.com/blastkernel/blast/internal/blastlog"
)

// DispatchLevel names the SIMD register width class detected for this
// process. It is informational: the kernel layer below has a single
// portable implementation (see ops.go) that is correct for any width,
// so DispatchLevel only affects how many lanes that implementation
// processes per register group and what gets logged at startup.
type DispatchLevel int

const (
	// DispatchScalar means no hardware SIMD was detected; Lanes()
	// still returns a width (the architecture baseline) so the
	// register-tile math has a lane count to work with.
	DispatchScalar DispatchLevel = iota
	// DispatchAVX2 is 256-bit x86 SIMD (32-byte registers).
	DispatchAVX2
	// DispatchAVX512 is 512-bit x86 SIMD (64-byte registers).
	DispatchAVX512
	// DispatchNEON is 128-bit ARM SIMD (16-byte registers).
	DispatchNEON
)

func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel and currentWidth are set once by the architecture-specific
// init() in dispatch_amd64.go / dispatch_arm64.go / dispatch_other.go.
var (
	currentLevel DispatchLevel
	currentWidth int
)

var logDispatchOnce sync.Once

// logDispatch reports the detected dispatch level exactly once, lazily
// on first use rather than at package init time, so it always runs after
// the architecture-specific init() below has set currentLevel/currentWidth.
func logDispatch() {
	logDispatchOnce.Do(func() {
		blastlog.Info("simd dispatch selected", "level", currentLevel.String(), "width_bytes", currentWidth, "register_capacity", registerCapacity)
	})
}

// CurrentLevel returns the SIMD width class detected for this process.
func CurrentLevel() DispatchLevel {
	logDispatch()
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes (16, 32 or 64).
func CurrentWidth() int {
	return currentWidth
}

// NoSimdEnv reports whether BLAST_NO_SIMD forces the scalar-width
// baseline regardless of detected CPU features. Useful for reproducing
// a specific lane count in tests and benchmarks.
func NoSimdEnv() bool {
	val := os.Getenv("BLAST_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Lanes returns the lane count W for type T at the current register
// width: W = CurrentWidth() / sizeof(T). The driver and kernel layers
// treat this as a compile-time constant for the lifetime of the
// process; it is fixed once by the init() in the dispatch_* files.
func Lanes[T Real]() int {
	logDispatch()
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	if size == 0 {
		return 0
	}
	return currentWidth / size
}

// RegisterCapacity returns the number of vector registers the target
// register file is assumed to hold (16 on x86, 32 on ARM NEON64). The
// kernel layer uses this to reject (at construction, before any SIMD
// code runs) a tile shape that would not fit the register budget.
func RegisterCapacity() int {
	return registerCapacity
}
