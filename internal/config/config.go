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

// Package config centralizes the environment variables the rest of the
// module reads, so BLAST_* lookups live in one place instead of being
// scattered one-offs next to whatever first needed them.
package config

import (
	"os"
	"strconv"
)

// NoSimd reports whether BLAST_NO_SIMD forces the scalar dispatch level
// regardless of detected CPU features. Mirrors simd.NoSimdEnv's own
// parsing so both stay in lockstep if either changes.
func NoSimd() bool {
	val := os.Getenv("BLAST_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// LogLevel reads BLAST_LOG_LEVEL ("debug", "info", "warn", "error"),
// defaulting to "warn" when unset or unrecognized.
func LogLevel() string {
	val := os.Getenv("BLAST_LOG_LEVEL")
	switch val {
	case "debug", "info", "warn", "error":
		return val
	default:
		return "warn"
	}
}

// PanelOverride reads BLAST_PANEL_OVERRIDE, a testing-only override for
// the panel tile width matrix.PanelMatrix otherwise derives from
// simd.Lanes[T](). Returns 0 (no override) when unset or invalid.
func PanelOverride() int {
	val := os.Getenv("BLAST_PANEL_OVERRIDE")
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
