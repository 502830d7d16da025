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

package kernel

import "errors"

// Side selects which operand the triangular factor multiplies from in
// TRSM and TRMM.
type Side int

const (
	Left Side = iota
	Right
)

// Uplo selects which triangle of a triangular operand holds the factor.
type Uplo int

const (
	Lower Uplo = iota
	Upper
)

// ErrUnsupportedTrsm is returned by RegisterTile.Trsm for every
// (side, uplo) combination other than (Right, Upper). The C++ original
// this kernel is ported from carries dead, commented-out code for
// (Left, Lower); per spec this is left unimplemented rather than guessed
// at from the commented-out source.
var ErrUnsupportedTrsm = errors.New("kernel: unsupported trsm side/uplo combination")

// ErrShapeMismatch is returned by RegisterTile.Potrf when the tile's
// column count exceeds its row count.
var ErrShapeMismatch = errors.New("kernel: tile shape does not satisfy operation's precondition")
