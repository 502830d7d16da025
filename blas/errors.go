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

// Package blas implements the whole-matrix BLAS/LAPACK-style driver
// layer: Gemm, Ger, Trsm, Trmm, Syrk and Potrf, each tiling its M x N
// destination onto a ladder of kernel.RegisterTile invocations.
//
// Drivers validate operand shapes once on entry and return an error
// before touching memory; the register-tile layer they call into never
// returns an error for a whole-matrix shape problem. Its only errors are
// kernel.ErrUnsupportedTrsm and kernel.ErrShapeMismatch (a tile with more
// columns than rows passed to Potrf), which this package propagates
// unwrapped.
package blas

import (
	"errors"
	"fmt"
)

// ShapeError reports a whole-matrix operand dimension mismatch detected
// before any tile was constructed.
type ShapeError struct {
	Op       string
	Relation string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("blas: %s: %s", e.Op, e.Relation)
}

// ErrUnsupportedOperation is returned for a side/uplo combination this
// driver layer does not implement.
var ErrUnsupportedOperation = errors.New("blas: unsupported operation")

func shapeErr(op, format string, args ...any) *ShapeError {
	return &ShapeError{Op: op, Relation: fmt.Sprintf(format, args...)}
}
