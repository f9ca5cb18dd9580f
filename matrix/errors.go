// SPDX-License-Identifier: MIT

// Package: matrix
//
// errors.go - sentinel errors for the matrix package.
//
// Callers branch with errors.Is; implementations attach context with %w.
package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates an index outside [0,rows)×[0,cols).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare indicates an operation that requires rows == cols.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates a nil Matrix argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaN indicates an attempt to store NaN.
	ErrNaN = errors.New("matrix: NaN encountered")
)

// matrixErrorf tags err with the operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
