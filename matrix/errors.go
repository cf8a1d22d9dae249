// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for programmer errors (see options.go).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping. Context is attached at the detection site with
// fmt.Errorf("ctx: %w", ErrX); callers still match with errors.Is.
//
// ERROR CATEGORIES:
// Every argument-shaped failure (bad shape, ragged rows, mismatch, unknown
// selector, nil operand, non-finite value) also matches ErrInvalidArgument,
// so callers may test either the category or the precise sentinel.

var (
	// ErrInvalidArgument is the category of malformed construction and
	// incompatible operands.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrOutOfRange indicates that a row or column coordinate is outside the
	// logical shape, or that the wrong number of coordinates was supplied.
	// Public indexers (At/Set/Get/Put) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when a shape is invalid (r<=0, c<=0, or an empty selection).
	ErrBadShape = fmt.Errorf("matrix: invalid shape: %w", ErrInvalidArgument)

	// ErrRaggedRows is returned when source rows do not share one length.
	ErrRaggedRows = fmt.Errorf("matrix: rows of unequal length: %w", ErrInvalidArgument)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. element-wise ops on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("matrix: dimension mismatch: %w", ErrInvalidArgument)

	// ErrBadSelector indicates an unrecognized selector kind or a selector
	// index outside the current logical range.
	ErrBadSelector = fmt.Errorf("matrix: invalid selector: %w", ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = fmt.Errorf("matrix: nil matrix: %w", ErrInvalidArgument)

	// ErrNaNInf signals a NaN or ±Inf value under a policy that requires
	// finite values (see WithValidateNaNInf).
	ErrNaNInf = fmt.Errorf("matrix: NaN or Inf encountered: %w", ErrInvalidArgument)
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
// Kept as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange
