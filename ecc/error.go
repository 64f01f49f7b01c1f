// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrFieldRange is returned when a field element is created with a
	// value outside of the range [0, modulus) or with a modulus that can't
	// describe a field.
	ErrFieldRange = ErrorKind("ErrFieldRange")

	// ErrFieldMismatch is returned when arithmetic is attempted between
	// field elements that belong to fields with different moduli.
	ErrFieldMismatch = ErrorKind("ErrFieldMismatch")

	// ErrPointNotOnCurve is returned when the coordinates of a point do not
	// satisfy the curve equation y^2 = x^3 + ax + b.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrCurveMismatch is returned when points on curves with different
	// parameters are combined.
	ErrCurveMismatch = ErrorKind("ErrCurveMismatch")

	// ErrNegativeScalar is returned when a point is multiplied by a
	// negative scalar.
	ErrNegativeScalar = ErrorKind("ErrNegativeScalar")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to field or group arithmetic.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
