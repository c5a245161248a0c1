// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrFieldTooSmall is returned when a curve is constructed over a field
	// whose modulus is not greater than 3.
	ErrFieldTooSmall = ErrorKind("ErrFieldTooSmall")

	// ErrFieldNotPrime is returned when a curve is constructed over a
	// modulus that is not prime.
	ErrFieldNotPrime = ErrorKind("ErrFieldNotPrime")

	// ErrCurveSingular is returned when the curve discriminant
	// 4a^3 + 27b^2 is congruent to zero modulo p.
	ErrCurveSingular = ErrorKind("ErrCurveSingular")

	// ErrPointNotOnCurve is returned when the coordinates of a point do not
	// satisfy the curve equation.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrCoordinateRange is returned when a point coordinate is outside of
	// the range [0, p).
	ErrCoordinateRange = ErrorKind("ErrCoordinateRange")

	// ErrNegativeScalar is returned when a point is multiplied by a
	// negative scalar.
	ErrNegativeScalar = ErrorKind("ErrNegativeScalar")

	// ErrInvalidGenerator is returned when a generator is constructed from
	// the point at infinity or with a non-positive order.
	ErrInvalidGenerator = ErrorKind("ErrInvalidGenerator")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to curve parameters, point construction,
// or point arithmetic.  It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking the
// underlying error.
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

// eccError creates an Error given a set of arguments.
func eccError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
