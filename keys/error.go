// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrPrivKeyOutOfRange is returned when a private key scalar is not in
	// the range [1, n) where n is the order of the generator.
	ErrPrivKeyOutOfRange = ErrorKind("ErrPrivKeyOutOfRange")

	// ErrPubKeyAtInfinity is returned when a public key would be the point
	// at infinity, which has no encoding.
	ErrPubKeyAtInfinity = ErrorKind("ErrPubKeyAtInfinity")

	// ErrCoordinateTooWide is returned when a public key coordinate does not
	// fit in the 32 bytes of its SEC encoding.
	ErrCoordinateTooWide = ErrorKind("ErrCoordinateTooWide")

	// ErrUnknownNetwork is returned when an address is requested for a
	// network identifier that is not known, or when a decoded address has a
	// version byte of no known network.
	ErrUnknownNetwork = ErrorKind("ErrUnknownNetwork")

	// ErrAddressLength is returned when a decoded address does not have the
	// length of a version byte, hash160 payload, and checksum.
	ErrAddressLength = ErrorKind("ErrAddressLength")

	// ErrChecksumMismatch is returned when the checksum of a decoded address
	// does not match the checksum recomputed from its contents.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")

	// ErrCurveMismatch is returned when an address is requested for a
	// network whose generator is on a different curve than the public key.
	ErrCurveMismatch = ErrorKind("ErrCurveMismatch")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to keys and their encodings.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the specific
// reason for the error by checking the underlying error.
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

// keyError creates an Error given a set of arguments.
func keyError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
