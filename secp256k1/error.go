// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrPubKeyInvalidLen indicates that the length of a serialized public
	// key is not one of the allowed lengths.
	ErrPubKeyInvalidLen = ErrorKind("ErrPubKeyInvalidLen")

	// ErrPubKeyInvalidFormat indicates an attempt was made to parse a public
	// key that does not specify one of the supported formats.
	ErrPubKeyInvalidFormat = ErrorKind("ErrPubKeyInvalidFormat")

	// ErrPubKeyXTooBig indicates that the x coordinate for a public key is
	// greater than or equal to the prime of the field underlying the group.
	ErrPubKeyXTooBig = ErrorKind("ErrPubKeyXTooBig")

	// ErrPubKeyYTooBig indicates that the y coordinate for a public key is
	// greater than or equal to the prime of the field underlying the group.
	ErrPubKeyYTooBig = ErrorKind("ErrPubKeyYTooBig")

	// ErrPubKeyNotOnCurve indicates that a public key is not a point on the
	// secp256k1 curve.
	ErrPubKeyNotOnCurve = ErrorKind("ErrPubKeyNotOnCurve")

	// ErrPrivKeyOutOfRange indicates that a private key secret is zero
	// modulo the group order or does not fit in 32 bytes.
	ErrPrivKeyOutOfRange = ErrorKind("ErrPrivKeyOutOfRange")

	// ErrWIFInvalidEncoding indicates that a wallet import format string is
	// not valid base58 or has a bad checksum.
	ErrWIFInvalidEncoding = ErrorKind("ErrWIFInvalidEncoding")

	// ErrWIFInvalidLen indicates that the payload of a wallet import format
	// string is neither 32 nor 33 bytes long.
	ErrWIFInvalidLen = ErrorKind("ErrWIFInvalidLen")

	// ErrWIFInvalidCompressFlag indicates that a 33 byte wallet import
	// format payload does not end with the 0x01 compression flag.
	ErrWIFInvalidCompressFlag = ErrorKind("ErrWIFInvalidCompressFlag")

	// ErrAddressInvalidLen indicates that a hash passed to an address
	// encoder or decoded from an address is not 20 bytes.
	ErrAddressInvalidLen = ErrorKind("ErrAddressInvalidLen")

	// ErrAddressInvalidEncoding indicates that an address is not valid
	// base58 or has a bad checksum.
	ErrAddressInvalidEncoding = ErrorKind("ErrAddressInvalidEncoding")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 keys and their encodings.
// It has full support for errors.Is and errors.As, so the caller can
// ascertain the specific reason for the error by checking the underlying
// error.
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
