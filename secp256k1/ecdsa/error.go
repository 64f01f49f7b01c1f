// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import "strings"

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrMalformedSignature matches every error kind that describes a
	// structurally invalid DER signature.  It is never returned directly.
	ErrMalformedSignature = ErrorKind("ErrMalformedSignature")

	// ErrSigTooShort is returned when a signature that should be a DER
	// signature is too short.
	ErrSigTooShort = ErrorKind("ErrSigTooShort")

	// ErrSigTooLong is returned when a signature that should be a DER
	// signature has bytes left over after the S component.
	ErrSigTooLong = ErrorKind("ErrSigTooLong")

	// ErrSigInvalidSeqID is returned when a signature that should be a DER
	// signature does not have the expected ASN.1 sequence ID.
	ErrSigInvalidSeqID = ErrorKind("ErrSigInvalidSeqID")

	// ErrSigInvalidDataLen is returned when a signature that should be a DER
	// signature does not specify the correct number of remaining bytes for
	// the R and S portions.
	ErrSigInvalidDataLen = ErrorKind("ErrSigInvalidDataLen")

	// ErrSigInvalidRIntID is returned when a signature that should be a DER
	// signature does not have the expected ASN.1 integer ID for R.
	ErrSigInvalidRIntID = ErrorKind("ErrSigInvalidRIntID")

	// ErrSigInvalidRLen is returned when a signature that should be a DER
	// signature declares an R length that leaves no room for S.
	ErrSigInvalidRLen = ErrorKind("ErrSigInvalidRLen")

	// ErrSigInvalidSIntID is returned when a signature that should be a DER
	// signature does not have the expected ASN.1 integer ID for S.
	ErrSigInvalidSIntID = ErrorKind("ErrSigInvalidSIntID")

	// ErrSigInvalidSLen is returned when a signature that should be a DER
	// signature declares an S length that runs past the end of the
	// signature.
	ErrSigInvalidSLen = ErrorKind("ErrSigInvalidSLen")

	// ErrHashOutOfRange is returned when a message hash to be signed is
	// negative or wider than 256 bits.
	ErrHashOutOfRange = ErrorKind("ErrHashOutOfRange")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Is reports whether e matches target.  Every ErrSig kind matches
// ErrMalformedSignature.
func (e ErrorKind) Is(target error) bool {
	if target == error(ErrMalformedSignature) {
		return strings.HasPrefix(string(e), "ErrSig")
	}
	return false
}

// Error identifies an error related to an ECDSA signature.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
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

// signatureError creates an Error given a set of arguments.
func signatureError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
