// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrEmptyTree indicates a merkle tree or level was requested for zero
	// leaves.
	ErrEmptyTree = ErrorKind("ErrEmptyTree")

	// ErrTooManyLeaves indicates a merkle block claims more transactions
	// than could fit in a block.
	ErrTooManyLeaves = ErrorKind("ErrTooManyLeaves")

	// ErrSingleNodeLevel indicates a parent level was requested for a level
	// that only has one node, which is already a root.
	ErrSingleNodeLevel = ErrorKind("ErrSingleNodeLevel")

	// ErrMatchedLenMismatch indicates the number of match flags passed to
	// the partial tree builder differs from the number of leaves.
	ErrMatchedLenMismatch = ErrorKind("ErrMatchedLenMismatch")

	// ErrHashesExhausted indicates the walk needed another hash after all
	// of the provided hashes were consumed.
	ErrHashesExhausted = ErrorKind("ErrHashesExhausted")

	// ErrFlagBitsExhausted indicates the walk needed another flag bit after
	// all of the provided flag bits were consumed.
	ErrFlagBitsExhausted = ErrorKind("ErrFlagBitsExhausted")

	// ErrMerkleConsumption matches every error kind that describes inputs
	// left over once the root is known.  It is never returned directly.
	ErrMerkleConsumption = ErrorKind("ErrMerkleConsumption")

	// ErrHashesNotConsumed indicates hashes remained once the root was
	// computed.
	ErrHashesNotConsumed = ErrorKind("ErrHashesNotConsumed")

	// ErrFlagBitsNotConsumed indicates set flag bits remained once the root
	// was computed.
	ErrFlagBitsNotConsumed = ErrorKind("ErrFlagBitsNotConsumed")

	// ErrNodeOverwrite indicates an attempt to set a tree node that already
	// holds a hash.
	ErrNodeOverwrite = ErrorKind("ErrNodeOverwrite")

	// ErrMerkleRootMismatch indicates the reconstructed root does not match
	// the merkle root committed to by the block header.
	ErrMerkleRootMismatch = ErrorKind("ErrMerkleRootMismatch")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Is reports whether e matches target.  Both leftover input kinds match
// ErrMerkleConsumption.
func (e ErrorKind) Is(target error) bool {
	if target != error(ErrMerkleConsumption) {
		return false
	}
	return e == ErrHashesNotConsumed || e == ErrFlagBitsNotConsumed
}

// Error identifies an error related to merkle proof reconstruction.  It has
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
