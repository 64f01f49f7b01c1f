// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecdsa provides secp256k1-optimized ECDSA signing and verification.

Signatures are produced deterministically.  The nonce for each signature is
derived from the private key and message hash in the manner of RFC6979, and
the S component is always normalized to the lower half of the group order.

Message hashes are 256-bit unsigned integers.  MessageHash computes the hash
of a message the way bitcoin does, as the double SHA-256 digest interpreted
big endian.

Signatures are serialized using the Distinguished Encoding Rules (DER).
ParseDERSignature only checks the structure of an encoding.  Range checks on
R and S are left to Verify.

Errors

Errors returned by this package are of type ecdsa.Error and wrap an
ErrorKind.  Every malformed encoding kind also matches ErrMalformedSignature
via errors.Is.

A SigCache may be used to avoid verifying the same signature more than once.
*/
package ecdsa
