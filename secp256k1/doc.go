// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 specializes the generic field and curve arithmetic of the
ecc package to the secp256k1 curve y^2 = x^3 + 7 used by bitcoin.

It provides the domain parameters (P, N, G), public keys with their SEC
serializations, hash160 and pay-to-pubkey-hash addresses, and private keys
with their wallet import format.  Signing and verification live in the ecdsa
subpackage.

Scalar multiplication reduces the scalar modulo the group order before
multiplying.  Like the ecc package, nothing here runs in constant time.
*/
package secp256k1
