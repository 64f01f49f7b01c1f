// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecc implements arithmetic in prime fields and the group law of short
Weierstrass elliptic curves y^2 = x^3 + ax + b defined over them.

The package is generic: a FieldElement carries its own modulus and a Point
carries its own Curve, so the same code serves toy curves over small fields
as well as secp256k1, which is specialized by the secp256k1 package.

Mixing elements of different fields or points of different curves is never
coerced.  Such operations return an Error whose kind is ErrFieldMismatch or
ErrCurveMismatch respectively, and every constructed point other than the
point at infinity is checked against the curve equation.

Arithmetic is performed on math/big integers in affine coordinates.  None of
it runs in constant time, so the package must not be used where an attacker
can observe timing of operations on secret values.
*/
package ecc
