// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcspv/ecc"
)

// fromHex converts the passed hex string into a big integer and panics if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.  It will only (and must only) be
// called for initialization purposes.
func fromHex(s string) *big.Int {
	if s == "" {
		return big.NewInt(0)
	}
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

// The secp256k1 domain parameters.  The values are shared and must not be
// modified by callers.
var (
	// P is the prime 2^256 - 2^32 - 977 of the underlying field.
	P = fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	// N is the order of the group generated by G.
	N = fromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	// HalfOrder is N >> 1.  Signatures are normalized so that s never
	// exceeds it.
	HalfOrder = new(big.Int).Rsh(N, 1)

	// A and B are the coefficients of y^2 = x^3 + ax + b.
	A = mustFieldVal(big.NewInt(0))
	B = mustFieldVal(big.NewInt(7))

	// G is the base point of the group.
	G = mustPoint(
		fromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		fromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
	)

	// sqrtExp is (P + 1) / 4.  It is an integer since P = 3 mod 4.
	sqrtExp = new(big.Int).Rsh(new(big.Int).Add(P, big.NewInt(1)), 2)

	curve = mustCurve()
)

// S256 returns the curve y^2 = x^3 + 7 over the secp256k1 field.
func S256() *ecc.Curve {
	return curve
}

func mustCurve() *ecc.Curve {
	c, err := ecc.NewCurve(A, B)
	if err != nil {
		panic(fmt.Sprintf("invalid secp256k1 parameters: %v", err))
	}
	return c
}

func mustFieldVal(v *big.Int) *ecc.FieldElement {
	f, err := NewFieldVal(v)
	if err != nil {
		panic(fmt.Sprintf("invalid secp256k1 field constant: %v", err))
	}
	return f
}

func mustPoint(x, y *big.Int) *ecc.Point {
	p, err := NewPoint(x, y)
	if err != nil {
		panic(fmt.Sprintf("invalid secp256k1 base point: %v", err))
	}
	return p
}

// NewFieldVal returns v as an element of the secp256k1 field.  v must be in
// [0, P).
func NewFieldVal(v *big.Int) (*ecc.FieldElement, error) {
	return ecc.NewFieldElement(v, P)
}

// Sqrt returns a square root of x computed as x^((P+1)/4).  The result is
// only meaningful when x is a quadratic residue, which callers verify by
// squaring it.
func Sqrt(x *ecc.FieldElement) *ecc.FieldElement {
	return x.Pow(sqrtExp)
}

// NewPoint returns the secp256k1 point (x, y).  Both coordinates must be in
// [0, P) and satisfy the curve equation.
func NewPoint(x, y *big.Int) (*ecc.Point, error) {
	fx, err := NewFieldVal(x)
	if err != nil {
		return nil, err
	}
	fy, err := NewFieldVal(y)
	if err != nil {
		return nil, err
	}
	return ecc.NewPoint(fx, fy, S256())
}

// ScalarMult returns k*point where k is first reduced modulo the group order.
// The point must be on secp256k1, otherwise an error of kind
// ecc.ErrCurveMismatch is returned.
func ScalarMult(k *big.Int, point *ecc.Point) (*ecc.Point, error) {
	if !point.Curve().Equals(S256()) {
		str := fmt.Sprintf("point %v is not on secp256k1", point)
		return nil, ecc.Error{Err: ecc.ErrCurveMismatch, Description: str}
	}
	return point.ScalarMult(new(big.Int).Mod(k, N))
}

// ScalarBaseMult returns k*G where k is first reduced modulo the group order.
func ScalarBaseMult(k *big.Int) *ecc.Point {
	p, err := ScalarMult(k, G)
	if err != nil {
		// G is on the curve and the reduced scalar is never negative.
		panic(fmt.Sprintf("scalar base multiplication failed: %v", err))
	}
	return p
}
