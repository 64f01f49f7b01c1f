// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcspv/secp256k1"
)

// References:
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)
//
//   [RFC6979]: Deterministic Usage of the Digital Signature Algorithm (DSA)
//     and Elliptic Curve Digital Signature Algorithm (ECDSA)

var (
	// singleZero is used during RFC6979 nonce generation.  It is provided
	// here to avoid the need to create it multiple times.
	singleZero = []byte{0x00}

	// singleOne is used during RFC6979 nonce generation.  It is provided
	// here to avoid the need to create it multiple times.
	singleOne = []byte{0x01}

	// zeroInitializer is used during RFC6979 nonce generation.  It is
	// provided here to avoid the need to create it multiple times.
	zeroInitializer = bytes.Repeat([]byte{0x00}, sha256.Size)

	// oneInitializer is used during RFC6979 nonce generation.  It is
	// provided here to avoid the need to create it multiple times.
	oneInitializer = bytes.Repeat([]byte{0x01}, sha256.Size)

	// orderMinusTwo is the exponent used to invert scalars modulo the group
	// order.
	orderMinusTwo = new(big.Int).Sub(secp256k1.N, big.NewInt(2))
)

// hmacSHA256 returns HMAC-SHA256(key, data...).
func hmacSHA256(key []byte, data ...[]byte) []byte {
	mac := hmac.New(sha256.New, key)
	for _, d := range data {
		mac.Write(d)
	}
	return mac.Sum(nil)
}

// checkHash ensures z can be serialized as a 32-byte big-endian integer.
func checkHash(z *big.Int) error {
	if z.Sign() < 0 || z.BitLen() > 256 {
		str := fmt.Sprintf("message hash %x is not a 256-bit unsigned "+
			"integer", z)
		return signatureError(ErrHashOutOfRange, str)
	}
	return nil
}

// invertModN returns v^-1 mod N computed as v^(N-2) mod N.
func invertModN(v *big.Int) *big.Int {
	return new(big.Int).Exp(v, orderMinusTwo, secp256k1.N)
}

// MessageHash returns the integer z signed for msg, which is the big-endian
// value of its double SHA-256 digest.
func MessageHash(msg []byte) *big.Int {
	return new(big.Int).SetBytes(chainhash.DoubleHashB(msg))
}

// NonceRFC6979 generates a deterministic nonce for the private key and
// message hash z in the manner of [RFC6979].  The returned nonce is in
// [1, N-1].
//
// Unlike [RFC6979], z is reduced by subtracting N once when it exceeds N
// rather than taken modulo N.  This keeps the produced signatures stable
// against existing test vectors.
func NonceRFC6979(privKey *secp256k1.PrivateKey, z *big.Int) (*big.Int, error) {
	if err := checkHash(z); err != nil {
		return nil, err
	}

	zz := new(big.Int).Set(z)
	if zz.Cmp(secp256k1.N) > 0 {
		zz.Sub(zz, secp256k1.N)
	}
	var zBytes [32]byte
	zz.FillBytes(zBytes[:])
	secretBytes := privKey.Serialize()

	// Step B.
	//
	// V = 0x01 0x01 0x01 ... 0x01 such that the length of V, in bits, is
	// equal to 8*ceil(hashLen/8).
	v := oneInitializer

	// Step C.
	//
	// K = 0x00 0x00 0x00 ... 0x00 such that the length of K, in bits, is
	// equal to 8*ceil(hashLen/8).
	k := zeroInitializer

	// Step D.
	//
	// K = HMAC_K(V || 0x00 || int2octets(x) || bits2octets(h1))
	k = hmacSHA256(k, v, singleZero, secretBytes, zBytes[:])

	// Step E.
	//
	// V = HMAC_K(V)
	v = hmacSHA256(k, v)

	// Step F.
	//
	// K = HMAC_K(V || 0x01 || int2octets(x) || bits2octets(h1))
	k = hmacSHA256(k, v, singleOne, secretBytes, zBytes[:])

	// Step G.
	//
	// V = HMAC_K(V)
	v = hmacSHA256(k, v)

	// Step H.
	for {
		// Step H2.
		//
		// V = HMAC_K(V)
		v = hmacSHA256(k, v)

		// Step H3.
		//
		// Repeat until the candidate is in the range [1, N-1].
		candidate := new(big.Int).SetBytes(v)
		if candidate.Sign() > 0 && candidate.Cmp(secp256k1.N) < 0 {
			return candidate, nil
		}

		// K = HMAC_K(V || 0x00)
		// V = HMAC_K(V)
		k = hmacSHA256(k, v, singleZero)
		v = hmacSHA256(k, v)
	}
}

// Sign generates a deterministic ECDSA signature of the message hash z using
// the private key.  The nonce is derived with NonceRFC6979 and the returned
// signature always has an S value that is at most half the group order.
func Sign(privKey *secp256k1.PrivateKey, z *big.Int) (*Signature, error) {
	// The algorithm for producing an ECDSA signature is given as algorithm
	// 4.29 in [GECC].
	//
	// 1. k = deterministic nonce in [1, N-1]
	// 2. R = kG
	// 3. r = R.x
	// 4. s = k^-1(z + r*d) mod N
	// 5. s = N - s when s > N/2
	k, err := NonceRFC6979(privKey, z)
	if err != nil {
		return nil, err
	}

	r := secp256k1.ScalarBaseMult(k).X().Value()

	s := new(big.Int).Mul(r, privKey.Secret())
	s.Add(s, z)
	s.Mul(s, invertModN(k))
	s.Mod(s, secp256k1.N)

	// Both S and its negation are valid signatures modulo the order, so the
	// low value is used consistently to reduce signature malleability.
	if s.Cmp(secp256k1.HalfOrder) > 0 {
		s.Sub(secp256k1.N, s)
	}

	log.Tracef("Signed message hash %064x: r=%064x s=%064x", z, r, s)
	return &Signature{r: r, s: s}, nil
}

// Verify returns whether or not the signature is valid for the provided
// message hash z and secp256k1 public key.  Hashes that Sign would reject,
// negative or wider than 256 bits, never verify.
func (sig *Signature) Verify(z *big.Int, pubKey *secp256k1.PublicKey) bool {
	if checkHash(z) != nil {
		return false
	}

	// The algorithm for verifying an ECDSA signature is given as algorithm
	// 4.30 in [GECC].
	//
	// 1. Fail if R and S are not in [1, N-1]
	// 2. w = S^-1 mod N
	// 3. u1 = z * w mod N
	//    u2 = R * w mod N
	// 4. X = u1G + u2Q
	// 5. Fail if X is the point at infinity
	// 6. Verified if X.x == R

	// Step 1.
	if sig.r.Sign() <= 0 || sig.r.Cmp(secp256k1.N) >= 0 ||
		sig.s.Sign() <= 0 || sig.s.Cmp(secp256k1.N) >= 0 {

		return false
	}

	// Steps 2 and 3.
	w := invertModN(sig.s)
	u1 := new(big.Int).Mul(z, w)
	u1.Mod(u1, secp256k1.N)
	u2 := new(big.Int).Mul(sig.r, w)
	u2.Mod(u2, secp256k1.N)

	// Step 4.
	u2Q, err := secp256k1.ScalarMult(u2, pubKey.Point())
	if err != nil {
		return false
	}
	x, err := secp256k1.ScalarBaseMult(u1).Add(u2Q)
	if err != nil {
		return false
	}

	// Steps 5 and 6.
	if x.IsInfinity() {
		return false
	}
	return x.X().Value().Cmp(sig.r) == 0
}
