// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcspv/secp256k1"
)

// mustPrivKey returns the private key for the secret and panics on failure.
func mustPrivKey(secret *big.Int) *secp256k1.PrivateKey {
	priv, err := secp256k1.NewPrivateKey(secret)
	if err != nil {
		panic(err)
	}
	return priv
}

// TestSignVectors ensures signing produces the expected deterministic nonce
// and DER signature for known inputs.
func TestSignVectors(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		msg    []byte
		z      string
		nonce  string
		der    string
	}{{
		name:   "secret 12345",
		secret: "3039",
		msg:    []byte("Programming Bitcoin!"),
		z:      "969f6056aa26f7d2795fd013fe88868d09c9f6aed96965016e1936ae47060d48",
		nonce:  "abef7a40d9bd76aef7ee7e733404ecfcd8041550a68625d7cc0608b0025038b1",
		der: "30450221008eeacac05e4c29e793b5287ed044637132ce9ead7fded533e744" +
			"1d87a8dc9c23022036674f81f10c7fb347c1224bd546813ea24ada6f642c02" +
			"f2248516e3aa8cb303",
	}, {
		name:   "256-bit secret",
		secret: "0dba685b4511dbd3d368e5c4358a1277de9486447af7b3604a69b8d9d8b7889d",
		msg:    []byte("btcspv"),
		z:      "5e561641120da83493760187c8a0cd61f30fc9d754321065655fbdbe341e3e33",
		nonce:  "73b836b28ffb3d8a6a24179c39d7dba3eac3c3887b6b1a92d6aae92d68110168",
		der: "3045022100802a210b2f3ae895df346b13e19c27c21b9660a0083297e38461" +
			"329b678014a4022046816e5502ad27c443cb86c3483e5268bb63fc17e1b576" +
			"33b1470eb77199dab1",
	}, {
		name:   "secret 1 empty message",
		secret: "01",
		msg:    nil,
		z:      "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456",
		nonce:  "f3211b394141e33e1d4146977247e0aefd0081362c1b0555857571d6f60a8377",
		der: "30450221009dae8142aaad47b57b59f48fffed11e88db3a6995d2edbcda995" +
			"a3e80125a8ad022008b7fead2a08cc92cbdd2b8be0ba0341607c997169410f" +
			"d902979f11498cf096",
	}}

	for _, test := range tests {
		priv := mustPrivKey(hexToBigInt(test.secret))

		z := MessageHash(test.msg)
		if want := hexToBigInt(test.z); z.Cmp(want) != 0 {
			t.Errorf("%s: message hash mismatch -- got %x, want %x",
				test.name, z, want)
			continue
		}

		nonce, err := NonceRFC6979(priv, z)
		if err != nil {
			t.Errorf("%s: unexpected nonce error: %v", test.name, err)
			continue
		}
		if want := hexToBigInt(test.nonce); nonce.Cmp(want) != 0 {
			t.Errorf("%s: nonce mismatch -- got %x, want %x", test.name,
				nonce, want)
			continue
		}

		sig, err := Sign(priv, z)
		if err != nil {
			t.Errorf("%s: unexpected sign error: %v", test.name, err)
			continue
		}
		if got, want := sig.Serialize(), hexToBytes(test.der); !bytes.Equal(got, want) {
			t.Errorf("%s: signature mismatch -- got %x, want %x", test.name,
				got, want)
			continue
		}
		if !sig.Verify(z, priv.PubKey()) {
			t.Errorf("%s: signature does not verify", test.name)
		}
	}
}

// TestVerifyVectors checks verification against published signatures.
func TestVerifyVectors(t *testing.T) {
	x := hexToBigInt("887387e452b8eacc4acfde10d9aaf7f6d9a0f975aabb10d006e4da568744d06c")
	y := hexToBigInt("61de6d95231cd89026e286df3b6ae4a894a3378e393e93a0f45b666329a0ae34")
	point, err := secp256k1.NewPoint(x, y)
	if err != nil {
		t.Fatalf("NewPoint: unexpected error: %v", err)
	}
	pub, err := secp256k1.NewPublicKey(point)
	if err != nil {
		t.Fatalf("NewPublicKey: unexpected error: %v", err)
	}

	tests := []struct {
		z, r, s string
	}{{
		z: "ec208baa0fc1c19f708a9ca96fdeff3ac3f230bb4a7ba4aede4942ad003c0f60",
		r: "ac8d1c87e51d0d441be8b3dd5b05c8795b48875dffe00b7ffcfac23010d3a395",
		s: "68342ceff8935ededd102dd876ffd6ba72d6a427a3edb13d26eb0781cb423c4",
	}, {
		z: "7c076ff316692a3d7eb3c3bb0f8b1488cf72e1afcd929e29307032997a838a3d",
		r: "eff69ef2b1bd93a66ed5219add4fb51e11a840f404876325a1e8ffe0529a2c",
		s: "c7207fee197d27c618aea621406f6bf5ef6fca38681d82b2f06fddbdce6feab6",
	}}

	one := big.NewInt(1)
	for i, test := range tests {
		z, r, s := hexToBigInt(test.z), hexToBigInt(test.r), hexToBigInt(test.s)
		if !NewSignature(r, s).Verify(z, pub) {
			t.Errorf("#%d: valid signature rejected", i)
		}

		// Altering any component by one must break the signature.
		tampered := []*Signature{
			NewSignature(new(big.Int).Add(r, one), s),
			NewSignature(new(big.Int).Sub(r, one), s),
			NewSignature(r, new(big.Int).Add(s, one)),
			NewSignature(r, new(big.Int).Sub(s, one)),
		}
		for j, sig := range tampered {
			if sig.Verify(z, pub) {
				t.Errorf("#%d: tampered signature %d accepted", i, j)
			}
		}
		if NewSignature(r, s).Verify(new(big.Int).Add(z, one), pub) {
			t.Errorf("#%d: signature accepted for a different hash", i)
		}
	}
}

// TestVerifyRange ensures signatures with components outside of [1, N-1]
// are rejected.
func TestVerifyRange(t *testing.T) {
	priv := mustPrivKey(big.NewInt(12345))
	z := MessageHash([]byte("range"))
	sig, err := Sign(priv, z)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		sig  *Signature
	}{
		{"r zero", NewSignature(big.NewInt(0), sig.s)},
		{"s zero", NewSignature(sig.r, big.NewInt(0))},
		{"r is N", NewSignature(secp256k1.N, sig.s)},
		{"s is N", NewSignature(sig.r, secp256k1.N)},
		{"s plus N", NewSignature(sig.r, new(big.Int).Add(sig.s, secp256k1.N))},
		{"negative s", NewSignature(sig.r, new(big.Int).Neg(sig.s))},
	}

	for _, test := range tests {
		if test.sig.Verify(z, priv.PubKey()) {
			t.Errorf("%s: signature accepted", test.name)
		}
	}
}

// TestSignLowS ensures every produced signature has S at most half the
// group order and verifies.
func TestSignLowS(t *testing.T) {
	for i := int64(1); i <= 16; i++ {
		priv := mustPrivKey(big.NewInt(i * 7919))
		z := MessageHash([]byte{byte(i)})
		sig, err := Sign(priv, z)
		if err != nil {
			t.Fatalf("#%d: unexpected error: %v", i, err)
		}
		if sig.S().Cmp(secp256k1.HalfOrder) > 0 {
			t.Errorf("#%d: s %x exceeds half order", i, sig.S())
		}
		if !sig.Verify(z, priv.PubKey()) {
			t.Errorf("#%d: signature does not verify", i)
		}
	}
}

// TestSignHashRange ensures hashes that don't fit in 256 bits are rejected.
func TestSignHashRange(t *testing.T) {
	priv := mustPrivKey(big.NewInt(42))

	tests := []*big.Int{
		big.NewInt(-1),
		new(big.Int).Lsh(big.NewInt(1), 256),
	}
	for _, z := range tests {
		if _, err := Sign(priv, z); !errors.Is(err, ErrHashOutOfRange) {
			t.Errorf("z=%x: got %v, want %v", z, err, ErrHashOutOfRange)
		}
	}

	// A hash above the group order is still signed.
	z := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	sig, err := Sign(priv, z)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sig.Verify(z, priv.PubKey()) {
		t.Errorf("signature of z > N does not verify")
	}

	// Verification rejects the same out of range hashes.
	for _, bad := range tests {
		if sig.Verify(bad, priv.PubKey()) {
			t.Errorf("z=%x: out of range hash verified", bad)
		}
	}
	if sig.Verify(new(big.Int).Neg(z), priv.PubKey()) {
		t.Errorf("signature verified for the negated hash")
	}
}

// TestSignAgainstBtcec cross-checks produced signatures and verification with
// btcec.
func TestSignAgainstBtcec(t *testing.T) {
	for i := 0; i < 8; i++ {
		priv, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			t.Fatalf("GeneratePrivateKey: unexpected error: %v", err)
		}
		msg := []byte{byte(i), 'b', 't', 'c'}
		z := MessageHash(msg)

		// btcec signs the raw 32-byte digest, which is only the same
		// nonce input while z is below the group order.
		if z.Cmp(secp256k1.N) >= 0 {
			continue
		}
		var hash [32]byte
		z.FillBytes(hash[:])

		sig, err := Sign(priv, z)
		if err != nil {
			t.Fatalf("#%d: unexpected error: %v", i, err)
		}

		theirPriv, theirPub := btcec.PrivKeyFromBytes(priv.Serialize())
		theirSig := btcecdsa.Sign(theirPriv, hash[:])
		if got, want := sig.Serialize(), theirSig.Serialize(); !bytes.Equal(got, want) {
			t.Errorf("#%d: signature mismatch -- got %x, want %x", i, got, want)
			continue
		}

		// Each side verifies the other's signature.
		parsed, err := btcecdsa.ParseDERSignature(sig.Serialize())
		if err != nil {
			t.Errorf("#%d: btcec parse error: %v", i, err)
			continue
		}
		if !parsed.Verify(hash[:], theirPub) {
			t.Errorf("#%d: btcec rejected our signature", i)
		}
		ours, err := ParseDERSignature(theirSig.Serialize())
		if err != nil {
			t.Errorf("#%d: parse error: %v", i, err)
			continue
		}
		if !ours.Verify(z, priv.PubKey()) {
			t.Errorf("#%d: btcec signature rejected", i)
		}
	}
}
