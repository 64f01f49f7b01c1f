// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcspv/ecc"
)

// These constants define the lengths of serialized public keys.
const (
	// PubKeyBytesLenCompressed is the number of bytes of a serialized
	// compressed public key.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the number of bytes of a serialized
	// uncompressed public key.
	PubKeyBytesLenUncompressed = 65
)

const (
	pubkeyCompressed   byte = 0x2 // y_bit + x coord
	pubkeyUncompressed byte = 0x4 // x coord + y coord
)

// PublicKey is a point on secp256k1 other than the point at infinity.
type PublicKey struct {
	point *ecc.Point
}

// NewPublicKey returns the public key for the provided point.  The point
// must be on secp256k1 and must not be the point at infinity.
func NewPublicKey(point *ecc.Point) (*PublicKey, error) {
	if !point.Curve().Equals(S256()) || point.IsInfinity() {
		str := fmt.Sprintf("point %v is not a valid secp256k1 public key",
			point)
		return nil, makeError(ErrPubKeyNotOnCurve, str)
	}
	return &PublicKey{point: point}, nil
}

// Point returns the curve point of the public key.
func (p *PublicKey) Point() *ecc.Point {
	return p.point
}

// X returns a copy of the x coordinate of the public key.
func (p *PublicKey) X() *big.Int {
	return p.point.X().Value()
}

// Y returns a copy of the y coordinate of the public key.
func (p *PublicKey) Y() *big.Int {
	return p.point.Y().Value()
}

// IsEqual compares this public key instance to the one passed, returning
// true if both public keys are equivalent.
func (p *PublicKey) IsEqual(other *PublicKey) bool {
	return p.point.Equals(other.point)
}

// SerializeUncompressed serializes a public key in the 65-byte uncompressed
// format.
func (p *PublicKey) SerializeUncompressed() []byte {
	// 0x04 || 32-byte x coordinate || 32-byte y coordinate
	var b [PubKeyBytesLenUncompressed]byte
	b[0] = pubkeyUncompressed
	p.X().FillBytes(b[1:33])
	p.Y().FillBytes(b[33:65])
	return b[:]
}

// SerializeCompressed serializes a public key in the 33-byte compressed
// format.
func (p *PublicKey) SerializeCompressed() []byte {
	// Choose the format byte depending on the oddness of the Y coordinate.
	format := pubkeyCompressed
	if p.point.Y().IsOdd() {
		format |= 0x1
	}

	// 0x02 or 0x03 || 32-byte x coordinate
	var b [PubKeyBytesLenCompressed]byte
	b[0] = format
	p.X().FillBytes(b[1:33])
	return b[:]
}

// SEC returns the SEC serialization of the public key in the requested
// format.
func (p *PublicKey) SEC(compressed bool) []byte {
	if compressed {
		return p.SerializeCompressed()
	}
	return p.SerializeUncompressed()
}

// Hash160 returns ripemd160(sha256(sec)) of the public key serialized in the
// requested format.
func (p *PublicKey) Hash160(compressed bool) []byte {
	return btcutil.Hash160(p.SEC(compressed))
}

// Address returns the base58check encoded pay-to-pubkey-hash address of the
// public key for the provided network.
func (p *PublicKey) Address(compressed bool, net *chaincfg.Params) string {
	// The hash is always 20 bytes so encoding can't fail.
	addr, _ := H160ToP2PKHAddress(p.Hash160(compressed), net)
	return addr
}

// String returns the hex encoded compressed serialization of the key.
func (p *PublicKey) String() string {
	return fmt.Sprintf("%x", p.SerializeCompressed())
}

// ParsePubKey parses a secp256k1 public key encoded in either the compressed
// or uncompressed SEC format, verifying that the point is on the curve.
//
// The compressed form is recovered from x by computing y = sqrt(x^3 + 7) and
// choosing the root whose parity matches the format byte.
func ParsePubKey(serialized []byte) (*PublicKey, error) {
	if len(serialized) == 0 {
		return nil, makeError(ErrPubKeyInvalidLen, "malformed public key: "+
			"no bytes")
	}

	var x, y *big.Int
	switch format := serialized[0]; format {
	case pubkeyUncompressed:
		if len(serialized) != PubKeyBytesLenUncompressed {
			str := fmt.Sprintf("malformed public key: invalid length: %d",
				len(serialized))
			return nil, makeError(ErrPubKeyInvalidLen, str)
		}

		x = new(big.Int).SetBytes(serialized[1:33])
		y = new(big.Int).SetBytes(serialized[33:65])
		if x.Cmp(P) >= 0 {
			str := "invalid public key: x >= field prime"
			return nil, makeError(ErrPubKeyXTooBig, str)
		}
		if y.Cmp(P) >= 0 {
			str := "invalid public key: y >= field prime"
			return nil, makeError(ErrPubKeyYTooBig, str)
		}

	case pubkeyCompressed, pubkeyCompressed | 0x1:
		if len(serialized) != PubKeyBytesLenCompressed {
			str := fmt.Sprintf("malformed public key: invalid length: %d",
				len(serialized))
			return nil, makeError(ErrPubKeyInvalidLen, str)
		}

		x = new(big.Int).SetBytes(serialized[1:33])
		if x.Cmp(P) >= 0 {
			str := "invalid public key: x >= field prime"
			return nil, makeError(ErrPubKeyXTooBig, str)
		}

		// alpha = x^3 + 7, beta = sqrt(alpha).
		fx, err := NewFieldVal(x)
		if err != nil {
			return nil, err
		}
		alpha := fx.Pow(big.NewInt(3))
		alpha, err = alpha.Add(B)
		if err != nil {
			return nil, err
		}
		beta := Sqrt(alpha)
		if !beta.Square().Equals(alpha) {
			str := fmt.Sprintf("invalid public key: x coordinate %x is not "+
				"on the secp256k1 curve", serialized[1:33])
			return nil, makeError(ErrPubKeyNotOnCurve, str)
		}
		wantOdd := format&0x1 == 0x1
		if beta.IsOdd() != wantOdd {
			beta = beta.Neg()
		}
		y = beta.Value()

	default:
		str := fmt.Sprintf("invalid public key: unsupported format: %x",
			format)
		return nil, makeError(ErrPubKeyInvalidFormat, str)
	}

	point, err := NewPoint(x, y)
	if err != nil {
		str := fmt.Sprintf("invalid public key: (%x, %x) is not on the "+
			"secp256k1 curve", x, y)
		return nil, makeError(ErrPubKeyNotOnCurve, str)
	}
	return &PublicKey{point: point}, nil
}
