// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
)

const (
	// PrivKeyBytesLen defines the length in bytes of a serialized private
	// key.
	PrivKeyBytesLen = 32

	// compressMagic is the magic byte appended to a wallet import format
	// payload when the public key is to be serialized compressed.
	compressMagic byte = 0x01
)

// PrivateKey holds a secp256k1 secret together with its public key, which is
// computed once when the key is created.
type PrivateKey struct {
	secret *big.Int
	pub    *PublicKey
}

// NewPrivateKey returns the private key for the provided secret.  The secret
// must fit in 32 bytes and must not be a multiple of the group order,
// otherwise an error of kind ErrPrivKeyOutOfRange is returned.  The public
// key is (secret mod N)*G.
func NewPrivateKey(secret *big.Int) (*PrivateKey, error) {
	if secret.Sign() <= 0 || secret.BitLen() > PrivKeyBytesLen*8 {
		str := fmt.Sprintf("private key secret %x is out of range", secret)
		return nil, makeError(ErrPrivKeyOutOfRange, str)
	}
	if new(big.Int).Mod(secret, N).Sign() == 0 {
		str := "private key secret is a multiple of the group order"
		return nil, makeError(ErrPrivKeyOutOfRange, str)
	}

	pub, err := NewPublicKey(ScalarBaseMult(secret))
	if err != nil {
		return nil, err
	}
	return &PrivateKey{secret: new(big.Int).Set(secret), pub: pub}, nil
}

// PrivKeyFromBytes returns the private key for the big-endian secret in pk.
func PrivKeyFromBytes(pk []byte) (*PrivateKey, error) {
	if len(pk) > PrivKeyBytesLen {
		str := fmt.Sprintf("malformed private key: invalid length: %d",
			len(pk))
		return nil, makeError(ErrPrivKeyOutOfRange, str)
	}
	return NewPrivateKey(new(big.Int).SetBytes(pk))
}

// GeneratePrivateKey returns a private key with a secret chosen uniformly at
// random from [1, N-1] using crypto/rand.
func GeneratePrivateKey() (*PrivateKey, error) {
	limit := new(big.Int).Sub(N, big.NewInt(1))
	secret, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return nil, err
	}
	return NewPrivateKey(secret.Add(secret, big.NewInt(1)))
}

// Secret returns a copy of the secret of the private key.
func (p *PrivateKey) Secret() *big.Int {
	return new(big.Int).Set(p.secret)
}

// PubKey returns the PublicKey corresponding to this private key.
func (p *PrivateKey) PubKey() *PublicKey {
	return p.pub
}

// Serialize returns the private key as a 32-byte big-endian binary-encoded
// number, padded to a length of 32 bytes.
func (p *PrivateKey) Serialize() []byte {
	var b [PrivKeyBytesLen]byte
	p.secret.FillBytes(b[:])
	return b[:]
}

// Hex returns the secret as 64 hex digits.
func (p *PrivateKey) Hex() string {
	return fmt.Sprintf("%064x", p.secret)
}

// WIF returns the wallet import format encoding of the private key for the
// provided network.  A compressed key carries a trailing 0x01 byte so that
// importers derive the compressed public key.
func (p *PrivateKey) WIF(compressed bool, net *chaincfg.Params) string {
	// version byte || 32-byte secret || [0x01]
	payload := p.Serialize()
	if compressed {
		payload = append(payload, compressMagic)
	}
	return base58.CheckEncode(payload, net.PrivateKeyID)
}

// DecodeWIF decodes a wallet import format string.  It returns the private
// key, whether the public key is to be serialized compressed, and the
// version byte that identifies the network.
func DecodeWIF(wif string) (*PrivateKey, bool, byte, error) {
	payload, version, err := base58.CheckDecode(wif)
	if err != nil {
		str := fmt.Sprintf("malformed private key: %v", err)
		return nil, false, 0, makeError(ErrWIFInvalidEncoding, str)
	}

	var compressed bool
	switch len(payload) {
	case PrivKeyBytesLen:
	case PrivKeyBytesLen + 1:
		if payload[PrivKeyBytesLen] != compressMagic {
			str := fmt.Sprintf("malformed private key: bad compression "+
				"flag %#x", payload[PrivKeyBytesLen])
			return nil, false, 0, makeError(ErrWIFInvalidCompressFlag, str)
		}
		compressed = true
	default:
		str := fmt.Sprintf("malformed private key: invalid payload length %d",
			len(payload))
		return nil, false, 0, makeError(ErrWIFInvalidLen, str)
	}

	priv, err := PrivKeyFromBytes(payload[:PrivKeyBytesLen])
	if err != nil {
		return nil, false, 0, err
	}
	return priv, compressed, version, nil
}
