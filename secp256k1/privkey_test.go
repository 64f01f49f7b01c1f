// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
)

// TestWIF checks wallet import format encoding against known values and
// cross-checks decoding with btcutil.
func TestWIF(t *testing.T) {
	twoTo256 := new(big.Int).Lsh(big.NewInt(1), 256)

	tests := []struct {
		name       string
		secret     *big.Int
		compressed bool
		net        *chaincfg.Params
		wif        string
	}{{
		name:       "2^256-2^199 compressed mainnet",
		secret:     new(big.Int).Sub(twoTo256, new(big.Int).Lsh(big.NewInt(1), 199)),
		compressed: true,
		net:        &chaincfg.MainNetParams,
		wif:        "L5oLkpV3aqBJ4BgssVAsax1iRa77G5CVYnv9adQ6Z87te7TyUdSC",
	}, {
		name:       "2^256-2^201 uncompressed testnet",
		secret:     new(big.Int).Sub(twoTo256, new(big.Int).Lsh(big.NewInt(1), 201)),
		compressed: false,
		net:        &chaincfg.TestNet3Params,
		wif:        "93XfLeifX7Jx7n7ELGMAf1SUR6f9kgQs8Xke8WStMwUtrDucMzn",
	}, {
		name:       "uncompressed mainnet",
		secret:     fromHex("0dba685b4511dbd3d368e5c4358a1277de9486447af7b3604a69b8d9d8b7889d"),
		compressed: false,
		net:        &chaincfg.MainNetParams,
		wif:        "5HvLFPDVgFZRK9cd4C5jcWki5Skz6fmKqi1GQJf5ZoMofid2Dty",
	}, {
		name:       "compressed testnet",
		secret:     fromHex("1cca23de92fd1862fb5b76e5f4f50eb082165e5191e116c18ed1a6b24be6a53f"),
		compressed: true,
		net:        &chaincfg.TestNet3Params,
		wif:        "cNYfWuhDpbNM1JWc3c6JTrtrFVxU4AGhUKgw5f93NP2QaBqmxKkg",
	}}

	for _, test := range tests {
		priv, err := NewPrivateKey(test.secret)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if got := priv.WIF(test.compressed, test.net); got != test.wif {
			t.Errorf("%s: got %s, want %s", test.name, got, test.wif)
			continue
		}

		decoded, compressed, version, err := DecodeWIF(test.wif)
		if err != nil {
			t.Errorf("%s: unexpected decode error: %v", test.name, err)
			continue
		}
		if decoded.Secret().Cmp(test.secret) != 0 {
			t.Errorf("%s: decoded secret %x, want %x", test.name,
				decoded.Secret(), test.secret)
		}
		if compressed != test.compressed {
			t.Errorf("%s: decoded compressed %v, want %v", test.name,
				compressed, test.compressed)
		}
		if version != test.net.PrivateKeyID {
			t.Errorf("%s: decoded version %#x, want %#x", test.name, version,
				test.net.PrivateKeyID)
		}

		oracle, err := btcutil.DecodeWIF(test.wif)
		if err != nil {
			t.Errorf("%s: btcutil decode error: %v", test.name, err)
			continue
		}
		if oracle.CompressPubKey != test.compressed {
			t.Errorf("%s: btcutil compressed %v, want %v", test.name,
				oracle.CompressPubKey, test.compressed)
		}
		if !oracle.IsForNet(test.net) {
			t.Errorf("%s: btcutil reports wrong network", test.name)
		}
	}
}

// TestDecodeWIFErrors ensures malformed wallet import format strings are
// rejected with the expected error kind.
func TestDecodeWIFErrors(t *testing.T) {
	priv, err := NewPrivateKey(big.NewInt(12345))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payload := priv.Serialize()

	tests := []struct {
		name string
		wif  string
		err  error
	}{{
		name: "bad checksum",
		wif:  "5HvLFPDVgFZRK9cd4C5jcWki5Skz6fmKqi1GQJf5ZoMofid2Dtz",
		err:  ErrWIFInvalidEncoding,
	}, {
		name: "not base58",
		wif:  "0OIl",
		err:  ErrWIFInvalidEncoding,
	}, {
		name: "short payload",
		wif:  base58.CheckEncode(payload[:31], 0x80),
		err:  ErrWIFInvalidLen,
	}, {
		name: "long payload",
		wif:  base58.CheckEncode(append(append([]byte(nil), payload...), 1, 1), 0x80),
		err:  ErrWIFInvalidLen,
	}, {
		name: "bad compression flag",
		wif:  base58.CheckEncode(append(append([]byte(nil), payload...), 2), 0x80),
		err:  ErrWIFInvalidCompressFlag,
	}, {
		name: "zero secret",
		wif:  base58.CheckEncode(make([]byte, 32), 0x80),
		err:  ErrPrivKeyOutOfRange,
	}}

	for _, test := range tests {
		_, _, _, err := DecodeWIF(test.wif)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.err)
		}
	}
}

// TestPrivateKeyRange ensures secrets that are zero modulo the group order
// or wider than 32 bytes are rejected.
func TestPrivateKeyRange(t *testing.T) {
	tests := []struct {
		name   string
		secret *big.Int
		err    error
	}{
		{"zero", big.NewInt(0), ErrPrivKeyOutOfRange},
		{"negative", big.NewInt(-1), ErrPrivKeyOutOfRange},
		{"order", new(big.Int).Set(N), ErrPrivKeyOutOfRange},
		{"2^256", new(big.Int).Lsh(big.NewInt(1), 256), ErrPrivKeyOutOfRange},
		{"one", big.NewInt(1), nil},
		{"order minus one", new(big.Int).Sub(N, big.NewInt(1)), nil},
		{"order plus one", new(big.Int).Add(N, big.NewInt(1)), nil},
	}

	for _, test := range tests {
		_, err := NewPrivateKey(test.secret)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.err)
		}
	}

	if _, err := PrivKeyFromBytes(make([]byte, 33)); !errors.Is(err, ErrPrivKeyOutOfRange) {
		t.Errorf("33 bytes: got %v, want %v", err, ErrPrivKeyOutOfRange)
	}
}

// TestPrivateKeyAgainstBtcec ensures generated keys derive the same public
// key as btcec.
func TestPrivateKeyAgainstBtcec(t *testing.T) {
	for i := 0; i < 8; i++ {
		priv, err := GeneratePrivateKey()
		if err != nil {
			t.Fatalf("GeneratePrivateKey: unexpected error: %v", err)
		}
		if priv.Secret().Sign() <= 0 || priv.Secret().Cmp(N) >= 0 {
			t.Fatalf("generated secret %x out of range", priv.Secret())
		}

		serialized := priv.Serialize()
		if len(serialized) != PrivKeyBytesLen {
			t.Fatalf("serialized length %d, want %d", len(serialized),
				PrivKeyBytesLen)
		}
		if got, want := priv.Hex(), priv.Secret().Text(16); len(got) != 64 ||
			new(big.Int).SetBytes(hexToBytes(got)).Text(16) != want {
			t.Fatalf("Hex: got %s, want %s", got, want)
		}

		_, pub := btcec.PrivKeyFromBytes(serialized)
		if got, want := priv.PubKey().SerializeCompressed(), pub.SerializeCompressed(); !bytes.Equal(got, want) {
			t.Errorf("pubkey mismatch -- got %x, want %x", got, want)
		}

		// Round trip through the raw serialization.
		again, err := PrivKeyFromBytes(serialized)
		if err != nil {
			t.Fatalf("PrivKeyFromBytes: unexpected error: %v", err)
		}
		if !again.PubKey().IsEqual(priv.PubKey()) {
			t.Errorf("round trip mismatch")
		}
	}
}
