// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"
)

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.  It will only (and must only) be
// called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// hexToBigInt converts the passed hex string into a big integer and will
// panic if there is an error.  It will only (and must only) be called with
// hard-coded values.
func hexToBigInt(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

// TestSignatureSerialize ensures that serializing signatures works as
// expected across short, long and high-bit values.
func TestSignatureSerialize(t *testing.T) {
	tests := []struct {
		name     string
		r, s     string
		expected []byte
	}{{
		name: "valid 1 - r and s most significant bits are zero",
		r:    "4e45e16932b8af514961a1d3a1a25fdf3f4f7732e9d624c6c61548ab5fb8cd41",
		s:    "181522ec8eca07de4860a4acdd12909d831cc56cbbac4622082221a8768d1d09",
		expected: hexToBytes("304402204e45e16932b8af514961a1d3a1a25fdf3f4f" +
			"7732e9d624c6c61548ab5fb8cd410220181522ec8eca07de4860a4acdd1290" +
			"9d831cc56cbbac4622082221a8768d1d09"),
	}, {
		name: "valid 2 - r most significant bit is one",
		r:    "82235e21a2300022738dabb8e1bbd9d19cfb1e7ab8c30a23b0afbb8d178abcf3",
		s:    "24bf68e256c534ddfaf966bf908deb944305596f7bdcc38d69acad7f9c868724",
		expected: hexToBytes("304502210082235e21a2300022738dabb8e1bbd9d19cfb" +
			"1e7ab8c30a23b0afbb8d178abcf3022024bf68e256c534ddfaf966bf908deb" +
			"944305596f7bdcc38d69acad7f9c868724"),
	}, {
		name: "valid 3 - s most significant bit is one",
		r:    "1cadddc2838598fee7dc35a12b340c6bde8b389f7bfd19a1252a17c4b5ed2d71",
		s:    "c1a251bbecb14b058a8bd77f65de87e51c47e95904f4c0e9d52eddc21c1415ac",
		expected: hexToBytes("304502201cadddc2838598fee7dc35a12b340c6bde8b38" +
			"9f7bfd19a1252a17c4b5ed2d71022100c1a251bbecb14b058a8bd77f65de87" +
			"e51c47e95904f4c0e9d52eddc21c1415ac"),
	}, {
		name:     "short values",
		r:        "01",
		s:        "7f",
		expected: hexToBytes("300602010102017f"),
	}, {
		name:     "short high-bit value",
		r:        "80",
		s:        "0100",
		expected: hexToBytes("3008020200800202" + "0100"),
	}, {
		name: "maximum 256-bit values",
		r:    "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		s:    "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		expected: hexToBytes("3046022100" +
			"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff" +
			"022100" +
			"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	}, {
		name:     "zero values",
		r:        "0",
		s:        "0",
		expected: hexToBytes("3006020100020100"),
	}}

	for _, test := range tests {
		sig := NewSignature(hexToBigInt(test.r), hexToBigInt(test.s))
		result := sig.Serialize()
		if !bytes.Equal(result, test.expected) {
			t.Errorf("%s: mismatched result -- got %x, want %x", test.name,
				result, test.expected)
			continue
		}

		// Every serialized signature parses back to the same values.
		parsed, err := ParseDERSignature(result)
		if err != nil {
			t.Errorf("%s: unexpected parse error: %v", test.name, err)
			continue
		}
		if !parsed.IsEqual(sig) {
			t.Errorf("%s: parsed signature mismatch -- got %v, want %v",
				test.name, parsed, sig)
		}
	}
}

// TestParseDERSignatureErrors ensures structurally invalid signatures are
// rejected with the expected error kind.
func TestParseDERSignatureErrors(t *testing.T) {
	valid := hexToBytes("304402204e45e16932b8af514961a1d3a1a25fdf3f4f7732e9d6" +
		"24c6c61548ab5fb8cd410220181522ec8eca07de4860a4acdd12909d831cc56cbb" +
		"ac4622082221a8768d1d09")

	// modify returns a copy of the valid signature with the byte at offset
	// replaced.
	modify := func(offset int, b byte) []byte {
		sig := append([]byte(nil), valid...)
		sig[offset] = b
		return sig
	}

	tests := []struct {
		name string
		sig  []byte
		err  ErrorKind
	}{{
		name: "empty",
		sig:  nil,
		err:  ErrSigTooShort,
	}, {
		name: "five bytes",
		sig:  hexToBytes("3003020100"),
		err:  ErrSigTooShort,
	}, {
		name: "bad sequence id",
		sig:  modify(0, 0x31),
		err:  ErrSigInvalidSeqID,
	}, {
		name: "declared length too short",
		sig:  modify(1, 0x43),
		err:  ErrSigInvalidDataLen,
	}, {
		name: "declared length too long",
		sig:  modify(1, 0x45),
		err:  ErrSigInvalidDataLen,
	}, {
		name: "trailing byte changes declared length",
		sig:  append(append([]byte(nil), valid...), 0x00),
		err:  ErrSigInvalidDataLen,
	}, {
		name: "bad R integer id",
		sig:  modify(2, 0x03),
		err:  ErrSigInvalidRIntID,
	}, {
		name: "R length overruns signature",
		sig:  modify(3, 0x44),
		err:  ErrSigInvalidRLen,
	}, {
		name: "bad S integer id",
		sig:  modify(36, 0x03),
		err:  ErrSigInvalidSIntID,
	}, {
		name: "S length overruns signature",
		sig:  modify(37, 0x21),
		err:  ErrSigInvalidSLen,
	}, {
		name: "trailing bytes after S",
		sig:  hexToBytes("3007020101020101" + "00"),
		err:  ErrSigTooLong,
	}, {
		name: "R length shifts S marker",
		sig:  modify(3, 0x1f),
		err:  ErrSigInvalidSIntID,
	}}

	for _, test := range tests {
		_, err := ParseDERSignature(test.sig)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
		if !errors.Is(err, ErrMalformedSignature) {
			t.Errorf("%s: error %v does not match %v", test.name, err,
				ErrMalformedSignature)
		}
	}
}
