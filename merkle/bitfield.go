// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

// BytesToBitField expands the passed flag bytes into one entry per bit with
// the value 0 or 1.  Bits are taken least significant first within each
// byte, which is the order the merkleblock message packs them in.
func BytesToBitField(b []byte) []byte {
	bits := make([]byte, 0, len(b)*8)
	for _, v := range b {
		for i := 0; i < 8; i++ {
			bits = append(bits, v&0x01)
			v >>= 1
		}
	}
	return bits
}

// BitFieldToBytes packs the passed bits back into flag bytes, least
// significant bit first.  Any non-zero entry is a set bit.  The final byte is
// padded with zero bits.
func BitFieldToBytes(bits []byte) []byte {
	b := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit != 0 {
			b[i/8] |= 1 << (i % 8)
		}
	}
	return b
}
