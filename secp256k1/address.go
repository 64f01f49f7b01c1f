// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
)

// Hash160Size is the number of bytes of a hash160 digest.
const Hash160Size = 20

func checkHash160(h160 []byte) error {
	if len(h160) != Hash160Size {
		str := fmt.Sprintf("hash must be %d bytes, got %d", Hash160Size,
			len(h160))
		return makeError(ErrAddressInvalidLen, str)
	}
	return nil
}

// H160ToP2PKHAddress returns the pay-to-pubkey-hash address for the provided
// 20-byte hash on the provided network.
func H160ToP2PKHAddress(h160 []byte, net *chaincfg.Params) (string, error) {
	if err := checkHash160(h160); err != nil {
		return "", err
	}
	return base58.CheckEncode(h160, net.PubKeyHashAddrID), nil
}

// H160ToP2SHAddress returns the pay-to-script-hash address for the provided
// 20-byte script hash on the provided network.
func H160ToP2SHAddress(h160 []byte, net *chaincfg.Params) (string, error) {
	if err := checkHash160(h160); err != nil {
		return "", err
	}
	addr, err := btcutil.NewAddressScriptHashFromHash(h160, net)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// DecodeAddress decodes a base58check encoded pay-to-pubkey-hash or
// pay-to-script-hash address into its 20-byte hash and version byte.  The
// version byte identifies both the network and the kind of address.
func DecodeAddress(addr string) ([]byte, byte, error) {
	h160, version, err := base58.CheckDecode(addr)
	if err != nil {
		str := fmt.Sprintf("malformed address %q: %v", addr, err)
		return nil, 0, makeError(ErrAddressInvalidEncoding, str)
	}
	if err := checkHash160(h160); err != nil {
		return nil, 0, err
	}
	return h160, version, nil
}
