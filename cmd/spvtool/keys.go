// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcspv/internal/log"
	"github.com/btcsuite/btcspv/secp256k1"
)

// knownNets are the networks a version byte is resolved against, in order of
// preference when networks share a version byte.
var knownNets = []*chaincfg.Params{
	&chaincfg.MainNetParams,
	&chaincfg.TestNet3Params,
	&chaincfg.RegressionNetParams,
	&chaincfg.SimNetParams,
}

// parseSecret parses a hex encoded secret into a private key.
func parseSecret(s string) (*secp256k1.PrivateKey, error) {
	secret, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex secret %q", s)
	}
	return secp256k1.NewPrivateKey(secret)
}

// parsePrivKey parses either a WIF string or a hex encoded secret.  A WIF
// string carries its own compression flag and must belong to the active
// network, while a hex secret uses the passed default.
func parsePrivKey(s string, compressed bool) (*secp256k1.PrivateKey, bool, error) {
	priv, wifCompressed, version, err := secp256k1.DecodeWIF(s)
	if err == nil {
		if version != activeNetParams.PrivateKeyID {
			str := "private key is for a different network than %s " +
				"(version %#02x)"
			return nil, false, fmt.Errorf(str, activeNetParams.Name,
				version)
		}
		return priv, wifCompressed, nil
	}

	priv, err = parseSecret(s)
	if err != nil {
		return nil, false, err
	}
	return priv, compressed, nil
}

// pubKeyCmd defines the configuration options for the pubkey command.
type pubKeyCmd struct {
	Uncompressed bool `short:"u" long:"uncompressed" description:"Use the uncompressed SEC encoding for hex secrets"`
}

var (
	// pubKeyCfg defines the configuration options for the command.
	pubKeyCfg = pubKeyCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *pubKeyCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 1 {
		return errors.New("required key parameter not specified")
	}

	// A SEC encoded public key is shown as is, anything else is a private
	// key.
	var (
		pub        *secp256k1.PublicKey
		compressed = !cmd.Uncompressed
	)
	if sec, err := hex.DecodeString(args[0]); err == nil &&
		(len(sec) == secp256k1.PubKeyBytesLenCompressed ||
			len(sec) == secp256k1.PubKeyBytesLenUncompressed) {

		pub, err = secp256k1.ParsePubKey(sec)
		if err != nil {
			return err
		}
		compressed = len(sec) == secp256k1.PubKeyBytesLenCompressed
	} else {
		priv, wantCompressed, err := parsePrivKey(args[0], compressed)
		if err != nil {
			return err
		}
		pub, compressed = priv.PubKey(), wantCompressed
	}

	log.SpvtLog.Debugf("Derived public key %v", pub)
	fmt.Fprintf(output, "x:       %064x\n", pub.X())
	fmt.Fprintf(output, "y:       %064x\n", pub.Y())
	fmt.Fprintf(output, "sec:     %x\n", pub.SEC(compressed))
	fmt.Fprintf(output, "hash160: %x\n", pub.Hash160(compressed))
	fmt.Fprintf(output, "address: %s\n", pub.Address(compressed,
		activeNetParams))
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *pubKeyCmd) Usage() string {
	return "<secret-hex | wif | sec-pubkey-hex>"
}

// wifCmd defines the configuration options for the wif command.
type wifCmd struct {
	Uncompressed bool `short:"u" long:"uncompressed" description:"Encode for the uncompressed public key"`
	Decode       bool `long:"decode" description:"Decode a WIF string instead of encoding a secret"`
}

var (
	// wifCfg defines the configuration options for the command.
	wifCfg = wifCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *wifCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 1 {
		return errors.New("required key parameter not specified")
	}

	if !cmd.Decode {
		priv, err := parseSecret(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(output, priv.WIF(!cmd.Uncompressed, activeNetParams))
		return nil
	}

	priv, compressed, version, err := secp256k1.DecodeWIF(args[0])
	if err != nil {
		return err
	}
	network := "unknown"
	for _, params := range knownNets {
		if params.PrivateKeyID == version {
			network = params.Name
			break
		}
	}
	fmt.Fprintf(output, "secret:     %s\n", priv.Hex())
	fmt.Fprintf(output, "compressed: %v\n", compressed)
	fmt.Fprintf(output, "network:    %s\n", network)
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *wifCmd) Usage() string {
	return "<secret-hex | wif>"
}

// addressCmd defines the configuration options for the address command.
type addressCmd struct {
	P2SH bool `long:"p2sh" description:"Encode the hash as a pay-to-script-hash address"`
}

var (
	// addressCfg defines the configuration options for the command.
	addressCfg = addressCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *addressCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 1 {
		return errors.New("required address or hash160 parameter not " +
			"specified")
	}

	// A 20-byte hex hash is encoded, anything else is decoded.
	if h160, err := hex.DecodeString(args[0]); err == nil && len(h160) == 20 {
		encode := secp256k1.H160ToP2PKHAddress
		if cmd.P2SH {
			encode = secp256k1.H160ToP2SHAddress
		}
		addr, err := encode(h160, activeNetParams)
		if err != nil {
			return err
		}
		fmt.Fprintln(output, addr)
		return nil
	}

	h160, version, err := secp256k1.DecodeAddress(args[0])
	if err != nil {
		return err
	}
	kind, network := "unknown", "unknown"
	for _, params := range knownNets {
		switch version {
		case params.PubKeyHashAddrID:
			kind, network = "p2pkh", params.Name
		case params.ScriptHashAddrID:
			kind, network = "p2sh", params.Name
		default:
			continue
		}
		break
	}
	fmt.Fprintf(output, "hash160: %x\n", h160)
	fmt.Fprintf(output, "type:    %s\n", kind)
	fmt.Fprintf(output, "network: %s\n", network)
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *addressCmd) Usage() string {
	return "<address | hash160-hex>"
}
