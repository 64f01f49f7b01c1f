// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcspv/internal/log"
	"github.com/btcsuite/btcspv/secp256k1"
	"github.com/btcsuite/btcspv/secp256k1/ecdsa"
)

// parseMessage returns the bytes of a message argument, decoding it from hex
// when requested.
func parseMessage(arg string, isHex bool) ([]byte, error) {
	if !isHex {
		return []byte(arg), nil
	}
	msg, err := hex.DecodeString(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid hex message: %w", err)
	}
	return msg, nil
}

// signCmd defines the configuration options for the sign command.
type signCmd struct {
	Key string `short:"k" long:"key" description:"Private key as a hex secret or WIF string" required:"true"`
	Hex bool   `long:"hex" description:"Treat the message as hex encoded bytes"`
}

var (
	// signCfg defines the configuration options for the command.
	signCfg = signCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *signCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 1 {
		return errors.New("required message parameter not specified")
	}
	msg, err := parseMessage(args[0], cmd.Hex)
	if err != nil {
		return err
	}
	priv, compressed, err := parsePrivKey(cmd.Key, true)
	if err != nil {
		return err
	}

	z := ecdsa.MessageHash(msg)
	sig, err := ecdsa.Sign(priv, z)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "z:      %064x\n", z)
	fmt.Fprintf(output, "pubkey: %x\n", priv.PubKey().SEC(compressed))
	fmt.Fprintf(output, "sig:    %x\n", sig.Serialize())
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *signCmd) Usage() string {
	return "--key=<secret-hex | wif> <message>"
}

// verifyCmd defines the configuration options for the verify command.
type verifyCmd struct {
	Hex bool `long:"hex" description:"Treat the message as hex encoded bytes"`
}

var (
	// verifyCfg defines the configuration options for the command.
	verifyCfg = verifyCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *verifyCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 3 {
		return errors.New("required pubkey, message and signature " +
			"parameters not specified")
	}
	sec, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("invalid hex public key: %w", err)
	}
	pub, err := secp256k1.ParsePubKey(sec)
	if err != nil {
		return err
	}
	msg, err := parseMessage(args[1], cmd.Hex)
	if err != nil {
		return err
	}
	z := ecdsa.MessageHash(msg)

	// Repeated signatures are only verified once.
	sigs := args[2:]
	cache := ecdsa.NewSigCache(uint(len(sigs)))
	var numInvalid int
	for _, arg := range sigs {
		der, err := hex.DecodeString(arg)
		if err != nil {
			return fmt.Errorf("invalid hex signature: %w", err)
		}
		sig, err := ecdsa.ParseDERSignature(der)
		if err != nil {
			return err
		}

		result := "valid"
		if !ecdsa.VerifyCached(z, sig, pub, cache) {
			result = "invalid"
			numInvalid++
		}
		fmt.Fprintf(output, "%s: %s\n", arg, result)
	}

	log.SpvtLog.Debugf("Verified %d %s", len(sigs),
		log.PickNoun(uint64(len(sigs)), "signature", "signatures"))
	if numInvalid > 0 {
		return fmt.Errorf("%d of %d %s failed to verify", numInvalid,
			len(sigs), log.PickNoun(uint64(len(sigs)), "signature",
				"signatures"))
	}
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *verifyCmd) Usage() string {
	return "<sec-pubkey-hex> <message> <der-sig-hex> [<der-sig-hex>...]"
}
