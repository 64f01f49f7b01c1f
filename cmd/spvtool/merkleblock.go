// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcspv/internal/log"
	"github.com/btcsuite/btcspv/merkle"
	"github.com/btcsuite/btcspv/proofdb"
)

// merkleBlockCmd defines the configuration options for the merkleblock
// command.
type merkleBlockCmd struct {
	File  string `short:"f" long:"file" description:"Read the raw merkleblock payload from a file instead of a hex argument"`
	Store bool   `long:"store" description:"Save the verified proof to the proof database"`
}

var (
	// merkleBlockCfg defines the configuration options for the command.
	merkleBlockCfg = merkleBlockCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *merkleBlockCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	var payload []byte
	switch {
	case cmd.File != "":
		b, err := os.ReadFile(cmd.File)
		if err != nil {
			return err
		}
		payload = b

	case len(args) > 0:
		b, err := hex.DecodeString(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("invalid hex payload: %w", err)
		}
		payload = b

	default:
		return errors.New("required merkleblock payload not specified")
	}

	msg, err := merkle.DecodeMerkleBlock(bytes.NewReader(payload))
	if err != nil {
		return err
	}
	proof, err := merkle.VerifyMerkleBlock(msg)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "block:        %v\n", proof.BlockHash)
	fmt.Fprintf(output, "merkle root:  %v\n", proof.MerkleRoot)
	fmt.Fprintf(output, "transactions: %d\n", proof.NumTransactions)
	writeMatched(proof.Matched)

	if !cmd.Store {
		return nil
	}

	store, err := loadProofStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Put(proofdb.RecordFromProof(proof)); err != nil {
		return err
	}
	log.SpvtLog.Infof("Stored proof for block %v", proof.BlockHash)
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *merkleBlockCmd) Usage() string {
	return "[--store] <payload-hex> | --file=<path>"
}

// writeMatched writes the matched transaction hashes one per line.
func writeMatched(matched []chainhash.Hash) {
	fmt.Fprintf(output, "matched:      %d\n", len(matched))
	for i := range matched {
		fmt.Fprintf(output, "  %v\n", matched[i])
	}
}
