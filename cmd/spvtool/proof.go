// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcspv/internal/log"
	"github.com/btcsuite/btcspv/proofdb"
)

// proofCmd defines the configuration options for the proof command.
type proofCmd struct {
	Tx     string `long:"tx" description:"Check whether the stored proof includes this transaction hash"`
	List   bool   `short:"l" long:"list" description:"List the block hashes of all stored proofs"`
	Remove bool   `long:"remove" description:"Remove the stored proof"`
}

var (
	// proofCfg defines the configuration options for the command.
	proofCfg = proofCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *proofCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if !cmd.List && len(args) < 1 {
		return errors.New("required block hash parameter not specified")
	}

	store, err := loadProofStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if cmd.List {
		var numProofs uint64
		err := store.ForEach(func(r *proofdb.ProofRecord) error {
			numProofs++
			fmt.Fprintf(output, "%v %d\n", r.BlockHash, len(r.Matched))
			return nil
		})
		if err != nil {
			return err
		}
		log.SpvtLog.Debugf("Listed %d %s", numProofs,
			log.PickNoun(numProofs, "proof", "proofs"))
		return nil
	}

	blockHash, err := chainhash.NewHashFromStr(args[0])
	if err != nil {
		return err
	}

	if cmd.Remove {
		if err := store.Remove(blockHash); err != nil {
			return err
		}
		log.SpvtLog.Infof("Removed proof for block %v", blockHash)
		return nil
	}

	record, err := store.Fetch(blockHash)
	if err != nil {
		return err
	}

	if cmd.Tx != "" {
		txHash, err := chainhash.NewHashFromStr(cmd.Tx)
		if err != nil {
			return err
		}
		if !record.Contains(txHash) {
			return fmt.Errorf("transaction %v is not proven in block %v",
				txHash, blockHash)
		}
		fmt.Fprintf(output, "transaction %v is included in block %v\n",
			txHash, blockHash)
		return nil
	}

	fmt.Fprintf(output, "block:        %v\n", record.BlockHash)
	fmt.Fprintf(output, "merkle root:  %v\n", record.MerkleRoot)
	fmt.Fprintf(output, "transactions: %d\n", record.NumTransactions)
	fmt.Fprintf(output, "verified:     %v\n",
		time.Unix(record.VerifiedAt, 0).UTC().Format(time.RFC3339))
	writeMatched(record.Matched)
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *proofCmd) Usage() string {
	return "[--tx=<tx-hash> | --remove] <block-hash> | --list"
}
