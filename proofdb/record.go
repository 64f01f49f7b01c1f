// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proofdb

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcspv/merkle"
	"github.com/fxamacker/cbor/v2"
)

// recordVersion is the current version of the stored record encoding.
const recordVersion = 1

// ProofRecord is a verified merkle proof as kept by the store.
type ProofRecord struct {
	Version         uint8            `cbor:"1,keyasint"`
	BlockHash       chainhash.Hash   `cbor:"2,keyasint"`
	MerkleRoot      chainhash.Hash   `cbor:"3,keyasint"`
	NumTransactions uint32           `cbor:"4,keyasint"`
	Matched         []chainhash.Hash `cbor:"5,keyasint,omitempty"`

	// VerifiedAt is the unix time the proof was verified at.
	VerifiedAt int64 `cbor:"6,keyasint"`
}

// RecordFromProof returns a record for the passed verified proof stamped
// with the current time.
func RecordFromProof(proof *merkle.VerifiedProof) *ProofRecord {
	matched := make([]chainhash.Hash, len(proof.Matched))
	copy(matched, proof.Matched)

	return &ProofRecord{
		Version:         recordVersion,
		BlockHash:       proof.BlockHash,
		MerkleRoot:      proof.MerkleRoot,
		NumTransactions: proof.NumTransactions,
		Matched:         matched,
		VerifiedAt:      time.Now().Unix(),
	}
}

// Contains returns whether the record proves the inclusion of the passed
// transaction.
func (r *ProofRecord) Contains(txHash *chainhash.Hash) bool {
	for i := range r.Matched {
		if r.Matched[i].IsEqual(txHash) {
			return true
		}
	}
	return false
}

// encodeRecord serializes the record to CBOR.
func encodeRecord(r *ProofRecord) ([]byte, error) {
	return cbor.Marshal(r)
}

// decodeRecord deserializes a record stored under the passed block hash.
func decodeRecord(blockHash *chainhash.Hash, b []byte) (*ProofRecord, error) {
	var r ProofRecord
	if err := cbor.Unmarshal(b, &r); err != nil {
		str := fmt.Sprintf("unable to decode proof record for block "+
			"%v: %v", blockHash, err)
		return nil, makeError(ErrCorruptRecord, str)
	}
	if !r.BlockHash.IsEqual(blockHash) {
		str := fmt.Sprintf("proof record stored under block %v is for "+
			"block %v", blockHash, r.BlockHash)
		return nil, makeError(ErrCorruptRecord, str)
	}
	return &r, nil
}
