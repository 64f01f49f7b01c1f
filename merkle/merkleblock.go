// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// minTxPayload is the minimum payload size for a transaction.  It bounds the
// number of transactions a merkleblock may claim.
const minTxPayload = 10

// maxLeaves is the maximum number of transactions that could fit in a block.
const maxLeaves = wire.MaxBlockPayload / minTxPayload

// VerifiedProof is the result of successfully verifying a merkleblock
// message.
type VerifiedProof struct {
	// BlockHash is the hash of the block header.
	BlockHash chainhash.Hash

	// MerkleRoot is the merkle root committed to by the header, which the
	// proof reconstructed.
	MerkleRoot chainhash.Hash

	// NumTransactions is the number of transactions in the block.
	NumTransactions uint32

	// Matched holds the hashes of the transactions proven to be included
	// in the block, in block order.
	Matched []chainhash.Hash
}

// DecodeMerkleBlock reads a merkleblock message payload from r.
func DecodeMerkleBlock(r io.Reader) (*wire.MsgMerkleBlock, error) {
	var msg wire.MsgMerkleBlock
	err := msg.BtcDecode(r, wire.ProtocolVersion, wire.BaseEncoding)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// VerifyMerkleBlock reconstructs the merkle root from the hashes and flags of
// the passed merkleblock message and ensures it matches the merkle root of
// the block header.
func VerifyMerkleBlock(msg *wire.MsgMerkleBlock) (*VerifiedProof, error) {
	blockHash := msg.Header.BlockHash()
	if msg.Transactions > maxLeaves {
		str := fmt.Sprintf("merkle block %v claims %d transactions which "+
			"is more than the max of %d", blockHash, msg.Transactions,
			maxLeaves)
		return nil, makeError(ErrTooManyLeaves, str)
	}

	tree, err := NewMerkleTree(msg.Transactions)
	if err != nil {
		return nil, err
	}
	err = tree.PopulateTree(BytesToBitField(msg.Flags), msg.Hashes)
	if err != nil {
		log.Debugf("Rejected merkle block %v: %v", blockHash, err)
		return nil, err
	}

	root := tree.Root()
	if !root.IsEqual(&msg.Header.MerkleRoot) {
		str := fmt.Sprintf("merkle block %v reconstructs merkle root %v, "+
			"header commits to %v", blockHash, root,
			msg.Header.MerkleRoot)
		log.Debugf("Rejected merkle block: %s", str)
		return nil, makeError(ErrMerkleRootMismatch, str)
	}

	proof := &VerifiedProof{
		BlockHash:       blockHash,
		MerkleRoot:      *root,
		NumTransactions: msg.Transactions,
		Matched:         make([]chainhash.Hash, 0, len(tree.Matched())),
	}
	for _, hash := range tree.Matched() {
		proof.Matched = append(proof.Matched, *hash)
	}

	log.Debugf("Verified merkle block %v with %d of %d transactions "+
		"matched", blockHash, len(proof.Matched), msg.Transactions)
	return proof, nil
}
