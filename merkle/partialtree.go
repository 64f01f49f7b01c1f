// Copyright (c) 2013, 2014 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// partialTree is used to house intermediate information needed to build the
// hashes and flag bits of a partial merkle tree.
type partialTree struct {
	numLeaves   uint32
	allHashes   []*chainhash.Hash
	matchedBits []byte
	finalHashes []*chainhash.Hash
	bits        []byte
}

// calcHash returns the hash for a sub-tree given a depth-first height and
// node position.
func (p *partialTree) calcHash(height int, pos uint32) *chainhash.Hash {
	if height == 0 {
		return p.allHashes[pos]
	}

	var right *chainhash.Hash
	left := p.calcHash(height-1, pos*2)
	if int(pos*2+1) < calcTreeWidth(p.numLeaves, height-1) {
		right = p.calcHash(height-1, pos*2+1)
	} else {
		right = left
	}
	return MerkleParent(left, right)
}

// traverseAndBuild builds a partial merkle tree using a recursive depth-first
// approach.  As it calculates the hashes, it also saves whether or not each
// node is a parent node and a list of final hashes to be included in the
// proof.
func (p *partialTree) traverseAndBuild(height int, pos uint32) {
	// Determine whether this node is a parent of a matched node.
	var isParent byte
	for i := pos << height; i < (pos+1)<<height && i < p.numLeaves; i++ {
		isParent |= p.matchedBits[i]
	}
	p.bits = append(p.bits, isParent)

	// When the node is a leaf node or not a parent of a matched node,
	// append the hash to the list that will be part of the final proof.
	if height == 0 || isParent == 0x00 {
		p.finalHashes = append(p.finalHashes, p.calcHash(height, pos))
		return
	}

	// Descend into the left child and process its sub-tree.
	p.traverseAndBuild(height-1, pos*2)

	// Descend into the right child and process its sub-tree if
	// there is one.
	if int(pos*2+1) < calcTreeWidth(p.numLeaves, height-1) {
		p.traverseAndBuild(height-1, pos*2+1)
	}
}

// BuildPartialTree returns the hashes and flag bits proving the inclusion of
// the matched leaves in the merkle tree of all of the passed leaves.  The
// result is exactly what PopulateTree consumes.
func BuildPartialTree(leaves []*chainhash.Hash, matched []bool) ([]*chainhash.Hash, []byte, error) {
	if len(leaves) == 0 {
		return nil, nil, makeError(ErrEmptyTree, "cannot build a partial "+
			"merkle tree of zero leaves")
	}
	if len(leaves) != len(matched) {
		str := fmt.Sprintf("%d match flags provided for %d leaves",
			len(matched), len(leaves))
		return nil, nil, makeError(ErrMatchedLenMismatch, str)
	}

	p := partialTree{
		numLeaves:   uint32(len(leaves)),
		allHashes:   leaves,
		matchedBits: make([]byte, len(matched)),
	}
	for i, m := range matched {
		if m {
			p.matchedBits[i] = 0x01
		}
	}

	// Calculate the number of merkle branches (height) in the tree.
	height := 0
	for calcTreeWidth(p.numLeaves, height) > 1 {
		height++
	}

	// Build the depth-first partial merkle tree.
	p.traverseAndBuild(height, 0)
	return p.finalHashes, p.bits, nil
}

// NewMerkleBlock returns a merkleblock message for the passed header proving
// the inclusion of the matched leaves.
func NewMerkleBlock(header *wire.BlockHeader, leaves []*chainhash.Hash,
	matched []bool) (*wire.MsgMerkleBlock, error) {

	hashes, bits, err := BuildPartialTree(leaves, matched)
	if err != nil {
		return nil, err
	}

	msg := wire.NewMsgMerkleBlock(header)
	msg.Transactions = uint32(len(leaves))
	for _, hash := range hashes {
		if err := msg.AddTxHash(hash); err != nil {
			return nil, err
		}
	}
	msg.Flags = BitFieldToBytes(bits)
	return msg, nil
}
