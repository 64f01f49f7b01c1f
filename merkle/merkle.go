// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// MerkleParent returns the parent node of the passed left and right nodes,
// which is the double SHA-256 hash of their concatenation.
func MerkleParent(left, right *chainhash.Hash) *chainhash.Hash {
	// Concatenate the left and right nodes.
	var hash [chainhash.HashSize * 2]byte
	copy(hash[:chainhash.HashSize], left[:])
	copy(hash[chainhash.HashSize:], right[:])

	newHash := chainhash.DoubleHashH(hash[:])
	return &newHash
}

// MerkleParentLevel returns the level of parents for the passed level of
// nodes.  A level with an odd number of nodes pairs its last node with
// itself.  The passed slice is not modified.
func MerkleParentLevel(level []*chainhash.Hash) ([]*chainhash.Hash, error) {
	switch len(level) {
	case 0:
		return nil, makeError(ErrEmptyTree, "cannot take the parent level "+
			"of an empty level")
	case 1:
		return nil, makeError(ErrSingleNodeLevel, "cannot take the parent "+
			"level of a level with only 1 node")
	}

	parents := make([]*chainhash.Hash, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		left, right := level[i], level[i]
		if i+1 < len(level) {
			right = level[i+1]
		}
		parents = append(parents, MerkleParent(left, right))
	}
	return parents, nil
}

// MerkleRoot returns the merkle root of the passed leaves, calculated the way
// bitcoin commits to the transactions of a block.
func MerkleRoot(leaves []*chainhash.Hash) (*chainhash.Hash, error) {
	if len(leaves) == 0 {
		return nil, makeError(ErrEmptyTree, "cannot calculate the merkle "+
			"root of zero leaves")
	}

	tree := NewRollingTree(len(leaves))
	for i, leaf := range leaves {
		if leaf == nil {
			str := fmt.Sprintf("leaf %d is nil", i)
			return nil, makeError(ErrEmptyTree, str)
		}
		tree.Push(leaf)
	}
	root := tree.Root()
	return &root, nil
}
