// Copyright (c) 2023 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"math/bits"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// RollingTree computes the double SHA256 merkle root over a stream of leaf
// hashes.  Interior nodes are computed as soon as both of their children are
// known, so only O(log n) nodes are held at any time.
type RollingTree struct {
	// nodes contains the nodes that still wait for a sibling, keyed by the
	// index of the leftmost leaf position they cover at their level.
	nodes map[uint32]chainhash.Hash

	// num is the number of leaves pushed so far.
	num uint32

	// buf is used to concatenate left and right nodes.
	buf [2 * chainhash.HashSize]byte
}

// NewRollingTree returns a RollingTree preallocated for size leaves.  More
// leaves may be pushed.
func NewRollingTree(size int) *RollingTree {
	return &RollingTree{
		nodes: make(map[uint32]chainhash.Hash, bits.Len(uint(size))+1),
	}
}

// Push adds the next leaf.  A left leaf is stored until its sibling arrives.
// A right leaf is immediately combined with its left sibling and the result
// carried upwards while complete subtrees remain.
func (t *RollingTree) Push(hash *chainhash.Hash) {
	t.num++

	idx := t.num - 1
	if idx%2 == 0 {
		t.nodes[idx] = *hash
		return
	}
	t.prune(hash)
}

// NumLeaves returns the number of leaves pushed so far.
func (t *RollingTree) NumLeaves() uint32 {
	return t.num
}

// Root returns the merkle root of all leaves pushed so far.  The zero hash is
// returned when no leaves were pushed.  The tree must not be pushed to after
// Root is called.
func (t *RollingTree) Root() chainhash.Hash {
	switch len(t.nodes) {
	case 0:
		return chainhash.Hash{}

	// A single remaining node is the root.
	case 1:
		return t.nodes[0]

	// Lone left children still need to be paired with themselves.
	default:
		t.prune(nil)
		return t.nodes[0]
	}
}

// prune consolidates complete subtrees into single nodes.  A non-nil leaf is
// the right leaf just pushed.  A nil leaf finalizes the tree, pairing lone
// left nodes with themselves as consensus requires.
func (t *RollingTree) prune(leaf *chainhash.Hash) {
	final := leaf == nil

	for i := t.num - 1; i > 0; i /= 2 {
		if i%2 == 0 {
			// Nothing more to do for a left node until its right
			// sibling arrives, unless finalizing.
			if !final {
				return
			}
			if left, ok := t.nodes[i]; ok {
				delete(t.nodes, i)
				t.nodes[i/2] = t.hashBranches(&left, &left)
			}
			continue
		}

		left, ok := t.nodes[i-1]
		if !ok {
			if final {
				continue
			}
			return
		}
		delete(t.nodes, i-1)

		// The right leaf is threaded through on the first iteration of a
		// push.  Otherwise it is the interior node computed by the prior
		// iteration.
		var right chainhash.Hash
		if !final && i == t.num-1 {
			right = *leaf
		} else {
			right = t.nodes[i]
			delete(t.nodes, i)
		}

		t.nodes[i/2] = t.hashBranches(&left, &right)
	}
}

// hashBranches returns the double SHA256 of left||right.
func (t *RollingTree) hashBranches(left, right *chainhash.Hash) chainhash.Hash {
	copy(t.buf[:chainhash.HashSize], left[:])
	copy(t.buf[chainhash.HashSize:], right[:])
	return chainhash.DoubleHashH(t.buf[:])
}
