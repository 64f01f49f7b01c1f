// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// MerkleTree reconstructs a merkle root from the partial list of hashes and
// flag bits carried by a merkleblock message.
//
// The tree holds one slice of nodes per level, the root level first, and a
// cursor identifying the node currently being worked on.  Nodes are filled
// in by PopulateTree and a node is never overwritten once set.
//
// A MerkleTree is only meant to be populated once and is not safe for
// concurrent access.
type MerkleTree struct {
	total    uint32
	maxDepth int
	nodes    [][]*chainhash.Hash

	// depth and index form the cursor.
	depth int
	index int

	// matched holds the leaves reached with a set flag bit, in order.
	matched []*chainhash.Hash
}

// calcTreeWidth returns the number of nodes at the given height above the
// leaves of a tree with total leaves.
func calcTreeWidth(total uint32, height int) int {
	return int((uint64(total) + (1 << height) - 1) >> height)
}

// NewMerkleTree returns an empty tree for total leaves with the cursor on the
// root.
func NewMerkleTree(total uint32) (*MerkleTree, error) {
	if total == 0 {
		return nil, makeError(ErrEmptyTree, "a merkle tree must have at "+
			"least 1 leaf")
	}

	// The depth of the leaves is ceil(log2(total)).
	maxDepth := bits.Len32(total - 1)
	nodes := make([][]*chainhash.Hash, maxDepth+1)
	for depth := range nodes {
		nodes[depth] = make([]*chainhash.Hash, calcTreeWidth(total,
			maxDepth-depth))
	}

	return &MerkleTree{
		total:    total,
		maxDepth: maxDepth,
		nodes:    nodes,
	}, nil
}

// Total returns the number of leaves of the tree.
func (t *MerkleTree) Total() uint32 {
	return t.total
}

// MaxDepth returns the depth of the leaf level.  The root is at depth 0.
func (t *MerkleTree) MaxDepth() int {
	return t.maxDepth
}

// Root returns the root of the tree or nil when it is not known yet.
func (t *MerkleTree) Root() *chainhash.Hash {
	return t.nodes[0][0]
}

// Matched returns the leaves that were flagged as matched while populating
// the tree, in tree order.
func (t *MerkleTree) Matched() []*chainhash.Hash {
	return t.matched
}

func (t *MerkleTree) up() {
	t.depth--
	t.index /= 2
}

func (t *MerkleTree) left() {
	t.depth++
	t.index *= 2
}

func (t *MerkleTree) right() {
	t.depth++
	t.index = t.index*2 + 1
}

func (t *MerkleTree) isLeaf() bool {
	return t.depth == t.maxDepth
}

func (t *MerkleTree) leftNode() *chainhash.Hash {
	return t.nodes[t.depth+1][t.index*2]
}

func (t *MerkleTree) rightNode() *chainhash.Hash {
	return t.nodes[t.depth+1][t.index*2+1]
}

func (t *MerkleTree) rightExists() bool {
	return len(t.nodes[t.depth+1]) > t.index*2+1
}

// setCurrentNode sets the node under the cursor.
func (t *MerkleTree) setCurrentNode(hash *chainhash.Hash) error {
	if t.nodes[t.depth][t.index] != nil {
		str := fmt.Sprintf("node %d at depth %d is already set to %v",
			t.index, t.depth, t.nodes[t.depth][t.index])
		return makeError(ErrNodeOverwrite, str)
	}
	t.nodes[t.depth][t.index] = hash
	return nil
}

// treeInput reads flag bits and hashes strictly in order.
type treeInput struct {
	flagBits []byte
	hashes   []*chainhash.Hash
	nextFlag int
	nextHash int
}

func (in *treeInput) flag() (byte, error) {
	if in.nextFlag >= len(in.flagBits) {
		str := fmt.Sprintf("all %d flag bits consumed before the root was "+
			"known", len(in.flagBits))
		return 0, makeError(ErrFlagBitsExhausted, str)
	}
	bit := in.flagBits[in.nextFlag]
	in.nextFlag++
	return bit, nil
}

func (in *treeInput) hash() (*chainhash.Hash, error) {
	if in.nextHash >= len(in.hashes) {
		str := fmt.Sprintf("all %d hashes consumed before the root was "+
			"known", len(in.hashes))
		return nil, makeError(ErrHashesExhausted, str)
	}
	hash := in.hashes[in.nextHash]
	if hash == nil {
		str := fmt.Sprintf("hash %d is nil", in.nextHash)
		return nil, makeError(ErrHashesExhausted, str)
	}
	in.nextHash++
	return hash, nil
}

// PopulateTree walks the tree depth first from the cursor, filling in nodes
// from the passed flag bits and hashes until the root is known.  Flag bits
// are expected one per entry with the value 0 or 1, as returned by
// BytesToBitField.  Neither slice is modified.
//
// At a leaf, one flag bit and one hash are consumed and the hash becomes the
// leaf.  At an interior node whose left child is unknown, a flag bit of 0
// means the next hash is the node itself and its subtree is skipped, while a
// 1 descends into the left child.  Once the left child is known the right
// child is visited, or the left child is paired with itself when the level
// has no right sibling, and the parent is computed.
//
// Every hash and every set flag bit must be consumed by the time the root is
// known.  Leftover input is reported with ErrHashesNotConsumed or
// ErrFlagBitsNotConsumed, both of which match ErrMerkleConsumption.
func (t *MerkleTree) PopulateTree(flagBits []byte, hashes []*chainhash.Hash) error {
	in := treeInput{flagBits: flagBits, hashes: hashes}

	for t.Root() == nil {
		if t.isLeaf() {
			flag, err := in.flag()
			if err != nil {
				return err
			}
			hash, err := in.hash()
			if err != nil {
				return err
			}
			if err := t.setCurrentNode(hash); err != nil {
				return err
			}
			if flag != 0 {
				t.matched = append(t.matched, hash)
			}
			t.up()
			continue
		}

		leftHash := t.leftNode()
		switch {
		case leftHash == nil:
			flag, err := in.flag()
			if err != nil {
				return err
			}
			if flag != 0 {
				t.left()
				continue
			}

			// The whole subtree is summarized by the next hash.
			hash, err := in.hash()
			if err != nil {
				return err
			}
			if err := t.setCurrentNode(hash); err != nil {
				return err
			}
			t.up()

		case t.rightExists():
			rightHash := t.rightNode()
			if rightHash == nil {
				t.right()
				continue
			}
			err := t.setCurrentNode(MerkleParent(leftHash, rightHash))
			if err != nil {
				return err
			}
			t.up()

		default:
			err := t.setCurrentNode(MerkleParent(leftHash, leftHash))
			if err != nil {
				return err
			}
			t.up()
		}
	}

	if remaining := len(hashes) - in.nextHash; remaining != 0 {
		str := fmt.Sprintf("hashes not all consumed: %d remaining",
			remaining)
		return makeError(ErrHashesNotConsumed, str)
	}
	for i := in.nextFlag; i < len(flagBits); i++ {
		if flagBits[i] != 0 {
			str := fmt.Sprintf("flag bits not all consumed: bit %d of %d "+
				"is set", i, len(flagBits))
			return makeError(ErrFlagBitsNotConsumed, str)
		}
	}

	log.Tracef("Reconstructed merkle root %v from %d hashes and %d flag "+
		"bits", t.Root(), len(hashes), in.nextFlag)
	return nil
}

// String returns the tree one level per line, root first.  Known nodes show
// the first 8 characters of their hash, unknown nodes show nil and the node
// under the cursor is wrapped in asterisks.
func (t *MerkleTree) String() string {
	var sb strings.Builder
	for depth, level := range t.nodes {
		if depth > 0 {
			sb.WriteByte('\n')
		}
		for index, hash := range level {
			if index > 0 {
				sb.WriteString(", ")
			}
			short := "nil"
			if hash != nil {
				short = hash.String()[:8] + "..."
			}
			if depth == t.depth && index == t.index {
				short = "*" + short + "*"
			}
			sb.WriteString(short)
		}
	}
	return sb.String()
}
