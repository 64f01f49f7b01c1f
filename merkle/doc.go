// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package merkle implements bitcoin merkle trees and the reconstruction of
partial merkle trees used by simplified payment verification (SPV) proofs.

A merkleblock message proves that a set of transactions is included in a
block without sending all of the transactions.  It carries the block header,
the number of transactions in the block, a depth-first list of hashes and a
list of flag bits.  MerkleTree walks the tree described by those inputs and
computes the merkle root, which is then compared with the root committed to
by the header.

	proof, err := merkle.VerifyMerkleBlock(msg)
	if err != nil {
		// The proof is invalid.
	}

The inputs must describe the tree exactly.  Running out of hashes or flag
bits, or having hashes or set flag bits left once the root is known, fails
verification.

BuildPartialTree and NewMerkleBlock produce proofs from the full list of
transaction hashes of a block.
*/
package merkle
