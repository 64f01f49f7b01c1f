// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package proofdb stores verified merkle proofs keyed by block hash.

Records are encoded with CBOR and kept in a key/value engine.  Both goleveldb
and pebble engines are provided, see Open.

	store, err := proofdb.Open(proofdb.DBTypeLevelDB, path)
	if err != nil {
		return err
	}
	defer store.Close()

	proof, err := merkle.VerifyMerkleBlock(msg)
	if err != nil {
		return err
	}
	err = store.Put(proofdb.RecordFromProof(proof))
*/
package proofdb
