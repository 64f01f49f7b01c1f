// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proofdb

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcspv/proofdb/engine"
)

// proofKeyPrefix is the key prefix of every stored proof record.  The block
// hash follows the prefix.
var proofKeyPrefix = []byte("proof")

// proofKey returns the key the proof for the passed block is stored under.
func proofKey(blockHash *chainhash.Hash) []byte {
	key := make([]byte, len(proofKeyPrefix)+chainhash.HashSize)
	copy(key, proofKeyPrefix)
	copy(key[len(proofKeyPrefix):], blockHash[:])
	return key
}

// Store keeps verified merkle proofs keyed by block hash.
//
// The store is safe for concurrent access to the same degree as the
// underlying engine.
type Store struct {
	db engine.Engine
}

// New returns a proof store on top of the passed engine.  The store takes
// ownership of the engine and closes it on Close.
func New(db engine.Engine) *Store {
	return &Store{db: db}
}

// Put stores the passed record, replacing any record for the same block.
func (s *Store) Put(r *ProofRecord) error {
	value, err := encodeRecord(r)
	if err != nil {
		return err
	}

	tx, err := s.db.Transaction()
	if err != nil {
		return err
	}
	if err := tx.Put(proofKey(&r.BlockHash), value); err != nil {
		tx.Discard()
		return err
	}
	if err := tx.Commit(); err != nil {
		tx.Discard()
		return err
	}

	log.Debugf("Stored proof for block %v with %d matched transactions",
		r.BlockHash, len(r.Matched))
	return nil
}

// Fetch returns the record for the passed block.  ErrProofNotFound is
// returned when no proof is stored for the block.
func (s *Store) Fetch(blockHash *chainhash.Hash) (*ProofRecord, error) {
	snapshot, err := s.db.Snapshot()
	if err != nil {
		return nil, err
	}
	defer snapshot.Release()

	value, err := snapshot.Get(proofKey(blockHash))
	if errors.Is(err, engine.ErrNotFound) {
		str := fmt.Sprintf("no proof stored for block %v", blockHash)
		return nil, makeError(ErrProofNotFound, str)
	}
	if err != nil {
		return nil, err
	}
	return decodeRecord(blockHash, value)
}

// Has returns whether a proof is stored for the passed block.
func (s *Store) Has(blockHash *chainhash.Hash) (bool, error) {
	snapshot, err := s.db.Snapshot()
	if err != nil {
		return false, err
	}
	defer snapshot.Release()

	return snapshot.Has(proofKey(blockHash))
}

// Remove deletes the proof for the passed block.  ErrProofNotFound is
// returned when no proof is stored for the block.
func (s *Store) Remove(blockHash *chainhash.Hash) error {
	exists, err := s.Has(blockHash)
	if err != nil {
		return err
	}
	if !exists {
		str := fmt.Sprintf("no proof stored for block %v", blockHash)
		return makeError(ErrProofNotFound, str)
	}

	tx, err := s.db.Transaction()
	if err != nil {
		return err
	}
	if err := tx.Delete(proofKey(blockHash)); err != nil {
		tx.Discard()
		return err
	}
	if err := tx.Commit(); err != nil {
		tx.Discard()
		return err
	}

	log.Debugf("Removed proof for block %v", blockHash)
	return nil
}

// ForEach calls fn for every stored record in block hash byte order.
// Iteration stops at the first error returned by fn, which is returned.
func (s *Store) ForEach(fn func(r *ProofRecord) error) error {
	snapshot, err := s.db.Snapshot()
	if err != nil {
		return err
	}
	defer snapshot.Release()

	iter := snapshot.NewIterator(engine.BytesPrefix(proofKeyPrefix))
	defer iter.Release()

	for iter.Next() {
		key := iter.Key()
		blockHash, err := chainhash.NewHash(key[len(proofKeyPrefix):])
		if err != nil {
			str := fmt.Sprintf("invalid proof key %x: %v", key, err)
			return makeError(ErrCorruptRecord, str)
		}
		r, err := decodeRecord(blockHash, iter.Value())
		if err != nil {
			return err
		}
		if err := fn(r); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Close closes the underlying engine.
func (s *Store) Close() error {
	return s.db.Close()
}
