// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine defines the key/value storage engine interface the proof
// store is built on, along with a test suite every engine must pass.
package engine

import "errors"

// ErrNotFound is returned by Snapshot.Get when the key does not exist.
var ErrNotFound = errors.New("engine: key not found")

// Engine is a key/value store that supports atomic writes and consistent
// reads.
type Engine interface {
	Transaction() (Transaction, error)
	Snapshot() (Snapshot, error)
	Close() error
}

// Transaction batches writes which become visible together on Commit.
type Transaction interface {
	Put(key, value []byte) error
	Delete(key []byte) error
	Commit() error
	Discard()
}

// Snapshot is a read-only point in time view of the engine.
type Snapshot interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	NewIterator(*Range) Iterator
	Releaser
}

// Releaser is implemented by resources that must be released after use.
type Releaser interface {
	Release()
}
