// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proofdb

import (
	"fmt"
	"os"

	"github.com/btcsuite/btcspv/proofdb/engine"
	"github.com/btcsuite/btcspv/proofdb/engine/leveldb"
	"github.com/btcsuite/btcspv/proofdb/engine/pebbledb"
)

const (
	// DBTypeLevelDB selects the goleveldb engine.
	DBTypeLevelDB = "leveldb"

	// DBTypePebble selects the pebble engine.
	DBTypePebble = "pebble"
)

// SupportedDBTypes lists the engine types Open accepts.
var SupportedDBTypes = []string{DBTypeLevelDB, DBTypePebble}

// Open opens, creating it when it does not exist, the store of the given
// engine type at dbPath.
func Open(dbType, dbPath string) (*Store, error) {
	create := false
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		create = true
	}

	var (
		db  engine.Engine
		err error
	)
	switch dbType {
	case DBTypeLevelDB:
		db, err = leveldb.NewDB(dbPath, create)
	case DBTypePebble:
		db, err = pebbledb.NewDB(dbPath, create, 0, 0)
	default:
		str := fmt.Sprintf("unknown database type %q, supported types "+
			"are %v", dbType, SupportedDBTypes)
		return nil, makeError(ErrUnknownDBType, str)
	}
	if err != nil {
		return nil, err
	}

	log.Debugf("Opened %s proof database at %s", dbType, dbPath)
	return New(db), nil
}
