// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/poolledger/fault"
)

// Access - batched database access
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - a leveldb batch with a cache of its writes
type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: batch,
		cache: cache,
	}
}

// Begin - open the batch
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrTransactionInUse
	}

	d.inUse = true
	return nil
}

// Put - add a write to the batch
func (d *AccessData) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

// Delete - add a delete to the batch
func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the whole batch and close it
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.ErrEmptyTransaction
	}

	err := d.db.Write(d.batch, nil)

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false

	return err
}

// Get - read through the batch, a key deleted in the batch is not found
func (d *AccessData) Get(key []byte) ([]byte, error) {
	switch value, state := d.pending(key); state {
	case pendingPut:
		return value, nil
	case pendingDelete:
		return nil, leveldb.ErrNotFound
	default:
		return d.db.Get(key, nil)
	}
}

// Iterator - committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

// Has - check through the batch
func (d *AccessData) Has(key []byte) (bool, error) {
	switch _, state := d.pending(key); state {
	case pendingPut:
		return true, nil
	case pendingDelete:
		return false, nil
	default:
		return d.db.Has(key, nil)
	}
}

type pendingState int

const (
	notPending pendingState = iota
	pendingPut
	pendingDelete
)

// uncommitted state of a key in the open batch
func (d *AccessData) pending(key []byte) ([]byte, pendingState) {
	value, found, deleted := d.cache.Get(string(key))
	switch {
	case deleted:
		return nil, pendingDelete
	case found:
		return value, pendingPut
	default:
		return nil, notPending
	}
}

// InUse - is the batch open
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Abort - drop the batch
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}
