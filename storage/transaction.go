// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
)

// Transaction - a batch of writes across pools applied all at once
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	InUse() bool
	Commit() error
	Abort()
}

// TransactionData - the single database transaction
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - start the batch
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - store a value
func (t *TransactionData) Put(p *PoolHandle, key []byte, value []byte) {
	t.access.Put(p.prefixKey(key), value)
}

// PutN - store a big endian uint64
func (t *TransactionData) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.access.Put(p.prefixKey(key), buffer)
}

// Delete - remove a key
func (t *TransactionData) Delete(p *PoolHandle, key []byte) {
	t.access.Delete(p.prefixKey(key))
}

// Get - read a value including any uncommitted write
func (t *TransactionData) Get(p *PoolHandle, key []byte) []byte {
	return p.Get(key)
}

// GetN - read a big endian uint64 including any uncommitted write
func (t *TransactionData) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return p.GetN(key)
}

// InUse - is the batch open
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

// Commit - write every pool change at once
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// Abort - discard every pool change
func (t *TransactionData) Abort() {
	t.access.Abort()
}
