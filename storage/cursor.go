// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/poolledger/fault"
)

// FetchCursor - forward iteration over one pool
//
// after each Fetch the cursor is positioned just past the last key
// returned, so repeated Fetch calls page through the pool
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of the pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool:     p,
		maxRange: p.fullRange(),
	}
}

// Seek - move cursor to the first key at or after key
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return up to count elements and advance the cursor
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.walk(func(e Element) (bool, error) {
		results = append(results, e)
		return len(results) < count, nil
	})

	// next start is the immediate successor: last key ++ 0x00
	if n := len(results); n > 0 {
		next := cursor.pool.prefixKey(results[n-1].Key)
		cursor.maxRange.Start = append(next, 0x00)
	}
	return results, err
}

// Map - run a function on every remaining element, stopping at the first error
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}
	return cursor.walk(func(e Element) (bool, error) {
		if err := f(e.Key, e.Value); nil != err {
			return false, err
		}
		return true, nil
	})
}

// visit each element in range until the callback returns false or an error
func (cursor *FetchCursor) walk(visit func(Element) (bool, error)) error {
	poolData.RLock()
	defer poolData.RUnlock()

	if !cursor.pool.ready() {
		return nil
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.maxRange)
	defer iter.Release()

	for iter.Next() {
		more, err := visit(copyElement(iter))
		if nil != err {
			return err
		}
		if !more {
			break
		}
	}
	return iter.Error()
}

// the iterator's slices are only valid until the next move
func copyElement(iter iterator.Iterator) Element {
	key := iter.Key()
	value := iter.Value()

	e := Element{
		Key:   make([]byte, len(key)-1),
		Value: make([]byte, len(value)),
	}
	copy(e.Key, key[1:]) // strip the prefix
	copy(e.Value, value)
	return e
}
