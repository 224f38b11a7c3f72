// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte slot address
// 4. sequence     = successive journal number as big endian uint64 (8 bytes)
// 5. *others*     = byte values of various length
//
// Slots:
//
//	S ++ address               - storage slot
//	                             data: owner ++ lamports(big endian uint64) ++ length(varint) ++ data
//
// Journal:
//
//	J ++ sequence              - one committed invocation
//	                             data: packed journal entry
//
// Counters:
//
//	C ++ name                  - named counter
//	                             data: count (big endian uint64)
//
// Testing:
//
//	Z ++ key                   - testing data
package storage
