// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - fixed layout of the wallet and pool records
//
//	[0, 8)  balance, little endian
//	[8]     version << 4 | kind, zero in slots written before tagging
//
// any further slot bytes are padding
package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/poolledger/fault"
)

// Kind - the record shape held in a slot
type Kind byte

// record kinds
const (
	KindUntagged Kind = 0
	KindWallet   Kind = 1
	KindPool     Kind = 2
)

// layout
const (
	Version       = 1
	BalanceLength = 8
	tagOffset     = BalanceLength
	PackedSize    = BalanceLength + 1
)

// Wallet - balance held for one owner
type Wallet struct {
	Balance uint64 `json:"balance"`
}

// Pool - the singleton pool
type Pool struct {
	TotalBalance uint64 `json:"totalBalance"`
}

// Packed - packed record bytes
type Packed []byte

// Pack - wallet to bytes
func (w *Wallet) Pack() Packed {
	return pack(w.Balance, KindWallet)
}

// Pack - pool to bytes
func (p *Pool) Pack() Packed {
	return pack(p.TotalBalance, KindPool)
}

// UnpackWallet - bytes to wallet
func UnpackWallet(buffer []byte) (*Wallet, error) {
	n, err := unpack(buffer, KindWallet)
	if nil != err {
		return nil, err
	}
	return &Wallet{Balance: n}, nil
}

// UnpackPool - bytes to pool
func UnpackPool(buffer []byte) (*Pool, error) {
	n, err := unpack(buffer, KindPool)
	if nil != err {
		return nil, err
	}
	return &Pool{TotalBalance: n}, nil
}

// KindOf - the tagged kind, KindUntagged for short or legacy buffers
func KindOf(buffer []byte) Kind {
	if len(buffer) <= tagOffset {
		return KindUntagged
	}
	tag := buffer[tagOffset]
	if Version != tag>>4 {
		return KindUntagged
	}
	return Kind(tag & 0x0f)
}

// String - name of a kind
func (k Kind) String() string {
	switch k {
	case KindWallet:
		return "wallet"
	case KindPool:
		return "pool"
	default:
		return "untagged"
	}
}

func pack(n uint64, kind Kind) Packed {
	buffer := make([]byte, PackedSize)
	binary.LittleEndian.PutUint64(buffer, n)
	buffer[tagOffset] = Version<<4 | byte(kind)
	return buffer
}

func unpack(buffer []byte, kind Kind) (uint64, error) {
	if len(buffer) < BalanceLength {
		return 0, fault.ErrMalformedRecord
	}
	if len(buffer) > tagOffset {
		tag := buffer[tagOffset]
		if 0 != tag && Version<<4|byte(kind) != tag {
			return 0, fault.ErrMalformedRecord
		}
	}
	return binary.LittleEndian.Uint64(buffer[:BalanceLength]), nil
}
