// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/record"
)

func TestWalletPack(t *testing.T) {
	w := record.Wallet{Balance: 0x0102030405060708}
	packed := w.Pack()

	expected := record.Packed{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, 0x11}
	assert.Equal(t, expected, packed, "packed wallet")
	assert.Equal(t, record.PackedSize, len(packed), "size")
	assert.Equal(t, record.KindWallet, record.KindOf(packed), "kind")
}

func TestPoolPack(t *testing.T) {
	p := record.Pool{TotalBalance: 100}
	packed := p.Pack()

	expected := record.Packed{100, 0, 0, 0, 0, 0, 0, 0, 0x12}
	assert.Equal(t, expected, packed, "packed pool")
	assert.Equal(t, record.KindPool, record.KindOf(packed), "kind")
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 30, 70, 100, math.MaxUint32, math.MaxUint64 - 1, math.MaxUint64} {
		w := record.Wallet{Balance: n}
		rw, err := record.UnpackWallet(w.Pack())
		assert.Nil(t, err, "wallet %d", n)
		assert.Equal(t, w, *rw, "wallet %d", n)

		p := record.Pool{TotalBalance: n}
		rp, err := record.UnpackPool(p.Pack())
		assert.Nil(t, err, "pool %d", n)
		assert.Equal(t, p, *rp, "pool %d", n)
	}
}

func TestUnpackFromSlotCapacity(t *testing.T) {
	buffer := make([]byte, 128)
	copy(buffer, (&record.Wallet{Balance: 42}).Pack())
	buffer[100] = 0xff

	w, err := record.UnpackWallet(buffer)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, uint64(42), w.Balance, "balance")
}

func TestUnpackShort(t *testing.T) {
	for n := 0; n < record.BalanceLength; n += 1 {
		_, err := record.UnpackWallet(make([]byte, n))
		assert.Equal(t, fault.ErrMalformedRecord, err, "wallet length %d", n)

		_, err = record.UnpackPool(make([]byte, n))
		assert.Equal(t, fault.ErrMalformedRecord, err, "pool length %d", n)
	}
}

func TestUnpackUntagged(t *testing.T) {
	// eight byte records with no tag, optionally followed by zero padding
	legacy := []byte{30, 0, 0, 0, 0, 0, 0, 0}

	w, err := record.UnpackWallet(legacy)
	assert.Nil(t, err, "wallet")
	assert.Equal(t, uint64(30), w.Balance, "wallet balance")

	p, err := record.UnpackPool(append(legacy, make([]byte, 120)...))
	assert.Nil(t, err, "pool")
	assert.Equal(t, uint64(30), p.TotalBalance, "pool balance")

	assert.Equal(t, record.KindUntagged, record.KindOf(legacy), "kind")
}

func TestUnpackWrongKind(t *testing.T) {
	wallet := (&record.Wallet{Balance: 5}).Pack()
	_, err := record.UnpackPool(wallet)
	assert.Equal(t, fault.ErrMalformedRecord, err, "wallet as pool")

	pool := (&record.Pool{TotalBalance: 5}).Pack()
	_, err = record.UnpackWallet(pool)
	assert.Equal(t, fault.ErrMalformedRecord, err, "pool as wallet")

	future := (&record.Wallet{Balance: 5}).Pack()
	future[8] = 0x21
	_, err = record.UnpackWallet(future)
	assert.Equal(t, fault.ErrMalformedRecord, err, "unknown version")
	assert.Equal(t, record.KindUntagged, record.KindOf(future), "unknown version kind")
}
