// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/invocation"
	"github.com/bitmark-inc/poolledger/record"
	"github.com/bitmark-inc/poolledger/slot"
)

func TestDecodeSlot(t *testing.T) {
	address := account.Address{1, 2, 3}
	s := slot.New(address)
	s.Owner = account.Address{9}
	s.Lamports = 1234
	s.Data = (&record.Wallet{Balance: 77}).Pack()

	text, err := decodeElement("S", address[:], s.Pack())
	assert.Nil(t, err, "wrong decode")
	assert.Contains(t, text, `"kind":"wallet"`, "wrong kind")
	assert.Contains(t, text, `"balance":77`, "wrong balance")
	assert.Contains(t, text, `"lamports":1234`, "wrong lamports")

	_, err = decodeElement("S", address[:4], s.Pack())
	assert.NotNil(t, err, "short key accepted")

	_, err = decodeElement("S", address[:], []byte{1, 2})
	assert.NotNil(t, err, "short value accepted")
}

func TestDecodeJournal(t *testing.T) {
	entry := invocation.Entry{
		Kind:     invocation.Minted,
		Amount:   500,
		Accounts: []account.Address{{4}},
	}
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, 3)

	text, err := decodeElement("J", key, entry.Pack())
	assert.Nil(t, err, "wrong decode")
	assert.Contains(t, text, `"sequence":3`, "wrong sequence")
	assert.Contains(t, text, `"amount":500`, "wrong amount")
}

func TestDecodeCounter(t *testing.T) {
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, 42)

	text, err := decodeElement("C", []byte("minted"), value)
	assert.Nil(t, err, "wrong decode")
	assert.Equal(t, `{"minted":42}`, text, "wrong counter")

	_, err = decodeElement("C", []byte("minted"), value[:3])
	assert.NotNil(t, err, "short counter accepted")
}

func TestDecodeNonce(t *testing.T) {
	address := account.Address{7, 7}
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, 9)

	text, err := decodeElement("N", address[:], value)
	assert.Nil(t, err, "wrong decode")
	assert.Equal(t, `{"`+address.String()+`":9}`, text, "wrong nonce")

	_, err = decodeElement("N", address[:3], value)
	assert.NotNil(t, err, "short address accepted")
}

func TestDecodeOther(t *testing.T) {
	text, err := decodeElement("Z", []byte("k"), []byte("abc"))
	assert.Nil(t, err, "wrong decode")
	assert.Equal(t, `"abc"`, text, "wrong text")
}

func TestPoolTags(t *testing.T) {
	tags := poolTags()
	assert.Equal(t, 5, len(tags), "wrong tag count")
	assert.Equal(t, "S", tags[0].tag, "wrong first tag")
	assert.Equal(t, "Slots", tags[0].name, "wrong first name")
	assert.Nil(t, poolByTag("Q"), "unknown tag found")
}
