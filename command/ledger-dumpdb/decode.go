// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/invocation"
	"github.com/bitmark-inc/poolledger/record"
	"github.com/bitmark-inc/poolledger/slot"
)

type decodedSlot struct {
	Slot   *slot.Slot  `json:"slot"`
	Kind   string      `json:"kind"`
	Record interface{} `json:"record,omitempty"`
}

// render a stored value as JSON according to its pool tag
func decodeElement(tag string, key []byte, value []byte) (string, error) {
	var item interface{}

	switch tag {
	case "S":
		address, err := account.AddressFromBytes(key)
		if nil != err {
			return "", err
		}
		s, err := slot.Packed(value).Unpack(address)
		if nil != err {
			return "", err
		}
		d := decodedSlot{
			Slot: s,
			Kind: record.KindOf(s.Data).String(),
		}
		switch record.KindOf(s.Data) {
		case record.KindWallet:
			d.Record, err = record.UnpackWallet(s.Data)
		case record.KindPool:
			d.Record, err = record.UnpackPool(s.Data)
		}
		if nil != err {
			return "", err
		}
		item = d

	case "J":
		entry, err := invocation.UnpackEntry(key, value)
		if nil != err {
			return "", err
		}
		item = entry

	case "C":
		if len(value) < 8 {
			return "", fault.ErrMalformedRecord
		}
		item = map[string]uint64{
			string(key): binary.BigEndian.Uint64(value[:8]),
		}

	case "N":
		address, err := account.AddressFromBytes(key)
		if nil != err {
			return "", err
		}
		if len(value) < 8 {
			return "", fault.ErrMalformedRecord
		}
		item = map[string]uint64{
			address.String(): binary.BigEndian.Uint64(value[:8]),
		}

	default:
		return fmt.Sprintf("%q", value), nil
	}

	b, err := json.Marshal(item)
	if nil != err {
		return "", err
	}
	return string(b), nil
}
