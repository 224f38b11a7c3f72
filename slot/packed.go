// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package slot

import (
	"encoding/binary"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/util"
)

// Packed - the slot as stored in the database, the address is the key
//
//	owner     32 bytes
//	lamports   8 bytes big endian
//	length    varint64
//	data      length bytes
type Packed []byte

const fixedLength = account.AddressLength + 8

// Pack - convert a slot to its stored form
func (s *Slot) Pack() Packed {
	buffer := make([]byte, fixedLength, fixedLength+util.Varint64MaximumBytes+len(s.Data))
	copy(buffer, s.Owner[:])
	binary.BigEndian.PutUint64(buffer[account.AddressLength:], s.Lamports)
	buffer = util.AppendVarint64(buffer, uint64(len(s.Data)))
	return append(buffer, s.Data...)
}

// Unpack - restore a slot read from the database
func (packed Packed) Unpack(address account.Address) (*Slot, error) {
	if len(packed) < fixedLength+1 {
		return nil, fault.ErrMalformedSlot
	}

	s := &Slot{
		Address:  address,
		Lamports: binary.BigEndian.Uint64(packed[account.AddressLength:fixedLength]),
	}
	copy(s.Owner[:], packed[:account.AddressLength])

	n := fixedLength
	length, count := util.FromVarint64(packed[n:])
	if 0 == count {
		return nil, fault.ErrMalformedSlot
	}
	n += count

	if uint64(len(packed)-n) != length {
		return nil, fault.ErrMalformedSlot
	}
	if 0 != length {
		s.Data = append([]byte{}, packed[n:]...)
	}
	return s, nil
}
