// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package slot - address indexed storage buffers
//
// a slot owned by the authority has a fixed capacity data area that
// holds exactly one record; a slot with no owner and no data only
// carries lamports (payers and withdrawal recipients)
package slot

import (
	"bytes"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/fault"
)

// DefaultSize - capacity of a record slot
const DefaultSize = 128

// Slot - one storage slot as seen during a single invocation
type Slot struct {
	Address  account.Address `json:"address"`
	Owner    account.Address `json:"owner"`
	Lamports uint64          `json:"lamports"`
	Data     []byte          `json:"data"`
	Signer   bool            `json:"-"`
}

// New - an unoccupied slot at an address
func New(address account.Address) *Slot {
	return &Slot{
		Address: address,
	}
}

// IsAllocated - true once the allocator has given the slot an owner and data
func (s *Slot) IsAllocated() bool {
	return !s.Owner.IsZero() || 0 != len(s.Data)
}

// IsExternal - a plain balance holder
func (s *Slot) IsExternal() bool {
	return !s.IsAllocated()
}

// OwnedBy - check the slot owner
func (s *Slot) OwnedBy(owner account.Address) bool {
	return s.Owner == owner
}

// Capacity - size of the data area
func (s *Slot) Capacity() int {
	return len(s.Data)
}

// CheckCapacity - will a buffer of this size fit
func (s *Slot) CheckCapacity(size int) error {
	if size > len(s.Data) {
		return fault.ErrSlotTooSmall
	}
	return nil
}

// Write - replace the leading bytes of the data area
//
// bytes beyond len(buffer) are left unchanged
func (s *Slot) Write(buffer []byte) error {
	if err := s.CheckCapacity(len(buffer)); nil != err {
		return err
	}
	copy(s.Data, buffer)
	return nil
}

// Clone - deep copy so a failed invocation can be discarded
func (s *Slot) Clone() *Slot {
	c := *s
	if nil != s.Data {
		c.Data = append([]byte{}, s.Data...)
	}
	return &c
}

// Equal - same persisted state, the signer flag is ignored
func (s *Slot) Equal(other *Slot) bool {
	return s.Address == other.Address &&
		s.Owner == other.Owner &&
		s.Lamports == other.Lamports &&
		bytes.Equal(s.Data, other.Data)
}
