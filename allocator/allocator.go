// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package allocator - materialise a funded slot at a derived address
package allocator

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/derivation"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/slot"
)

// System - the host allocation primitive
type System struct {
	log *logger.L
}

// New - create an allocator
func New(log *logger.L) *System {
	return &System{
		log: log,
	}
}

// Allocate - move lamports from payer to target and give target an owner and data area
//
// the target address cannot sign, the proof stands in for its signature
func (s *System) Allocate(payer *slot.Slot, target *slot.Slot, lamports uint64, size uint64, owner account.Address, proof *derivation.Proof) error {
	if !payer.Signer {
		s.log.Warnf("allocate: payer: %s did not sign", payer.Address)
		return fault.ErrMissingSignature
	}

	if err := proof.Verify(owner, target.Address); nil != err {
		s.log.Warnf("allocate: target: %s proof error: %s", target.Address, err)
		return err
	}

	if target.IsAllocated() {
		s.log.Debugf("allocate: target: %s already in use", target.Address)
		return fault.ErrSlotAlreadyInUse
	}

	if payer.Address == target.Address {
		return fault.ErrDuplicateSlot
	}

	if payer.Lamports < lamports {
		return fault.ErrInsufficientFunds
	}

	// a target that already received lamports keeps them
	total := target.Lamports + lamports
	if total < target.Lamports {
		return fault.ErrBalanceOverflow
	}

	payer.Lamports -= lamports
	target.Lamports = total
	target.Owner = owner
	target.Data = make([]byte, size)

	s.log.Infof("allocate: target: %s  size: %d  funded: %d  from: %s", target.Address, size, lamports, payer.Address)
	return nil
}
