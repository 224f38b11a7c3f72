// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package invocation

import (
	"time"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/chain"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/record"
	"github.com/bitmark-inc/poolledger/slot"
)

// Mint - add to the pool total balance
//
// only on testing chains, this is how the pool gets its initial balance
func (h *Host) Mint(amount uint64) (uint64, error) {
	if !chain.IsTesting(h.chain) {
		return 0, fault.ErrNotAvailableOnLive
	}

	unlock := h.locks.lock([]account.Address{h.pool})
	defer unlock()

	s, err := h.load(h.pool)
	if nil != err {
		return 0, err
	}
	if !s.OwnedBy(h.authority) {
		return 0, fault.ErrNotInitialised
	}

	p, err := record.UnpackPool(s.Data)
	if nil != err {
		return 0, err
	}
	total := p.TotalBalance + amount
	if total < p.TotalBalance {
		return 0, fault.ErrBalanceOverflow
	}
	p.TotalBalance = total
	if err := s.Write(p.Pack()); nil != err {
		return 0, err
	}

	entry := &Entry{
		Kind:      Minted,
		Timestamp: time.Now(),
		Amount:    amount,
		Accounts:  []account.Address{h.pool},
	}
	counters := []counterUpdate{{key: mintedCounterKey, amount: amount}}

	sequence, err := h.commit([]*slot.Slot{s}, entry, counters, nil)
	if nil != err {
		return 0, err
	}

	h.log.Warnf("mint: %d  pool total: %d  sequence: %d", amount, total, sequence)
	return total, nil
}

// Fund - add lamports to any slot so it can pay for allocations
//
// only on testing chains
func (h *Host) Fund(address account.Address, amount uint64) (uint64, error) {
	if !chain.IsTesting(h.chain) {
		return 0, fault.ErrNotAvailableOnLive
	}

	unlock := h.locks.lock([]account.Address{address})
	defer unlock()

	s, err := h.load(address)
	if nil != err {
		return 0, err
	}

	lamports := s.Lamports + amount
	if lamports < s.Lamports {
		return 0, fault.ErrBalanceOverflow
	}
	s.Lamports = lamports

	entry := &Entry{
		Kind:      Funded,
		Timestamp: time.Now(),
		Amount:    amount,
		Accounts:  []account.Address{address},
	}
	counters := []counterUpdate{{key: fundedCounterKey, amount: amount}}

	sequence, err := h.commit([]*slot.Slot{s}, entry, counters, nil)
	if nil != err {
		return 0, err
	}

	h.log.Infof("fund: %s  amount: %d  lamports: %d  sequence: %d", address, amount, lamports, sequence)
	return lamports, nil
}
