// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package invocation

import (
	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/derivation"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/record"
	"github.com/bitmark-inc/poolledger/slot"
	"github.com/bitmark-inc/poolledger/storage"
)

// Audit - totals over every record slot
type Audit struct {
	Wallets           uint64 `json:"wallets"`
	WalletTotal       uint64 `json:"walletTotal"`
	PoolTotal         uint64 `json:"poolTotal"`
	Total             uint64 `json:"total"`
	Minted            uint64 `json:"minted"`
	ExternalWithdrawn uint64 `json:"externalWithdrawn"`
	Balanced          bool   `json:"balanced"`
}

// Slot - committed state of a slot
func (h *Host) Slot(address account.Address) (*slot.Slot, error) {
	h.RLock()
	defer h.RUnlock()

	packed := storage.Pool.Slots.Get(address[:])
	if nil == packed {
		return nil, fault.ErrSlotNotFound
	}
	return slot.Packed(packed).Unpack(address)
}

// Wallet - the wallet record of an owner and its address
func (h *Host) Wallet(owner account.Address) (account.Address, *record.Wallet, error) {
	address, _, err := derivation.Wallet(owner, h.authority)
	if nil != err {
		return address, nil, err
	}

	s, err := h.Slot(address)
	if nil != err {
		return address, nil, err
	}
	if !s.OwnedBy(h.authority) {
		return address, nil, fault.ErrUnauthorizedOwner
	}

	w, err := record.UnpackWallet(s.Data)
	return address, w, err
}

// Pool - the pool record
func (h *Host) Pool() (*record.Pool, error) {
	s, err := h.Slot(h.pool)
	if nil != err {
		return nil, err
	}
	if !s.OwnedBy(h.authority) {
		return nil, fault.ErrUnauthorizedOwner
	}
	return record.UnpackPool(s.Data)
}

// Audit - sum every wallet and the pool
//
// balanced when the total equals everything minted less everything
// withdrawn to external slots
func (h *Host) Audit() (*Audit, error) {
	h.RLock()
	defer h.RUnlock()

	audit := &Audit{}

	err := storage.Pool.Slots.NewFetchCursor().Map(func(key []byte, value []byte) error {
		address, err := account.AddressFromBytes(key)
		if nil != err {
			return err
		}
		s, err := slot.Packed(value).Unpack(address)
		if nil != err {
			return err
		}
		if !s.OwnedBy(h.authority) {
			return nil
		}

		if address == h.pool {
			p, err := record.UnpackPool(s.Data)
			if nil != err {
				return err
			}
			audit.PoolTotal = p.TotalBalance
			return nil
		}

		w, err := record.UnpackWallet(s.Data)
		if nil != err {
			return err
		}
		total := audit.WalletTotal + w.Balance
		if total < audit.WalletTotal {
			return fault.ErrBalanceOverflow
		}
		audit.WalletTotal = total
		audit.Wallets += 1
		return nil
	})
	if nil != err {
		return nil, err
	}

	audit.Total = audit.WalletTotal + audit.PoolTotal
	if audit.Total < audit.WalletTotal {
		return nil, fault.ErrBalanceOverflow
	}

	audit.Minted, _ = storage.Pool.Counters.GetN(mintedCounterKey)
	audit.ExternalWithdrawn, _ = storage.Pool.Counters.GetN(extractedCounterKey)
	audit.Balanced = audit.Minted >= audit.ExternalWithdrawn &&
		audit.Total == audit.Minted-audit.ExternalWithdrawn

	return audit, nil
}
