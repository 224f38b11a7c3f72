// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transfer - move balance between a wallet and the pool
//
// every operation decodes and validates both sides and checks that
// both new records fit before either slot is written, so a failure
// never leaves one side updated
package transfer

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/derivation"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/record"
	"github.com/bitmark-inc/poolledger/slot"
)

// Engine - transfers for one authority
type Engine struct {
	authority               account.Address
	pool                    account.Address
	allowExternalWithdrawal bool
	log                     *logger.L
}

// Options - engine settings
type Options struct {
	// wallet balance may leave the ledger to an external slot
	AllowExternalWithdrawal bool
}

// New - create an engine
func New(authority account.Address, options Options, log *logger.L) (*Engine, error) {
	pool, _, err := derivation.Pool(authority)
	if nil != err {
		return nil, err
	}
	return &Engine{
		authority:               authority,
		pool:                    pool,
		allowExternalWithdrawal: options.AllowExternalWithdrawal,
		log:                     log,
	}, nil
}

// Deposit - move amount from the pool to the wallet
func (e *Engine) Deposit(amount uint64, walletSlot *slot.Slot, poolSlot *slot.Slot) error {
	w, p, err := e.load(walletSlot, poolSlot)
	if nil != err {
		return err
	}

	if p.TotalBalance < amount {
		return fault.ErrInsufficientFunds
	}
	balance, err := add(w.Balance, amount)
	if nil != err {
		return err
	}
	w.Balance = balance
	p.TotalBalance -= amount

	err = writePair(walletSlot, w.Pack(), poolSlot, p.Pack())
	if nil != err {
		return err
	}

	e.log.Infof("deposit: %d  wallet: %s  balance: %d  pool: %d", amount, walletSlot.Address, w.Balance, p.TotalBalance)
	return nil
}

// Withdraw - move amount from the wallet back to the pool
func (e *Engine) Withdraw(amount uint64, walletSlot *slot.Slot, poolSlot *slot.Slot) error {
	w, p, err := e.load(walletSlot, poolSlot)
	if nil != err {
		return err
	}

	if w.Balance < amount {
		return fault.ErrInsufficientFunds
	}
	total, err := add(p.TotalBalance, amount)
	if nil != err {
		return err
	}
	w.Balance -= amount
	p.TotalBalance = total

	err = writePair(walletSlot, w.Pack(), poolSlot, p.Pack())
	if nil != err {
		return err
	}

	e.log.Infof("withdraw: %d  wallet: %s  balance: %d  pool: %d", amount, walletSlot.Address, w.Balance, p.TotalBalance)
	return nil
}

// WithdrawExternal - move amount out of the wallet into the lamports of an external slot
//
// the amount leaves the wallet and pool total, it is no longer tracked
func (e *Engine) WithdrawExternal(amount uint64, walletSlot *slot.Slot, recipient *slot.Slot) error {
	if !e.allowExternalWithdrawal {
		return fault.ErrExternalWithdrawalDisabled
	}

	if !walletSlot.OwnedBy(e.authority) {
		return fault.ErrUnauthorizedOwner
	}
	if walletSlot.Address == recipient.Address {
		return fault.ErrDuplicateSlot
	}
	if walletSlot.Address == e.pool || recipient.Address == e.pool {
		return fault.ErrAddressMismatch
	}

	w, err := record.UnpackWallet(walletSlot.Data)
	if nil != err {
		return err
	}

	if w.Balance < amount {
		return fault.ErrInsufficientFunds
	}
	lamports, err := add(recipient.Lamports, amount)
	if nil != err {
		return err
	}
	w.Balance -= amount

	packed := w.Pack()
	if err := walletSlot.CheckCapacity(len(packed)); nil != err {
		return err
	}
	_ = walletSlot.Write(packed)
	recipient.Lamports = lamports

	e.log.Warnf("external withdraw: %d  wallet: %s  balance: %d  to: %s  leaves the ledger", amount, walletSlot.Address, w.Balance, recipient.Address)
	return nil
}

// validate ownership and placement then decode both records
func (e *Engine) load(walletSlot *slot.Slot, poolSlot *slot.Slot) (*record.Wallet, *record.Pool, error) {
	if !walletSlot.OwnedBy(e.authority) || !poolSlot.OwnedBy(e.authority) {
		return nil, nil, fault.ErrUnauthorizedOwner
	}
	if walletSlot.Address == poolSlot.Address {
		return nil, nil, fault.ErrDuplicateSlot
	}
	if poolSlot.Address != e.pool {
		return nil, nil, fault.ErrAddressMismatch
	}

	w, err := record.UnpackWallet(walletSlot.Data)
	if nil != err {
		return nil, nil, err
	}
	p, err := record.UnpackPool(poolSlot.Data)
	if nil != err {
		return nil, nil, err
	}
	return w, p, nil
}

// both capacities are checked before anything is written
func writePair(first *slot.Slot, firstPacked record.Packed, second *slot.Slot, secondPacked record.Packed) error {
	if err := first.CheckCapacity(len(firstPacked)); nil != err {
		return err
	}
	if err := second.CheckCapacity(len(secondPacked)); nil != err {
		return err
	}

	// cannot fail after the checks above
	_ = first.Write(firstPacked)
	_ = second.Write(secondPacked)
	return nil
}

func add(a uint64, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, fault.ErrBalanceOverflow
	}
	return sum, nil
}
