// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - route a decoded instruction to provisioning or transfer
//
// account order for each operation:
//
//	CreatePool        payer(signer), pool
//	CreateAccount     payer(signer), wallet
//	Deposit           wallet, pool
//	Withdraw          wallet, pool, owner(signer)
//	WithdrawExternal  wallet, recipient, owner(signer)
package processor

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/derivation"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/instruction"
	"github.com/bitmark-inc/poolledger/slot"
)

//go:generate mockgen -source=processor.go -destination=mocks/mock_processor.go -package=mocks

// Provisioner - creates records
type Provisioner interface {
	CreateWallet(payer *slot.Slot, target *slot.Slot, owner account.Address) error
	CreatePool(payer *slot.Slot, target *slot.Slot) error
}

// Transferer - moves balances
type Transferer interface {
	Deposit(amount uint64, walletSlot *slot.Slot, poolSlot *slot.Slot) error
	Withdraw(amount uint64, walletSlot *slot.Slot, poolSlot *slot.Slot) error
	WithdrawExternal(amount uint64, walletSlot *slot.Slot, recipient *slot.Slot) error
}

// Processor - the command router
type Processor struct {
	authority   account.Address
	set         instruction.Set
	provisioner Provisioner
	transferer  Transferer
	log         *logger.L
}

// New - create a processor
func New(authority account.Address, set instruction.Set, provisioner Provisioner, transferer Transferer, log *logger.L) *Processor {
	return &Processor{
		authority:   authority,
		set:         set,
		provisioner: provisioner,
		transferer:  transferer,
		log:         log,
	}
}

// Process - decode data and apply it to the slots
//
// slots may be modified even when an error is returned, the caller
// must discard them in that case
func (p *Processor) Process(slots []*slot.Slot, data []byte) error {
	instr, err := instruction.Decode(data, p.set)
	if nil != err {
		return err
	}

	p.log.Debugf("process: %s  amount: %d  accounts: %d", instr.Operation, instr.Amount, len(slots))

	switch instr.Operation {
	case instruction.CreatePool:
		if len(slots) < 2 {
			return fault.ErrNotEnoughAccounts
		}
		return p.provisioner.CreatePool(slots[0], slots[1])

	case instruction.CreateAccount:
		if len(slots) < 2 {
			return fault.ErrNotEnoughAccounts
		}
		payer := slots[0]
		if !payer.Signer {
			return fault.ErrMissingSignature
		}
		return p.provisioner.CreateWallet(payer, slots[1], payer.Address)

	case instruction.Deposit:
		if len(slots) < 2 {
			return fault.ErrNotEnoughAccounts
		}
		return p.transferer.Deposit(instr.Amount, slots[0], slots[1])

	case instruction.Withdraw:
		if len(slots) < 3 {
			return fault.ErrNotEnoughAccounts
		}
		if err := p.checkOwner(slots[0], slots[2]); nil != err {
			return err
		}
		return p.transferer.Withdraw(instr.Amount, slots[0], slots[1])

	case instruction.WithdrawExternal:
		if len(slots) < 3 {
			return fault.ErrNotEnoughAccounts
		}
		if err := p.checkOwner(slots[0], slots[2]); nil != err {
			return err
		}
		return p.transferer.WithdrawExternal(instr.Amount, slots[0], slots[1])

	default:
		return fault.ErrInvalidInstruction
	}
}

// the owner must have signed and must be the one whose address derives the wallet
func (p *Processor) checkOwner(walletSlot *slot.Slot, owner *slot.Slot) error {
	if !owner.Signer {
		return fault.ErrMissingSignature
	}
	address, _, err := derivation.Wallet(owner.Address, p.authority)
	if nil != err {
		return err
	}
	if address != walletSlot.Address {
		return fault.ErrUnauthorizedOwner
	}
	return nil
}
