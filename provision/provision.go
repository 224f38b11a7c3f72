// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package provision - create the pool and wallet slots at their derived addresses
package provision

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/derivation"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/record"
	"github.com/bitmark-inc/poolledger/rent"
	"github.com/bitmark-inc/poolledger/slot"
)

//go:generate mockgen -source=provision.go -destination=mocks/mock_allocator.go -package=mocks

// Allocator - funded allocation primitive
type Allocator interface {
	Allocate(payer *slot.Slot, target *slot.Slot, lamports uint64, size uint64, owner account.Address, proof *derivation.Proof) error
}

// Provisioner - creates records for one authority
type Provisioner struct {
	authority account.Address
	slotSize  uint64
	rent      rent.Rent
	allocator Allocator
	log       *logger.L
}

// New - create a provisioner
func New(authority account.Address, slotSize uint64, r rent.Rent, allocator Allocator, log *logger.L) *Provisioner {
	return &Provisioner{
		authority: authority,
		slotSize:  slotSize,
		rent:      r,
		allocator: allocator,
		log:       log,
	}
}

// MinimumBalance - what a payer must hold to create one slot
func (p *Provisioner) MinimumBalance() uint64 {
	return p.rent.MinimumBalance(p.slotSize)
}

// CreateWallet - create the zero balance wallet belonging to owner
func (p *Provisioner) CreateWallet(payer *slot.Slot, target *slot.Slot, owner account.Address) error {
	if payer.Lamports < p.MinimumBalance() {
		return fault.ErrInsufficientFunds
	}

	address, proof, err := derivation.WalletProof(owner, p.authority)
	if nil != err {
		return err
	}

	w := record.Wallet{}
	err = p.create(payer, target, address, proof, w.Pack())
	if nil != err {
		return err
	}

	p.log.Infof("wallet: %s  created for owner: %s", target.Address, owner)
	return nil
}

// CreatePool - create the zero balance singleton pool
func (p *Provisioner) CreatePool(payer *slot.Slot, target *slot.Slot) error {
	if payer.Lamports < p.MinimumBalance() {
		return fault.ErrInsufficientFunds
	}

	address, proof, err := derivation.PoolProof(p.authority)
	if nil != err {
		return err
	}

	pool := record.Pool{}
	err = p.create(payer, target, address, proof, pool.Pack())
	if nil != err {
		return err
	}

	p.log.Infof("pool: %s  created", target.Address)
	return nil
}

func (p *Provisioner) create(payer *slot.Slot, target *slot.Slot, address account.Address, proof *derivation.Proof, packed record.Packed) error {
	if target.Address != address {
		p.log.Debugf("target: %s  expected: %s", target.Address, address)
		return fault.ErrAddressMismatch
	}

	err := p.allocator.Allocate(payer, target, p.MinimumBalance(), p.slotSize, p.authority, proof)
	if nil != err {
		p.log.Warnf("allocate: %s  error: %s", target.Address, err)
		return fault.ErrAllocationFailed
	}

	return target.Write(packed)
}
