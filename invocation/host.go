// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package invocation - apply instructions to stored slots all or nothing
//
// each call locks the slots it names, works on copies, and commits
// every changed slot with one journal entry in a single batch; any
// error discards all the copies
package invocation

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/allocator"
	"github.com/bitmark-inc/poolledger/chain"
	"github.com/bitmark-inc/poolledger/derivation"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/instruction"
	"github.com/bitmark-inc/poolledger/processor"
	"github.com/bitmark-inc/poolledger/provision"
	"github.com/bitmark-inc/poolledger/record"
	"github.com/bitmark-inc/poolledger/rent"
	"github.com/bitmark-inc/poolledger/transfer"
)

// Publisher - receives every entry after it is committed
type Publisher interface {
	Publish(entry *Entry)
}

// Options - settings for a host
type Options struct {
	Authority               account.Address
	Chain                   string
	SlotSize                uint64
	InstructionSet          instruction.Set
	Rent                    rent.Rent
	AllowExternalWithdrawal bool
	Publisher               Publisher // optional
}

// Host - executes instructions against the storage pools
type Host struct {
	// serialises batches and keeps readers away from uncommitted data
	sync.RWMutex

	authority account.Address
	pool      account.Address
	chain     string
	set       instruction.Set
	locks     *lockTable
	processor *processor.Processor
	publisher Publisher
	log       *logger.L
}

// New - create a host, storage must be initialised first
func New(options Options, log *logger.L) (*Host, error) {
	if !chain.Valid(options.Chain) {
		return nil, fault.ErrInvalidChain
	}
	if options.SlotSize < record.PackedSize {
		return nil, fault.ErrInvalidSlotSize
	}
	if err := options.Rent.Validate(options.SlotSize); nil != err {
		return nil, err
	}

	pool, _, err := derivation.Pool(options.Authority)
	if nil != err {
		return nil, err
	}

	if err := checkJournal(); nil != err {
		log.Criticalf("journal does not match its counter: %s", err)
		return nil, err
	}

	engine, err := transfer.New(options.Authority, transfer.Options{
		AllowExternalWithdrawal: options.AllowExternalWithdrawal,
	}, logger.New("transfer"))
	if nil != err {
		return nil, err
	}

	provisioner := provision.New(
		options.Authority,
		options.SlotSize,
		options.Rent,
		allocator.New(logger.New("allocator")),
		logger.New("provision"),
	)

	p := processor.New(options.Authority, options.InstructionSet, provisioner, engine, logger.New("processor"))

	return &Host{
		authority: options.Authority,
		pool:      pool,
		chain:     options.Chain,
		set:       options.InstructionSet,
		locks:     newLockTable(),
		processor: p,
		publisher: options.Publisher,
		log:       log,
	}, nil
}

// Authority - the managing authority
func (h *Host) Authority() account.Address {
	return h.authority
}

// PoolAddress - address of the pool slot
func (h *Host) PoolAddress() account.Address {
	return h.pool
}

// InstructionSet - tag numbering in use
func (h *Host) InstructionSet() instruction.Set {
	return h.set
}
