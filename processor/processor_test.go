// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/derivation"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/instruction"
	"github.com/bitmark-inc/poolledger/processor"
	"github.com/bitmark-inc/poolledger/processor/mocks"
	"github.com/bitmark-inc/poolledger/slot"
)

type fixture struct {
	ctl         *gomock.Controller
	provisioner *mocks.MockProvisioner
	transferer  *mocks.MockTransferer
	processor   *processor.Processor
	authority   account.Address
	owner       *slot.Slot
	wallet      *slot.Slot
	pool        *slot.Slot
}

func newFixture(t *testing.T, set instruction.Set) *fixture {
	ctl := gomock.NewController(t)
	provisioner := mocks.NewMockProvisioner(ctl)
	transferer := mocks.NewMockTransferer(ctl)

	authorityKey, _ := account.NewPrivateKey()
	ownerKey, _ := account.NewPrivateKey()
	authority := authorityKey.Address()

	walletAddress, _, _ := derivation.Wallet(ownerKey.Address(), authority)
	poolAddress, _, _ := derivation.Pool(authority)

	return &fixture{
		ctl:         ctl,
		provisioner: provisioner,
		transferer:  transferer,
		processor:   processor.New(authority, set, provisioner, transferer, logger.New(category)),
		authority:   authority,
		owner:       &slot.Slot{Address: ownerKey.Address(), Signer: true},
		wallet:      slot.New(walletAddress),
		pool:        slot.New(poolAddress),
	}
}

func TestCreatePool(t *testing.T) {
	f := newFixture(t, instruction.Standard)
	defer f.ctl.Finish()

	f.provisioner.EXPECT().CreatePool(f.owner, f.pool).Return(nil).Times(1)

	err := f.processor.Process([]*slot.Slot{f.owner, f.pool}, []byte{3})
	assert.Nil(t, err, "create pool")
}

func TestCreateAccount(t *testing.T) {
	f := newFixture(t, instruction.Extended)
	defer f.ctl.Finish()

	f.provisioner.EXPECT().CreateWallet(f.owner, f.wallet, f.owner.Address).Return(nil).Times(1)

	err := f.processor.Process([]*slot.Slot{f.owner, f.wallet}, []byte{1})
	assert.Nil(t, err, "create account")

	f.owner.Signer = false
	err = f.processor.Process([]*slot.Slot{f.owner, f.wallet}, []byte{1})
	assert.Equal(t, fault.ErrMissingSignature, err, "unsigned payer")
}

func TestDeposit(t *testing.T) {
	f := newFixture(t, instruction.Standard)
	defer f.ctl.Finish()

	f.transferer.EXPECT().Deposit(uint64(30), f.wallet, f.pool).Return(nil).Times(1)
	f.transferer.EXPECT().Deposit(uint64(10), f.wallet, f.pool).Return(fault.ErrInsufficientFunds).Times(1)

	err := f.processor.Process([]*slot.Slot{f.wallet, f.pool}, []byte{1, 30, 0, 0, 0, 0, 0, 0, 0})
	assert.Nil(t, err, "deposit")

	err = f.processor.Process([]*slot.Slot{f.wallet, f.pool}, []byte{1, 10, 0, 0, 0, 0, 0, 0, 0})
	assert.Equal(t, fault.ErrInsufficientFunds, err, "error passed through")
}

func TestWithdraw(t *testing.T) {
	f := newFixture(t, instruction.Standard)
	defer f.ctl.Finish()

	f.transferer.EXPECT().Withdraw(uint64(5), f.wallet, f.pool).Return(nil).Times(1)

	err := f.processor.Process([]*slot.Slot{f.wallet, f.pool, f.owner}, []byte{2, 5, 0, 0, 0, 0, 0, 0, 0})
	assert.Nil(t, err, "withdraw")
}

func TestWithdrawOwnerChecks(t *testing.T) {
	f := newFixture(t, instruction.Standard)
	defer f.ctl.Finish()

	f.transferer.EXPECT().Withdraw(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.transferer.EXPECT().WithdrawExternal(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	data := []byte{2, 5, 0, 0, 0, 0, 0, 0, 0}

	err := f.processor.Process([]*slot.Slot{f.wallet, f.pool}, data)
	assert.Equal(t, fault.ErrNotEnoughAccounts, err, "no owner")

	stranger := &slot.Slot{Address: account.Address{1, 2, 3}, Signer: true}
	err = f.processor.Process([]*slot.Slot{f.wallet, f.pool, stranger}, data)
	assert.Equal(t, fault.ErrUnauthorizedOwner, err, "someone else")

	f.owner.Signer = false
	err = f.processor.Process([]*slot.Slot{f.wallet, f.pool, f.owner}, data)
	assert.Equal(t, fault.ErrMissingSignature, err, "unsigned")

	err = f.processor.Process([]*slot.Slot{f.wallet, f.owner, f.owner}, []byte{4, 1, 0, 0, 0, 0, 0, 0, 0})
	assert.Equal(t, fault.ErrMissingSignature, err, "external unsigned")
}

func TestWithdrawExternal(t *testing.T) {
	f := newFixture(t, instruction.Extended)
	defer f.ctl.Finish()

	f.transferer.EXPECT().WithdrawExternal(uint64(1), f.wallet, f.owner).Return(nil).Times(1)

	err := f.processor.Process([]*slot.Slot{f.wallet, f.owner, f.owner}, []byte{4, 1, 0, 0, 0, 0, 0, 0, 0})
	assert.Nil(t, err, "to the owner")
}

func TestProcessErrors(t *testing.T) {
	f := newFixture(t, instruction.Standard)
	defer f.ctl.Finish()

	err := f.processor.Process([]*slot.Slot{f.wallet, f.pool}, nil)
	assert.Equal(t, fault.ErrInvalidInstruction, err, "empty")

	err = f.processor.Process([]*slot.Slot{f.wallet, f.pool}, []byte{9})
	assert.Equal(t, fault.ErrInvalidInstruction, err, "unknown tag")

	err = f.processor.Process([]*slot.Slot{f.wallet}, []byte{1, 0, 0, 0, 0, 0, 0, 0, 0})
	assert.Equal(t, fault.ErrNotEnoughAccounts, err, "deposit")

	err = f.processor.Process([]*slot.Slot{f.owner}, []byte{0})
	assert.Equal(t, fault.ErrNotEnoughAccounts, err, "create account")

	err = f.processor.Process(nil, []byte{3})
	assert.Equal(t, fault.ErrNotEnoughAccounts, err, "create pool")
}
