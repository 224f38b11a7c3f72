// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package invocation_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/chain"
	"github.com/bitmark-inc/poolledger/counter"
	"github.com/bitmark-inc/poolledger/derivation"
	"github.com/bitmark-inc/poolledger/instruction"
	"github.com/bitmark-inc/poolledger/invocation"
	"github.com/bitmark-inc/poolledger/rent"
	"github.com/bitmark-inc/poolledger/slot"
	"github.com/bitmark-inc/poolledger/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
	category         = "testing"
)

func TestMain(m *testing.M) {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	result := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(result)
}

type fixture struct {
	host      *invocation.Host
	authority account.Address
	payer     *account.PrivateKey
	pool      account.Address
	wallet    account.Address
	set       instruction.Set
	nonce     counter.Counter
}

func defaultOptions() invocation.Options {
	key, err := account.NewPrivateKey()
	if nil != err {
		panic(err)
	}
	return invocation.Options{
		Authority:      key.Address(),
		Chain:          chain.Testing,
		SlotSize:       slot.DefaultSize,
		InstructionSet: instruction.Standard,
		Rent:           rent.Default(),
	}
}

func setup(t *testing.T, options invocation.Options) *fixture {
	os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	host, err := invocation.New(options, logger.New(category))
	if nil != err {
		t.Fatalf("host error: %s", err)
	}

	payer, err := account.NewPrivateKey()
	if nil != err {
		t.Fatalf("key error: %s", err)
	}

	pool, _, _ := derivation.Pool(options.Authority)
	wallet, _, _ := derivation.Wallet(payer.Address(), options.Authority)

	return &fixture{
		host:      host,
		authority: options.Authority,
		payer:     payer,
		pool:      pool,
		wallet:    wallet,
		set:       options.InstructionSet,
	}
}

func teardown() {
	storage.Finalise()
	os.RemoveAll(databaseFileName)
}

func (f *fixture) request(t *testing.T, op instruction.Operation, amount uint64, accounts ...account.Address) *invocation.Request {
	data, err := (&instruction.Instruction{Operation: op, Amount: amount}).Pack(f.set)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	return &invocation.Request{
		Instruction: data,
		Accounts:    accounts,
		Nonce:       f.nonce.Increment(),
	}
}

// fund the payer, create and mint the pool, create the payer's wallet
func (f *fixture) initialise(t *testing.T, minted uint64) {
	if _, err := f.host.Fund(f.payer.Address(), 10000000); nil != err {
		t.Fatalf("fund error: %s", err)
	}

	r := f.request(t, instruction.CreatePool, 0, f.payer.Address(), f.pool)
	r.Sign(f.payer)
	if _, err := f.host.Execute(r); nil != err {
		t.Fatalf("create pool error: %s", err)
	}

	if 0 != minted {
		if _, err := f.host.Mint(minted); nil != err {
			t.Fatalf("mint error: %s", err)
		}
	}

	r = f.request(t, instruction.CreateAccount, 0, f.payer.Address(), f.wallet)
	r.Sign(f.payer)
	if _, err := f.host.Execute(r); nil != err {
		t.Fatalf("create account error: %s", err)
	}
}

func (f *fixture) balances(t *testing.T) (uint64, uint64) {
	_, w, err := f.host.Wallet(f.payer.Address())
	if nil != err {
		t.Fatalf("wallet error: %s", err)
	}
	p, err := f.host.Pool()
	if nil != err {
		t.Fatalf("pool error: %s", err)
	}
	return w.Balance, p.TotalBalance
}
