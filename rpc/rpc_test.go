// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"encoding/hex"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/chain"
	"github.com/bitmark-inc/poolledger/derivation"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/instruction"
	"github.com/bitmark-inc/poolledger/invocation"
	"github.com/bitmark-inc/poolledger/mode"
	"github.com/bitmark-inc/poolledger/rent"
	"github.com/bitmark-inc/poolledger/rpc"
	"github.com/bitmark-inc/poolledger/rpc/fixtures"
	"github.com/bitmark-inc/poolledger/rpc/ledger"
	"github.com/bitmark-inc/poolledger/rpc/listeners"
	"github.com/bitmark-inc/poolledger/rpc/node"
	"github.com/bitmark-inc/poolledger/slot"
	"github.com/bitmark-inc/poolledger/storage"
)

const databaseFileName = "rpc-test.leveldb"

func pack(t *testing.T, op instruction.Operation, amount uint64) string {
	data, err := (&instruction.Instruction{Operation: op, Amount: amount}).Pack(instruction.Standard)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	return hex.EncodeToString(data)
}

// sign the same message the host verifies
func sign(key *account.PrivateKey, arguments *ledger.ExecuteArguments) {
	data, _ := hex.DecodeString(arguments.Instruction)
	request := invocation.Request{
		Instruction: data,
		Accounts:    arguments.Accounts,
		Nonce:       arguments.Nonce,
	}
	request.Sign(key)
	arguments.Signatures = request.Signatures
}

func TestServeLedger(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	defer func() {
		storage.Finalise()
		_ = os.RemoveAll(databaseFileName)
	}()

	err = mode.Initialise(chain.Local)
	if nil != err {
		t.Fatalf("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	authorityKey, _ := account.NewPrivateKey()
	host, err := invocation.New(invocation.Options{
		Authority:      authorityKey.Address(),
		Chain:          chain.Local,
		SlotSize:       slot.DefaultSize,
		InstructionSet: instruction.Standard,
		Rent:           rent.Default(),
	}, logger.New(fixtures.LogCategory))
	if nil != err {
		t.Fatalf("host error: %s", err)
	}

	cer, key, err := fixtures.CertificatePair()
	if nil != err {
		t.Fatalf("certificate generation error: %s", err)
	}
	configuration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        cer,
		PrivateKey:         key,
	}
	err = rpc.Initialise(&configuration, host, "test")
	if nil != err {
		t.Fatalf("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	assert.Equal(t, fault.ErrAlreadyInitialised, rpc.Initialise(&configuration, host, "test"), "second initialise")

	conn, err := tls.Dial("tcp", rpc.Addresses()[0], &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)
	defer client.Close()

	payer, _ := account.NewPrivateKey()
	pool, _, _ := derivation.Pool(authorityKey.Address())
	wallet, _, _ := derivation.Wallet(payer.Address(), authorityKey.Address())

	// still starting
	var fund ledger.FundReply
	err = client.Call("Ledger.Fund", &ledger.FundArguments{Address: payer.Address(), Amount: 10000000}, &fund)
	assert.NotNil(t, err, "fund while starting")
	assert.Equal(t, fault.ErrServiceNotReady.Error(), err.Error(), "wrong error")

	assert.Nil(t, mode.Set(mode.Normal), "set normal")

	err = client.Call("Ledger.Fund", &ledger.FundArguments{Address: payer.Address(), Amount: 10000000}, &fund)
	assert.Nil(t, err, "fund")
	assert.Equal(t, uint64(10000000), fund.Lamports, "wrong lamports")

	createPool := ledger.ExecuteArguments{
		Instruction: pack(t, instruction.CreatePool, 0),
		Accounts:    []account.Address{payer.Address(), pool},
		Nonce:       1,
	}
	sign(payer, &createPool)
	var reply ledger.ExecuteReply
	err = client.Call("Ledger.Execute", &createPool, &reply)
	assert.Nil(t, err, "create pool")
	assert.Equal(t, instruction.CreatePool, reply.Operation, "wrong operation")

	var mint ledger.MintReply
	err = client.Call("Ledger.Mint", &ledger.MintArguments{Amount: 100}, &mint)
	assert.Nil(t, err, "mint")
	assert.Equal(t, uint64(100), mint.TotalBalance, "wrong minted total")

	createAccount := ledger.ExecuteArguments{
		Instruction: pack(t, instruction.CreateAccount, 0),
		Accounts:    []account.Address{payer.Address(), wallet},
		Nonce:       2,
	}
	sign(payer, &createAccount)
	err = client.Call("Ledger.Execute", &createAccount, &reply)
	assert.Nil(t, err, "create account")

	// the same signed request a second time
	err = client.Call("Ledger.Execute", &createAccount, &reply)
	assert.NotNil(t, err, "replay accepted")
	assert.Equal(t, fault.ErrNonceAlreadyUsed.Error(), err.Error(), "wrong error")

	var nonce ledger.NonceReply
	err = client.Call("Ledger.Nonce", &ledger.NonceArguments{Signer: payer.Address()}, &nonce)
	assert.Nil(t, err, "nonce")
	assert.Equal(t, uint64(2), nonce.Nonce, "wrong nonce")

	deposit := ledger.ExecuteArguments{
		Instruction: pack(t, instruction.Deposit, 30),
		Accounts:    []account.Address{wallet, pool},
	}
	err = client.Call("Ledger.Execute", &deposit, &reply)
	assert.Nil(t, err, "deposit")
	assert.Equal(t, []account.Address{wallet, pool}, reply.Changed, "wrong changed slots")

	var balance ledger.BalanceReply
	err = client.Call("Ledger.Balance", &ledger.BalanceArguments{Owner: payer.Address()}, &balance)
	assert.Nil(t, err, "balance")
	assert.Equal(t, wallet, balance.Wallet, "wrong wallet")
	assert.Equal(t, uint64(30), balance.Balance, "wrong balance")

	var p ledger.PoolReply
	err = client.Call("Ledger.Pool", &ledger.PoolArguments{}, &p)
	assert.Nil(t, err, "pool")
	assert.Equal(t, pool, p.Address, "wrong pool")
	assert.Equal(t, uint64(70), p.TotalBalance, "wrong pool total")

	var audit invocation.Audit
	err = client.Call("Ledger.Audit", &ledger.AuditArguments{}, &audit)
	assert.Nil(t, err, "audit")
	assert.True(t, audit.Balanced, "audit not balanced: %+v", audit)
	assert.Equal(t, uint64(100), audit.Total, "wrong audit total")

	var journal ledger.JournalReply
	err = client.Call("Ledger.Journal", &ledger.JournalArguments{Start: 1, Count: 10}, &journal)
	assert.Nil(t, err, "journal")
	assert.Equal(t, 5, len(journal.Entries), "wrong journal length")
	assert.Equal(t, invocation.Funded, journal.Entries[0].Kind, "wrong first entry")
	assert.Equal(t, uint64(6), journal.NextStart, "wrong next start")

	// failed instructions return the error text and change nothing
	withdraw := ledger.ExecuteArguments{
		Instruction: pack(t, instruction.Withdraw, 31),
		Accounts:    []account.Address{wallet, pool, payer.Address()},
		Nonce:       3,
	}
	sign(payer, &withdraw)
	err = client.Call("Ledger.Execute", &withdraw, &reply)
	assert.NotNil(t, err, "overdraw accepted")
	assert.Equal(t, fault.ErrInsufficientFunds.Error(), err.Error(), "wrong error")

	var info node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &info)
	assert.Nil(t, err, "info")
	assert.Equal(t, chain.Local, info.Chain, "wrong chain")
	assert.Equal(t, "Normal", info.Mode, "wrong mode")
	assert.Equal(t, authorityKey.Address(), info.Authority, "wrong authority")
	assert.Equal(t, pool, info.Pool, "wrong pool")
	assert.Equal(t, "standard", info.InstructionSet, "wrong instruction set")
	assert.Equal(t, uint64(5), info.Journal, "wrong journal length")
	assert.Equal(t, uint64(1), info.RPCs, "wrong connection count")
	assert.Equal(t, "test", info.Version, "wrong version")
}
