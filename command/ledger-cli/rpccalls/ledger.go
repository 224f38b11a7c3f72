// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/invocation"
	"github.com/bitmark-inc/poolledger/rpc/ledger"
)

// Derive - pool and wallet addresses for an owner
func (client *Client) Derive(owner account.Address) (*ledger.DeriveReply, error) {
	deriveArgs := ledger.DeriveArguments{
		Owner: owner,
	}

	client.printJson("Derive Request", deriveArgs)

	reply := &ledger.DeriveReply{}
	if err := client.client.Call("Ledger.Derive", deriveArgs, reply); nil != err {
		return nil, err
	}

	client.printJson("Derive Reply", reply)

	return reply, nil
}

// Nonce - last nonce the ledger accepted from a signer
func (client *Client) Nonce(signer account.Address) (uint64, error) {
	reply := &ledger.NonceReply{}
	if err := client.client.Call("Ledger.Nonce", ledger.NonceArguments{Signer: signer}, reply); nil != err {
		return 0, err
	}
	return reply.Nonce, nil
}

// Balance - wallet record of an owner
func (client *Client) Balance(owner account.Address) (*ledger.BalanceReply, error) {
	balanceArgs := ledger.BalanceArguments{
		Owner: owner,
	}

	client.printJson("Balance Request", balanceArgs)

	reply := &ledger.BalanceReply{}
	if err := client.client.Call("Ledger.Balance", balanceArgs, reply); nil != err {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return reply, nil
}

// Pool - the pool record
func (client *Client) Pool() (*ledger.PoolReply, error) {
	reply := &ledger.PoolReply{}
	if err := client.client.Call("Ledger.Pool", ledger.PoolArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Audit - totals over every record
func (client *Client) Audit() (*invocation.Audit, error) {
	reply := &invocation.Audit{}
	if err := client.client.Call("Ledger.Audit", ledger.AuditArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Journal - a page of committed changes
func (client *Client) Journal(start uint64, count int) (*ledger.JournalReply, error) {
	journalArgs := ledger.JournalArguments{
		Start: start,
		Count: count,
	}

	client.printJson("Journal Request", journalArgs)

	reply := &ledger.JournalReply{}
	if err := client.client.Call("Ledger.Journal", journalArgs, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Fund - credit an external slot on a testing chain
func (client *Client) Fund(address account.Address, amount uint64) (*ledger.FundReply, error) {
	fundArgs := ledger.FundArguments{
		Address: address,
		Amount:  amount,
	}

	client.printJson("Fund Request", fundArgs)

	reply := &ledger.FundReply{}
	if err := client.client.Call("Ledger.Fund", fundArgs, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Mint - add to the pool record on a testing chain
func (client *Client) Mint(amount uint64) (*ledger.MintReply, error) {
	mintArgs := ledger.MintArguments{
		Amount: amount,
	}

	client.printJson("Mint Request", mintArgs)

	reply := &ledger.MintReply{}
	if err := client.client.Call("Ledger.Mint", mintArgs, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
