// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/command/ledger-cli/rpccalls"
	"github.com/bitmark-inc/poolledger/instruction"
)

// run one instruction; the pool and wallet addresses are obtained from ledgerd
func execute(c *cli.Context, build func(*rpccalls.Client) (*rpccalls.ExecuteData, error)) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.fingerprint, m.set, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	executeConfig, err := build(client)
	if nil != err {
		return err
	}

	response, err := client.Execute(executeConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runCreatePool(c *cli.Context) error {
	payer, err := signingKey(c)
	if nil != err {
		return err
	}

	return execute(c, func(client *rpccalls.Client) (*rpccalls.ExecuteData, error) {
		addresses, err := client.Derive(account.Address{})
		if nil != err {
			return nil, err
		}
		return &rpccalls.ExecuteData{
			Operation: instruction.CreatePool,
			Accounts:  []account.Address{payer.Address(), addresses.Pool},
			Signers:   []*account.PrivateKey{payer},
		}, nil
	})
}

func runCreateWallet(c *cli.Context) error {
	payer, err := signingKey(c)
	if nil != err {
		return err
	}

	return execute(c, func(client *rpccalls.Client) (*rpccalls.ExecuteData, error) {
		addresses, err := client.Derive(payer.Address())
		if nil != err {
			return nil, err
		}
		return &rpccalls.ExecuteData{
			Operation: instruction.CreateAccount,
			Accounts:  []account.Address{payer.Address(), addresses.Wallet},
			Signers:   []*account.PrivateKey{payer},
		}, nil
	})
}

func runDeposit(c *cli.Context) error {
	owner, err := checkAddress(c.String("owner"), ErrRequiredOwner)
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")

	return execute(c, func(client *rpccalls.Client) (*rpccalls.ExecuteData, error) {
		addresses, err := client.Derive(owner)
		if nil != err {
			return nil, err
		}
		return &rpccalls.ExecuteData{
			Operation: instruction.Deposit,
			Amount:    amount,
			Accounts:  []account.Address{addresses.Wallet, addresses.Pool},
		}, nil
	})
}

func runWithdraw(c *cli.Context) error {
	owner, err := signingKey(c)
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")

	return execute(c, func(client *rpccalls.Client) (*rpccalls.ExecuteData, error) {
		addresses, err := client.Derive(owner.Address())
		if nil != err {
			return nil, err
		}
		return &rpccalls.ExecuteData{
			Operation: instruction.Withdraw,
			Amount:    amount,
			Accounts:  []account.Address{addresses.Wallet, addresses.Pool, owner.Address()},
			Signers:   []*account.PrivateKey{owner},
		}, nil
	})
}

func runWithdrawExternal(c *cli.Context) error {
	owner, err := signingKey(c)
	if nil != err {
		return err
	}
	recipient, err := checkAddress(c.String("recipient"), ErrRequiredAddress)
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")

	return execute(c, func(client *rpccalls.Client) (*rpccalls.ExecuteData, error) {
		addresses, err := client.Derive(owner.Address())
		if nil != err {
			return nil, err
		}
		return &rpccalls.ExecuteData{
			Operation: instruction.WithdrawExternal,
			Amount:    amount,
			Accounts:  []account.Address{addresses.Wallet, recipient, owner.Address()},
			Signers:   []*account.PrivateKey{owner},
		}, nil
	})
}
