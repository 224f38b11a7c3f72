// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/poolledger/command/ledger-cli/rpccalls"
)

// open a client, run one call and print the result
func query(c *cli.Context, call func(*rpccalls.Client) (interface{}, error)) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.fingerprint, m.set, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := call(client)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runDerive(c *cli.Context) error {
	owner, err := checkAddress(c.String("owner"), ErrRequiredOwner)
	if nil != err {
		return err
	}
	return query(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Derive(owner)
	})
}

func runBalance(c *cli.Context) error {
	owner, err := checkAddress(c.String("owner"), ErrRequiredOwner)
	if nil != err {
		return err
	}
	return query(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Balance(owner)
	})
}

func runPool(c *cli.Context) error {
	return query(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Pool()
	})
}

func runAudit(c *cli.Context) error {
	return query(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Audit()
	})
}

func runJournal(c *cli.Context) error {
	start := c.Uint64("start")
	count := c.Int("count")
	return query(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Journal(start, count)
	})
}

func runInfo(c *cli.Context) error {
	return query(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.GetInfo()
	})
}

func runFund(c *cli.Context) error {
	address, err := checkAddress(c.String("address"), ErrRequiredAddress)
	if nil != err {
		return err
	}
	amount, err := checkAmount(c.Uint64("amount"))
	if nil != err {
		return err
	}
	return query(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Fund(address, amount)
	})
}

func runMint(c *cli.Context) error {
	amount, err := checkAmount(c.Uint64("amount"))
	if nil != err {
		return err
	}
	return query(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Mint(amount)
	})
}
