// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/command/ledger-cli/encrypt"
)

type keyReply struct {
	PrivateKey string          `json:"privateKey,omitempty"`
	KeyFile    string          `json:"keyFile,omitempty"`
	Address    account.Address `json:"address"`
}

func runKeygen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := account.NewPrivateKey()
	if nil != err {
		return err
	}

	fileName := c.String("file")
	if "" == fileName {
		printJson(m.w, keyReply{
			PrivateKey: key.String(),
			Address:    key.Address(),
		})
		return nil
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	}

	f, err := encrypt.Seal(key, password)
	if nil != err {
		return err
	}
	if err := encrypt.Save(fileName, f); nil != err {
		return err
	}

	printJson(m.w, keyReply{
		KeyFile: fileName,
		Address: key.Address(),
	})
	return nil
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := signingKey(c)
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		Address account.Address `json:"address"`
	}{
		Address: key.Address(),
	})
	return nil
}

// key from --key, or from --key-file with --password or a prompt
func signingKey(c *cli.Context) (*account.PrivateKey, error) {
	password := func() (string, error) {
		if p := c.GlobalString("password"); "" != p {
			return p, nil
		}
		return promptPassword("password: ")
	}
	return checkKey(c.String("key"), c.String("key-file"), password)
}

func promptPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return "", ErrRequiredPassword
	}

	fmt.Fprint(os.Stderr, prompt)
	password, err := terminal.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if nil != err {
		return "", err
	}
	return string(password), nil
}

func promptNewPassword() (string, error) {
	password, err := promptPassword(fmt.Sprintf("set key file password (length >= %d): ", encrypt.MinimumPasswordLength))
	if nil != err {
		return "", err
	}
	verify, err := promptPassword("verify password: ")
	if nil != err {
		return "", err
	}
	if password != verify {
		return "", ErrVerifyPassword
	}
	return password, nil
}
