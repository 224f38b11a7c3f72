// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/command/ledger-cli/encrypt"
	"github.com/bitmark-inc/poolledger/fault"
)

var (
	ErrRequiredAddress  = fault.InvalidError("address is required")
	ErrRequiredAmount   = fault.InvalidError("amount is required")
	ErrRequiredKey      = fault.InvalidError("private key or key file is required")
	ErrRequiredOwner    = fault.InvalidError("owner is required")
	ErrRequiredPassword = fault.InvalidError("password is required")
	ErrVerifyPassword   = fault.InvalidError("passwords do not match")
)

// private key as hex, or an encrypted key file and its password
func checkKey(s string, keyFile string, password func() (string, error)) (*account.PrivateKey, error) {
	if "" != s {
		return account.PrivateKeyFromHex(s)
	}
	if "" == keyFile {
		return nil, ErrRequiredKey
	}

	f, err := encrypt.Load(keyFile)
	if nil != err {
		return nil, err
	}
	p, err := password()
	if nil != err {
		return nil, err
	}
	return f.Open(p)
}

// base58 address is required, missing gives err
func checkAddress(s string, err error) (account.Address, error) {
	if "" == s {
		return account.Address{}, err
	}
	return account.AddressFromBase58(s)
}

// a non-zero amount is required
func checkAmount(amount uint64) (uint64, error) {
	if 0 == amount {
		return 0, ErrRequiredAmount
	}
	return amount, nil
}
