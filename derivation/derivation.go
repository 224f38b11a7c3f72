// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/fault"
)

// labels separating the two record kinds
const (
	WalletLabel = "wallet"
	PoolLabel   = "pool"
)

// limits on the seeds, the discriminant counts as one seed
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

// Derive - compute the address and discriminant for a label and reference
//
// reference is nil for the pool
func Derive(label string, reference []byte, authority account.Address) (account.Address, byte, error) {
	seeds := [][]byte{[]byte(label)}
	if nil != reference {
		seeds = append(seeds, reference)
	}
	return Find(authority, seeds...)
}

// Wallet - the wallet address belonging to an owner
func Wallet(owner account.Address, authority account.Address) (account.Address, byte, error) {
	return Derive(WalletLabel, owner.Bytes(), authority)
}

// Pool - the address of the singleton pool
func Pool(authority account.Address) (account.Address, byte, error) {
	return Derive(PoolLabel, nil, authority)
}

// Find - search for the first discriminant giving an off-curve address
func Find(authority account.Address, seeds ...[]byte) (account.Address, byte, error) {
	if err := checkSeeds(seeds, 1); nil != err {
		return account.Address{}, 0, err
	}

	for d := 255; d >= 0; d -= 1 {
		discriminant := byte(d)
		a := hash(authority, seeds, discriminant)
		if !a.IsOnCurve() {
			return a, discriminant, nil
		}
	}
	return account.Address{}, 0, fault.ErrDerivationExhausted
}

// CreateAddress - single candidate where the last seed is the discriminant
func CreateAddress(authority account.Address, seeds ...[]byte) (account.Address, error) {
	if err := checkSeeds(seeds, 0); nil != err {
		return account.Address{}, err
	}

	digest := sha3.New256()
	for _, s := range seeds {
		digest.Write(s)
	}
	digest.Write(authority[:])

	a := account.Address{}
	copy(a[:], digest.Sum(nil))
	if a.IsOnCurve() {
		return account.Address{}, fault.ErrAddressOnCurve
	}
	return a, nil
}

func hash(authority account.Address, seeds [][]byte, discriminant byte) account.Address {
	digest := sha3.New256()
	for _, s := range seeds {
		digest.Write(s)
	}
	digest.Write([]byte{discriminant})
	digest.Write(authority[:])

	a := account.Address{}
	copy(a[:], digest.Sum(nil))
	return a
}

// extra is the number of seeds still to be appended
func checkSeeds(seeds [][]byte, extra int) error {
	if len(seeds)+extra > MaxSeeds {
		return fault.ErrTooManySeeds
	}
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return fault.ErrSeedTooLong
		}
	}
	return nil
}
