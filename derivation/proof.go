// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/fault"
)

// Proof - the seeds and discriminant that reproduce a derived address
//
// presented in place of a signature when acting for the address
type Proof struct {
	Seeds        [][]byte
	Discriminant byte
}

// NewProof - derive an address and return it with its proof
func NewProof(authority account.Address, seeds ...[]byte) (account.Address, *Proof, error) {
	a, discriminant, err := Find(authority, seeds...)
	if nil != err {
		return account.Address{}, nil, err
	}

	copied := make([][]byte, len(seeds))
	for i, s := range seeds {
		copied[i] = append([]byte{}, s...)
	}
	return a, &Proof{
		Seeds:        copied,
		Discriminant: discriminant,
	}, nil
}

// WalletProof - proof for the wallet of an owner
func WalletProof(owner account.Address, authority account.Address) (account.Address, *Proof, error) {
	return NewProof(authority, []byte(WalletLabel), owner.Bytes())
}

// PoolProof - proof for the pool
func PoolProof(authority account.Address) (account.Address, *Proof, error) {
	return NewProof(authority, []byte(PoolLabel))
}

// Address - recompute the address this proof claims
func (p *Proof) Address(authority account.Address) (account.Address, error) {
	seeds := make([][]byte, 0, len(p.Seeds)+1)
	seeds = append(seeds, p.Seeds...)
	seeds = append(seeds, []byte{p.Discriminant})
	return CreateAddress(authority, seeds...)
}

// Verify - check that the proof reproduces the given address
func (p *Proof) Verify(authority account.Address, address account.Address) error {
	if nil == p {
		return fault.ErrInvalidDerivationProof
	}
	a, err := p.Address(authority)
	if nil != err {
		return fault.ErrInvalidDerivationProof
	}
	if a != address {
		return fault.ErrInvalidDerivationProof
	}
	return nil
}
