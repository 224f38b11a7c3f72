// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/poolledger/fault"
)

// AddressLength - number of bytes in an address
const AddressLength = 32

// Address - identifies the authority, a payer or any storage slot
//
// an address is either an ed25519 public key (someone holds the
// private key) or a derived address that is not a curve point
// and so can never sign anything
type Address [AddressLength]byte

// AddressFromBytes - convert a byte slice to an address
func AddressFromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if AddressLength != len(buffer) {
		return a, fault.ErrInvalidAddressLength
	}
	copy(a[:], buffer)
	return a, nil
}

// AddressFromBase58 - convert a Base58 encoded string to an address
func AddressFromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err || 0 == len(buffer) {
		return Address{}, fault.ErrCannotDecodeAddress
	}
	return AddressFromBytes(buffer)
}

// Bytes - the address as a byte slice
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero - true for the all zero address, used as "no owner"
func (a Address) IsZero() bool {
	return a == Address{}
}

// IsOnCurve - true if the address decodes to a valid edwards25519 point
//
// derived addresses must return false
func (a Address) IsOnCurve() bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return nil == err
}

// String - base58 encoding of the address
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - for %#v
func (a Address) GoString() string {
	return "<address:" + a.String() + ">"
}

// MarshalText - convert an address to its Base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert Base58 JSON text to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

// Compare - byte order of two addresses, used to order slot locks
func Compare(a Address, b Address) int {
	return bytes.Compare(a[:], b[:])
}
