// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/poolledger/fault"
)

// PrivateKey - an ed25519 key that can sign for its own address
type PrivateKey struct {
	key ed25519.PrivateKey
}

// NewPrivateKey - generate a random private key
func NewPrivateKey() (*PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes - accepts either a 32 byte seed or a full 64 byte key
func PrivateKeyFromBytes(buffer []byte) (*PrivateKey, error) {
	switch len(buffer) {
	case ed25519.SeedSize:
		return &PrivateKey{key: ed25519.NewKeyFromSeed(buffer)}, nil
	case ed25519.PrivateKeySize:
		key := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
		copy(key, buffer)
		return &PrivateKey{key: key}, nil
	default:
		return nil, fault.ErrInvalidKeyLength
	}
}

// PrivateKeyFromHex - decode a hex string produced by String()
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	return PrivateKeyFromBytes(buffer)
}

// Address - the public half of the key
func (p *PrivateKey) Address() Address {
	a := Address{}
	copy(a[:], p.key.Public().(ed25519.PublicKey))
	return a
}

// Sign - sign a message
func (p *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(p.key, message)
}

// Bytes - the full 64 byte private key
func (p *PrivateKey) Bytes() []byte {
	return p.key
}

// String - hex form, only for writing key files
func (p *PrivateKey) String() string {
	return hex.EncodeToString(p.key)
}
