// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package encrypt

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/bitmark-inc/poolledger/fault"
)

const saltSize = 16

// Salt - random argon2 salt stored beside the encrypted key
type Salt [saltSize]byte

// MakeSalt - a new random salt
func MakeSalt() (*Salt, error) {
	salt := new(Salt)
	if _, err := io.ReadFull(rand.Reader, salt[:]); nil != err {
		return nil, err
	}
	return salt, nil
}

// String - hex form
func (salt Salt) String() string {
	return hex.EncodeToString(salt[:])
}

// MarshalText - hex text for JSON
func (salt Salt) MarshalText() ([]byte, error) {
	return []byte(salt.String()), nil
}

// UnmarshalText - salt from hex text
func (salt *Salt) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if saltSize != n {
		return fault.ErrInvalidKeyFile
	}
	copy(salt[:], buffer)
	return nil
}
