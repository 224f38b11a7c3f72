// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package encrypt - password protected private key files
//
// the password is stretched with argon2i and the 64 byte key is
// stored AES-256-CBC encrypted under a random IV
package encrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"io/ioutil"

	"github.com/bitmark-inc/go-argon2"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/util"
)

const (
	MinimumPasswordLength = 8

	privateKeySize = 64
	seedSize       = 32
)

// errors
var (
	ErrPasswordLength = fault.InvalidError("password is too short")
	ErrWrongPassword  = fault.InvalidError("wrong password")
)

// KeyFile - the JSON stored on disk
type KeyFile struct {
	Address    account.Address `json:"address"`
	PrivateKey string          `json:"private_key"`
	Salt       Salt            `json:"salt"`
}

// Seal - encrypt a private key with a password
func Seal(key *account.PrivateKey, password string) (*KeyFile, error) {
	if len(password) < MinimumPasswordLength {
		return nil, ErrPasswordLength
	}

	salt, err := MakeSalt()
	if nil != err {
		return nil, err
	}

	secret, err := generateKey(password, salt)
	if nil != err {
		return nil, err
	}

	ciphertext, err := encryptPrivateKey(key.Bytes(), secret)
	if nil != err {
		return nil, err
	}

	return &KeyFile{
		Address:    key.Address(),
		PrivateKey: hex.EncodeToString(ciphertext),
		Salt:       *salt,
	}, nil
}

// Open - decrypt the private key, the result must match the stored address
func (f *KeyFile) Open(password string) (*account.PrivateKey, error) {
	secret, err := generateKey(password, &f.Salt)
	if nil != err {
		return nil, err
	}

	ciphertext, err := hex.DecodeString(f.PrivateKey)
	if nil != err {
		return nil, fault.ErrInvalidKeyFile
	}

	plaintext, err := decryptPrivateKey(ciphertext, secret)
	if nil != err {
		return nil, err
	}

	// rebuild from the seed half so a wrong password cannot pass
	key, err := account.PrivateKeyFromBytes(plaintext[:seedSize])
	if nil != err {
		return nil, err
	}
	if key.Address() != f.Address {
		return nil, ErrWrongPassword
	}
	return key, nil
}

// Save - write a new key file, never overwriting
func Save(fileName string, f *KeyFile) error {
	if util.EnsureFileExists(fileName) {
		return fault.ErrKeyFileExists
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if nil != err {
		return err
	}
	return util.WriteNewFiles(util.NewFile{Name: fileName, Data: append(data, '\n'), Mode: 0600})
}

// Load - read a key file
func Load(fileName string) (*KeyFile, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	f := &KeyFile{}
	if err := json.Unmarshal(data, f); nil != err {
		return nil, fault.ErrInvalidKeyFile
	}
	return f, nil
}

func generateKey(password string, salt *Salt) ([]byte, error) {
	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}
	return argon2.Hash(ctx, []byte(password), salt[:])
}

func encryptPrivateKey(plaintext []byte, secret []byte) ([]byte, error) {
	if privateKeySize != len(plaintext) {
		return nil, fault.ErrInvalidKeyLength
	}

	block, err := aes.NewCipher(secret)
	if nil != err {
		return nil, err
	}

	ciphertext := make([]byte, aes.BlockSize+privateKeySize)
	iv := ciphertext[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); nil != err {
		return nil, err
	}
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext[aes.BlockSize:], plaintext)
	return ciphertext, nil
}

func decryptPrivateKey(ciphertext []byte, secret []byte) ([]byte, error) {
	if aes.BlockSize+privateKeySize != len(ciphertext) {
		return nil, fault.ErrInvalidKeyFile
	}

	block, err := aes.NewCipher(secret)
	if nil != err {
		return nil, err
	}

	iv := ciphertext[:aes.BlockSize]
	plaintext := make([]byte, privateKeySize)
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext[aes.BlockSize:])
	return plaintext, nil
}
