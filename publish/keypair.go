// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/hex"
	"io/ioutil"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/util"
)

const (
	taggedPublic   = "PUBLIC:"
	taggedPrivate  = "PRIVATE:"
	curveKeyLength = 32
)

// MakeKeyPair - write a new CURVE key pair to two files as tagged hex
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	if util.EnsureFileExists(publicKeyFileName) || util.EnsureFileExists(privateKeyFileName) {
		return fault.ErrKeyFileExists
	}

	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	public := taggedPublic + hex.EncodeToString([]byte(zmq.Z85decode(publicKey))) + "\n"
	private := taggedPrivate + hex.EncodeToString([]byte(zmq.Z85decode(privateKey))) + "\n"

	return util.WriteNewFiles(
		util.NewFile{Name: publicKeyFileName, Data: []byte(public), Mode: 0666},
		util.NewFile{Name: privateKeyFileName, Data: []byte(private), Mode: 0600},
	)
}

// ReadPublicKeyFile - 32 byte public key from a tagged file
func ReadPublicKeyFile(fileName string) ([]byte, error) {
	return readKeyFile(fileName, false)
}

// ReadPrivateKeyFile - 32 byte private key from a tagged file
func ReadPrivateKeyFile(fileName string) ([]byte, error) {
	return readKeyFile(fileName, true)
}

func readKeyFile(fileName string, wantPrivate bool) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	key, private, err := ParseKey(string(data))
	if nil != err {
		return nil, err
	}
	if private != wantPrivate {
		return nil, fault.ErrInvalidKeyFile
	}
	return key, nil
}

// ParseKey - decode "PUBLIC:hex" or "PRIVATE:hex", true for a private key
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)

	private := false
	switch {
	case strings.HasPrefix(s, taggedPrivate):
		private = true
		s = s[len(taggedPrivate):]
	case strings.HasPrefix(s, taggedPublic):
		s = s[len(taggedPublic):]
	default:
		return nil, false, fault.ErrInvalidKeyFile
	}

	key, err := hex.DecodeString(s)
	if nil != err || curveKeyLength != len(key) {
		return nil, false, fault.ErrInvalidKeyFile
	}
	return key, private, nil
}
