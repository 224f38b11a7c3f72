// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/rpc/certificate"
	"github.com/bitmark-inc/poolledger/util"
)

// RPC certificates outlive any reasonable deployment; clients pin the fingerprint
const rpcCertificateLifetime = 10 * 365 * 24 * time.Hour

// create a self-signed RPC certificate and return its fingerprint for ledger-cli --fingerprint
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) (certificate.Fingerprint, error) {

	if util.EnsureFileExists(certificateFileName) {
		return certificate.Fingerprint{}, fault.ErrCertificateFileExists
	}
	if util.EnsureFileExists(privateKeyFileName) {
		return certificate.Fingerprint{}, fault.ErrKeyFileExists
	}

	org := "ledgerd self signed cert for: " + name
	cert, key, err := certgen.NewTLSCertPair(org, time.Now().Add(rpcCertificateLifetime), override, extraHosts)
	if nil != err {
		return certificate.Fingerprint{}, err
	}

	fingerprint, err := certificate.FingerprintPEM(string(cert))
	if nil != err {
		return certificate.Fingerprint{}, err
	}

	err = util.WriteNewFiles(
		util.NewFile{Name: certificateFileName, Data: cert, Mode: 0666},
		util.NewFile{Name: privateKeyFileName, Data: key, Mode: 0600},
	)
	return fingerprint, err
}
