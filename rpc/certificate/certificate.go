// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS setup for the ledgerd RPC listener and its clients
//
// clients identify a ledgerd by the SHA3-256 fingerprint of its DER
// certificate instead of a certificate authority
package certificate

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/fault"
)

// Fingerprint - SHA3-256 of a DER certificate
//
// FreeBSD: openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
type Fingerprint [32]byte

// FingerprintOf - fingerprint of a DER certificate
func FingerprintOf(der []byte) Fingerprint {
	return sha3.Sum256(der)
}

// FingerprintPEM - fingerprint of the first certificate in a PEM block
func FingerprintPEM(certificate string) (Fingerprint, error) {
	block, _ := pem.Decode([]byte(certificate))
	if nil == block || "CERTIFICATE" != block.Type {
		return Fingerprint{}, fault.ErrInvalidCertificate
	}
	return FingerprintOf(block.Bytes), nil
}

// FingerprintFromHex - decode the String form
func FingerprintFromHex(s string) (Fingerprint, error) {
	var f Fingerprint
	buffer, err := hex.DecodeString(s)
	if nil != err || len(f) != len(buffer) {
		return f, fault.ErrInvalidCertificate
	}
	copy(f[:], buffer)
	return f, nil
}

// String - hex form
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Get - server TLS configuration from a PEM certificate and key
//
// the pair must match and the certificate must not have expired
func Get(log *logger.L, name, certificate, key string) (*tls.Config, Fingerprint, error) {
	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %s", name, err)
		return nil, Fingerprint{}, err
	}

	leaf, err := x509.ParseCertificate(keyPair.Certificate[0])
	if nil != err {
		log.Errorf("%s failed to parse certificate: %s", name, err)
		return nil, Fingerprint{}, err
	}
	if time.Now().After(leaf.NotAfter) {
		log.Errorf("%s certificate expired: %s", name, leaf.NotAfter)
		return nil, Fingerprint{}, fault.ErrCertificateExpired
	}

	fingerprint := FingerprintOf(keyPair.Certificate[0])
	log.Infof("%s certificate fingerprint: %s  valid until: %s", name, fingerprint, leaf.NotAfter.UTC())

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{keyPair},
		MinVersion:   tls.VersionTLS12,
	}
	return tlsConfiguration, fingerprint, nil
}

// Pinned - client TLS configuration accepting only the certificate with this fingerprint
func Pinned(fingerprint Fingerprint) *tls.Config {
	return &tls.Config{
		// the chain is replaced by the fingerprint check
		InsecureSkipVerify: true,
		MinVersion:         tls.VersionTLS12,
		VerifyPeerCertificate: func(raw [][]byte, _ [][]*x509.Certificate) error {
			if 0 == len(raw) || FingerprintOf(raw[0]) != fingerprint {
				return fault.ErrCertificateMismatch
			}
			return nil
		},
	}
}
