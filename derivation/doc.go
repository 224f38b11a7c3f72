// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derivation computes the addresses of wallet and pool slots
//
// an address is the SHA3-256 hash of:
//
//	seed_1 || ... || seed_n || discriminant || authority
//
// the discriminant is searched from 255 down to 0 and the first hash
// that is not a valid edwards25519 point is the address. Nobody can
// hold a private key for such an address, so the only way to act for
// it is to present the seeds and discriminant as a Proof.
package derivation
