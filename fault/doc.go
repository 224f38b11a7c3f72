// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// classes used by the ledger:
//
//	InvalidError  - caller supplied something wrong, never retried
//	ProcessError  - business rule refused the operation (e.g. insufficient funds)
//	RecordError   - slot contents cannot be decoded
//	LengthError   - a buffer or slot is the wrong size
//	ExistsError   - something that must be unique already exists
//	NotFoundError - lookup failed
package fault
