// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/poolledger/fault"
)

type classification struct {
	exists   bool
	invalid  bool
	length   bool
	notFound bool
	process  bool
	record   bool
}

func classify(err error) classification {
	return classification{
		exists:   fault.IsErrExists(err),
		invalid:  fault.IsErrInvalid(err),
		length:   fault.IsErrLength(err),
		notFound: fault.IsErrNotFound(err),
		process:  fault.IsErrProcess(err),
		record:   fault.IsErrRecord(err),
	}
}

// the ledger errors must fall into exactly the expected class
func TestLedgerErrorClasses(t *testing.T) {
	errorList := []struct {
		err      error
		expected classification
	}{
		{fault.ErrInvalidInstruction, classification{invalid: true}},
		{fault.ErrUnauthorizedOwner, classification{invalid: true}},
		{fault.ErrMalformedRecord, classification{record: true}},
		{fault.ErrInsufficientFunds, classification{process: true}},
		{fault.ErrBalanceOverflow, classification{process: true}},
		{fault.ErrSlotTooSmall, classification{length: true}},
		{fault.ErrAllocationFailed, classification{process: true}},
		{fault.ErrSlotAlreadyInUse, classification{exists: true}},
		{fault.ErrSlotNotFound, classification{notFound: true}},
		{fault.ErrSeedTooLong, classification{length: true}},
	}

	for i, e := range errorList {
		actual := classify(e.err)
		if actual != e.expected {
			t.Errorf("%d: %q classified as: %+v  expected: %+v", i, e.err, actual, e.expected)
		}
	}
}

// errors created outside this package keep their class
func TestSubclassedErrors(t *testing.T) {
	errorList := []struct {
		err      error
		expected classification
	}{
		{fault.ExistsError("exists one"), classification{exists: true}},
		{fault.InvalidError("invalid one"), classification{invalid: true}},
		{fault.LengthError("length one"), classification{length: true}},
		{fault.NotFoundError("not found one"), classification{notFound: true}},
		{fault.ProcessError("process one"), classification{process: true}},
		{fault.RecordError("record one"), classification{record: true}},
		{fault.GenericError("generic"), classification{}},
	}

	for i, e := range errorList {
		actual := classify(e.err)
		if actual != e.expected {
			t.Errorf("%d: %q classified as: %+v  expected: %+v", i, e.err, actual, e.expected)
		}
	}
}

func TestErrorText(t *testing.T) {
	if "insufficient funds" != fault.ErrInsufficientFunds.Error() {
		t.Errorf("unexpected text: %q", fault.ErrInsufficientFunds.Error())
	}
	if fault.ErrInsufficientFunds == fault.ProcessError("balance overflow") {
		t.Error("distinct errors compare equal")
	}
}
