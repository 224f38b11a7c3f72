// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/instruction"
)

var validItems = []struct {
	set       instruction.Set
	data      []byte
	operation instruction.Operation
	amount    uint64
}{
	{instruction.Standard, []byte{0}, instruction.CreateAccount, 0},
	{instruction.Standard, []byte{1, 30, 0, 0, 0, 0, 0, 0, 0}, instruction.Deposit, 30},
	{instruction.Standard, []byte{2, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, instruction.Withdraw, 0x0102030405060708},
	{instruction.Standard, []byte{3}, instruction.CreatePool, 0},
	{instruction.Standard, []byte{4, 0, 1, 0, 0, 0, 0, 0, 0}, instruction.WithdrawExternal, 256},
	{instruction.Extended, []byte{0}, instruction.CreatePool, 0},
	{instruction.Extended, []byte{1}, instruction.CreateAccount, 0},
	{instruction.Extended, []byte{2, 0, 0, 0, 0, 0, 0, 0, 0}, instruction.Deposit, 0},
	{instruction.Extended, []byte{3, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, instruction.Withdraw, 0xffffffffffffffff},
	{instruction.Extended, []byte{4, 5, 0, 0, 0, 0, 0, 0, 0}, instruction.WithdrawExternal, 5},
}

func TestDecode(t *testing.T) {
	for i, item := range validItems {
		instr, err := instruction.Decode(item.data, item.set)
		if !assert.Nil(t, err, "%d: decode", i) {
			continue
		}
		assert.Equal(t, item.operation, instr.Operation, "%d: operation", i)
		assert.Equal(t, item.amount, instr.Amount, "%d: amount", i)

		packed, err := instr.Pack(item.set)
		assert.Nil(t, err, "%d: pack", i)
		assert.Equal(t, item.data, packed, "%d: packed", i)
	}
}

func TestDecodeErrors(t *testing.T) {
	items := [][]byte{
		nil,
		{},
		{5},
		{0xff, 1, 2, 3, 4, 5, 6, 7, 8},
		{0, 0},
		{1},
		{1, 30, 0, 0, 0, 0, 0, 0},
		{1, 30, 0, 0, 0, 0, 0, 0, 0, 0},
		{3, 1},
	}
	for i, data := range items {
		_, err := instruction.Decode(data, instruction.Standard)
		assert.Equal(t, fault.ErrInvalidInstruction, err, "%d: %x", i, data)
	}

	_, err := instruction.Decode([]byte{0}, instruction.Set(7))
	assert.Equal(t, fault.ErrInvalidInstructionSet, err, "bad set")
}

func TestSetFromString(t *testing.T) {
	set, err := instruction.SetFromString("Extended")
	assert.Nil(t, err, "extended")
	assert.Equal(t, instruction.Extended, set, "extended")

	set, err = instruction.SetFromString("")
	assert.Nil(t, err, "default")
	assert.Equal(t, instruction.Standard, set, "default")

	_, err = instruction.SetFromString("other")
	assert.Equal(t, fault.ErrInvalidInstructionSet, err, "unknown")
}

func TestOperationText(t *testing.T) {
	for _, op := range []instruction.Operation{
		instruction.CreatePool,
		instruction.CreateAccount,
		instruction.Deposit,
		instruction.Withdraw,
		instruction.WithdrawExternal,
	} {
		text, err := op.MarshalText()
		assert.Nil(t, err, "marshal: %s", op)

		var decoded instruction.Operation
		err = decoded.UnmarshalText(text)
		assert.Nil(t, err, "unmarshal: %s", text)
		assert.Equal(t, op, decoded, "round trip: %s", text)
	}

	var op instruction.Operation
	assert.Equal(t, fault.ErrInvalidInstruction, op.UnmarshalText([]byte("Mint")), "unknown name")
}
