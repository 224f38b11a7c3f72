// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - decode the instruction byte stream
//
//	[tag: 1 byte][amount: 8 bytes little endian, only for transfers]
//
// the tag numbering depends on the instruction set chosen for the deployment
package instruction

import (
	"encoding/binary"
	"strings"

	"github.com/bitmark-inc/poolledger/fault"
)

// Operation - what an instruction does
type Operation int

// operations
const (
	CreatePool Operation = iota
	CreateAccount
	Deposit
	Withdraw
	WithdrawExternal
)

// Set - a mapping from tag to operation
type Set int

// instruction sets
const (
	// 0 CreateAccount, 1 Deposit, 2 Withdraw, 3 CreatePool, 4 WithdrawExternal
	Standard Set = iota

	// 0 CreatePool, 1 CreateAccount, 2 Deposit, 3 Withdraw, 4 WithdrawExternal
	Extended
)

const amountLength = 8

var tags = map[Set][]Operation{
	Standard: {CreateAccount, Deposit, Withdraw, CreatePool, WithdrawExternal},
	Extended: {CreatePool, CreateAccount, Deposit, Withdraw, WithdrawExternal},
}

// Instruction - a decoded instruction
type Instruction struct {
	Operation Operation `json:"operation"`
	Amount    uint64    `json:"amount"`
}

// SetFromString - configuration name to set
func SetFromString(name string) (Set, error) {
	switch strings.ToLower(name) {
	case "", "standard":
		return Standard, nil
	case "extended":
		return Extended, nil
	default:
		return Standard, fault.ErrInvalidInstructionSet
	}
}

// String - configuration name of a set
func (set Set) String() string {
	switch set {
	case Standard:
		return "standard"
	case Extended:
		return "extended"
	default:
		return "unknown"
	}
}

// HasAmount - true for operations carrying an amount
func (op Operation) HasAmount() bool {
	switch op {
	case Deposit, Withdraw, WithdrawExternal:
		return true
	default:
		return false
	}
}

// String - operation name
func (op Operation) String() string {
	switch op {
	case CreatePool:
		return "CreatePool"
	case CreateAccount:
		return "CreateAccount"
	case Deposit:
		return "Deposit"
	case Withdraw:
		return "Withdraw"
	case WithdrawExternal:
		return "WithdrawExternal"
	default:
		return "Unknown"
	}
}

// MarshalText - operation as its name
func (op Operation) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// UnmarshalText - operation from its name
func (op *Operation) UnmarshalText(s []byte) error {
	for candidate := CreatePool; candidate <= WithdrawExternal; candidate += 1 {
		if string(s) == candidate.String() {
			*op = candidate
			return nil
		}
	}
	return fault.ErrInvalidInstruction
}

// Decode - bytes to instruction
func Decode(data []byte, set Set) (*Instruction, error) {
	operations, ok := tags[set]
	if !ok {
		return nil, fault.ErrInvalidInstructionSet
	}

	if 0 == len(data) {
		return nil, fault.ErrInvalidInstruction
	}

	tag := int(data[0])
	if tag >= len(operations) {
		return nil, fault.ErrInvalidInstruction
	}

	instruction := &Instruction{
		Operation: operations[tag],
	}

	payload := data[1:]
	if !instruction.Operation.HasAmount() {
		if 0 != len(payload) {
			return nil, fault.ErrInvalidInstruction
		}
		return instruction, nil
	}

	if amountLength != len(payload) {
		return nil, fault.ErrInvalidInstruction
	}
	instruction.Amount = binary.LittleEndian.Uint64(payload)
	return instruction, nil
}

// Pack - instruction to bytes
func (instruction *Instruction) Pack(set Set) ([]byte, error) {
	operations, ok := tags[set]
	if !ok {
		return nil, fault.ErrInvalidInstructionSet
	}

	for tag, op := range operations {
		if op != instruction.Operation {
			continue
		}
		if !op.HasAmount() {
			return []byte{byte(tag)}, nil
		}
		buffer := make([]byte, 1+amountLength)
		buffer[0] = byte(tag)
		binary.LittleEndian.PutUint64(buffer[1:], instruction.Amount)
		return buffer, nil
	}
	return nil, fault.ErrInvalidInstruction
}
