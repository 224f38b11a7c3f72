// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/hex"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/instruction"
	"github.com/bitmark-inc/poolledger/invocation"
	"github.com/bitmark-inc/poolledger/rpc/ledger"
)

// ExecuteData - the parameters for one instruction
type ExecuteData struct {
	Operation instruction.Operation
	Amount    uint64
	Accounts  []account.Address
	Signers   []*account.PrivateKey
}

// Execute - pack, sign and submit an instruction
func (client *Client) Execute(executeConfig *ExecuteData) (*ledger.ExecuteReply, error) {

	data, err := (&instruction.Instruction{
		Operation: executeConfig.Operation,
		Amount:    executeConfig.Amount,
	}).Pack(client.set)
	if nil != err {
		return nil, err
	}

	// one past the highest nonce any signer has used
	nonce := uint64(0)
	for _, key := range executeConfig.Signers {
		n, err := client.Nonce(key.Address())
		if nil != err {
			return nil, err
		}
		if n > nonce {
			nonce = n
		}
	}

	request := invocation.Request{
		Instruction: data,
		Accounts:    executeConfig.Accounts,
		Nonce:       nonce + 1,
	}
	for _, key := range executeConfig.Signers {
		request.Sign(key)
	}

	executeArgs := ledger.ExecuteArguments{
		Instruction: hex.EncodeToString(data),
		Accounts:    request.Accounts,
		Nonce:       request.Nonce,
		Signatures:  request.Signatures,
	}

	client.printJson("Execute Request", executeArgs)

	reply := &ledger.ExecuteReply{}
	err = client.client.Call("Ledger.Execute", executeArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Execute Reply", reply)

	return reply, nil
}
