// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package invocation

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/instruction"
	"github.com/bitmark-inc/poolledger/slot"
	"github.com/bitmark-inc/poolledger/storage"
)

// Signed - one signature over the request message
type Signed struct {
	Signer    account.Address   `json:"signer"`
	Signature account.Signature `json:"signature"`
}

// Request - an instruction and the slots it acts on
type Request struct {
	Instruction []byte            `json:"instruction"`
	Accounts    []account.Address `json:"accounts"`
	Nonce       uint64            `json:"nonce,string"`
	Signatures  []Signed          `json:"signatures"`
}

// Receipt - result of a committed request
type Receipt struct {
	Sequence  uint64                `json:"sequence"`
	Operation instruction.Operation `json:"operation"`
	Changed   []account.Address     `json:"changed"`
}

// Message - the bytes every signer signs
//
//	instruction ++ account_1 ++ … ++ account_n ++ nonce(8 bytes BE)
//
// the nonce must exceed the last nonce accepted from every signer
func (r *Request) Message() []byte {
	message := make([]byte, 0, len(r.Instruction)+len(r.Accounts)*account.AddressLength+8)
	message = append(message, r.Instruction...)
	for _, a := range r.Accounts {
		message = append(message, a[:]...)
	}
	message = binary.BigEndian.AppendUint64(message, r.Nonce)
	return message
}

// Sign - add a signature from key
func (r *Request) Sign(key *account.PrivateKey) {
	r.Signatures = append(r.Signatures, Signed{
		Signer:    key.Address(),
		Signature: key.Sign(r.Message()),
	})
}

// Execute - apply one request
func (h *Host) Execute(request *Request) (*Receipt, error) {
	instr, err := instruction.Decode(request.Instruction, h.set)
	if nil != err {
		return nil, err
	}

	signers, err := verifySignatures(request)
	if nil != err {
		return nil, err
	}

	// signers are always among the locked accounts
	unlock := h.locks.lock(request.Accounts)
	defer unlock()

	if err := h.checkNonce(signers, request.Nonce); nil != err {
		h.log.Warnf("execute: %s  nonce: %d  error: %s", instr.Operation, request.Nonce, err)
		return nil, err
	}

	// one copy per distinct address, repeated accounts share it
	loaded := make(map[account.Address]*slot.Slot, len(request.Accounts))
	original := make(map[account.Address]*slot.Slot, len(request.Accounts))
	slots := make([]*slot.Slot, len(request.Accounts))
	for i, a := range request.Accounts {
		s, ok := loaded[a]
		if !ok {
			s, err = h.load(a)
			if nil != err {
				return nil, err
			}
			original[a] = s.Clone()
			_, s.Signer = signers[a]
			loaded[a] = s
		}
		slots[i] = s
	}

	err = h.processor.Process(slots, request.Instruction)
	if nil != err {
		h.log.Debugf("execute: %s  error: %s", instr.Operation, err)
		return nil, err
	}

	changed := make([]*slot.Slot, 0, len(loaded))
	for _, a := range request.Accounts {
		s, ok := loaded[a]
		if !ok {
			continue
		}
		delete(loaded, a)
		if !s.Equal(original[a]) {
			changed = append(changed, s)
		}
	}

	entry := &Entry{
		Kind:        Executed,
		Timestamp:   time.Now(),
		Amount:      instr.Amount,
		Instruction: request.Instruction,
		Accounts:    request.Accounts,
	}

	var counters []counterUpdate
	if instruction.WithdrawExternal == instr.Operation {
		counters = append(counters, counterUpdate{key: extractedCounterKey, amount: instr.Amount})
	}

	nonces := make([]nonceUpdate, 0, len(signers))
	for a := range signers {
		nonces = append(nonces, nonceUpdate{address: a, nonce: request.Nonce})
	}

	sequence, err := h.commit(changed, entry, counters, nonces)
	if nil != err {
		return nil, err
	}

	h.log.Infof("execute: %s  amount: %d  sequence: %d  changed: %d", instr.Operation, instr.Amount, sequence, len(changed))

	receipt := &Receipt{
		Sequence:  sequence,
		Operation: instr.Operation,
		Changed:   make([]account.Address, len(changed)),
	}
	for i, s := range changed {
		receipt.Changed[i] = s.Address
	}
	return receipt, nil
}

// every signature must be valid and from one of the accounts
func verifySignatures(request *Request) (map[account.Address]struct{}, error) {
	accounts := make(map[account.Address]struct{}, len(request.Accounts))
	for _, a := range request.Accounts {
		accounts[a] = struct{}{}
	}

	message := request.Message()
	signers := make(map[account.Address]struct{}, len(request.Signatures))
	for _, s := range request.Signatures {
		if _, ok := accounts[s.Signer]; !ok {
			return nil, fault.ErrInvalidSignature
		}
		if err := s.Signer.CheckSignature(message, s.Signature); nil != err {
			return nil, err
		}
		signers[s.Signer] = struct{}{}
	}
	return signers, nil
}

// every signer must move its nonce forward
func (h *Host) checkNonce(signers map[account.Address]struct{}, nonce uint64) error {
	h.RLock()
	defer h.RUnlock()

	for a := range signers {
		last, _ := storage.Pool.Nonces.GetN(a[:])
		if nonce <= last {
			return fault.ErrNonceAlreadyUsed
		}
	}
	return nil
}

// Nonce - last nonce accepted from a signer, zero if none
func (h *Host) Nonce(signer account.Address) uint64 {
	h.RLock()
	defer h.RUnlock()

	n, _ := storage.Pool.Nonces.GetN(signer[:])
	return n
}

// load - copy of a stored slot, a blank external slot if not stored
func (h *Host) load(address account.Address) (*slot.Slot, error) {
	h.RLock()
	packed := storage.Pool.Slots.Get(address[:])
	h.RUnlock()

	if nil == packed {
		return slot.New(address), nil
	}
	s, err := slot.Packed(packed).Unpack(address)
	if nil != err {
		h.log.Errorf("slot: %s  error: %s", address, err)
		return nil, err
	}
	return s, nil
}

type counterUpdate struct {
	key    []byte
	amount uint64
}

type nonceUpdate struct {
	address account.Address
	nonce   uint64
}

// commit - write the slots, the journal entry, counters and signer nonces in one batch
func (h *Host) commit(changed []*slot.Slot, entry *Entry, counters []counterUpdate, nonces []nonceUpdate) (uint64, error) {
	h.Lock()
	defer h.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	for _, s := range changed {
		trx.Put(storage.Pool.Slots, s.Address[:], s.Pack())
	}

	for _, c := range counters {
		n, _ := trx.GetN(storage.Pool.Counters, c.key)
		total := n + c.amount
		if total < n {
			trx.Abort()
			return 0, fault.ErrBalanceOverflow
		}
		trx.PutN(storage.Pool.Counters, c.key, total)
	}

	for _, n := range nonces {
		trx.PutN(storage.Pool.Nonces, n.address[:], n.nonce)
	}

	sequence, _ := trx.GetN(storage.Pool.Counters, journalCounterKey)
	sequence += 1
	entry.Sequence = sequence
	trx.Put(storage.Pool.Journal, sequenceKey(sequence), entry.Pack())
	trx.PutN(storage.Pool.Counters, journalCounterKey, sequence)

	err = trx.Commit()
	if nil != err {
		h.log.Criticalf("commit sequence: %d  error: %s", sequence, err)
		return 0, err
	}

	if nil != h.publisher {
		h.publisher.Publish(entry)
	}
	return sequence, nil
}
