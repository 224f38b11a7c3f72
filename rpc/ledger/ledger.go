// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/derivation"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/instruction"
	"github.com/bitmark-inc/poolledger/invocation"
	"github.com/bitmark-inc/poolledger/mode"
	"github.com/bitmark-inc/poolledger/record"
	"github.com/bitmark-inc/poolledger/rpc/ratelimit"
)

const (
	rateLimitLedger = 200
	rateBurstLedger = 100

	maximumAccounts     = 16
	maximumJournalCount = 100
)

//go:generate mockgen -source=ledger.go -destination=../mocks/mock_host.go -package=mocks

// Host - the ledger operations served over RPC
type Host interface {
	Authority() account.Address
	PoolAddress() account.Address
	Execute(request *invocation.Request) (*invocation.Receipt, error)
	Wallet(owner account.Address) (account.Address, *record.Wallet, error)
	Pool() (*record.Pool, error)
	Audit() (*invocation.Audit, error)
	Journal(start uint64, count int) ([]*invocation.Entry, error)
	Nonce(signer account.Address) uint64
	Mint(amount uint64) (uint64, error)
	Fund(address account.Address, amount uint64) (uint64, error)
}

// Ledger - type for the RPC
type Ledger struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Host         Host
}

// New - create the ledger RPC service
func New(log *logger.L, host Host, isNormalMode func(mode.Mode) bool) *Ledger {
	return &Ledger{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		IsNormalMode: isNormalMode,
		Host:         host,
	}
}

// ---

// ExecuteArguments - a hex encoded instruction and the slots it acts on
type ExecuteArguments struct {
	Instruction string              `json:"instruction"`
	Accounts    []account.Address   `json:"accounts"`
	Nonce       uint64              `json:"nonce,string"`
	Signatures  []invocation.Signed `json:"signatures"`
}

// ExecuteReply - result of a committed instruction
type ExecuteReply struct {
	Sequence  uint64                `json:"sequence"`
	Operation instruction.Operation `json:"operation"`
	Changed   []account.Address     `json:"changed"`
}

// Execute - apply one signed instruction
func (ledger *Ledger) Execute(arguments *ExecuteArguments, reply *ExecuteReply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if !ledger.IsNormalMode(mode.Normal) {
		return fault.ErrServiceNotReady
	}

	if 0 == len(arguments.Accounts) || len(arguments.Accounts) > maximumAccounts {
		return fault.ErrInvalidCount
	}

	data, err := hex.DecodeString(arguments.Instruction)
	if nil != err {
		return fault.ErrInvalidInstruction
	}

	ledger.Log.Infof("Ledger.Execute: instruction: %x  accounts: %v  nonce: %d", data, arguments.Accounts, arguments.Nonce)

	receipt, err := ledger.Host.Execute(&invocation.Request{
		Instruction: data,
		Accounts:    arguments.Accounts,
		Nonce:       arguments.Nonce,
		Signatures:  arguments.Signatures,
	})
	if nil != err {
		ledger.Log.Debugf("Ledger.Execute: error: %s", err)
		return err
	}

	reply.Sequence = receipt.Sequence
	reply.Operation = receipt.Operation
	reply.Changed = receipt.Changed
	return nil
}

// ---

// DeriveArguments - owner whose wallet address is wanted
type DeriveArguments struct {
	Owner account.Address `json:"owner"`
}

// DeriveReply - derived addresses with their discriminants
type DeriveReply struct {
	Authority          account.Address `json:"authority"`
	Pool               account.Address `json:"pool"`
	PoolDiscriminant   byte            `json:"poolDiscriminant"`
	Wallet             account.Address `json:"wallet"`
	WalletDiscriminant byte            `json:"walletDiscriminant"`
}

// Derive - compute the pool and wallet addresses, a zero owner skips the wallet
func (ledger *Ledger) Derive(arguments *DeriveArguments, reply *DeriveReply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	authority := ledger.Host.Authority()
	pool, poolDiscriminant, err := derivation.Pool(authority)
	if nil != err {
		return err
	}

	reply.Authority = authority
	reply.Pool = pool
	reply.PoolDiscriminant = poolDiscriminant

	if arguments.Owner.IsZero() {
		return nil
	}

	wallet, walletDiscriminant, err := derivation.Wallet(arguments.Owner, authority)
	if nil != err {
		return err
	}
	reply.Wallet = wallet
	reply.WalletDiscriminant = walletDiscriminant
	return nil
}

// ---

// NonceArguments - signer whose last nonce is wanted
type NonceArguments struct {
	Signer account.Address `json:"signer"`
}

// NonceReply - last accepted nonce, the next request must use a larger one
type NonceReply struct {
	Nonce uint64 `json:"nonce,string"`
}

// Nonce - last nonce accepted from a signer
func (ledger *Ledger) Nonce(arguments *NonceArguments, reply *NonceReply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Signer.IsZero() {
		return fault.ErrMissingParameters
	}

	reply.Nonce = ledger.Host.Nonce(arguments.Signer)
	return nil
}

// ---

// BalanceArguments - owner of the wallet
type BalanceArguments struct {
	Owner account.Address `json:"owner"`
}

// BalanceReply - wallet address and recorded balance
type BalanceReply struct {
	Wallet  account.Address `json:"wallet"`
	Balance uint64          `json:"balance"`
}

// Balance - read the wallet record of an owner
func (ledger *Ledger) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Owner.IsZero() {
		return fault.ErrMissingParameters
	}

	wallet, w, err := ledger.Host.Wallet(arguments.Owner)
	if nil != err {
		return err
	}

	reply.Wallet = wallet
	reply.Balance = w.Balance
	return nil
}

// ---

// PoolArguments - empty arguments for pool request
type PoolArguments struct{}

// PoolReply - pool address and recorded total
type PoolReply struct {
	Address      account.Address `json:"address"`
	TotalBalance uint64          `json:"totalBalance"`
}

// Pool - read the pool record
func (ledger *Ledger) Pool(_ *PoolArguments, reply *PoolReply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	p, err := ledger.Host.Pool()
	if nil != err {
		return err
	}

	reply.Address = ledger.Host.PoolAddress()
	reply.TotalBalance = p.TotalBalance
	return nil
}

// ---

// AuditArguments - empty arguments for audit request
type AuditArguments struct{}

// Audit - sum every record and compare with the minted total
func (ledger *Ledger) Audit(_ *AuditArguments, reply *invocation.Audit) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	audit, err := ledger.Host.Audit()
	if nil != err {
		return err
	}

	*reply = *audit
	return nil
}

// ---

// JournalArguments - page of journal entries
type JournalArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// JournalReply - entries and where the next page starts
type JournalReply struct {
	Entries   []*invocation.Entry `json:"entries"`
	NextStart uint64              `json:"nextStart,string"`
}

// Journal - list committed changes in sequence order
func (ledger *Ledger) Journal(arguments *JournalArguments, reply *JournalReply) error {
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if err := ratelimit.LimitN(ledger.Limiter, arguments.Count, maximumJournalCount); nil != err {
		return err
	}

	entries, err := ledger.Host.Journal(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Entries = entries
	reply.NextStart = arguments.Start
	if n := len(entries); n > 0 {
		reply.NextStart = entries[n-1].Sequence + 1
	}
	return nil
}

// ---

// FundArguments - credit an external slot
type FundArguments struct {
	Address account.Address `json:"address"`
	Amount  uint64          `json:"amount"`
}

// FundReply - new lamports of the slot
type FundReply struct {
	Lamports uint64 `json:"lamports"`
}

// Fund - give lamports to an external slot, testing chains only
func (ledger *Ledger) Fund(arguments *FundArguments, reply *FundReply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Address.IsZero() {
		return fault.ErrMissingParameters
	}

	if !ledger.IsNormalMode(mode.Normal) {
		return fault.ErrServiceNotReady
	}

	ledger.Log.Infof("Ledger.Fund: %s  amount: %d", arguments.Address, arguments.Amount)

	lamports, err := ledger.Host.Fund(arguments.Address, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Lamports = lamports
	return nil
}

// ---

// MintArguments - amount to add to the pool record
type MintArguments struct {
	Amount uint64 `json:"amount"`
}

// MintReply - new pool total
type MintReply struct {
	TotalBalance uint64 `json:"totalBalance"`
}

// Mint - seed the pool record, testing chains only
func (ledger *Ledger) Mint(arguments *MintArguments, reply *MintReply) error {
	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if !ledger.IsNormalMode(mode.Normal) {
		return fault.ErrServiceNotReady
	}

	ledger.Log.Infof("Ledger.Mint: amount: %d", arguments.Amount)

	total, err := ledger.Host.Mint(arguments.Amount)
	if nil != err {
		return err
	}
	reply.TotalBalance = total
	return nil
}
