// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/counter"
	"github.com/bitmark-inc/poolledger/instruction"
	"github.com/bitmark-inc/poolledger/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Host - the parts of the ledger host reported by Info
type Host interface {
	Authority() account.Address
	PoolAddress() account.Address
	InstructionSet() instruction.Set
	JournalLength() uint64
}

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	Host      Host
	ChainName func() string
	ModeName  func() string
	counter   *counter.Counter
}

// New - create the node RPC service
func New(log *logger.L, host Host, start time.Time, version string, counter *counter.Counter, chainName func() string, modeName func() string) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		Host:      host,
		ChainName: chainName,
		ModeName:  modeName,
		counter:   counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain          string          `json:"chain"`
	Mode           string          `json:"mode"`
	Authority      account.Address `json:"authority"`
	Pool           account.Address `json:"pool"`
	InstructionSet string          `json:"instructionSet"`
	Journal        uint64          `json:"journal"`
	RPCs           uint64          `json:"rpcs"`
	Version        string          `json:"version"`
	Uptime         string          `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.ChainName()
	reply.Mode = node.ModeName()
	reply.Authority = node.Host.Authority()
	reply.Pool = node.Host.PoolAddress()
	reply.InstructionSet = node.Host.InstructionSet().String()
	reply.Journal = node.Host.JournalLength()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
