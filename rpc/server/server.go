// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/counter"
	"github.com/bitmark-inc/poolledger/invocation"
	"github.com/bitmark-inc/poolledger/mode"
	"github.com/bitmark-inc/poolledger/rpc/ledger"
	"github.com/bitmark-inc/poolledger/rpc/node"
)

// Create - an RPC server with the Ledger and Node services registered
func Create(log *logger.L, host *invocation.Host, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(ledger.New(log, host, mode.Is))
	_ = server.Register(node.New(log, host, start, version, rpcCount, mode.ChainName, mode.String))

	return server
}
