// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/poolledger/instruction"
	"github.com/bitmark-inc/poolledger/rpc/certificate"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	set     instruction.Set
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a ledgerd
//
// a nil fingerprint accepts any server certificate
func NewClient(connect string, fingerprint *certificate.Fingerprint, set instruction.Set, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}
	if nil != fingerprint {
		tlsConfig = certificate.Pinned(*fingerprint)
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		set:     set,
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the ledgerd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}
