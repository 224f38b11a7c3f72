// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/counter"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/rpc/certificate"
	"github.com/bitmark-inc/poolledger/rpc/fixtures"
	"github.com/bitmark-inc/poolledger/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func newServer(t *testing.T) *rpc.Server {
	s := rpc.NewServer()
	err := s.Register(Add{})
	if err != nil {
		t.Fatalf("register with error: %s", err)
	}
	return s
}

func tlsConfiguration(t *testing.T) (*tls.Config, certificate.Fingerprint) {
	cer, key, err := fixtures.CertificatePair()
	if nil != err {
		t.Fatalf("certificate generation error: %s", err)
	}
	tlsConfig, fin, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	if nil != err {
		t.Fatalf("get certificate with error: %s", err)
	}
	return tlsConfig, fin
}

func dial(t *testing.T, address string) *rpc.Client {
	c, err := tls.Dial("tcp", address, &tls.Config{InsecureSkipVerify: true})
	if err != nil {
		t.Fatalf("dial with error: %s", err)
	}
	return jsonrpc.NewClient(c)
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
	}

	count := counter.Counter(0)
	tlsConfig, fin := tlsConfiguration(t)

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, newServer(t), tlsConfig, fin)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Close()

	addresses := l.Addresses()
	assert.Equal(t, 1, len(addresses), "wrong address count")

	client := dial(t, addresses[0])
	defer client.Close()

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestRpcListenerConnectionLimit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"127.0.0.1:0"},
	}

	count := counter.Counter(0)
	tlsConfig, fin := tlsConfiguration(t)

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, newServer(t), tlsConfig, fin)
	assert.Nil(t, err, "wrong NewRPC")
	assert.Nil(t, l.Serve(), "wrong Serve")
	defer l.Close()

	address := l.Addresses()[0]

	first := dial(t, address)
	var reply int
	err = first.Call("Add.Add", &AddArg{A: 1, B: 1}, &reply)
	assert.Nil(t, err, "first connection refused")

	// second connection is dropped by the server
	c, err := tls.Dial("tcp", address, &tls.Config{InsecureSkipVerify: true})
	if nil == err {
		second := jsonrpc.NewClient(c)
		err = second.Call("Add.Add", &AddArg{A: 1, B: 1}, &reply)
		second.Close()
	}
	assert.NotNil(t, err, "second connection accepted")

	// release the first and a new connection is served
	first.Close()
	deadline := time.Now().Add(5 * time.Second)
	for !count.IsZero() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.True(t, count.IsZero(), "connection count not released")

	third := dial(t, address)
	defer third.Close()
	err = third.Call("Add.Add", &AddArg{A: 3, B: 4}, &reply)
	assert.Nil(t, err, "third connection refused")
	assert.Equal(t, 7, reply, "wrong result")
}

func TestRpcListenerWhenMaxConnectionCountTooSmall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2130"},
	}

	count := counter.Counter(0)

	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, certificate.Fingerprint{})
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestRpcListenerWhenEmptyListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{},
	}

	count := counter.Counter(0)

	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, certificate.Fingerprint{})
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestRpcListenerWhenInvalidListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)

	for _, listen := range []string{"1", "", "host.domain:1234"} {
		con := listeners.RPCConfiguration{
			MaximumConnections: 5,
			Listen:             []string{listen},
		}
		_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, certificate.Fingerprint{})
		assert.Equal(t, fault.ErrInvalidIPAddress, err, "wrong error for: %q", listen)
	}
}

func TestRpcListenerWhenListenAllOrIPv6(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)

	for _, listen := range []string{"*:1234", "[1:2:3:4:5:6:7:8]:1234"} {
		con := listeners.RPCConfiguration{
			MaximumConnections: 5,
			Listen:             []string{listen},
		}
		_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, certificate.Fingerprint{})
		assert.Nil(t, err, "wrong NewRPC for: %q", listen)
	}
}

func TestRpcListenerServeWhenInvalidTLSConfig(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
	}

	count := counter.Counter(0)

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, certificate.Fingerprint{})
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.NotNil(t, err, "wrong Serve")
	assert.Contains(t, err.Error(), "tls", "wrong error message")
}
