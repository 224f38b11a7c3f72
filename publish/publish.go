// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast committed journal entries to ZeroMQ subscribers
//
// each message has three parts:
//
//	"journal" ++ sequence(8 bytes BE) ++ packed entry
//
// the last two parts are the key and value invocation.UnpackEntry accepts
package publish

import (
	"encoding/binary"
	"net"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/invocation"
)

const (
	journalTopic = "journal"
	queueSize    = 1000
)

// Configuration - broadcast addresses and optional CURVE key files
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// Publisher - PUB socket fed from a queue of committed entries
type Publisher struct {
	log    *logger.L
	socket *zmq.Socket
	queue  chan *invocation.Entry
}

// New - bind the broadcast socket
func New(log *logger.L, configuration *Configuration) (*Publisher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	endpoints, v6, err := parseBroadcast(configuration.Broadcast)
	if nil != err {
		log.Errorf("broadcast: %v  error: %s", configuration.Broadcast, err)
		return nil, err
	}

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}
	_ = socket.SetLinger(0)
	_ = socket.SetIpv6(v6)

	if "" != configuration.PrivateKey {
		privateKey, err := ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			socket.Close()
			log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return nil, err
		}
		_ = socket.SetCurveServer(1)
		_ = socket.SetCurveSecretkey(string(privateKey))
	}

	for i, endpoint := range endpoints {
		if err := socket.Bind(endpoint); nil != err {
			socket.Close()
			log.Errorf("cannot bind[%d]: %q  error: %s", i, endpoint, err)
			return nil, err
		}
		log.Infof("bind[%d]: %q", i, endpoint)
	}

	return &Publisher{
		log:    log,
		socket: socket,
		queue:  make(chan *invocation.Entry, queueSize),
	}, nil
}

// Publish - queue an entry, dropped if subscribers cannot keep up
func (p *Publisher) Publish(entry *invocation.Entry) {
	select {
	case p.queue <- entry:
	default:
		p.log.Warnf("queue full, drop sequence: %d", entry.Sequence)
	}
}

// Run - send queued entries until shutdown, then close the socket
func (p *Publisher) Run(args interface{}, shutdown <-chan struct{}) {
	p.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case entry := <-p.queue:
			p.send(entry)
		}
	}

	p.socket.Close()
	p.log.Info("stopped")
}

func (p *Publisher) send(entry *invocation.Entry) {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, entry.Sequence)

	_, err := p.socket.SendMessageDontwait(journalTopic, key, entry.Pack())
	if nil != err {
		p.log.Errorf("send sequence: %d  error: %s", entry.Sequence, err)
		return
	}
	p.log.Debugf("sent sequence: %d  kind: %s", entry.Sequence, entry.Kind)
}

// convert IP:PORT, [IPv6]:PORT or *:PORT to tcp endpoints
func parseBroadcast(broadcast []string) ([]string, bool, error) {
	if 0 == len(broadcast) {
		return nil, false, fault.ErrMissingParameters
	}

	v6 := false
	endpoints := make([]string, len(broadcast))
	for i, address := range broadcast {
		host, port, err := net.SplitHostPort(address)
		if nil != err || "" == port {
			return nil, false, fault.ErrInvalidIPAddress
		}
		switch {
		case "*" == host:
			v6 = true
		case nil == net.ParseIP(host):
			return nil, false, fault.ErrInvalidIPAddress
		case strings.Contains(host, ":"):
			v6 = true
			host = "[" + host + "]"
		}
		endpoints[i] = "tcp://" + host + ":" + port
	}
	return endpoints, v6, nil
}
