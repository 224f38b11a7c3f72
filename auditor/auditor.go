// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auditor - periodic check that wallet balances add up to the pool
package auditor

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/counter"
	"github.com/bitmark-inc/poolledger/invocation"
)

// Source - anything that can produce an audit
type Source interface {
	Audit() (*invocation.Audit, error)
}

// Auditor - background process running audits at a fixed interval
type Auditor struct {
	sync.RWMutex

	source   Source
	interval time.Duration
	log      *logger.L

	last     *invocation.Audit
	checks   counter.Counter
	failures counter.Counter
}

// New - create an auditor, it does nothing until Run
func New(log *logger.L, source Source, interval time.Duration) *Auditor {
	return &Auditor{
		source:   source,
		interval: interval,
		log:      log,
	}
}

// Run - background loop, one audit immediately then one per interval
func (a *Auditor) Run(args interface{}, shutdown <-chan struct{}) {
	log := a.log
	log.Infof("starting… interval: %s", a.interval)

	a.Check()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			a.Check()
		}
	}

	log.Info("stopped")
}

// Check - run a single audit and record the result
func (a *Auditor) Check() (*invocation.Audit, error) {
	a.checks.Increment()

	audit, err := a.source.Audit()
	if nil != err {
		a.failures.Increment()
		a.log.Errorf("audit error: %s", err)
		return nil, err
	}

	if audit.Balanced {
		a.log.Debugf("audit: wallets: %d  total: %d  pool: %d", audit.Wallets, audit.WalletTotal, audit.PoolTotal)
	} else {
		a.failures.Increment()
		a.log.Criticalf("audit: wallet total: %d  pool: %d  minted: %d  external: %d  not balanced",
			audit.WalletTotal, audit.PoolTotal, audit.Minted, audit.ExternalWithdrawn)
	}

	a.Lock()
	a.last = audit
	a.Unlock()

	return audit, nil
}

// Last - most recent successful audit, nil before the first one
func (a *Auditor) Last() *invocation.Audit {
	a.RLock()
	defer a.RUnlock()
	return a.last
}

// Checks - number of audits attempted
func (a *Auditor) Checks() uint64 {
	return a.checks.Uint64()
}

// Failures - number of audits that errored or were not balanced
func (a *Auditor) Failures() uint64 {
	return a.failures.Uint64()
}
