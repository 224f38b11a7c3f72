// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mode - service state and chain
//
// instructions are only accepted in Normal mode
//
//	Stopped → Starting → Normal
//	            ↑          │
//	            └──────────┘
//
// any mode may change to Stopped
package mode

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/chain"
	"github.com/bitmark-inc/poolledger/fault"
)

// Mode - service state
type Mode int

// all possible modes
const (
	Stopped Mode = iota
	Starting
	Normal
	maximum
)

// permitted changes other than to Stopped
var transitions = map[Mode]Mode{
	Stopped:  Starting,
	Starting: Normal,
	Normal:   Starting,
}

var globalData struct {
	sync.RWMutex
	log     *logger.L
	mode    Mode
	changed time.Time
	testing bool
	chain   string

	initialised bool
}

// Initialise - fix the chain and enter Starting
func Initialise(chainName string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("mode")
	log.Info("starting…")

	if !chain.Valid(chainName) {
		log.Criticalf("mode cannot handle chain: %q", chainName)
		return fault.ErrInvalidChain
	}

	globalData.log = log
	globalData.chain = chainName
	globalData.testing = chain.IsTesting(chainName)
	globalData.mode = Starting
	globalData.changed = time.Now()
	globalData.initialised = true

	return nil
}

// Finalise - enter Stopped and release the chain
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	log := globalData.log
	log.Info("shutting down…")

	globalData.mode = Stopped
	globalData.changed = time.Now()
	globalData.initialised = false

	log.Info("finished")
	log.Flush()

	return nil
}

// Set - change mode, rejecting changes the state diagram does not allow
func Set(mode Mode) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	log := globalData.log
	current := globalData.mode

	if mode < Stopped || mode >= maximum {
		log.Errorf("ignore invalid set: %d", mode)
		return fault.ErrInvalidModeChange
	}
	if mode == current {
		return nil
	}
	if Stopped != mode && transitions[current] != mode {
		log.Errorf("ignore set: %s → %s", current, mode)
		return fault.ErrInvalidModeChange
	}

	globalData.mode = mode
	globalData.changed = time.Now()
	log.Infof("set: %s → %s", current, mode)

	return nil
}

// Is - detect mode
func Is(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode == globalData.mode
}

// IsTesting - true for any chain other than live
func IsTesting() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.testing
}

// ChainName - name of the current chain
func ChainName() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.chain
}

// Since - time spent in the current mode
func Since() time.Duration {
	globalData.RLock()
	defer globalData.RUnlock()
	if globalData.changed.IsZero() {
		return 0
	}
	return time.Since(globalData.changed)
}

// String - current mode represented as a string
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.mode.String()
}

// String - mode represented as a string
func (m Mode) String() string {
	switch m {
	case Stopped:
		return "Stopped"
	case Starting:
		return "Starting"
	case Normal:
		return "Normal"
	default:
		return "*Unknown*"
	}
}
