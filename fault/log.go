// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel for the last message before a panic
var panicLog struct {
	sync.Mutex
	log *logger.L
}

// Initialise - open the PANIC log channel, logger must already be running
func Initialise() error {
	panicLog.Lock()
	defer panicLog.Unlock()

	if nil != panicLog.log {
		return ErrAlreadyInitialised
	}
	l := logger.New("PANIC")
	if nil == l {
		return ErrInvalidLoggerChannel
	}
	panicLog.log = l
	return nil
}

// Finalise - flush and release the PANIC channel
func Finalise() {
	panicLog.Lock()
	defer panicLog.Unlock()

	if nil != panicLog.log {
		panicLog.log.Flush()
		panicLog.log = nil
	}
}

// Panicf - log and panic with a formatted message
//
// only for storage states the ledger cannot recover from,
// e.g. a committed slot that cannot be re-read
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)

	panicLog.Lock()
	l := panicLog.log
	panicLog.Unlock()

	if nil == l {
		fmt.Printf("*** %s\n", message)
	} else {
		l.Critical(message)
		l.Flush()
		time.Sleep(100 * time.Millisecond) // let the log writer finish
	}
	panic(message)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	Panicf("%s failed with error: %v", message, err)
}
