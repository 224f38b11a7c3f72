// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - token bucket pacing shared by the RPC services
//
// a request waits for its tokens, but is refused outright if the wait
// would exceed MaximumDelay so a flood cannot hold connections open
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/poolledger/fault"
)

// MaximumDelay - longest a request may be held before being refused
const MaximumDelay = 5 * time.Second

// Limit - one token per request
func Limit(limiter *rate.Limiter) error {
	return wait(limiter, 1)
}

// LimitN - count tokens for a paged request
//
// an out of range count still costs one token
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := wait(limiter, 1); nil != err {
			return err
		}
		return fault.ErrInvalidCount
	}
	return wait(limiter, count)
}

func wait(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.ErrRateLimiting
	}

	delay := r.Delay()
	if delay > MaximumDelay {
		r.Cancel()
		return fault.ErrRateLimiting
	}
	time.Sleep(delay)
	return nil
}
