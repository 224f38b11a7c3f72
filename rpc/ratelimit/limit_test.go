// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(100, 10)
	for i := 0; i < 10; i += 1 {
		assert.Nil(t, ratelimit.Limit(limiter), "wrong limit at: %d", i)
	}
}

func TestLimitWithZeroBurst(t *testing.T) {
	limiter := rate.NewLimiter(100, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(limiter), "wrong error")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 100)
	assert.Nil(t, ratelimit.LimitN(limiter, 20, 50), "wrong limit")
}

func TestLimitNInvalidCount(t *testing.T) {
	limiter := rate.NewLimiter(1000, 100)
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 50), "zero count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, -1, 50), "negative count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 51, 50), "count above maximum")
}

func TestLimitNAboveBurst(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(limiter, 20, 50), "wrong error")
}

func TestLimitRefusesLongWait(t *testing.T) {
	// one token every 100 seconds
	limiter := rate.NewLimiter(0.01, 1)
	assert.Nil(t, ratelimit.Limit(limiter), "first token")

	start := time.Now()
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(limiter), "long wait accepted")
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(limiter, 0, 10), "invalid count not limited")
	assert.True(t, time.Since(start) < ratelimit.MaximumDelay, "request was held")
}

func TestLimitWaitsForShortDelay(t *testing.T) {
	// burst of one, refilled every 50ms
	limiter := rate.NewLimiter(20, 1)
	assert.Nil(t, ratelimit.Limit(limiter), "first token")

	start := time.Now()
	assert.Nil(t, ratelimit.Limit(limiter), "second token")
	assert.True(t, time.Since(start) >= 30*time.Millisecond, "request not paced")
}
