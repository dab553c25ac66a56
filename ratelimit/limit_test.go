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

	"github.com/bitmark-inc/omnipack/fault"
	"github.com/bitmark-inc/omnipack/ratelimit"
)

func TestNew(t *testing.T) {
	_, err := ratelimit.New(0, 1)
	assert.Equal(t, fault.ErrInvalidRateLimit, err, "zero rate")

	_, err = ratelimit.New(1, 0)
	assert.Equal(t, fault.ErrInvalidRateLimit, err, "zero burst")

	l, err := ratelimit.New(2.5, 3)
	assert.Nil(t, err, "valid limit")
	assert.Equal(t, rate.Limit(2.5), l.Limit(), "wrong limit")
	assert.Equal(t, 3, l.Burst(), "wrong burst")
}

func TestLimitWithinBurst(t *testing.T) {
	l, err := ratelimit.New(1, 5)
	assert.Nil(t, err, "valid limit")

	start := time.Now()
	for i := 0; i < 5; i += 1 {
		assert.Nil(t, ratelimit.Limit(l), "request %d", i)
	}
	assert.True(t, time.Since(start) < 500*time.Millisecond, "burst should not wait")
}

func TestLimitDelays(t *testing.T) {
	l, err := ratelimit.New(20, 1)
	assert.Nil(t, err, "valid limit")

	start := time.Now()
	assert.Nil(t, ratelimit.Limit(l), "first request")
	assert.Nil(t, ratelimit.Limit(l), "second request")
	assert.True(t, time.Since(start) >= 40*time.Millisecond, "second request should wait")
}

func TestLimitRejectsZeroBurst(t *testing.T) {
	l := rate.NewLimiter(1, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(l), "zero burst limiter")
}
