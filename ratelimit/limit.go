// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - pace outgoing requests
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/omnipack/fault"
)

// New - limiter allowing perSecond requests with bursts of burst
func New(perSecond float64, burst int) (*rate.Limiter, error) {
	if perSecond <= 0 || burst < 1 {
		return nil, fault.ErrInvalidRateLimit
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst), nil
}

// Limit - limiting for a single request
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
