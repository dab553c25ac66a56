// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcutil"

	"github.com/bitmark-inc/omnipack/fault"
)

// names of all chains
const (
	Bitcoin = "bitcoin"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Bitcoin, Testing, Local:
		return true
	default:
		return false
	}
}

// Params - base chain parameters of a named chain
//
// returns nil for an invalid name
func Params(name string) *chaincfg.Params {
	switch name {
	case Bitcoin:
		return &chaincfg.MainNetParams
	case Testing:
		return &chaincfg.TestNet3Params
	case Local:
		return &chaincfg.RegressionNetParams
	default:
		return nil
	}
}

// ValidateAddress - check that an address belongs to the chain
func ValidateAddress(name string, address string) error {
	params := Params(name)
	if nil == params {
		return fault.ErrInvalidChain
	}
	a, err := btcutil.DecodeAddress(address, params)
	if nil != err || !a.IsForNet(params) {
		return fault.ErrInvalidAddress
	}
	return nil
}
