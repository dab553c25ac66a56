// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

import (
	"strconv"

	"github.com/bitmark-inc/omnipack/fault"
)

// Identifier - numeric id of a property
//
// zero means "create new" in issuance records and is invalid elsewhere
type Identifier uint32

// well known identifiers
const (
	New   Identifier = 0
	Omni  Identifier = 1
	TOmni Identifier = 2

	firstTestEcosystem Identifier = 0x80000003
)

// IsValid - any non-zero identifier
func (id Identifier) IsValid() bool {
	return New != id
}

// Uint32 - wire value
func (id Identifier) Uint32() uint32 {
	return uint32(id)
}

// Ecosystem - the ecosystem an existing property belongs to
//
// OMNI is in the main ecosystem and TOMNI in the test ecosystem, the
// rest of the range is split at 0x80000003
func (id Identifier) Ecosystem() Ecosystem {
	switch {
	case New == id:
		return NoEcosystem
	case TOmni == id, id >= firstTestEcosystem:
		return Test
	default:
		return Main
	}
}

// String - decimal representation
func (id Identifier) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// IdentifierFromString - parse a decimal identifier, zero is rejected
func IdentifierFromString(s string) (Identifier, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if nil != err || 0 == n {
		return New, fault.ErrInvalidPropertyId
	}
	return Identifier(n), nil
}
