// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/omnipack/fault"
)

// Ecosystem - namespace partition for property identifiers
type Ecosystem uint8

// possible ecosystem values, these are also the wire values
const (
	NoEcosystem      Ecosystem = iota // this must be the first value
	Main             Ecosystem = iota
	Test             Ecosystem = iota
	maximumEcosystem Ecosystem = iota // this must be the last value
)

// IsValid - only Main and Test are valid
func (ecosystem Ecosystem) IsValid() bool {
	return ecosystem > NoEcosystem && ecosystem < maximumEcosystem
}

// Uint8 - wire value
func (ecosystem Ecosystem) Uint8() uint8 {
	return uint8(ecosystem)
}

// EcosystemFromUint8 - convert a wire value to an ecosystem
func EcosystemFromUint8(n uint8) (Ecosystem, error) {
	e := Ecosystem(n)
	if !e.IsValid() {
		return NoEcosystem, fault.ErrInvalidEcosystem
	}
	return e, nil
}

// String - lower case name
func (ecosystem Ecosystem) String() string {
	switch ecosystem {
	case Main:
		return "main"
	case Test:
		return "test"
	default:
		return "*unknown*"
	}
}

// GoString - enum value and name, for debugging
func (ecosystem Ecosystem) GoString() string {
	return fmt.Sprintf("<Ecosystem#%d:%q>", uint8(ecosystem), ecosystem.String())
}

// EcosystemFromString - accepts name or numeric wire value
func EcosystemFromString(in string) (Ecosystem, error) {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "main", "production", "1":
		return Main, nil
	case "test", "2":
		return Test, nil
	default:
		return NoEcosystem, fault.ErrInvalidEcosystem
	}
}

// MarshalText - convert an ecosystem into JSON
func (ecosystem Ecosystem) MarshalText() ([]byte, error) {
	if !ecosystem.IsValid() {
		return nil, fault.ErrInvalidEcosystem
	}
	return []byte(ecosystem.String()), nil
}

// UnmarshalText - convert a JSON string to an ecosystem
func (ecosystem *Ecosystem) UnmarshalText(s []byte) error {
	e, err := EcosystemFromString(string(s))
	if nil != err {
		return err
	}
	*ecosystem = e
	return nil
}
