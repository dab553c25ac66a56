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

// Type - divisibility of a property's amounts
type Type uint16

// possible property types, these are also the wire values
const (
	NoType      Type = iota // this must be the first value
	Indivisible Type = iota // integer base units
	Divisible   Type = iota // 8 decimal places
	maximumType Type = iota // this must be the last value
)

// DivisibleDecimals - decimal places of a divisible property
const DivisibleDecimals = 8

// IsValid - only Indivisible and Divisible are valid
func (t Type) IsValid() bool {
	return t > NoType && t < maximumType
}

// Uint16 - wire value
func (t Type) Uint16() uint16 {
	return uint16(t)
}

// Decimals - count of decimal places represented by base units
func (t Type) Decimals() int32 {
	if Divisible == t {
		return DivisibleDecimals
	}
	return 0
}

// TypeFromUint16 - convert a wire value to a property type
func TypeFromUint16(n uint16) (Type, error) {
	t := Type(n)
	if !t.IsValid() {
		return NoType, fault.ErrInvalidPropertyType
	}
	return t, nil
}

// String - lower case name
func (t Type) String() string {
	switch t {
	case Indivisible:
		return "indivisible"
	case Divisible:
		return "divisible"
	default:
		return "*unknown*"
	}
}

// GoString - enum value and name, for debugging
func (t Type) GoString() string {
	return fmt.Sprintf("<PropertyType#%d:%q>", uint16(t), t.String())
}

// TypeFromString - accepts name or numeric wire value
func TypeFromString(in string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "indivisible", "1":
		return Indivisible, nil
	case "divisible", "2":
		return Divisible, nil
	default:
		return NoType, fault.ErrInvalidPropertyType
	}
}

// MarshalText - convert a property type into JSON
func (t Type) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fault.ErrInvalidPropertyType
	}
	return []byte(t.String()), nil
}

// UnmarshalText - convert a JSON string to a property type
func (t *Type) UnmarshalText(s []byte) error {
	v, err := TypeFromString(string(s))
	if nil != err {
		return err
	}
	*t = v
	return nil
}
