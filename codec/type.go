// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"fmt"
)

// Type - identifies the encoding of a single payload field
type Type uint8

// possible codec values
const (
	Nothing      Type = iota // this must be the first value
	Uint8        Type = iota
	Uint16       Type = iota
	Uint32       Type = iota
	Uint64       Type = iota
	Int8         Type = iota
	Bool         Type = iota
	CString      Type = iota
	maximumValue Type = iota // this must be the last value
)

// IsValid - true for any codec except Nothing
func (t Type) IsValid() bool {
	return t > Nothing && t < maximumValue
}

// Width - number of bytes occupied by the field, 0 for variable length
func (t Type) Width() int {
	switch t {
	case Uint8, Int8, Bool:
		return 1
	case Uint16:
		return 2
	case Uint32:
		return 4
	case Uint64:
		return 8
	default:
		return 0
	}
}

// String - name of codec as used in schema listings
func (t Type) String() string {
	switch t {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16be"
	case Uint32:
		return "uint32be"
	case Uint64:
		return "uint64be"
	case Int8:
		return "int8"
	case Bool:
		return "bool1"
	case CString:
		return "cstring"
	default:
		return "*unknown*"
	}
}

// GoString - show both enum value and name, for debugging
func (t Type) GoString() string {
	return fmt.Sprintf("<Codec#%d:%q>", uint8(t), t.String())
}
