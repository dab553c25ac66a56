// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package amount - conversion between decimal token amounts and the
// integer base units carried in payloads
package amount

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/omnipack/fault"
	"github.com/bitmark-inc/omnipack/property"
)

// Scale - convert a decimal amount to base units
//
// i.e. for a divisible property "0.00000001" will convert to uint64(1)
//
// Note: nothing is rounded, an amount that does not map exactly to a
//       whole number of base units is an error
func Scale(amount decimal.Decimal, propertyType property.Type) (uint64, error) {
	if !propertyType.IsValid() {
		return 0, fault.ErrInvalidPropertyType
	}
	if amount.Sign() < 0 {
		return 0, fault.ErrNegativeAmount
	}

	scaled := amount.Shift(propertyType.Decimals())
	whole := scaled.Truncate(0)
	if !scaled.Equal(whole) {
		if property.Divisible == propertyType {
			return 0, fault.ErrAmountPrecision
		}
		return 0, fault.ErrFractionalAmount
	}

	units := whole.BigInt()
	if !units.IsUint64() {
		return 0, fault.ErrAmountOverflow
	}
	return units.Uint64(), nil
}

// Unscale - convert base units back to a decimal amount
func Unscale(units uint64, propertyType property.Type) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(units), -propertyType.Decimals())
}

// Parse - read a plain decimal number
//
// only ASCII digits, an optional leading sign and at most one '.' are
// accepted; there are no grouping separators and no exponent so the
// result never depends on locale
func Parse(s string) (decimal.Decimal, error) {
	if "" == s {
		return decimal.Zero, fault.ErrEmptyAmount
	}

	digits := 0
	point := false
scan_characters:
	for i, c := range s {
		switch {
		case c >= '0' && c <= '9':
			digits += 1
		case '.' == c && !point && digits > 0:
			point = true
			digits = 0
		case ('-' == c || '+' == c) && 0 == i:
			continue scan_characters
		default:
			return decimal.Zero, fault.ErrInvalidAmount
		}
	}
	if 0 == digits {
		return decimal.Zero, fault.ErrInvalidAmount
	}

	d, err := decimal.NewFromString(s)
	if nil != err {
		return decimal.Zero, fault.ErrInvalidAmount
	}
	return d, nil
}

// ParseAndScale - Parse followed by Scale
func ParseAndScale(s string, propertyType property.Type) (uint64, error) {
	d, err := Parse(s)
	if nil != err {
		return 0, err
	}
	return Scale(d, propertyType)
}
