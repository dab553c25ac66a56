// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payload

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/omnipack/amount"
	"github.com/bitmark-inc/omnipack/fault"
	"github.com/bitmark-inc/omnipack/property"
	"github.com/bitmark-inc/omnipack/transactionrecord"
)

// pack and convert to hex
func toHex(kind transactionrecord.Kind, values transactionrecord.Values) (string, error) {
	packed, err := transactionrecord.Pack(kind, values)
	if nil != err {
		return "", err
	}
	return packed.String(), nil
}

func checkIdentifier(id property.Identifier) error {
	if !id.IsValid() {
		return fault.ErrInvalidPropertyId
	}
	return nil
}

func checkEcosystem(ecosystem property.Ecosystem) error {
	if !ecosystem.IsValid() {
		return fault.ErrInvalidEcosystem
	}
	return nil
}

// both sides of an order must be distinct properties in one ecosystem
func checkPair(forSale property.Identifier, desired property.Identifier) error {
	if err := checkIdentifier(forSale); nil != err {
		return err
	}
	if err := checkIdentifier(desired); nil != err {
		return err
	}
	if forSale == desired {
		return fault.ErrSameProperty
	}
	if forSale.Ecosystem() != desired.Ecosystem() {
		return fault.ErrMismatchedEcosystem
	}
	return nil
}

// property identifier and amount, the layout shared by the simple sends
func sendValues(id property.Identifier, value decimal.Decimal, propertyType property.Type) (transactionrecord.Values, error) {
	if err := checkIdentifier(id); nil != err {
		return nil, err
	}
	units, err := amount.Scale(value, propertyType)
	if nil != err {
		return nil, err
	}
	return transactionrecord.Values{
		transactionrecord.FieldPropertyId: id.Uint32(),
		transactionrecord.FieldAmount:     units,
	}, nil
}
