// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payload

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/omnipack/property"
	"github.com/bitmark-inc/omnipack/transactionrecord"
)

// Grant - issue new tokens of a managed property
func Grant(id property.Identifier, value decimal.Decimal, propertyType property.Type, memo string) (string, error) {
	values, err := sendValues(id, value, propertyType)
	if nil != err {
		return "", err
	}
	values[transactionrecord.FieldMemo] = memo
	return toHex(transactionrecord.Grant, values)
}

// Revoke - destroy tokens of a managed property
func Revoke(id property.Identifier, value decimal.Decimal, propertyType property.Type, memo string) (string, error) {
	values, err := sendValues(id, value, propertyType)
	if nil != err {
		return "", err
	}
	values[transactionrecord.FieldMemo] = memo
	return toHex(transactionrecord.Revoke, values)
}

// ChangeIssuer - hand a managed property to the reference address
func ChangeIssuer(id property.Identifier) (string, error) {
	if err := checkIdentifier(id); nil != err {
		return "", err
	}
	return toHex(transactionrecord.ChangeIssuer, transactionrecord.Values{
		transactionrecord.FieldPropertyId: id.Uint32(),
	})
}
