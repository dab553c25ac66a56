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

// SimpleSend - transfer an amount of one property to a single reference
// address
func SimpleSend(id property.Identifier, value decimal.Decimal, propertyType property.Type) (string, error) {
	values, err := sendValues(id, value, propertyType)
	if nil != err {
		return "", err
	}
	return toHex(transactionrecord.SimpleSend, values)
}

// SendToOwners - distribute an amount pro rata to every holder of the property
func SendToOwners(id property.Identifier, value decimal.Decimal, propertyType property.Type) (string, error) {
	values, err := sendValues(id, value, propertyType)
	if nil != err {
		return "", err
	}
	return toHex(transactionrecord.SendToOwners, values)
}

// SendAll - transfer every available balance in an ecosystem
func SendAll(ecosystem property.Ecosystem) (string, error) {
	if err := checkEcosystem(ecosystem); nil != err {
		return "", err
	}
	return toHex(transactionrecord.SendAll, transactionrecord.Values{
		transactionrecord.FieldEcosystem: ecosystem.Uint8(),
	})
}
