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

// Issuance - the description common to every new property
type Issuance struct {
	Ecosystem    property.Ecosystem
	PropertyType property.Type
	PreviousId   property.Identifier // property.New unless replacing
	Category     string
	Subcategory  string
	Name         string
	URL          string
	Data         string
}

// Crowdsale - a property whose tokens are issued against payments
type Crowdsale struct {
	Issuance
	PropertyDesired property.Identifier
	TokensPerUnit   decimal.Decimal // scaled by the issued property type
	Deadline        int64           // seconds since the Unix epoch
	EarlyBirdBonus  int8            // percent per week
	IssuerBonus     int8            // percent
}

// FixedPropertyCreate - a property with a fixed number of tokens
func FixedPropertyCreate(issuance Issuance, value decimal.Decimal) (string, error) {
	values, err := issuance.values()
	if nil != err {
		return "", err
	}
	units, err := amount.Scale(value, issuance.PropertyType)
	if nil != err {
		return "", err
	}
	values[transactionrecord.FieldAmount] = units
	return toHex(transactionrecord.FixedPropertyCreate, values)
}

// ManagedPropertyCreate - a property whose issuer can grant and revoke tokens
func ManagedPropertyCreate(issuance Issuance) (string, error) {
	values, err := issuance.values()
	if nil != err {
		return "", err
	}
	return toHex(transactionrecord.ManagedPropertyCreate, values)
}

// CrowdsaleCreate - open a crowdsale
func CrowdsaleCreate(crowdsale Crowdsale) (string, error) {
	values, err := crowdsale.Issuance.values()
	if nil != err {
		return "", err
	}
	if err := checkIdentifier(crowdsale.PropertyDesired); nil != err {
		return "", err
	}
	if crowdsale.PropertyDesired.Ecosystem() != crowdsale.Ecosystem {
		return "", fault.ErrMismatchedEcosystem
	}
	if crowdsale.Deadline < 0 {
		return "", fault.ErrInvalidDeadline
	}
	if crowdsale.EarlyBirdBonus < 0 || crowdsale.IssuerBonus < 0 {
		return "", fault.ErrInvalidBonus
	}
	tokens, err := amount.Scale(crowdsale.TokensPerUnit, crowdsale.PropertyType)
	if nil != err {
		return "", err
	}

	values[transactionrecord.FieldPropertyDesired] = crowdsale.PropertyDesired.Uint32()
	values[transactionrecord.FieldTokensPerUnit] = tokens
	values[transactionrecord.FieldDeadline] = uint64(crowdsale.Deadline)
	values[transactionrecord.FieldEarlyBirdBonus] = crowdsale.EarlyBirdBonus
	values[transactionrecord.FieldIssuerBonus] = crowdsale.IssuerBonus
	return toHex(transactionrecord.CrowdsaleCreate, values)
}

// CloseCrowdsale - end a crowdsale before its deadline
func CloseCrowdsale(id property.Identifier) (string, error) {
	if err := checkIdentifier(id); nil != err {
		return "", err
	}
	return toHex(transactionrecord.CloseCrowdsale, transactionrecord.Values{
		transactionrecord.FieldPropertyId: id.Uint32(),
	})
}

func (issuance Issuance) values() (transactionrecord.Values, error) {
	if err := checkEcosystem(issuance.Ecosystem); nil != err {
		return nil, err
	}
	if !issuance.PropertyType.IsValid() {
		return nil, fault.ErrInvalidPropertyType
	}
	return transactionrecord.Values{
		transactionrecord.FieldEcosystem:    issuance.Ecosystem.Uint8(),
		transactionrecord.FieldPropertyType: issuance.PropertyType.Uint16(),
		transactionrecord.FieldPreviousId:   issuance.PreviousId.Uint32(),
		transactionrecord.FieldCategory:     issuance.Category,
		transactionrecord.FieldSubcategory:  issuance.Subcategory,
		transactionrecord.FieldName:         issuance.Name,
		transactionrecord.FieldURL:          issuance.URL,
		transactionrecord.FieldData:         issuance.Data,
	}, nil
}
