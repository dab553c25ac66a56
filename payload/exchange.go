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

// DExOffer - parameters of a distributed exchange sell offer
//
// AmountDesired and MinAcceptFee are in bitcoin and are always scaled
// as divisible
type DExOffer struct {
	PropertyId    property.Identifier
	AmountForSale decimal.Decimal
	PropertyType  property.Type
	AmountDesired decimal.Decimal
	PaymentWindow uint8 // blocks
	MinAcceptFee  decimal.Decimal
	Action        DExAction
}

// Order - one side of a token for token trade
type Order struct {
	PropertyForSale property.Identifier
	AmountForSale   decimal.Decimal
	TypeForSale     property.Type
	PropertyDesired property.Identifier
	AmountDesired   decimal.Decimal
	TypeDesired     property.Type
}

// DExSell - create, update or cancel an offer of tokens for bitcoin
func DExSell(offer DExOffer) (string, error) {
	if err := checkIdentifier(offer.PropertyId); nil != err {
		return "", err
	}
	if !offer.Action.IsValid() {
		return "", fault.ErrInvalidAction
	}
	if 0 == offer.PaymentWindow {
		return "", fault.ErrInvalidPaymentWindow
	}

	forSale, err := amount.Scale(offer.AmountForSale, offer.PropertyType)
	if nil != err {
		return "", err
	}
	desired, err := amount.Scale(offer.AmountDesired, property.Divisible)
	if nil != err {
		return "", err
	}
	fee, err := amount.Scale(offer.MinAcceptFee, property.Divisible)
	if nil != err {
		return "", err
	}

	return toHex(transactionrecord.DExSell, transactionrecord.Values{
		transactionrecord.FieldPropertyId:    offer.PropertyId.Uint32(),
		transactionrecord.FieldAmountForSale: forSale,
		transactionrecord.FieldAmountDesired: desired,
		transactionrecord.FieldPaymentWindow: offer.PaymentWindow,
		transactionrecord.FieldMinAcceptFee:  fee,
		transactionrecord.FieldAction:        uint8(offer.Action),
	})
}

// DExAccept - accept an offer of tokens for bitcoin
func DExAccept(id property.Identifier, value decimal.Decimal, propertyType property.Type) (string, error) {
	values, err := sendValues(id, value, propertyType)
	if nil != err {
		return "", err
	}
	return toHex(transactionrecord.DExAccept, values)
}

// MetaDExTrade - place a token for token order
func MetaDExTrade(order Order) (string, error) {
	values, err := orderValues(order)
	if nil != err {
		return "", err
	}
	return toHex(transactionrecord.MetaDExTrade, values)
}

// CancelTradesByPrice - cancel the orders matching a pair and a price
func CancelTradesByPrice(order Order) (string, error) {
	values, err := orderValues(order)
	if nil != err {
		return "", err
	}
	return toHex(transactionrecord.CancelTradesByPrice, values)
}

// CancelTradesByPair - cancel all orders for a pair
func CancelTradesByPair(forSale property.Identifier, desired property.Identifier) (string, error) {
	if err := checkPair(forSale, desired); nil != err {
		return "", err
	}
	return toHex(transactionrecord.CancelTradesByPair, transactionrecord.Values{
		transactionrecord.FieldPropertyForSale: forSale.Uint32(),
		transactionrecord.FieldPropertyDesired: desired.Uint32(),
	})
}

// CancelAllTrades - cancel every order in an ecosystem
func CancelAllTrades(ecosystem property.Ecosystem) (string, error) {
	if err := checkEcosystem(ecosystem); nil != err {
		return "", err
	}
	return toHex(transactionrecord.CancelAllTrades, transactionrecord.Values{
		transactionrecord.FieldEcosystem: ecosystem.Uint8(),
	})
}

func orderValues(order Order) (transactionrecord.Values, error) {
	if err := checkPair(order.PropertyForSale, order.PropertyDesired); nil != err {
		return nil, err
	}
	forSale, err := amount.Scale(order.AmountForSale, order.TypeForSale)
	if nil != err {
		return nil, err
	}
	desired, err := amount.Scale(order.AmountDesired, order.TypeDesired)
	if nil != err {
		return nil, err
	}
	return transactionrecord.Values{
		transactionrecord.FieldPropertyForSale: order.PropertyForSale.Uint32(),
		transactionrecord.FieldAmountForSale:   forSale,
		transactionrecord.FieldPropertyDesired: order.PropertyDesired.Uint32(),
		transactionrecord.FieldAmountDesired:   desired,
	}, nil
}
