// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payload_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/omnipack/fault"
	"github.com/bitmark-inc/omnipack/payload"
	"github.com/bitmark-inc/omnipack/property"
)

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if nil != err {
		panic(err)
	}
	return d
}

func fooIssuance() payload.Issuance {
	return payload.Issuance{
		Ecosystem:    property.Main,
		PropertyType: property.Divisible,
		PreviousId:   property.New,
		Name:         "Foo",
	}
}

// the widely quoted "Foo" example pairs an amount of 1000 with the bytes
// 000000003b9aca00, but those bytes are 10^9 base units, which is 10.0
// divisible; the bytes are kept here and 1000.0 is checked separately
func TestFixedPropertyCreate(t *testing.T) {
	h, err := payload.FixedPropertyCreate(fooIssuance(), mustDecimal("10.0"))
	assert.Nil(t, err, "fixed property error")
	assert.Equal(t, "00000032"+"01"+"0002"+"00000000"+"00"+"00"+"466f6f00"+"00"+"00"+"000000003b9aca00", h, "fixed property hex")

	h, err = payload.FixedPropertyCreate(fooIssuance(), mustDecimal("1000.0"))
	assert.Nil(t, err, "fixed property error")
	assert.True(t, strings.HasSuffix(h, "000000174876e800"), "1000.0 divisible is 10^11 units: %s", h)
}

func TestFixedPropertyCreateIndivisible(t *testing.T) {
	issuance := fooIssuance()
	issuance.PropertyType = property.Indivisible
	issuance.Ecosystem = property.Test

	h, err := payload.FixedPropertyCreate(issuance, mustDecimal("3"))
	assert.Nil(t, err, "fixed property error")
	assert.Equal(t, "00000032"+"02"+"0001"+"00000000"+"00"+"00"+"466f6f00"+"00"+"00"+"0000000000000003", h, "indivisible hex")

	_, err = payload.FixedPropertyCreate(issuance, mustDecimal("3.5"))
	assert.Equal(t, fault.ErrFractionalAmount, err, "fractional indivisible")
	assert.True(t, fault.IsErrValidation(err), "fractional is a validation error")
}

func TestSends(t *testing.T) {
	h, err := payload.SimpleSend(31, mustDecimal("1.00000000"), property.Divisible)
	assert.Nil(t, err, "simple send error")
	assert.Equal(t, "00000000"+"0000001f"+"0000000005f5e100", h, "simple send hex")

	h, err = payload.SimpleSend(31, mustDecimal("0.00000001"), property.Divisible)
	assert.Nil(t, err, "simple send error")
	assert.Equal(t, "00000000"+"0000001f"+"0000000000000001", h, "smallest unit")

	h, err = payload.SendToOwners(3, mustDecimal("0"), property.Indivisible)
	assert.Nil(t, err, "send to owners error")
	assert.Equal(t, "00000003"+"00000003"+"0000000000000000", h, "send to owners hex")

	h, err = payload.SendAll(property.Main)
	assert.Nil(t, err, "send all error")
	assert.Equal(t, "00000004"+"01", h, "send all hex")

	h, err = payload.DExAccept(1, mustDecimal("2.5"), property.Divisible)
	assert.Nil(t, err, "accept error")
	assert.Equal(t, "00000016"+"00000001"+"000000000ee6b280", h, "accept hex")
}

func TestSendErrors(t *testing.T) {
	_, err := payload.SimpleSend(31, mustDecimal("0.000000001"), property.Divisible)
	assert.Equal(t, fault.ErrAmountPrecision, err, "nine decimal places")
	assert.True(t, fault.IsErrPrecision(err), "precision class")

	_, err = payload.SimpleSend(property.New, mustDecimal("1"), property.Divisible)
	assert.Equal(t, fault.ErrInvalidPropertyId, err, "zero property")

	_, err = payload.SimpleSend(1, mustDecimal("-1"), property.Divisible)
	assert.Equal(t, fault.ErrNegativeAmount, err, "negative amount")

	_, err = payload.SimpleSend(1, mustDecimal("1"), property.NoType)
	assert.Equal(t, fault.ErrInvalidPropertyType, err, "missing property type")

	_, err = payload.SimpleSend(1, mustDecimal("18446744073709551616"), property.Indivisible)
	assert.Equal(t, fault.ErrAmountOverflow, err, "above uint64")
	assert.True(t, fault.IsErrOverflow(err), "overflow class")

	_, err = payload.SendAll(property.Ecosystem(3))
	assert.Equal(t, fault.ErrInvalidEcosystem, err, "bad ecosystem")
}

func TestDExSell(t *testing.T) {
	offer := payload.DExOffer{
		PropertyId:    property.Omni,
		AmountForSale: mustDecimal("1.5"),
		PropertyType:  property.Divisible,
		AmountDesired: mustDecimal("0.1"),
		PaymentWindow: 10,
		MinAcceptFee:  mustDecimal("0.0001"),
		Action:        payload.ActionNew,
	}
	h, err := payload.DExSell(offer)
	assert.Nil(t, err, "dex sell error")
	assert.Equal(t, "00010014"+"00000001"+"0000000008f0d180"+"0000000000989680"+"0a"+"0000000000002710"+"01", h, "dex sell hex")

	offer.Action = payload.ActionCancel
	h, err = payload.DExSell(offer)
	assert.Nil(t, err, "dex cancel error")
	assert.True(t, strings.HasSuffix(h, "03"), "cancel action: %s", h)

	offer.Action = payload.DExAction(4)
	_, err = payload.DExSell(offer)
	assert.Equal(t, fault.ErrInvalidAction, err, "undocumented action")

	offer.Action = payload.ActionUpdate
	offer.PaymentWindow = 0
	_, err = payload.DExSell(offer)
	assert.Equal(t, fault.ErrInvalidPaymentWindow, err, "zero window")

	offer.PaymentWindow = 1
	offer.MinAcceptFee = mustDecimal("0.000000001")
	_, err = payload.DExSell(offer)
	assert.Equal(t, fault.ErrAmountPrecision, err, "fee is bitcoin so divisible")
}

func TestDExActionFromString(t *testing.T) {
	items := []struct {
		in     string
		action payload.DExAction
		err    error
	}{
		{"new", payload.ActionNew, nil},
		{"UPDATE", payload.ActionUpdate, nil},
		{"3", payload.ActionCancel, nil},
		{"0", payload.NoAction, fault.ErrInvalidAction},
		{"4", payload.NoAction, fault.ErrInvalidAction},
		{"close", payload.NoAction, fault.ErrInvalidAction},
	}
	for _, item := range items {
		action, err := payload.DExActionFromString(item.in)
		assert.Equal(t, item.err, err, "error for: %q", item.in)
		assert.Equal(t, item.action, action, "action for: %q", item.in)
	}
}

func TestMetaDEx(t *testing.T) {
	order := payload.Order{
		PropertyForSale: 3,
		AmountForSale:   mustDecimal("2"),
		TypeForSale:     property.Indivisible,
		PropertyDesired: property.Omni,
		AmountDesired:   mustDecimal("0.5"),
		TypeDesired:     property.Divisible,
	}
	body := "00000003" + "0000000000000002" + "00000001" + "0000000002faf080"

	h, err := payload.MetaDExTrade(order)
	assert.Nil(t, err, "trade error")
	assert.Equal(t, "00000019"+body, h, "trade hex")

	h, err = payload.CancelTradesByPrice(order)
	assert.Nil(t, err, "cancel by price error")
	assert.Equal(t, "0000001a"+body, h, "cancel by price hex")

	h, err = payload.CancelTradesByPair(3, property.Omni)
	assert.Nil(t, err, "cancel by pair error")
	assert.Equal(t, "0000001b"+"00000003"+"00000001", h, "cancel by pair hex")

	h, err = payload.CancelAllTrades(property.Test)
	assert.Nil(t, err, "cancel all error")
	assert.Equal(t, "0000001c"+"02", h, "cancel all hex")

	order.PropertyDesired = 3
	_, err = payload.MetaDExTrade(order)
	assert.Equal(t, fault.ErrSameProperty, err, "same property")

	order.PropertyDesired = property.TOmni
	_, err = payload.MetaDExTrade(order)
	assert.Equal(t, fault.ErrMismatchedEcosystem, err, "cross ecosystem")

	_, err = payload.CancelTradesByPair(0x80000003, 3)
	assert.Equal(t, fault.ErrMismatchedEcosystem, err, "cross ecosystem pair")
}

func TestCrowdsaleCreate(t *testing.T) {
	crowdsale := payload.Crowdsale{
		Issuance: payload.Issuance{
			Ecosystem:    property.Main,
			PropertyType: property.Divisible,
			Name:         "CS",
		},
		PropertyDesired: property.Omni,
		TokensPerUnit:   mustDecimal("100"),
		Deadline:        1700000000,
		EarlyBirdBonus:  5,
		IssuerBonus:     3,
	}
	h, err := payload.CrowdsaleCreate(crowdsale)
	assert.Nil(t, err, "crowdsale error")
	expected := "00000033" + "01" + "0002" + "00000000" + "00" + "00" + "435300" + "00" + "00" +
		"00000001" + "00000002540be400" + "000000006553f100" + "05" + "03"
	assert.Equal(t, expected, h, "crowdsale hex")

	bad := crowdsale
	bad.EarlyBirdBonus = -1
	_, err = payload.CrowdsaleCreate(bad)
	assert.Equal(t, fault.ErrInvalidBonus, err, "negative bonus")

	bad = crowdsale
	bad.Deadline = -1
	_, err = payload.CrowdsaleCreate(bad)
	assert.Equal(t, fault.ErrInvalidDeadline, err, "negative deadline")

	bad = crowdsale
	bad.PropertyDesired = property.TOmni
	_, err = payload.CrowdsaleCreate(bad)
	assert.Equal(t, fault.ErrMismatchedEcosystem, err, "desired in other ecosystem")

	bad = crowdsale
	bad.PropertyDesired = property.New
	_, err = payload.CrowdsaleCreate(bad)
	assert.Equal(t, fault.ErrInvalidPropertyId, err, "missing desired property")

	h, err = payload.CloseCrowdsale(5)
	assert.Nil(t, err, "close error")
	assert.Equal(t, "00000035"+"00000005", h, "close hex")
}

func TestManagedProperty(t *testing.T) {
	issuance := fooIssuance()
	issuance.PropertyType = property.Indivisible
	issuance.Category = "Cat"
	issuance.URL = "u"

	h, err := payload.ManagedPropertyCreate(issuance)
	assert.Nil(t, err, "managed error")
	assert.Equal(t, "00000036"+"01"+"0001"+"00000000"+"43617400"+"00"+"466f6f00"+"7500"+"00", h, "managed hex")

	h, err = payload.Grant(3, mustDecimal("100"), property.Indivisible, "memo")
	assert.Nil(t, err, "grant error")
	assert.Equal(t, "00000037"+"00000003"+"0000000000000064"+"6d656d6f00", h, "grant hex")

	h, err = payload.Revoke(3, mustDecimal("100"), property.Indivisible, "")
	assert.Nil(t, err, "revoke error")
	assert.Equal(t, "00000038"+"00000003"+"0000000000000064"+"00", h, "revoke hex")

	h, err = payload.ChangeIssuer(3)
	assert.Nil(t, err, "change issuer error")
	assert.Equal(t, "00000046"+"00000003", h, "change issuer hex")
	assert.Equal(t, 16, len(h), "fixed length")
}

func TestIssuanceErrors(t *testing.T) {
	issuance := fooIssuance()
	issuance.Name = strings.Repeat("é", 128)
	_, err := payload.ManagedPropertyCreate(issuance)
	assert.Equal(t, fault.ErrStringTooLong, err, "256 byte name")
	assert.True(t, fault.IsErrValidation(err), "validation class")

	issuance.Name = strings.Repeat("x", 255)
	_, err = payload.ManagedPropertyCreate(issuance)
	assert.Nil(t, err, "255 byte name")

	issuance = fooIssuance()
	issuance.Ecosystem = property.NoEcosystem
	_, err = payload.ManagedPropertyCreate(issuance)
	assert.Equal(t, fault.ErrInvalidEcosystem, err, "no ecosystem")

	issuance = fooIssuance()
	issuance.PropertyType = property.Type(3)
	_, err = payload.ManagedPropertyCreate(issuance)
	assert.Equal(t, fault.ErrInvalidPropertyType, err, "bad type")

	issuance = fooIssuance()
	issuance.Data = "bad\xff"
	_, err = payload.ManagedPropertyCreate(issuance)
	assert.Equal(t, fault.ErrStringInvalidUTF8, err, "bad utf8")
}
