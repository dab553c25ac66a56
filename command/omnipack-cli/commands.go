// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/omnipack/payload"
	"github.com/bitmark-inc/omnipack/property"
	"github.com/bitmark-inc/omnipack/sender"
)

// the property, amount and type flags of sendFlags
func sendArguments(c *cli.Context) (property.Identifier, decimal.Decimal, property.Type, error) {
	id, err := checkProperty(c.String("property"))
	if nil != err {
		return property.New, decimal.Decimal{}, property.NoType, err
	}
	value, err := checkAmount(c.String("amount"))
	if nil != err {
		return property.New, decimal.Decimal{}, property.NoType, err
	}
	propertyType, err := checkType(c.String("type"))
	if nil != err {
		return property.New, decimal.Decimal{}, property.NoType, err
	}
	return id, value, propertyType, nil
}

func runSimpleSend(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, value, propertyType, err := sendArguments(c)
	if nil != err {
		return err
	}
	to, err := checkReference(c.String("to"))
	if nil != err {
		return err
	}

	return perform(m, func(s *sender.Sender, from string) (string, error) {
		return s.SimpleSend(from, to, id, value, propertyType)
	})
}

func runSendToOwners(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, value, propertyType, err := sendArguments(c)
	if nil != err {
		return err
	}

	return perform(m, func(s *sender.Sender, from string) (string, error) {
		return s.SendToOwners(from, id, value, propertyType)
	})
}

func runSendAll(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	ecosystem, err := checkEcosystem(c.String("ecosystem"))
	if nil != err {
		return err
	}
	to, err := checkReference(c.String("to"))
	if nil != err {
		return err
	}

	return perform(m, func(s *sender.Sender, from string) (string, error) {
		return s.SendAll(from, to, ecosystem)
	})
}

func runDExSell(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, value, propertyType, err := sendArguments(c)
	if nil != err {
		return err
	}
	desired, err := checkAmount(c.String("desired"))
	if nil != err {
		return err
	}
	fee, err := checkAmount(c.String("fee"))
	if nil != err {
		return err
	}
	window := c.Int("window")
	if err := checkByte("window", window, 1, math.MaxUint8); nil != err {
		return err
	}
	action, err := payload.DExActionFromString(c.String("action"))
	if nil != err {
		return err
	}

	offer := payload.DExOffer{
		PropertyId:    id,
		AmountForSale: value,
		PropertyType:  propertyType,
		AmountDesired: desired,
		PaymentWindow: uint8(window),
		MinAcceptFee:  fee,
		Action:        action,
	}
	return perform(m, func(s *sender.Sender, from string) (string, error) {
		return s.CreateDExSellOffer(from, offer)
	})
}

func runDExAccept(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, value, propertyType, err := sendArguments(c)
	if nil != err {
		return err
	}
	seller, err := checkReference(c.String("to"))
	if nil != err {
		return err
	}

	return perform(m, func(s *sender.Sender, from string) (string, error) {
		return s.AcceptDExOffer(from, id, value, propertyType, seller)
	})
}

func orderArguments(c *cli.Context) (payload.Order, error) {
	order := payload.Order{}
	var err error

	if order.PropertyForSale, err = checkProperty(c.String("property")); nil != err {
		return order, err
	}
	if order.AmountForSale, err = checkAmount(c.String("amount")); nil != err {
		return order, err
	}
	if order.TypeForSale, err = checkType(c.String("type")); nil != err {
		return order, err
	}
	if order.PropertyDesired, err = checkProperty(c.String("desired-property")); nil != err {
		return order, err
	}
	if order.AmountDesired, err = checkAmount(c.String("desired-amount")); nil != err {
		return order, err
	}
	if order.TypeDesired, err = checkType(c.String("desired-type")); nil != err {
		return order, err
	}
	return order, nil
}

func runMetaDExTrade(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	order, err := orderArguments(c)
	if nil != err {
		return err
	}

	return perform(m, func(s *sender.Sender, from string) (string, error) {
		return s.CreateMetaDExSellOffer(from, order)
	})
}

func runCancelTradesByPrice(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	order, err := orderArguments(c)
	if nil != err {
		return err
	}

	return perform(m, func(s *sender.Sender, from string) (string, error) {
		return s.CancelMetaDExByPrice(from, order)
	})
}

func runCancelTradesByPair(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	forSale, err := checkProperty(c.String("property"))
	if nil != err {
		return err
	}
	desired, err := checkProperty(c.String("desired-property"))
	if nil != err {
		return err
	}

	return perform(m, func(s *sender.Sender, from string) (string, error) {
		return s.CancelMetaDExByPair(from, forSale, desired)
	})
}

func runCancelAllTrades(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	ecosystem, err := checkEcosystem(c.String("ecosystem"))
	if nil != err {
		return err
	}

	return perform(m, func(s *sender.Sender, from string) (string, error) {
		return s.CancelAllMetaDEx(from, ecosystem)
	})
}

func issuanceArguments(c *cli.Context) (payload.Issuance, error) {
	ecosystem, err := checkEcosystem(c.String("ecosystem"))
	if nil != err {
		return payload.Issuance{}, err
	}
	propertyType, err := checkType(c.String("type"))
	if nil != err {
		return payload.Issuance{}, err
	}
	return payload.Issuance{
		Ecosystem:    ecosystem,
		PropertyType: propertyType,
		PreviousId:   property.New,
		Category:     c.String("category"),
		Subcategory:  c.String("subcategory"),
		Name:         c.String("name"),
		URL:          c.String("url"),
		Data:         c.String("data"),
	}, nil
}

func runFixedPropertyCreate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	issuance, err := issuanceArguments(c)
	if nil != err {
		return err
	}
	value, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}

	return perform(m, func(s *sender.Sender, from string) (string, error) {
		return s.CreateProperty(from, issuance, value)
	})
}

func runManagedPropertyCreate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	issuance, err := issuanceArguments(c)
	if nil != err {
		return err
	}

	return perform(m, func(s *sender.Sender, from string) (string, error) {
		return s.CreateManagedProperty(from, issuance)
	})
}

func runCrowdsaleCreate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	issuance, err := issuanceArguments(c)
	if nil != err {
		return err
	}
	desired, err := checkProperty(c.String("desired-property"))
	if nil != err {
		return err
	}
	tokens, err := checkAmount(c.String("tokens-per-unit"))
	if nil != err {
		return err
	}
	earlyBird := c.Int("early-bird")
	if err := checkByte("early-bird", earlyBird, 0, math.MaxInt8); nil != err {
		return err
	}
	issuerBonus := c.Int("issuer-bonus")
	if err := checkByte("issuer-bonus", issuerBonus, 0, math.MaxInt8); nil != err {
		return err
	}

	crowdsale := payload.Crowdsale{
		Issuance:        issuance,
		PropertyDesired: desired,
		TokensPerUnit:   tokens,
		Deadline:        c.Int64("deadline"),
		EarlyBirdBonus:  int8(earlyBird),
		IssuerBonus:     int8(issuerBonus),
	}
	return perform(m, func(s *sender.Sender, from string) (string, error) {
		return s.CreateCrowdsale(from, crowdsale)
	})
}

func runCloseCrowdsale(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkProperty(c.String("property"))
	if nil != err {
		return err
	}

	return perform(m, func(s *sender.Sender, from string) (string, error) {
		return s.CloseCrowdsale(from, id)
	})
}

func runGrant(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, value, propertyType, err := sendArguments(c)
	if nil != err {
		return err
	}
	to := c.String("to")
	memo := c.String("memo")

	return perform(m, func(s *sender.Sender, from string) (string, error) {
		return s.GrantTokens(from, to, id, value, propertyType, memo)
	})
}

func runRevoke(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, value, propertyType, err := sendArguments(c)
	if nil != err {
		return err
	}
	memo := c.String("memo")

	return perform(m, func(s *sender.Sender, from string) (string, error) {
		return s.RevokeTokens(from, id, value, propertyType, memo)
	})
}

func runChangeIssuer(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkProperty(c.String("property"))
	if nil != err {
		return err
	}
	to, err := checkReference(c.String("to"))
	if nil != err {
		return err
	}

	return perform(m, func(s *sender.Sender, from string) (string, error) {
		return s.ChangeIssuer(from, id, to)
	})
}
