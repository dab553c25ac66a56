// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sender - build Omni Layer payloads and hand them to a broadcaster
package sender

import (
	"github.com/bitmark-inc/logger"
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/omnipack/payload"
	"github.com/bitmark-inc/omnipack/property"
)

//go:generate mockgen -source=sender.go -destination=mocks/broadcaster.go -package=mocks

// Broadcaster - embeds a payload in a base chain transaction and sends it
//
// reference is the optional receiving address, empty when not needed;
// the result is the transaction id.  Addresses are checked by the
// broadcaster as only it knows the chain
type Broadcaster interface {
	Broadcast(from string, payloadHex string, reference string) (string, error)
}

// Sender - one method per transaction kind
type Sender struct {
	log         *logger.L
	broadcaster Broadcaster
}

// New - create a sender around a broadcaster
func New(broadcaster Broadcaster) *Sender {
	return &Sender{
		log:         logger.New("sender"),
		broadcaster: broadcaster,
	}
}

// common tail of every operation
func (s *Sender) send(name string, from string, reference string, payloadHex string, err error) (string, error) {
	if nil != err {
		s.log.Warnf("%s: payload error: %s", name, err)
		return "", err
	}
	s.log.Debugf("%s: from: %s  reference: %q  payload: %s", name, from, reference, payloadHex)

	txId, err := s.broadcaster.Broadcast(from, payloadHex, reference)
	if nil != err {
		s.log.Errorf("%s: broadcast error: %s", name, err)
		return "", err
	}

	s.log.Infof("%s: txid: %s", name, txId)
	return txId, nil
}

// SimpleSend - send tokens to another address
func (s *Sender) SimpleSend(from string, to string, id property.Identifier, amount decimal.Decimal, propertyType property.Type) (string, error) {
	h, err := payload.SimpleSend(id, amount, propertyType)
	return s.send("SimpleSend", from, to, h, err)
}

// SendAll - send every token in an ecosystem to another address
func (s *Sender) SendAll(from string, to string, ecosystem property.Ecosystem) (string, error) {
	h, err := payload.SendAll(ecosystem)
	return s.send("SendAll", from, to, h, err)
}

// SendToOwners - distribute tokens to all holders of a property
func (s *Sender) SendToOwners(from string, id property.Identifier, amount decimal.Decimal, propertyType property.Type) (string, error) {
	h, err := payload.SendToOwners(id, amount, propertyType)
	return s.send("SendToOwners", from, "", h, err)
}

// CreateDExSellOffer - offer tokens for bitcoin
func (s *Sender) CreateDExSellOffer(from string, offer payload.DExOffer) (string, error) {
	h, err := payload.DExSell(offer)
	return s.send("CreateDExSellOffer", from, "", h, err)
}

// AcceptDExOffer - accept the offer made by the seller address
func (s *Sender) AcceptDExOffer(from string, id property.Identifier, amount decimal.Decimal, propertyType property.Type, seller string) (string, error) {
	h, err := payload.DExAccept(id, amount, propertyType)
	return s.send("AcceptDExOffer", from, seller, h, err)
}

// CreateMetaDExSellOffer - place a token for token order
func (s *Sender) CreateMetaDExSellOffer(from string, order payload.Order) (string, error) {
	h, err := payload.MetaDExTrade(order)
	return s.send("CreateMetaDExSellOffer", from, "", h, err)
}

// CancelMetaDExByPrice - cancel orders at one price
func (s *Sender) CancelMetaDExByPrice(from string, order payload.Order) (string, error) {
	h, err := payload.CancelTradesByPrice(order)
	return s.send("CancelMetaDExByPrice", from, "", h, err)
}

// CancelMetaDExByPair - cancel all orders for a pair
func (s *Sender) CancelMetaDExByPair(from string, forSale property.Identifier, desired property.Identifier) (string, error) {
	h, err := payload.CancelTradesByPair(forSale, desired)
	return s.send("CancelMetaDExByPair", from, "", h, err)
}

// CancelAllMetaDEx - cancel all orders in an ecosystem
func (s *Sender) CancelAllMetaDEx(from string, ecosystem property.Ecosystem) (string, error) {
	h, err := payload.CancelAllTrades(ecosystem)
	return s.send("CancelAllMetaDEx", from, "", h, err)
}

// CreateCrowdsale - open a crowdsale
func (s *Sender) CreateCrowdsale(from string, crowdsale payload.Crowdsale) (string, error) {
	h, err := payload.CrowdsaleCreate(crowdsale)
	return s.send("CreateCrowdsale", from, "", h, err)
}

// CreateProperty - issue a fixed supply property
func (s *Sender) CreateProperty(from string, issuance payload.Issuance, amount decimal.Decimal) (string, error) {
	h, err := payload.FixedPropertyCreate(issuance, amount)
	return s.send("CreateProperty", from, "", h, err)
}

// CloseCrowdsale - end a crowdsale early
func (s *Sender) CloseCrowdsale(from string, id property.Identifier) (string, error) {
	h, err := payload.CloseCrowdsale(id)
	return s.send("CloseCrowdsale", from, "", h, err)
}

// CreateManagedProperty - issue a property with a managed supply
func (s *Sender) CreateManagedProperty(from string, issuance payload.Issuance) (string, error) {
	h, err := payload.ManagedPropertyCreate(issuance)
	return s.send("CreateManagedProperty", from, "", h, err)
}

// GrantTokens - issue managed tokens, to the issuer when to is empty
func (s *Sender) GrantTokens(from string, to string, id property.Identifier, amount decimal.Decimal, propertyType property.Type, memo string) (string, error) {
	h, err := payload.Grant(id, amount, propertyType, memo)
	return s.send("GrantTokens", from, to, h, err)
}

// RevokeTokens - destroy managed tokens held by the issuer
func (s *Sender) RevokeTokens(from string, id property.Identifier, amount decimal.Decimal, propertyType property.Type, memo string) (string, error) {
	h, err := payload.Revoke(id, amount, propertyType, memo)
	return s.send("RevokeTokens", from, "", h, err)
}

// ChangeIssuer - transfer management of a property to another address
func (s *Sender) ChangeIssuer(from string, id property.Identifier, to string) (string, error) {
	h, err := payload.ChangeIssuer(id)
	return s.send("ChangeIssuer", from, to, h, err)
}
