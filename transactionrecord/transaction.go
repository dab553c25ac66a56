// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/omnipack/fault"
)

// Kind - the transaction kinds that can be packed
type Kind uint8

// enumerate the possible transaction kinds
const (
	// marks an unset kind - not used as a record type
	UnknownKind = Kind(iota)

	SimpleSend            = Kind(iota)
	SendToOwners          = Kind(iota)
	SendAll               = Kind(iota)
	DExSell               = Kind(iota) // offer tokens for bitcoin
	DExAccept             = Kind(iota) // accept an offer for bitcoin
	MetaDExTrade          = Kind(iota) // token for token order
	CancelTradesByPrice   = Kind(iota)
	CancelTradesByPair    = Kind(iota)
	CancelAllTrades       = Kind(iota)
	CrowdsaleCreate       = Kind(iota)
	CloseCrowdsale        = Kind(iota)
	FixedPropertyCreate   = Kind(iota)
	ManagedPropertyCreate = Kind(iota)
	Grant                 = Kind(iota)
	Revoke                = Kind(iota)
	ChangeIssuer          = Kind(iota)

	// this item must be last
	InvalidKind = Kind(iota)
)

var kindNames = map[Kind]string{
	SimpleSend:            "SimpleSend",
	SendToOwners:          "SendToOwners",
	SendAll:               "SendAll",
	DExSell:               "DExSell",
	DExAccept:             "DExAccept",
	MetaDExTrade:          "MetaDExTrade",
	CancelTradesByPrice:   "CancelTradesByPrice",
	CancelTradesByPair:    "CancelTradesByPair",
	CancelAllTrades:       "CancelAllTrades",
	CrowdsaleCreate:       "CrowdsaleCreate",
	CloseCrowdsale:        "CloseCrowdsale",
	FixedPropertyCreate:   "FixedPropertyCreate",
	ManagedPropertyCreate: "ManagedPropertyCreate",
	Grant:                 "Grant",
	Revoke:                "Revoke",
	ChangeIssuer:          "ChangeIssuer",
}

// IsValid - true for every kind that has a schema
func (kind Kind) IsValid() bool {
	return kind > UnknownKind && kind < InvalidKind
}

// String - name of the kind
func (kind Kind) String() string {
	if s, ok := kindNames[kind]; ok {
		return s
	}
	return "*unknown*"
}

// GoString - enum value and name, for debugging
func (kind Kind) GoString() string {
	return fmt.Sprintf("<Kind#%d:%q>", uint8(kind), kind.String())
}

// MarshalText - kind name for JSON
func (kind Kind) MarshalText() ([]byte, error) {
	if !kind.IsValid() {
		return nil, fault.ErrInvalidKind
	}
	return []byte(kind.String()), nil
}

// UnmarshalText - kind from its JSON name
func (kind *Kind) UnmarshalText(s []byte) error {
	for k, name := range kindNames {
		if name == string(s) {
			*kind = k
			return nil
		}
	}
	return fault.ErrInvalidKind
}

// Field - name of a field within a schema
type Field string

// all field names used by the schemas
const (
	FieldAction          = Field("action")
	FieldAmount          = Field("amount")
	FieldAmountDesired   = Field("amountDesired")
	FieldAmountForSale   = Field("amountForSale")
	FieldCategory        = Field("category")
	FieldData            = Field("data")
	FieldDeadline        = Field("deadline")
	FieldEarlyBirdBonus  = Field("earlyBirdBonus")
	FieldEcosystem       = Field("ecosystem")
	FieldIssuerBonus     = Field("issuerBonus")
	FieldMemo            = Field("memo")
	FieldMinAcceptFee    = Field("minAcceptFee")
	FieldName            = Field("name")
	FieldPaymentWindow   = Field("paymentWindow")
	FieldPreviousId      = Field("previousId")
	FieldPropertyDesired = Field("propertyDesired")
	FieldPropertyForSale = Field("propertyForSale")
	FieldPropertyId      = Field("propertyId")
	FieldPropertyType    = Field("propertyType")
	FieldSubcategory     = Field("subcategory")
	FieldTokensPerUnit   = Field("tokensPerUnit")
	FieldURL             = Field("url")
)

// Values - field values of one record keyed by field name
//
// the dynamic type of each value must match the codec of its field:
//   uint8, uint16, uint32, uint64, int8, bool or string
type Values map[Field]interface{}

// Packed - packed records are just a byte slice
type Packed []byte

// String - lowercase hex of the payload, no prefix
func (record Packed) String() string {
	return hex.EncodeToString(record)
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a hex JSON form to a packed
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	buffer := make([]byte, size)
	if _, err := hex.Decode(buffer, s); nil != err {
		return fault.ErrInvalidHex
	}
	*record = buffer
	return nil
}

// PackedFromHex - decode a hex payload
func PackedFromHex(s string) (Packed, error) {
	var record Packed
	if err := record.UnmarshalText([]byte(s)); nil != err {
		return nil, err
	}
	return record, nil
}
