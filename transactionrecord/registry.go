// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/omnipack/codec"
	"github.com/bitmark-inc/omnipack/fault"
)

// byte sizes for fixed parts of a payload
const (
	headerLength    = 4 // version + message type
	maxStringLength = codec.MaxStringLength
)

// FieldSpec - one entry in a schema
type FieldSpec struct {
	Name  Field
	Codec codec.Type

	// only written when a value is supplied; optional fields may only
	// appear at the end of a schema
	Optional bool
}

// Schema - wire layout of one transaction kind
type Schema struct {
	Kind        Kind
	Version     uint16
	MessageType uint16
	Fields      []FieldSpec
}

// Omni Layer message types
const (
	typeSimpleSend            = 0
	typeSendToOwners          = 3
	typeSendAll               = 4
	typeDExSell               = 20
	typeDExAccept             = 22
	typeMetaDExTrade          = 25
	typeCancelTradesByPrice   = 26
	typeCancelTradesByPair    = 27
	typeCancelAllTrades       = 28
	typeFixedPropertyCreate   = 50
	typeCrowdsaleCreate       = 51
	typeCloseCrowdsale        = 53
	typeManagedPropertyCreate = 54
	typeGrant                 = 55
	typeRevoke                = 56
	typeChangeIssuer          = 70
)

// shared field groups
var (
	sendFields = []FieldSpec{
		{Name: FieldPropertyId, Codec: codec.Uint32},
		{Name: FieldAmount, Codec: codec.Uint64},
	}
	tradeFields = []FieldSpec{
		{Name: FieldPropertyForSale, Codec: codec.Uint32},
		{Name: FieldAmountForSale, Codec: codec.Uint64},
		{Name: FieldPropertyDesired, Codec: codec.Uint32},
		{Name: FieldAmountDesired, Codec: codec.Uint64},
	}
	issuanceFields = []FieldSpec{
		{Name: FieldEcosystem, Codec: codec.Uint8},
		{Name: FieldPropertyType, Codec: codec.Uint16},
		{Name: FieldPreviousId, Codec: codec.Uint32},
		{Name: FieldCategory, Codec: codec.CString},
		{Name: FieldSubcategory, Codec: codec.CString},
		{Name: FieldName, Codec: codec.CString},
		{Name: FieldURL, Codec: codec.CString},
		{Name: FieldData, Codec: codec.CString},
	}
	managementFields = []FieldSpec{
		{Name: FieldPropertyId, Codec: codec.Uint32},
		{Name: FieldAmount, Codec: codec.Uint64},
		{Name: FieldMemo, Codec: codec.CString, Optional: true},
	}
	propertyOnlyFields = []FieldSpec{
		{Name: FieldPropertyId, Codec: codec.Uint32},
	}
	ecosystemOnlyFields = []FieldSpec{
		{Name: FieldEcosystem, Codec: codec.Uint8},
	}
)

// the protocol table, the only place that defines field order
var schemaTable = []Schema{
	{SimpleSend, 0, typeSimpleSend, sendFields},
	{SendToOwners, 0, typeSendToOwners, sendFields},
	{SendAll, 0, typeSendAll, ecosystemOnlyFields},
	{DExSell, 1, typeDExSell, []FieldSpec{
		{Name: FieldPropertyId, Codec: codec.Uint32},
		{Name: FieldAmountForSale, Codec: codec.Uint64},
		{Name: FieldAmountDesired, Codec: codec.Uint64},
		{Name: FieldPaymentWindow, Codec: codec.Uint8},
		{Name: FieldMinAcceptFee, Codec: codec.Uint64},
		{Name: FieldAction, Codec: codec.Uint8},
	}},
	{DExAccept, 0, typeDExAccept, sendFields},
	{MetaDExTrade, 0, typeMetaDExTrade, tradeFields},
	{CancelTradesByPrice, 0, typeCancelTradesByPrice, tradeFields},
	{CancelTradesByPair, 0, typeCancelTradesByPair, []FieldSpec{
		{Name: FieldPropertyForSale, Codec: codec.Uint32},
		{Name: FieldPropertyDesired, Codec: codec.Uint32},
	}},
	{CancelAllTrades, 0, typeCancelAllTrades, ecosystemOnlyFields},
	{CrowdsaleCreate, 0, typeCrowdsaleCreate, concatenate(issuanceFields, []FieldSpec{
		{Name: FieldPropertyDesired, Codec: codec.Uint32},
		{Name: FieldTokensPerUnit, Codec: codec.Uint64},
		{Name: FieldDeadline, Codec: codec.Uint64},
		{Name: FieldEarlyBirdBonus, Codec: codec.Int8},
		{Name: FieldIssuerBonus, Codec: codec.Int8},
	})},
	{CloseCrowdsale, 0, typeCloseCrowdsale, propertyOnlyFields},
	{FixedPropertyCreate, 0, typeFixedPropertyCreate, concatenate(issuanceFields, []FieldSpec{
		{Name: FieldAmount, Codec: codec.Uint64},
	})},
	{ManagedPropertyCreate, 0, typeManagedPropertyCreate, issuanceFields},
	{Grant, 0, typeGrant, managementFields},
	{Revoke, 0, typeRevoke, managementFields},
	{ChangeIssuer, 0, typeChangeIssuer, propertyOnlyFields},
}

func concatenate(lists ...[]FieldSpec) []FieldSpec {
	result := make([]FieldSpec, 0)
	for _, l := range lists {
		result = append(result, l...)
	}
	return result
}

// key for finding a schema from a payload header
type header struct {
	version     uint16
	messageType uint16
}

type entry struct {
	schema Schema
	fields map[Field]struct{}
}

type registryTable struct {
	byKind   map[Kind]*entry
	byHeader map[header]*entry
}

// built once, read only after package initialisation
var registry = newRegistry(schemaTable)

// index the table and check it is consistent
//
// any problem is a programming error so panics
func newRegistry(table []Schema) *registryTable {
	r := &registryTable{
		byKind:   make(map[Kind]*entry),
		byHeader: make(map[header]*entry),
	}

	for _, schema := range table {
		if !schema.Kind.IsValid() {
			fault.Panicf("registry: invalid kind: %d", schema.Kind)
		}
		if _, ok := r.byKind[schema.Kind]; ok {
			fault.Panicf("registry: duplicate kind: %s", schema.Kind)
		}
		h := header{version: schema.Version, messageType: schema.MessageType}
		if _, ok := r.byHeader[h]; ok {
			fault.Panicf("registry: %s: duplicate version: %d message type: %d", schema.Kind, h.version, h.messageType)
		}

		e := &entry{
			schema: schema,
			fields: make(map[Field]struct{}),
		}
		optional := false
		for _, field := range schema.Fields {
			if !field.Codec.IsValid() {
				fault.Panicf("registry: %s: field: %q has invalid codec", schema.Kind, field.Name)
			}
			if _, ok := e.fields[field.Name]; ok {
				fault.Panicf("registry: %s: duplicate field: %q", schema.Kind, field.Name)
			}
			if optional && !field.Optional {
				fault.Panicf("registry: %s: field: %q follows an optional field", schema.Kind, field.Name)
			}
			optional = field.Optional
			e.fields[field.Name] = struct{}{}
		}

		r.byKind[schema.Kind] = e
		r.byHeader[h] = e
	}

	for kind := UnknownKind + 1; kind < InvalidKind; kind += 1 {
		if _, ok := r.byKind[kind]; !ok {
			fault.Panicf("registry: missing schema for: %s", kind)
		}
	}
	return r
}

// Lookup - the schema of a kind
//
// the result is a copy, changing it does not affect packing
func Lookup(kind Kind) (Schema, error) {
	e, ok := registry.byKind[kind]
	if !ok {
		return Schema{}, fault.ErrInvalidKind
	}
	return e.schema.copy(), nil
}

// Schemas - copies of all schemas in kind order
func Schemas() []Schema {
	result := make([]Schema, 0, len(registry.byKind))
	for kind := UnknownKind + 1; kind < InvalidKind; kind += 1 {
		result = append(result, registry.byKind[kind].schema.copy())
	}
	return result
}

func (schema Schema) copy() Schema {
	fields := make([]FieldSpec, len(schema.Fields))
	copy(fields, schema.Fields)
	schema.Fields = fields
	return schema
}

// MinimumLength - bytes in the shortest valid payload of this schema
func (schema Schema) MinimumLength() int {
	n := headerLength
	for _, field := range schema.Fields {
		switch {
		case field.Optional:
		case codec.CString == field.Codec:
			n += 1 // terminator only
		default:
			n += field.Codec.Width()
		}
	}
	return n
}
