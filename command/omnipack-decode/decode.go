// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/bitmark-inc/omnipack/amount"
	"github.com/bitmark-inc/omnipack/property"
	"github.com/bitmark-inc/omnipack/transactionrecord"
)

// decoded - JSON form of one payload
type decoded struct {
	Kind        transactionrecord.Kind   `json:"kind"`
	Version     uint16                   `json:"version"`
	MessageType uint16                   `json:"messageType"`
	Fields      transactionrecord.Values `json:"fields"`

	// decimal form of the amount when the payload carries its property type
	Amount string `json:"amount,omitempty"`
}

func decode(h string) (*decoded, error) {
	h = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(h)), "0x")

	packed, err := transactionrecord.PackedFromHex(h)
	if nil != err {
		return nil, err
	}
	kind, values, err := packed.Unpack()
	if nil != err {
		return nil, err
	}
	schema, err := transactionrecord.Lookup(kind)
	if nil != err {
		return nil, err
	}

	d := &decoded{
		Kind:        kind,
		Version:     schema.Version,
		MessageType: schema.MessageType,
		Fields:      values,
	}

	// only issuance records state the type of their own amount
	if n, ok := values[transactionrecord.FieldPropertyType].(uint16); ok {
		if units, ok := values[transactionrecord.FieldAmount].(uint64); ok {
			if t, err := property.TypeFromUint16(n); nil == err {
				d.Amount = amount.Unscale(units, t).StringFixed(t.Decimals())
			}
		}
	}
	return d, nil
}
