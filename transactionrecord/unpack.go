// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/omnipack/codec"
	"github.com/bitmark-inc/omnipack/fault"
)

// Unpack - turn a payload back into its kind and field values
//
// the whole payload must be consumed: trailing bytes are an error
func (record Packed) Unpack() (Kind, Values, error) {

	version, n := codec.ReadUint16(record)
	if 0 == n {
		return UnknownKind, nil, fault.ErrTruncatedPayload
	}
	messageType, m := codec.ReadUint16(record[n:])
	if 0 == m {
		return UnknownKind, nil, fault.ErrTruncatedPayload
	}
	n += m

	e, ok := registry.byHeader[header{version: version, messageType: messageType}]
	if !ok {
		return UnknownKind, nil, fault.ErrUnknownMessageType
	}

	values := make(Values, len(e.schema.Fields))
	for _, field := range e.schema.Fields {
		if field.Optional && n == len(record) {
			break
		}
		value, count, err := readValue(record[n:], field.Codec)
		if nil != err {
			return UnknownKind, nil, err
		}
		values[field.Name] = value
		n += count
	}

	if n != len(record) {
		return UnknownKind, nil, fault.ErrTrailingData
	}
	return e.schema.Kind, values, nil
}

// read one value using its codec
func readValue(buffer []byte, c codec.Type) (interface{}, int, error) {
	var value interface{}
	n := 0
	switch c {
	case codec.Uint8:
		value, n = codec.ReadUint8(buffer)
	case codec.Uint16:
		value, n = codec.ReadUint16(buffer)
	case codec.Uint32:
		value, n = codec.ReadUint32(buffer)
	case codec.Uint64:
		value, n = codec.ReadUint64(buffer)
	case codec.Int8:
		value, n = codec.ReadInt8(buffer)
	case codec.Bool:
		return codec.ReadBool(buffer)
	case codec.CString:
		return codec.ReadCString(buffer, maxStringLength)
	default:
		return nil, 0, fault.ErrInvalidCodec
	}
	if 0 == n {
		return nil, 0, fault.ErrTruncatedPayload
	}
	return value, n, nil
}
