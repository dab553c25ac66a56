// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/omnipack/codec"
	"github.com/bitmark-inc/omnipack/fault"
)

// Pack - turn a set of field values into a payload
//
// the Go type of each value must match the codec of its field:
//   uint8, uint16, uint32, uint64, int8, bool or string
//
// on error no partial payload is returned
func Pack(kind Kind, values Values) (Packed, error) {
	e, ok := registry.byKind[kind]
	if !ok {
		return nil, fault.ErrInvalidKind
	}

	for name := range values {
		if _, ok := e.fields[name]; !ok {
			return nil, fault.ErrUnexpectedField
		}
	}

	schema := e.schema
	buffer := make([]byte, 0, schema.MinimumLength())
	buffer = codec.AppendUint16(buffer, schema.Version)
	buffer = codec.AppendUint16(buffer, schema.MessageType)

	for _, field := range schema.Fields {
		value, ok := values[field.Name]
		if !ok {
			if field.Optional {
				break
			}
			return nil, fault.ErrMissingField
		}

		var err error
		buffer, err = appendValue(buffer, field.Codec, value)
		if nil != err {
			return nil, err
		}
	}

	return buffer, nil
}

// add one value to the buffer using its codec
func appendValue(buffer []byte, c codec.Type, value interface{}) ([]byte, error) {
	switch c {
	case codec.Uint8:
		if v, ok := value.(uint8); ok {
			return codec.AppendUint8(buffer, v), nil
		}
	case codec.Uint16:
		if v, ok := value.(uint16); ok {
			return codec.AppendUint16(buffer, v), nil
		}
	case codec.Uint32:
		if v, ok := value.(uint32); ok {
			return codec.AppendUint32(buffer, v), nil
		}
	case codec.Uint64:
		if v, ok := value.(uint64); ok {
			return codec.AppendUint64(buffer, v), nil
		}
	case codec.Int8:
		if v, ok := value.(int8); ok {
			return codec.AppendInt8(buffer, v), nil
		}
	case codec.Bool:
		if v, ok := value.(bool); ok {
			return codec.AppendBool(buffer, v), nil
		}
	case codec.CString:
		if v, ok := value.(string); ok {
			return codec.AppendCString(buffer, v, maxStringLength)
		}
	default:
		return nil, fault.ErrInvalidCodec
	}
	return nil, fault.ErrCodecMismatch
}
