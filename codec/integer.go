// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
)

// AppendUint8 - append a single byte
func AppendUint8(buffer []byte, value uint8) []byte {
	return append(buffer, value)
}

// AppendUint16 - append 2 bytes, most significant first
func AppendUint16(buffer []byte, value uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], value)
	return append(buffer, b[:]...)
}

// AppendUint32 - append 4 bytes, most significant first
func AppendUint32(buffer []byte, value uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

// AppendUint64 - append 8 bytes, most significant first
func AppendUint64(buffer []byte, value uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

// AppendInt8 - append a two's complement signed byte
func AppendInt8(buffer []byte, value int8) []byte {
	return append(buffer, byte(value))
}

// AppendBool - append 0x01 for true, 0x00 for false
func AppendBool(buffer []byte, value bool) []byte {
	if value {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}

// ReadUint8 - read a byte from the start of buffer
//
// also return the number of bytes used as second value
// returns 0, 0 if buffer is truncated
func ReadUint8(buffer []byte) (uint8, int) {
	if len(buffer) < 1 {
		return 0, 0
	}
	return buffer[0], 1
}

// ReadUint16 - read a big-endian 16 bit value, see ReadUint8 for results
func ReadUint16(buffer []byte) (uint16, int) {
	if len(buffer) < 2 {
		return 0, 0
	}
	return binary.BigEndian.Uint16(buffer), 2
}

// ReadUint32 - read a big-endian 32 bit value, see ReadUint8 for results
func ReadUint32(buffer []byte) (uint32, int) {
	if len(buffer) < 4 {
		return 0, 0
	}
	return binary.BigEndian.Uint32(buffer), 4
}

// ReadUint64 - read a big-endian 64 bit value, see ReadUint8 for results
func ReadUint64(buffer []byte) (uint64, int) {
	if len(buffer) < 8 {
		return 0, 0
	}
	return binary.BigEndian.Uint64(buffer), 8
}

// ReadInt8 - read a signed byte, see ReadUint8 for results
func ReadInt8(buffer []byte) (int8, int) {
	if len(buffer) < 1 {
		return 0, 0
	}
	return int8(buffer[0]), 1
}
