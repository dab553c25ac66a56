// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/omnipack/codec"
	"github.com/bitmark-inc/omnipack/fault"
)

func TestIntegersAreBigEndian(t *testing.T) {
	var buffer []byte
	buffer = codec.AppendUint8(buffer, 0x01)
	buffer = codec.AppendUint16(buffer, 0x0203)
	buffer = codec.AppendUint32(buffer, 0x04050607)
	buffer = codec.AppendUint64(buffer, 0x08090a0b0c0d0e0f)
	buffer = codec.AppendInt8(buffer, -1)
	buffer = codec.AppendBool(buffer, true)
	buffer = codec.AppendBool(buffer, false)

	expected := []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0xff,
		0x01, 0x00,
	}
	if !bytes.Equal(buffer, expected) {
		t.Fatalf("encoded: %x  expected: %x", buffer, expected)
	}

	n := 0
	u8, l := codec.ReadUint8(buffer[n:])
	assert.Equal(t, 1, l)
	assert.Equal(t, uint8(0x01), u8)
	n += l

	u16, l := codec.ReadUint16(buffer[n:])
	assert.Equal(t, 2, l)
	assert.Equal(t, uint16(0x0203), u16)
	n += l

	u32, l := codec.ReadUint32(buffer[n:])
	assert.Equal(t, 4, l)
	assert.Equal(t, uint32(0x04050607), u32)
	n += l

	u64, l := codec.ReadUint64(buffer[n:])
	assert.Equal(t, 8, l)
	assert.Equal(t, uint64(0x08090a0b0c0d0e0f), u64)
	n += l

	i8, l := codec.ReadInt8(buffer[n:])
	assert.Equal(t, 1, l)
	assert.Equal(t, int8(-1), i8)
	n += l

	b, l, err := codec.ReadBool(buffer[n:])
	assert.Nil(t, err)
	assert.Equal(t, 1, l)
	assert.True(t, b)
	n += l

	b, l, err = codec.ReadBool(buffer[n:])
	assert.Nil(t, err)
	assert.Equal(t, 1, l)
	assert.False(t, b)
	n += l

	assert.Equal(t, len(buffer), n, "did not consume whole buffer")
}

func TestTruncatedIntegers(t *testing.T) {
	short := []byte{0x01, 0x02, 0x03}

	_, l := codec.ReadUint32(short)
	assert.Equal(t, 0, l)
	_, l = codec.ReadUint64(short)
	assert.Equal(t, 0, l)
	_, l = codec.ReadUint16(short[:1])
	assert.Equal(t, 0, l)
	_, l = codec.ReadUint8(nil)
	assert.Equal(t, 0, l)
	_, l = codec.ReadInt8(nil)
	assert.Equal(t, 0, l)

	_, _, err := codec.ReadBool(nil)
	assert.Equal(t, fault.ErrTruncatedPayload, err)
}

func TestBoolRejectsOtherBytes(t *testing.T) {
	_, l, err := codec.ReadBool([]byte{0x02})
	assert.Equal(t, 0, l)
	assert.Equal(t, fault.ErrInvalidBool, err)
}

func TestCString(t *testing.T) {
	buffer, err := codec.AppendCString(nil, "Foo", codec.MaxStringLength)
	if nil != err {
		t.Fatalf("append error: %s", err)
	}
	expected := []byte{0x46, 0x6f, 0x6f, 0x00}
	if !bytes.Equal(buffer, expected) {
		t.Fatalf("encoded: %x  expected: %x", buffer, expected)
	}

	s, n, err := codec.ReadCString(buffer, codec.MaxStringLength)
	assert.Nil(t, err)
	assert.Equal(t, "Foo", s)
	assert.Equal(t, 4, n)
}

func TestCStringEmpty(t *testing.T) {
	buffer, err := codec.AppendCString([]byte{0xaa}, "", codec.MaxStringLength)
	assert.Nil(t, err)
	assert.Equal(t, []byte{0xaa, 0x00}, buffer)
}

func TestCStringMultibyte(t *testing.T) {
	// length limit counts bytes: "é" is two bytes
	s := strings.Repeat("é", 127) + "a"
	assert.Equal(t, 255, len(s))

	buffer, err := codec.AppendCString(nil, s, codec.MaxStringLength)
	assert.Nil(t, err)
	assert.Equal(t, 256, len(buffer))

	_, err = codec.AppendCString(nil, s+"a", codec.MaxStringLength)
	assert.Equal(t, fault.ErrStringTooLong, err)
}

func TestCStringInvalid(t *testing.T) {
	items := []struct {
		s   string
		err error
	}{
		{strings.Repeat("x", 256), fault.ErrStringTooLong},
		{"\xff\xfe", fault.ErrStringInvalidUTF8},
		{"a\x00b", fault.ErrStringContainsNul},
	}
	for i, item := range items {
		buffer, err := codec.AppendCString([]byte{0x01}, item.s, codec.MaxStringLength)
		if item.err != err {
			t.Errorf("%d: error: %v  expected: %v", i, err, item.err)
		}
		if nil != buffer {
			t.Errorf("%d: partial buffer returned: %x", i, buffer)
		}
		if !fault.IsErrValidation(err) {
			t.Errorf("%d: not a validation error: %v", i, err)
		}
	}
}

func TestCStringDecodeErrors(t *testing.T) {
	_, _, err := codec.ReadCString([]byte("abc"), codec.MaxStringLength)
	assert.Equal(t, fault.ErrStringMissingTerminator, err)

	_, _, err = codec.ReadCString([]byte("abcd\x00"), 3)
	assert.Equal(t, fault.ErrStringTooLong, err)

	_, _, err = codec.ReadCString([]byte("\xff\x00"), codec.MaxStringLength)
	assert.Equal(t, fault.ErrStringInvalidUTF8, err)
}

func TestTypeWidth(t *testing.T) {
	items := []struct {
		codec codec.Type
		width int
		name  string
	}{
		{codec.Uint8, 1, "uint8"},
		{codec.Uint16, 2, "uint16be"},
		{codec.Uint32, 4, "uint32be"},
		{codec.Uint64, 8, "uint64be"},
		{codec.Int8, 1, "int8"},
		{codec.Bool, 1, "bool1"},
		{codec.CString, 0, "cstring"},
	}
	for _, item := range items {
		assert.True(t, item.codec.IsValid())
		assert.Equal(t, item.width, item.codec.Width(), item.name)
		assert.Equal(t, item.name, item.codec.String())
	}
	assert.False(t, codec.Nothing.IsValid())
	assert.Equal(t, "*unknown*", codec.Type(99).String())
}

func TestReadersMatchTypeWidth(t *testing.T) {
	buffer := []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

	_, n8 := codec.ReadUint8(buffer)
	_, n16 := codec.ReadUint16(buffer)
	_, n32 := codec.ReadUint32(buffer)
	_, n64 := codec.ReadUint64(buffer)
	_, ni8 := codec.ReadInt8(buffer)
	_, nb, err := codec.ReadBool(buffer)
	if nil != err {
		t.Fatalf("bool error: %s", err)
	}

	read := map[codec.Type]int{
		codec.Uint8:  n8,
		codec.Uint16: n16,
		codec.Uint32: n32,
		codec.Uint64: n64,
		codec.Int8:   ni8,
		codec.Bool:   nb,
	}
	for c, n := range read {
		if c.Width() != n {
			t.Errorf("%#v: read: %d bytes  expected: %d", c, n, c.Width())
		}
	}
}
