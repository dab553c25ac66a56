// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/omnipack/fault"
)

// MaxStringLength - protocol limit on string bytes, excluding the terminator
const MaxStringLength = 255

// AppendCString - append the UTF-8 bytes of s followed by NUL
//
// the byte length (not rune count) of s is limited to maxLength
func AppendCString(buffer []byte, s string, maxLength int) ([]byte, error) {
	if err := checkString(s, maxLength); nil != err {
		return nil, err
	}
	buffer = append(buffer, s...)
	return append(buffer, 0), nil
}

// ReadCString - read a NUL terminated string from the start of buffer
//
// also returns the number of bytes used including the terminator
func ReadCString(buffer []byte, maxLength int) (string, int, error) {
	end := bytes.IndexByte(buffer, 0)
	if end < 0 {
		if len(buffer) > maxLength {
			return "", 0, fault.ErrStringTooLong
		}
		return "", 0, fault.ErrStringMissingTerminator
	}
	if end > maxLength {
		return "", 0, fault.ErrStringTooLong
	}
	if !utf8.Valid(buffer[:end]) {
		return "", 0, fault.ErrStringInvalidUTF8
	}
	return string(buffer[:end]), end + 1, nil
}

func checkString(s string, maxLength int) error {
	if len(s) > maxLength {
		return fault.ErrStringTooLong
	}
	if !utf8.ValidString(s) {
		return fault.ErrStringInvalidUTF8
	}
	if strings.IndexByte(s, 0) >= 0 {
		return fault.ErrStringContainsNul
	}
	return nil
}
