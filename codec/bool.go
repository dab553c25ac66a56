// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/bitmark-inc/omnipack/fault"
)

// ReadBool - read a one byte boolean
//
// only 0x00 and 0x01 are accepted
func ReadBool(buffer []byte) (bool, int, error) {
	if len(buffer) < 1 {
		return false, 0, fault.ErrTruncatedPayload
	}
	switch buffer[0] {
	case 0:
		return false, 1, nil
	case 1:
		return true, 1, nil
	default:
		return false, 0, fault.ErrInvalidBool
	}
}
