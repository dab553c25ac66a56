// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - primitive field encoders for Omni Layer payloads
//
// all multi-byte integers are big-endian (network order), strings are
// UTF-8 followed by a single NUL terminator
package codec
