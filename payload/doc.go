// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payload - typed construction of Omni Layer payloads
//
// each function validates its arguments, converts decimal amounts to
// base units, packs the record and returns lowercase hex.  Nothing here
// performs any I/O so the result can be handed to any broadcaster.
package payload
