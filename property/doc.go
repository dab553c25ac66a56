// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package property - identifiers, ecosystems and divisibility of Omni
// Layer properties (tokens)
package property
