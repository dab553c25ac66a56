// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - Omni Layer payload records
//
// A payload is a 16 bit version, a 16 bit message type and then the
// fields of the transaction kind in the order given by its schema.
// There is no padding, length prefix or checksum.
//
// Pack turns a kind and its field values into a Packed payload;
// Packed.Unpack reverses this. Both walk the same schema table which is
// built once when the package is initialised and never changed.
package transactionrecord
