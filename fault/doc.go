// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error singletons for payload encoding and broadcast
//
// Every error is a typed string constant so callers compare with ==
// and classify with the IsErrX predicates, e.g. IsErrRecord for a
// malformed payload and IsErrValidation for a rejected argument.
// Panicf reports inconsistent static tables through the PANIC log
// channel.
package fault
