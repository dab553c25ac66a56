// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/omnipack/fault"
)

var (
	ErrExistsOne     = fault.ExistsError("exists one")
	ErrNotFoundOne   = fault.NotFoundError("not found one")
	ErrOverflowOne   = fault.OverflowError("overflow one")
	ErrPrecisionOne  = fault.PrecisionError("precision one")
	ErrProcessOne    = fault.ProcessError("process one")
	ErrRecordOne     = fault.RecordError("record one")
	ErrValidationOne = fault.ValidationError("validation one")
)

// test that the error classes are distinguishable
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		exists     bool
		notFound   bool
		overflow   bool
		precision  bool
		process    bool
		record     bool
		validation bool
	}{
		{ErrExistsOne, true, false, false, false, false, false, false},
		{ErrNotFoundOne, false, true, false, false, false, false, false},
		{ErrOverflowOne, false, false, true, false, false, false, false},
		{ErrPrecisionOne, false, false, false, true, false, false, false},
		{ErrProcessOne, false, false, false, false, true, false, false},
		{ErrRecordOne, false, false, false, false, false, true, false},
		{ErrValidationOne, false, false, false, false, false, false, true},
		{fault.ErrAmountOverflow, false, false, true, false, false, false, false},
		{fault.ErrAmountPrecision, false, false, false, true, false, false, false},
		{fault.ErrFractionalAmount, false, false, false, false, false, false, true},
		{fault.ErrTruncatedPayload, false, false, false, false, false, true, false},
		{fault.ErrBroadcastFailed, false, false, false, false, true, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrOverflow(err) != e.overflow {
			t.Errorf("%d: expected 'overflow' == %v for err = %v", i, e.overflow, err)
		}
		if fault.IsErrPrecision(err) != e.precision {
			t.Errorf("%d: expected 'precision' == %v for err = %v", i, e.precision, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
		if fault.IsErrValidation(err) != e.validation {
			t.Errorf("%d: expected 'validation' == %v for err = %v", i, e.validation, err)
		}
	}
}

func TestPanicfPanics(t *testing.T) {
	defer func() {
		if nil == recover() {
			t.Fatal("Panicf did not panic")
		}
	}()
	fault.Panicf("table %d is inconsistent", 7)
}
