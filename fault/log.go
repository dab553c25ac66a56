// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// channel for the last messages before an abort
var log *logger.L

// Initialise - open the "PANIC" log channel
//
// must be called after logger.Initialise; until then messages go to
// standard output
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and detach the log channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Panicf - log a formatted message then panic with it
//
// used for inconsistencies in static protocol tables, which can only
// be caused by a programming error
func Panicf(format string, arguments ...interface{}) {
	message := withCaller(2, format, arguments...)
	criticalf(message)
	panic(message)
}

func withCaller(skip int, format string, arguments ...interface{}) string {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(skip); ok {
		return fmt.Sprintf("(%q:%d) %s", file, line, message)
	}
	return message
}

func criticalf(message string) {
	if nil == log {
		fmt.Printf("*** %s\n", message)
		return
	}
	log.Criticalf("%s", message)
	log.Flush()
}
