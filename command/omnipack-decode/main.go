// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "compact", HasArg: getoptions.NO_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 {
		fmt.Printf("usage: %s [--help] [--verbose] [--compact] [HEX...]\n", program)
		fmt.Printf("       decode Omni Layer payloads given as arguments or one per line on stdin\n")
		return
	}

	verbose := len(options["verbose"]) > 0
	compact := len(options["compact"]) > 0

	if 0 == len(arguments) {
		arguments, err = readLines(os.Stdin)
		if nil != err {
			exitwithstatus.Message("%s: read error: %s", program, err)
		}
	}

	failed := 0
	for _, h := range arguments {
		if verbose {
			fmt.Fprintf(os.Stderr, "decoding: %s\n", h)
		}
		d, err := decode(h)
		if nil != err {
			fmt.Fprintf(os.Stderr, "%s: payload: %q  error: %s\n", program, h, err)
			failed += 1
			continue
		}
		if err := printJson(os.Stdout, d, compact); nil != err {
			exitwithstatus.Message("%s: output error: %s", program, err)
		}
	}

	if failed > 0 {
		exitwithstatus.Message("%s: %d of %d payloads failed", program, failed, len(arguments))
	}
}

// non blank lines of a reader
func readLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" != line {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func printJson(handle io.Writer, message interface{}, compact bool) error {
	var b []byte
	var err error
	if compact {
		b, err = json.Marshal(message)
	} else {
		b, err = json.MarshalIndent(message, "", "  ")
	}
	if nil != err {
		return err
	}
	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
