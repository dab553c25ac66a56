// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/omnipack/omnirpc"
)

// replaced by tests
var promptPassword = promptTerminalPassword

// ask for the node password when the configuration names a user
// but the password variable was not set
func fillPassword(e io.Writer, connection *omnirpc.Connection) error {
	if "" == connection.Username || "" != connection.Password {
		return nil
	}
	password, err := promptPassword(e, connection.Username)
	if nil != err {
		return err
	}
	connection.Password = password
	return nil
}

// nothing is asked unless standard input is a terminal
func promptTerminalPassword(e io.Writer, username string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return "", nil
	}

	fmt.Fprintf(e, "password for %s: ", username)
	password, err := terminal.ReadPassword(fd)
	fmt.Fprintln(e)
	if nil != err {
		return "", err
	}
	return string(password), nil
}
