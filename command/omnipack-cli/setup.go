// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"text/template"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/omnipack/chain"
	"github.com/bitmark-inc/omnipack/templates"
	"github.com/bitmark-inc/omnipack/util"
)

const passwordVariable = "OMNIPACK_RPC_PASSWORD"

// values substituted into the configuration template
type setupData struct {
	Chain             string
	Host              string
	Username          string
	PasswordVariable  string
	UseTLS            bool
	RequestsPerSecond float64
	Burst             int
}

func runSetup(c *cli.Context) error {

	file := c.GlobalString("config")
	if "" == file {
		return fmt.Errorf("setup requires a configuration file name")
	}

	// do not run setup if there is an existing configuration
	if util.FileExists(file) {
		return fmt.Errorf("not overwriting existing configuration: %q", file)
	}

	network := c.String("chain")
	if !chain.Valid(network) {
		return fmt.Errorf("chain: %q can only be bitcoin/testing/local", network)
	}

	host, err := util.CanonicalHostPort(c.String("connect"))
	if nil != err {
		return fmt.Errorf("connect: %q error: %s", c.String("connect"), err)
	}

	data := setupData{
		Chain:             network,
		Host:              host,
		Username:          c.String("username"),
		PasswordVariable:  passwordVariable,
		UseTLS:            c.Bool("tls"),
		RequestsPerSecond: c.Float64("rate"),
		Burst:             c.Int("burst"),
	}
	if data.RequestsPerSecond <= 0 || data.Burst < 1 {
		return fmt.Errorf("rate: %g and burst: %d must be positive", data.RequestsPerSecond, data.Burst)
	}

	if err := save(file, data); nil != err {
		return err
	}

	fmt.Fprintf(c.App.Writer, "wrote: %s\nset %s to the node password\n", file, passwordVariable)
	return nil
}

// write through a temporary file so a failure leaves nothing behind
func save(filename string, data setupData) error {

	tempFile := filename + ".new"
	_ = os.Remove(tempFile)

	file, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if nil != err {
		return err
	}

	configurationTemplate := template.Must(template.New("config").Parse(templates.ConfigurationTemplate))
	err = configurationTemplate.Execute(file, data)
	if closeErr := file.Close(); nil == err {
		err = closeErr
	}
	if nil != err {
		_ = os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filename)
}
