// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/omnipack/configuration"
	"github.com/bitmark-inc/omnipack/fault"
)

type node struct {
	Host string `gluamapper:"host"`
	Port int    `gluamapper:"port"`
}

type sample struct {
	Chain  string            `gluamapper:"chain"`
	Node   node              `gluamapper:"node"`
	Levels map[string]string `gluamapper:"levels"`
	Kept   string            `gluamapper:"kept"`
}

func writeFile(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, done := writeFile(t, `
local M = {}
M.chain = "testing"
M.node = {
    host = "127.0.0.1",
    port = 18332,
}
M.levels = {
    DEFAULT = "info",
    sender = "debug",
}
-- arg[0] is the file being read
M.self = arg[0]
return M
`)
	defer done()

	config := sample{Kept: "default"}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "testing", config.Chain, "chain")
	assert.Equal(t, node{Host: "127.0.0.1", Port: 18332}, config.Node, "node")
	assert.Equal(t, "debug", config.Levels["sender"], "levels")
	assert.Equal(t, "default", config.Kept, "default must be kept")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	fileName, done := writeFile(t, `return 42`)
	defer done()

	config := sample{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "non table result")

	err = configuration.ParseConfigurationFile(fileName, config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	s := "string"
	err = configuration.ParseConfigurationFile(fileName, &s)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a struct")

	err = configuration.ParseConfigurationFile(fileName+".missing", &config)
	assert.NotNil(t, err, "missing file")
}

func TestParseConfigurationFileSyntaxError(t *testing.T) {
	fileName, done := writeFile(t, `return {`)
	defer done()

	config := sample{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.NotNil(t, err, "syntax error")
}
