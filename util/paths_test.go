// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/omnipack/fault"
	"github.com/bitmark-inc/omnipack/util"
)

func TestResolvePath(t *testing.T) {
	testData := []struct {
		base string
		path string
		out  string
	}{
		{"/etc/omnipack", "omnipack-cli.log", "/etc/omnipack/omnipack-cli.log"},
		{"/etc/omnipack", "log/../omnipack-cli.log", "/etc/omnipack/omnipack-cli.log"},
		{"/etc/omnipack", "/var/log//omnipack-cli.log", "/var/log/omnipack-cli.log"},
	}

	for i, d := range testData {
		p := util.ResolvePath(d.base, d.path)
		if filepath.FromSlash(d.out) != p {
			t.Errorf("[%d]: %q  expected: %q", i, p, d.out)
		}
	}
}

func TestFileExists(t *testing.T) {
	if !util.FileExists("paths_test.go") {
		t.Error("existing file not found")
	}
	if util.FileExists("no-such-file.conf") {
		t.Error("missing file found")
	}
}

func TestCheckDirectory(t *testing.T) {
	if err := util.CheckDirectory(os.TempDir()); nil != err {
		t.Errorf("temporary directory error: %s", err)
	}
	if err := util.CheckDirectory("paths_test.go"); fault.ErrInvalidDirectory != err {
		t.Errorf("plain file error: %v  expected: %s", err, fault.ErrInvalidDirectory)
	}
	if err := util.CheckDirectory("no-such-directory"); !os.IsNotExist(err) {
		t.Errorf("missing directory error: %v", err)
	}
}
