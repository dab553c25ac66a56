// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/omnipack/fault"
)

// ResolvePath - a relative path is taken from base, an absolute path is kept
func ResolvePath(base string, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// FileExists - true if anything is present at name
func FileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// CheckDirectory - the path must already exist as a directory
func CheckDirectory(path string) error {
	info, err := os.Stat(path)
	if nil != err {
		return err
	}
	if !info.IsDir() {
		return fault.ErrInvalidDirectory
	}
	return nil
}
