// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureDirectory - make sure directory exists, creating it if
// necessary
func EnsureDirectory(directory string) error {
	if fileInfo, err := os.Stat(directory); nil == err {
		if !fileInfo.IsDir() {
			return &os.PathError{Op: "stat", Path: directory, Err: os.ErrExist}
		}
		return nil
	}
	return os.MkdirAll(directory, 0700)
}
