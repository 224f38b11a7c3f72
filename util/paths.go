// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

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

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - create a private directory and any missing parents
func EnsureDirectory(directory string) error {
	return os.MkdirAll(filepath.Clean(directory), 0700)
}

// NewFile - one file for WriteNewFiles
type NewFile struct {
	Name string
	Data []byte
	Mode os.FileMode
}

// WriteNewFiles - create all of the files or none of them
//
// an existing file is never replaced; the error then satisfies os.IsExist
func WriteNewFiles(files ...NewFile) error {
	written := make([]string, 0, len(files))
	for _, f := range files {
		err := writeNewFile(f)
		if nil != err {
			for _, name := range written {
				_ = os.Remove(name)
			}
			return err
		}
		written = append(written, f.Name)
	}
	return nil
}

func writeNewFile(f NewFile) error {
	fh, err := os.OpenFile(f.Name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, f.Mode)
	if nil != err {
		return err
	}
	_, err = fh.Write(f.Data)
	if closeErr := fh.Close(); nil == err {
		err = closeErr
	}
	if nil != err {
		_ = os.Remove(f.Name)
	}
	return err
}
