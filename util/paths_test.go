// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/poolledger/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/rpc.crt", util.EnsureAbsolute("/data", "rpc.crt"), "relative not joined")
	assert.Equal(t, "/etc/rpc.crt", util.EnsureAbsolute("/data", "/etc/rpc.crt"), "absolute changed")
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data/x", "../log"), "not cleaned")
}

func TestEnsureFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "present")
	assert.False(t, util.EnsureFileExists(name), "file found before creation")
	assert.Nil(t, ioutil.WriteFile(name, []byte("x"), 0600), "wrong WriteFile")
	assert.True(t, util.EnsureFileExists(name), "file not found")
}

func TestEnsureDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(dir)

	nested := filepath.Join(dir, "a", "b")
	assert.Nil(t, util.EnsureDirectory(nested), "wrong EnsureDirectory")
	assert.Nil(t, util.EnsureDirectory(nested), "existing directory rejected")

	info, err := os.Stat(nested)
	assert.Nil(t, err, "directory missing")
	assert.True(t, info.IsDir(), "not a directory")

	name := filepath.Join(dir, "file")
	assert.Nil(t, ioutil.WriteFile(name, []byte("x"), 0600), "wrong WriteFile")
	assert.NotNil(t, util.EnsureDirectory(name), "file accepted as directory")
}

func TestWriteNewFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(dir)

	public := filepath.Join(dir, "test.public")
	private := filepath.Join(dir, "test.private")

	err = util.WriteNewFiles(
		util.NewFile{Name: public, Data: []byte("public\n"), Mode: 0666},
		util.NewFile{Name: private, Data: []byte("private\n"), Mode: 0600},
	)
	assert.Nil(t, err, "wrong WriteNewFiles")

	data, err := ioutil.ReadFile(private)
	assert.Nil(t, err, "private not written")
	assert.Equal(t, "private\n", string(data), "wrong private data")

	info, err := os.Stat(private)
	assert.Nil(t, err, "wrong Stat")
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "private file readable by others")

	err = util.WriteNewFiles(util.NewFile{Name: private, Data: []byte("replaced"), Mode: 0600})
	assert.True(t, os.IsExist(err), "existing file replaced: %v", err)

	data, _ = ioutil.ReadFile(private)
	assert.Equal(t, "private\n", string(data), "existing file modified")
}

func TestWriteNewFilesRemovesPartial(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(dir)

	first := filepath.Join(dir, "first")
	existing := filepath.Join(dir, "existing")
	assert.Nil(t, ioutil.WriteFile(existing, []byte("x"), 0600), "wrong WriteFile")

	err = util.WriteNewFiles(
		util.NewFile{Name: first, Data: []byte("1"), Mode: 0600},
		util.NewFile{Name: existing, Data: []byte("2"), Mode: 0600},
	)
	assert.True(t, os.IsExist(err), "wrong error: %v", err)
	assert.False(t, util.EnsureFileExists(first), "partial write left behind")
}
