// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

// test database file
const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

func TestMain(m *testing.M) {
	setupTestLogger()
	result := m.Run()
	teardownTestLogger()
	os.Exit(result)
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

// open an empty database
func setup(t *testing.T) {
	os.RemoveAll(databaseFileName)
	err := Initialise(databaseFileName, ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	Finalise()
	os.RemoveAll(databaseFileName)
}

func put(t *testing.T, p *PoolHandle, key string, value string) {
	trx, err := NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	trx.Put(p, []byte(key), []byte(value))
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func remove(t *testing.T, p *PoolHandle, key string) {
	trx, err := NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	trx.Delete(p, []byte(key))
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}
