// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/chain"
	"github.com/bitmark-inc/poolledger/configuration"
	"github.com/bitmark-inc/poolledger/instruction"
	"github.com/bitmark-inc/poolledger/invocation"
	"github.com/bitmark-inc/poolledger/publish"
	"github.com/bitmark-inc/poolledger/rent"
	"github.com/bitmark-inc/poolledger/rpc/listeners"
	"github.com/bitmark-inc/poolledger/slot"
	"github.com/bitmark-inc/poolledger/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultLiveDatabase     = chain.Live + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "ledgerd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10

	defaultAuditInterval = 300 // seconds, 0 disables
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the decoded ledgerd.conf
type Configuration struct {
	DataDirectory string `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string `gluamapper:"pidfile" json:"pidfile"`
	Chain         string `gluamapper:"chain" json:"chain"`

	Authority               string    `gluamapper:"authority" json:"authority"`
	SlotSize                uint64    `gluamapper:"slot_size" json:"slot_size"`
	InstructionSet          string    `gluamapper:"instruction_set" json:"instruction_set"`
	AllowExternalWithdrawal bool      `gluamapper:"allow_external_withdrawal" json:"allow_external_withdrawal"`
	Rent                    rent.Rent `gluamapper:"rent" json:"rent"`
	AuditInterval           uint64    `gluamapper:"audit_interval" json:"audit_interval"`

	Database  DatabaseType               `gluamapper:"database" json:"database"`
	ClientRPC listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Publish   publish.Configuration      `gluamapper:"publish" json:"publish"`
	Logging   logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Live,

		SlotSize:       slot.DefaultSize,
		InstructionSet: instruction.Standard.String(),
		Rent:           rent.Default(),
		AuditInterval:  defaultAuditInterval,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultLiveDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// if any test mode and the database file was not specified
	// switch to appropriate default.  Abort if then chain name is
	// not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultLiveDatabase {
		switch options.Chain {
		case chain.Live:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("Chain: %s no default database setting", options.Chain)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.Publish.PrivateKey,
		&options.Publish.PublicKey,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := util.EnsureDirectory(*d); nil != err {
			return nil, err
		}
	}

	// ledger parameters are checked here so a bad file fails before anything starts
	if _, err := options.hostOptions(); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// convert the ledger part of the configuration
func (options *Configuration) hostOptions() (invocation.Options, error) {

	if "" == options.Authority {
		return invocation.Options{}, fmt.Errorf("Authority: missing, run gen-authority to create one")
	}
	authority, err := account.AddressFromBase58(options.Authority)
	if nil != err {
		return invocation.Options{}, fmt.Errorf("Authority: %q  error: %s", options.Authority, err)
	}

	set, err := instruction.SetFromString(options.InstructionSet)
	if nil != err {
		return invocation.Options{}, fmt.Errorf("InstructionSet: %q  error: %s", options.InstructionSet, err)
	}

	if err := options.Rent.Validate(options.SlotSize); nil != err {
		return invocation.Options{}, fmt.Errorf("Rent: %+v  slot_size: %d  error: %s", options.Rent, options.SlotSize, err)
	}

	return invocation.Options{
		Authority:               authority,
		Chain:                   options.Chain,
		SlotSize:                options.SlotSize,
		InstructionSet:          set,
		Rent:                    options.Rent,
		AllowExternalWithdrawal: options.AllowExternalWithdrawal,
	}, nil
}

// PEM certificate and key contents for the RPC listener
func (options *Configuration) rpcCertificate() (listeners.RPCConfiguration, error) {
	rpc := options.ClientRPC

	certificate, err := ioutil.ReadFile(rpc.Certificate)
	if nil != err {
		return rpc, err
	}
	key, err := ioutil.ReadFile(rpc.PrivateKey)
	if nil != err {
		return rpc, err
	}

	rpc.Certificate = string(certificate)
	rpc.PrivateKey = string(key)
	return rpc, nil
}
