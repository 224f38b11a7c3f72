// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/poolledger/account"
	"github.com/bitmark-inc/poolledger/derivation"
	"github.com/bitmark-inc/poolledger/fault"
	"github.com/bitmark-inc/poolledger/invocation"
	"github.com/bitmark-inc/poolledger/publish"
	"github.com/bitmark-inc/poolledger/util"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	authorityPrivateKeyFilename = "authority.private"

	publishPublicKeyFilename  = "publish.public"
	publishPrivateKeyFilename = "publish.private"

	defaultJournalCount = 20
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		fingerprint, err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)
		fmt.Printf("fingerprint = %q\n", fingerprint.String())

	case "gen-authority", "auth":
		privateKeyFilename := getFilenameWithDirectory(arguments, authorityPrivateKeyFilename)

		if util.EnsureFileExists(privateKeyFilename) {
			fmt.Printf("generate authority key: %q error: %s\n", privateKeyFilename, fault.ErrKeyFileExists)
			exitwithstatus.Exit(1)
		}

		key, err := account.NewPrivateKey()
		if nil != err {
			fmt.Printf("generate authority key: %q error: %s\n", privateKeyFilename, err)
			exitwithstatus.Exit(1)
		}

		if err := util.WriteNewFiles(util.NewFile{Name: privateKeyFilename, Data: []byte(key.String() + "\n"), Mode: 0600}); nil != err {
			fmt.Printf("generate authority key: %q error: %s\n", privateKeyFilename, err)
			exitwithstatus.Exit(1)
		}

		fmt.Printf("generated authority key: %q\n", privateKeyFilename)
		fmt.Printf("authority = %q\n", key.Address().String())

	case "gen-publish-keys", "pub":
		publicKeyFilename := getFilenameWithDirectory(arguments, publishPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publishPrivateKeyFilename)

		if err := publish.MakeKeyPair(publicKeyFilename, privateKeyFilename); nil != err {
			fmt.Printf("generate publish keys: %q and %q error: %s\n", publicKeyFilename, privateKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated publish keys: %q and %q\n", publicKeyFilename, privateKeyFilename)

	case "start", "run":
		return false // continue processing

	case "audit", "journal", "j":
		return false // defer processing until database is loaded

	case "config-test", "cfg", "authority", "derive":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-authority [DIR]        (auth)   - create authority key in: %q\n", "DIR/"+authorityPrivateKeyFilename)
		fmt.Printf("                                        and display its address\n")
		fmt.Printf("\n")

		fmt.Printf("  gen-publish-keys [DIR]     (pub)    - create journal broadcast CURVE keys in: %q\n", "DIR/"+publishPrivateKeyFilename)
		fmt.Printf("                                        and %q\n", "DIR/"+publishPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  authority                           - display the authority and pool addresses\n")
		fmt.Printf("\n")

		fmt.Printf("  derive OWNER                        - display the wallet address for an owner\n")
		fmt.Printf("\n")

		fmt.Printf("  audit                               - compare wallet totals with the pool balance\n")
		fmt.Printf("\n")

		fmt.Printf("  journal [START [COUNT]]    (j)      - dump journal entries as JSON to stdout\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	case "authority":
		hostOptions, err := options.hostOptions()
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		pool, discriminant, err := derivation.Pool(hostOptions.Authority)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		fmt.Printf("authority: %s\n", hostOptions.Authority)
		fmt.Printf("pool:      %s  discriminant: %d\n", pool, discriminant)

	case "derive":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing owner argument")
		}
		owner, err := account.AddressFromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("error: owner: %q  %s", arguments[0], err)
		}
		hostOptions, err := options.hostOptions()
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		wallet, discriminant, err := derivation.Wallet(owner, hostOptions.Authority)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		fmt.Printf("owner:  %s\n", owner)
		fmt.Printf("wallet: %s  discriminant: %d\n", wallet, discriminant)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage pools are open so these commands can read the ledger
func processDataCommand(log *logger.L, arguments []string, host *invocation.Host) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "audit":
		audit, err := host.Audit()
		if nil != err {
			exitwithstatus.Message("audit error: %s", err)
		}
		printJSON(audit)
		if !audit.Balanced {
			log.Warnf("audit: pool: %d  wallets: %d  minted: %d  not balanced", audit.PoolTotal, audit.WalletTotal, audit.Minted)
			exitwithstatus.Exit(1)
		}

	case "journal", "j":
		start := uint64(1)
		count := defaultJournalCount
		var err error
		if len(arguments) > 0 {
			start, err = strconv.ParseUint(arguments[0], 10, 64)
			if nil != err {
				exitwithstatus.Message("error in start: %s", err)
			}
		}
		if len(arguments) > 1 {
			count, err = strconv.Atoi(arguments[1])
			if nil != err || count <= 0 {
				exitwithstatus.Message("error: invalid count: %q", arguments[1])
			}
		}
		entries, err := host.Journal(start, count)
		if nil != err {
			exitwithstatus.Message("journal error: %s", err)
		}
		printJSON(entries)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

func printJSON(data interface{}) {
	b, err := json.MarshalIndent(data, "", "  ")
	if nil != err {
		exitwithstatus.Message("JSON error: %s", err)
	}
	fmt.Printf("%s\n", b)
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
