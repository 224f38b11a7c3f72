// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/poolledger/instruction"
	"github.com/bitmark-inc/poolledger/rpc/certificate"
)

type metadata struct {
	connect     string
	fingerprint *certificate.Fingerprint
	set         instruction.Set
	verbose     bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultConnect = "127.0.0.1:2130"

func main() {
	app := cli.NewApp()
	app.Name = "ledger-cli"
	app.Usage = "client for ledgerd wallets and pool"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " ledgerd RPC `HOST:PORT`",
			EnvVar: "LEDGER_CONNECT",
		},
		cli.StringFlag{
			Name:   "fingerprint, F",
			Value:  "",
			Usage:  " only accept the ledgerd certificate with this SHA3-256 `HEX` fingerprint",
			EnvVar: "LEDGER_FINGERPRINT",
		},
		cli.StringFlag{
			Name:  "instruction-set, s",
			Value: "standard",
			Usage: " instruction tag numbering `SET` [standard|extended]",
		},
		cli.StringFlag{
			Name:   "password, p",
			Value:  "",
			Usage:  " key file `PASSWORD`, prompted for if not given",
			EnvVar: "LEDGER_PASSWORD",
		},
	}

	keyFlag := cli.StringFlag{
		Name:   "key, k",
		Value:  "",
		Usage:  "*private key `HEX`, or use --key-file",
		EnvVar: "LEDGER_KEY",
	}
	keyFileFlag := cli.StringFlag{
		Name:   "key-file, K",
		Value:  "",
		Usage:  "*encrypted private key `FILE`, or use --key",
		EnvVar: "LEDGER_KEY_FILE",
	}
	ownerFlag := cli.StringFlag{
		Name:  "owner, o",
		Value: "",
		Usage: "*owner `ADDRESS` (base58)",
	}
	amountFlag := cli.Uint64Flag{
		Name:  "amount, a",
		Value: 0,
		Usage: "*lamports `AMOUNT`",
	}

	app.Commands = []cli.Command{
		{
			Name:  "keygen",
			Usage: "generate a new private key, encrypted into a file if one is named",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: " write an encrypted key `FILE` instead of printing the key",
				},
			},
			Action: runKeygen,
		},
		{
			Name:      "address",
			Usage:     "show the address of a private key",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{keyFlag, keyFileFlag},
			Action:    runAddress,
		},
		{
			Name:      "derive",
			Usage:     "show the pool address and the wallet address of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ownerFlag},
			Action:    runDerive,
		},
		{
			Name:      "fund",
			Usage:     "give lamports to an external address (testing chains)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, t",
					Value: "",
					Usage: "*receiving `ADDRESS` (base58)",
				},
				amountFlag,
			},
			Action: runFund,
		},
		{
			Name:      "mint",
			Usage:     "add to the pool record (testing chains)",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{amountFlag},
			Action:    runMint,
		},
		{
			Name:      "create-pool",
			Usage:     "create the pool record, key pays the rent",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{keyFlag, keyFileFlag},
			Action:    runCreatePool,
		},
		{
			Name:      "create-wallet",
			Usage:     "create the wallet record of key, key pays the rent",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{keyFlag, keyFileFlag},
			Action:    runCreateWallet,
		},
		{
			Name:      "deposit",
			Usage:     "move balance from the pool to a wallet",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ownerFlag, amountFlag},
			Action:    runDeposit,
		},
		{
			Name:      "withdraw",
			Usage:     "move balance from the wallet of key back to the pool",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{keyFlag, keyFileFlag, amountFlag},
			Action:    runWithdraw,
		},
		{
			Name:      "withdraw-external",
			Usage:     "move lamports from the wallet of key to an external address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				keyFlag,
				keyFileFlag,
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*receiving `ADDRESS` (base58)",
				},
				amountFlag,
			},
			Action: runWithdrawExternal,
		},
		{
			Name:      "balance",
			Usage:     "show the wallet balance of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ownerFlag},
			Action:    runBalance,
		},
		{
			Name:   "pool",
			Usage:  "show the pool record",
			Action: runPool,
		},
		{
			Name:   "audit",
			Usage:  "sum all records and compare with minted total",
			Action: runAudit,
		},
		{
			Name:  "journal",
			Usage: "list committed changes",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start",
					Value: 1,
					Usage: " first sequence `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count",
					Value: 20,
					Usage: " number of entries `COUNT`",
				},
			},
			Action: runJournal,
		},
		{
			Name:   "info",
			Usage:  "display ledgerd info",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display ledger-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		set, err := instruction.SetFromString(c.GlobalString("instruction-set"))
		if nil != err {
			return err
		}

		var fingerprint *certificate.Fingerprint
		if s := c.GlobalString("fingerprint"); "" != s {
			f, err := certificate.FingerprintFromHex(s)
			if nil != err {
				return err
			}
			fingerprint = &f
		}

		c.App.Metadata["config"] = &metadata{
			connect:     c.GlobalString("connect"),
			fingerprint: fingerprint,
			set:         set,
			verbose:     c.GlobalBool("verbose"),
			e:           c.App.ErrWriter,
			w:           c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
