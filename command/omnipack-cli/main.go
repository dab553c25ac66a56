// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/omnipack/fault"
)

type metadata struct {
	config  *Configuration
	from    string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// replaced by tests that initialise logging once
var (
	initialiseLogging = startLogging
	finaliseLogging   = stopLogging
)

// the fault channel must open after the logger
func startLogging(configuration logger.Configuration) error {
	if err := logger.Initialise(configuration); nil != err {
		return err
	}
	return fault.Initialise()
}

func stopLogging() {
	fault.Finalise()
	logger.Finalise()
}

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "omnipack-cli"
	app.Usage = "build Omni Layer payloads and optionally broadcast them"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE` with the node connection",
		},
		cli.StringFlag{
			Name:  "from, f",
			Value: "",
			Usage: " broadcast from this `ADDRESS` (default is print the payload only)",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "write a configuration file to the --config path",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*Omni Core RPC host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "chain",
					Value: "bitcoin",
					Usage: " base `CHAIN` [bitcoin|testing|local]",
				},
				cli.StringFlag{
					Name:  "username, u",
					Value: "",
					Usage: " RPC `USER`",
				},
				cli.BoolFlag{
					Name:  "tls",
					Usage: " connect using TLS",
				},
				cli.Float64Flag{
					Name:  "rate",
					Value: 5,
					Usage: " maximum broadcasts per `SECOND`",
				},
				cli.IntFlag{
					Name:  "burst",
					Value: 10,
					Usage: " broadcasts allowed in a `BURST`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "simple-send",
			Usage:     "send tokens to an address",
			ArgsUsage: "\n   (* = required)",
			Flags:     append(sendFlags(), toFlag(true)),
			Action:    runSimpleSend,
		},
		{
			Name:      "send-to-owners",
			Usage:     "distribute tokens to every holder of a property",
			ArgsUsage: "\n   (* = required)",
			Flags:     sendFlags(),
			Action:    runSendToOwners,
		},
		{
			Name:      "send-all",
			Usage:     "send every token of an ecosystem to an address",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ecosystemFlag(), toFlag(true)},
			Action:    runSendAll,
		},
		{
			Name:      "dex-sell",
			Usage:     "create, update or cancel an offer of tokens for bitcoin",
			ArgsUsage: "\n   (* = required)",
			Flags: append(sendFlags(),
				cli.StringFlag{
					Name:  "desired, d",
					Value: "",
					Usage: "*bitcoin desired `AMOUNT`",
				},
				cli.IntFlag{
					Name:  "window, w",
					Value: 10,
					Usage: " payment window `BLOCKS`",
				},
				cli.StringFlag{
					Name:  "fee",
					Value: "0.0001",
					Usage: " minimum accept fee in bitcoin `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "action",
					Value: "new",
					Usage: " offer `ACTION` [new|update|cancel]",
				},
			),
			Action: runDExSell,
		},
		{
			Name:      "dex-accept",
			Usage:     "accept an offer of tokens for bitcoin",
			ArgsUsage: "\n   (* = required)",
			Flags:     append(sendFlags(), toFlag(true)),
			Action:    runDExAccept,
		},
		{
			Name:      "metadex-trade",
			Usage:     "place a token for token order",
			ArgsUsage: "\n   (* = required)",
			Flags:     orderFlags(true),
			Action:    runMetaDExTrade,
		},
		{
			Name:      "cancel-by-price",
			Usage:     "cancel orders for a pair at a price",
			ArgsUsage: "\n   (* = required)",
			Flags:     orderFlags(true),
			Action:    runCancelTradesByPrice,
		},
		{
			Name:      "cancel-by-pair",
			Usage:     "cancel all orders for a pair",
			ArgsUsage: "\n   (* = required)",
			Flags:     orderFlags(false),
			Action:    runCancelTradesByPair,
		},
		{
			Name:      "cancel-all",
			Usage:     "cancel all orders in an ecosystem",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ecosystemFlag()},
			Action:    runCancelAllTrades,
		},
		{
			Name:      "create-fixed",
			Usage:     "create a property with a fixed supply",
			ArgsUsage: "\n   (* = required)",
			Flags: append(issuanceFlags(),
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*number of tokens `AMOUNT`",
				},
			),
			Action: runFixedPropertyCreate,
		},
		{
			Name:      "create-managed",
			Usage:     "create a property with a managed supply",
			ArgsUsage: "\n   (* = required)",
			Flags:     issuanceFlags(),
			Action:    runManagedPropertyCreate,
		},
		{
			Name:      "create-crowdsale",
			Usage:     "create a crowdsale",
			ArgsUsage: "\n   (* = required)",
			Flags: append(issuanceFlags(),
				cli.StringFlag{
					Name:  "desired-property, P",
					Value: "",
					Usage: "*property accepted as payment `ID`",
				},
				cli.StringFlag{
					Name:  "tokens-per-unit, u",
					Value: "",
					Usage: "*tokens issued per unit paid `AMOUNT`",
				},
				cli.Int64Flag{
					Name:  "deadline",
					Value: 0,
					Usage: "*closing time in Unix `SECONDS`",
				},
				cli.IntFlag{
					Name:  "early-bird",
					Value: 0,
					Usage: " early bird bonus `PERCENT` per week",
				},
				cli.IntFlag{
					Name:  "issuer-bonus",
					Value: 0,
					Usage: " issuer bonus `PERCENT`",
				},
			),
			Action: runCrowdsaleCreate,
		},
		{
			Name:      "close-crowdsale",
			Usage:     "close a crowdsale before its deadline",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{propertyFlag()},
			Action:    runCloseCrowdsale,
		},
		{
			Name:      "grant",
			Usage:     "grant tokens of a managed property",
			ArgsUsage: "\n   (* = required)",
			Flags:     append(sendFlags(), memoFlag(), toFlag(false)),
			Action:    runGrant,
		},
		{
			Name:      "revoke",
			Usage:     "revoke tokens of a managed property",
			ArgsUsage: "\n   (* = required)",
			Flags:     append(sendFlags(), memoFlag()),
			Action:    runRevoke,
		},
		{
			Name:      "change-issuer",
			Usage:     "transfer management of a property",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{propertyFlag(), toFlag(true)},
			Action:    runChangeIssuer,
		},
		{
			Name:  "version",
			Usage: "display omnipack-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "setup" == command || "" == command {
			return nil
		}

		from := c.GlobalString("from")
		file := c.GlobalString("config")

		config := defaultConfiguration()
		if "" != file {
			var err error
			config, err = getConfiguration(file)
			if nil != err {
				return err
			}
		} else if "" != from {
			return fmt.Errorf("broadcast from: %q requires a configuration file", from)
		}

		if err := initialiseLogging(config.Logging); nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			config:  config,
			from:    from,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			finaliseLogging()
		}
		return nil
	}

	return app
}
