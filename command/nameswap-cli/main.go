// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

const defaultConnect = "127.0.0.1:2130"

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func resourceFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "resource, r",
		Value: "",
		Usage: "*account name `NAME`",
	}
}

func main() {

	app := cli.NewApp()
	app.Name = "nameswap-cli"
	app.Usage = "account name marketplace client"
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
			Usage:  " nameswapd RPC `HOST:PORT`",
			EnvVar: "NAMESWAP_CONNECT",
		},
		cli.StringSliceFlag{
			Name:   "auth, a",
			Usage:  " declared authorization `ACTOR@PERMISSION` (may be repeated)",
			EnvVar: "NAMESWAP_AUTH",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "sell",
			Usage:     "list an account for sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				resourceFlag(),
				cli.StringFlag{
					Name:  "price, p",
					Value: "",
					Usage: "*asking price `AMOUNT` e.g. \"10.0000 EOS\"",
				},
				cli.StringFlag{
					Name:  "payout, o",
					Value: "",
					Usage: " account to receive the proceeds `ACCOUNT` [first --auth actor]",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: " message shown with the listing `STRING`",
				},
			},
			Action: runSell,
		},
		{
			Name:      "cancel",
			Usage:     "withdraw a listing and return the account to new keys",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				resourceFlag(),
				cli.StringFlag{
					Name:  "owner-key, k",
					Value: "",
					Usage: "*new owner public `KEY`",
				},
				cli.StringFlag{
					Name:  "active-key, K",
					Value: "",
					Usage: " new active public `KEY` [owner key]",
				},
			},
			Action: runCancel,
		},
		{
			Name:      "update",
			Usage:     "change the price and message of a listing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				resourceFlag(),
				cli.StringFlag{
					Name:  "price, p",
					Value: "",
					Usage: "*new price `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: " new message `STRING`",
				},
			},
			Action: runUpdate,
		},
		{
			Name:      "vote",
			Usage:     "vote for a listing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				resourceFlag(),
				cli.StringFlag{
					Name:  "voter",
					Value: "",
					Usage: " voting `ACCOUNT` [first --auth actor]",
				},
			},
			Action: runVote,
		},
		{
			Name:      "bid",
			Usage:     "propose a lower price to the seller",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				resourceFlag(),
				cli.StringFlag{
					Name:  "price, p",
					Value: "",
					Usage: "*bid `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "bidder, b",
					Value: "",
					Usage: " bidding `ACCOUNT` [first --auth actor]",
				},
			},
			Action: runProposeBid,
		},
		{
			Name:      "decide",
			Usage:     "accept or reject the current bid",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				resourceFlag(),
				cli.BoolFlag{
					Name:  "accept, y",
					Usage: "+accept the bid",
				},
				cli.BoolFlag{
					Name:  "reject, n",
					Usage: "+reject the bid",
				},
			},
			Action: runDecideBid,
		},
		{
			Name:      "get",
			Usage:     "show one listing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				resourceFlag(),
			},
			Action: runGet,
		},
		{
			Name:  "list",
			Usage: "list accounts for sale",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " first account `NAME`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " number of listings `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:   "referrers",
			Usage:  "list registered referrers",
			Action: runReferrers,
		},
		{
			Name:   "shops",
			Usage:  "list registered shops",
			Action: runShops,
		},
		{
			Name:      "transfer",
			Usage:     "transfer currency to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: " paying `ACCOUNT` [first --auth actor]",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*`AMOUNT` to transfer",
				},
				cli.StringFlag{
					Name:  "memo, m",
					Value: "",
					Usage: " transfer memo `STRING`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "buy",
			Usage:     "pay the contract to buy or create an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				resourceFlag(),
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: " paying `ACCOUNT` [first --auth actor]",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*`AMOUNT` to pay",
				},
				cli.StringFlag{
					Name:  "code",
					Value: "sp",
					Usage: " purchase `CODE` [sp|cn|mk]",
				},
				cli.StringFlag{
					Name:  "owner-key, k",
					Value: "",
					Usage: "*new owner public `KEY`",
				},
				cli.StringFlag{
					Name:  "active-key, K",
					Value: "",
					Usage: " new active public `KEY` [owner key]",
				},
				cli.StringFlag{
					Name:  "referrer",
					Value: "",
					Usage: " referral `NAME`",
				},
			},
			Action: runBuy,
		},
		{
			Name:  "balance",
			Usage: "show the balance of an account",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account",
					Value: "",
					Usage: " `ACCOUNT` [first --auth actor]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "screen",
			Usage:     "record the operator screening of a listing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				resourceFlag(),
				cli.StringFlag{
					Name:  "value",
					Value: "",
					Usage: "*screening `RESULT` [approved|rejected|none]",
				},
			},
			Action: runScreen,
		},
		{
			Name:      "remove",
			Usage:     "delete a listing without returning the account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				resourceFlag(),
			},
			Action: runRemove,
		},
		{
			Name:      "add-referrer",
			Usage:     "register a referral code",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name",
					Value: "",
					Usage: "*referral `NAME`",
				},
				cli.StringFlag{
					Name:  "account",
					Value: "",
					Usage: "*`ACCOUNT` receiving the referral fee",
				},
			},
			Action: runAddReferrer,
		},
		{
			Name:      "add-shop",
			Usage:     "register a shop",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name",
					Value: "",
					Usage: "*shop `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "title",
					Value: "",
					Usage: " shop `TITLE`",
				},
				cli.StringFlag{
					Name:  "description",
					Value: "",
					Usage: " shop `DESCRIPTION`",
				},
				cli.StringSliceFlag{
					Name:  "payment",
					Usage: " payment `METHOD` (up to three)",
				},
			},
			Action: runAddShop,
		},
		{
			Name:   "init-stats",
			Usage:  "create the statistics table",
			Action: runInitStats,
		},
		{
			Name:      "lend",
			Usage:     "lend bandwidth to an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "net",
					Value: "",
					Usage: "*net stake `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "cpu",
					Value: "",
					Usage: "*cpu stake `AMOUNT`",
				},
			},
			Action: runLend,
		},
		{
			Name:      "recall",
			Usage:     "end a loan before its period",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
			},
			Action: runRecall,
		},
		{
			Name:      "loan",
			Usage:     "show the last loan to an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
			},
			Action: runLoan,
		},
		{
			Name:   "info",
			Usage:  "display nameswapd status",
			Action: runInfo,
		},
		{
			Name:  "events",
			Usage: "display part of the ledger event log",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first sequence `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " number of events `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:      "watch",
			Usage:     "print marketplace notices as they are published",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "publisher, p",
					Value: "",
					Usage: "*broadcast `ADDRESS` e.g. tcp://127.0.0.1:2135",
				},
				cli.StringFlag{
					Name:  "recipient",
					Value: "",
					Usage: " only notices to `ACCOUNT`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: " stop after `COUNT` notices [0 = never]",
				},
			},
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display nameswap-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		auth, err := parseAuthorization(c.GlobalStringSlice("auth"))
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			auth:    auth,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
