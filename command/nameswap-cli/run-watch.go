// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/nameswapd/market"
	"github.com/bitmark-inc/nameswapd/zmqutil"
)

const watchTimeout = 120 * time.Second

// notice - one published marketplace message
type notice struct {
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
}

// subscribe to the broadcaster and print notices as they arrive
func runWatch(c *cli.Context) error {

	m := getMetadata(c)

	address := c.String("publisher")
	if "" == address {
		return fmt.Errorf("publisher address is required")
	}
	recipient := c.String("recipient")
	count := c.Int("count")

	client, err := m.client()
	if nil != err {
		return err
	}
	info, err := client.Info()
	client.Close()
	if nil != err {
		return err
	}

	serverPublicKey, err := hex.DecodeString(info.PublicKey)
	if nil != err {
		return fmt.Errorf("server public key: %q  error: %s", info.PublicKey, err)
	}

	// a throwaway identity is enough to subscribe
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	subscriber, err := zmqutil.NewSubscriber(
		[]byte(zmq.Z85decode(privateKey)),
		[]byte(zmq.Z85decode(publicKey)),
		serverPublicKey,
		address,
		market.NotifyCommand,
		watchTimeout,
	)
	if nil != err {
		return err
	}
	defer subscriber.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "watching: %s  recipient: %q\n", address, recipient)
	}

	for n := 0; 0 == count || n < count; {
		data, err := subscriber.Receive()
		if nil != err {
			return err
		}
		if 3 != len(data) {
			if m.verbose {
				fmt.Fprintf(m.e, "ignored message with: %d parts\n", len(data))
			}
			continue
		}

		item := notice{
			Recipient: string(data[1]),
			Message:   string(data[2]),
		}
		if "" != recipient && recipient != item.Recipient {
			continue
		}

		printJson(m.w, item)
		n += 1
	}
	return nil
}
