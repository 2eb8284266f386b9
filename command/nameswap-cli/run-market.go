// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nameswapd/rpc/marketplace"
)

func runSell(c *cli.Context) error {

	m := getMetadata(c)
	if err := m.requireAuth(); nil != err {
		return err
	}

	resource, err := checkName("resource", c.String("resource"))
	if nil != err {
		return err
	}
	price, err := checkAmount("price", c.String("price"))
	if nil != err {
		return err
	}
	payout := c.String("payout")
	if "" == payout {
		payout = m.actor()
	}
	if payout, err = checkName("payout", payout); nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Sell(&marketplace.SellArguments{
		Auth:     m.auth,
		Resource: resource,
		Price:    price,
		Payout:   payout,
		Message:  c.String("message"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runCancel(c *cli.Context) error {

	m := getMetadata(c)
	if err := m.requireAuth(); nil != err {
		return err
	}

	resource, err := checkName("resource", c.String("resource"))
	if nil != err {
		return err
	}
	ownerKey := c.String("owner-key")
	if "" == ownerKey {
		return fmt.Errorf("owner key is required")
	}
	activeKey := c.String("active-key")
	if "" == activeKey {
		activeKey = ownerKey
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Cancel(&marketplace.CancelArguments{
		Auth:      m.auth,
		Resource:  resource,
		OwnerKey:  ownerKey,
		ActiveKey: activeKey,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runUpdate(c *cli.Context) error {

	m := getMetadata(c)
	if err := m.requireAuth(); nil != err {
		return err
	}

	resource, err := checkName("resource", c.String("resource"))
	if nil != err {
		return err
	}
	price, err := checkAmount("price", c.String("price"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Update(&marketplace.UpdateArguments{
		Auth:     m.auth,
		Resource: resource,
		Price:    price,
		Message:  c.String("message"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runVote(c *cli.Context) error {

	m := getMetadata(c)
	if err := m.requireAuth(); nil != err {
		return err
	}

	resource, err := checkName("resource", c.String("resource"))
	if nil != err {
		return err
	}
	voter := c.String("voter")
	if "" == voter {
		voter = m.actor()
	}
	if voter, err = checkName("voter", voter); nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Vote(&marketplace.VoteArguments{
		Auth:     m.auth,
		Resource: resource,
		Voter:    voter,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runProposeBid(c *cli.Context) error {

	m := getMetadata(c)
	if err := m.requireAuth(); nil != err {
		return err
	}

	resource, err := checkName("resource", c.String("resource"))
	if nil != err {
		return err
	}
	price, err := checkAmount("price", c.String("price"))
	if nil != err {
		return err
	}
	bidder := c.String("bidder")
	if "" == bidder {
		bidder = m.actor()
	}
	if bidder, err = checkName("bidder", bidder); nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ProposeBid(&marketplace.BidArguments{
		Auth:     m.auth,
		Resource: resource,
		Price:    price,
		Bidder:   bidder,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runDecideBid(c *cli.Context) error {

	m := getMetadata(c)
	if err := m.requireAuth(); nil != err {
		return err
	}

	resource, err := checkName("resource", c.String("resource"))
	if nil != err {
		return err
	}

	accept := c.Bool("accept")
	if accept == c.Bool("reject") {
		return fmt.Errorf("select exactly one of --accept or --reject")
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.DecideBid(&marketplace.DecideArguments{
		Auth:     m.auth,
		Resource: resource,
		Accept:   accept,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runGet(c *cli.Context) error {

	m := getMetadata(c)

	resource, err := checkName("resource", c.String("resource"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Get(resource)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runList(c *cli.Context) error {

	m := getMetadata(c)

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.List(c.String("start"), count)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runReferrers(c *cli.Context) error {

	m := getMetadata(c)

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Referrers()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runShops(c *cli.Context) error {

	m := getMetadata(c)

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Shops()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
