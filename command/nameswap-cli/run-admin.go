// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nameswapd/record"
	"github.com/bitmark-inc/nameswapd/rpc/admin"
)

func runScreen(c *cli.Context) error {

	m := getMetadata(c)
	if err := m.requireAuth(); nil != err {
		return err
	}

	resource, err := checkName("resource", c.String("resource"))
	if nil != err {
		return err
	}
	screened, err := parseScreening(c.String("value"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Screen(&admin.ScreenArguments{
		Auth:     m.auth,
		Resource: resource,
		Screened: screened,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRemove(c *cli.Context) error {

	m := getMetadata(c)
	if err := m.requireAuth(); nil != err {
		return err
	}

	resource, err := checkName("resource", c.String("resource"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Remove(&admin.RemoveArguments{
		Auth:     m.auth,
		Resource: resource,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runAddReferrer(c *cli.Context) error {

	m := getMetadata(c)
	if err := m.requireAuth(); nil != err {
		return err
	}

	name := c.String("name")
	if "" == name {
		return fmt.Errorf("referrer name is required")
	}
	account, err := checkName("account", c.String("account"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RegisterReferrer(&admin.ReferrerArguments{
		Auth:    m.auth,
		Name:    name,
		Account: account,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runAddShop(c *cli.Context) error {

	m := getMetadata(c)
	if err := m.requireAuth(); nil != err {
		return err
	}

	name, err := checkName("name", c.String("name"))
	if nil != err {
		return err
	}

	payments := c.StringSlice("payment")
	shop := record.Shop{
		Name:        name,
		Title:       c.String("title"),
		Description: c.String("description"),
	}
	if len(payments) > len(shop.Payment) {
		return fmt.Errorf("at most: %d payment methods are allowed", len(shop.Payment))
	}
	copy(shop.Payment[:], payments)

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RegisterShop(&admin.ShopArguments{
		Auth: m.auth,
		Shop: shop,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runInitStats(c *cli.Context) error {

	m := getMetadata(c)
	if err := m.requireAuth(); nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.InitStats(&admin.InitStatsArguments{
		Auth: m.auth,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runLend(c *cli.Context) error {

	m := getMetadata(c)
	if err := m.requireAuth(); nil != err {
		return err
	}

	receiver, err := checkName("receiver", c.String("receiver"))
	if nil != err {
		return err
	}
	net, err := checkAmount("net", c.String("net"))
	if nil != err {
		return err
	}
	cpu, err := checkAmount("cpu", c.String("cpu"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Lend(&admin.LendArguments{
		Auth:     m.auth,
		Receiver: receiver,
		Net:      net,
		Cpu:      cpu,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRecall(c *cli.Context) error {

	m := getMetadata(c)
	if err := m.requireAuth(); nil != err {
		return err
	}

	receiver, err := checkName("receiver", c.String("receiver"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Recall(&admin.RecallArguments{
		Auth:     m.auth,
		Receiver: receiver,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runLoan(c *cli.Context) error {

	m := getMetadata(c)

	receiver, err := checkName("receiver", c.String("receiver"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Loan(receiver)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
