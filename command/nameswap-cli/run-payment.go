// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/nameswapd/rpc/payment"
)

func runTransfer(c *cli.Context) error {

	m := getMetadata(c)
	if err := m.requireAuth(); nil != err {
		return err
	}

	from := c.String("from")
	if "" == from {
		from = m.actor()
	}
	from, err := checkName("from", from)
	if nil != err {
		return err
	}
	to, err := checkName("to", c.String("to"))
	if nil != err {
		return err
	}
	quantity, err := checkAmount("quantity", c.String("quantity"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(&payment.TransferArguments{
		Auth:     m.auth,
		From:     from,
		To:       to,
		Quantity: quantity,
		Memo:     c.String("memo"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

// pay the contract with a memo built from the flags
func runBuy(c *cli.Context) error {

	m := getMetadata(c)
	if err := m.requireAuth(); nil != err {
		return err
	}

	from := c.String("from")
	if "" == from {
		from = m.actor()
	}
	from, err := checkName("from", from)
	if nil != err {
		return err
	}
	resource, err := checkName("resource", c.String("resource"))
	if nil != err {
		return err
	}
	quantity, err := checkAmount("quantity", c.String("quantity"))
	if nil != err {
		return err
	}

	ownerKey := c.String("owner-key")
	activeKey := c.String("active-key")
	if "" == activeKey {
		activeKey = ownerKey
	}
	text, err := makeMemo(c.String("code"), resource, ownerKey, activeKey, c.String("referrer"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	// the contract account is whatever the node serves
	info, err := client.Info()
	if nil != err {
		return err
	}

	response, err := client.Transfer(&payment.TransferArguments{
		Auth:     m.auth,
		From:     from,
		To:       info.Account,
		Quantity: quantity,
		Memo:     text,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBalance(c *cli.Context) error {

	m := getMetadata(c)

	account := c.String("account")
	if "" == account {
		account = m.actor()
	}
	account, err := checkName("account", account)
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(account)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
