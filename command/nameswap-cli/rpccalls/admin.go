// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/nameswapd/rpc/admin"
)

// Screen - record the operator's check of a listing
func (c *Client) Screen(arguments *admin.ScreenArguments) (*admin.Reply, error) {
	var reply admin.Reply
	if err := c.call("Admin.Screen", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Remove - delete a listing without custody change
func (c *Client) Remove(arguments *admin.RemoveArguments) (*admin.Reply, error) {
	var reply admin.Reply
	if err := c.call("Admin.Remove", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RegisterReferrer - add a referrer
func (c *Client) RegisterReferrer(arguments *admin.ReferrerArguments) (*admin.Reply, error) {
	var reply admin.Reply
	if err := c.call("Admin.RegisterReferrer", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RegisterShop - add or replace a shop
func (c *Client) RegisterShop(arguments *admin.ShopArguments) (*admin.Reply, error) {
	var reply admin.Reply
	if err := c.call("Admin.RegisterShop", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// InitStats - create the statistics rows
func (c *Client) InitStats(arguments *admin.InitStatsArguments) (*admin.Reply, error) {
	var reply admin.Reply
	if err := c.call("Admin.InitStats", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Lend - delegate bandwidth to a receiver
func (c *Client) Lend(arguments *admin.LendArguments) (*admin.LoanReply, error) {
	var reply admin.LoanReply
	if err := c.call("Admin.Lend", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Recall - end a loan early
func (c *Client) Recall(arguments *admin.RecallArguments) (*admin.Reply, error) {
	var reply admin.Reply
	if err := c.call("Admin.Recall", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Loan - the last loan to a receiver
func (c *Client) Loan(receiver string) (*admin.LoanReply, error) {
	var reply admin.LoanReply
	if err := c.call("Admin.Loan", &admin.LoanArguments{Receiver: receiver}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
