// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/nameswapd/market"
	"github.com/bitmark-inc/nameswapd/rpc/marketplace"
)

// Sell - list an account for sale
func (c *Client) Sell(arguments *marketplace.SellArguments) (*marketplace.Reply, error) {
	var reply marketplace.Reply
	if err := c.call("Market.Sell", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Cancel - withdraw a listing
func (c *Client) Cancel(arguments *marketplace.CancelArguments) (*marketplace.Reply, error) {
	var reply marketplace.Reply
	if err := c.call("Market.Cancel", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Update - change price and message
func (c *Client) Update(arguments *marketplace.UpdateArguments) (*marketplace.Reply, error) {
	var reply marketplace.Reply
	if err := c.call("Market.Update", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Vote - vote for a listing
func (c *Client) Vote(arguments *marketplace.VoteArguments) (*marketplace.Reply, error) {
	var reply marketplace.Reply
	if err := c.call("Market.Vote", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ProposeBid - offer a lower price
func (c *Client) ProposeBid(arguments *marketplace.BidArguments) (*marketplace.Reply, error) {
	var reply marketplace.Reply
	if err := c.call("Market.ProposeBid", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// DecideBid - accept or reject the current bid
func (c *Client) DecideBid(arguments *marketplace.DecideArguments) (*marketplace.Reply, error) {
	var reply marketplace.Reply
	if err := c.call("Market.DecideBid", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Get - one listing
func (c *Client) Get(resource string) (*market.Sale, error) {
	var reply market.Sale
	if err := c.call("Market.Get", &marketplace.GetArguments{Resource: resource}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// List - listings in resource order
func (c *Client) List(start string, count int) (*marketplace.ListReply, error) {
	var reply marketplace.ListReply
	if err := c.call("Market.List", &marketplace.ListArguments{Start: start, Count: count}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Referrers - registered referrers
func (c *Client) Referrers() (*marketplace.ReferrersReply, error) {
	var reply marketplace.ReferrersReply
	if err := c.call("Market.Referrers", &marketplace.EmptyArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Shops - registered shops
func (c *Client) Shops() (*marketplace.ShopsReply, error) {
	var reply marketplace.ShopsReply
	if err := c.call("Market.Shops", &marketplace.EmptyArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
