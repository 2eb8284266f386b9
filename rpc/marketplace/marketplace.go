// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/market"
	"github.com/bitmark-inc/nameswapd/record"
	"github.com/bitmark-inc/nameswapd/rpc/ratelimit"
)

const (
	rateLimitMarket = 200
	rateBurstMarket = 100

	maximumListCount = 50
)

// Market - type for RPC calls
type Market struct {
	Log     *logger.L
	Limiter *rate.Limiter
	market  market.Market
}

// New - create the Market service
func New(log *logger.L, m market.Market) *Market {
	return &Market{
		Log:     log,
		Limiter: ratelimit.New(rateLimitMarket, rateBurstMarket),
		market:  m,
	}
}

// Reply - result of a state changing call
type Reply struct {
	Resource string `json:"resource"`
	Status   string `json:"status"`
}

const statusOK = "ok"

// ---

// SellArguments - list an account for sale
type SellArguments struct {
	Auth     ledger.Authorization `json:"auth"`
	Resource string               `json:"resource"`
	Price    currency.Amount      `json:"price"`
	Payout   string               `json:"payout"`
	Message  string               `json:"message"`
}

// Sell - put a resource into escrow at an asking price
func (m *Market) Sell(arguments *SellArguments, reply *Reply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Resource {
		return fault.MissingParameters
	}

	m.Log.Infof("Market.Sell: %s  price: %s  payout: %s", arguments.Resource, arguments.Price, arguments.Payout)

	err := m.market.Sell(arguments.Auth, &market.SellArguments{
		Resource: arguments.Resource,
		Price:    arguments.Price,
		Payout:   arguments.Payout,
		Message:  arguments.Message,
	})
	if nil != err {
		return err
	}

	reply.Resource = arguments.Resource
	reply.Status = statusOK
	return nil
}

// ---

// CancelArguments - withdraw a listing
type CancelArguments struct {
	Auth      ledger.Authorization `json:"auth"`
	Resource  string               `json:"resource"`
	OwnerKey  string               `json:"ownerKey"`
	ActiveKey string               `json:"activeKey"`
}

// Cancel - return a listed resource to the given keys
func (m *Market) Cancel(arguments *CancelArguments, reply *Reply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Resource {
		return fault.MissingParameters
	}

	m.Log.Infof("Market.Cancel: %s", arguments.Resource)

	err := m.market.Cancel(arguments.Auth, &market.CancelArguments{
		Resource:  arguments.Resource,
		OwnerKey:  arguments.OwnerKey,
		ActiveKey: arguments.ActiveKey,
	})
	if nil != err {
		return err
	}

	reply.Resource = arguments.Resource
	reply.Status = statusOK
	return nil
}

// ---

// UpdateArguments - new price and message
type UpdateArguments struct {
	Auth     ledger.Authorization `json:"auth"`
	Resource string               `json:"resource"`
	Price    currency.Amount      `json:"price"`
	Message  string               `json:"message"`
}

// Update - change the asking price and message
func (m *Market) Update(arguments *UpdateArguments, reply *Reply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Resource {
		return fault.MissingParameters
	}

	m.Log.Infof("Market.Update: %s  price: %s", arguments.Resource, arguments.Price)

	err := m.market.Update(arguments.Auth, &market.UpdateArguments{
		Resource: arguments.Resource,
		Price:    arguments.Price,
		Message:  arguments.Message,
	})
	if nil != err {
		return err
	}

	reply.Resource = arguments.Resource
	reply.Status = statusOK
	return nil
}

// ---

// VoteArguments - one vote for a listing
type VoteArguments struct {
	Auth     ledger.Authorization `json:"auth"`
	Resource string               `json:"resource"`
	Voter    string               `json:"voter"`
}

// Vote - record a vote from an account
func (m *Market) Vote(arguments *VoteArguments, reply *Reply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Resource || "" == arguments.Voter {
		return fault.MissingParameters
	}

	err := m.market.Vote(arguments.Auth, arguments.Resource, arguments.Voter)
	if nil != err {
		return err
	}

	reply.Resource = arguments.Resource
	reply.Status = statusOK
	return nil
}

// ---

// BidArguments - a price offer
type BidArguments struct {
	Auth     ledger.Authorization `json:"auth"`
	Resource string               `json:"resource"`
	Price    currency.Amount      `json:"price"`
	Bidder   string               `json:"bidder"`
}

// ProposeBid - offer a price below the asking price
func (m *Market) ProposeBid(arguments *BidArguments, reply *Reply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Resource || "" == arguments.Bidder {
		return fault.MissingParameters
	}

	m.Log.Infof("Market.ProposeBid: %s  price: %s  bidder: %s", arguments.Resource, arguments.Price, arguments.Bidder)

	err := m.market.ProposeBid(arguments.Auth, &market.BidArguments{
		Resource: arguments.Resource,
		Price:    arguments.Price,
		Bidder:   arguments.Bidder,
	})
	if nil != err {
		return err
	}

	reply.Resource = arguments.Resource
	reply.Status = statusOK
	return nil
}

// DecideArguments - the seller's answer to the current bid
type DecideArguments struct {
	Auth     ledger.Authorization `json:"auth"`
	Resource string               `json:"resource"`
	Accept   bool                 `json:"accept"`
}

// DecideBid - accept or reject the current bid
func (m *Market) DecideBid(arguments *DecideArguments, reply *Reply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Resource {
		return fault.MissingParameters
	}

	m.Log.Infof("Market.DecideBid: %s  accept: %t", arguments.Resource, arguments.Accept)

	err := m.market.DecideBid(arguments.Auth, arguments.Resource, arguments.Accept)
	if nil != err {
		return err
	}

	reply.Resource = arguments.Resource
	if arguments.Accept {
		reply.Status = record.BidAccepted.String()
	} else {
		reply.Status = record.BidRejected.String()
	}
	return nil
}

// ---

// GetArguments - a single listing
type GetArguments struct {
	Resource string `json:"resource"`
}

// Get - fetch one listing
func (m *Market) Get(arguments *GetArguments, reply *market.Sale) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Resource {
		return fault.MissingParameters
	}

	sale, err := m.market.Listing(arguments.Resource)
	if nil != err {
		return err
	}
	*reply = *sale
	return nil
}

// ListArguments - page of listings in name order
type ListArguments struct {
	Start string `json:"start"`
	Count int    `json:"count"`
}

// ListReply - listings and where the next page starts
//
// NextStart is empty after the last page
type ListReply struct {
	Sales     []market.Sale `json:"sales"`
	NextStart string        `json:"nextStart"`
}

// List - page through listings
func (m *Market) List(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(m.Limiter, arguments.Count, maximumListCount); nil != err {
		return err
	}

	// one extra to find the next start
	sales, err := m.market.Listings(arguments.Start, arguments.Count+1)
	if nil != err {
		return err
	}

	if len(sales) > arguments.Count {
		reply.NextStart = sales[arguments.Count].Listing.Resource
		sales = sales[:arguments.Count]
	}
	reply.Sales = sales
	return nil
}

// ---

// EmptyArguments - for calls without parameters
type EmptyArguments struct{}

// ReferrersReply - registered referral codes
type ReferrersReply struct {
	Referrers []record.Referrer `json:"referrers"`
}

// Referrers - list referral codes
func (m *Market) Referrers(_ *EmptyArguments, reply *ReferrersReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}
	referrers, err := m.market.Referrers()
	if nil != err {
		return err
	}
	reply.Referrers = referrers
	return nil
}

// ShopsReply - registered storefronts
type ShopsReply struct {
	Shops []record.Shop `json:"shops"`
}

// Shops - list storefronts
func (m *Market) Shops(_ *EmptyArguments, reply *ShopsReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}
	shops, err := m.market.Shops()
	if nil != err {
		return err
	}
	reply.Shops = shops
	return nil
}
