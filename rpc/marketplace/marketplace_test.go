// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/fixtures"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/market"
	"github.com/bitmark-inc/nameswapd/market/mocks"
	"github.com/bitmark-inc/nameswapd/record"
	"github.com/bitmark-inc/nameswapd/rpc/marketplace"
)

var alice = ledger.Of("alice", ledger.Active)

func eos(units int64) currency.Amount {
	return currency.New(units, currency.EOS)
}

func setup(t *testing.T) (*gomock.Controller, *mocks.MockMarket, *marketplace.Market) {
	fixtures.SetupTestLogger()
	ctl := gomock.NewController(t)
	m := mocks.NewMockMarket(ctl)
	return ctl, m, marketplace.New(logger.New(fixtures.LogCategory), m)
}

func teardown(ctl *gomock.Controller) {
	ctl.Finish()
	fixtures.TeardownTestLogger()
}

func TestSell(t *testing.T) {
	ctl, m, s := setup(t)
	defer teardown(ctl)

	arg := marketplace.SellArguments{
		Auth:     alice,
		Resource: "tradename",
		Price:    eos(100000),
		Payout:   "alice",
		Message:  "quick sale",
	}

	m.EXPECT().Sell(alice, &market.SellArguments{
		Resource: "tradename",
		Price:    eos(100000),
		Payout:   "alice",
		Message:  "quick sale",
	}).Return(nil).Times(1)

	var reply marketplace.Reply
	err := s.Sell(&arg, &reply)
	assert.Nil(t, err, "wrong Sell")
	assert.Equal(t, "tradename", reply.Resource, "wrong resource")
	assert.Equal(t, "ok", reply.Status, "wrong status")
}

func TestSellError(t *testing.T) {
	ctl, m, s := setup(t)
	defer teardown(ctl)

	m.EXPECT().Sell(gomock.Any(), gomock.Any()).Return(fault.AlreadyListed).Times(1)

	var reply marketplace.Reply
	err := s.Sell(&marketplace.SellArguments{Resource: "tradename"}, &reply)
	assert.Equal(t, fault.AlreadyListed, err, "wrong error")
	assert.Equal(t, "", reply.Status, "status set on error")
}

func TestSellMissingResource(t *testing.T) {
	ctl, _, s := setup(t)
	defer teardown(ctl)

	var reply marketplace.Reply
	err := s.Sell(&marketplace.SellArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestCancel(t *testing.T) {
	ctl, m, s := setup(t)
	defer teardown(ctl)

	m.EXPECT().Cancel(alice, &market.CancelArguments{
		Resource:  "tradename",
		OwnerKey:  fixtures.AliceOwnerKey,
		ActiveKey: fixtures.AliceActiveKey,
	}).Return(nil).Times(1)

	var reply marketplace.Reply
	err := s.Cancel(&marketplace.CancelArguments{
		Auth:      alice,
		Resource:  "tradename",
		OwnerKey:  fixtures.AliceOwnerKey,
		ActiveKey: fixtures.AliceActiveKey,
	}, &reply)
	assert.Nil(t, err, "wrong Cancel")
	assert.Equal(t, "ok", reply.Status, "wrong status")
}

func TestUpdateAndVote(t *testing.T) {
	ctl, m, s := setup(t)
	defer teardown(ctl)

	m.EXPECT().Update(alice, &market.UpdateArguments{
		Resource: "tradename",
		Price:    eos(90000),
		Message:  "lower",
	}).Return(nil).Times(1)
	m.EXPECT().Vote(ledger.Of("bob", ledger.Active), "tradename", "bob").Return(fault.AlreadyVoted).Times(1)

	var reply marketplace.Reply
	err := s.Update(&marketplace.UpdateArguments{
		Auth:     alice,
		Resource: "tradename",
		Price:    eos(90000),
		Message:  "lower",
	}, &reply)
	assert.Nil(t, err, "wrong Update")

	err = s.Vote(&marketplace.VoteArguments{
		Auth:     ledger.Of("bob", ledger.Active),
		Resource: "tradename",
		Voter:    "bob",
	}, &marketplace.Reply{})
	assert.Equal(t, fault.AlreadyVoted, err, "wrong Vote")
}

func TestBids(t *testing.T) {
	ctl, m, s := setup(t)
	defer teardown(ctl)

	carl := ledger.Of("carl", ledger.Active)
	m.EXPECT().ProposeBid(carl, &market.BidArguments{
		Resource: "tradename",
		Price:    eos(60000),
		Bidder:   "carl",
	}).Return(nil).Times(1)
	m.EXPECT().DecideBid(alice, "tradename", true).Return(nil).Times(1)
	m.EXPECT().DecideBid(alice, "tradename", false).Return(nil).Times(1)

	err := s.ProposeBid(&marketplace.BidArguments{
		Auth:     carl,
		Resource: "tradename",
		Price:    eos(60000),
		Bidder:   "carl",
	}, &marketplace.Reply{})
	assert.Nil(t, err, "wrong ProposeBid")

	var reply marketplace.Reply
	err = s.DecideBid(&marketplace.DecideArguments{Auth: alice, Resource: "tradename", Accept: true}, &reply)
	assert.Nil(t, err, "wrong accept")
	assert.Equal(t, "accepted", reply.Status, "wrong accept status")

	err = s.DecideBid(&marketplace.DecideArguments{Auth: alice, Resource: "tradename", Accept: false}, &reply)
	assert.Nil(t, err, "wrong reject")
	assert.Equal(t, "rejected", reply.Status, "wrong reject status")
}

func TestGet(t *testing.T) {
	ctl, m, s := setup(t)
	defer teardown(ctl)

	sale := &market.Sale{
		Listing: record.Listing{Resource: "tradename", Price: eos(100000), Payout: "alice"},
		Extras:  record.Extras{Resource: "tradename", Votes: 2},
		Bid:     record.Bid{Resource: "tradename", Status: record.BidUndecided},
	}
	m.EXPECT().Listing("tradename").Return(sale, nil).Times(1)
	m.EXPECT().Listing("missing").Return(nil, fault.NotListed).Times(1)

	var reply market.Sale
	err := s.Get(&marketplace.GetArguments{Resource: "tradename"}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, *sale, reply, "wrong sale")

	err = s.Get(&marketplace.GetArguments{Resource: "missing"}, &reply)
	assert.Equal(t, fault.NotListed, err, "wrong missing")
}

func TestList(t *testing.T) {
	ctl, m, s := setup(t)
	defer teardown(ctl)

	sales := []market.Sale{
		{Listing: record.Listing{Resource: "aaa"}},
		{Listing: record.Listing{Resource: "bbb"}},
		{Listing: record.Listing{Resource: "ccc"}},
	}
	m.EXPECT().Listings("", 3).Return(sales, nil).Times(1)
	m.EXPECT().Listings("ccc", 3).Return(sales[2:], nil).Times(1)

	var reply marketplace.ListReply
	err := s.List(&marketplace.ListArguments{Start: "", Count: 2}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, sales[:2], reply.Sales, "wrong first page")
	assert.Equal(t, "ccc", reply.NextStart, "wrong next start")

	reply = marketplace.ListReply{}
	err = s.List(&marketplace.ListArguments{Start: "ccc", Count: 2}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, sales[2:], reply.Sales, "wrong last page")
	assert.Equal(t, "", reply.NextStart, "wrong end")
}

func TestListInvalidCount(t *testing.T) {
	ctl, _, s := setup(t)
	defer teardown(ctl)

	var reply marketplace.ListReply
	err := s.List(&marketplace.ListArguments{Count: 0}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "wrong zero count")

	err = s.List(&marketplace.ListArguments{Count: 51}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "wrong large count")
}

func TestRegistries(t *testing.T) {
	ctl, m, s := setup(t)
	defer teardown(ctl)

	referrers := []record.Referrer{{Name: "referral", Account: "dave"}}
	shops := []record.Shop{{Name: "tradename", Title: "Names"}}
	m.EXPECT().Referrers().Return(referrers, nil).Times(1)
	m.EXPECT().Shops().Return(shops, nil).Times(1)

	var r marketplace.ReferrersReply
	err := s.Referrers(&marketplace.EmptyArguments{}, &r)
	assert.Nil(t, err, "wrong Referrers")
	assert.Equal(t, referrers, r.Referrers, "wrong referrers")

	var sh marketplace.ShopsReply
	err = s.Shops(&marketplace.EmptyArguments{}, &sh)
	assert.Nil(t, err, "wrong Shops")
	assert.Equal(t, shops, sh.Shops, "wrong shops")
}
