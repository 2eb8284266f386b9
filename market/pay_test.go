// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/fixtures"
	"github.com/bitmark-inc/nameswapd/ledger"
	ledger_mocks "github.com/bitmark-inc/nameswapd/ledger/mocks"
	"github.com/bitmark-inc/nameswapd/market"
	"github.com/bitmark-inc/nameswapd/memo"
	"github.com/bitmark-inc/nameswapd/record"
	"github.com/bitmark-inc/nameswapd/storage"
)

func checkFees(t *testing.T, receipt *market.Receipt) {
	total := receipt.SellerFee.Units + receipt.ContractFee.Units + receipt.ReferrerFee.Units
	assert.Equal(t, receipt.Price.Units, total, "fees sum to price")
}

func TestBuyAtAskPrice(t *testing.T) {
	m := setupMarket(t, defaultConfiguration(), true)
	defer teardownMarket()

	m.list()

	receipt, err := m.pay("bob", 100000, purchase(memo.Standard, resource, ""))
	assert.Nil(t, err, "pay")
	assert.Equal(t, &market.Receipt{
		Code:        memo.Standard,
		Resource:    resource,
		Buyer:       "bob",
		Price:       eos(100000),
		SellerFee:   eos(98000),
		ContractFee: eos(2000),
		ReferrerFee: eos(0),
	}, receipt, "receipt")
	checkFees(t, receipt)

	assert.Equal(t, int64(1000000-100000), m.balance("bob"), "buyer balance")
	assert.Equal(t, int64(98000), m.balance("alice"), "seller balance")
	assert.Equal(t, int64(2000), m.balance(fees), "fees balance")
	assert.Equal(t, int64(0), m.balance(contract), "contract keeps nothing")

	assert.Equal(t, ledger.KeyAuthority(fixtures.BobActiveKey), m.authority(resource, ledger.Active), "buyer active")
	assert.Equal(t, ledger.KeyAuthority(fixtures.BobOwnerKey), m.authority(resource, ledger.Owner), "buyer owner")

	stats := m.stats(market.GeneralStats)
	assert.Equal(t, record.Stats{Index: 0, Listed: 0, Purchased: 1, Sales: eos(100000), Fees: eos(2000)}, stats, "stats")

	n := m.notices.last()
	assert.Equal(t, "bob", n[0], "buyer notified")
	assert.True(t, strings.Contains(n[1], "successfully bought the account "+resource), "notice text")

	_, err = m.engine.Listing(resource)
	assert.Equal(t, fault.NotListed, err, "rows removed")

	_, err = m.pay("bob", 100000, purchase(memo.Standard, resource, ""))
	assert.Equal(t, fault.NotListed, err, "repeat purchase")
	assert.Equal(t, int64(1000000-100000), m.balance("bob"), "repeat payment returned")

	err = m.engine.Cancel(ledger.Of("alice", ledger.Active), &market.CancelArguments{Resource: resource, OwnerKey: ledger.NoKey, ActiveKey: ledger.NoKey})
	assert.Equal(t, fault.NotListed, err, "cancel after purchase")
}

func TestBuyWithReferrer(t *testing.T) {
	m := setupMarket(t, defaultConfiguration(), true)
	defer teardownMarket()

	err := m.engine.RegisterReferrer(ledger.Of(contract, ledger.Active), "friend", "referral")
	assert.Nil(t, err, "regref")

	m.list()

	receipt, err := m.pay("bob", 100000, purchase(memo.Standard, resource, "friend"))
	assert.Nil(t, err, "pay")
	assert.Equal(t, "friend", receipt.Referrer, "referrer")
	assert.Equal(t, eos(98000), receipt.SellerFee, "seller fee")
	assert.Equal(t, eos(1800), receipt.ContractFee, "contract fee")
	assert.Equal(t, eos(200), receipt.ReferrerFee, "referrer fee")
	checkFees(t, receipt)

	assert.Equal(t, int64(200), m.balance("referral"), "referrer balance")
	assert.Equal(t, int64(1800), m.balance(fees), "fees balance")
	assert.Equal(t, eos(1800), m.stats(market.GeneralStats).Fees, "stats after carve out")
}

func TestBuyWithUnknownReferrer(t *testing.T) {
	m := setupMarket(t, defaultConfiguration(), true)
	defer teardownMarket()

	m.list()

	receipt, err := m.pay("bob", 100000, purchase(memo.Standard, resource, "stranger"))
	assert.Nil(t, err, "pay")
	assert.Equal(t, "", receipt.Referrer, "no referrer")
	assert.Equal(t, eos(2000), receipt.ContractFee, "contract fee")
	checkFees(t, receipt)
}

func TestBuyFeeRounding(t *testing.T) {
	m := setupMarket(t, defaultConfiguration(), true)
	defer teardownMarket()

	err := m.engine.RegisterReferrer(ledger.Of(contract, ledger.Active), "friend", "referral")
	assert.Nil(t, err, "regref")

	err = m.engine.Sell(ledger.Of(resource, ledger.Owner), &market.SellArguments{
		Resource: resource,
		Price:    eos(12345),
		Payout:   "alice",
	})
	assert.Nil(t, err, "sell")

	receipt, err := m.pay("bob", 12345, purchase(memo.Standard, resource, "friend"))
	assert.Nil(t, err, "pay")

	// floor(12345 × 2%) = 246, floor(246 × 10%) = 24
	assert.Equal(t, eos(12345-246), receipt.SellerFee, "seller fee")
	assert.Equal(t, eos(246-24), receipt.ContractFee, "contract fee")
	assert.Equal(t, eos(24), receipt.ReferrerFee, "referrer fee")
	checkFees(t, receipt)
}

func TestBuyAcceptedBid(t *testing.T) {
	m := setupMarket(t, defaultConfiguration(), true)
	defer teardownMarket()

	m.list()

	assert.Nil(t, m.bid("bob", 50000), "bob bids 5")
	assert.Nil(t, m.bid("carl", 60000), "carl bids 6")

	_, err := m.pay("carl", 60000, purchase(memo.Standard, resource, ""))
	assert.Equal(t, fault.BidNotAccepted, err, "undecided bid")

	assert.Nil(t, m.engine.DecideBid(ledger.Of("alice", ledger.Active), resource, true), "alice accepts")

	_, err = m.pay("bob", 60000, purchase(memo.Standard, resource, ""))
	assert.Equal(t, fault.NotAcceptedBidder, err, "another payer")
	assert.Equal(t, int64(1000000), m.balance("bob"), "bob refunded")

	_, err = m.pay("carl", 55000, purchase(memo.Standard, resource, ""))
	assert.Equal(t, fault.WrongAmount, err, "neither price")

	receipt, err := m.pay("carl", 60000, purchase(memo.Standard, resource, ""))
	assert.Nil(t, err, "carl buys at bid")
	assert.Equal(t, eos(60000), receipt.Price, "bid price")
	assert.Equal(t, eos(58800), receipt.SellerFee, "seller fee")
	assert.Equal(t, eos(1200), receipt.ContractFee, "contract fee")
	checkFees(t, receipt)

	assert.Equal(t, int64(1000000-60000), m.balance("carl"), "carl balance")
	assert.Equal(t, int64(58800), m.balance("alice"), "alice balance")

	stats := m.stats(market.GeneralStats)
	assert.Equal(t, uint64(0), stats.Listed, "listed")
	assert.Equal(t, uint64(1), stats.Purchased, "purchased")
	assert.Equal(t, eos(60000), stats.Sales, "sales")
	assert.Equal(t, eos(1200), stats.Fees, "fees")
}

func TestBuyRejectedBid(t *testing.T) {
	m := setupMarket(t, defaultConfiguration(), true)
	defer teardownMarket()

	m.list()

	assert.Nil(t, m.bid("carl", 60000), "carl bids")
	assert.Nil(t, m.engine.DecideBid(ledger.Of("alice", ledger.Active), resource, false), "alice rejects")

	_, err := m.pay("carl", 60000, purchase(memo.Standard, resource, ""))
	assert.Equal(t, fault.BidNotAccepted, err, "rejected bid")
}

func TestBuyAskPriceWithAcceptedBid(t *testing.T) {
	m := setupMarket(t, defaultConfiguration(), true)
	defer teardownMarket()

	m.list()

	assert.Nil(t, m.bid("carl", 60000), "carl bids")
	assert.Nil(t, m.engine.DecideBid(ledger.Of("alice", ledger.Active), resource, true), "accept")

	receipt, err := m.pay("bob", 100000, purchase(memo.Standard, resource, ""))
	assert.Nil(t, err, "bob pays ask")
	assert.Equal(t, eos(100000), receipt.Price, "ask price used")
}

func TestBuyInvalid(t *testing.T) {
	m := setupMarket(t, defaultConfiguration(), true)
	defer teardownMarket()

	m.list()

	tests := []struct {
		from     string
		to       string
		quantity currency.Amount
		memo     string
		err      error
	}{
		{"bob", "alice", eos(100000), purchase(memo.Standard, resource, ""), fault.NotDirectToContract},
		{"bob", contract, currency.New(100000, currency.Telos), purchase(memo.Standard, resource, ""), fault.InvalidSymbol},
		{"bob", contract, eos(0), purchase(memo.Standard, resource, ""), fault.InvalidAmount},
		{"bob", contract, eos(100000), "hello", fault.MalformedMemo},
		{"bob", contract, eos(100000), "sp:" + resource + ",key,key", fault.MalformedMemo},
		{"bob", contract, eos(99999), purchase(memo.Standard, resource, ""), fault.WrongAmount},
		{"bob", contract, eos(100000), purchase(memo.Standard, "unlisted", ""), fault.NotListed},
		{"dave", contract, eos(100000), purchase(memo.Standard, resource, ""), fault.InsufficientFunds},
	}
	for i, item := range tests {
		_, err := m.engine.Pay(ledger.Of(item.from, ledger.Active), &market.PaymentArguments{
			From:     item.from,
			To:       item.to,
			Quantity: item.quantity,
			Memo:     item.memo,
		})
		assert.Equal(t, item.err, err, "%d: error", i)
	}

	_, err := m.engine.Pay(ledger.Of("carl", ledger.Active), &market.PaymentArguments{
		From:     "bob",
		To:       contract,
		Quantity: eos(100000),
		Memo:     purchase(memo.Standard, resource, ""),
	})
	assert.Equal(t, fault.Unauthorized, err, "payer authorisation")

	assert.Equal(t, int64(1000000), m.balance("bob"), "bob balance unchanged")
	_, err = m.engine.Listing(resource)
	assert.Nil(t, err, "still listed")

	receipt, err := m.engine.Pay(ledger.Of(contract, ledger.Active), &market.PaymentArguments{
		From:     contract,
		To:       "alice",
		Quantity: eos(100),
		Memo:     "refund",
	})
	assert.Nil(t, err, "outgoing payment")
	assert.True(t, receipt.Ignored, "ignored")
}

func TestBuyScreening(t *testing.T) {
	conf := defaultConfiguration()
	conf.RequireScreening = true
	m := setupMarket(t, conf, true)
	defer teardownMarket()

	m.list()
	operator := ledger.Of(contract, ledger.Active)

	_, err := m.pay("bob", 100000, purchase(memo.Standard, resource, ""))
	assert.Equal(t, fault.NotScreened, err, "not screened")

	assert.Nil(t, m.engine.Screen(operator, resource, record.Rejected), "reject")
	_, err = m.pay("bob", 100000, purchase(memo.Standard, resource, ""))
	assert.Equal(t, fault.ScreeningRejected, err, "rejected")

	assert.Nil(t, m.engine.Screen(operator, resource, record.Approved), "approve")
	_, err = m.pay("bob", 100000, purchase(memo.Standard, resource, ""))
	assert.Nil(t, err, "approved")
}

func TestBuyWithoutScreeningPolicy(t *testing.T) {
	m := setupMarket(t, defaultConfiguration(), true)
	defer teardownMarket()

	m.list()

	assert.Nil(t, m.engine.Screen(ledger.Of(contract, ledger.Active), resource, record.Rejected), "reject")
	_, err := m.pay("bob", 100000, purchase(memo.Standard, resource, ""))
	assert.Nil(t, err, "policy off")
}

func TestBuyCustom(t *testing.T) {
	m := setupMarket(t, defaultConfiguration(), true)
	defer teardownMarket()

	receipt, err := m.pay("bob", 37000, purchase(memo.Custom, "abcdefg.e", ""))
	assert.Nil(t, err, "buy .e")
	assert.Equal(t, "e", receipt.Payee, "payee")
	assert.Equal(t, eos(37000), receipt.Price, "price")
	assert.Equal(t, int64(37000), m.balance("e"), "suffix owner paid")
	assert.Equal(t, int64(0), m.balance(contract), "contract keeps nothing")

	stats := m.stats(1)
	assert.Equal(t, uint64(1), stats.Purchased, "purchased")
	assert.Equal(t, eos(37000), stats.Sales, "sales")

	receipt, err = m.pay("bob", 507000, purchase(memo.Custom, "abcd.y", ""))
	assert.Nil(t, err, "buy .y")
	assert.Equal(t, "buyname.x", receipt.Payee, "payee")
	assert.Equal(t, uint64(1), m.stats(3).Purchased, "y purchased")

	events, err := m.ledger.Events(0, 1000)
	assert.Nil(t, err, "events")
	found := false
	for _, e := range events {
		if ledger.EventTransfer == e.Kind && strings.Contains(e.Data, "abcd.y-"+fixtures.BobOwnerKey+"-nameswapsfee") {
			found = true
		}
	}
	assert.True(t, found, "suffix memo sent")

	tests := []struct {
		name  string
		units int64
		err   error
	}{
		{"abcdefg.e", 36000, fault.WrongAmount},
		{"abcdefgh.q", 37000, fault.InvalidSuffix},
		{"abcd.e", 57000, fault.InvalidSuffixLength},
	}
	for i, item := range tests {
		_, err := m.pay("bob", item.units, purchase(memo.Custom, item.name, ""))
		assert.Equal(t, item.err, err, "%d: error", i)
	}
	assert.Equal(t, int64(1000000-37000-507000), m.balance("bob"), "failed purchases refunded")
}

func TestCustomPrice(t *testing.T) {
	tests := []struct {
		name  string
		price int64
		err   error
	}{
		{"abcdefgh.x", 37000, nil},
		{"abcdefg.x", 47000, nil},
		{"abcdefghij.z", 8000, nil},
		{"abcde.e", 57000, nil},
		{"abcd.x", 0, fault.InvalidSuffixLength},
		{"x", 0, fault.InvalidSuffix},
		{"abcdef", 0, fault.InvalidSuffix},
	}
	for i, item := range tests {
		price, _, err := market.CustomPrice(item.name)
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.Equal(t, item.price, price, "%d: price", i)
	}
}

func TestIssue(t *testing.T) {
	m := setupMarket(t, defaultConfiguration(), true)
	defer teardownMarket()

	const name = "newaccount12"

	_, err := m.pay("bob", 5000, purchase(memo.Issue, name, ""))
	assert.Equal(t, fault.WrongAmount, err, "wrong fee")
	assert.False(t, m.exists(name), "not created")

	receipt, err := m.pay("bob", market.IssueFee, purchase(memo.Issue, name, ""))
	assert.Nil(t, err, "issue")
	assert.Equal(t, memo.Issue, receipt.Code, "code")

	assert.True(t, m.exists(name), "created")
	assert.Equal(t, ledger.KeyAuthority(fixtures.BobOwnerKey), m.authority(name, ledger.Owner), "owner key")
	assert.Equal(t, ledger.KeyAuthority(fixtures.BobActiveKey), m.authority(name, ledger.Active), "active key")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	r := m.ledger.Resources(trx, name)
	trx.Abort()
	assert.Equal(t, int64(market.IssueRAM), r.RAM.Units, "ram")
	assert.Equal(t, int64(market.IssueNet), r.Net.Units, "net")
	assert.Equal(t, int64(market.IssueCpu), r.Cpu.Units, "cpu")

	assert.Equal(t, int64(0), m.balance(contract), "fee spent on resources")
	stats := m.stats(market.IssueStats)
	assert.Equal(t, uint64(1), stats.Purchased, "purchased")
	assert.Equal(t, eos(market.IssueFee), stats.Sales, "sales")

	_, err = m.pay("bob", market.IssueFee, purchase(memo.Issue, name, ""))
	assert.Equal(t, fault.AccountAlreadyExists, err, "existing name")
}

// a failed payout must undo the table changes made before it
func TestBuyRollback(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	if err := storage.InitialiseMemory(); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := ledger_mocks.NewMockLedger(ctl)
	l.EXPECT().Symbol().Return(currency.EOS).AnyTimes()
	l.EXPECT().Satisfies(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true).AnyTimes()
	l.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true).AnyTimes()
	l.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	l.EXPECT().InvalidateProposals(gomock.Any(), gomock.Any(), resource).Return(nil).Times(1)
	l.EXPECT().CustodyTransfer(gomock.Any(), gomock.Any(), resource, gomock.Any(), gomock.Any()).Return(nil).Times(1)

	n := &notices{}
	engine, err := market.New(logger.New(fixtures.LogCategory), defaultConfiguration(), marketHandles(), storage.NewDBTransaction, l, n)
	assert.Nil(t, err, "create")

	operator := ledger.Of(contract, ledger.Active)
	assert.Nil(t, engine.InitStats(operator), "initstats")
	assert.Nil(t, engine.Sell(ledger.Of(resource, ledger.Owner), &market.SellArguments{
		Resource: resource,
		Price:    eos(100000),
		Payout:   "alice",
	}), "sell")
	notified := n.count()

	gomock.InOrder(
		l.EXPECT().Transfer(gomock.Any(), gomock.Any(), "bob", contract, eos(100000), gomock.Any()).Return(nil),
		l.EXPECT().Transfer(gomock.Any(), gomock.Any(), contract, fees, eos(2000), gomock.Any()).Return(nil),
		l.EXPECT().Transfer(gomock.Any(), gomock.Any(), contract, "alice", eos(98000), gomock.Any()).Return(fault.InsufficientFunds),
	)

	_, err = engine.Pay(ledger.Of("bob", ledger.Active), &market.PaymentArguments{
		From:     "bob",
		To:       contract,
		Quantity: eos(100000),
		Memo:     purchase(memo.Standard, resource, ""),
	})
	assert.Equal(t, fault.InsufficientFunds, err, "payout failure")

	s, err := engine.Listing(resource)
	assert.Nil(t, err, "still listed")
	assert.Equal(t, eos(100000), s.Listing.Price, "listing intact")

	stats, err := engine.Stats()
	assert.Nil(t, err, "stats")
	assert.Equal(t, uint64(1), stats[market.GeneralStats].Listed, "listed unchanged")
	assert.Equal(t, uint64(0), stats[market.GeneralStats].Purchased, "purchased unchanged")
	assert.Equal(t, notified, n.count(), "no notice for failed purchase")
}
