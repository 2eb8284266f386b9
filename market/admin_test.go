// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/market"
	"github.com/bitmark-inc/nameswapd/record"
)

func TestScreen(t *testing.T) {
	m := setupMarket(t, defaultConfiguration(), true)
	defer teardownMarket()

	operator := ledger.Of(contract, ledger.Active)

	assert.Equal(t, fault.NotListed, m.engine.Screen(operator, resource, record.Approved), "not listed")

	m.list()

	assert.Equal(t, fault.Unauthorized, m.engine.Screen(ledger.Of("alice", ledger.Active), resource, record.Approved), "not operator")
	assert.Equal(t, fault.InvalidScreening, m.engine.Screen(operator, resource, record.Screening(3)), "out of range")

	assert.Nil(t, m.engine.Screen(operator, resource, record.Approved), "approve")
	s, err := m.engine.Listing(resource)
	assert.Nil(t, err, "listing")
	assert.Equal(t, record.Approved, s.Extras.Screened, "screened")
}

func TestRegisterReferrer(t *testing.T) {
	m := setupMarket(t, defaultConfiguration(), true)
	defer teardownMarket()

	operator := ledger.Of(contract, ledger.Active)

	assert.Equal(t, fault.Unauthorized, m.engine.RegisterReferrer(ledger.Of("bob", ledger.Active), "friend", "bob"), "not operator")
	assert.Equal(t, fault.InvalidResource, m.engine.RegisterReferrer(operator, "Bad Name", "bob"), "bad name")
	assert.Equal(t, fault.AccountNotFound, m.engine.RegisterReferrer(operator, "friend", "nobody"), "missing account")

	assert.Nil(t, m.engine.RegisterReferrer(operator, "friend", "referral"), "register")
	assert.Equal(t, fault.ReferrerAlreadyExists, m.engine.RegisterReferrer(operator, "friend", "bob"), "duplicate")
	assert.Nil(t, m.engine.RegisterReferrer(operator, "another", "bob"), "second")

	referrers, err := m.engine.Referrers()
	assert.Nil(t, err, "referrers")
	assert.Equal(t, []record.Referrer{
		{Name: "another", Account: "bob"},
		{Name: "friend", Account: "referral"},
	}, referrers, "directory")
}

func TestRegisterShop(t *testing.T) {
	m := setupMarket(t, defaultConfiguration(), true)
	defer teardownMarket()

	operator := ledger.Of(contract, ledger.Active)
	shop := &record.Shop{
		Name:        "bobshop",
		Title:       "Bob's names",
		Description: "short names at fair prices",
		Payment:     [3]string{"bob", "", ""},
	}

	assert.Equal(t, fault.Unauthorized, m.engine.RegisterShop(ledger.Of("bob", ledger.Active), shop), "not operator")

	bad := *shop
	bad.Payment[1] = "NOT VALID"
	assert.Equal(t, fault.InvalidPayee, m.engine.RegisterShop(operator, &bad), "bad payee")

	assert.Nil(t, m.engine.RegisterShop(operator, shop), "register")

	updated := *shop
	updated.Title = "Bob's better names"
	assert.Nil(t, m.engine.RegisterShop(operator, &updated), "replace")

	shops, err := m.engine.Shops()
	assert.Nil(t, err, "shops")
	assert.Equal(t, []record.Shop{updated}, shops, "directory")
}

func TestInitStats(t *testing.T) {
	m := setupMarket(t, defaultConfiguration(), false)
	defer teardownMarket()

	stats, err := m.engine.Stats()
	assert.Nil(t, err, "stats")
	assert.Equal(t, 0, len(stats), "empty")

	assert.Equal(t, fault.Unauthorized, m.engine.InitStats(ledger.Of("alice", ledger.Owner)), "not operator")

	assert.Nil(t, m.engine.InitStats(ledger.Of(contract, ledger.Owner)), "initialise")
	m.list()

	// repeating keeps the existing values
	assert.Nil(t, m.engine.InitStats(ledger.Of(contract, ledger.Active)), "repeat")

	stats, err = m.engine.Stats()
	assert.Nil(t, err, "stats")
	assert.Equal(t, 6, len(stats), "rows")
	for i, s := range stats {
		assert.Equal(t, uint64(i), s.Index, "%d: index", i)
		assert.Equal(t, eos(0), s.Sales, "%d: sales", i)
	}
	assert.Equal(t, uint64(1), stats[market.GeneralStats].Listed, "listed kept")
}
