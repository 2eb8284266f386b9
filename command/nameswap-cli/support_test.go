// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nameswapd/fixtures"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/memo"
	"github.com/bitmark-inc/nameswapd/record"
)

func TestParseAuthorization(t *testing.T) {
	auth, err := parseAuthorization([]string{"alice", "bob@owner, carl@active"})
	assert.Nil(t, err, "wrong parse")
	assert.Equal(t, ledger.Authorization{
		{Actor: "alice", Permission: ledger.Active},
		{Actor: "bob", Permission: ledger.Owner},
		{Actor: "carl", Permission: ledger.Active},
	}, auth, "wrong authorization")

	m := &metadata{auth: auth}
	assert.Equal(t, "alice", m.actor(), "wrong default actor")
	assert.Nil(t, m.requireAuth(), "authorization not seen")

	_, err = parseAuthorization([]string{"Alice@active"})
	assert.NotNil(t, err, "invalid actor accepted")

	auth, err = parseAuthorization(nil)
	assert.Nil(t, err, "wrong empty parse")
	m = &metadata{auth: auth}
	assert.Equal(t, "", m.actor(), "actor without authorization")
	assert.NotNil(t, m.requireAuth(), "missing authorization accepted")
}

func TestMakeMemo(t *testing.T) {
	s, err := makeMemo("sp", "tradename", fixtures.AliceOwnerKey, fixtures.AliceActiveKey, "")
	assert.Nil(t, err, "wrong memo")
	assert.Equal(t, "sp:tradename,"+fixtures.AliceOwnerKey+","+fixtures.AliceActiveKey, s, "wrong memo text")

	s, err = makeMemo("cn:", "bob.x", fixtures.BobOwnerKey, fixtures.BobActiveKey, "shop")
	assert.Nil(t, err, "wrong custom memo")
	order, err := memo.Parse(s)
	assert.Nil(t, err, "memo does not parse")
	assert.Equal(t, memo.Custom, order.Code, "wrong code")
	assert.Equal(t, "shop", order.Referrer, "wrong referrer")

	_, err = makeMemo("xx", "tradename", fixtures.AliceOwnerKey, fixtures.AliceActiveKey, "")
	assert.NotNil(t, err, "invalid code accepted")

	_, err = makeMemo("mk", "tradename", "EOSjunk", fixtures.AliceActiveKey, "")
	assert.NotNil(t, err, "invalid key accepted")
}

func TestParseScreening(t *testing.T) {
	items := []struct {
		text     string
		expected record.Screening
	}{
		{"approved", record.Approved},
		{"1", record.Approved},
		{"REJECT", record.Rejected},
		{"none", record.NotScreened},
	}
	for i, item := range items {
		actual, err := parseScreening(item.text)
		assert.Nil(t, err, "%d: wrong parse of: %q", i, item.text)
		assert.Equal(t, item.expected, actual, "%d: wrong value for: %q", i, item.text)
	}

	_, err := parseScreening("3")
	assert.NotNil(t, err, "out of range screening accepted")
}
