// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/fixtures"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/storage"
)

func eos(units int64) currency.Amount {
	return currency.New(units, currency.EOS)
}

func setupLedger(t *testing.T) (*ledger.Local, storage.Transaction) {
	fixtures.SetupTestLogger()
	if err := storage.InitialiseMemory(); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	l := ledger.NewLocal(logger.New(fixtures.LogCategory), currency.EOS, ledger.Handles{
		Balances:     storage.Pool.Balances,
		Permissions:  storage.Pool.Permissions,
		Resources:    storage.Pool.Resources,
		Delegations:  storage.Pool.Delegations,
		Invalidation: storage.Pool.Invalidation,
		Events:       storage.Pool.Events,
		Sequence:     storage.Pool.Sequence,
	})

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	for _, name := range []string{"alice", "bob", "nameswaps"} {
		err := l.CreateAccount(trx, name, ledger.KeyAuthority(fixtures.AliceOwnerKey), ledger.KeyAuthority(fixtures.AliceActiveKey))
		if nil != err {
			t.Fatalf("create account: %s  error: %s", name, err)
		}
	}
	if err := l.Credit(trx, "alice", eos(100000)); nil != err {
		t.Fatalf("credit error: %s", err)
	}
	return l, trx
}

func teardownLedger(trx storage.Transaction) {
	trx.Abort()
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func TestTransfer(t *testing.T) {
	l, trx := setupLedger(t)
	defer teardownLedger(trx)

	err := l.Transfer(trx, ledger.Of("alice", ledger.Active), "alice", "bob", eos(25000), "payment")
	assert.Nil(t, err, "transfer")
	assert.Equal(t, eos(75000), l.Balance(trx, "alice"), "sender balance")
	assert.Equal(t, eos(25000), l.Balance(trx, "bob"), "receiver balance")
}

func TestTransferErrors(t *testing.T) {
	l, trx := setupLedger(t)
	defer teardownLedger(trx)

	alice := ledger.Of("alice", ledger.Active)

	tests := []struct {
		auth   ledger.Authorization
		to     string
		amount currency.Amount
		err    error
	}{
		{ledger.Of("bob", ledger.Active), "bob", eos(1), fault.Unauthorized},
		{alice, "bob", currency.New(1, currency.Telos), fault.InvalidSymbol},
		{alice, "bob", eos(0), fault.InvalidAmount},
		{alice, "bob", eos(-5), fault.InvalidAmount},
		{alice, "alice", eos(1), fault.InvalidPayee},
		{alice, "nobody", eos(1), fault.AccountNotFound},
		{alice, "bob", eos(100001), fault.InsufficientFunds},
	}

	for i, item := range tests {
		err := l.Transfer(trx, item.auth, "alice", item.to, item.amount, "")
		assert.Equal(t, item.err, err, "%d: transfer error", i)
	}
	assert.Equal(t, eos(100000), l.Balance(trx, "alice"), "balance changed by failed transfers")
}

func TestCustodyTransferAndSatisfies(t *testing.T) {
	l, trx := setupLedger(t)
	defer teardownLedger(trx)

	owner := ledger.Of("alice", ledger.Owner)
	contract := ledger.Of("nameswaps", ledger.Owner)

	assert.True(t, l.Satisfies(trx, owner, "alice", ledger.Active), "owner satisfies active")
	assert.False(t, l.Satisfies(trx, ledger.Of("alice", ledger.Active), "alice", ledger.Owner), "active satisfies owner")
	assert.False(t, l.Satisfies(trx, contract, "alice", ledger.Owner), "contract before custody")

	err := l.CustodyTransfer(trx, contract, "alice", ledger.AccountAuthority("nameswaps", ledger.Active), ledger.AccountAuthority("nameswaps", ledger.Owner))
	assert.Equal(t, fault.Unauthorized, err, "custody without owner")

	err = l.CustodyTransfer(trx, owner, "alice", ledger.AccountAuthority("nameswaps", ledger.Active), ledger.AccountAuthority("nameswaps", ledger.Owner))
	assert.Nil(t, err, "custody to contract")

	assert.True(t, l.Satisfies(trx, contract, "alice", ledger.Owner), "contract after custody")
	assert.True(t, l.Satisfies(trx, ledger.Of("nameswaps", ledger.Active), "alice", ledger.Active), "contract active")
	assert.False(t, l.Satisfies(trx, owner, "alice", ledger.Owner), "previous owner still in control")

	err = l.CustodyTransfer(trx, contract, "alice", ledger.KeyAuthority(fixtures.BobActiveKey), ledger.KeyAuthority(fixtures.BobOwnerKey))
	assert.Nil(t, err, "custody to keys")

	a, err := l.Authority(trx, "alice", ledger.Owner)
	assert.Nil(t, err, "authority")
	assert.Equal(t, ledger.KeyAuthority(fixtures.BobOwnerKey), a, "owner authority")
	assert.False(t, l.Satisfies(trx, contract, "alice", ledger.Owner), "contract after release")

	err = l.CustodyTransfer(trx, owner, "alice", ledger.Authority{}, ledger.KeyAuthority(fixtures.BobOwnerKey))
	assert.Equal(t, fault.InvalidAuthority, err, "zero threshold")
}

func TestAuthorityDepthLimit(t *testing.T) {
	l, trx := setupLedger(t)
	defer teardownLedger(trx)

	// a chain of accounts each owned by the next, the last by a key
	names := []string{"b1", "b2", "b3", "b4", "b5", "c1"}
	for i, name := range names {
		owner := ledger.KeyAuthority(fixtures.CarlOwnerKey)
		if i+1 < len(names) {
			owner = ledger.AccountAuthority(names[i+1], ledger.Owner)
		}
		assert.True(t, ledger.ValidName(name), "name: %s", name)
		err := l.CreateAccount(trx, name, owner, owner)
		assert.Nil(t, err, "create: %s", name)
	}

	assert.True(t, l.Satisfies(trx, ledger.Of("c1", ledger.Owner), "b2", ledger.Owner), "within depth")
	assert.False(t, l.Satisfies(trx, ledger.Of("c1", ledger.Owner), "b1", ledger.Owner), "beyond depth")
	assert.False(t, l.Satisfies(trx, ledger.Of("b5", ledger.Owner), "b4", ledger.Owner), "level without keys")
}

func TestNewAccountAndResources(t *testing.T) {
	l, trx := setupLedger(t)
	defer teardownLedger(trx)

	alice := ledger.Of("alice", ledger.Active)

	err := l.NewAccount(trx, alice, "alice", "carl", ledger.KeyAuthority(fixtures.CarlOwnerKey), ledger.KeyAuthority(fixtures.CarlActiveKey))
	assert.Nil(t, err, "new account")
	assert.True(t, l.Exists(trx, "carl"), "account exists")

	err = l.NewAccount(trx, alice, "alice", "carl", ledger.KeyAuthority(fixtures.CarlOwnerKey), ledger.KeyAuthority(fixtures.CarlActiveKey))
	assert.Equal(t, fault.AccountAlreadyExists, err, "duplicate account")

	err = l.NewAccount(trx, alice, "alice", "Bad.Name", ledger.KeyAuthority(fixtures.CarlOwnerKey), ledger.KeyAuthority(fixtures.CarlActiveKey))
	assert.Equal(t, fault.InvalidResource, err, "invalid name")

	assert.Nil(t, l.BuyRAM(trx, alice, "alice", "carl", eos(2000)), "buy ram")
	assert.Nil(t, l.Delegate(trx, alice, "alice", "carl", eos(1000), eos(1000)), "delegate")

	r := l.Resources(trx, "carl")
	assert.Equal(t, eos(2000), r.RAM, "ram")
	assert.Equal(t, eos(1000), r.Net, "net")
	assert.Equal(t, eos(1000), r.Cpu, "cpu")
	assert.Equal(t, eos(96000), l.Balance(trx, "alice"), "balance after staking")

	err = l.Undelegate(trx, alice, "alice", "carl", eos(2000), eos(0))
	assert.Equal(t, fault.InsufficientDelegation, err, "over undelegate")

	err = l.Undelegate(trx, alice, "alice", "bob", eos(1), eos(0))
	assert.Equal(t, fault.DelegationNotFound, err, "no delegation")

	assert.Nil(t, l.Undelegate(trx, alice, "alice", "carl", eos(1000), eos(1000)), "undelegate")
	_, found := l.Delegation(trx, "alice", "carl")
	assert.False(t, found, "empty delegation kept")
	assert.Equal(t, eos(98000), l.Balance(trx, "alice"), "balance after undelegate")
}

func TestInvalidateAndEvents(t *testing.T) {
	l, trx := setupLedger(t)

	err := l.InvalidateProposals(trx, ledger.Of("alice", ledger.Active), "alice")
	assert.Equal(t, fault.Unauthorized, err, "invalidate with active")

	assert.Nil(t, l.InvalidateProposals(trx, ledger.Of("alice", ledger.Owner), "alice"), "invalidate")
	assert.Nil(t, l.Notify(trx, "bob", "hello bob"), "notify")
	assert.Nil(t, trx.Commit(), "commit")
	defer func() {
		storage.Finalise()
		fixtures.TeardownTestLogger()
	}()

	// three accounts created, then invalidate and message
	events, err := l.Events(3, 10)
	assert.Nil(t, err, "events")
	assert.Equal(t, 2, len(events), "event count")
	assert.Equal(t, ledger.EventInvalidate, events[0].Kind, "invalidate event")
	assert.Equal(t, ledger.Event{Sequence: 4, Kind: ledger.EventMessage, Account: "bob", Data: "hello bob"}, events[1], "message event")
}
