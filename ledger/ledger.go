// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/storage"
)

// Ledger - the host chain primitives used by the marketplace
//
// every call takes the open storage transaction so that its side
// effects commit or abort together with the marketplace tables
type Ledger interface {
	Symbol() currency.Currency
	Exists(trx storage.Transaction, account string) bool
	Satisfies(trx storage.Transaction, auth Authorization, account string, permission string) bool
	Balance(trx storage.Transaction, account string) currency.Amount
	Transfer(trx storage.Transaction, auth Authorization, from string, to string, amount currency.Amount, memo string) error
	InvalidateProposals(trx storage.Transaction, auth Authorization, account string) error
	CustodyTransfer(trx storage.Transaction, auth Authorization, account string, active Authority, owner Authority) error
	NewAccount(trx storage.Transaction, auth Authorization, creator string, name string, owner Authority, active Authority) error
	BuyRAM(trx storage.Transaction, auth Authorization, payer string, receiver string, amount currency.Amount) error
	Delegate(trx storage.Transaction, auth Authorization, from string, receiver string, net currency.Amount, cpu currency.Amount) error
	Undelegate(trx storage.Transaction, auth Authorization, from string, receiver string, net currency.Amount, cpu currency.Amount) error
	Notify(trx storage.Transaction, recipient string, message string) error
}

// EventLog - read access to recorded events
type EventLog interface {
	Events(start uint64, count int) ([]Event, error)
}

// EventKind - type of a ledger event
type EventKind string

// kinds of event recorded
const (
	EventTransfer   EventKind = "transfer"
	EventUpdateAuth EventKind = "updateauth"
	EventInvalidate EventKind = "invalidate"
	EventNewAccount EventKind = "newaccount"
	EventBuyRAM     EventKind = "buyram"
	EventDelegate   EventKind = "delegatebw"
	EventUndelegate EventKind = "undelegatebw"
	EventMessage    EventKind = "message"
)

// Event - one entry of the ledger's append only log
type Event struct {
	Sequence uint64    `json:"sequence"`
	Kind     EventKind `json:"kind"`
	Account  string    `json:"account"`
	Data     string    `json:"data"`
}

// Resources - staked capacity of an account
type Resources struct {
	RAM currency.Amount `json:"ram"`
	Net currency.Amount `json:"net"`
	Cpu currency.Amount `json:"cpu"`
}

// Delegation - bandwidth staked by one account for another
type Delegation struct {
	From     string          `json:"from"`
	Receiver string          `json:"receiver"`
	Net      currency.Amount `json:"net"`
	Cpu      currency.Amount `json:"cpu"`
}
