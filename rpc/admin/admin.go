// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/loan"
	"github.com/bitmark-inc/nameswapd/market"
	"github.com/bitmark-inc/nameswapd/record"
	"github.com/bitmark-inc/nameswapd/rpc/ratelimit"
)

const (
	rateLimitAdmin = 20
	rateBurstAdmin = 10
)

// Admin - type for operator RPC calls
//
// every call needs the contract's authority, checked by the market
// or the lender
type Admin struct {
	Log     *logger.L
	Limiter *rate.Limiter
	market  market.Market
	loans   loan.Loans
}

// New - create the Admin service
func New(log *logger.L, m market.Market, loans loan.Loans) *Admin {
	return &Admin{
		Log:     log,
		Limiter: ratelimit.New(rateLimitAdmin, rateBurstAdmin),
		market:  m,
		loans:   loans,
	}
}

// Reply - result of an operator call
type Reply struct {
	Status string `json:"status"`
}

const statusOK = "ok"

// ---

// ScreenArguments - record the screening of a listing
type ScreenArguments struct {
	Auth     ledger.Authorization `json:"auth"`
	Resource string               `json:"resource"`
	Screened record.Screening     `json:"screened"`
}

// Screen - set the screening state of a listing
func (a *Admin) Screen(arguments *ScreenArguments, reply *Reply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Resource {
		return fault.MissingParameters
	}

	a.Log.Infof("Admin.Screen: %s  screened: %d", arguments.Resource, arguments.Screened)

	if err := a.market.Screen(arguments.Auth, arguments.Resource, arguments.Screened); nil != err {
		return err
	}
	reply.Status = statusOK
	return nil
}

// RemoveArguments - a listing to delete
type RemoveArguments struct {
	Auth     ledger.Authorization `json:"auth"`
	Resource string               `json:"resource"`
}

// Remove - delete a listing without returning custody
func (a *Admin) Remove(arguments *RemoveArguments, reply *Reply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Resource {
		return fault.MissingParameters
	}

	a.Log.Warnf("Admin.Remove: %s", arguments.Resource)

	if err := a.market.Remove(arguments.Auth, arguments.Resource); nil != err {
		return err
	}
	reply.Status = statusOK
	return nil
}

// ReferrerArguments - a referral code and its payout account
type ReferrerArguments struct {
	Auth    ledger.Authorization `json:"auth"`
	Name    string               `json:"name"`
	Account string               `json:"account"`
}

// RegisterReferrer - add a referral code
func (a *Admin) RegisterReferrer(arguments *ReferrerArguments, reply *Reply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Name || "" == arguments.Account {
		return fault.MissingParameters
	}

	if err := a.market.RegisterReferrer(arguments.Auth, arguments.Name, arguments.Account); nil != err {
		return err
	}
	reply.Status = statusOK
	return nil
}

// ShopArguments - storefront details
type ShopArguments struct {
	Auth ledger.Authorization `json:"auth"`
	Shop record.Shop          `json:"shop"`
}

// RegisterShop - add or replace a storefront
func (a *Admin) RegisterShop(arguments *ShopArguments, reply *Reply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Shop.Name {
		return fault.MissingParameters
	}

	shop := arguments.Shop
	if err := a.market.RegisterShop(arguments.Auth, &shop); nil != err {
		return err
	}
	reply.Status = statusOK
	return nil
}

// InitStatsArguments - operator authority only
type InitStatsArguments struct {
	Auth ledger.Authorization `json:"auth"`
}

// InitStats - create any missing statistics rows
func (a *Admin) InitStats(arguments *InitStatsArguments, reply *Reply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	if err := a.market.InitStats(arguments.Auth); nil != err {
		return err
	}
	reply.Status = statusOK
	return nil
}

// ---

// LendArguments - bandwidth to lend
type LendArguments struct {
	Auth     ledger.Authorization `json:"auth"`
	Receiver string               `json:"receiver"`
	Net      currency.Amount      `json:"net"`
	Cpu      currency.Amount      `json:"cpu"`
}

// LoanReply - the current loan of a receiver
type LoanReply struct {
	Loan *record.Loan `json:"loan"`
}

// Lend - delegate bandwidth for the loan period
func (a *Admin) Lend(arguments *LendArguments, reply *LoanReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Receiver {
		return fault.MissingParameters
	}

	a.Log.Infof("Admin.Lend: %s  net: %s  cpu: %s", arguments.Receiver, arguments.Net, arguments.Cpu)

	l, err := a.loans.Lend(arguments.Auth, arguments.Receiver, arguments.Net, arguments.Cpu)
	if nil != err {
		return err
	}
	reply.Loan = l
	return nil
}

// RecallArguments - loan to end early
type RecallArguments struct {
	Auth     ledger.Authorization `json:"auth"`
	Receiver string               `json:"receiver"`
}

// Recall - end a loan now and cancel its scheduled unwind
func (a *Admin) Recall(arguments *RecallArguments, reply *Reply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Receiver {
		return fault.MissingParameters
	}

	a.Log.Infof("Admin.Recall: %s", arguments.Receiver)

	if err := a.loans.Recall(arguments.Auth, arguments.Receiver); nil != err {
		return err
	}
	reply.Status = statusOK
	return nil
}

// LoanArguments - receiver to query
type LoanArguments struct {
	Receiver string `json:"receiver"`
}

// Loan - most recent loan to a receiver
func (a *Admin) Loan(arguments *LoanArguments, reply *LoanReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Receiver {
		return fault.MissingParameters
	}

	l, err := a.loans.History(arguments.Receiver)
	if nil != err {
		return err
	}
	reply.Loan = l
	return nil
}
