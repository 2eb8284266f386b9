// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/market"
	"github.com/bitmark-inc/nameswapd/rpc/ratelimit"
	"github.com/bitmark-inc/nameswapd/storage"
)

const (
	rateLimitPayment = 100
	rateBurstPayment = 50
)

// Payment - type for RPC calls
type Payment struct {
	Log     *logger.L
	Limiter *rate.Limiter
	market  market.Market
	account string
	ledger  ledger.Ledger
	begin   func() (storage.Transaction, error)
}

// New - create the Payment service
//
// transfers to account are purchases handled by the market
func New(log *logger.L, m market.Market, account string, l ledger.Ledger, begin func() (storage.Transaction, error)) *Payment {
	return &Payment{
		Log:     log,
		Limiter: ratelimit.New(rateLimitPayment, rateBurstPayment),
		market:  m,
		account: account,
		ledger:  l,
		begin:   begin,
	}
}

// TransferArguments - a ledger transfer with memo
type TransferArguments struct {
	Auth     ledger.Authorization `json:"auth"`
	From     string               `json:"from"`
	To       string               `json:"to"`
	Quantity currency.Amount      `json:"quantity"`
	Memo     string               `json:"memo"`
}

// TransferReply - the purchase receipt, nil for a plain transfer
type TransferReply struct {
	Receipt *market.Receipt `json:"receipt,omitempty"`
}

// Transfer - move currency, a purchase when sent to the contract
func (pay *Payment) Transfer(arguments *TransferArguments, reply *TransferReply) error {
	if err := ratelimit.Limit(pay.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.From || "" == arguments.To {
		return fault.MissingParameters
	}

	pay.Log.Infof("Payment.Transfer: %s → %s  quantity: %s  memo: %q", arguments.From, arguments.To, arguments.Quantity, arguments.Memo)

	if arguments.To == pay.account {
		receipt, err := pay.market.Pay(arguments.Auth, &market.PaymentArguments{
			From:     arguments.From,
			To:       arguments.To,
			Quantity: arguments.Quantity,
			Memo:     arguments.Memo,
		})
		if nil != err {
			return err
		}
		reply.Receipt = receipt
		return nil
	}

	trx, err := pay.begin()
	if nil != err {
		return err
	}
	err = pay.ledger.Transfer(trx, arguments.Auth, arguments.From, arguments.To, arguments.Quantity, arguments.Memo)
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

// BalanceArguments - account to query
type BalanceArguments struct {
	Account string `json:"account"`
}

// BalanceReply - current balance
type BalanceReply struct {
	Account string          `json:"account"`
	Balance currency.Amount `json:"balance"`
}

// Balance - read an account's balance
func (pay *Payment) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(pay.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Account {
		return fault.MissingParameters
	}

	trx, err := pay.begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	if !pay.ledger.Exists(trx, arguments.Account) {
		return fault.AccountNotFound
	}
	reply.Account = arguments.Account
	reply.Balance = pay.ledger.Balance(trx, arguments.Account)
	return nil
}
