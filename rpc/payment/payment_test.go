// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/fixtures"
	"github.com/bitmark-inc/nameswapd/ledger"
	ledgermocks "github.com/bitmark-inc/nameswapd/ledger/mocks"
	"github.com/bitmark-inc/nameswapd/market"
	marketmocks "github.com/bitmark-inc/nameswapd/market/mocks"
	"github.com/bitmark-inc/nameswapd/rpc/payment"
	"github.com/bitmark-inc/nameswapd/storage"
	storagemocks "github.com/bitmark-inc/nameswapd/storage/mocks"
)

const contract = "nameswaps"

type testData struct {
	ctl    *gomock.Controller
	market *marketmocks.MockMarket
	ledger *ledgermocks.MockLedger
	trx    *storagemocks.MockTransaction
	pay    *payment.Payment
}

func setup(t *testing.T) *testData {
	fixtures.SetupTestLogger()
	ctl := gomock.NewController(t)
	d := &testData{
		ctl:    ctl,
		market: marketmocks.NewMockMarket(ctl),
		ledger: ledgermocks.NewMockLedger(ctl),
		trx:    storagemocks.NewMockTransaction(ctl),
	}
	begin := func() (storage.Transaction, error) {
		return d.trx, nil
	}
	d.pay = payment.New(logger.New(fixtures.LogCategory), d.market, contract, d.ledger, begin)
	return d
}

func (d *testData) teardown() {
	d.ctl.Finish()
	fixtures.TeardownTestLogger()
}

func TestTransferToContract(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	carl := ledger.Of("carl", ledger.Active)
	quantity := currency.New(60000, currency.EOS)
	memoText := "sp:tradename," + fixtures.CarlOwnerKey + "," + fixtures.CarlActiveKey
	receipt := &market.Receipt{Resource: "tradename", Buyer: "carl", Price: quantity}

	d.market.EXPECT().Pay(carl, &market.PaymentArguments{
		From:     "carl",
		To:       contract,
		Quantity: quantity,
		Memo:     memoText,
	}).Return(receipt, nil).Times(1)

	var reply payment.TransferReply
	err := d.pay.Transfer(&payment.TransferArguments{
		Auth:     carl,
		From:     "carl",
		To:       contract,
		Quantity: quantity,
		Memo:     memoText,
	}, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, receipt, reply.Receipt, "wrong receipt")
}

func TestTransferToContractRejected(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	d.market.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(nil, fault.NotAcceptedBidder).Times(1)

	var reply payment.TransferReply
	err := d.pay.Transfer(&payment.TransferArguments{
		From:     "bob",
		To:       contract,
		Quantity: currency.New(60000, currency.EOS),
		Memo:     "sp:tradename," + fixtures.BobOwnerKey + "," + fixtures.BobActiveKey,
	}, &reply)
	assert.Equal(t, fault.NotAcceptedBidder, err, "wrong error")
	assert.Nil(t, reply.Receipt, "receipt on error")
}

func TestTransferPlain(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	bob := ledger.Of("bob", ledger.Active)
	quantity := currency.New(5000, currency.EOS)

	gomock.InOrder(
		d.ledger.EXPECT().Transfer(d.trx, bob, "bob", "carl", quantity, "lunch").Return(nil),
		d.trx.EXPECT().Commit().Return(nil),
	)

	var reply payment.TransferReply
	err := d.pay.Transfer(&payment.TransferArguments{
		Auth:     bob,
		From:     "bob",
		To:       "carl",
		Quantity: quantity,
		Memo:     "lunch",
	}, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Nil(t, reply.Receipt, "receipt for plain transfer")
}

func TestTransferPlainFails(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	gomock.InOrder(
		d.ledger.EXPECT().Transfer(d.trx, gomock.Any(), "bob", "carl", gomock.Any(), "").Return(fault.InsufficientFunds),
		d.trx.EXPECT().Abort(),
	)

	err := d.pay.Transfer(&payment.TransferArguments{
		From:     "bob",
		To:       "carl",
		Quantity: currency.New(5000, currency.EOS),
	}, &payment.TransferReply{})
	assert.Equal(t, fault.InsufficientFunds, err, "wrong error")
}

func TestTransferMissing(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	err := d.pay.Transfer(&payment.TransferArguments{From: "bob"}, &payment.TransferReply{})
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestBalance(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	balance := currency.New(1000000, currency.EOS)
	d.ledger.EXPECT().Exists(d.trx, "bob").Return(true)
	d.ledger.EXPECT().Balance(d.trx, "bob").Return(balance)
	d.ledger.EXPECT().Exists(d.trx, "nobody").Return(false)
	d.trx.EXPECT().Abort().Times(2)

	var reply payment.BalanceReply
	err := d.pay.Balance(&payment.BalanceArguments{Account: "bob"}, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, balance, reply.Balance, "wrong balance")

	err = d.pay.Balance(&payment.BalanceArguments{Account: "nobody"}, &reply)
	assert.Equal(t, fault.AccountNotFound, err, "wrong error")
}
