// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/memo"
	"github.com/bitmark-inc/nameswapd/record"
	"github.com/bitmark-inc/nameswapd/storage"
)

// Receipt - outcome of a payment to the contract
type Receipt struct {
	Ignored     bool            `json:"ignored,omitempty"`
	Code        memo.Code       `json:"code,omitempty"`
	Resource    string          `json:"resource,omitempty"`
	Buyer       string          `json:"buyer,omitempty"`
	Price       currency.Amount `json:"price"`
	SellerFee   currency.Amount `json:"sellerFee"`
	ContractFee currency.Amount `json:"contractFee"`
	ReferrerFee currency.Amount `json:"referrerFee"`
	Referrer    string          `json:"referrer,omitempty"`
	Payee       string          `json:"payee,omitempty"`
}

// Pay - transfer currency to the contract and act on the memo
//
// payments sent by the contract are not purchases and are ignored
func (e *Engine) Pay(auth ledger.Authorization, arguments *PaymentArguments) (*Receipt, error) {
	if arguments.From == e.conf.Account {
		e.log.Debugf("pay: ignore outgoing payment to: %s", arguments.To)
		return &Receipt{Ignored: true}, nil
	}
	if arguments.To != e.conf.Account {
		return nil, fault.NotDirectToContract
	}

	var receipt *Receipt
	err := e.run("pay", func(trx storage.Transaction, notices *[]notice) error {
		quantity := arguments.Quantity
		if quantity.Currency != e.ledger.Symbol() {
			return fault.InvalidSymbol
		}
		if !quantity.IsValid() || quantity.Units <= 0 {
			return fault.InvalidAmount
		}

		order, err := memo.Parse(arguments.Memo)
		if nil != err {
			return err
		}

		err = e.ledger.Transfer(trx, auth, arguments.From, e.conf.Account, quantity, arguments.Memo)
		if nil != err {
			return err
		}

		switch order.Code {
		case memo.Standard:
			receipt, err = e.buyListed(trx, notices, arguments.From, quantity, order)
		case memo.Custom:
			receipt, err = e.buyCustom(trx, arguments.From, quantity, order)
		case memo.Issue:
			receipt, err = e.issue(trx, arguments.From, quantity, order)
		default:
			err = fault.MalformedMemo
		}
		return err
	})
	if nil != err {
		return nil, err
	}
	return receipt, nil
}

// purchase of a listed account at the asking price or an accepted bid
func (e *Engine) buyListed(trx storage.Transaction, notices *[]notice, buyer string, quantity currency.Amount, order *memo.Order) (*Receipt, error) {
	s, err := e.sale(trx, order.Resource)
	if nil != err {
		return nil, err
	}

	if e.conf.RequireScreening {
		switch s.Extras.Screened {
		case record.Approved:
		case record.Rejected:
			return nil, fault.ScreeningRejected
		default:
			return nil, fault.NotScreened
		}
	}

	effective := s.Listing.Price
	if 0 != quantity.Cmp(effective) {
		if 0 != quantity.Cmp(s.Bid.Price) {
			return nil, fault.WrongAmount
		}
		if record.BidAccepted != s.Bid.Status {
			return nil, fault.BidNotAccepted
		}
		if buyer != s.Bid.Bidder {
			return nil, fault.NotAcceptedBidder
		}
		effective = s.Bid.Price
	}

	contractFee := effective.Fraction(e.conf.ContractFee)
	sellerFee, err := effective.Sub(contractFee)
	if nil != err {
		return nil, err
	}

	receipt := &Receipt{
		Code:        memo.Standard,
		Resource:    s.Listing.Resource,
		Buyer:       buyer,
		Price:       effective,
		SellerFee:   sellerFee,
		ContractFee: contractFee,
		ReferrerFee: e.native(0),
	}

	if "" != order.Referrer {
		if packed := trx.Get(e.handles.Referrers, []byte(order.Referrer)); nil != packed {
			referrer := record.Referrer{}
			unpackInto(packed, &referrer, order.Referrer)

			receipt.Referrer = referrer.Name
			receipt.ReferrerFee = contractFee.Fraction(e.conf.ReferrerFee)
			receipt.ContractFee, err = contractFee.Sub(receipt.ReferrerFee)
			if nil != err {
				return nil, err
			}
			err = e.payOut(trx, referrer.Account, receipt.ReferrerFee, "Account referrer fee: "+s.Listing.Resource)
			if nil != err {
				return nil, err
			}
		}
	}

	if err := e.payOut(trx, e.conf.FeesAccount, receipt.ContractFee, "Account contract fee: "+s.Listing.Resource); nil != err {
		return nil, err
	}
	if err := e.payOut(trx, s.Listing.Payout, receipt.SellerFee, "Account seller fee: "+s.Listing.Resource); nil != err {
		return nil, err
	}

	err = e.ledger.CustodyTransfer(trx, e.self, s.Listing.Resource,
		ledger.KeyOrAccount(order.ActiveKey, buyer, ledger.Active),
		ledger.KeyOrAccount(order.OwnerKey, buyer, ledger.Owner),
	)
	if nil != err {
		return nil, err
	}

	e.deleteSale(trx, s.Listing.Resource)
	err = e.updateStats(trx, GeneralStats, func(stats *record.Stats) error {
		if stats.Listed > 0 {
			stats.Listed -= 1
		}
		stats.Purchased += 1
		sales, err := stats.Sales.Add(effective)
		if nil != err {
			return err
		}
		fees, err := stats.Fees.Add(receipt.ContractFee)
		if nil != err {
			return err
		}
		stats.Sales = sales
		stats.Fees = fees
		return nil
	})
	if nil != err {
		return nil, err
	}

	e.log.Infof("buy: %s  buyer: %s  price: %s  seller: %s  contract: %s  referrer: %s",
		s.Listing.Resource, buyer, effective, receipt.SellerFee, receipt.ContractFee, receipt.ReferrerFee)
	*notices = append(*notices, notice{
		recipient: buyer,
		message:   prefix + "You have successfully bought the account " + s.Listing.Resource + ". Please come again.",
	})
	return receipt, nil
}

// special category name, the whole payment goes to the suffix owner
func (e *Engine) buyCustom(trx storage.Transaction, buyer string, quantity currency.Amount, order *memo.Order) (*Receipt, error) {
	units, suffix, err := CustomPrice(order.Resource)
	if nil != err {
		return nil, err
	}
	category, err := e.category(suffix)
	if nil != err {
		return nil, err
	}
	price := e.native(units)
	if 0 != quantity.Cmp(price) {
		return nil, fault.WrongAmount
	}

	err = e.updateStats(trx, customStats[suffix], func(stats *record.Stats) error {
		stats.Purchased += 1
		sales, err := stats.Sales.Add(price)
		stats.Sales = sales
		return err
	})
	if nil != err {
		return nil, err
	}

	err = e.ledger.Transfer(trx, e.self, e.conf.Account, category.Payee, price, category.memo(order.Resource, order.OwnerKey))
	if nil != err {
		return nil, err
	}

	e.log.Infof("custom: %s  buyer: %s  price: %s  payee: %s", order.Resource, buyer, price, category.Payee)
	return &Receipt{
		Code:        memo.Custom,
		Resource:    order.Resource,
		Buyer:       buyer,
		Price:       price,
		SellerFee:   price,
		ContractFee: e.native(0),
		ReferrerFee: e.native(0),
		Payee:       category.Payee,
	}, nil
}

// create a new account owned by the supplied keys
func (e *Engine) issue(trx storage.Transaction, buyer string, quantity currency.Amount, order *memo.Order) (*Receipt, error) {
	fee := e.native(IssueFee)
	if 0 != quantity.Cmp(fee) {
		return nil, fault.WrongAmount
	}

	err := e.ledger.NewAccount(trx, e.self, e.conf.Account, order.Resource,
		ledger.KeyAuthority(order.OwnerKey),
		ledger.KeyAuthority(order.ActiveKey),
	)
	if nil != err {
		return nil, err
	}
	if err := e.ledger.BuyRAM(trx, e.self, e.conf.Account, order.Resource, e.native(IssueRAM)); nil != err {
		return nil, err
	}
	if err := e.ledger.Delegate(trx, e.self, e.conf.Account, order.Resource, e.native(IssueNet), e.native(IssueCpu)); nil != err {
		return nil, err
	}

	err = e.updateStats(trx, IssueStats, func(stats *record.Stats) error {
		stats.Purchased += 1
		sales, err := stats.Sales.Add(fee)
		stats.Sales = sales
		return err
	})
	if nil != err {
		return nil, err
	}

	e.log.Infof("issue: %s  buyer: %s", order.Resource, buyer)
	return &Receipt{
		Code:        memo.Issue,
		Resource:    order.Resource,
		Buyer:       buyer,
		Price:       fee,
		SellerFee:   e.native(0),
		ContractFee: fee,
		ReferrerFee: e.native(0),
	}, nil
}

// transfer from the contract, zero amounts are skipped
func (e *Engine) payOut(trx storage.Transaction, to string, amount currency.Amount, memo string) error {
	if amount.IsZero() {
		return nil
	}
	return e.ledger.Transfer(trx, e.self, e.conf.Account, to, amount, prefix+memo)
}
