// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/record"
	"github.com/bitmark-inc/nameswapd/storage"
)

// ProposeBid - replace the current bid with a higher one
//
// the bid must not exceed the asking price and waits for a new
// decision by the payout account
func (e *Engine) ProposeBid(auth ledger.Authorization, arguments *BidArguments) error {
	return e.run("proposebid", func(trx storage.Transaction, notices *[]notice) error {
		if !e.ledger.Satisfies(trx, auth, arguments.Bidder, ledger.Active) {
			return fault.Unauthorized
		}
		s, err := e.sale(trx, arguments.Resource)
		if nil != err {
			return err
		}

		price := arguments.Price
		if price.Currency != e.ledger.Symbol() || !price.IsValid() {
			return fault.InvalidPrice
		}
		if price.Units < MinimumPrice || price.Units <= s.Bid.Price.Units {
			return fault.BidTooLow
		}
		if price.Units > s.Listing.Price.Units {
			return fault.BidTooHigh
		}

		s.Bid.Status = record.BidUndecided
		s.Bid.Price = price
		s.Bid.Bidder = arguments.Bidder
		if err := e.putSale(trx, s); nil != err {
			return err
		}

		e.log.Infof("proposebid: %s  bidder: %s  price: %s", s.Listing.Resource, arguments.Bidder, price)
		*notices = append(*notices, notice{
			recipient: s.Listing.Payout,
			message:   prefix + "Your account " + s.Listing.Resource + " has received a bid. If you choose to accept it, the bidder can purchase the account at the lower price. Others can still bid higher or pay the full sale price until then.",
		})
		return nil
	})
}

// DecideBid - the payout account accepts or rejects the current bid
func (e *Engine) DecideBid(auth ledger.Authorization, resource string, accept bool) error {
	return e.run("decidebid", func(trx storage.Transaction, notices *[]notice) error {
		s, err := e.sale(trx, resource)
		if nil != err {
			return err
		}
		if !e.ledger.Satisfies(trx, auth, s.Listing.Payout, ledger.Active) {
			return fault.Unauthorized
		}
		if s.Bid.Price.IsZero() {
			return fault.NoBid
		}

		message := ""
		if accept {
			s.Bid.Status = record.BidAccepted
			message = prefix + "Your bid for " + resource + " has been accepted. Account " + s.Bid.Bidder + " can buy it for the bid price. Be quick, as others can still outbid you or pay the full sale price."
		} else {
			s.Bid.Status = record.BidRejected
			message = prefix + "Your bid for " + resource + " has been rejected. Increase your bid offer"
		}
		if err := e.putSale(trx, s); nil != err {
			return err
		}

		e.log.Infof("decidebid: %s  bidder: %s  status: %s", resource, s.Bid.Bidder, s.Bid.Status)
		*notices = append(*notices, notice{
			recipient: s.Bid.Bidder,
			message:   message,
		})
		return nil
	})
}
