// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/memo"
	"github.com/bitmark-inc/nameswapd/record"
	"github.com/bitmark-inc/nameswapd/storage"
)

// Sell - hand custody of an account to the contract and list it
func (e *Engine) Sell(auth ledger.Authorization, arguments *SellArguments) error {
	return e.run("sell", func(trx storage.Transaction, notices *[]notice) error {
		resource := arguments.Resource

		// a listed account is held by the contract so this comes first
		if trx.Has(e.handles.Listings, []byte(resource)) {
			return fault.AlreadyListed
		}
		if resource == e.conf.Account || resource == e.conf.FeesAccount {
			return fault.InvalidResource
		}
		if !e.ledger.Satisfies(trx, auth, resource, ledger.Owner) {
			return fault.Unauthorized
		}
		if arguments.Payout == resource || !e.ledger.Exists(trx, arguments.Payout) {
			return fault.InvalidPayee
		}
		if err := e.checkPrice(arguments.Price); nil != err {
			return err
		}
		if err := checkMessage(arguments.Message); nil != err {
			return err
		}
		if !e.hasStats(trx, GeneralStats) {
			return fault.StatsNotInitialised
		}

		// stop any proposal signed by the seller from taking the account back
		if err := e.ledger.InvalidateProposals(trx, auth, resource); nil != err {
			return err
		}

		err := e.ledger.CustodyTransfer(trx, auth, resource,
			ledger.AccountAuthority(e.conf.Account, ledger.Active),
			ledger.AccountAuthority(e.conf.Account, ledger.Owner),
		)
		if nil != err {
			return err
		}

		s := &Sale{
			Listing: record.Listing{
				Resource: resource,
				Price:    arguments.Price,
				Payout:   arguments.Payout,
			},
			Extras: record.Extras{
				Resource: resource,
				Screened: record.NotScreened,
				Message:  arguments.Message,
			},
			Bid: record.Bid{
				Resource: resource,
				Status:   record.BidUndecided,
				Price:    e.native(0),
			},
		}
		if err := e.putSale(trx, s); nil != err {
			return err
		}

		err = e.updateStats(trx, GeneralStats, func(stats *record.Stats) error {
			stats.Listed += 1
			return nil
		})
		if nil != err {
			return err
		}

		e.log.Infof("sell: %s  price: %s  payout: %s", resource, arguments.Price, arguments.Payout)
		*notices = append(*notices, notice{
			recipient: arguments.Payout,
			message:   prefix + "Your account " + resource + " has been listed for sale. Keep an eye out for bids, and don't forget to vote for accounts you like!",
		})
		return nil
	})
}

// Cancel - withdraw a listing and return custody to the payout account
//
// a key of "None" gives that permission to the payout account instead
func (e *Engine) Cancel(auth ledger.Authorization, arguments *CancelArguments) error {
	return e.run("cancel", func(trx storage.Transaction, notices *[]notice) error {
		s, err := e.sale(trx, arguments.Resource)
		if nil != err {
			return err
		}
		payout := s.Listing.Payout

		if !e.ledger.Satisfies(trx, auth, payout, ledger.Active) && !e.ledger.Satisfies(trx, auth, e.conf.Account, ledger.Active) {
			return fault.Unauthorized
		}
		for _, key := range []string{arguments.OwnerKey, arguments.ActiveKey} {
			if ledger.NoKey == key {
				continue
			}
			if err := memo.ValidateKey(key); nil != err {
				return err
			}
		}

		err = e.ledger.CustodyTransfer(trx, e.self, s.Listing.Resource,
			ledger.KeyOrAccount(arguments.ActiveKey, payout, ledger.Active),
			ledger.KeyOrAccount(arguments.OwnerKey, payout, ledger.Owner),
		)
		if nil != err {
			return err
		}

		e.deleteSale(trx, s.Listing.Resource)
		err = e.updateStats(trx, GeneralStats, func(stats *record.Stats) error {
			if stats.Listed > 0 {
				stats.Listed -= 1
			}
			return nil
		})
		if nil != err {
			return err
		}

		e.log.Infof("cancel: %s  payout: %s", s.Listing.Resource, payout)
		*notices = append(*notices, notice{
			recipient: payout,
			message:   prefix + "You have successfully cancelled the sale of the account " + s.Listing.Resource + ". Please come again.",
		})
		return nil
	})
}

// Remove - operator deletes a listing without changing custody
func (e *Engine) Remove(auth ledger.Authorization, resource string) error {
	return e.run("remove", func(trx storage.Transaction, notices *[]notice) error {
		if !e.ledger.Satisfies(trx, auth, e.conf.Account, ledger.Active) {
			return fault.Unauthorized
		}
		if !trx.Has(e.handles.Listings, []byte(resource)) {
			return fault.NotListed
		}

		e.deleteSale(trx, resource)
		err := e.updateStats(trx, GeneralStats, func(stats *record.Stats) error {
			if stats.Listed > 0 {
				stats.Listed -= 1
			}
			return nil
		})
		if nil != err {
			return err
		}

		e.log.Warnf("remove: %s", resource)
		return nil
	})
}

// Update - change the asking price and message
//
// lowering the price below the current bid discards that bid
func (e *Engine) Update(auth ledger.Authorization, arguments *UpdateArguments) error {
	return e.run("update", func(trx storage.Transaction, notices *[]notice) error {
		s, err := e.sale(trx, arguments.Resource)
		if nil != err {
			return err
		}
		if !e.ledger.Satisfies(trx, auth, s.Listing.Payout, ledger.Active) {
			return fault.Unauthorized
		}
		if err := e.checkPrice(arguments.Price); nil != err {
			return err
		}
		if err := checkMessage(arguments.Message); nil != err {
			return err
		}

		s.Listing.Price = arguments.Price
		s.Extras.Message = arguments.Message

		// a bid must never exceed the asking price
		if s.Bid.Price.Units > arguments.Price.Units {
			s.Bid.Status = record.BidUndecided
			s.Bid.Price = e.native(0)
			s.Bid.Bidder = ""
		}
		if err := e.putSale(trx, s); nil != err {
			return err
		}

		e.log.Infof("update: %s  price: %s", s.Listing.Resource, arguments.Price)
		*notices = append(*notices, notice{
			recipient: s.Listing.Payout,
			message:   prefix + "You have successfully updated the sale of the account " + s.Listing.Resource,
		})
		return nil
	})
}

// Vote - add one vote to a listing
func (e *Engine) Vote(auth ledger.Authorization, resource string, voter string) error {
	return e.run("vote", func(trx storage.Transaction, notices *[]notice) error {
		if !e.ledger.Satisfies(trx, auth, voter, ledger.Active) {
			return fault.Unauthorized
		}
		s, err := e.sale(trx, resource)
		if nil != err {
			return err
		}
		if s.Extras.LastVoter == voter {
			return fault.AlreadyVoted
		}

		s.Extras.Votes += 1
		s.Extras.LastVoter = voter
		if err := e.putSale(trx, s); nil != err {
			return err
		}

		e.log.Debugf("vote: %s  voter: %s  votes: %d", resource, voter, s.Extras.Votes)
		return nil
	})
}
