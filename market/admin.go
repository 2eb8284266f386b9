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

// operator actions all require the contract's own authority
func (e *Engine) operator(trx storage.Transaction, auth ledger.Authorization) error {
	if !e.ledger.Satisfies(trx, auth, e.conf.Account, ledger.Active) {
		return fault.Unauthorized
	}
	return nil
}

// Screen - record the operator's check of a listing
func (e *Engine) Screen(auth ledger.Authorization, resource string, screened record.Screening) error {
	return e.run("screener", func(trx storage.Transaction, notices *[]notice) error {
		if err := e.operator(trx, auth); nil != err {
			return err
		}
		if screened > record.Rejected {
			return fault.InvalidScreening
		}
		s, err := e.sale(trx, resource)
		if nil != err {
			return err
		}
		s.Extras.Screened = screened
		if err := e.putSale(trx, s); nil != err {
			return err
		}
		e.log.Infof("screener: %s  value: %d", resource, screened)
		return nil
	})
}

// RegisterReferrer - add a referral code paying to an account
func (e *Engine) RegisterReferrer(auth ledger.Authorization, name string, account string) error {
	return e.run("regref", func(trx storage.Transaction, notices *[]notice) error {
		if err := e.operator(trx, auth); nil != err {
			return err
		}
		if !ledger.ValidName(name) {
			return fault.InvalidResource
		}
		if !e.ledger.Exists(trx, account) {
			return fault.AccountNotFound
		}
		if trx.Has(e.handles.Referrers, []byte(name)) {
			return fault.ReferrerAlreadyExists
		}

		packed, err := (&record.Referrer{Name: name, Account: account}).Pack()
		if nil != err {
			return err
		}
		trx.Put(e.handles.Referrers, []byte(name), packed)
		e.log.Infof("regref: %s  account: %s", name, account)
		return nil
	})
}

// RegisterShop - create or replace a storefront description
func (e *Engine) RegisterShop(auth ledger.Authorization, shop *record.Shop) error {
	return e.run("regshop", func(trx storage.Transaction, notices *[]notice) error {
		if err := e.operator(trx, auth); nil != err {
			return err
		}
		if !ledger.ValidName(shop.Name) {
			return fault.InvalidResource
		}
		for _, payment := range shop.Payment {
			if "" != payment && !ledger.ValidName(payment) {
				return fault.InvalidPayee
			}
		}

		packed, err := shop.Pack()
		if nil != err {
			return err
		}
		trx.Put(e.handles.Shops, []byte(shop.Name), packed)
		e.log.Infof("regshop: %s", shop.Name)
		return nil
	})
}

// InitStats - create the zeroed statistics rows, existing rows are kept
func (e *Engine) InitStats(auth ledger.Authorization) error {
	return e.run("initstats", func(trx storage.Transaction, notices *[]notice) error {
		if err := e.operator(trx, auth); nil != err {
			return err
		}
		for i := uint64(0); i < statsCount; i += 1 {
			if e.hasStats(trx, i) {
				continue
			}
			stats := &record.Stats{
				Index: i,
				Sales: e.native(0),
				Fees:  e.native(0),
			}
			packed, err := stats.Pack()
			if nil != err {
				return err
			}
			trx.Put(e.handles.Stats, statsKey(i), packed)
		}
		e.log.Info("initstats: done")
		return nil
	})
}
