// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/record"
	"github.com/bitmark-inc/nameswapd/storage"
)

// limits
const (
	MinimumPrice     = 10000 // 1.0000 in native units
	MaxMessageLength = 100
	prefix           = "NameSwaps: "
)

// stats table indexes
const (
	GeneralStats = 0
	IssueStats   = 5
	statsCount   = 6
)

// NotifyCommand - message bus command for user notifications
const NotifyCommand = "message"

// Market - operations of the marketplace
type Market interface {
	Sell(auth ledger.Authorization, arguments *SellArguments) error
	Cancel(auth ledger.Authorization, arguments *CancelArguments) error
	Remove(auth ledger.Authorization, resource string) error
	Update(auth ledger.Authorization, arguments *UpdateArguments) error
	Vote(auth ledger.Authorization, resource string, voter string) error
	ProposeBid(auth ledger.Authorization, arguments *BidArguments) error
	DecideBid(auth ledger.Authorization, resource string, accept bool) error
	Pay(auth ledger.Authorization, arguments *PaymentArguments) (*Receipt, error)
	Screen(auth ledger.Authorization, resource string, screened record.Screening) error
	RegisterReferrer(auth ledger.Authorization, name string, account string) error
	RegisterShop(auth ledger.Authorization, shop *record.Shop) error
	InitStats(auth ledger.Authorization) error

	Listing(resource string) (*Sale, error)
	Listings(start string, count int) ([]Sale, error)
	Stats() ([]record.Stats, error)
	Referrers() ([]record.Referrer, error)
	Shops() ([]record.Shop, error)
}

// Notifier - delivery of messages once an operation has committed
type Notifier interface {
	Send(command string, parameters ...[]byte)
}

// Handles - the storage pools used by the marketplace
type Handles struct {
	Listings  storage.Handle
	Extras    storage.Handle
	Bids      storage.Handle
	Stats     storage.Handle
	Referrers storage.Handle
	Shops     storage.Handle
}

// SellArguments - list an account for sale
type SellArguments struct {
	Resource string          `json:"resource"`
	Price    currency.Amount `json:"price"`
	Payout   string          `json:"payout"`
	Message  string          `json:"message"`
}

// CancelArguments - withdraw a listing, custody goes to the given keys
type CancelArguments struct {
	Resource  string `json:"resource"`
	OwnerKey  string `json:"ownerKey"`
	ActiveKey string `json:"activeKey"`
}

// UpdateArguments - change price and message of a listing
type UpdateArguments struct {
	Resource string          `json:"resource"`
	Price    currency.Amount `json:"price"`
	Message  string          `json:"message"`
}

// BidArguments - offer a lower price to the seller
type BidArguments struct {
	Resource string          `json:"resource"`
	Price    currency.Amount `json:"price"`
	Bidder   string          `json:"bidder"`
}

// PaymentArguments - a transfer to the contract carrying a purchase memo
type PaymentArguments struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	Quantity currency.Amount `json:"quantity"`
	Memo     string          `json:"memo"`
}

// Sale - the three rows of a listing
type Sale struct {
	Listing record.Listing `json:"listing"`
	Extras  record.Extras  `json:"extras"`
	Bid     record.Bid     `json:"bid"`
}

// Engine - marketplace state machine over storage and a ledger
type Engine struct {
	log     *logger.L
	conf    Configuration
	handles Handles
	begin   func() (storage.Transaction, error)
	ledger  ledger.Ledger
	notify  Notifier
	self    ledger.Authorization
}

// notices are only delivered after commit
type notice struct {
	recipient string
	message   string
}

// New - create a marketplace engine
//
// begin opens the exclusive storage transaction for one operation
func New(log *logger.L, conf Configuration, handles Handles, begin func() (storage.Transaction, error), l ledger.Ledger, notify Notifier) (*Engine, error) {
	if nil == log {
		logger.Panic("market: nil logger")
	}
	if err := conf.Validate(); nil != err {
		return nil, err
	}
	return &Engine{
		log:     log,
		conf:    conf,
		handles: handles,
		begin:   begin,
		ledger:  l,
		notify:  notify,
		self:    ledger.Of(conf.Account, ledger.Owner),
	}, nil
}

// Account - the contract account holding listed resources
func (e *Engine) Account() string {
	return e.conf.Account
}

// run one operation as a single atomic unit
func (e *Engine) run(operation string, f func(trx storage.Transaction, notices *[]notice) error) error {
	trx, err := e.begin()
	if nil != err {
		e.log.Errorf("%s: begin error: %s", operation, err)
		return err
	}

	notices := make([]notice, 0, 2)
	err = f(trx, &notices)
	if nil != err {
		trx.Abort()
		e.log.Infof("%s: rejected: %s", operation, err)
		return err
	}

	for _, n := range notices {
		if err := e.ledger.Notify(trx, n.recipient, n.message); nil != err {
			trx.Abort()
			e.log.Errorf("%s: notify: %s  error: %s", operation, n.recipient, err)
			return err
		}
	}

	if err := trx.Commit(); nil != err {
		e.log.Errorf("%s: commit error: %s", operation, err)
		return err
	}
	e.log.Debugf("%s: committed", operation)

	if nil != e.notify {
		for _, n := range notices {
			e.notify.Send(NotifyCommand, []byte(n.recipient), []byte(n.message))
		}
	}
	return nil
}

// native amount of at least the minimum listing price
func (e *Engine) checkPrice(price currency.Amount) error {
	if price.Currency != e.ledger.Symbol() || !price.IsValid() || price.Units < MinimumPrice {
		return fault.InvalidPrice
	}
	return nil
}

func checkMessage(message string) error {
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return fault.MessageTooLong
	}
	return nil
}

func (e *Engine) native(units int64) currency.Amount {
	return currency.New(units, e.ledger.Symbol())
}

// read the rows of a listing from the transaction
func (e *Engine) sale(trx storage.Transaction, resource string) (*Sale, error) {
	return e.readSale(trx, []byte(resource), nil)
}

// all three rows of a listing from one consistent view
//
// a missing row means the listing is gone
func (e *Engine) readSale(r storage.Reader, key []byte, packed []byte) (*Sale, error) {
	if nil == packed {
		packed = r.Get(e.handles.Listings, key)
	}
	extras := r.Get(e.handles.Extras, key)
	bid := r.Get(e.handles.Bids, key)
	if nil == packed || nil == extras || nil == bid {
		return nil, fault.NotListed
	}

	resource := string(key)
	s := &Sale{}
	unpackInto(packed, &s.Listing, resource)
	unpackInto(extras, &s.Extras, resource)
	unpackInto(bid, &s.Bid, resource)
	return s, nil
}

// write the rows of a listing
func (e *Engine) putSale(trx storage.Transaction, s *Sale) error {
	key := []byte(s.Listing.Resource)
	for _, item := range []struct {
		handle storage.Handle
		r      record.Record
	}{
		{e.handles.Listings, &s.Listing},
		{e.handles.Extras, &s.Extras},
		{e.handles.Bids, &s.Bid},
	} {
		packed, err := item.r.Pack()
		if nil != err {
			return err
		}
		trx.Put(item.handle, key, packed)
	}
	return nil
}

func (e *Engine) deleteSale(trx storage.Transaction, resource string) {
	key := []byte(resource)
	trx.Delete(e.handles.Listings, key)
	trx.Delete(e.handles.Extras, key)
	trx.Delete(e.handles.Bids, key)
}

func statsKey(index uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, index)
	return key
}

// apply a change to one stats row which must already exist
func (e *Engine) updateStats(trx storage.Transaction, index uint64, f func(stats *record.Stats) error) error {
	key := statsKey(index)
	packed := trx.Get(e.handles.Stats, key)
	if nil == packed {
		return fault.StatsNotInitialised
	}
	stats := &record.Stats{}
	unpackInto(packed, stats, "stats")

	if err := f(stats); nil != err {
		return err
	}

	packed, err := stats.Pack()
	if nil != err {
		return err
	}
	trx.Put(e.handles.Stats, key, packed)
	return nil
}

func (e *Engine) hasStats(trx storage.Transaction, index uint64) bool {
	return trx.Has(e.handles.Stats, statsKey(index))
}

// records in the pools are only written by this package so a
// decode failure means the database is corrupt
func unpackInto(packed []byte, target interface{}, key string) {
	if nil == packed {
		logger.Panicf("market: missing record for: %q", key)
	}
	r, _, err := record.Packed(packed).Unpack()
	logger.PanicIfError("market: unpack", err)

	switch t := target.(type) {
	case *record.Listing:
		*t = *r.(*record.Listing)
	case *record.Extras:
		*t = *r.(*record.Extras)
	case *record.Bid:
		*t = *r.(*record.Bid)
	case *record.Stats:
		*t = *r.(*record.Stats)
	case *record.Referrer:
		*t = *r.(*record.Referrer)
	case *record.Shop:
		*t = *r.(*record.Shop)
	default:
		logger.Panicf("market: unpack into: %T", target)
	}
}
