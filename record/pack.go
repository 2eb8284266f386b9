// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/util"
)

// field size limits
const (
	maxNameLength        = 64
	maxMessageLength     = 1024
	maxDescriptionLength = 8192
	maxPayloadLength     = 8192
)

// Pack - listing
func (listing *Listing) Pack() (Packed, error) {
	if "" == listing.Resource {
		return nil, fault.InvalidResource
	}
	if !listing.Price.IsValid() {
		return nil, fault.InvalidPrice
	}
	message := newRecord(ListingTag)
	message = appendString(message, listing.Resource)
	message = appendAmount(message, listing.Price)
	return appendString(message, listing.Payout), nil
}

// Pack - extras
func (extras *Extras) Pack() (Packed, error) {
	if extras.Screened > Rejected {
		return nil, fault.InvalidScreening
	}
	message := newRecord(ExtrasTag)
	message = appendString(message, extras.Resource)
	message = appendUint64(message, uint64(extras.Screened))
	message = appendUint64(message, extras.Votes)
	message = appendString(message, extras.LastVoter)
	return appendString(message, extras.Message), nil
}

// Pack - bid
func (bid *Bid) Pack() (Packed, error) {
	if bid.Status > BidAccepted {
		return nil, fault.NotRecord
	}
	message := newRecord(BidTag)
	message = appendString(message, bid.Resource)
	message = appendUint64(message, uint64(bid.Status))
	message = appendAmount(message, bid.Price)
	return appendString(message, bid.Bidder), nil
}

// Pack - stats
func (stats *Stats) Pack() (Packed, error) {
	message := newRecord(StatsTag)
	message = appendUint64(message, stats.Index)
	message = appendUint64(message, stats.Listed)
	message = appendUint64(message, stats.Purchased)
	message = appendAmount(message, stats.Sales)
	return appendAmount(message, stats.Fees), nil
}

// Pack - referrer
func (referrer *Referrer) Pack() (Packed, error) {
	message := newRecord(ReferrerTag)
	message = appendString(message, referrer.Name)
	return appendString(message, referrer.Account), nil
}

// Pack - shop
func (shop *Shop) Pack() (Packed, error) {
	message := newRecord(ShopTag)
	message = appendString(message, shop.Name)
	message = appendString(message, shop.Title)
	message = appendString(message, shop.Description)
	for _, p := range shop.Payment {
		message = appendString(message, p)
	}
	return message, nil
}

// Pack - loan
func (loan *Loan) Pack() (Packed, error) {
	message := newRecord(LoanTag)
	message = appendString(message, loan.Receiver)
	message = appendAmount(message, loan.Net)
	message = appendAmount(message, loan.Cpu)
	message = appendUint64(message, loan.Time)
	return appendBytes(message, loan.Token), nil
}

// Pack - loan window
func (window *LoanWindow) Pack() (Packed, error) {
	message := newRecord(LoanWindowTag)
	message = appendUint64(message, window.Start)
	return appendUint64(message, window.Count), nil
}

// Pack - deferred action
func (deferred *Deferred) Pack() (Packed, error) {
	if "" == deferred.Kind {
		return nil, fault.MissingParameters
	}
	message := newRecord(DeferredTag)
	message = appendString(message, deferred.Kind)
	message = appendUint64(message, deferred.FireAt)
	return appendBytes(message, deferred.Payload), nil
}

func newRecord(tag TagType) Packed {
	return util.AppendUint64(make(Packed, 0, 64), uint64(tag))
}

// append a single field to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	return util.AppendString(buffer, s)
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	return util.AppendBytes(buffer, data)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return util.AppendUint64(buffer, value)
}

// currency enumeration followed by zig-zag units
func appendAmount(buffer Packed, amount currency.Amount) Packed {
	buffer = util.AppendUint64(buffer, uint64(amount.Currency))
	return util.AppendInt64(buffer, amount.Units)
}
