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

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//
//	listing, ok := result.(*record.Listing)
//
// or:
//
//	switch r := result.(type) {
//	case *record.Listing:
func (record Packed) Unpack() (r Record, n int, e error) {

	defer func() {
		if x := recover(); nil != x {
			r = nil
			n = 0
			e = fault.NotRecord
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.NotRecord
	}
	rest := []byte(record[n:])
	ok := false

unpack_switch:
	switch TagType(recordType) {

	case ListingTag:
		listing := &Listing{}
		if listing.Resource, rest, ok = util.ReadString(rest, maxNameLength); !ok {
			break unpack_switch
		}
		if listing.Price, rest, ok = readAmount(rest); !ok {
			break unpack_switch
		}
		if listing.Payout, rest, ok = util.ReadString(rest, maxNameLength); !ok {
			break unpack_switch
		}
		return listing, len(record) - len(rest), nil

	case ExtrasTag:
		extras := &Extras{}
		if extras.Resource, rest, ok = util.ReadString(rest, maxNameLength); !ok {
			break unpack_switch
		}
		screened := uint64(0)
		if screened, rest, ok = util.ReadUint64(rest); !ok {
			break unpack_switch
		}
		if screened > uint64(Rejected) {
			return nil, 0, fault.InvalidScreening
		}
		extras.Screened = Screening(screened)
		if extras.Votes, rest, ok = util.ReadUint64(rest); !ok {
			break unpack_switch
		}
		if extras.LastVoter, rest, ok = util.ReadString(rest, maxNameLength); !ok {
			break unpack_switch
		}
		if extras.Message, rest, ok = util.ReadString(rest, maxMessageLength); !ok {
			break unpack_switch
		}
		return extras, len(record) - len(rest), nil

	case BidTag:
		bid := &Bid{}
		if bid.Resource, rest, ok = util.ReadString(rest, maxNameLength); !ok {
			break unpack_switch
		}
		status := uint64(0)
		if status, rest, ok = util.ReadUint64(rest); !ok {
			break unpack_switch
		}
		if status > uint64(BidAccepted) {
			return nil, 0, fault.NotRecord
		}
		bid.Status = BidStatus(status)
		if bid.Price, rest, ok = readAmount(rest); !ok {
			break unpack_switch
		}
		if bid.Bidder, rest, ok = util.ReadString(rest, maxNameLength); !ok {
			break unpack_switch
		}
		return bid, len(record) - len(rest), nil

	case StatsTag:
		stats := &Stats{}
		if stats.Index, rest, ok = util.ReadUint64(rest); !ok {
			break unpack_switch
		}
		if stats.Listed, rest, ok = util.ReadUint64(rest); !ok {
			break unpack_switch
		}
		if stats.Purchased, rest, ok = util.ReadUint64(rest); !ok {
			break unpack_switch
		}
		if stats.Sales, rest, ok = readAmount(rest); !ok {
			break unpack_switch
		}
		if stats.Fees, rest, ok = readAmount(rest); !ok {
			break unpack_switch
		}
		return stats, len(record) - len(rest), nil

	case ReferrerTag:
		referrer := &Referrer{}
		if referrer.Name, rest, ok = util.ReadString(rest, maxNameLength); !ok {
			break unpack_switch
		}
		if referrer.Account, rest, ok = util.ReadString(rest, maxNameLength); !ok {
			break unpack_switch
		}
		return referrer, len(record) - len(rest), nil

	case ShopTag:
		shop := &Shop{}
		if shop.Name, rest, ok = util.ReadString(rest, maxNameLength); !ok {
			break unpack_switch
		}
		if shop.Title, rest, ok = util.ReadString(rest, maxMessageLength); !ok {
			break unpack_switch
		}
		if shop.Description, rest, ok = util.ReadString(rest, maxDescriptionLength); !ok {
			break unpack_switch
		}
		for i := range shop.Payment {
			if shop.Payment[i], rest, ok = util.ReadString(rest, maxNameLength); !ok {
				break unpack_switch
			}
		}
		return shop, len(record) - len(rest), nil

	case LoanTag:
		loan := &Loan{}
		if loan.Receiver, rest, ok = util.ReadString(rest, maxNameLength); !ok {
			break unpack_switch
		}
		if loan.Net, rest, ok = readAmount(rest); !ok {
			break unpack_switch
		}
		if loan.Cpu, rest, ok = readAmount(rest); !ok {
			break unpack_switch
		}
		if loan.Time, rest, ok = util.ReadUint64(rest); !ok {
			break unpack_switch
		}
		if loan.Token, rest, ok = util.ReadBytes(rest, maxNameLength); !ok {
			break unpack_switch
		}
		return loan, len(record) - len(rest), nil

	case LoanWindowTag:
		window := &LoanWindow{}
		if window.Start, rest, ok = util.ReadUint64(rest); !ok {
			break unpack_switch
		}
		if window.Count, rest, ok = util.ReadUint64(rest); !ok {
			break unpack_switch
		}
		return window, len(record) - len(rest), nil

	case DeferredTag:
		deferred := &Deferred{}
		if deferred.Kind, rest, ok = util.ReadString(rest, maxNameLength); !ok {
			break unpack_switch
		}
		if deferred.FireAt, rest, ok = util.ReadUint64(rest); !ok {
			break unpack_switch
		}
		if deferred.Payload, rest, ok = util.ReadBytes(rest, maxPayloadLength); !ok {
			break unpack_switch
		}
		return deferred, len(record) - len(rest), nil

	default: // also NullTag
		return nil, 0, fault.NotRecord
	}
	return nil, 0, fault.RecordTruncated
}

// currency enumeration followed by zig-zag units
func readAmount(buffer []byte) (currency.Amount, []byte, bool) {
	c, rest, ok := util.ReadUint64(buffer)
	if !ok || c >= uint64(currency.Last)+1 {
		return currency.Amount{}, nil, false
	}
	units, rest, ok := util.ReadInt64(rest)
	if !ok {
		return currency.Amount{}, nil, false
	}
	return currency.Amount{Units: units, Currency: currency.Currency(c)}, rest, true
}
