// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/util"
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Pack() (Packed, error)
}

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	ListingTag    = TagType(iota) // resource for sale
	ExtrasTag     = TagType(iota) // screening, votes and message
	BidTag        = TagType(iota) // negotiation state
	StatsTag      = TagType(iota) // aggregate statistics
	ReferrerTag   = TagType(iota) // referrer directory entry
	ShopTag       = TagType(iota) // storefront description
	LoanTag       = TagType(iota) // most recent loan to a receiver
	LoanWindowTag = TagType(iota) // loan rate limiting window
	DeferredTag   = TagType(iota) // scheduled action

	// this item must be last
	InvalidTag = TagType(iota)
)

// Screening - result of the operator check for pending proposals
type Screening uint8

// screening values
const (
	NotScreened Screening = 0
	Approved    Screening = 1
	Rejected    Screening = 2
)

// BidStatus - the payout account's decision on the current bid
type BidStatus uint8

// bid status values
const (
	BidRejected  BidStatus = 0
	BidUndecided BidStatus = 1
	BidAccepted  BidStatus = 2
)

// String - text form of a bid status
func (s BidStatus) String() string {
	switch s {
	case BidRejected:
		return "rejected"
	case BidUndecided:
		return "undecided"
	case BidAccepted:
		return "accepted"
	default:
		return "invalid"
	}
}

// Listing - a resource held in escrow for sale
type Listing struct {
	Resource string          `json:"resource"`
	Price    currency.Amount `json:"price"`
	Payout   string          `json:"payout"`
}

// Extras - per listing metadata
type Extras struct {
	Resource  string    `json:"resource"`
	Screened  Screening `json:"screened"`
	Votes     uint64    `json:"votes"`
	LastVoter string    `json:"lastVoter"`
	Message   string    `json:"message"`
}

// Bid - the single negotiation slot of a listing
type Bid struct {
	Resource string          `json:"resource"`
	Status   BidStatus       `json:"status"`
	Price    currency.Amount `json:"price"`
	Bidder   string          `json:"bidder"`
}

// Stats - aggregate counters for one category
type Stats struct {
	Index     uint64          `json:"index"`
	Listed    uint64          `json:"listed"`
	Purchased uint64          `json:"purchased"`
	Sales     currency.Amount `json:"sales"`
	Fees      currency.Amount `json:"fees"`
}

// Referrer - a referral code and its payout account
type Referrer struct {
	Name    string `json:"name"`
	Account string `json:"account"`
}

// Shop - storefront description
type Shop struct {
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Payment     [3]string `json:"payment"`
}

// Loan - bandwidth lent to a receiver
type Loan struct {
	Receiver string          `json:"receiver"`
	Net      currency.Amount `json:"net"`
	Cpu      currency.Amount `json:"cpu"`
	Time     uint64          `json:"time"`
	Token    []byte          `json:"token"`
}

// LoanWindow - count of loans made since the window started
type LoanWindow struct {
	Start uint64 `json:"start"`
	Count uint64 `json:"count"`
}

// Deferred - an action to run at a later time
type Deferred struct {
	Kind    string `json:"kind"`
	FireAt  uint64 `json:"fireAt"`
	Payload []byte `json:"payload"`
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}
