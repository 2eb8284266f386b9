// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - escrow marketplace for account names
//
// a seller hands custody of an account to the contract together with
// an asking price; buyers pay either the asking price or a bid that
// the payout account has accepted; on payment the proceeds are split
// into seller, contract and referrer fees and custody passes to the
// keys supplied by the buyer
//
// every operation runs inside one storage transaction carrying both
// the marketplace tables and the ledger side effects so that any
// failure leaves no trace
package market
