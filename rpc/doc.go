// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC over TLS for clients and the operator
//
// services:
//
//	Market   listings, bids and votes
//	Payment  transfers, purchases when sent to the contract
//	Admin    screening, registries, statistics and loans
//	Node     node status and the ledger event log
package rpc
