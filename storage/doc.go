// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. resource     = account name bytes (at most 12)
// 4. index        = stats index as big endian uint64 (8 bytes)
// 5. time         = unix seconds as big endian uint64 (8 bytes)
// 6. token        = deferred action digest as 32 byte SHA3-256(data)
// 7. *others*     = byte values of various length
//
// Marketplace:
//
//	A ++ resource              - listing
//	                             data: packed listing record
//	E ++ resource              - listing extras (screening, votes, message)
//	                             data: packed extras record
//	B ++ resource              - bid state
//	                             data: packed bid record
//	S ++ index                 - aggregate statistics
//	                             data: packed stats record
//	R ++ name                  - referrer directory
//	                             data: packed referrer record
//	H ++ name                  - shop directory
//	                             data: packed shop record
//	L ++ receiver              - most recent loan to an account
//	                             data: packed loan record
//	L ++ 0x00 ++ "window"      - loan rate window
//	                             data: packed loan window record
//	D ++ time ++ token         - deferred actions in firing order
//	                             data: packed deferred record
//
// Ledger (local chain only):
//
//	b ++ account               - balance
//	                             data: packed amount
//	p ++ account ++ 0x00 ++ permission
//	                           - permission authority
//	                             data: packed authority
//	r ++ account               - resources (RAM bytes, NET, CPU)
//	                             data: packed resources
//	g ++ from ++ 0x00 ++ to    - delegated bandwidth
//	                             data: packed delegation
//	i ++ account               - proposal invalidation count
//	                             data: count (varint)
//	e ++ sequence              - event log
//	                             data: packed event
//	n ++ "events"              - next event sequence
//	                             data: count (big endian uint64)
package storage
