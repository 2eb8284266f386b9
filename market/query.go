// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/record"
	"github.com/bitmark-inc/nameswapd/storage"
)

// maximum rows returned by one listing query
const MaximumListings = 100

// queries read committed state only

// Listing - the rows of one listed account
func (e *Engine) Listing(resource string) (*Sale, error) {
	snap, err := storage.NewSnapshot()
	if nil != err {
		return nil, err
	}
	defer snap.Release()

	return e.readSale(snap, []byte(resource), nil)
}

// Listings - listed accounts in name order starting at start
func (e *Engine) Listings(start string, count int) ([]Sale, error) {
	if count <= 0 || count > MaximumListings {
		return nil, fault.InvalidCount
	}

	snap, err := storage.NewSnapshot()
	if nil != err {
		return nil, err
	}
	defer snap.Release()

	elements, err := snap.Fetch(e.handles.Listings, []byte(start), count)
	if nil != err {
		return nil, err
	}

	sales := make([]Sale, 0, len(elements))
	for _, element := range elements {
		s, err := e.readSale(snap, element.Key, element.Value)
		if nil != err {
			e.log.Warnf("listings: %q  error: %s", element.Key, err)
			continue
		}
		sales = append(sales, *s)
	}
	return sales, nil
}

// Stats - all statistics rows in index order
func (e *Engine) Stats() ([]record.Stats, error) {
	stats := make([]record.Stats, 0, statsCount)
	err := e.handles.Stats.NewFetchCursor().Map(func(key []byte, value []byte) error {
		s := record.Stats{}
		unpackInto(value, &s, "stats")
		stats = append(stats, s)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return stats, nil
}

// Referrers - the referrer directory
func (e *Engine) Referrers() ([]record.Referrer, error) {
	referrers := make([]record.Referrer, 0)
	err := e.handles.Referrers.NewFetchCursor().Map(func(key []byte, value []byte) error {
		r := record.Referrer{}
		unpackInto(value, &r, string(key))
		referrers = append(referrers, r)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return referrers, nil
}

// Shops - the storefront directory
func (e *Engine) Shops() ([]record.Shop, error) {
	shops := make([]record.Shop, 0)
	err := e.handles.Shops.NewFetchCursor().Map(func(key []byte, value []byte) error {
		s := record.Shop{}
		unpackInto(value, &s, string(key))
		shops = append(shops, s)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return shops, nil
}
