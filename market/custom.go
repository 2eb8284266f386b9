// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/bitmark-inc/nameswapd/fault"
)

const suffixLength = 2

// price in native units by suffix and total name length
var customPrices = map[string]map[int]int64{
	".e": {7: 57000, 8: 47000, 9: 37000, 10: 27000, 11: 17000, 12: 8000},
	".x": {7: 67000, 8: 57000, 9: 47000, 10: 37000, 11: 27000, 12: 17000},
	".y": {6: 507000, 7: 57000, 8: 47000, 9: 37000, 10: 27000, 11: 17000, 12: 8000},
	".z": {6: 507000, 7: 57000, 8: 47000, 9: 37000, 10: 27000, 11: 17000, 12: 8000},
}

// stats row of each suffix
var customStats = map[string]uint64{
	".e": 1,
	".x": 2,
	".y": 3,
	".z": 4,
}

// new account issuance in native units
const (
	IssueFee = 4000
	IssueRAM = 2000
	IssueNet = 1000
	IssueCpu = 1000
)

// CustomPrice - price of a special category name
func CustomPrice(name string) (int64, string, error) {
	if len(name) <= suffixLength {
		return 0, "", fault.InvalidSuffix
	}
	suffix := name[len(name)-suffixLength:]
	prices, ok := customPrices[suffix]
	if !ok {
		return 0, "", fault.InvalidSuffix
	}
	price, ok := prices[len(name)]
	if !ok {
		return 0, "", fault.InvalidSuffixLength
	}
	return price, suffix, nil
}

func (e *Engine) category(suffix string) (*Category, error) {
	for i := range e.conf.Categories {
		if suffix == e.conf.Categories[i].Suffix {
			return &e.conf.Categories[i], nil
		}
	}
	return nil, fault.InvalidSuffix
}
