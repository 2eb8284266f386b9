// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/bitmark-inc/nameswapd/currency"
)

// names of all chains
const (
	EOS   = "eos"
	Telos = "telos"
	Local = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case EOS, Telos, Local:
		return true
	default:
		return false
	}
}

// Currency - native token of a chain
func Currency(name string) currency.Currency {
	switch name {
	case EOS:
		return currency.EOS
	case Telos:
		return currency.Telos
	case Local:
		return currency.System
	default:
		return currency.Nothing
	}
}
