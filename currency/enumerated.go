// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/fault"
)

// Currency - the native token of a ledger
type Currency uint64

// possible currency values
const (
	Nothing      Currency = iota // this must be the first value
	EOS          Currency = iota
	Telos        Currency = iota
	System       Currency = iota
	maximumValue Currency = iota // this must be the last value
	First        Currency = Nothing + 1
	Last         Currency = maximumValue - 1
	Count        int      = int(Last) // count of currencies
)

// Precision - number of decimal places of every native token
const Precision = 4

// internal conversion
func toString(c Currency) ([]byte, error) {
	switch c {
	case Nothing:
		return []byte{}, nil
	case EOS:
		return []byte("EOS"), nil
	case Telos:
		return []byte("TLOS"), nil
	case System:
		return []byte("SYS"), nil
	default:
		return []byte{}, fault.InvalidSymbol
	}
}

// convert a string to a currency
func fromString(in string) (Currency, error) {
	switch strings.ToLower(in) {
	case "":
		return Nothing, nil
	case "eos":
		return EOS, nil
	case "tlos", "telos":
		return Telos, nil
	case "sys", "system":
		return System, nil
	default:
		return Nothing, fault.InvalidSymbol
	}
}

// String - convert a currency to its symbol
func (currency Currency) String() string {
	s, err := toString(currency)
	if nil != err {
		logger.Panicf("invalid currency enumeration: %d", currency)
	}
	return string(s)
}

// GoString - enum value and symbol, for debugging
func (currency Currency) GoString() string {
	return fmt.Sprintf("<Currency#%d:%q>", currency, currency.String())
}

// Scan - convert a currency symbol
func (currency *Currency) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
	})
	if nil != err {
		return err
	}
	parsed, err := fromString(string(token))
	if nil != err {
		return err
	}

	*currency = parsed
	return nil
}

// IsValid - valid currency if in range of First to Last
// Nothing is not considered as valid
func (currency Currency) IsValid() bool {
	return currency >= First && currency <= Last
}

// MarshalText - convert a currency into JSON
func (currency Currency) MarshalText() ([]byte, error) {
	return toString(currency)
}

// UnmarshalText - convert currency string to a currency enumeration value from JSON
func (currency *Currency) UnmarshalText(s []byte) error {
	c, err := fromString(string(s))
	if nil != err {
		return err
	}
	*currency = c
	return nil
}
