// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/nameswapd/fault"
)

// MaximumUnits - largest magnitude an amount may hold
const MaximumUnits = int64(1)<<62 - 1

// BasisPoints - denominator for fee fractions
const BasisPoints = 10000

// Amount - a fixed point quantity of a currency
//
// Units are ten-thousandths, so 1.0000 EOS is Amount{10000, EOS}
type Amount struct {
	Units    int64
	Currency Currency
}

// New - create an amount from a count of the smallest units
func New(units int64, c Currency) Amount {
	return Amount{Units: units, Currency: c}
}

// ParseAmount - convert "10.0000 EOS" into an amount
//
// exactly four decimal places are required
func ParseAmount(s string) (Amount, error) {
	fields := strings.Fields(s)
	if 2 != len(fields) {
		return Amount{}, fault.InvalidAmount
	}

	c, err := fromString(fields[1])
	if nil != err {
		return Amount{}, err
	}
	if !c.IsValid() {
		return Amount{}, fault.InvalidSymbol
	}

	number := fields[0]
	negative := false
	if strings.HasPrefix(number, "-") {
		negative = true
		number = number[1:]
	}

	parts := strings.Split(number, ".")
	if 2 != len(parts) || 0 == len(parts[0]) || Precision != len(parts[1]) {
		return Amount{}, fault.InvalidAmount
	}

	units := int64(0)
	for _, b := range []byte(parts[0] + parts[1]) {
		if b < '0' || b > '9' {
			return Amount{}, fault.InvalidAmount
		}
		digit := int64(b - '0')
		if units > (MaximumUnits-digit)/10 {
			return Amount{}, fault.AmountOverflow
		}
		units = units*10 + digit
	}
	if negative {
		units = -units
	}
	return Amount{Units: units, Currency: c}, nil
}

// String - format as "10.0000 EOS"
func (a Amount) String() string {
	units := a.Units
	sign := ""
	if units < 0 {
		sign = "-"
		units = -units
	}
	symbol, _ := toString(a.Currency)
	return fmt.Sprintf("%s%d.%04d %s", sign, units/BasisPoints, units%BasisPoints, symbol)
}

// IsValid - amount is within range and has a real currency
func (a Amount) IsValid() bool {
	return a.Currency.IsValid() && a.Units >= -MaximumUnits && a.Units <= MaximumUnits
}

// IsZero - true for a zero quantity of any currency
func (a Amount) IsZero() bool {
	return 0 == a.Units
}

// Add - sum two amounts of the same currency
func (a Amount) Add(b Amount) (Amount, error) {
	if a.Currency != b.Currency {
		return Amount{}, fault.SymbolMismatch
	}
	r := Amount{Units: a.Units + b.Units, Currency: a.Currency}
	if !r.IsValid() {
		return Amount{}, fault.AmountOverflow
	}
	return r, nil
}

// Sub - difference of two amounts of the same currency
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.Currency != b.Currency {
		return Amount{}, fault.SymbolMismatch
	}
	r := Amount{Units: a.Units - b.Units, Currency: a.Currency}
	if !r.IsValid() {
		return Amount{}, fault.AmountOverflow
	}
	return r, nil
}

// Fraction - floor(a × bps / 10000) for a non-negative amount
func (a Amount) Fraction(bps uint64) Amount {
	// split to avoid overflow on large amounts
	whole := a.Units / BasisPoints
	part := a.Units % BasisPoints
	units := whole*int64(bps) + part*int64(bps)/BasisPoints
	return Amount{Units: units, Currency: a.Currency}
}

// Cmp - -1, 0, +1 comparing same currency amounts
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.Units < b.Units:
		return -1
	case a.Units > b.Units:
		return 1
	default:
		return 0
	}
}

// MarshalText - convert an amount into JSON
//
// an amount with no currency is the empty string
func (a Amount) MarshalText() ([]byte, error) {
	if Nothing == a.Currency && 0 == a.Units {
		return []byte{}, nil
	}
	return []byte(a.String()), nil
}

// UnmarshalText - convert "10.0000 EOS" from JSON
func (a *Amount) UnmarshalText(s []byte) error {
	if 0 == len(s) {
		*a = Amount{}
		return nil
	}
	parsed, err := ParseAmount(string(s))
	if nil != err {
		return err
	}
	*a = parsed
	return nil
}
