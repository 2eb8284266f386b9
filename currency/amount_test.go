// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/fault"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		s      string
		amount currency.Amount
		err    error
	}{
		{"10.0000 EOS", currency.New(100000, currency.EOS), nil},
		{"0.0001 EOS", currency.New(1, currency.EOS), nil},
		{"6.0000 TLOS", currency.New(60000, currency.Telos), nil},
		{"-1.5000 SYS", currency.New(-15000, currency.System), nil},
		{"1.000 EOS", currency.Amount{}, fault.InvalidAmount},
		{"1.00000 EOS", currency.Amount{}, fault.InvalidAmount},
		{"1 EOS", currency.Amount{}, fault.InvalidAmount},
		{".0001 EOS", currency.Amount{}, fault.InvalidAmount},
		{"1.0000", currency.Amount{}, fault.InvalidAmount},
		{"1.0x00 EOS", currency.Amount{}, fault.InvalidAmount},
		{"1.0000 BTC", currency.Amount{}, fault.InvalidSymbol},
		{"99999999999999999.0000 EOS", currency.Amount{}, fault.AmountOverflow},
	}

	for i, item := range tests {
		amount, err := currency.ParseAmount(item.s)
		assert.Equal(t, item.err, err, "%d: error for %q", i, item.s)
		assert.Equal(t, item.amount, amount, "%d: amount for %q", i, item.s)
	}
}

func TestAmountString(t *testing.T) {
	assert.Equal(t, "10.0000 EOS", currency.New(100000, currency.EOS).String(), "whole")
	assert.Equal(t, "0.4000 EOS", currency.New(4000, currency.EOS).String(), "fraction")
	assert.Equal(t, "-0.0001 TLOS", currency.New(-1, currency.Telos).String(), "negative")
}

func TestAmountArithmetic(t *testing.T) {
	a := currency.New(60000, currency.EOS)
	b := currency.New(1200, currency.EOS)

	sum, err := a.Add(b)
	assert.Nil(t, err, "add error")
	assert.Equal(t, int64(61200), sum.Units, "wrong sum")

	diff, err := a.Sub(b)
	assert.Nil(t, err, "sub error")
	assert.Equal(t, int64(58800), diff.Units, "wrong difference")

	_, err = a.Add(currency.New(1, currency.Telos))
	assert.Equal(t, fault.SymbolMismatch, err, "mixed symbols")

	_, err = currency.New(currency.MaximumUnits, currency.EOS).Add(currency.New(1, currency.EOS))
	assert.Equal(t, fault.AmountOverflow, err, "overflow")

	assert.Equal(t, -1, b.Cmp(a), "less")
	assert.Equal(t, 1, a.Cmp(b), "greater")
	assert.Equal(t, 0, a.Cmp(a), "equal")
}

func TestFraction(t *testing.T) {
	tests := []struct {
		units    int64
		bps      uint64
		expected int64
	}{
		{60000, 200, 1200},
		{1200, 1000, 120},
		{10000, 200, 200},
		{12345, 200, 246},
		{1, 200, 0},
		{currency.MaximumUnits, 10000, currency.MaximumUnits},
	}

	for i, item := range tests {
		actual := currency.New(item.units, currency.EOS).Fraction(item.bps)
		assert.Equal(t, item.expected, actual.Units, "%d: fraction of %d by %d", i, item.units, item.bps)
	}
}

func TestAmountJSON(t *testing.T) {
	type wrapper struct {
		Price currency.Amount `json:"price"`
	}

	buffer, err := json.Marshal(wrapper{Price: currency.New(65000, currency.EOS)})
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"price":"6.5000 EOS"}`, string(buffer), "wrong JSON")

	var w wrapper
	err = json.Unmarshal([]byte(`{"price":"7.1200 TLOS"}`), &w)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, currency.New(71200, currency.Telos), w.Price, "wrong amount")

	err = json.Unmarshal([]byte(`{"price":"7 TLOS"}`), &w)
	assert.Equal(t, fault.InvalidAmount, err, "bad amount accepted")

	// unset amounts survive a round trip
	buffer, err = json.Marshal(wrapper{})
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"price":""}`, string(buffer), "wrong empty JSON")

	w.Price = currency.New(1, currency.EOS)
	err = json.Unmarshal(buffer, &w)
	assert.Nil(t, err, "unmarshal empty error")
	assert.Equal(t, currency.Amount{}, w.Price, "wrong empty amount")
}
