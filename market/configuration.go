// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/ledger"
)

// default fee rates in basis points
const (
	DefaultContractFee = 200  // of the sale price
	DefaultReferrerFee = 1000 // of the contract fee
)

// Category - a special name suffix sold on behalf of its owner
//
// memo may contain {name} and {key} which are replaced by the
// purchased name and the buyer's owner key
type Category struct {
	Suffix string `gluamapper:"suffix" json:"suffix"`
	Payee  string `gluamapper:"payee" json:"payee"`
	Memo   string `gluamapper:"memo" json:"memo"`
}

// Configuration - marketplace settings
type Configuration struct {
	Account          string     `gluamapper:"account" json:"account"`
	FeesAccount      string     `gluamapper:"fees_account" json:"fees_account"`
	ContractFee      uint64     `gluamapper:"contract_fee" json:"contract_fee"`
	ReferrerFee      uint64     `gluamapper:"referrer_fee" json:"referrer_fee"`
	RequireScreening bool       `gluamapper:"require_screening" json:"require_screening"`
	Categories       []Category `gluamapper:"categories" json:"categories"`
}

// DefaultCategories - payees of the supported name suffixes
func DefaultCategories() []Category {
	return []Category{
		{Suffix: ".e", Payee: "e", Memo: "{name}+{key}+219959"},
		{Suffix: ".x", Payee: "buyname.x", Memo: "{name}-{key}-nameswapsfee"},
		{Suffix: ".y", Payee: "buyname.x", Memo: "{name}-{key}-nameswapsfee"},
		{Suffix: ".z", Payee: "buyname.x", Memo: "{name}-{key}-nameswapsfee"},
	}
}

// Validate - check configuration values
func (c *Configuration) Validate() error {
	if !ledger.ValidName(c.Account) {
		return fmt.Errorf("invalid contract account: %q", c.Account)
	}
	if !ledger.ValidName(c.FeesAccount) {
		return fmt.Errorf("invalid fees account: %q", c.FeesAccount)
	}
	if c.Account == c.FeesAccount {
		return fmt.Errorf("fees account: %q must differ from contract", c.FeesAccount)
	}
	if c.ContractFee > currency.BasisPoints {
		return fmt.Errorf("contract fee: %d exceeds %d basis points", c.ContractFee, currency.BasisPoints)
	}
	if c.ReferrerFee > currency.BasisPoints {
		return fmt.Errorf("referrer fee: %d exceeds %d basis points", c.ReferrerFee, currency.BasisPoints)
	}
	for _, category := range c.Categories {
		if _, ok := customPrices[category.Suffix]; !ok {
			return fmt.Errorf("unsupported suffix: %q", category.Suffix)
		}
		if !ledger.ValidName(category.Payee) {
			return fmt.Errorf("suffix: %q has invalid payee: %q", category.Suffix, category.Payee)
		}
		if "" == category.Memo {
			return fmt.Errorf("suffix: %q has empty memo", category.Suffix)
		}
	}
	return nil
}

func (c *Category) memo(name string, key string) string {
	return strings.NewReplacer("{name}", name, "{key}", key).Replace(c.Memo)
}
