// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nameswapd/command/nameswap-cli/rpccalls"
	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/memo"
	"github.com/bitmark-inc/nameswapd/record"
)

type metadata struct {
	connect string
	auth    ledger.Authorization
	verbose bool
	e       io.Writer
	w       io.Writer
}

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

func (m *metadata) client() (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

// the first declared actor, used as a default account
func (m *metadata) actor() string {
	if 0 == len(m.auth) {
		return ""
	}
	return m.auth[0].Actor
}

// operations that change state must declare an authorization
func (m *metadata) requireAuth() error {
	if 0 == len(m.auth) {
		return fmt.Errorf("missing --auth actor@permission")
	}
	return nil
}

// convert each "actor@permission" into a permission level
func parseAuthorization(levels []string) (ledger.Authorization, error) {
	auth := make(ledger.Authorization, 0, len(levels))
	for _, s := range levels {
		for _, item := range strings.Split(s, ",") {
			item = strings.TrimSpace(item)
			if "" == item {
				continue
			}
			p, err := ledger.ParsePermissionLevel(item)
			if nil != err {
				return nil, fmt.Errorf("authorization: %q  error: %s", item, err)
			}
			auth = append(auth, p)
		}
	}
	return auth, nil
}

func checkName(title string, name string) (string, error) {
	if "" == name {
		return "", fmt.Errorf("%s is required", title)
	}
	if !ledger.ValidName(name) {
		return "", fmt.Errorf("%s: %q is not a valid account name", title, name)
	}
	return name, nil
}

func checkAmount(title string, s string) (currency.Amount, error) {
	if "" == s {
		return currency.Amount{}, fmt.Errorf("%s is required", title)
	}
	amount, err := currency.ParseAmount(s)
	if nil != err {
		return currency.Amount{}, fmt.Errorf("%s: %q  error: %s", title, s, err)
	}
	return amount, nil
}

func parseScreening(s string) (record.Screening, error) {
	switch strings.ToLower(s) {
	case "0", "none", "not-screened":
		return record.NotScreened, nil
	case "1", "approve", "approved":
		return record.Approved, nil
	case "2", "reject", "rejected":
		return record.Rejected, nil
	default:
		return 0, fmt.Errorf("screening: %q must be one of: approved, rejected or none", s)
	}
}

// build the purchase memo and check it decodes
func makeMemo(code string, resource string, ownerKey string, activeKey string, referrer string) (string, error) {
	order := &memo.Order{
		Resource:  resource,
		OwnerKey:  ownerKey,
		ActiveKey: activeKey,
		Referrer:  referrer,
	}
	switch strings.TrimSuffix(strings.ToLower(code), ":") {
	case "sp", "standard", "":
		order.Code = memo.Standard
	case "cn", "custom":
		order.Code = memo.Custom
	case "mk", "issue":
		order.Code = memo.Issue
	default:
		return "", fmt.Errorf("code: %q must be one of: sp, cn or mk", code)
	}

	s := order.String()
	if _, err := memo.Parse(s); nil != err {
		return "", fmt.Errorf("memo: %q  error: %s", s, err)
	}
	return s, nil
}
