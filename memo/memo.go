// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package memo - decode the purchase instruction carried by a payment
//
//	code ++ resource ++ "," ++ owner key ++ "," ++ active key [++ "," ++ referrer]
//
// code is one of "sp:" (listed sale), "cn:" (special category name)
// or "mk:" (new account)
package memo

import (
	"strings"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/ledger"
)

// Code - the kind of purchase
type Code string

// purchase codes
const (
	Standard Code = "sp:"
	Custom   Code = "cn:"
	Issue    Code = "mk:"
)

// key text layout
const (
	KeyLength       = 53
	keyPrefixLength = 3
	keyBytes        = 37
)

const (
	maxResourceLength = 12
	maxReferrerLength = 12
	separator         = ","
)

// Order - a decoded payment memo
type Order struct {
	Code      Code   `json:"code"`
	Resource  string `json:"resource"`
	OwnerKey  string `json:"ownerKey"`
	ActiveKey string `json:"activeKey"`
	Referrer  string `json:"referrer,omitempty"`
}

// Parse - split a memo into its parts
func Parse(memo string) (*Order, error) {
	if len(memo) < len(Standard) {
		return nil, fault.MalformedMemo
	}

	code := Code(memo[:len(Standard)])
	switch code {
	case Standard, Custom, Issue:
	default:
		return nil, fault.MalformedMemo
	}

	// resource name runs to the first separator
	fields := strings.SplitN(memo[len(Standard):], separator, 4)
	if len(fields) < 3 {
		return nil, fault.MalformedMemo
	}

	resource := fields[0]
	if len(resource) > maxResourceLength || !ledger.ValidName(resource) {
		return nil, fault.MalformedMemo
	}

	ownerKey := fields[1]
	activeKey := fields[2]
	if nil != ValidateKey(ownerKey) || nil != ValidateKey(activeKey) {
		return nil, fault.MalformedMemo
	}

	referrer := ""
	if 4 == len(fields) {
		referrer = fields[3]
		if len(referrer) > maxReferrerLength {
			return nil, fault.MalformedMemo
		}
		if "" != referrer && !ledger.ValidName(referrer) {
			return nil, fault.MalformedMemo
		}
	}

	return &Order{
		Code:      code,
		Resource:  resource,
		OwnerKey:  ownerKey,
		ActiveKey: activeKey,
		Referrer:  referrer,
	}, nil
}

// String - encode an order as a memo
func (o *Order) String() string {
	s := string(o.Code) + o.Resource + separator + o.OwnerKey + separator + o.ActiveKey
	if "" != o.Referrer {
		s += separator + o.Referrer
	}
	return s
}

// ValidateKey - a public key is a three letter prefix followed by the
// base58 encoding of the key and its checksum
func ValidateKey(key string) error {
	if KeyLength != len(key) {
		return fault.InvalidKey
	}
	for _, c := range []byte(key[:keyPrefixLength]) {
		if c < 'A' || c > 'Z' {
			return fault.InvalidKey
		}
	}
	data, err := base58.Decode(key[keyPrefixLength:])
	if nil != err || keyBytes != len(data) {
		return fault.InvalidKey
	}
	return nil
}
