// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/nameswapd/rpc/payment"
)

// Transfer - move currency, a transfer to the contract is a purchase
func (c *Client) Transfer(arguments *payment.TransferArguments) (*payment.TransferReply, error) {
	var reply payment.TransferReply
	if err := c.call("Payment.Transfer", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Balance - currency held by an account
func (c *Client) Balance(account string) (*payment.BalanceReply, error) {
	var reply payment.BalanceReply
	if err := c.call("Payment.Balance", &payment.BalanceArguments{Account: account}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
