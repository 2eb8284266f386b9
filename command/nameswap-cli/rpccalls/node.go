// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/nameswapd/rpc/node"
)

// Info - request status from nameswapd
func (c *Client) Info() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Events - part of the ledger event log
func (c *Client) Events(start uint64, count int) (*node.EventsReply, error) {
	var reply node.EventsReply
	if err := c.call("Node.Events", &node.EventsArguments{Start: start, Count: count}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
