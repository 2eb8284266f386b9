// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/counter"
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/market"
	"github.com/bitmark-inc/nameswapd/record"
	"github.com/bitmark-inc/nameswapd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// limit for count
const maximumEventList = 100

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	Chain     string
	Account   string
	PublicKey []byte
	market    market.Market
	events    ledger.EventLog
	counter   *counter.Counter
}

// New - create the Node service
func New(log *logger.L, start time.Time, version string, chain string, account string, publicKey []byte, m market.Market, events ledger.EventLog, counter *counter.Counter) *Node {
	return &Node{
		Log:       log,
		Limiter:   ratelimit.New(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		Chain:     chain,
		Account:   account,
		PublicKey: publicKey,
		market:    m,
		events:    events,
		counter:   counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string         `json:"chain"`
	Version   string         `json:"version"`
	Uptime    string         `json:"uptime"`
	Account   string         `json:"account"`
	RPCs      uint64         `json:"rpcs"`
	PublicKey string         `json:"publicKey"`
	Stats     []record.Stats `json:"stats"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.market {
		return fault.DatabaseIsNotSet
	}

	stats, err := node.market.Stats()
	if nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Account = node.Account
	reply.RPCs = node.counter.Uint64()
	reply.PublicKey = hex.EncodeToString(node.PublicKey)
	reply.Stats = stats
	return nil
}

// ---

// EventsArguments - arguments for RPC
type EventsArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// EventsReply - result from RPC
type EventsReply struct {
	Events    []ledger.Event `json:"events"`
	NextStart uint64         `json:"nextStart,string"`
}

// Events - page through the ledger event log
func (node *Node) Events(arguments *EventsArguments, reply *EventsReply) error {

	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(node.Limiter, arguments.Count, maximumEventList); nil != err {
		return err
	}

	events, err := node.events.Events(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Events = events
	reply.NextStart = arguments.Start
	if n := len(events); n > 0 {
		reply.NextStart = events[n-1].Sequence + 1
	}
	return nil
}
