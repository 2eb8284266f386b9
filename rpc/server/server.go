// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/counter"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/loan"
	"github.com/bitmark-inc/nameswapd/market"
	"github.com/bitmark-inc/nameswapd/rpc/admin"
	"github.com/bitmark-inc/nameswapd/rpc/marketplace"
	"github.com/bitmark-inc/nameswapd/rpc/node"
	"github.com/bitmark-inc/nameswapd/rpc/payment"
	"github.com/bitmark-inc/nameswapd/storage"
)

// Services - everything the RPC services call into
type Services struct {
	Chain     string
	Account   string
	PublicKey []byte
	Market    market.Market
	Ledger    ledger.Ledger
	Events    ledger.EventLog
	Loans     loan.Loans
	Begin     func() (storage.Transaction, error)
}

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, services *Services) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(marketplace.New(log, services.Market))
	_ = server.Register(payment.New(log, services.Market, services.Account, services.Ledger, services.Begin))
	_ = server.Register(admin.New(log, services.Market, services.Loans))
	_ = server.Register(node.New(log, start, version, services.Chain, services.Account, services.PublicKey, services.Market, services.Events, rpcCount))

	return server
}
