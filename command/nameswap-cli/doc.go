// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// nameswap-cli - command line client for a nameswapd marketplace
//
// every call declares its authorization with --auth actor@permission;
// the daemon checks it against the ledger's stored permissions
package main
