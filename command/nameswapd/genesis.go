// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/storage"
)

// create any missing genesis accounts and fund them
//
// existing accounts are left unchanged so this is safe on every start
func applyGenesis(log *logger.L, l *ledger.Local, begin func() (storage.Transaction, error), accounts []GenesisAccount) (int, error) {

	trx, err := begin()
	if nil != err {
		return 0, err
	}

	created := 0
	for i, a := range accounts {
		if l.Exists(trx, a.Name) {
			log.Debugf("genesis[%d]: %q already exists", i, a.Name)
			continue
		}

		active := a.ActiveKey
		if "" == active {
			active = a.OwnerKey
		}
		err := l.CreateAccount(trx, a.Name, ledger.KeyAuthority(a.OwnerKey), ledger.KeyAuthority(active))
		if nil != err {
			trx.Abort()
			return 0, fmt.Errorf("genesis[%d]: %q  error: %s", i, a.Name, err)
		}

		if "" != a.Balance {
			balance, err := currency.ParseAmount(a.Balance)
			if nil == err {
				err = l.Credit(trx, a.Name, balance)
			}
			if nil != err {
				trx.Abort()
				return 0, fmt.Errorf("genesis[%d]: %q balance: %q  error: %s", i, a.Name, a.Balance, err)
			}
		}

		log.Infof("genesis[%d]: created: %q  balance: %q", i, a.Name, a.Balance)
		created += 1
	}

	err = trx.Commit()
	if nil != err {
		return 0, err
	}
	return created, nil
}
