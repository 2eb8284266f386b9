// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - an atomic unit of pool updates
//
// reads see the transaction's own pending writes
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	Has(Handle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

// TransactionData - transaction over a single data access
type TransactionData struct {
	dataAccess Access
}

func newTransaction(dataAccess Access) Transaction {
	return &TransactionData{
		dataAccess: dataAccess,
	}
}

// Begin - blocks until no other transaction is open
func (t *TransactionData) Begin() error {
	return t.dataAccess.Begin()
}

func (t *TransactionData) Put(h Handle, key []byte, value []byte) {
	t.dataAccess.Put(prefixKey(h.Prefix(), key), value)
}

func (t *TransactionData) Delete(h Handle, key []byte) {
	t.dataAccess.Delete(prefixKey(h.Prefix(), key))
}

// Get - nil if the key is absent or was deleted
func (t *TransactionData) Get(h Handle, key []byte) []byte {
	value, err := t.dataAccess.Get(prefixKey(h.Prefix(), key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *TransactionData) Has(h Handle, key []byte) bool {
	return nil != t.Get(h, key)
}

func (t *TransactionData) Commit() error {
	return t.dataAccess.Commit()
}

func (t *TransactionData) Abort() {
	t.dataAccess.Abort()
}

func (t *TransactionData) InUse() bool {
	return t.dataAccess.InUse()
}
