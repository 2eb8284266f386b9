// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/nameswapd/fault"
)

// Access - low level database operations shared by pools and transactions
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
	Stored([]byte) ([]byte, error)
}

// AccessData - a database with a single write batch
//
// Begin holds the exclusive lock until Commit or Abort so that
// transactions are totally ordered
type AccessData struct {
	exclusive sync.Mutex
	sync.Mutex
	inUse    bool
	readOnly bool
	db       *leveldb.DB
	batch    *leveldb.Batch
	cache    Cache
}

func newDA(db *leveldb.DB, readOnly bool) Access {
	return &AccessData{
		inUse:    false,
		readOnly: readOnly,
		db:       db,
		batch:    new(leveldb.Batch),
		cache:    newCache(),
	}
}

// Begin - wait for exclusive use of the batch
func (d *AccessData) Begin() error {
	if d.readOnly {
		return fault.NotAvailableInReadOnlyMode
	}
	d.exclusive.Lock()

	d.Lock()
	d.inUse = true
	d.Unlock()
	return nil
}

func (d *AccessData) Put(key []byte, value []byte) {
	if nil == value {
		value = []byte{}
	}
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch and release the transaction
func (d *AccessData) Commit() error {
	err := d.db.Write(d.batch, nil)
	d.release()
	return err
}

// Abort - discard the batch and release the transaction
func (d *AccessData) Abort() {
	d.release()
}

func (d *AccessData) release() {
	d.Lock()
	if !d.inUse {
		d.Unlock()
		return
	}
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
	d.Unlock()

	d.exclusive.Unlock()
}

// Get - read through pending writes to the database
func (d *AccessData) Get(key []byte) ([]byte, error) {
	value, found := d.cache.Get(string(key))
	if found {
		if nil == value {
			return nil, leveldb.ErrNotFound
		}
		return value, nil
	}
	return d.db.Get(key, nil)
}

// Stored - read the committed value only
func (d *AccessData) Stored(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}
