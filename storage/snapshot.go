// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/fault"
)

// Reader - key lookup across pools
//
// satisfied by both Transaction and Snapshot
type Reader interface {
	Get(Handle, []byte) []byte
	Has(Handle, []byte) bool
}

// Snapshot - a frozen view of committed state
//
// commits made after the snapshot was taken are not visible
type Snapshot struct {
	snap *leveldb.Snapshot
}

// NewSnapshot - capture the committed state of all pools
//
// the caller must Release the snapshot
func NewSnapshot() (*Snapshot, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return nil, fault.DatabaseIsNotSet
	}
	snap, err := poolData.db.GetSnapshot()
	if nil != err {
		return nil, err
	}
	return &Snapshot{snap: snap}, nil
}

// Get - nil if the key is absent
func (s *Snapshot) Get(h Handle, key []byte) []byte {
	value, err := s.snap.Get(prefixKey(h.Prefix(), key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("snapshot.Get", err)
	return value
}

func (s *Snapshot) Has(h Handle, key []byte) bool {
	return nil != s.Get(h, key)
}

// Fetch - up to count elements of one pool starting at key
func (s *Snapshot) Fetch(h Handle, start []byte, count int) ([]Element, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	prefix := h.Prefix()
	searchRange := util.Range{
		Start: prefixKey(prefix, start),
	}
	if prefix < 255 {
		searchRange.Limit = []byte{prefix + 1}
	}

	iter := s.snap.NewIterator(&searchRange, nil)
	defer iter.Release()

	results := make([]Element, 0, count)
	for len(results) < count && iter.Next() {
		key := make([]byte, len(iter.Key())-1)
		copy(key, iter.Key()[1:])

		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())

		results = append(results, Element{
			Key:   key,
			Value: value,
		})
	}
	return results, iter.Error()
}

// Release - free the snapshot
func (s *Snapshot) Release() {
	s.snap.Release()
}
