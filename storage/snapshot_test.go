// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/storage"
)

func TestSnapshotIgnoresLaterCommits(t *testing.T) {
	setupMemory(t)
	defer teardownMemory()

	put(t, storage.Pool.Listings, map[string]string{
		"key-one": "data-one",
		"key-two": "data-two",
	})

	snap, err := storage.NewSnapshot()
	assert.Nil(t, err, "snapshot")
	defer snap.Release()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Delete(storage.Pool.Listings, []byte("key-one"))
	trx.Put(storage.Pool.Listings, []byte("key-three"), []byte("data-three"))
	assert.Nil(t, trx.Commit(), "commit")

	assert.Nil(t, storage.Pool.Listings.Get([]byte("key-one")), "committed delete")
	assert.Equal(t, []byte("data-one"), snap.Get(storage.Pool.Listings, []byte("key-one")), "snapshot value")
	assert.False(t, snap.Has(storage.Pool.Listings, []byte("key-three")), "later put visible")
	assert.False(t, snap.Has(storage.Pool.Extras, []byte("key-one")), "other pool")

	elements, err := snap.Fetch(storage.Pool.Listings, []byte{}, 10)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 2, len(elements), "element count")
	assert.Equal(t, []byte("key-one"), elements[0].Key, "first key")
	assert.Equal(t, []byte("data-two"), elements[1].Value, "second value")

	elements, err = snap.Fetch(storage.Pool.Listings, []byte("key-two"), 10)
	assert.Nil(t, err, "fetch from key")
	assert.Equal(t, 1, len(elements), "seek count")

	_, err = snap.Fetch(storage.Pool.Listings, []byte{}, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}

func TestSnapshotWithoutDatabase(t *testing.T) {
	_, err := storage.NewSnapshot()
	assert.Equal(t, fault.DatabaseIsNotSet, err, "no database")
}
