// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/nameswapd/fixtures"
	"github.com/bitmark-inc/nameswapd/storage"
	"github.com/bitmark-inc/nameswapd/storage/mocks"
)

func setupTestTransaction(t *testing.T) (storage.Transaction, *mocks.MockAccess, *mocks.MockHandle, *gomock.Controller) {
	ctl := gomock.NewController(t)

	access := mocks.NewMockAccess(ctl)
	handle := mocks.NewMockHandle(ctl)
	handle.EXPECT().Prefix().Return(byte('A')).AnyTimes()

	return storage.NewTransaction(access), access, handle, ctl
}

func TestTransactionBegin(t *testing.T) {
	trx, access, _, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	access.EXPECT().Begin().Return(nil).Times(1)
	err := trx.Begin()
	assert.Nil(t, err, "wrong Begin")

	access.EXPECT().Begin().Return(fmt.Errorf("fake")).Times(1)
	err = trx.Begin()
	assert.NotNil(t, err, "Begin error not returned")
}

func TestTransactionPutPrefixesKey(t *testing.T) {
	trx, access, handle, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	access.EXPECT().Put([]byte("Aalice"), []byte("value")).Times(1)
	access.EXPECT().Delete([]byte("Abob")).Times(1)

	trx.Put(handle, []byte("alice"), []byte("value"))
	trx.Delete(handle, []byte("bob"))
}

func TestTransactionGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	trx, access, handle, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	access.EXPECT().Get([]byte("Aalice")).Return([]byte("value"), nil).Times(2)
	access.EXPECT().Get([]byte("Abob")).Return(nil, leveldb.ErrNotFound).Times(2)

	assert.Equal(t, []byte("value"), trx.Get(handle, []byte("alice")), "wrong value")
	assert.True(t, trx.Has(handle, []byte("alice")), "existing key not found")
	assert.Nil(t, trx.Get(handle, []byte("bob")), "missing key returned data")
	assert.False(t, trx.Has(handle, []byte("bob")), "missing key found")
}

func TestTransactionCommitAbort(t *testing.T) {
	trx, access, _, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	access.EXPECT().Commit().Return(nil).Times(1)
	access.EXPECT().Abort().Times(1)
	access.EXPECT().InUse().Return(false).Times(1)

	assert.Nil(t, trx.Commit(), "wrong Commit")
	trx.Abort()
	assert.False(t, trx.InUse(), "wrong InUse")
}
