// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nameswapd/util"
)

func TestPackingSequence(t *testing.T) {
	buffer := util.AppendUint64(nil, 300)
	buffer = util.AppendInt64(buffer, -42)
	buffer = util.AppendString(buffer, "nameswapsfee")
	buffer = util.AppendBytes(buffer, []byte{1, 2, 3})

	u, rest, ok := util.ReadUint64(buffer)
	assert.True(t, ok, "uint64")
	assert.Equal(t, uint64(300), u, "wrong uint64")

	i, rest, ok := util.ReadInt64(rest)
	assert.True(t, ok, "int64")
	assert.Equal(t, int64(-42), i, "wrong int64")

	s, rest, ok := util.ReadString(rest, 64)
	assert.True(t, ok, "string")
	assert.Equal(t, "nameswapsfee", s, "wrong string")

	b, rest, ok := util.ReadBytes(rest, 64)
	assert.True(t, ok, "bytes")
	assert.Equal(t, []byte{1, 2, 3}, b, "wrong bytes")
	assert.Equal(t, 0, len(rest), "trailing data")
}

func TestPackingSignedRange(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 63, -64, 1 << 40, -(1 << 62), 1<<63 - 1, -1 << 63} {
		buffer := util.AppendInt64(nil, v)
		actual, rest, ok := util.ReadInt64(buffer)
		assert.True(t, ok, "decode %d", v)
		assert.Equal(t, v, actual, "round trip %d", v)
		assert.Equal(t, 0, len(rest), "trailing data for %d", v)
	}
}

func TestPackingTruncated(t *testing.T) {
	buffer := util.AppendString(nil, "longer than the buffer")

	_, _, ok := util.ReadString(buffer[:5], 64)
	assert.False(t, ok, "truncated string was accepted")

	_, _, ok = util.ReadString(buffer, 4)
	assert.False(t, ok, "over length string was accepted")

	_, _, ok = util.ReadUint64([]byte{0x80})
	assert.False(t, ok, "truncated varint was accepted")
}
