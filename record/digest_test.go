// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/record"
)

func TestDigest(t *testing.T) {
	// SHA3-256 of the empty string
	expected := "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"

	d := record.NewDigest([]byte{})
	assert.Equal(t, expected, d.String(), "string")
	assert.Equal(t, "<SHA3-256:"+expected+">", fmt.Sprintf("%#v", d), "go string")

	text, err := d.MarshalText()
	assert.Nil(t, err, "marshal")

	var d2 record.Digest
	err = d2.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, d, d2, "round trip")

	assert.Equal(t, fault.InvalidCursor, d2.UnmarshalText([]byte("abcd")), "short text")

	var d3 record.Digest
	assert.Nil(t, record.DigestFromBytes(&d3, d[:]), "from bytes")
	assert.Equal(t, d, d3, "from bytes value")
	assert.Equal(t, fault.InvalidCursor, record.DigestFromBytes(&d3, d[:5]), "short bytes")
}

func TestPackedDigest(t *testing.T) {
	p, err := (&record.Referrer{Name: "ref", Account: "alice"}).Pack()
	assert.Nil(t, err, "pack")
	assert.Equal(t, record.NewDigest(p), p.Digest(), "packed digest")
}
