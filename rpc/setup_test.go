// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nameswapd/chain"
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/fixtures"
	marketmocks "github.com/bitmark-inc/nameswapd/market/mocks"
	"github.com/bitmark-inc/nameswapd/record"
	"github.com/bitmark-inc/nameswapd/rpc"
	"github.com/bitmark-inc/nameswapd/rpc/listeners"
	"github.com/bitmark-inc/nameswapd/rpc/node"
	"github.com/bitmark-inc/nameswapd/rpc/server"
)

func TestInitialise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "rpc")
	if !assert.Nil(t, err) {
		return
	}
	defer os.RemoveAll(dir)

	cer, key := fixtures.Certificate()
	conf := &listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)},
		Certificate:        filepath.Join(dir, "rpc.crt"),
		PrivateKey:         filepath.Join(dir, "rpc.key"),
	}
	_ = ioutil.WriteFile(conf.Certificate, []byte(cer), 0600)
	_ = ioutil.WriteFile(conf.PrivateKey, []byte(key), 0600)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := marketmocks.NewMockMarket(ctl)
	m.EXPECT().Stats().Return([]record.Stats{}, nil).Times(1)

	services := &server.Services{
		Chain:   chain.Local,
		Account: "nameswaps",
		Market:  m,
	}

	err = rpc.Initialise(conf, "2.0", services)
	if !assert.Nil(t, err, "wrong Initialise") {
		return
	}
	assert.Equal(t, fault.AlreadyInitialised, rpc.Initialise(conf, "2.0", services), "wrong second Initialise")

	conn, err := tls.Dial("tcp", conf.Listen[0], &tls.Config{InsecureSkipVerify: true})
	if assert.Nil(t, err, "dial") {
		client := jsonrpc.NewClient(conn)
		var info node.InfoReply
		err = client.Call("Node.Info", &node.InfoArguments{}, &info)
		assert.Nil(t, err, "wrong Node.Info")
		assert.Equal(t, "2.0", info.Version, "wrong version")
		assert.Equal(t, uint64(1), info.RPCs, "wrong connection count")
		client.Close()
	}

	assert.Nil(t, rpc.Finalise(), "wrong Finalise")
	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "wrong second Finalise")
}
