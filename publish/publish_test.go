// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/fixtures"
	"github.com/bitmark-inc/nameswapd/messagebus"
	"github.com/bitmark-inc/nameswapd/publish"
	"github.com/bitmark-inc/nameswapd/zmqutil"
)

const broadcastAddress = "127.0.0.1:22137"

func TestBroadcast(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "publish")
	if !assert.Nil(t, err) {
		return
	}
	defer os.RemoveAll(dir)

	conf := &publish.Configuration{
		Broadcast:  []string{broadcastAddress},
		PrivateKey: filepath.Join(dir, "publish.private"),
		PublicKey:  filepath.Join(dir, "publish.public"),
	}
	err = zmqutil.MakeKeyPair(conf.PublicKey, conf.PrivateKey)
	if !assert.Nil(t, err) {
		return
	}

	queue := &messagebus.BroadcastQueue{}

	err = publish.Initialise(conf, queue)
	if !assert.Nil(t, err, "initialise") {
		return
	}
	defer publish.Finalise()

	assert.Equal(t, fault.AlreadyInitialised, publish.Initialise(conf, queue))
	assert.Equal(t, 1, queue.Listeners())

	z85Public, z85Private, err := zmq.NewCurveKeypair()
	if !assert.Nil(t, err) {
		return
	}

	subscriber, err := zmqutil.NewSubscriber(
		[]byte(zmq.Z85decode(z85Private)),
		[]byte(zmq.Z85decode(z85Public)),
		publish.PublicKey(),
		"tcp://"+broadcastAddress,
		"message",
		100*time.Millisecond,
	)
	if !assert.Nil(t, err, "subscriber") {
		return
	}
	defer subscriber.Close()

	// PUB drops until the subscription arrives, so keep sending
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		queue.Send("message", []byte("alice"), []byte("NameSwaps: hello"))

		frames, err := subscriber.Receive()
		if nil != err {
			continue
		}
		if assert.Equal(t, 3, len(frames)) {
			assert.Equal(t, "message", string(frames[0]))
			assert.Equal(t, "alice", string(frames[1]))
			assert.Equal(t, "NameSwaps: hello", string(frames[2]))
		}
		return
	}
	t.Error("no broadcast received")
}

func TestInitialiseBadKey(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	conf := &publish.Configuration{
		Broadcast:  []string{broadcastAddress},
		PrivateKey: "/nonexistent/publish.private",
		PublicKey:  "/nonexistent/publish.public",
	}
	err := publish.Initialise(conf, &messagebus.BroadcastQueue{})
	assert.NotNil(t, err)
	assert.Equal(t, fault.NotInitialised, publish.Finalise())
}
