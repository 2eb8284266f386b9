// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/nameswapd/messagebus"
)

func TestQueue(t *testing.T) {

	items := []messagebus.Message{
		{
			Command:    "c1",
			Parameters: nil,
		},
		{
			Command:    "c2",
			Parameters: nil,
		},
		{
			Command:    "c3",
			Parameters: nil,
		},
	}

	for _, item := range items {
		if !messagebus.Bus.TestQueue.Send(item.Command) {
			t.Errorf("send failed: %q", item.Command)
		}
	}

	queue := messagebus.Bus.TestQueue.Chan()
	for _, item := range items {
		received := <-queue
		if received.Command != item.Command {
			t.Errorf("actual: %q  expected: %q", received.Command, item.Command)
		}
	}
}

func TestBroadcast(t *testing.T) {

	items := []messagebus.Message{
		{
			Command:    "message",
			Parameters: [][]byte{[]byte("alice"), []byte("listed")},
		},
		{
			Command:    "message",
			Parameters: [][]byte{[]byte("bob"), []byte("bid")},
		},
		{
			Command:    "message",
			Parameters: [][]byte{[]byte("carl"), []byte("bought")},
		},
	}

	q := &messagebus.BroadcastQueue{}

	// nothing listening so these messages should be dropped
	for _, item := range items {
		q.Send("ignored:"+item.Command, item.Parameters...)
	}

	// create some listeners
	const listeners = 5

	var l [listeners]int
	var wg sync.WaitGroup

	channels := make([]<-chan messagebus.Message, listeners)
	for i := 0; i < listeners; i += 1 {
		channels[i] = q.Chan(0)
	}
	if listeners != q.Listeners() {
		t.Fatalf("listeners: %d  expected: %d", q.Listeners(), listeners)
	}

	for i := 0; i < listeners; i += 1 {
		wg.Add(1)
		go func(n int, queue <-chan messagebus.Message) {
			for _, item := range items {
				received := <-queue
				if received.Command != item.Command || string(received.Parameters[0]) != string(item.Parameters[0]) {
					t.Errorf("actual: %q  expected: %q", received.Parameters[0], item.Parameters[0])
				} else {
					l[n] += 1
				}
			}
			wg.Done()
		}(i, channels[i])
	}

	// all listening so these messages should be received
	for _, item := range items {
		q.Send(item.Command, item.Parameters...)
	}

	// wait for completion
	wg.Wait()
	for i, n := range l {
		if n != len(items) {
			t.Errorf("listener[%d] received: %d  expected: %d", i, n, len(items))
		}
	}

	q.Release()
	if 0 != q.Listeners() {
		t.Errorf("listeners remain after release: %d", q.Listeners())
	}
	for i, c := range channels {
		if _, ok := <-c; ok {
			t.Errorf("listener[%d] channel not closed", i)
		}
	}
}

func TestBroadcastFullListener(t *testing.T) {
	q := &messagebus.BroadcastQueue{}
	queue := q.Chan(1)

	q.Send("first")
	q.Send("second")

	select {
	case received := <-queue:
		if "first" != received.Command {
			t.Errorf("actual: %q  expected: %q", received.Command, "first")
		}
	case <-time.After(time.Second):
		t.Fatal("nothing received")
	}

	if 1 != q.Dropped() {
		t.Errorf("dropped: %d  expected: 1", q.Dropped())
	}
}

func TestNewQueue(t *testing.T) {
	q := messagebus.NewQueue(1)
	if !q.Send("one") {
		t.Fatal("first send failed")
	}
	if q.Send("two") {
		t.Error("send to full queue succeeded")
	}

	m := <-q.Chan()
	if "one" != m.Command {
		t.Errorf("actual: %q  expected: %q", m.Command, "one")
	}
}
