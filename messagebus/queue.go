// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
	"sync/atomic"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a command and its parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - single consumer queue
type Queue struct {
	c chan Message
}

// BroadcastQueue - every listener receives a copy of each message
type BroadcastQueue struct {
	dropped uint64 // first for atomic alignment
	sync.RWMutex
	listeners []chan Message
}

// the exported message queues
type busses struct {
	Notify    *BroadcastQueue // marketplace notices for subscribers
	Scheduler *Queue          // wake the deferred action runner
	TestQueue *Queue          // for testing use
}

// Bus - all available message queues
var Bus = busses{
	Notify:    &BroadcastQueue{},
	Scheduler: &Queue{c: make(chan Message, queueSize)},
	TestQueue: &Queue{c: make(chan Message, queueSize)},
}

// NewQueue - a queue holding up to size messages
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = queueSize
	}
	return &Queue{c: make(chan Message, size)}
}

// Send - queue a message, drops it if the queue is full
func (queue *Queue) Send(command string, parameters ...[]byte) bool {
	select {
	case queue.c <- Message{Command: command, Parameters: parameters}:
		return true
	default:
		return false
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Send - deliver a message to all current listeners
//
// a listener whose buffer is full misses the message
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{Command: command, Parameters: parameters}

	queue.RLock()
	defer queue.RUnlock()

	for _, l := range queue.listeners {
		select {
		case l <- m:
		default:
			atomic.AddUint64(&queue.dropped, 1)
		}
	}
}

// Chan - register a new listener
//
// a size of zero or less selects the default buffer size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = queueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()
	return c
}

// Release - close and forget all listeners
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	defer queue.Unlock()

	for _, l := range queue.listeners {
		close(l)
	}
	queue.listeners = nil
}

// Listeners - number of registered listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.RLock()
	defer queue.RUnlock()
	return len(queue.listeners)
}

// Dropped - count of messages a listener missed
func (queue *BroadcastQueue) Dropped() uint64 {
	return atomic.LoadUint64(&queue.dropped)
}
