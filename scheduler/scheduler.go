// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scheduler - persistent deferred actions
//
// entries are kept in the deferred pool under two keys:
//
//	0x01 ++ fire time(8 bytes BE) ++ token - packed deferred record
//	0x02 ++ token                        - fire time(8 bytes BE)
//
// the first orders entries by fire time, the second allows
// cancellation by token
package scheduler

import (
	"encoding/binary"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/messagebus"
	"github.com/bitmark-inc/nameswapd/record"
	"github.com/bitmark-inc/nameswapd/storage"
)

// key prefixes inside the pool
const (
	entryPrefix = 0x01
	indexPrefix = 0x02
)

const (
	timeLength     = 8
	entryKeyLength = 1 + timeLength + record.DigestLength
	batchSize      = 100

	// DefaultInterval - polling period when not woken
	DefaultInterval = 5 * time.Second

	// WakeCommand - message bus command to check for due entries
	WakeCommand = "wake"
)

// Token - identifies a scheduled entry for cancellation
type Token = record.Digest

// Handler - performs a deferred action inside the given transaction
type Handler func(trx storage.Transaction, payload []byte) error

// Scheduler - runs deferred actions when they fall due
type Scheduler struct {
	sync.RWMutex
	log      *logger.L
	pool     storage.Handle
	begin    func() (storage.Transaction, error)
	wake     *messagebus.Queue
	handlers map[string]Handler
	interval time.Duration
	now      func() time.Time
	nonce    uint64
}

// New - create a scheduler over the deferred pool
func New(log *logger.L, pool storage.Handle, begin func() (storage.Transaction, error), wake *messagebus.Queue, interval time.Duration) *Scheduler {
	if nil == log {
		logger.Panic("scheduler: nil logger")
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		log:      log,
		pool:     pool,
		begin:    begin,
		wake:     wake,
		handlers: make(map[string]Handler),
		interval: interval,
		now:      time.Now,
	}
}

// SetClock - replace the time source
func (s *Scheduler) SetClock(now func() time.Time) {
	s.Lock()
	s.now = now
	s.Unlock()
}

// Now - current time of the scheduler's clock
func (s *Scheduler) Now() time.Time {
	s.RLock()
	defer s.RUnlock()
	return s.now()
}

// Register - set the handler for a kind of entry
func (s *Scheduler) Register(kind string, handler Handler) {
	s.Lock()
	defer s.Unlock()
	if _, ok := s.handlers[kind]; ok {
		logger.Panicf("scheduler: duplicate handler for: %q", kind)
	}
	s.handlers[kind] = handler
}

// Schedule - add an entry as part of an open transaction
func (s *Scheduler) Schedule(trx storage.Transaction, fireAt time.Time, kind string, payload []byte) (Token, error) {
	d := &record.Deferred{
		Kind:    kind,
		FireAt:  uint64(fireAt.Unix()),
		Payload: payload,
	}
	packed, err := d.Pack()
	if nil != err {
		return Token{}, err
	}

	// tokens stay unique for identical entries
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, atomic.AddUint64(&s.nonce, 1))
	token := record.NewDigest(append(append(packed, n...), timeBytes(uint64(s.Now().UnixNano()))...))

	trx.Put(s.pool, entryKey(d.FireAt, token), packed)
	trx.Put(s.pool, indexKey(token), timeBytes(d.FireAt))

	s.log.Debugf("schedule: %s  at: %d  token: %s", kind, d.FireAt, token)
	return token, nil
}

// Cancel - remove an entry that has not yet run
func (s *Scheduler) Cancel(trx storage.Transaction, token Token) error {
	buffer := trx.Get(s.pool, indexKey(token))
	if timeLength != len(buffer) {
		return fault.DeferredNotFound
	}
	trx.Delete(s.pool, entryKey(binary.BigEndian.Uint64(buffer), token))
	trx.Delete(s.pool, indexKey(token))

	s.log.Debugf("cancel: %s", token)
	return nil
}

// Wake - ask the running scheduler to check for due entries
func (s *Scheduler) Wake() {
	if nil != s.wake {
		s.wake.Send(WakeCommand)
	}
}

// Entry - a committed scheduled entry
type Entry struct {
	Token  Token  `json:"token"`
	Kind   string `json:"kind"`
	FireAt uint64 `json:"fireAt"`
}

// Pending - committed entries in fire time order
func (s *Scheduler) Pending(count int) ([]Entry, error) {
	cursor := s.pool.NewFetchCursor().Seek([]byte{entryPrefix})
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	entries := make([]Entry, 0, len(elements))
	for _, element := range elements {
		if entryKeyLength != len(element.Key) || entryPrefix != element.Key[0] {
			break
		}
		d := unpackDeferred(element.Value)
		e := Entry{
			Kind:   d.Kind,
			FireAt: d.FireAt,
		}
		copy(e.Token[:], element.Key[1+timeLength:])
		entries = append(entries, e)
	}
	return entries, nil
}

// Process - run all entries due at or before the scheduler's clock
//
// each entry runs in its own transaction; a failed entry is logged
// and dropped; returns the number of entries that ran successfully
func (s *Scheduler) Process() int {
	now := uint64(s.Now().Unix())
	succeeded := 0

	cursor := s.pool.NewFetchCursor().Seek([]byte{entryPrefix})
	for {
		elements, err := cursor.Fetch(batchSize)
		if nil != err {
			s.log.Errorf("fetch error: %s", err)
			return succeeded
		}
		if 0 == len(elements) {
			return succeeded
		}

		for _, element := range elements {
			if entryKeyLength != len(element.Key) || entryPrefix != element.Key[0] {
				return succeeded
			}
			if binary.BigEndian.Uint64(element.Key[1:1+timeLength]) > now {
				return succeeded
			}
			if s.fire(element.Key, element.Value) {
				succeeded += 1
			}
		}
	}
}

// run one entry, always removing it
func (s *Scheduler) fire(key []byte, value []byte) bool {
	var token Token
	copy(token[:], key[1+timeLength:])
	d := unpackDeferred(value)

	s.RLock()
	handler := s.handlers[d.Kind]
	s.RUnlock()

	trx, err := s.begin()
	if nil != err {
		s.log.Errorf("begin error: %s", err)
		return false
	}

	// a concurrent cancel may have removed it
	if !trx.Has(s.pool, key) {
		trx.Abort()
		return false
	}
	trx.Delete(s.pool, key)
	trx.Delete(s.pool, indexKey(token))

	if nil == handler {
		s.log.Errorf("drop: %s  token: %s  error: no handler", d.Kind, token)
		s.commit(trx)
		return false
	}

	if err := handler(trx, d.Payload); nil != err {
		trx.Abort()
		s.log.Errorf("drop: %s  token: %s  error: %s", d.Kind, token, err)
		s.drop(key, token)
		return false
	}

	if !s.commit(trx) {
		return false
	}
	s.log.Infof("ran: %s  token: %s", d.Kind, token)
	return true
}

// remove a failed entry in a fresh transaction
func (s *Scheduler) drop(key []byte, token Token) {
	trx, err := s.begin()
	if nil != err {
		s.log.Errorf("begin error: %s", err)
		return
	}
	trx.Delete(s.pool, key)
	trx.Delete(s.pool, indexKey(token))
	s.commit(trx)
}

func (s *Scheduler) commit(trx storage.Transaction) bool {
	if err := trx.Commit(); nil != err {
		s.log.Errorf("commit error: %s", err)
		return false
	}
	return true
}

// Run - background process firing due entries
func (s *Scheduler) Run(args interface{}, shutdown <-chan struct{}) {
	s.log.Info("starting…")

	var wake <-chan messagebus.Message
	if nil != s.wake {
		wake = s.wake.Chan()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
		case item := <-wake:
			s.log.Debugf("received: %s", item.Command)
		}
		if n := s.Process(); 0 != n {
			s.log.Debugf("processed: %d", n)
		}
	}

	s.log.Info("shutting down…")
}

func entryKey(fireAt uint64, token Token) []byte {
	key := make([]byte, 0, entryKeyLength)
	key = append(key, entryPrefix)
	key = append(key, timeBytes(fireAt)...)
	return append(key, token[:]...)
}

func indexKey(token Token) []byte {
	return append([]byte{indexPrefix}, token[:]...)
}

func timeBytes(t uint64) []byte {
	b := make([]byte, timeLength)
	binary.BigEndian.PutUint64(b, t)
	return b
}

func unpackDeferred(packed []byte) *record.Deferred {
	r, _, err := record.Packed(packed).Unpack()
	logger.PanicIfError("scheduler: unpack", err)
	d, ok := r.(*record.Deferred)
	if !ok {
		logger.Panicf("scheduler: not a deferred record: %T", r)
	}
	return d
}
