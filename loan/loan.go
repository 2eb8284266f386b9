// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package loan - temporary bandwidth lent by the contract
//
// each loan delegates net and cpu from the contract to a receiver and
// schedules the matching undelegation after the loan period; loans
// are limited per receiver by a cooldown and overall by a count in a
// fixed window
package loan

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/record"
	"github.com/bitmark-inc/nameswapd/scheduler"
	"github.com/bitmark-inc/nameswapd/storage"
)

// UnlendKind - scheduler entry kind for the unwind
const UnlendKind = "unlend"

// the window record has a key no account name can have
var windowKey = []byte{0x00}

// Configuration - loan limits, times in seconds and amounts in native units
type Configuration struct {
	Period       uint64 `gluamapper:"period" json:"period"`
	Cooldown     uint64 `gluamapper:"cooldown" json:"cooldown"`
	Window       uint64 `gluamapper:"window" json:"window"`
	MaxPerWindow uint64 `gluamapper:"max_per_window" json:"max_per_window"`
	MaxNet       int64  `gluamapper:"max_net" json:"max_net"`
	MaxCpu       int64  `gluamapper:"max_cpu" json:"max_cpu"`
}

// Validate - check configuration values
func (c *Configuration) Validate() error {
	if 0 == c.Period {
		return fmt.Errorf("loan period must be positive")
	}
	if 0 == c.Window || 0 == c.MaxPerWindow {
		return fmt.Errorf("loan window: %d and count: %d must be positive", c.Window, c.MaxPerWindow)
	}
	if c.MaxNet < 0 || c.MaxCpu < 0 || 0 == c.MaxNet+c.MaxCpu {
		return fmt.Errorf("loan maximum net: %d  cpu: %d invalid", c.MaxNet, c.MaxCpu)
	}
	return nil
}

// Loans - lending operations
type Loans interface {
	Lend(auth ledger.Authorization, receiver string, net currency.Amount, cpu currency.Amount) (*record.Loan, error)
	Recall(auth ledger.Authorization, receiver string) error
	History(receiver string) (*record.Loan, error)
}

// Lender - makes and unwinds loans
type Lender struct {
	log       *logger.L
	conf      Configuration
	account   string
	self      ledger.Authorization
	pool      storage.Handle
	begin     func() (storage.Transaction, error)
	ledger    ledger.Ledger
	scheduler *scheduler.Scheduler
}

// New - create a lender and register its unwind with the scheduler
func New(log *logger.L, conf Configuration, account string, pool storage.Handle, begin func() (storage.Transaction, error), l ledger.Ledger, s *scheduler.Scheduler) (*Lender, error) {
	if nil == log {
		logger.Panic("loan: nil logger")
	}
	if err := conf.Validate(); nil != err {
		return nil, err
	}
	lender := &Lender{
		log:       log,
		conf:      conf,
		account:   account,
		self:      ledger.Of(account, ledger.Owner),
		pool:      pool,
		begin:     begin,
		ledger:    l,
		scheduler: s,
	}
	s.Register(UnlendKind, lender.unlend)
	return lender, nil
}

// Lend - delegate bandwidth to a receiver for the loan period
func (l *Lender) Lend(auth ledger.Authorization, receiver string, net currency.Amount, cpu currency.Amount) (*record.Loan, error) {
	trx, err := l.begin()
	if nil != err {
		return nil, err
	}

	loan, err := l.lend(trx, auth, receiver, net, cpu)
	if nil != err {
		trx.Abort()
		l.log.Infof("lend: %s  rejected: %s", receiver, err)
		return nil, err
	}
	if err := trx.Commit(); nil != err {
		l.log.Errorf("lend: %s  commit error: %s", receiver, err)
		return nil, err
	}

	l.log.Infof("lend: %s  net: %s  cpu: %s", receiver, net, cpu)
	return loan, nil
}

func (l *Lender) lend(trx storage.Transaction, auth ledger.Authorization, receiver string, net currency.Amount, cpu currency.Amount) (*record.Loan, error) {
	if !l.ledger.Satisfies(trx, auth, l.account, ledger.Active) {
		return nil, fault.Unauthorized
	}
	if receiver == l.account {
		return nil, fault.InvalidPayee
	}
	if !l.ledger.Exists(trx, receiver) {
		return nil, fault.AccountNotFound
	}
	if net.Units > l.conf.MaxNet || cpu.Units > l.conf.MaxCpu {
		return nil, fault.InvalidLoan
	}

	now := uint64(l.scheduler.Now().Unix())

	if previous := l.get(trx, receiver); nil != previous {
		if now < previous.Time+l.conf.Cooldown {
			return nil, fault.LoanRateLimited
		}
	}

	window := l.window(trx)
	if now >= window.Start+l.conf.Window {
		window.Start = now
		window.Count = 0
	}
	if window.Count >= l.conf.MaxPerWindow {
		return nil, fault.LoanRateLimited
	}
	window.Count += 1

	if err := l.ledger.Delegate(trx, l.self, l.account, receiver, net, cpu); nil != err {
		return nil, err
	}

	loan := &record.Loan{
		Receiver: receiver,
		Net:      net,
		Cpu:      cpu,
		Time:     now,
	}
	payload, err := loan.Pack()
	if nil != err {
		return nil, err
	}

	fireAt := time.Unix(int64(now+l.conf.Period), 0)
	token, err := l.scheduler.Schedule(trx, fireAt, UnlendKind, payload)
	if nil != err {
		return nil, err
	}
	loan.Token = token[:]

	if err := l.put(trx, receiver, loan); nil != err {
		return nil, err
	}
	packed, err := window.Pack()
	if nil != err {
		return nil, err
	}
	trx.Put(l.pool, windowKey, packed)

	return loan, nil
}

// Recall - end a loan early, cancelling its scheduled unwind
func (l *Lender) Recall(auth ledger.Authorization, receiver string) error {
	trx, err := l.begin()
	if nil != err {
		return err
	}

	err = l.recall(trx, auth, receiver)
	if nil != err {
		trx.Abort()
		l.log.Infof("recall: %s  rejected: %s", receiver, err)
		return err
	}
	if err := trx.Commit(); nil != err {
		l.log.Errorf("recall: %s  commit error: %s", receiver, err)
		return err
	}
	l.log.Infof("recall: %s", receiver)
	return nil
}

func (l *Lender) recall(trx storage.Transaction, auth ledger.Authorization, receiver string) error {
	if !l.ledger.Satisfies(trx, auth, l.account, ledger.Active) {
		return fault.Unauthorized
	}
	loan := l.get(trx, receiver)
	if nil == loan {
		return fault.LoanNotFound
	}
	if 0 == len(loan.Token) {
		return fault.DeferredNotFound
	}

	var token scheduler.Token
	if err := record.DigestFromBytes(&token, loan.Token); nil != err {
		return err
	}
	if err := l.scheduler.Cancel(trx, token); nil != err {
		return err
	}
	if err := l.ledger.Undelegate(trx, l.self, l.account, receiver, loan.Net, loan.Cpu); nil != err {
		return err
	}

	loan.Token = nil
	return l.put(trx, receiver, loan)
}

// History - most recent loan to a receiver
func (l *Lender) History(receiver string) (*record.Loan, error) {
	packed := l.pool.Get([]byte(receiver))
	if nil == packed {
		return nil, fault.LoanNotFound
	}
	return unpackLoan(packed), nil
}

// scheduled unwind, runs in the scheduler's transaction
func (l *Lender) unlend(trx storage.Transaction, payload []byte) error {
	r, _, err := record.Packed(payload).Unpack()
	if nil != err {
		return err
	}
	loan, ok := r.(*record.Loan)
	if !ok {
		return fault.NotRecord
	}

	if err := l.ledger.Undelegate(trx, l.self, l.account, loan.Receiver, loan.Net, loan.Cpu); nil != err {
		return err
	}

	// keep the history entry for the cooldown
	if current := l.get(trx, loan.Receiver); nil != current && current.Time == loan.Time {
		current.Token = nil
		if err := l.put(trx, loan.Receiver, current); nil != err {
			return err
		}
	}
	l.log.Infof("unlend: %s  net: %s  cpu: %s", loan.Receiver, loan.Net, loan.Cpu)
	return nil
}

func (l *Lender) get(trx storage.Transaction, receiver string) *record.Loan {
	packed := trx.Get(l.pool, []byte(receiver))
	if nil == packed {
		return nil
	}
	return unpackLoan(packed)
}

func (l *Lender) put(trx storage.Transaction, receiver string, loan *record.Loan) error {
	packed, err := loan.Pack()
	if nil != err {
		return err
	}
	trx.Put(l.pool, []byte(receiver), packed)
	return nil
}

func (l *Lender) window(trx storage.Transaction) *record.LoanWindow {
	packed := trx.Get(l.pool, windowKey)
	if nil == packed {
		return &record.LoanWindow{}
	}
	r, _, err := record.Packed(packed).Unpack()
	logger.PanicIfError("loan: unpack window", err)
	return r.(*record.LoanWindow)
}

func unpackLoan(packed []byte) *record.Loan {
	r, _, err := record.Packed(packed).Unpack()
	logger.PanicIfError("loan: unpack", err)
	loan, ok := r.(*record.Loan)
	if !ok {
		logger.Panicf("loan: not a loan record: %T", r)
	}
	return loan
}
