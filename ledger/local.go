// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/storage"
)

const maxMemoLength = 256

var eventSequenceKey = []byte("events")

// Handles - the pools holding local ledger state
type Handles struct {
	Balances     storage.Handle
	Permissions  storage.Handle
	Resources    storage.Handle
	Delegations  storage.Handle
	Invalidation storage.Handle
	Events       storage.Handle
	Sequence     storage.Handle
}

// Local - a single node ledger kept in the marketplace database
type Local struct {
	log     *logger.L
	symbol  currency.Currency
	handles Handles
}

// NewLocal - create a ledger for the native currency
func NewLocal(log *logger.L, symbol currency.Currency, handles Handles) *Local {
	return &Local{
		log:     log,
		symbol:  symbol,
		handles: handles,
	}
}

// Symbol - native currency
func (l *Local) Symbol() currency.Currency {
	return l.symbol
}

// Exists - an account exists once it has an owner permission
func (l *Local) Exists(trx storage.Transaction, account string) bool {
	return trx.Has(l.handles.Permissions, permissionKey(account, Owner))
}

// Authority - the stored authority of account@permission
func (l *Local) Authority(trx storage.Transaction, account string, permission string) (Authority, error) {
	buffer := trx.Get(l.handles.Permissions, permissionKey(account, permission))
	if nil == buffer {
		if !l.Exists(trx, account) {
			return Authority{}, fault.AccountNotFound
		}
		return Authority{}, fault.PermissionNotFound
	}
	return unpackAuthority(buffer)
}

// Satisfies - the declared authorization meets account@permission
//
// a declared level stands for a verified signature so it only counts
// where the stored authority holds keys; account weights are followed
// to a limited depth and owner always satisfies active
func (l *Local) Satisfies(trx storage.Transaction, auth Authorization, account string, permission string) bool {
	return l.satisfies(trx, auth, account, permission, 0)
}

func (l *Local) satisfies(trx storage.Transaction, auth Authorization, account string, permission string, depth int) bool {
	if depth > maxAuthorityDepth {
		return false
	}

	authorities := []string{permission}
	if Owner != permission {
		authorities = append(authorities, Owner)
	}

	for _, p := range authorities {
		a, err := l.Authority(trx, account, p)
		if nil != err {
			continue
		}
		if 0 != len(a.Keys) && auth.declares(account, p) {
			return true
		}
		weight := uint64(0)
		for _, w := range a.Accounts {
			if l.satisfies(trx, auth, w.Permission.Actor, w.Permission.Permission, depth+1) {
				weight += uint64(w.Weight)
			}
		}
		if weight >= uint64(a.Threshold) {
			return true
		}
	}
	return false
}

// Balance - current holding of an account
func (l *Local) Balance(trx storage.Transaction, account string) currency.Amount {
	buffer := trx.Get(l.handles.Balances, []byte(account))
	if nil == buffer {
		return currency.Amount{Currency: l.symbol}
	}
	amount, _, err := unpackAmount(buffer)
	if nil != err {
		logger.Panicf("ledger: corrupt balance for: %q  error: %s", account, err)
	}
	return amount
}

// CreateAccount - genesis account with no creator
func (l *Local) CreateAccount(trx storage.Transaction, name string, owner Authority, active Authority) error {
	if !ValidName(name) {
		return fault.InvalidResource
	}
	if l.Exists(trx, name) {
		return fault.AccountAlreadyExists
	}
	if err := owner.Validate(); nil != err {
		return err
	}
	if err := active.Validate(); nil != err {
		return err
	}
	trx.Put(l.handles.Permissions, permissionKey(name, Owner), packAuthority(owner))
	trx.Put(l.handles.Permissions, permissionKey(name, Active), packAuthority(active))
	return l.event(trx, EventNewAccount, name, fmt.Sprintf("owner: %s active: %s", owner, active))
}

// Credit - issue new currency to an account
func (l *Local) Credit(trx storage.Transaction, account string, amount currency.Amount) error {
	if err := l.checkAmount(amount); nil != err {
		return err
	}
	if !l.Exists(trx, account) {
		return fault.AccountNotFound
	}
	return l.adjust(trx, account, amount.Units)
}

// Transfer - move currency between accounts
func (l *Local) Transfer(trx storage.Transaction, auth Authorization, from string, to string, amount currency.Amount, memo string) error {
	if !l.Satisfies(trx, auth, from, Active) {
		return fault.Unauthorized
	}
	if err := l.checkAmount(amount); nil != err {
		return err
	}
	if len(memo) > maxMemoLength {
		return fault.MessageTooLong
	}
	if from == to {
		return fault.InvalidPayee
	}
	if !l.Exists(trx, to) {
		return fault.AccountNotFound
	}
	if err := l.adjust(trx, from, -amount.Units); nil != err {
		return err
	}
	if err := l.adjust(trx, to, amount.Units); nil != err {
		return err
	}
	l.log.Debugf("transfer: %s → %s  %s  memo: %q", from, to, amount, memo)
	return l.event(trx, EventTransfer, from, fmt.Sprintf("to: %s quantity: %s memo: %s", to, amount, memo))
}

// InvalidateProposals - make pending multi-party proposals from the account unusable
func (l *Local) InvalidateProposals(trx storage.Transaction, auth Authorization, account string) error {
	if !l.Satisfies(trx, auth, account, Owner) {
		return fault.Unauthorized
	}
	count := uint64(0)
	if buffer := trx.Get(l.handles.Invalidation, []byte(account)); 8 == len(buffer) {
		count = binary.BigEndian.Uint64(buffer)
	}
	trx.Put(l.handles.Invalidation, []byte(account), uint64Bytes(count+1))
	return l.event(trx, EventInvalidate, account, fmt.Sprintf("count: %d", count+1))
}

// CustodyTransfer - replace active then owner authority
func (l *Local) CustodyTransfer(trx storage.Transaction, auth Authorization, account string, active Authority, owner Authority) error {
	if !l.Exists(trx, account) {
		return fault.AccountNotFound
	}
	if !l.Satisfies(trx, auth, account, Owner) {
		return fault.Unauthorized
	}
	if err := active.Validate(); nil != err {
		return err
	}
	if err := owner.Validate(); nil != err {
		return err
	}

	trx.Put(l.handles.Permissions, permissionKey(account, Active), packAuthority(active))
	if err := l.event(trx, EventUpdateAuth, account, fmt.Sprintf("%s: %s", Active, active)); nil != err {
		return err
	}
	trx.Put(l.handles.Permissions, permissionKey(account, Owner), packAuthority(owner))
	return l.event(trx, EventUpdateAuth, account, fmt.Sprintf("%s: %s", Owner, owner))
}

// NewAccount - create an account paid for by the creator
func (l *Local) NewAccount(trx storage.Transaction, auth Authorization, creator string, name string, owner Authority, active Authority) error {
	if !l.Satisfies(trx, auth, creator, Active) {
		return fault.Unauthorized
	}
	return l.CreateAccount(trx, name, owner, active)
}

// BuyRAM - payer buys storage capacity for the receiver
func (l *Local) BuyRAM(trx storage.Transaction, auth Authorization, payer string, receiver string, amount currency.Amount) error {
	if !l.Satisfies(trx, auth, payer, Active) {
		return fault.Unauthorized
	}
	if err := l.checkAmount(amount); nil != err {
		return err
	}
	if !l.Exists(trx, receiver) {
		return fault.AccountNotFound
	}
	if err := l.adjust(trx, payer, -amount.Units); nil != err {
		return err
	}

	r := l.resources(trx, receiver)
	r.RAM.Units += amount.Units
	trx.Put(l.handles.Resources, []byte(receiver), packResources(r))
	return l.event(trx, EventBuyRAM, payer, fmt.Sprintf("receiver: %s quantity: %s", receiver, amount))
}

// Delegate - stake bandwidth from one account for another
func (l *Local) Delegate(trx storage.Transaction, auth Authorization, from string, receiver string, net currency.Amount, cpu currency.Amount) error {
	if !l.Satisfies(trx, auth, from, Active) {
		return fault.Unauthorized
	}
	if err := l.checkStake(net, cpu); nil != err {
		return err
	}
	if !l.Exists(trx, receiver) {
		return fault.AccountNotFound
	}
	if err := l.adjust(trx, from, -(net.Units + cpu.Units)); nil != err {
		return err
	}

	d, _ := l.Delegation(trx, from, receiver)
	d.Net.Units += net.Units
	d.Cpu.Units += cpu.Units
	trx.Put(l.handles.Delegations, delegationKey(from, receiver), packDelegation(d))

	r := l.resources(trx, receiver)
	r.Net.Units += net.Units
	r.Cpu.Units += cpu.Units
	trx.Put(l.handles.Resources, []byte(receiver), packResources(r))

	return l.event(trx, EventDelegate, from, fmt.Sprintf("receiver: %s net: %s cpu: %s", receiver, net, cpu))
}

// Undelegate - return staked bandwidth to its owner
func (l *Local) Undelegate(trx storage.Transaction, auth Authorization, from string, receiver string, net currency.Amount, cpu currency.Amount) error {
	if !l.Satisfies(trx, auth, from, Active) {
		return fault.Unauthorized
	}
	if err := l.checkStake(net, cpu); nil != err {
		return err
	}
	d, found := l.Delegation(trx, from, receiver)
	if !found {
		return fault.DelegationNotFound
	}
	if d.Net.Units < net.Units || d.Cpu.Units < cpu.Units {
		return fault.InsufficientDelegation
	}

	d.Net.Units -= net.Units
	d.Cpu.Units -= cpu.Units
	if d.Net.IsZero() && d.Cpu.IsZero() {
		trx.Delete(l.handles.Delegations, delegationKey(from, receiver))
	} else {
		trx.Put(l.handles.Delegations, delegationKey(from, receiver), packDelegation(d))
	}

	r := l.resources(trx, receiver)
	r.Net.Units -= net.Units
	r.Cpu.Units -= cpu.Units
	trx.Put(l.handles.Resources, []byte(receiver), packResources(r))

	if err := l.adjust(trx, from, net.Units+cpu.Units); nil != err {
		return err
	}
	return l.event(trx, EventUndelegate, from, fmt.Sprintf("receiver: %s net: %s cpu: %s", receiver, net, cpu))
}

// Notify - record a message for a recipient
func (l *Local) Notify(trx storage.Transaction, recipient string, message string) error {
	return l.event(trx, EventMessage, recipient, message)
}

// Resources - staked capacity of an account
func (l *Local) Resources(trx storage.Transaction, account string) Resources {
	return l.resources(trx, account)
}

// Delegation - bandwidth staked by from for receiver
func (l *Local) Delegation(trx storage.Transaction, from string, receiver string) (Delegation, bool) {
	buffer := trx.Get(l.handles.Delegations, delegationKey(from, receiver))
	if nil == buffer {
		return Delegation{
			From:     from,
			Receiver: receiver,
			Net:      currency.Amount{Currency: l.symbol},
			Cpu:      currency.Amount{Currency: l.symbol},
		}, false
	}
	d, err := unpackDelegation(buffer)
	if nil != err {
		logger.Panicf("ledger: corrupt delegation: %s → %s  error: %s", from, receiver, err)
	}
	return d, true
}

// Events - read committed events starting from a sequence number
func (l *Local) Events(start uint64, count int) ([]Event, error) {
	elements, err := l.handles.Events.NewFetchCursor().Seek(uint64Bytes(start)).Fetch(count)
	if nil != err {
		return nil, err
	}
	events := make([]Event, 0, len(elements))
	for _, e := range elements {
		event, err := unpackEvent(e.Value)
		if nil != err {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func (l *Local) resources(trx storage.Transaction, account string) Resources {
	buffer := trx.Get(l.handles.Resources, []byte(account))
	if nil == buffer {
		zero := currency.Amount{Currency: l.symbol}
		return Resources{RAM: zero, Net: zero, Cpu: zero}
	}
	r, err := unpackResources(buffer)
	if nil != err {
		logger.Panicf("ledger: corrupt resources for: %q  error: %s", account, err)
	}
	return r
}

func (l *Local) checkAmount(amount currency.Amount) error {
	if amount.Currency != l.symbol {
		return fault.InvalidSymbol
	}
	if !amount.IsValid() || amount.Units <= 0 {
		return fault.InvalidAmount
	}
	return nil
}

// bandwidth amounts may be zero but not both
func (l *Local) checkStake(net currency.Amount, cpu currency.Amount) error {
	for _, a := range []currency.Amount{net, cpu} {
		if a.Currency != l.symbol {
			return fault.InvalidSymbol
		}
		if !a.IsValid() || a.Units < 0 {
			return fault.InvalidAmount
		}
	}
	if net.IsZero() && cpu.IsZero() {
		return fault.InvalidAmount
	}
	return nil
}

// add a signed quantity to a balance
func (l *Local) adjust(trx storage.Transaction, account string, units int64) error {
	balance := l.Balance(trx, account)
	balance.Units += units
	if balance.Units < 0 {
		return fault.InsufficientFunds
	}
	if !balance.IsValid() {
		return fault.AmountOverflow
	}
	trx.Put(l.handles.Balances, []byte(account), packAmount(nil, balance))
	return nil
}

// append to the event log
func (l *Local) event(trx storage.Transaction, kind EventKind, account string, data string) error {
	if len(data) > maxDataLength {
		data = data[:maxDataLength]
	}

	sequence := uint64(0)
	if buffer := trx.Get(l.handles.Sequence, eventSequenceKey); 8 == len(buffer) {
		sequence = binary.BigEndian.Uint64(buffer)
	}

	e := Event{
		Sequence: sequence,
		Kind:     kind,
		Account:  account,
		Data:     data,
	}
	trx.Put(l.handles.Events, uint64Bytes(sequence), packEvent(e))
	trx.Put(l.handles.Sequence, eventSequenceKey, uint64Bytes(sequence+1))
	return nil
}

func permissionKey(account string, permission string) []byte {
	return []byte(account + "\x00" + permission)
}

func delegationKey(from string, receiver string) []byte {
	return []byte(from + "\x00" + receiver)
}

func uint64Bytes(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}
