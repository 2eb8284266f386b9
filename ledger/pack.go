// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/nameswapd/currency"
	"github.com/bitmark-inc/nameswapd/fault"
	"github.com/bitmark-inc/nameswapd/util"
)

const (
	maxNameLength  = 64
	maxKeyLength   = 128
	maxDataLength  = 4096
	maxWeightCount = 64
)

func packAuthority(a Authority) []byte {
	buffer := util.AppendUint64(nil, uint64(a.Threshold))
	buffer = util.AppendUint64(buffer, uint64(len(a.Keys)))
	for _, k := range a.Keys {
		buffer = util.AppendString(buffer, k.Key)
		buffer = util.AppendUint64(buffer, uint64(k.Weight))
	}
	buffer = util.AppendUint64(buffer, uint64(len(a.Accounts)))
	for _, p := range a.Accounts {
		buffer = util.AppendString(buffer, p.Permission.Actor)
		buffer = util.AppendString(buffer, p.Permission.Permission)
		buffer = util.AppendUint64(buffer, uint64(p.Weight))
	}
	return buffer
}

func unpackAuthority(buffer []byte) (Authority, error) {
	a := Authority{}

	threshold, rest, ok := util.ReadUint64(buffer)
	if !ok {
		return a, fault.RecordTruncated
	}
	a.Threshold = uint32(threshold)

	n, rest, ok := util.ReadUint64(rest)
	if !ok || n > maxWeightCount {
		return a, fault.NotRecord
	}
	for i := uint64(0); i < n; i += 1 {
		k := KeyWeight{}
		weight := uint64(0)
		if k.Key, rest, ok = util.ReadString(rest, maxKeyLength); !ok {
			return a, fault.RecordTruncated
		}
		if weight, rest, ok = util.ReadUint64(rest); !ok {
			return a, fault.RecordTruncated
		}
		k.Weight = uint16(weight)
		a.Keys = append(a.Keys, k)
	}

	n, rest, ok = util.ReadUint64(rest)
	if !ok || n > maxWeightCount {
		return a, fault.NotRecord
	}
	for i := uint64(0); i < n; i += 1 {
		p := PermissionLevelWeight{}
		weight := uint64(0)
		if p.Permission.Actor, rest, ok = util.ReadString(rest, maxNameLength); !ok {
			return a, fault.RecordTruncated
		}
		if p.Permission.Permission, rest, ok = util.ReadString(rest, maxNameLength); !ok {
			return a, fault.RecordTruncated
		}
		if weight, rest, ok = util.ReadUint64(rest); !ok {
			return a, fault.RecordTruncated
		}
		p.Weight = uint16(weight)
		a.Accounts = append(a.Accounts, p)
	}
	return a, nil
}

func packAmount(buffer []byte, amount currency.Amount) []byte {
	buffer = util.AppendUint64(buffer, uint64(amount.Currency))
	return util.AppendInt64(buffer, amount.Units)
}

func unpackAmount(buffer []byte) (currency.Amount, []byte, error) {
	c, rest, ok := util.ReadUint64(buffer)
	if !ok {
		return currency.Amount{}, nil, fault.RecordTruncated
	}
	if c > uint64(currency.Last) {
		return currency.Amount{}, nil, fault.InvalidSymbol
	}
	units, rest, ok := util.ReadInt64(rest)
	if !ok {
		return currency.Amount{}, nil, fault.RecordTruncated
	}
	return currency.Amount{Units: units, Currency: currency.Currency(c)}, rest, nil
}

func packResources(r Resources) []byte {
	buffer := packAmount(nil, r.RAM)
	buffer = packAmount(buffer, r.Net)
	return packAmount(buffer, r.Cpu)
}

func unpackResources(buffer []byte) (Resources, error) {
	r := Resources{}
	var err error
	if r.RAM, buffer, err = unpackAmount(buffer); nil != err {
		return r, err
	}
	if r.Net, buffer, err = unpackAmount(buffer); nil != err {
		return r, err
	}
	r.Cpu, _, err = unpackAmount(buffer)
	return r, err
}

func packDelegation(d Delegation) []byte {
	buffer := util.AppendString(nil, d.From)
	buffer = util.AppendString(buffer, d.Receiver)
	buffer = packAmount(buffer, d.Net)
	return packAmount(buffer, d.Cpu)
}

func unpackDelegation(buffer []byte) (Delegation, error) {
	d := Delegation{}
	ok := false
	if d.From, buffer, ok = util.ReadString(buffer, maxNameLength); !ok {
		return d, fault.RecordTruncated
	}
	if d.Receiver, buffer, ok = util.ReadString(buffer, maxNameLength); !ok {
		return d, fault.RecordTruncated
	}
	var err error
	if d.Net, buffer, err = unpackAmount(buffer); nil != err {
		return d, err
	}
	d.Cpu, _, err = unpackAmount(buffer)
	return d, err
}

func packEvent(e Event) []byte {
	buffer := util.AppendUint64(nil, e.Sequence)
	buffer = util.AppendString(buffer, string(e.Kind))
	buffer = util.AppendString(buffer, e.Account)
	return util.AppendString(buffer, e.Data)
}

func unpackEvent(buffer []byte) (Event, error) {
	e := Event{}
	ok := false
	kind := ""
	if e.Sequence, buffer, ok = util.ReadUint64(buffer); !ok {
		return e, fault.RecordTruncated
	}
	if kind, buffer, ok = util.ReadString(buffer, maxNameLength); !ok {
		return e, fault.RecordTruncated
	}
	e.Kind = EventKind(kind)
	if e.Account, buffer, ok = util.ReadString(buffer, maxNameLength); !ok {
		return e, fault.RecordTruncated
	}
	if e.Data, _, ok = util.ReadString(buffer, maxDataLength); !ok {
		return e, fault.RecordTruncated
	}
	return e, nil
}
