// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/nameswapd/fault"
)

// well known permission names
const (
	Owner  = "owner"
	Active = "active"
)

// NoKey - key text meaning "use an account authority instead"
const NoKey = "None"

// maximum depth of account authority references
const maxAuthorityDepth = 4

// PermissionLevel - actor@permission
type PermissionLevel struct {
	Actor      string `json:"actor"`
	Permission string `json:"permission"`
}

// String - actor@permission
func (p PermissionLevel) String() string {
	return p.Actor + "@" + p.Permission
}

// ParsePermissionLevel - convert "actor@permission", permission defaults to active
func ParsePermissionLevel(s string) (PermissionLevel, error) {
	parts := strings.SplitN(s, "@", 2)
	if !ValidName(parts[0]) {
		return PermissionLevel{}, fault.InvalidResource
	}
	p := PermissionLevel{Actor: parts[0], Permission: Active}
	if 2 == len(parts) {
		if !ValidName(parts[1]) {
			return PermissionLevel{}, fault.InvalidAuthority
		}
		p.Permission = parts[1]
	}
	return p, nil
}

// Authorization - the permission levels declared for an operation
type Authorization []PermissionLevel

// Of - single level authorization
func Of(actor string, permission string) Authorization {
	return Authorization{{Actor: actor, Permission: permission}}
}

// declares - the exact level is present
func (auth Authorization) declares(account string, permission string) bool {
	for _, p := range auth {
		if p.Actor == account && p.Permission == permission {
			return true
		}
	}
	return false
}

// KeyWeight - public key with weight
type KeyWeight struct {
	Key    string `json:"key"`
	Weight uint16 `json:"weight"`
}

// PermissionLevelWeight - account permission with weight
type PermissionLevelWeight struct {
	Permission PermissionLevel `json:"permission"`
	Weight     uint16          `json:"weight"`
}

// Authority - threshold of keys and account permissions
type Authority struct {
	Threshold uint32                  `json:"threshold"`
	Keys      []KeyWeight             `json:"keys"`
	Accounts  []PermissionLevelWeight `json:"accounts"`
}

// KeyAuthority - single key authority
func KeyAuthority(key string) Authority {
	return Authority{
		Threshold: 1,
		Keys:      []KeyWeight{{Key: key, Weight: 1}},
	}
}

// AccountAuthority - single account permission authority
func AccountAuthority(actor string, permission string) Authority {
	return Authority{
		Threshold: 1,
		Accounts: []PermissionLevelWeight{{
			Permission: PermissionLevel{Actor: actor, Permission: permission},
			Weight:     1,
		}},
	}
}

// KeyOrAccount - key authority unless the key is "None"
func KeyOrAccount(key string, actor string, permission string) Authority {
	if NoKey == key {
		return AccountAuthority(actor, permission)
	}
	return KeyAuthority(key)
}

// Validate - threshold must be reachable
func (a Authority) Validate() error {
	if 0 == a.Threshold {
		return fault.InvalidAuthority
	}
	total := uint64(0)
	for _, k := range a.Keys {
		if "" == k.Key {
			return fault.InvalidKey
		}
		total += uint64(k.Weight)
	}
	for _, p := range a.Accounts {
		if !ValidName(p.Permission.Actor) || !ValidName(p.Permission.Permission) {
			return fault.InvalidAuthority
		}
		total += uint64(p.Weight)
	}
	if total < uint64(a.Threshold) {
		return fault.InvalidAuthority
	}
	return nil
}

// String - compact text form for the event log
func (a Authority) String() string {
	s := make([]string, 0, len(a.Keys)+len(a.Accounts))
	for _, k := range a.Keys {
		s = append(s, fmt.Sprintf("%s/%d", k.Key, k.Weight))
	}
	for _, p := range a.Accounts {
		s = append(s, fmt.Sprintf("%s/%d", p.Permission, p.Weight))
	}
	return fmt.Sprintf("%d:[%s]", a.Threshold, strings.Join(s, " "))
}

// ValidName - 1..12 characters from a-z 1-5 and '.', not ending in '.'
func ValidName(name string) bool {
	if 0 == len(name) || len(name) > 12 || '.' == name[len(name)-1] {
		return false
	}
	for _, c := range []byte(name) {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '1' && c <= '5':
		case '.' == c:
		default:
			return false
		}
	}
	return true
}
