// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/nameswapd/fault"
)

// test that the error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		exists     bool
		invalid    bool
		limit      bool
		notFound   bool
		permission bool
		process    bool
		record     bool
	}{
		{fault.AlreadyListed, true, false, false, false, false, false, false},
		{fault.AlreadyVoted, true, false, false, false, false, false, false},
		{fault.InvalidPrice, false, true, false, false, false, false, false},
		{fault.MalformedMemo, false, true, false, false, false, false, false},
		{fault.RateLimiting, false, false, true, false, false, false, false},
		{fault.LoanRateLimited, false, false, true, false, false, false, false},
		{fault.NotListed, false, false, false, true, false, false, false},
		{fault.StatsNotInitialised, false, false, false, true, false, false, false},
		{fault.Unauthorized, false, false, false, false, true, false, false},
		{fault.NotAcceptedBidder, false, false, false, false, true, false, false},
		{fault.InsufficientFunds, false, false, false, false, false, true, false},
		{fault.NotRecord, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		if fault.IsErrExists(e.err) != e.exists {
			t.Errorf("%d: exists: %v  expected: %v", i, !e.exists, e.exists)
		}
		if fault.IsErrInvalid(e.err) != e.invalid {
			t.Errorf("%d: invalid: %v  expected: %v", i, !e.invalid, e.invalid)
		}
		if fault.IsErrLimit(e.err) != e.limit {
			t.Errorf("%d: limit: %v  expected: %v", i, !e.limit, e.limit)
		}
		if fault.IsErrNotFound(e.err) != e.notFound {
			t.Errorf("%d: not found: %v  expected: %v", i, !e.notFound, e.notFound)
		}
		if fault.IsErrPermission(e.err) != e.permission {
			t.Errorf("%d: permission: %v  expected: %v", i, !e.permission, e.permission)
		}
		if fault.IsErrProcess(e.err) != e.process {
			t.Errorf("%d: process: %v  expected: %v", i, !e.process, e.process)
		}
		if fault.IsErrRecord(e.err) != e.record {
			t.Errorf("%d: record: %v  expected: %v", i, !e.record, e.record)
		}
	}
}

// errors are single instances so identity comparison works
func TestIdentity(t *testing.T) {
	var err error = fault.NotListed
	if err != fault.NotListed {
		t.Errorf("identity comparison failed for: %s", err)
	}
	if err == fault.AlreadyListed {
		t.Errorf("unexpected match with: %s", fault.AlreadyListed)
	}
}
