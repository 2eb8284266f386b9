// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  The class of
// an error (exists, invalid, not found, ...) is its type, so RPC
// callers can decide on retry behaviour without knowing every value.
package fault
