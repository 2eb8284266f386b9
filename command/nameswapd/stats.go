// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/background"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

type memoryStats struct {
	log *logger.L
}

// Run - periodically log the memory in use
func (m *memoryStats) Run(args interface{}, shutdown <-chan struct{}) {

	delay := time.NewTicker(statsDelay)
	defer delay.Stop()

loop:
	for {
		var s runtime.MemStats
		runtime.ReadMemStats(&s)

		a := s.Alloc / mega
		t := s.TotalAlloc / mega
		v := s.Sys / mega
		m.log.Warnf("allocated: %d M  cumulative: %d M  OS virtual: %d M  goroutines: %d", a, t, v, runtime.NumGoroutine())

		select {
		case <-shutdown:
			break loop
		case <-delay.C:
		}
	}
}

var _ background.Process = &memoryStats{}
