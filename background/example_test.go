// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/nameswapd/background"
)

type ticker struct {
	interval time.Duration
	ticks    int
}

func Example() {
	proc := &ticker{
		interval: time.Millisecond,
	}

	// list of background processes to start
	processes := background.Processes{
		proc,
	}

	p := background.Start(processes, "ticker")
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	// Output:
	// ticker: start
	// ticker: stop
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	name := args.(string)
	fmt.Printf("%s: start\n", name)

	t := time.NewTicker(state.interval)
	defer t.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-t.C:
			state.ticks += 1
		}
	}

	fmt.Printf("%s: stop\n", name)
}
