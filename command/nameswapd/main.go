// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/background"
	"github.com/bitmark-inc/nameswapd/chain"
	"github.com/bitmark-inc/nameswapd/ledger"
	"github.com/bitmark-inc/nameswapd/loan"
	"github.com/bitmark-inc/nameswapd/market"
	"github.com/bitmark-inc/nameswapd/messagebus"
	"github.com/bitmark-inc/nameswapd/publish"
	"github.com/bitmark-inc/nameswapd/rpc"
	"github.com/bitmark-inc/nameswapd/rpc/server"
	"github.com/bitmark-inc/nameswapd/scheduler"
	"github.com/bitmark-inc/nameswapd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, nil)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("chain: %s", theConfiguration.Chain)
	log.Infof("database: %q", theConfiguration.Database)
	log.Infof("contract: %q  fees: %q", theConfiguration.Contract.Account, theConfiguration.Contract.FeesAccount)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// the ledger shares the marketplace database
	log.Info("initialise ledger")
	theLedger := ledger.NewLocal(logger.New("ledger"), chain.Currency(theConfiguration.Chain), ledger.Handles{
		Balances:     storage.Pool.Balances,
		Permissions:  storage.Pool.Permissions,
		Resources:    storage.Pool.Resources,
		Delegations:  storage.Pool.Delegations,
		Invalidation: storage.Pool.Invalidation,
		Events:       storage.Pool.Events,
		Sequence:     storage.Pool.Sequence,
	})

	n, err := applyGenesis(log, theLedger, storage.NewDBTransaction, theConfiguration.Genesis)
	if nil != err {
		log.Criticalf("genesis error: %s", err)
		exitwithstatus.Message("genesis error: %s", err)
	}
	log.Infof("genesis accounts created: %d", n)

	log.Info("initialise market")
	theMarket, err := market.New(
		logger.New("market"),
		theConfiguration.Contract,
		market.Handles{
			Listings:  storage.Pool.Listings,
			Extras:    storage.Pool.Extras,
			Bids:      storage.Pool.Bids,
			Stats:     storage.Pool.Stats,
			Referrers: storage.Pool.Referrers,
			Shops:     storage.Pool.Shops,
		},
		storage.NewDBTransaction,
		theLedger,
		messagebus.Bus.Notify,
	)
	if nil != err {
		log.Criticalf("market initialise error: %s", err)
		exitwithstatus.Message("market initialise error: %s", err)
	}

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, theConfiguration, theMarket, theLedger) {
		return
	}

	log.Info("initialise scheduler")
	theScheduler := scheduler.New(
		logger.New("scheduler"),
		storage.Pool.Deferred,
		storage.NewDBTransaction,
		messagebus.Bus.Scheduler,
		time.Duration(theConfiguration.Scheduler.Interval)*time.Second,
	)

	log.Info("initialise loan")
	theLender, err := loan.New(
		logger.New("loan"),
		theConfiguration.Loan,
		theConfiguration.Contract.Account,
		storage.Pool.Loans,
		storage.NewDBTransaction,
		theLedger,
		theScheduler,
	)
	if nil != err {
		log.Criticalf("loan initialise error: %s", err)
		exitwithstatus.Message("loan initialise error: %s", err)
	}

	// handlers are registered so deferred entries can now fire
	processes := background.Processes{theScheduler}
	if len(options["memory-stats"]) > 0 {
		processes = append(processes, &memoryStats{log: logger.New("memory")})
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	// start up the publishing background processes
	err = publish.Initialise(&theConfiguration.Publishing, messagebus.Bus.Notify)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publish.Finalise()

	// start up the rpc background processes
	services := &server.Services{
		Chain:     theConfiguration.Chain,
		Account:   theConfiguration.Contract.Account,
		PublicKey: publish.PublicKey(),
		Market:    theMarket,
		Ledger:    theLedger,
		Events:    theLedger,
		Loans:     theLender,
		Begin:     storage.NewDBTransaction,
	}
	err = rpc.Initialise(&theConfiguration.ClientRPC, version, services)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
