// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameswapd/chain"
	"github.com/bitmark-inc/nameswapd/configuration"
	"github.com/bitmark-inc/nameswapd/loan"
	"github.com/bitmark-inc/nameswapd/market"
	"github.com/bitmark-inc/nameswapd/publish"
	"github.com/bitmark-inc/nameswapd/rpc/listeners"
	"github.com/bitmark-inc/nameswapd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPublishPublicKeyFile  = "publish.public"
	defaultPublishPrivateKeyFile = "publish.private"
	defaultKeyFile               = "rpc.key"
	defaultCertificateFile       = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabaseSuffix   = ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "nameswapd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10

	defaultContractAccount = "nameswaps"
	defaultFeesAccount     = "nameswapsfee"

	defaultSchedulerInterval = 5 // seconds

	defaultLoanPeriod     = 3 * 24 * 60 * 60
	defaultLoanCooldown   = 24 * 60 * 60
	defaultLoanWindow     = 60 * 60
	defaultLoansPerWindow = 20
	defaultLoanMaximumNet = 10000 // 1.0000 of the native currency
	defaultLoanMaximumCpu = 10000
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - leveldb location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// SchedulerType - deferred action polling
type SchedulerType struct {
	Interval int `gluamapper:"interval" json:"interval"`
}

// GenesisAccount - an account created at first start
//
// balance is in ledger text form e.g. "100.0000 SYS"
type GenesisAccount struct {
	Name      string `gluamapper:"name" json:"name"`
	OwnerKey  string `gluamapper:"owner_key" json:"owner_key"`
	ActiveKey string `gluamapper:"active_key" json:"active_key"`
	Balance   string `gluamapper:"balance" json:"balance"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string        `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string        `gluamapper:"pidfile" json:"pidfile"`
	Chain         string        `gluamapper:"chain" json:"chain"`
	Database      DatabaseType  `gluamapper:"database" json:"database"`
	Scheduler     SchedulerType `gluamapper:"scheduler" json:"scheduler"`

	Contract   market.Configuration       `gluamapper:"contract" json:"contract"`
	ClientRPC  listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Publishing publish.Configuration      `gluamapper:"publishing" json:"publishing"`
	Loan       loan.Configuration         `gluamapper:"loan" json:"loan"`
	Genesis    []GenesisAccount           `gluamapper:"genesis" json:"genesis"`
	Logging    logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Local,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "", // depends on chain
		},

		Scheduler: SchedulerType{
			Interval: defaultSchedulerInterval,
		},

		Contract: market.Configuration{
			Account:     defaultContractAccount,
			FeesAccount: defaultFeesAccount,
			ContractFee: market.DefaultContractFee,
			ReferrerFee: market.DefaultReferrerFee,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultPublishPublicKeyFile,
			PrivateKey: defaultPublishPrivateKeyFile,
		},

		Loan: loan.Configuration{
			Period:       defaultLoanPeriod,
			Cooldown:     defaultLoanCooldown,
			Window:       defaultLoanWindow,
			MaxPerWindow: defaultLoansPerWindow,
			MaxNet:       defaultLoanMaximumNet,
			MaxCpu:       defaultLoanMaximumCpu,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// abort if the chain name is not recognised
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("chain: %q is not supported", options.Chain)
	}

	// if database was not set use one per chain
	if "" == options.Database.Name {
		options.Database.Name = options.Chain + defaultDatabaseSuffix
	}

	// categories are replaced as a whole, never merged
	if 0 == len(options.Contract.Categories) {
		options.Contract.Categories = market.DefaultCategories()
	}

	if err := options.Contract.Validate(); nil != err {
		return nil, err
	}
	if err := options.Loan.Validate(); nil != err {
		return nil, err
	}
	if options.Scheduler.Interval <= 0 {
		return nil, fmt.Errorf("scheduler interval: %d must be positive", options.Scheduler.Interval)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
