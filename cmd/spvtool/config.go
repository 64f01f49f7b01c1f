// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcspv/internal/log"
	"github.com/btcsuite/btcspv/proofdb"
)

const (
	defaultLogLevel    = "info"
	defaultLogFilename = "spvtool.log"
	defaultDbType      = proofdb.DBTypeLevelDB

	// proofDbNamePrefix is the prefix for the proof database.
	proofDbNamePrefix = "proofs"
)

var (
	spvtoolHomeDir  = btcutil.AppDataDir("spvtool", false)
	knownDbTypes    = proofdb.SupportedDBTypes
	activeNetParams = &chaincfg.MainNetParams

	// output receives the results of the commands.
	output io.Writer = os.Stdout

	// Default global config.
	cfg = defaultConfig()

	// errShowSubsystems is returned once the supported subsystems have
	// been listed so the command stops without further output.
	errShowSubsystems = errors.New("subsystems listed")
)

// config defines the global configuration options.
type config struct {
	ShowVersion    bool   `short:"V" long:"version" description:"Display version information and exit"`
	DataDir        string `short:"b" long:"datadir" description:"Directory to store the proof database"`
	LogDir         string `long:"logdir" description:"Directory to log output"`
	DebugLevel     string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	DbType         string `long:"dbtype" description:"Database backend to use for the proof database {leveldb, pebble}"`
	TestNet3       bool   `long:"testnet" description:"Use the test network"`
	RegressionTest bool   `long:"regtest" description:"Use the regression test network"`
	SimNet         bool   `long:"simnet" description:"Use the simulation test network"`
}

// defaultConfig returns the global configuration with all defaults applied.
func defaultConfig() *config {
	return &config{
		DataDir:    filepath.Join(spvtoolHomeDir, "data"),
		LogDir:     filepath.Join(spvtoolHomeDir, "logs"),
		DebugLevel: defaultLogLevel,
		DbType:     defaultDbType,
	}
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace":
		fallthrough
	case "debug":
		fallthrough
	case "info":
		fallthrough
	case "warn":
		fallthrough
	case "error":
		fallthrough
	case "critical":
		return true
	}
	return false
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !validLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		log.SetLogLevels(debugLevel)

		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := log.SubsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsytems %v"
			return fmt.Errorf(str, subsysID, log.SupportedSubsystems())
		}

		// Validate log level.
		if !validLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		log.SetLogLevel(subsysID, logLevel)
	}

	return nil
}

// validDbType returns whether or not dbType is a supported database type.
func validDbType(dbType string) bool {
	for _, knownType := range knownDbTypes {
		if dbType == knownType {
			return true
		}
	}

	return false
}

// setupGlobalConfig examine the global configuration options for any conditions
// which are invalid as well as performs any addition setup necessary after the
// initial parse.
func setupGlobalConfig() error {
	// Multiple networks can't be selected simultaneously.
	// Count number of network flags passed; assign active network params
	// while we're at it
	activeNetParams = &chaincfg.MainNetParams
	numNets := 0
	if cfg.TestNet3 {
		numNets++
		activeNetParams = &chaincfg.TestNet3Params
	}
	if cfg.RegressionTest {
		numNets++
		activeNetParams = &chaincfg.RegressionNetParams
	}
	if cfg.SimNet {
		numNets++
		activeNetParams = &chaincfg.SimNetParams
	}
	if numNets > 1 {
		return errors.New("the testnet, regtest, and simnet params " +
			"can't be used together -- choose one of the three")
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Fprintln(output, "Supported subsystems",
			log.SupportedSubsystems())
		return errShowSubsystems
	}

	// Validate database type.
	if !validDbType(cfg.DbType) {
		str := "the specified database type [%v] is invalid -- " +
			"supported types %v"
		return fmt.Errorf(str, cfg.DbType, knownDbTypes)
	}

	// Initialize log rotation.  After log rotation has been initialized,
	// the logger variables may be used.
	logFile := filepath.Join(cfg.LogDir, activeNetParams.Name,
		defaultLogFilename)
	log.CloseLogRotator()
	if err := log.InitLogRotator(logFile); err != nil {
		return err
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return err
	}

	// Append the network type to the data directory so it is "namespaced"
	// per network.  Proofs are specific to a network, so namespacing the
	// data directory keeps the stores of each network apart.
	cfg.DataDir = filepath.Join(cfg.DataDir, activeNetParams.Name)

	return nil
}

// loadProofStore opens the proof database of the active network.
func loadProofStore() (*proofdb.Store, error) {
	// The database name is based on the database type.
	dbName := proofDbNamePrefix + "_" + cfg.DbType
	dbPath := filepath.Join(cfg.DataDir, dbName)

	log.SpvtLog.Debugf("Loading proof database from '%s'", dbPath)
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, err
	}
	return proofdb.Open(cfg.DbType, dbPath)
}
