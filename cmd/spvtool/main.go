// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/btcsuite/btcspv/internal/log"
	"github.com/btcsuite/btcspv/internal/version"
	flags "github.com/jessevdk/go-flags"
)

// newParser returns the command line parser with the global options and every
// command registered.
func newParser(appName string) *flags.Parser {
	parserFlags := flags.Options(flags.HelpFlag | flags.PassDoubleDash)
	parser := flags.NewNamedParser(appName, parserFlags)
	parser.SubcommandsOptional = true
	parser.AddGroup("Global Options", "", cfg)
	parser.AddCommand("pubkey",
		"Show the public key, hash160 and address of a key", "",
		&pubKeyCfg)
	parser.AddCommand("wif",
		"Encode a secret in wallet import format or decode a WIF string",
		"", &wifCfg)
	parser.AddCommand("address",
		"Encode a hash160 as an address or decode an address", "",
		&addressCfg)
	parser.AddCommand("sign",
		"Deterministically sign the double SHA-256 of a message", "",
		&signCfg)
	parser.AddCommand("verify",
		"Verify DER signatures of a message against a public key", "",
		&verifyCfg)
	parser.AddCommand("merkleblock",
		"Verify a merkleblock payload and show the proven transactions",
		"Verify a merkleblock payload by reconstructing the merkle root "+
			"from its hashes and flag bits and comparing it to the "+
			"merkle root of the block header.  The verified proof can "+
			"be saved to the proof database with --store.",
		&merkleBlockCfg)
	parser.AddCommand("proof",
		"Show, check or remove proofs saved in the proof database", "",
		&proofCfg)
	return parser
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	defer log.CloseLogRotator()

	// Setup the parser options and commands.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	parser := newParser(appName)

	// Parse command line and invoke the Execute function for the specified
	// command.
	if _, err := parser.Parse(); err != nil {
		var e *flags.Error
		switch {
		case errors.As(err, &e) && e.Type == flags.ErrHelp:
			parser.WriteHelp(os.Stderr)
		case errors.Is(err, errShowSubsystems):
			return nil
		default:
			log.SpvtLog.Error(err)
		}

		return err
	}

	// Show the version and exit if the version flag was specified.
	if parser.Active == nil {
		if cfg.ShowVersion {
			fmt.Fprintf(output, "%s version %s (Go version %s %s/%s)\n",
				appName, version.String(), runtime.Version(),
				runtime.GOOS, runtime.GOARCH)
			return nil
		}
		parser.WriteHelp(os.Stderr)
		return errors.New("no command specified")
	}

	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
