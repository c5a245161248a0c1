// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	applog "github.com/btcsuite/btcaddr/internal/log"
	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogFilename = "addrgen.log"
	defaultLogLevel    = "info"
	defaultDedupeSize  = 1000
	maxDedupeSize      = 1 << 20
)

var (
	addrgenHomeDir = btcutil.AppDataDir("addrgen", false)
	defaultLogDir  = filepath.Join(addrgenHomeDir, "logs")
)

// config defines the configuration options for addrgen.
//
// See loadConfig for details on the configuration load process.
type config struct {
	TestNet      bool   `long:"testnet" description:"Encode addresses for the test network"`
	Uncompressed bool   `short:"u" long:"uncompressed" description:"Hash the uncompressed SEC encoding of the public key"`
	Hex          bool   `short:"x" long:"hex" description:"Treat secrets as hex-encoded scalars instead of passphrases"`
	Batch        bool   `short:"b" long:"batch" description:"Read one secret per line from stdin and print one address per line"`
	DedupeSize   uint   `long:"dedupe" description:"Number of recently seen secrets to skip in batch mode (0 disables)"`
	LogDir       string `long:"logdir" description:"Directory to log output"`
	NoFileLog    bool   `long:"nofilelogging" description:"Disable file logging"`
	DebugLevel   string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	ShowVersion  bool   `short:"V" long:"version" description:"Display version information and exit"`
}

// net returns the short identifier of the network addresses are encoded for.
func (cfg *config) net() string {
	if cfg.TestNet {
		return "test"
	}
	return "main"
}

// loadConfig initializes and parses the config using the passed command line
// options.  The remaining positional arguments are the secrets to derive
// addresses for.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		DedupeSize: defaultDedupeSize,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] [secret...]"
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Nothing else is needed to show the version.
	if cfg.ShowVersion {
		return &cfg, remainingArgs, nil
	}

	funcName := "loadConfig"

	// Parse, validate, and set debug log level(s).
	if err := applog.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("%s: %v", funcName, err)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Validate the dedupe window.
	if cfg.DedupeSize > maxDedupeSize {
		str := "%s: the specified dedupe size is out of range -- " +
			"parsed [%v], max [%v]"
		err := fmt.Errorf(str, funcName, cfg.DedupeSize, maxDedupeSize)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Secrets come either from stdin or from the command line, not both.
	switch {
	case cfg.Batch && len(remainingArgs) > 0:
		str := "%s: secrets can't be passed as arguments in batch mode"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err

	case !cfg.Batch && len(remainingArgs) == 0:
		str := "%s: no secrets specified -- pass at least one secret " +
			"or use --batch"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	return &cfg, remainingArgs, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if len(path) > 0 && path[0] == '~' {
		homeDir := filepath.Dir(addrgenHomeDir)
		path = filepath.Join(homeDir, path[1:])
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
