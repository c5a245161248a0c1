// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	applog "github.com/btcsuite/btcaddr/internal/log"
	"github.com/btcsuite/btcaddr/internal/version"
)

var log = applog.AgenLog

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	// Load configuration and parse command line.
	cfg, secrets, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		fmt.Printf("addrgen version %s (Go version %s %s/%s)\n",
			version.String(), runtime.Version(), runtime.GOOS,
			runtime.GOARCH)
		return nil
	}

	// Setup file logging.
	if !cfg.NoFileLog {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := applog.InitLogRotator(logFile); err != nil {
			return err
		}
		defer applog.LogRotator.Close()
	}

	log.Infof("Version %s, deriving %s network addresses", version.String(),
		cfg.net())

	if cfg.Batch {
		err = runBatch(cfg, os.Stdin, os.Stdout)
	} else {
		err = runArgs(cfg, secrets, os.Stdout)
	}
	if err != nil {
		log.Error(err)
		return err
	}
	return nil
}

// runArgs writes a full report for each secret passed on the command line.
func runArgs(cfg *config, secrets []string, w io.Writer) error {
	for i, secret := range secrets {
		d, err := derive(cfg, secret)
		if err != nil {
			return fmt.Errorf("secret #%d: %w", i+1, err)
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := d.writeReport(w); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
