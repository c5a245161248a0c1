// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/decred/dcrd/lru"
)

// runBatch derives an address for every non-empty line read from r and writes
// one address per line to w.  Only the line terminator is stripped, so a
// passphrase is read exactly as it would be given on the command line.  When
// cfg.DedupeSize is non-zero, a secret whose scalar equals one of the last
// DedupeSize distinct scalars is skipped.
func runBatch(cfg *config, r io.Reader, w io.Writer) error {
	var seen *lru.Cache
	if cfg.DedupeSize > 0 {
		cache := lru.NewCache(cfg.DedupeSize)
		seen = &cache
	}

	var lineNum, derived, skipped int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		b, err := secretBytes(line, cfg.Hex)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}

		if seen != nil {
			scalar := new(big.Int).SetBytes(b).Text(16)
			if seen.Contains(scalar) {
				log.Debugf("Skipping duplicate secret on line %d",
					lineNum)
				skipped++
				continue
			}
			seen.Add(scalar)
		}

		d, err := deriveBytes(cfg, b)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
		if _, err := fmt.Fprintln(w, d.address); err != nil {
			return err
		}
		derived++
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	log.Infof("Derived %d addresses (%d duplicates skipped)", derived,
		skipped)
	return nil
}
