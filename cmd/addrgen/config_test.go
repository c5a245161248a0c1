// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoadConfig ensures command line options are parsed and validated.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantNet     string
		wantBatch   bool
		wantDedupe  uint
		wantSecrets []string
	}{{
		name:        "defaults",
		args:        []string{"Andrej is cool :P"},
		wantNet:     "main",
		wantDedupe:  defaultDedupeSize,
		wantSecrets: []string{"Andrej is cool :P"},
	}, {
		name:        "testnet hex",
		args:        []string{"--testnet", "--hex", "01", "02"},
		wantNet:     "test",
		wantDedupe:  defaultDedupeSize,
		wantSecrets: []string{"01", "02"},
	}, {
		name:       "batch",
		args:       []string{"-b", "--dedupe=5"},
		wantNet:    "main",
		wantBatch:  true,
		wantDedupe: 5,
	}, {
		name:    "batch with secrets",
		args:    []string{"--batch", "01"},
		wantErr: true,
	}, {
		name:    "no secrets",
		args:    []string{"--testnet"},
		wantErr: true,
	}, {
		name:    "dedupe too large",
		args:    []string{"--batch", "--dedupe=2000000"},
		wantErr: true,
	}, {
		name:    "bad debug level",
		args:    []string{"--debuglevel=loud", "01"},
		wantErr: true,
	}, {
		name:    "unknown flag",
		args:    []string{"--regtest", "01"},
		wantErr: true,
	}}

	for _, test := range tests {
		cfg, secrets, err := loadConfig(test.args)
		if test.wantErr {
			require.Error(t, err, test.name)
			continue
		}
		require.NoError(t, err, test.name)
		require.Equal(t, test.wantNet, cfg.net(), test.name)
		require.Equal(t, test.wantBatch, cfg.Batch, test.name)
		require.Equal(t, test.wantDedupe, cfg.DedupeSize, test.name)
		if len(test.wantSecrets) == 0 {
			require.Empty(t, secrets, test.name)
			continue
		}
		require.Equal(t, test.wantSecrets, secrets, test.name)
	}
}

// TestLoadConfigVersion ensures the version flag needs no secrets.
func TestLoadConfigVersion(t *testing.T) {
	cfg, _, err := loadConfig([]string{"-V"})
	require.NoError(t, err)
	require.True(t, cfg.ShowVersion)
}
