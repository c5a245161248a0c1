// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/btcsuite/btcaddr/chaincfg"
	"github.com/btcsuite/btcaddr/keys"
	"github.com/stretchr/testify/require"
)

// TestDerive ensures secrets given as passphrases or hex scalars produce the
// expected addresses.
func TestDerive(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config
		secret  string
		want    string
		wantErr error
	}{{
		name:   "passphrase testnet compressed",
		cfg:    config{TestNet: true},
		secret: "Andrej is cool :P",
		want:   "mnNcaVkC35ezZSgvn8fhXEa9QTHSUtPfzQ",
	}, {
		name:   "passphrase mainnet uncompressed",
		cfg:    config{Uncompressed: true},
		secret: "Andrej is cool :P",
		want:   "1QD4YxckQDXgy96LhvrqUSPowgJ9ehxMWe",
	}, {
		name:   "hex one mainnet",
		cfg:    config{Hex: true},
		secret: "01",
		want:   "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH",
	}, {
		name:   "hex one testnet",
		cfg:    config{Hex: true, TestNet: true},
		secret: "0x1",
		want:   "mrCDrCybB6J1vRfbwM5hemdJz73FwDBC8r",
	}, {
		name:   "hex one uncompressed",
		cfg:    config{Hex: true, Uncompressed: true},
		secret: "0X0001",
		want:   "1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm",
	}, {
		name:   "hex three",
		cfg:    config{Hex: true},
		secret: "3",
		want:   "1CUNEBjYrCn2y1SdiUMohaKUi4wpP326Lb",
	}, {
		name:   "hex with surrounding whitespace",
		cfg:    config{Hex: true},
		secret: " 0x03\t",
		want:   "1CUNEBjYrCn2y1SdiUMohaKUi4wpP326Lb",
	}, {
		name:    "hex zero",
		cfg:     config{Hex: true},
		secret:  "00",
		wantErr: keys.ErrPrivKeyOutOfRange,
	}, {
		name:    "empty passphrase",
		secret:  "",
		wantErr: keys.ErrPrivKeyOutOfRange,
	}}

	for _, test := range tests {
		cfg := test.cfg
		d, err := derive(&cfg, test.secret)
		if test.wantErr != nil {
			require.True(t, errors.Is(err, test.wantErr),
				"%s: unexpected error %v", test.name, err)
			continue
		}
		require.NoError(t, err, test.name)
		require.Equal(t, test.want, d.address, test.name)
		require.True(t, d.onCurve, test.name)
	}
}

// TestDeriveUsesNetworkGenerator ensures keys are derived from the generator
// of the selected network.
func TestDeriveUsesNetworkGenerator(t *testing.T) {
	for _, params := range []*chaincfg.Params{&chaincfg.MainNetParams, &chaincfg.TestNetParams} {
		cfg := config{Hex: true, TestNet: params.Net == "test"}
		d, err := derive(&cfg, "01")
		require.NoError(t, err, params.Name)
		require.True(t, d.pubKey.Point().Equal(params.Generator.G()), params.Name)
		require.Same(t, params.Generator.Curve(), d.pubKey.Point().Curve(), params.Name)
	}
}

// TestDeriveBadHex ensures malformed hex scalars are rejected.
func TestDeriveBadHex(t *testing.T) {
	_, err := derive(&config{Hex: true}, "zz")
	require.Error(t, err)
}

// TestWriteReport ensures the report for the generator point is formatted as
// expected.
func TestWriteReport(t *testing.T) {
	d, err := derive(&config{Hex: true, TestNet: true}, "1")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, d.writeReport(&buf))

	want := strings.Join([]string{
		"secret:    0000000000000000000000000000000000000000000000000000000000000001",
		"pubkey.x:  79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		"pubkey.y:  483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		"on curve:  true",
		"address:   mrCDrCybB6J1vRfbwM5hemdJz73FwDBC8r",
		"",
	}, "\n")
	require.Equal(t, want, buf.String())
}

// TestRunArgs ensures reports for multiple secrets are separated by a blank
// line and errors identify the failing secret.
func TestRunArgs(t *testing.T) {
	var buf bytes.Buffer
	err := runArgs(&config{Hex: true}, []string{"1", "2"}, &buf)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(buf.String(), "\n\n"))
	require.Contains(t, buf.String(), "1cMh228HTCiwS8ZsaakH8A8wze1JR5ZsP")

	err = runArgs(&config{Hex: true}, []string{"1", "0"}, &buf)
	require.ErrorIs(t, err, keys.ErrPrivKeyOutOfRange)
	require.Contains(t, err.Error(), "secret #2")
}
