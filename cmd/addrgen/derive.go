// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/btcsuite/btcaddr/chaincfg"
	"github.com/btcsuite/btcaddr/keys"
)

// derivation holds everything computed for a single secret.
type derivation struct {
	privKey *keys.PrivateKey
	pubKey  *keys.PublicKey
	onCurve bool
	address string
}

// secretBytes returns the big-endian bytes of the private scalar described by
// secret.  Passphrases are used byte for byte, including any surrounding
// whitespace.  Hex scalars ignore surrounding whitespace and may carry a 0x
// prefix.
func secretBytes(secret string, isHex bool) ([]byte, error) {
	if !isHex {
		return []byte(secret), nil
	}

	secret = strings.TrimSpace(secret)
	secret = strings.TrimPrefix(strings.TrimPrefix(secret, "0x"), "0X")
	if len(secret)%2 != 0 {
		secret = "0" + secret
	}
	b, err := hex.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("malformed hex scalar: %w", err)
	}
	return b, nil
}

// derive turns a secret into a private key, derives its public key from the
// generator of the network selected by cfg, and encodes its address.
func derive(cfg *config, secret string) (*derivation, error) {
	b, err := secretBytes(secret, cfg.Hex)
	if err != nil {
		return nil, err
	}
	return deriveBytes(cfg, b)
}

// deriveBytes is derive for a secret that has already been converted to the
// big-endian bytes of its scalar.
func deriveBytes(cfg *config, b []byte) (*derivation, error) {
	params, err := chaincfg.ParamsForNet(cfg.net())
	if err != nil {
		return nil, err
	}

	gen := params.Generator
	privKey, err := keys.PrivKeyFromBytes(gen, b)
	if err != nil {
		return nil, err
	}
	pubKey, err := privKey.PubKey(gen.G())
	if err != nil {
		return nil, err
	}
	addr, err := pubKey.Address(cfg.net(), !cfg.Uncompressed)
	if err != nil {
		return nil, err
	}

	return &derivation{
		privKey: privKey,
		pubKey:  pubKey,
		onCurve: gen.Curve().IsOnCurve(pubKey.X(), pubKey.Y()),
		address: addr,
	}, nil
}

// writeReport writes the full derivation in a human readable form.
func (d *derivation) writeReport(w io.Writer) error {
	_, err := fmt.Fprintf(w, "secret:    %x\n"+
		"pubkey.x:  %064x\n"+
		"pubkey.y:  %064x\n"+
		"on curve:  %v\n"+
		"address:   %s\n",
		d.privKey.Serialize(), d.pubKey.X(), d.pubKey.Y(), d.onCurve,
		d.address)
	return err
}
