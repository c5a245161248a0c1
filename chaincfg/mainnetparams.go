// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/btcsuite/btcaddr/ecc"
)

// MainNetParams defines the network parameters for the main Bitcoin network.
var MainNetParams = Params{
	Name:             "mainnet",
	Net:              "main",
	PubKeyHashAddrID: 0x00, // starts with 1
	Generator:        ecc.S256(),
}
