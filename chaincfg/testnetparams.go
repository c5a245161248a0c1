// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/btcsuite/btcaddr/ecc"
)

// TestNetParams defines the network parameters for the test Bitcoin network.
var TestNetParams = Params{
	Name:             "testnet3",
	Net:              "test",
	PubKeyHashAddrID: 0x6f, // starts with m or n
	Generator:        ecc.S256(),
}
