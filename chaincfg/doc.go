// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the address encoding parameters of the Bitcoin
// networks.
//
// The main and test networks are registered when the package is initialized
// and can be looked up by their short identifiers "main" and "test" with
// ParamsForNet.  Additional networks may be added with Register, which is
// meant to be called from a main package during startup before any lookups
// take place.
package chaincfg
