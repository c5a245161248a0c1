// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"

	"github.com/btcsuite/btcaddr/ecc"
)

// Params defines the address encoding parameters of a Bitcoin network.  These
// may be used by Bitcoin applications to differentiate networks as well as
// addresses and keys for one network from those intended for use on another
// network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net is the short network identifier accepted by address encoding
	// functions, such as "main" or "test".
	Net string

	// PubKeyHashAddrID is the version byte prepended to the hash160 of a
	// public key to form a pay-to-pubkey-hash address.
	PubKeyHashAddrID byte

	// Generator is the curve and base point keys on the network are
	// derived from.
	Generator *ecc.Generator
}

var (
	// ErrDuplicateNet describes an error where the parameters for a Bitcoin
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate Bitcoin network")

	// ErrUnknownNet describes an error where the provided network identifier
	// does not match any standard or registered network.
	ErrUnknownNet = errors.New("unknown Bitcoin network")
)

var (
	registeredNets    = make(map[string]*Params)
	pubKeyHashAddrIDs = make(map[byte]struct{})
)

// Register registers the network parameters for a Bitcoin network.  This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible.  Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = params
	pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// ParamsForNet returns the parameters of the standard or registered network
// with the given short identifier.  ErrUnknownNet is returned for any other
// identifier.
func ParamsForNet(net string) (*Params, error) {
	params, ok := registeredNets[net]
	if !ok {
		return nil, ErrUnknownNet
	}
	return params, nil
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any default or registered network.
func IsPubKeyHashAddrID(id byte) bool {
	_, ok := pubKeyHashAddrIDs[id]
	return ok
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
}
