// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcaddr/chaincfg"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// checksumLen is the number of bytes of the double SHA-256 appended to
	// an address.
	checksumLen = 4

	// hash160Len is the length of a hash160 payload.
	hash160Len = 20

	// AddressBytesLen is the length of a decoded pay-to-pubkey-hash address:
	// one version byte, the hash160 payload, and the checksum.
	AddressBytesLen = 1 + hash160Len + checksumLen
)

// checksum: first four bytes of sha256^2
func checksum(input []byte) (cksum [checksumLen]byte) {
	h := chainhash.DoubleHashB(input)
	copy(cksum[:], h[:checksumLen])
	return
}

// CheckEncode prepends a version byte and appends a four byte checksum to the
// payload and returns the Base58 encoding of the result.
func CheckEncode(version byte, payload []byte) string {
	b := make([]byte, 0, 1+len(payload)+checksumLen)
	b = append(b, version)
	b = append(b, payload...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)

	log.Tracef("Base58Check input: %v", newLogClosure(func() string {
		return fmt.Sprintf("%x", b)
	}))
	return base58.Encode(b)
}

// CheckAddress decodes a pay-to-pubkey-hash address and verifies that its
// length is correct, that its checksum matches the one recomputed from the
// version byte and payload, and that the version byte belongs to a known
// network.  It does not recover any key material.
func CheckAddress(addr string) error {
	decoded := base58.Decode(addr)
	if len(decoded) != AddressBytesLen {
		str := fmt.Sprintf("decoded address is %d bytes, want %d",
			len(decoded), AddressBytesLen)
		return keyError(ErrAddressLength, str)
	}

	var cksum [checksumLen]byte
	copy(cksum[:], decoded[len(decoded)-checksumLen:])
	if want := checksum(decoded[:len(decoded)-checksumLen]); want != cksum {
		str := fmt.Sprintf("address checksum %x does not match "+
			"computed checksum %x", cksum, want)
		return keyError(ErrChecksumMismatch, str)
	}

	if !chaincfg.IsPubKeyHashAddrID(decoded[0]) {
		str := fmt.Sprintf("address version 0x%02x does not belong to a "+
			"known network", decoded[0])
		return keyError(ErrUnknownNetwork, str)
	}
	return nil
}

// Address returns the Base58Check pay-to-pubkey-hash address of the public key
// on the network with the given short identifier ("main" or "test", or any
// registered network).  The hashed SEC encoding is compressed or uncompressed
// as requested.  The key must be bound to the same *ecc.Curve as the
// network's generator.
func (k *PublicKey) Address(net string, compressed bool) (string, error) {
	params, err := chaincfg.ParamsForNet(net)
	if err != nil {
		if errors.Is(err, chaincfg.ErrUnknownNet) {
			str := fmt.Sprintf("unknown network %q", net)
			return "", keyError(ErrUnknownNetwork, str)
		}
		return "", err
	}
	if curve := params.Generator.Curve(); k.point.Curve() != curve {
		str := fmt.Sprintf("public key is on the curve %v, but %s "+
			"addresses use %v", k.point.Curve(), params.Name, curve)
		return "", keyError(ErrCurveMismatch, str)
	}

	payload, err := k.Encode(compressed, true)
	if err != nil {
		return "", err
	}

	addr := CheckEncode(params.PubKeyHashAddrID, payload)
	log.Debugf("Encoded %s address %s for public key %v", params.Name,
		addr, k)
	return addr, nil
}
