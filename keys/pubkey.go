// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcaddr/ecc"
)

// These constants define the lengths of serialized public keys.
const (
	// PubKeyBytesLenCompressed is the bytes length of a serialized
	// compressed public key.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the bytes length of a serialized
	// uncompressed public key.
	PubKeyBytesLenUncompressed = 65

	// coordinateLen is the bytes length of a single serialized coordinate.
	coordinateLen = 32
)

const (
	pubkeyCompressed   byte = 0x2 // y_bit + x coord
	pubkeyUncompressed byte = 0x4 // x coord + y coord
)

// Encoder is implemented by keys that can be serialized to SEC bytes and
// encoded as addresses.
type Encoder interface {
	// Encode returns the SEC encoding, or its hash160 when hash160 is set.
	Encode(compressed, hash160 bool) ([]byte, error)

	// Address returns the Base58Check address on the given network.
	Address(net string, compressed bool) (string, error)
}

// PublicKey is a finite point on a curve with methods to serialize it in the
// compressed and uncompressed SEC formats and to encode it as an address.
type PublicKey struct {
	point ecc.Affine
}

// Ensure PublicKey implements the Encoder interface.
var _ Encoder = (*PublicKey)(nil)

// NewPublicKey returns the public key for the given point.  An error is
// returned if the point is the point at infinity.
func NewPublicKey(point ecc.Point) (*PublicKey, error) {
	switch p := point.(type) {
	case ecc.Affine:
		return &PublicKey{point: p}, nil

	case *ecc.Affine:
		return &PublicKey{point: *p}, nil

	case ecc.Infinity, *ecc.Infinity:
		return nil, keyError(ErrPubKeyAtInfinity, "public key is the "+
			"point at infinity")
	}

	panic(fmt.Sprintf("keys: unsupported point type %T", point))
}

// Point returns the public key as a curve point so it can be used anywhere a
// point is expected.
func (k *PublicKey) Point() ecc.Point {
	return k.point
}

// X returns a copy of the x coordinate.
func (k *PublicKey) X() *big.Int {
	return k.point.X()
}

// Y returns a copy of the y coordinate.
func (k *PublicKey) Y() *big.Int {
	return k.point.Y()
}

// IsEqual compares this public key instance to the one passed, returning true
// if both public keys are equivalent.
func (k *PublicKey) IsEqual(other *PublicKey) bool {
	return k.point.Equal(other.point)
}

// appendCoordinate appends v as a fixed-width 32-byte big-endian value.
func appendCoordinate(dst []byte, v *big.Int) ([]byte, error) {
	src := v.Bytes()
	if len(src) > coordinateLen {
		str := fmt.Sprintf("coordinate %x needs %d bytes, more than "+
			"the %d available", v, len(src), coordinateLen)
		return nil, keyError(ErrCoordinateTooWide, str)
	}
	return paddedAppend(coordinateLen, dst, src), nil
}

// SerializeUncompressed serializes a public key in the 65-byte uncompressed
// format.
func (k *PublicKey) SerializeUncompressed() ([]byte, error) {
	b := make([]byte, 0, PubKeyBytesLenUncompressed)
	b = append(b, pubkeyUncompressed)
	b, err := appendCoordinate(b, k.point.X())
	if err != nil {
		return nil, err
	}
	return appendCoordinate(b, k.point.Y())
}

// SerializeCompressed serializes a public key in the 33-byte compressed
// format.  The format byte is 0x02 when y is even and 0x03 when it is odd.
func (k *PublicKey) SerializeCompressed() ([]byte, error) {
	b := make([]byte, 0, PubKeyBytesLenCompressed)
	format := pubkeyCompressed
	if k.point.Y().Bit(0) == 1 {
		format |= 0x1
	}
	b = append(b, format)
	return appendCoordinate(b, k.point.X())
}

// Encode returns the SEC serialization of the public key in the compressed or
// uncompressed format.  When hash160 is set the 20-byte
// RIPEMD160(SHA256(sec)) of the serialization is returned instead.
func (k *PublicKey) Encode(compressed, hash160 bool) ([]byte, error) {
	var sec []byte
	var err error
	if compressed {
		sec, err = k.SerializeCompressed()
	} else {
		sec, err = k.SerializeUncompressed()
	}
	if err != nil {
		return nil, err
	}

	log.Tracef("SEC encoding (compressed=%v): %x", compressed, sec)
	if !hash160 {
		return sec, nil
	}
	return Hash160(sec), nil
}

// String returns the hex encoded compressed serialization of the public key,
// or a description of the error if it can't be serialized.
func (k *PublicKey) String() string {
	sec, err := k.SerializeCompressed()
	if err != nil {
		return err.Error()
	}
	return hex.EncodeToString(sec)
}
