// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcaddr/ecc"
)

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// PrivateKey is a secret scalar used to derive a public key.
type PrivateKey struct {
	secret *big.Int
}

// PrivKeyFromScalar returns a private key for the given secret.  An error is
// returned unless 1 <= secret < n where n is the order of gen.
func PrivKeyFromScalar(gen *ecc.Generator, secret *big.Int) (*PrivateKey, error) {
	if secret.Sign() <= 0 || secret.Cmp(gen.N()) >= 0 {
		str := fmt.Sprintf("private key scalar is not in the range "+
			"[1, %x)", gen.N())
		return nil, keyError(ErrPrivKeyOutOfRange, str)
	}

	return &PrivateKey{secret: new(big.Int).Set(secret)}, nil
}

// PrivKeyFromBytes returns a private key for the secret obtained by
// interpreting pk as a big-endian unsigned integer.  The same range
// restrictions as PrivKeyFromScalar apply.
func PrivKeyFromBytes(gen *ecc.Generator, pk []byte) (*PrivateKey, error) {
	return PrivKeyFromScalar(gen, new(big.Int).SetBytes(pk))
}

// Secret returns a copy of the private key scalar.
func (p *PrivateKey) Secret() *big.Int {
	return new(big.Int).Set(p.secret)
}

// PubKey returns the public key secret*g.  The range of the secret is not
// checked against g, so g should be the base point of the generator the key
// was created for.  An error is returned if the product is the point at
// infinity.
func (p *PrivateKey) PubKey(g ecc.Point) (*PublicKey, error) {
	point, err := ecc.ScalarMult(p.secret, g)
	if err != nil {
		return nil, err
	}

	pub, err := NewPublicKey(point)
	if err != nil {
		return nil, err
	}

	log.Debugf("Derived public key %v", pub)
	return pub, nil
}

// Serialize returns the private key scalar as a big-endian binary-encoded
// number, padded to a length of 32 bytes.  Scalars wider than 32 bytes are
// returned in full.
func (p *PrivateKey) Serialize() []byte {
	b := make([]byte, 0, PrivKeyBytesLen)
	return paddedAppend(PrivKeyBytesLen, b, p.secret.Bytes())
}

// paddedAppend appends the src byte slice to dst, returning the new slice.
// If the length of the source is smaller than the passed size, leading zero
// bytes are appended to the dst slice before appending src.
func paddedAppend(size uint, dst, src []byte) []byte {
	for i := 0; i < int(size)-len(src); i++ {
		dst = append(dst, 0)
	}
	return append(dst, src...)
}
