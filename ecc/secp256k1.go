// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"math/big"
)

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf

// secp256k1 domain parameters, hex encoded.
const (
	// p = 2^256 - 2^32 - 977
	secp256k1P  = "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"
	secp256k1A  = "0"
	secp256k1B  = "7"
	secp256k1Gx = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	secp256k1Gy = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	secp256k1N  = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
)

// s256Gen is the generator returned by S256.  The curve parameters are
// well known, so they are validated once at init.
var s256Gen = mustGenerator(secp256k1P, secp256k1A, secp256k1B,
	secp256k1Gx, secp256k1Gy, secp256k1N)

// fromHex converts the passed hex string into a big integer pointer and will
// panic is there is an error.  This is only provided for the hard-coded
// constants so errors in the source code can be detected.
func fromHex(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

// mustGenerator builds a generator from hard-coded hex parameters and panics
// if any of them are invalid.
func mustGenerator(p, a, b, gx, gy, n string) *Generator {
	curve, err := NewCurve(fromHex(p), fromHex(a), fromHex(b))
	if err != nil {
		panic(err)
	}
	g, err := NewPoint(curve, fromHex(gx), fromHex(gy))
	if err != nil {
		panic(err)
	}
	gen, err := NewGenerator(g, fromHex(n))
	if err != nil {
		panic(err)
	}
	return gen
}

// S256 returns the secp256k1 generator used by Bitcoin: the curve
// y^2 = x^3 + 7 over the field of integers modulo 2^256 - 2^32 - 977, its
// standard base point, and the order of that point.
func S256() *Generator {
	return s256Gen
}
