// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecc implements affine elliptic curve arithmetic over prime fields for
short Weierstrass curves of the form y^2 = x^3 + ax + b (mod p).

The package is intentionally small and readable rather than fast.  All
arithmetic is performed with math/big in affine coordinates, the only division
primitive is a modular inverse computed with the extended Euclidean algorithm,
and scalar multiplication uses the double-and-add method.  It is not constant
time and must not be used where side channels matter.

Points are immutable values.  A Point is either the point at infinity
(Infinity) or a finite point with coordinates (Affine).  Every operation
returns a new value and never modifies its operands, so values may be shared
freely between goroutines.

The secp256k1 parameters used by Bitcoin are available via S256.
*/
package ecc
