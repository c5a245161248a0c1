// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"fmt"
	"math/big"
)

// bigOne is 1 represented as a big.Int.
var bigOne = big.NewInt(1)

// bezoutStep advances one pair of running values of the extended Euclidean
// algorithm: (old, cur) = (cur, old - q*cur).
func bezoutStep(old, cur, q *big.Int) {
	next := new(big.Int).Mul(q, cur)
	next.Sub(old, next)
	old.Set(cur)
	cur.Set(next)
}

// modInverse returns the unique m in [0, p) such that n*m = 1 (mod p).  It
// runs the iterative extended Euclidean algorithm on (n mod p, p), tracking the
// remainders and both Bezout coefficients, and takes the coefficient of n once
// the remainder reaches zero.
//
// The caller must ensure p is prime and n is not a multiple of p.  Violating
// that is an invariant breach and causes a panic since no inverse exists.
func modInverse(n, p *big.Int) *big.Int {
	oldR, r := new(big.Int).Mod(n, p), new(big.Int).Set(p)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	var q big.Int
	for r.Sign() != 0 {
		q.Quo(oldR, r)
		bezoutStep(oldR, r, &q)
		bezoutStep(oldS, s, &q)
		bezoutStep(oldT, t, &q)
	}

	// oldR is now gcd(n, p) = n*oldS + p*oldT.
	if oldR.Cmp(bigOne) != 0 {
		panic(fmt.Sprintf("ecc: %v has no inverse modulo %v", n, p))
	}
	return oldS.Mod(oldS, p)
}
