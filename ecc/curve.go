// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"fmt"
	"math/big"
)

// primalityRounds is the number of Miller-Rabin rounds performed in addition
// to the Baillie-PSW test when validating a field modulus.
const primalityRounds = 20

var (
	// bigThree, bigFour and bigTwentySeven are used in the discriminant and
	// slope calculations.  They are defined here to avoid the overhead of
	// creating them multiple times.
	bigThree       = big.NewInt(3)
	bigFour        = big.NewInt(4)
	bigTwentySeven = big.NewInt(27)
)

// Curve describes a short Weierstrass elliptic curve y^2 = x^3 + ax + b over
// the field of integers modulo the prime p.
//
// A Curve is immutable once constructed and is shared by reference between
// every point on it.  Points compare equal only when they reference the same
// *Curve.
type Curve struct {
	p *big.Int
	a *big.Int
	b *big.Int
}

// NewCurve returns a new curve over the field of integers modulo p with the
// given coefficients.  The coefficients are reduced into the range [0, p).
//
// An error is returned if p is not greater than 3, if p is not prime, or if
// the curve is singular, that is 4a^3 + 27b^2 = 0 (mod p).
func NewCurve(p, a, b *big.Int) (*Curve, error) {
	if p.Cmp(bigThree) <= 0 {
		str := fmt.Sprintf("p must be > 3 (got %v)", p)
		return nil, eccError(ErrFieldTooSmall, str)
	}
	if !p.ProbablyPrime(primalityRounds) {
		str := fmt.Sprintf("p is not prime (got %v)", p)
		return nil, eccError(ErrFieldNotPrime, str)
	}

	curve := &Curve{
		p: new(big.Int).Set(p),
		a: new(big.Int).Mod(a, p),
		b: new(big.Int).Mod(b, p),
	}

	// 4a^3 + 27b^2 (mod p)
	a3 := new(big.Int).Exp(curve.a, bigThree, p)
	a3.Mul(a3, bigFour)
	b2 := new(big.Int).Mul(curve.b, curve.b)
	b2.Mul(b2, bigTwentySeven)
	disc := a3.Add(a3, b2)
	if disc.Mod(disc, p).Sign() == 0 {
		str := fmt.Sprintf("curve must not be singular (a=%v, b=%v, p=%v)",
			a, b, p)
		return nil, eccError(ErrCurveSingular, str)
	}

	log.Tracef("Created curve %v", curve)
	return curve, nil
}

// P returns a copy of the field modulus.
func (c *Curve) P() *big.Int {
	return new(big.Int).Set(c.p)
}

// A returns a copy of the a coefficient reduced modulo p.
func (c *Curve) A() *big.Int {
	return new(big.Int).Set(c.a)
}

// B returns a copy of the b coefficient reduced modulo p.
func (c *Curve) B() *big.Int {
	return new(big.Int).Set(c.b)
}

// inField returns whether v is in the range [0, p).
func (c *Curve) inField(v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(c.p) < 0
}

// IsOnCurve returns whether y^2 = x^3 + ax + b (mod p).  The coordinates are
// not required to be reduced.
func (c *Curve) IsOnCurve(x, y *big.Int) bool {
	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, c.p)

	rhs := new(big.Int).Exp(x, bigThree, nil)
	ax := new(big.Int).Mul(c.a, x)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, c.b)
	rhs.Mod(rhs, c.p)

	return lhs.Cmp(rhs) == 0
}

// String returns the curve equation in human-readable form.
func (c *Curve) String() string {
	return fmt.Sprintf("y^2 = x^3 + %vx + %v (mod %v)", c.a, c.b, c.p)
}
