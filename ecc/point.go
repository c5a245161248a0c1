// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"fmt"
	"math/big"
)

// Point is a point on a Curve.  It is either the point at infinity, which is
// the identity element of the group, or a finite point with affine
// coordinates.  Infinity and Affine are the only variants.  Pointers to them
// also satisfy the interface and are treated as the values they point to.
// Operations panic on any other implementation, such as a type embedding one
// of the variants.
type Point interface {
	// Curve returns the curve the point is bound to.
	Curve() *Curve

	// IsInfinity returns whether the point is the point at infinity.
	IsInfinity() bool

	// Equal returns whether the point is structurally equal to other: the
	// same curve and the same coordinates, or both the point at infinity.
	Equal(other Point) bool

	String() string

	point()
}

// Infinity is the point at infinity on a curve.
type Infinity struct {
	curve *Curve
}

// NewInfinity returns the point at infinity bound to the given curve.
func NewInfinity(curve *Curve) Infinity {
	return Infinity{curve: curve}
}

func (Infinity) point() {}

// Curve returns the curve the point is bound to.
func (p Infinity) Curve() *Curve {
	return p.curve
}

// IsInfinity always returns true.
func (p Infinity) IsInfinity() bool {
	return true
}

// Equal returns whether other is the point at infinity on the same curve.
func (p Infinity) Equal(other Point) bool {
	o, ok := value(other).(Infinity)
	return ok && o.curve == p.curve
}

// String returns a human-readable form of the point.
func (p Infinity) String() string {
	return "(infinity)"
}

// Affine is a finite point (x, y) on a curve with both coordinates in
// [0, p).  The zero value is not a valid point; use NewPoint.
type Affine struct {
	curve *Curve
	x     *big.Int
	y     *big.Int
}

// NewPoint returns the finite point (x, y) on the given curve.  An error is
// returned if either coordinate is not in [0, p) or the point does not satisfy
// the curve equation.
func NewPoint(curve *Curve, x, y *big.Int) (Affine, error) {
	if !curve.inField(x) || !curve.inField(y) {
		str := fmt.Sprintf("point (%v, %v) has a coordinate outside "+
			"of [0, %v)", x, y, curve.p)
		return Affine{}, eccError(ErrCoordinateRange, str)
	}
	if !curve.IsOnCurve(x, y) {
		str := fmt.Sprintf("point (%v, %v) is not on the curve %v", x, y,
			curve)
		return Affine{}, eccError(ErrPointNotOnCurve, str)
	}

	return Affine{
		curve: curve,
		x:     new(big.Int).Set(x),
		y:     new(big.Int).Set(y),
	}, nil
}

func (Affine) point() {}

// Curve returns the curve the point is bound to.
func (p Affine) Curve() *Curve {
	return p.curve
}

// IsInfinity always returns false.
func (p Affine) IsInfinity() bool {
	return false
}

// X returns a copy of the x coordinate.
func (p Affine) X() *big.Int {
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate.
func (p Affine) Y() *big.Int {
	return new(big.Int).Set(p.y)
}

// Equal returns whether other is a finite point on the same curve with the same
// coordinates.
func (p Affine) Equal(other Point) bool {
	o, ok := value(other).(Affine)
	return ok && o.curve == p.curve && o.x.Cmp(p.x) == 0 &&
		o.y.Cmp(p.y) == 0
}

// String returns a human-readable form of the point.
func (p Affine) String() string {
	return fmt.Sprintf("(%x, %x)", p.x, p.y)
}

// value returns p with a pointer variant replaced by the value it points to.
func value(p Point) Point {
	switch v := p.(type) {
	case *Affine:
		return *v
	case *Infinity:
		return *v
	}
	return p
}

// Add returns p1 + p2 according to the elliptic curve group law.  The point at
// infinity is the identity, so adding it to either side returns the other
// operand unchanged.
//
// The result of adding two points on a curve is on that curve by construction
// and is therefore not validated again.  Adding points that are bound to
// different curves is a programming error and panics, including when one of
// them is the point at infinity.
func Add(p1, p2 Point) Point {
	p1, p2 = value(p1), value(p2)
	if p1.Curve() != p2.Curve() {
		panic("ecc: cannot add points on different curves")
	}

	switch p := p1.(type) {
	case Infinity:
		return p2

	case Affine:
		switch q := p2.(type) {
		case Infinity:
			return p
		case Affine:
			return addAffine(p, q)
		}
		panic(fmt.Sprintf("ecc: unsupported point type %T", p2))
	}

	panic(fmt.Sprintf("ecc: unsupported point type %T", p1))
}

// addAffine adds two finite points on the same curve.
func addAffine(p, q Affine) Point {
	curve := p.curve

	sameX := p.x.Cmp(q.x) == 0

	// P + (-P) = O.  A point with y = 0 is its own inverse, so doubling it
	// also yields the point at infinity.
	if sameX && (p.y.Cmp(q.y) != 0 || p.y.Sign() == 0) {
		return Infinity{curve: curve}
	}

	var m big.Int
	if sameX {
		// m = (3x^2 + a) / 2y
		num := new(big.Int).Mul(p.x, p.x)
		num.Mul(num, bigThree)
		num.Add(num, curve.a)
		den := new(big.Int).Lsh(p.y, 1)
		m.Mul(num, modInverse(den, curve.p))
	} else {
		// m = (y1 - y2) / (x1 - x2)
		num := new(big.Int).Sub(p.y, q.y)
		den := new(big.Int).Sub(p.x, q.x)
		m.Mul(num, modInverse(den, curve.p))
	}
	m.Mod(&m, curve.p)

	// rx = m^2 - x1 - x2
	rx := new(big.Int).Mul(&m, &m)
	rx.Sub(rx, p.x)
	rx.Sub(rx, q.x)
	rx.Mod(rx, curve.p)

	// ry = -(m(rx - x1) + y1)
	ry := new(big.Int).Sub(rx, p.x)
	ry.Mul(ry, &m)
	ry.Add(ry, p.y)
	ry.Neg(ry)
	ry.Mod(ry, curve.p)

	return Affine{curve: curve, x: rx, y: ry}
}

// ScalarMult returns k*p, the point p added to itself k times, using the
// double-and-add method so only O(log k) point operations are needed.  The
// bits of k are processed from least to most significant.
//
// Multiplying by zero yields the point at infinity.  An error is returned if k
// is negative.
func ScalarMult(k *big.Int, p Point) (Point, error) {
	if k.Sign() < 0 {
		str := fmt.Sprintf("scalar %v is negative", k)
		return nil, eccError(ErrNegativeScalar, str)
	}

	addend := value(p)
	var result Point = Infinity{curve: addend.Curve()}
	bitLen := k.BitLen()
	for i := 0; i < bitLen; i++ {
		if k.Bit(i) == 1 {
			result = Add(result, addend)
		}

		// The final doubling would never be used.
		if i+1 < bitLen {
			addend = Add(addend, addend)
		}
	}

	return result, nil
}
