// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"fmt"
	"math/big"
)

// Generator pairs a base point G with its precomputed order N, the smallest
// positive integer such that N*G is the point at infinity.  The order is taken
// as given and is not derived or verified.
type Generator struct {
	g Affine
	n *big.Int
}

// NewGenerator returns a generator for the base point g with order n.  An
// error is returned if g is the point at infinity or n is not positive.
func NewGenerator(g Point, n *big.Int) (*Generator, error) {
	base, ok := value(g).(Affine)
	if !ok {
		str := fmt.Sprintf("generator base point must be finite (got %v)", g)
		return nil, eccError(ErrInvalidGenerator, str)
	}
	if n.Sign() <= 0 {
		str := fmt.Sprintf("generator order must be positive (got %v)", n)
		return nil, eccError(ErrInvalidGenerator, str)
	}

	return &Generator{g: base, n: new(big.Int).Set(n)}, nil
}

// G returns the base point.
func (g *Generator) G() Affine {
	return g.g
}

// N returns a copy of the order of the base point.
func (g *Generator) N() *big.Int {
	return new(big.Int).Set(g.n)
}

// Curve returns the curve the base point is on.
func (g *Generator) Curve() *Curve {
	return g.g.curve
}
