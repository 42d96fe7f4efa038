// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package fr

import (
	"math/big"
)

// expFixed sets z = x^e for a fixed public exponent given as little-endian
// limbs, by a plain left-to-right square-and-multiply ladder. The branch
// pattern depends only on the (public) exponent bits, never on x.
func (z *Element) expFixed(x Element, e *[Limbs]uint64) *Element {
	z.SetOne()
	for i := Bits - 1; i >= 0; i-- {
		square(z, z)
		if (e[i/64]>>(i%64))&1 == 1 {
			mul(z, z, &x)
		}
	}
	return z
}

// Exp sets z = xᵏ (mod q) and returns z.
//
// Runtime depends on the bits of k; do not use Exp with secret exponents.
func (z *Element) Exp(x Element, k *big.Int) *Element {
	if k.IsUint64() && k.Uint64() == 0 {
		return z.SetOne()
	}

	e := k
	if k.Sign() == -1 {
		// negative k, x⁻¹ᵉ, with e = -k
		xInv := new(Element).Inverse(&x)
		if xInv == nil {
			return z.SetZero()
		}
		x = *xInv
		e = new(big.Int).Neg(k)
	}

	z.Set(&x)
	for i := e.BitLen() - 2; i >= 0; i-- {
		square(z, z)
		if e.Bit(i) == 1 {
			mul(z, z, &x)
		}
	}
	return z
}

// Inverse sets z to x⁻¹ (mod q) and returns z. If x is zero, z is set to zero
// and Inverse returns nil, since zero has no multiplicative inverse.
//
// The inverse is computed by Fermat exponentiation, z = x^(q-2). The exponent
// is a fixed public constant, so for every nonzero x the ladder executes the
// same instruction sequence; only the initial zero test depends on x.
func (z *Element) Inverse(x *Element) *Element {
	if x.IsZero() {
		z.SetZero()
		return nil
	}
	return z.expFixed(*x, &qMinus2)
}

// Legendre returns the Legendre symbol of z:
//
//	 0 if z == 0
//	 1 if z is a nonzero quadratic residue
//	-1 if z is a quadratic non-residue
func (z *Element) Legendre() int {
	if z.IsZero() {
		return 0
	}
	var l Element
	l.expFixed(*z, &qMinus1Over2)
	if l.IsOne() {
		return 1
	}
	return -1
}

// Sqrt sets z to a square root of x and returns z, or returns nil (leaving z
// untouched) if x is a quadratic non-residue. The other square root is
// Neg(z).
//
// Since q ≡ 1 (mod 4) the root is found with Tonelli–Shanks, descending the
// 2-Sylow subgroup from RootOfUnity. Runtime depends on x; Sqrt is meant for
// point decompression and similar public-data work, not for secret inputs.
func (z *Element) Sqrt(x *Element) *Element {
	if x.IsZero() {
		return z.SetZero()
	}

	// w = x^((t-1)/2) with q-1 = 2^S·t
	var w, y, r Element
	w.expFixed(*x, &tMinus1Over2)
	y.Mul(x, &w).Mul(&y, &w) // x^t, an element of the 2-Sylow subgroup
	r.Mul(x, &w)             // x^((t+1)/2), the root candidate

	g := rootOfUnity
	v := S
	for !y.IsOne() {
		// m = least integer with y^(2^m) == 1
		m := uint32(0)
		sq := y
		for !sq.IsOne() {
			square(&sq, &sq)
			m++
		}
		if m == v {
			// y has full order 2^S: x is a non-residue
			return nil
		}

		// ge = g^(2^(v-m-1))
		ge := g
		for i := uint32(0); i < v-m-1; i++ {
			square(&ge, &ge)
		}

		r.Mul(&r, &ge)
		g.Square(&ge)
		y.Mul(&y, &g)
		v = m
	}

	return z.Set(&r)
}
