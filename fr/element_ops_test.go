// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package fr

import (
	"math/big"
	"testing"

	gcfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// The accelerated backend derives every ring operation from the single fused
// muladd primitive. These properties pin the derivation formulas against the
// direct operations, so the algebra holds whichever backend implements
// muladd.
func TestMulAddDerivations(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	one := One()
	two := NewElement(2)
	var negOne Element
	negOne.Neg(&one)

	properties.Property("add(x,y) == muladd(1,x,y)", prop.ForAll(
		func(x, y Element) bool {
			var l, r Element
			l.Add(&x, &y)
			r.MulAdd(&one, &x, &y)
			return l.Equal(&r)
		},
		genElement(), genElement(),
	))

	properties.Property("sub(x,y) == muladd(-1,y,x)", prop.ForAll(
		func(x, y Element) bool {
			var l, r Element
			l.Sub(&x, &y)
			r.MulAdd(&negOne, &y, &x)
			return l.Equal(&r)
		},
		genElement(), genElement(),
	))

	properties.Property("mul(x,y) == muladd(x,y,0)", prop.ForAll(
		func(x, y Element) bool {
			var l, r, zero Element
			l.Mul(&x, &y)
			r.MulAdd(&x, &y, &zero)
			return l.Equal(&r)
		},
		genElement(), genElement(),
	))

	properties.Property("square(x) == muladd(x,x,0)", prop.ForAll(
		func(x Element) bool {
			var l, r, zero Element
			l.Square(&x)
			r.MulAdd(&x, &x, &zero)
			return l.Equal(&r)
		},
		genElement(),
	))

	properties.Property("double(x) == muladd(2,x,0)", prop.ForAll(
		func(x Element) bool {
			var l, r, zero Element
			l.Double(&x)
			r.MulAdd(&two, &x, &zero)
			return l.Equal(&r)
		},
		genElement(),
	))

	properties.Property("neg(x) == muladd(-1,x,0)", prop.ForAll(
		func(x Element) bool {
			var l, r, zero Element
			l.Neg(&x)
			r.MulAdd(&negOne, &x, &zero)
			return l.Equal(&r)
		},
		genElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// toGC converts an element to gnark-crypto's bn254 fr representation.
func toGC(a *Element) gcfr.Element {
	var g gcfr.Element
	g.SetBigInt(a.BigInt(new(big.Int)))
	return g
}

// fromGC converts back.
func fromGC(g *gcfr.Element) Element {
	var a Element
	a.SetBigInt(g.BigInt(new(big.Int)))
	return a
}

// Differential check against gnark-crypto's independent bn254 fr
// implementation (Montgomery-form internals, asm multipliers): every
// operation must agree on the integer value of the result.
func TestDifferentialAgainstGnarkCrypto(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	properties.Property("add/sub/mul/neg agree with gnark-crypto", prop.ForAll(
		func(a, b Element) bool {
			ga, gb := toGC(&a), toGC(&b)

			var z Element
			var gz gcfr.Element

			z.Add(&a, &b)
			gz.Add(&ga, &gb)
			if want := fromGC(&gz); !z.Equal(&want) {
				return false
			}

			z.Sub(&a, &b)
			gz.Sub(&ga, &gb)
			if want := fromGC(&gz); !z.Equal(&want) {
				return false
			}

			z.Mul(&a, &b)
			gz.Mul(&ga, &gb)
			if want := fromGC(&gz); !z.Equal(&want) {
				return false
			}

			z.Neg(&a)
			gz.Neg(&ga)
			if want := fromGC(&gz); !z.Equal(&want) {
				return false
			}

			z.Square(&a)
			gz.Square(&ga)
			want := fromGC(&gz)
			return z.Equal(&want)
		},
		genElement(), genElement(),
	))

	properties.Property("inverse agrees with gnark-crypto", prop.ForAll(
		func(a Element) bool {
			if a.IsZero() {
				return true
			}
			ga := toGC(&a)

			var z Element
			var gz gcfr.Element
			if z.Inverse(&a) == nil {
				return false
			}
			gz.Inverse(&ga)
			want := fromGC(&gz)
			return z.Equal(&want)
		},
		genElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestDifferentialModulus(t *testing.T) {
	require.Equal(t, gcfr.Modulus().String(), Modulus().String())
}

// alias-safety: z may be any of the operands
func TestAliasing(t *testing.T) {
	var a Element
	a.MustSetRandom()

	ref := a

	var want Element
	want.Add(&ref, &ref)
	a.Add(&a, &a)
	require.True(t, a.Equal(&want))

	a = ref
	want.Mul(&ref, &ref)
	a.Mul(&a, &a)
	require.True(t, a.Equal(&want))

	a = ref
	want.Sub(&ref, &ref)
	a.Sub(&a, &a)
	require.True(t, a.IsZero() && want.IsZero())

	a = ref
	want.Inverse(&ref)
	a.Inverse(&a)
	require.True(t, a.Equal(&want))

	a = ref
	want.Square(&ref)
	a.Square(&a)
	require.True(t, a.Equal(&want))
}
