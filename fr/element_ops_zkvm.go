// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

//go:build zkvm

// Accelerated arithmetic backend: inside a verifiable-execution target the
// host exposes one fused bn254-scalar instruction,
//
//	muladd(x, y, c) = x·y + c (mod q),
//
// and every ring operation below is a specialization of it:
//
//	add(x, y)  = muladd(1, x, y)
//	sub(x, y)  = muladd(q-1, y, x)
//	mul(x, y)  = muladd(x, y, 0)
//	square(x)  = muladd(x, x, 0)
//	double(x)  = muladd(2, x, 0)
//	neg(x)     = muladd(q-1, x, 0)
//
// Keeping the host surface to this single primitive keeps the trusted
// boundary narrow; see internal/zkvm for its pre/post-conditions. Inversion
// needs no host support: the shared Fermat ladder in element_exp.go routes
// through mul and square and therefore through muladd.

package fr

import (
	"github.com/consensys/bn254fr/internal/zkvm"
)

func mulAdd(z, x, y, c *Element) {
	zkvm.Bn254ScalarMulAdd((*[Limbs]uint64)(z), (*[Limbs]uint64)(x), (*[Limbs]uint64)(y), (*[Limbs]uint64)(c))
}

func add(z, x, y *Element) {
	mulAdd(z, &elemOne, x, y)
}

func sub(z, x, y *Element) {
	mulAdd(z, &elemNegOne, y, x)
}

func mul(z, x, y *Element) {
	mulAdd(z, x, y, &elemZero)
}

func square(z, x *Element) {
	mulAdd(z, x, x, &elemZero)
}

func double(z, x *Element) {
	mulAdd(z, &elemTwo, x, &elemZero)
}

func neg(z, x *Element) {
	mulAdd(z, &elemNegOne, x, &elemZero)
}
