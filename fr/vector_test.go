// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package fr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func randomVector(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i].MustSetRandom()
	}
	return v
}

func TestVectorSumProduct(t *testing.T) {
	// folds start from the identities
	emptySum := Vector(nil).Sum()
	require.True(t, emptySum.IsZero())
	emptyProd := Vector(nil).Product()
	require.True(t, emptyProd.IsOne())

	v := Vector{NewElement(2), NewElement(3), NewElement(4)}
	sum := v.Sum()
	require.Equal(t, "9", sum.String())
	prod := v.Product()
	require.Equal(t, "24", prod.String())

	// sum and product against a naive fold over random input
	r := randomVector(257)
	var wantSum, wantProd Element
	wantProd.SetOne()
	for i := range r {
		wantSum.Add(&wantSum, &r[i])
		wantProd.Mul(&wantProd, &r[i])
	}
	gotSum := r.Sum()
	gotProd := r.Product()
	require.True(t, gotSum.Equal(&wantSum))
	require.True(t, gotProd.Equal(&wantProd))
}

func TestVectorInnerProduct(t *testing.T) {
	a := Vector{NewElement(1), NewElement(2), NewElement(3)}
	b := Vector{NewElement(4), NewElement(5), NewElement(6)}
	ip := a.InnerProduct(b)
	require.Equal(t, "32", ip.String())

	require.Panics(t, func() { a.InnerProduct(b[:2]) })
}

// the parallel path must agree with the sequential one; 1<<13 elements is
// comfortably above the fan-out threshold
func TestVectorElementwiseParallel(t *testing.T) {
	const n = 1 << 13
	a := randomVector(n)
	b := randomVector(n)

	z := make(Vector, n)
	z.Add(a, b)
	for i := 0; i < n; i += 997 {
		var want Element
		want.Add(&a[i], &b[i])
		require.True(t, z[i].Equal(&want), "Add mismatch at %d", i)
	}

	z.Sub(a, b)
	for i := 0; i < n; i += 997 {
		var want Element
		want.Sub(&a[i], &b[i])
		require.True(t, z[i].Equal(&want), "Sub mismatch at %d", i)
	}

	var s Element
	s.MustSetRandom()
	z.ScalarMul(a, &s)
	for i := 0; i < n; i += 997 {
		var want Element
		want.Mul(&a[i], &s)
		require.True(t, z[i].Equal(&want), "ScalarMul mismatch at %d", i)
	}

	require.Panics(t, func() { z.Add(a[:1], b) })
}

func TestBatchInvert(t *testing.T) {
	a := randomVector(64)
	// plant zeros, including at the edges
	a[0].SetZero()
	a[31].SetZero()
	a[63].SetZero()

	res := BatchInvert(a)
	for i := range a {
		if a[i].IsZero() {
			require.True(t, res[i].IsZero(), "zero entry must stay zero")
			continue
		}
		var want Element
		require.NotNil(t, want.Inverse(&a[i]))
		require.True(t, res[i].Equal(&want), "mismatch at %d", i)
	}

	require.Empty(t, BatchInvert(nil))
}
