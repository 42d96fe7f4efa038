// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package fr

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Vector is a slice of field elements with the reductions and elementwise
// operations transform code folds over.
type Vector []Element

// Sum returns the sum of all elements of v, folding from zero.
func (v Vector) Sum() (sum Element) {
	for i := range v {
		add(&sum, &sum, &v[i])
	}
	return
}

// Product returns the product of all elements of v, folding from one.
func (v Vector) Product() (prod Element) {
	prod.SetOne()
	for i := range v {
		mul(&prod, &prod, &v[i])
	}
	return
}

// InnerProduct returns Σ v[i]·o[i]. It panics if the lengths differ.
func (v Vector) InnerProduct(o Vector) (res Element) {
	if len(v) != len(o) {
		panic(fmt.Sprintf("vector lengths don't match: %d != %d", len(v), len(o)))
	}
	for i := range v {
		mulAdd(&res, &v[i], &o[i], &res)
	}
	return
}

// Add sets z[i] = a[i] + b[i] for all i. It panics if the lengths differ.
func (z Vector) Add(a, b Vector) {
	if len(z) != len(a) || len(z) != len(b) {
		panic(fmt.Sprintf("vector lengths don't match: %d, %d, %d", len(z), len(a), len(b)))
	}
	parallelize(len(z), func(start, end int) {
		for i := start; i < end; i++ {
			add(&z[i], &a[i], &b[i])
		}
	})
}

// Sub sets z[i] = a[i] - b[i] for all i. It panics if the lengths differ.
func (z Vector) Sub(a, b Vector) {
	if len(z) != len(a) || len(z) != len(b) {
		panic(fmt.Sprintf("vector lengths don't match: %d, %d, %d", len(z), len(a), len(b)))
	}
	parallelize(len(z), func(start, end int) {
		for i := start; i < end; i++ {
			sub(&z[i], &a[i], &b[i])
		}
	})
}

// ScalarMul sets z[i] = a[i] · b for all i. It panics if the lengths differ.
func (z Vector) ScalarMul(a Vector, b *Element) {
	if len(z) != len(a) {
		panic(fmt.Sprintf("vector lengths don't match: %d != %d", len(z), len(a)))
	}
	s := *b // b may alias an element of z
	parallelize(len(z), func(start, end int) {
		for i := start; i < end; i++ {
			mul(&z[i], &a[i], &s)
		}
	})
}

// BatchInvert returns a new slice with res[i] = a[i]⁻¹, computed with the
// Montgomery batch trick (one inversion plus 3(n-1) multiplications). Zero
// entries stay zero.
func BatchInvert(a []Element) []Element {
	res := make([]Element, len(a))
	if len(a) == 0 {
		return res
	}

	zeroes := make([]bool, len(a))
	var accumulator Element
	accumulator.SetOne()

	for i := range a {
		if a[i].IsZero() {
			zeroes[i] = true
			continue
		}
		res[i] = accumulator
		mul(&accumulator, &accumulator, &a[i])
	}

	accumulator.Inverse(&accumulator)

	for i := len(a) - 1; i >= 0; i-- {
		if zeroes[i] {
			continue
		}
		mul(&res[i], &res[i], &accumulator)
		mul(&accumulator, &accumulator, &a[i])
	}

	return res
}

// below this size the goroutine fan-out costs more than it saves
const parallelMinBlock = 1 << 11

// parallelize splits [0, n) into one contiguous block per CPU and runs work
// on each concurrently. Small inputs run inline.
func parallelize(n int, work func(start, end int)) {
	if n < parallelMinBlock {
		work(0, n)
		return
	}

	nbBlocks := runtime.NumCPU()
	blockSize := (n + nbBlocks - 1) / nbBlocks

	var g errgroup.Group
	for start := 0; start < n; start += blockSize {
		end := min(start+blockSize, n)
		g.Go(func() error {
			work(start, end)
			return nil
		})
	}
	_ = g.Wait() // work never errors
}
