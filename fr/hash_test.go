// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package fr

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func TestSetBytesWide(t *testing.T) {
	// matches the big.Int computation
	var e [64]byte
	for i := range e {
		e[i] = byte(i * 7)
	}

	var z Element
	z.SetBytesWide(e)

	want := new(big.Int)
	for i := 63; i >= 0; i-- {
		want.Lsh(want, 8)
		want.Or(want, big.NewInt(int64(e[i])))
	}
	want.Mod(want, Modulus())
	require.Equal(t, want.String(), z.String())
}

func TestHash(t *testing.T) {
	a := Hash([]byte("transcript-challenge"))
	b := Hash([]byte("transcript-challenge"))
	c := Hash([]byte("transcript-challengf"))

	require.True(t, a.Equal(&b), "Hash must be deterministic")
	require.False(t, a.Equal(&c))

	// output is canonical
	require.Negative(t, a.BigInt(new(big.Int)).Cmp(Modulus()))

	// and consistent with blake2b + wide reduction
	h := blake2b.Sum512([]byte("transcript-challenge"))
	var z Element
	z.SetBytesWide(h)
	require.True(t, a.Equal(&z))
}
