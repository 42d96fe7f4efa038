// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package fr

import (
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// SetBytesWide interprets e as a 512-bit little-endian integer and sets z to
// its reduction mod q. With 512 uniform input bits the output is
// statistically indistinguishable from uniform, unlike a 256-bit modular
// reduction. Not constant time; meant for deriving public challenges, not for
// processing secrets.
func (z *Element) SetBytesWide(e [64]byte) *Element {
	var be [64]byte
	for i := range e {
		be[i] = e[63-i]
	}
	var v big.Int
	v.SetBytes(be[:])
	return z.SetBigInt(&v)
}

// Hash maps an arbitrary byte string to a field element, blake2b-512 followed
// by wide reduction. Deterministic, and uniform for distinct inputs up to the
// hash's quality.
func Hash(msg []byte) Element {
	h := blake2b.Sum512(msg)
	var z Element
	z.SetBytesWide(h)
	return z
}
