// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package fr

import (
	"encoding/binary"
	"io"
)

// Raw persistence format: a direct 32-byte image of the limb layout, 8 bytes
// per limb little-endian. It exists so engine state can be spilled to memory
// or disk and reloaded without any validation cost, and it round-trips
// exactly for any value produced by this build. It is an internal-only
// format: no canonicity check is performed, the layout is not guaranteed
// portable across limb-width variants, and externally supplied data must go
// through SetBytesCanonical instead. In this plain-form layout the raw image
// of a canonical element coincides with its canonical encoding; the
// checked/unchecked distinction is the contract, not the byte pattern.

// RawBytes returns the raw limb image of z.
func (z *Element) RawBytes() (res [Bytes]byte) {
	binary.LittleEndian.PutUint64(res[0:8], z[0])
	binary.LittleEndian.PutUint64(res[8:16], z[1])
	binary.LittleEndian.PutUint64(res[16:24], z[2])
	binary.LittleEndian.PutUint64(res[24:32], z[3])
	return
}

// SetRawBytesUnchecked copies e into the limbs of z with no canonicity check.
// The invariant that z < q is waived: trusted internal transfer only.
func (z *Element) SetRawBytesUnchecked(e [Bytes]byte) *Element {
	z[0] = binary.LittleEndian.Uint64(e[0:8])
	z[1] = binary.LittleEndian.Uint64(e[8:16])
	z[2] = binary.LittleEndian.Uint64(e[16:24])
	z[3] = binary.LittleEndian.Uint64(e[24:32])
	return z
}

// WriteRawTo writes the raw limb image of z to w.
func (z *Element) WriteRawTo(w io.Writer) (int64, error) {
	b := z.RawBytes()
	n, err := w.Write(b[:])
	return int64(n), err
}

// ReadRawFrom reads a raw limb image from r into z, with no canonicity check.
func (z *Element) ReadRawFrom(r io.Reader) (int64, error) {
	var b [Bytes]byte
	n, err := io.ReadFull(r, b[:])
	if err != nil {
		return int64(n), err
	}
	z.SetRawBytesUnchecked(b)
	return int64(n), nil
}
