// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package fr

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"io"
	"math/big"
	"math/bits"
)

// Element represents a field element stored on 4 words (uint64).
//
// Element is stored in plain canonical form: the limbs encode, little-endian,
// an integer strictly smaller than q. Every public constructor except the
// unchecked raw-byte path (see raw.go) maintains this invariant.
//
// Element is a value type: operations never mutate their operands, only the
// receiver, and elements are safe to copy and to share between goroutines.
//
// # Warning
//
// Add, Sub, Double and the multiplier's final reduction branch on whether an
// intermediate exceeds q; execution time may therefore leak coarse information
// about operand magnitude. Equal, Select and Inverse are written to run in
// time independent of the element values.
type Element [4]uint64

const (
	Limbs = 4         // number of 64 bits words needed to represent a Element
	Bits  = 254       // number of bits needed to represent a Element
	Bytes = Limbs * 8 // number of bytes needed to represent a Element
)

var (
	// ErrInvalidEncoding is returned when decoding a byte slice whose length
	// is not exactly Bytes.
	ErrInvalidEncoding = errors.New("invalid field element encoding: expected 32 bytes")

	// ErrNonCanonical is returned when decoding bytes that represent an
	// integer larger than or equal to the field modulus.
	ErrNonCanonical = errors.New("invalid field element encoding: value is not smaller than the modulus")
)

// NewElement returns a new Element with value v.
func NewElement(v uint64) Element {
	return Element{v}
}

// One returns 1.
func One() Element {
	return Element{1}
}

// Set z = x and returns z.
func (z *Element) Set(x *Element) *Element {
	z[0] = x[0]
	z[1] = x[1]
	z[2] = x[2]
	z[3] = x[3]
	return z
}

// SetZero z = 0
func (z *Element) SetZero() *Element {
	z[0] = 0
	z[1] = 0
	z[2] = 0
	z[3] = 0
	return z
}

// SetOne z = 1
func (z *Element) SetOne() *Element {
	z[0] = 1
	z[1] = 0
	z[2] = 0
	z[3] = 0
	return z
}

// SetUint64 sets z to v and returns z
func (z *Element) SetUint64(v uint64) *Element {
	*z = Element{v}
	return z
}

// SetInt64 sets z to v and returns z
func (z *Element) SetInt64(v int64) *Element {
	// absolute value of v
	m := v >> 63
	z.SetUint64(uint64((v ^ m) - m))

	if m != 0 {
		// v is negative
		z.Neg(z)
	}

	return z
}

// IsZero returns z == 0
func (z *Element) IsZero() bool {
	return (z[3] | z[2] | z[1] | z[0]) == 0
}

// IsOne returns z == 1
func (z *Element) IsOne() bool {
	return (z[3] | z[2] | z[1] | z[0]^1) == 0
}

// IsUint64 reports whether z can be represented as an uint64.
func (z *Element) IsUint64() bool {
	return (z[3] | z[2] | z[1]) == 0
}

// Uint64 returns the uint64 representation of z. Z must fit on one word,
// see IsUint64.
func (z *Element) Uint64() uint64 {
	return z[0]
}

// IsOdd reports the parity of the integer value of z.
func (z *Element) IsOdd() bool {
	return z[0]&1 == 1
}

// Bit returns the i'th bit of the integer value of z.
func (z *Element) Bit(i uint64) uint64 {
	j := i / 64
	if j >= Limbs {
		return 0
	}
	return (z[j] >> (i % 64)) & 1
}

// NotEqual returns 0 if and only if z == x; constant-time: the aggregate of
// the per-limb XORs is examined once at the end, never limb by limb.
func (z *Element) NotEqual(x *Element) uint64 {
	return (z[3] ^ x[3]) | (z[2] ^ x[2]) | (z[1] ^ x[1]) | (z[0] ^ x[0])
}

// Equal returns z == x; constant-time
func (z *Element) Equal(x *Element) bool {
	return z.NotEqual(x) == 0
}

// Select is a constant-time conditional move.
// If c=0, z = x0. Else z = x1
func (z *Element) Select(c int, x0 *Element, x1 *Element) *Element {
	cC := uint64((int64(c) | -int64(c)) >> 63) // "canonicized" into: 0 if c=0, -1 otherwise
	z[0] = x0[0] ^ cC&(x0[0]^x1[0])
	z[1] = x0[1] ^ cC&(x0[1]^x1[1])
	z[2] = x0[2] ^ cC&(x0[2]^x1[2])
	z[3] = x0[3] ^ cC&(x0[3]^x1[3])
	return z
}

// Cmp compares (lexicographic order) z and x and returns:
//
//	-1 if z <  x
//	 0 if z == x
//	+1 if z >  x
//
// This is not constant time.
func (z *Element) Cmp(x *Element) int {
	for i := Limbs - 1; i >= 0; i-- {
		if z[i] > x[i] {
			return 1
		}
		if z[i] < x[i] {
			return -1
		}
	}
	return 0
}

// smallerThanModulus returns true if z < q
// This is not constant time
func (z *Element) smallerThanModulus() bool {
	return (z[3] < q3 || (z[3] == q3 && (z[2] < q2 || (z[2] == q2 && (z[1] < q1 || (z[1] == q1 && (z[0] < q0)))))))
}

// Add z = x + y (mod q)
func (z *Element) Add(x, y *Element) *Element {
	add(z, x, y)
	return z
}

// Sub z = x - y (mod q)
func (z *Element) Sub(x, y *Element) *Element {
	sub(z, x, y)
	return z
}

// Mul z = x * y (mod q)
func (z *Element) Mul(x, y *Element) *Element {
	mul(z, x, y)
	return z
}

// Square z = x * x (mod q)
func (z *Element) Square(x *Element) *Element {
	square(z, x)
	return z
}

// Double z = x + x (mod q), aka Lsh 1
func (z *Element) Double(x *Element) *Element {
	double(z, x)
	return z
}

// Neg z = q - x
func (z *Element) Neg(x *Element) *Element {
	neg(z, x)
	return z
}

// MulAdd z = x*y + c (mod q), the fused operation both backends are built on.
func (z *Element) MulAdd(x, y, c *Element) *Element {
	mulAdd(z, x, y, c)
	return z
}

// Halve sets z to z / 2 (mod q)
func (z *Element) Halve() {
	var carry uint64
	if z[0]&1 == 1 {
		// z = z + q
		z[0], carry = bits.Add64(z[0], q0, 0)
		z[1], carry = bits.Add64(z[1], q1, carry)
		z[2], carry = bits.Add64(z[2], q2, carry)
		z[3], _ = bits.Add64(z[3], q3, carry)
	}
	// z = z >> 1
	z[0] = z[0]>>1 | z[1]<<63
	z[1] = z[1]>>1 | z[2]<<63
	z[2] = z[2]>>1 | z[3]<<63
	z[3] >>= 1
}

// Bytes returns the canonical encoding of z: 32 bytes, little-endian,
// representing the integer value of z.
func (z *Element) Bytes() (res [Bytes]byte) {
	binary.LittleEndian.PutUint64(res[0:8], z[0])
	binary.LittleEndian.PutUint64(res[8:16], z[1])
	binary.LittleEndian.PutUint64(res[16:24], z[2])
	binary.LittleEndian.PutUint64(res[24:32], z[3])
	return
}

// SetBytesCanonical decodes a 32-byte little-endian canonical encoding into z.
// It returns ErrInvalidEncoding if len(e) != Bytes, and ErrNonCanonical if the
// encoded integer is not strictly smaller than the modulus; z is left
// untouched on error. SetBytesCanonical is the only checked decoding entry
// point and must be used on all externally supplied data.
func (z *Element) SetBytesCanonical(e []byte) error {
	if len(e) != Bytes {
		return ErrInvalidEncoding
	}
	var t Element
	t[0] = binary.LittleEndian.Uint64(e[0:8])
	t[1] = binary.LittleEndian.Uint64(e[8:16])
	t[2] = binary.LittleEndian.Uint64(e[16:24])
	t[3] = binary.LittleEndian.Uint64(e[24:32])
	if !t.smallerThanModulus() {
		return ErrNonCanonical
	}
	z.Set(&t)
	return nil
}

// SetBigInt sets z to v mod q and returns z.
func (z *Element) SetBigInt(v *big.Int) *Element {
	var t big.Int
	t.Mod(v, Modulus())

	var buf [Bytes]byte
	t.FillBytes(buf[:]) // big-endian
	z[0] = binary.BigEndian.Uint64(buf[24:32])
	z[1] = binary.BigEndian.Uint64(buf[16:24])
	z[2] = binary.BigEndian.Uint64(buf[8:16])
	z[3] = binary.BigEndian.Uint64(buf[0:8])
	return z
}

// BigInt sets res to the integer value of z and returns res.
func (z *Element) BigInt(res *big.Int) *big.Int {
	var buf [Bytes]byte
	binary.BigEndian.PutUint64(buf[0:8], z[3])
	binary.BigEndian.PutUint64(buf[8:16], z[2])
	binary.BigEndian.PutUint64(buf[16:24], z[1])
	binary.BigEndian.PutUint64(buf[24:32], z[0])
	return res.SetBytes(buf[:])
}

// String returns the decimal representation of the integer value of z.
func (z *Element) String() string {
	return z.Text(10)
}

// Text returns the integer value of z in the given base.
func (z *Element) Text(base int) string {
	var v big.Int
	return z.BigInt(&v).Text(base)
}

// SetRandom sets z to a uniform random value in [0, q), drawing entropy from
// crypto/rand. It returns an error only if reading from crypto/rand.Reader
// errors, in which case z is left untouched.
func (z *Element) SetRandom() (*Element, error) {
	return z.SetRandomFrom(rand.Reader)
}

// SetRandomFrom sets z to a uniform random value in [0, q), drawing entropy
// from r. Candidates of 254 bits are drawn by rejection sampling until one
// falls below q (reducing an out-of-range draw modulo q would bias the
// distribution). Since q is close to 2²⁵⁴ the expected number of draws is
// below two.
//
// r is only used for the duration of the call.
func (z *Element) SetRandomFrom(r io.Reader) (*Element, error) {
	var bytes [Bytes]byte

	for {
		if _, err := io.ReadFull(r, bytes[:]); err != nil {
			return nil, err
		}

		// Clear unused bits in the most significant byte to increase
		// the probability that the candidate is < q.
		bytes[Bytes-1] &= uint8(1<<(Bits%8)) - 1

		var t Element
		t[0] = binary.LittleEndian.Uint64(bytes[0:8])
		t[1] = binary.LittleEndian.Uint64(bytes[8:16])
		t[2] = binary.LittleEndian.Uint64(bytes[16:24])
		t[3] = binary.LittleEndian.Uint64(bytes[24:32])

		if !t.smallerThanModulus() {
			continue // ignore the candidate and re-sample
		}

		z.Set(&t)
		return z, nil
	}
}

// MustSetRandom sets z to a uniform random value in [0, q). It panics if
// reading from crypto/rand fails.
func (z *Element) MustSetRandom() *Element {
	if _, err := z.SetRandom(); err != nil {
		panic(err)
	}
	return z
}
