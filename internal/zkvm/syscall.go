// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

//go:build zkvm

package zkvm

// Bn254ScalarMulAdd computes z = x·y + c mod q, where q is the BN254 scalar
// field modulus, by issuing the host's fused bn254-scalar instruction.
//
// Pre-conditions: x, y and c point to 4×64-bit little-endian limb arrays
// holding canonical values (strictly smaller than q). Post-condition: z holds
// the canonical reduced result. The pointers may alias each other. The call
// has no other observable effect; in particular the host executes it in time
// independent of the operand values.
//
//go:noescape
func Bn254ScalarMulAdd(z, x, y, c *[4]uint64)
