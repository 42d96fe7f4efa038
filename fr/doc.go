// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package fr implements arithmetic in the scalar field of the BN254 (alt_bn128) curve.
//
// The field modulus is
//
//	q = 21888242871839275222246405745257275088548364400416034343698204186575808495617
//	q = 0x30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001
//
// An element is stored on four 64-bit limbs, little-endian, in plain
// (non-Montgomery) canonical form: the limbs always encode the integer value
// of the element, strictly smaller than q. Keeping the representation plain
// lets the two execution backends share one bit-level layout:
//
//   - the software backend (default) implements the ring operations with
//     portable multi-precision arithmetic, using Montgomery reduction
//     internally in the multiplier;
//   - the accelerated backend (build tag "zkvm") delegates them to the
//     host's fused bn254-scalar instruction when running inside a
//     verifiable-execution target, see internal/zkvm.
//
// Both backends produce bit-identical results for every operation.
package fr
