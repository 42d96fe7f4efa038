// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package zkvm is the trusted boundary to the host field instructions of a
// verifiable-execution target. It is only populated under the "zkvm" build
// tag; nothing outside this package reasons about the instruction encoding,
// only about the documented pre/post-conditions of its functions.
package zkvm
