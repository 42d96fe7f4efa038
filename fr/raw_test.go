// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package fr

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRawRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		var a Element
		a.MustSetRandom()

		var buf bytes.Buffer
		n, err := a.WriteRawTo(&buf)
		require.NoError(t, err)
		require.Equal(t, int64(Bytes), n)

		var back Element
		n, err = back.ReadRawFrom(&buf)
		require.NoError(t, err)
		require.Equal(t, int64(Bytes), n)
		require.True(t, back.Equal(&a))
	}
}

func TestRawMatchesCanonicalForCanonicalValues(t *testing.T) {
	// in this plain-form limb layout the raw image of a canonical element
	// coincides with its canonical encoding
	var a Element
	a.MustSetRandom()
	raw := a.RawBytes()
	canonical := a.Bytes()
	if diff := cmp.Diff(canonical, raw); diff != "" {
		t.Fatalf("raw image differs from canonical encoding:\n%s", diff)
	}
}

func TestRawUnchecked(t *testing.T) {
	// the unchecked path copies limbs verbatim, canonical or not
	nonCanonical := qElement.RawBytes()
	var z Element
	z.SetRawBytesUnchecked(nonCanonical)
	require.Equal(t, qElement, z)

	// the checked path refuses the same bytes
	var c Element
	require.ErrorIs(t, c.SetBytesCanonical(nonCanonical[:]), ErrNonCanonical)
}

func TestReadRawFromShortInput(t *testing.T) {
	var z Element
	_, err := z.ReadRawFrom(bytes.NewReader(make([]byte, Bytes-1)))
	require.Error(t, err)
}
