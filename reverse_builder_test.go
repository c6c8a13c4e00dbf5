// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galvanized-logic/motionspec/spring"
)

func TestReverseBuilderEmptySpec(t *testing.T) {
	spec, err := NewReverseBuilder(spring.Snap, Linear(2, 1)).CompleteWith(Linear(2, 1))
	require.NoError(t, err)
	require.Len(t, spec.Breakpoints(), 2)

	seg, err := spec.segmentAtInput(3, DirMax, nil)
	require.NoError(t, err)
	require.Equal(t, 7.0, seg.Mapping.Map(3))
}

func TestReverseBuilderRejectsNonDecreasingPosition(t *testing.T) {
	_, err := NewReverseBuilder(spring.Snap, Identity).
		ToBreakpoint(10).
		ContinueWith(Identity).
		ToBreakpoint(20). // must be strictly below 10
		CompleteWith(Identity)
	require.ErrorIs(t, err, ErrInvalidSpec)
}

func TestReverseBuilderProducesAscendingTableMatchingForwardBuilder(t *testing.T) {
	forward, err := NewBuilder(spring.Snap, Fixed(1)).
		ToBreakpoint(0).
		ContinueWith(Identity).
		ToBreakpoint(10).
		CompleteWith(Fixed(2))
	require.NoError(t, err)

	reverse, err := NewReverseBuilder(spring.Snap, Fixed(2)).
		ToBreakpoint(10).
		ContinueWith(Identity).
		ToBreakpoint(0).
		CompleteWith(Fixed(1))
	require.NoError(t, err)

	fb, rb := forward.Breakpoints(), reverse.Breakpoints()
	require.Len(t, rb, len(fb))
	for i := range fb {
		require.Equal(t, fb[i].Key, rb[i].Key)
		require.Equal(t, fb[i].Position, rb[i].Position)
	}

	for _, x := range []float64{-5, 5, 15} {
		fs, err := forward.segmentAtInput(x, DirMax, nil)
		require.NoError(t, err)
		rs, err := reverse.segmentAtInput(x, DirMax, nil)
		require.NoError(t, err)
		require.Equal(t, fs.Mapping.Map(x), rs.Mapping.Map(x))
	}
}

func TestReverseBuilderContinueWithTargetValue(t *testing.T) {
	spec, err := NewReverseBuilder(spring.Snap, Identity).
		ToBreakpoint(10).
		JumpTo(20).
		ContinueWithTargetValue(0).
		ToBreakpoint(0).
		ContinueWith(Identity).
		CompleteWith(Identity)
	require.NoError(t, err)

	seg, err := spec.segmentAtInput(5, DirMax, nil)
	require.NoError(t, err)
	// Linear interpolation between (10, 20) and (0, 0): slope 2, offset 0.
	require.InDelta(t, 10.0, seg.Mapping.Map(5), 1e-9)
}
