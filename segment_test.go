// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galvanized-logic/motionspec/spring"
)

func sampleTable() []Breakpoint {
	return []Breakpoint{
		minLimit(spring.Snap),
		NewNamedBreakpoint("a", 0, spring.Snap, NoGuarantee()),
		NewNamedBreakpoint("b", 10, spring.Snap, NoGuarantee()),
		maxLimit(spring.Snap),
	}
}

func TestFindBreakpointIndexByPosition(t *testing.T) {
	table := sampleTable()

	idx, err := findBreakpointIndexByPosition(table, -5)
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	idx, err = findBreakpointIndexByPosition(table, 0)
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	idx, err = findBreakpointIndexByPosition(table, 5)
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	idx, err = findBreakpointIndexByPosition(table, 10)
	require.NoError(t, err)
	require.Equal(t, 2, idx)

	idx, err = findBreakpointIndexByPosition(table, 1000)
	require.NoError(t, err)
	require.Equal(t, 2, idx)
}

func TestFindBreakpointIndexByPositionRejectsNonFinite(t *testing.T) {
	table := sampleTable()
	_, err := findBreakpointIndexByPosition(table, math.NaN())
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = findBreakpointIndexByPosition(table, math.Inf(1))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestFindBreakpointIndexByKey(t *testing.T) {
	table := sampleTable()
	if findBreakpointIndexByKey(table, "a") != 1 {
		t.Error("expected key a at index 1")
	}
	if findBreakpointIndexByKey(table, "missing") != -1 {
		t.Error("expected -1 for absent key")
	}
}

func TestSegmentDataKeyNormalizesByPosition(t *testing.T) {
	lower := NewNamedBreakpoint("lo", 0, spring.Snap, NoGuarantee())
	upper := NewNamedBreakpoint("hi", 10, spring.Snap, NoGuarantee())

	forward := SegmentData{Entry: lower, Exit: upper, Direction: DirMax}
	backward := SegmentData{Entry: upper, Exit: lower, Direction: DirMin}

	if forward.Key().LowerKey != backward.Key().LowerKey || forward.Key().UpperKey != backward.Key().UpperKey {
		t.Error("Key() did not normalize entry/exit by position")
	}
	if forward.Key().Direction == backward.Key().Direction {
		t.Error("Key() lost direction")
	}
}

func TestIsValidForInputHalfOpenRange(t *testing.T) {
	lower := NewNamedBreakpoint("lo", 0, spring.Snap, NoGuarantee())
	upper := NewNamedBreakpoint("hi", 10, spring.Snap, NoGuarantee())
	seg := SegmentData{Entry: lower, Exit: upper, Direction: DirMax}

	if !seg.IsValidForInput(0, DirMax) {
		t.Error("lower bound should be inclusive")
	}
	if seg.IsValidForInput(10, DirMax) {
		t.Error("upper bound should be exclusive")
	}
	if seg.IsValidForInput(5, DirMin) {
		t.Error("wrong direction must be invalid")
	}
}
