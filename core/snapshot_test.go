package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/banker/core"
)

// TestSnapshot_Isolation proves a snapshot owns its matrices: mutating the
// live state after capture, or the snapshot itself, leaves the other intact.
func TestSnapshot_Isolation(t *testing.T) {
	st := textbookState(t)
	require.NoError(t, st.Commit(0, []int64{1, 1, 0}))

	snap := st.Snapshot()

	// Mutate live state after capture.
	require.NoError(t, st.Commit(0, []int64{3, 0, 0}))
	assert.Equal(t, []int64{1, 1, 0}, snap.Allocated(0)) // snapshot unchanged

	// Mutate the snapshot scratch copy.
	require.NoError(t, snap.Apply(1, []int64{2, 0, 0}))
	alloc, err := st.Allocated(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0}, alloc) // live state unchanged
}

// TestSnapshot_Derivations mirrors the State derivations on a captured copy.
func TestSnapshot_Derivations(t *testing.T) {
	st := textbookState(t)
	require.NoError(t, st.Commit(2, []int64{4, 0, 1}))

	snap := st.Snapshot()
	assert.Equal(t, 3, snap.NumProcesses())
	assert.Equal(t, 3, snap.NumResources())
	assert.Equal(t, []int64{6, 5, 6}, snap.Available())
	assert.Equal(t, []int64{5, 0, 1}, snap.Need(2))
	assert.False(t, snap.Terminated(2))

	// Out-of-range identifiers degrade to nil rows, not panics.
	assert.Nil(t, snap.Need(17))
	assert.Nil(t, snap.Allocated(-1))
	assert.False(t, snap.Terminated(17))
}

// TestSnapshot_ApplyChecks mirrors Commit's defensive checks on the scratch
// copy and verifies a failed Apply leaves the snapshot byte-identical.
func TestSnapshot_ApplyChecks(t *testing.T) {
	st := textbookState(t)
	snap := st.Snapshot()

	assert.ErrorIs(t, snap.Apply(9, []int64{0, 0, 0}), core.ErrUnknownProcess)
	assert.ErrorIs(t, snap.Apply(0, []int64{1, 2}), core.ErrShapeMismatch)
	assert.ErrorIs(t, snap.Apply(0, []int64{8, 0, 0}), core.ErrInvariantViolation)
	assert.Equal(t, []int64{0, 0, 0}, snap.Allocated(0))

	// Terminated processes stay frozen in the scratch copy too.
	_, err := st.Reclaim(1)
	require.NoError(t, err)
	snap = st.Snapshot()
	assert.True(t, snap.Terminated(1))
	assert.ErrorIs(t, snap.Apply(1, []int64{1, 0, 0}), core.ErrProcessTerminated)
}

// TestSnapshot_Clone verifies Clone yields an independent copy.
func TestSnapshot_Clone(t *testing.T) {
	st := textbookState(t)
	snap := st.Snapshot()
	dup := snap.Clone()

	require.NoError(t, dup.Apply(0, []int64{1, 0, 0}))
	assert.Equal(t, []int64{0, 0, 0}, snap.Allocated(0))
	assert.Equal(t, []int64{1, 0, 0}, dup.Allocated(0))
}
