package arbiter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/banker/arbiter"
	"github.com/katalvlaran/banker/core"
)

// classicArbiter binds an Arbiter to the five-process textbook state with
// available [3,3,2] (see the safety package tests for the full table).
func classicArbiter(t *testing.T) (*arbiter.Arbiter, *core.State) {
	t.Helper()
	st, err := core.NewState(
		[]int64{10, 5, 7},
		[][]int64{
			{7, 5, 3},
			{3, 2, 2},
			{9, 0, 2},
			{2, 2, 2},
			{4, 3, 3},
		},
	)
	require.NoError(t, err)
	for p, row := range [][]int64{
		{0, 1, 0}, {2, 0, 0}, {3, 0, 2}, {2, 1, 1}, {0, 0, 2},
	} {
		require.NoError(t, st.Commit(core.ProcID(p), row))
	}

	arb, err := arbiter.New(st)
	require.NoError(t, err)

	return arb, st
}

// stateFingerprint captures everything a denial must leave untouched.
func stateFingerprint(st *core.State) [][][]int64 {
	return [][][]int64{
		st.AllocationTable(),
		st.NeedTable(),
		{st.Available()},
	}
}

func TestNew_NilState(t *testing.T) {
	_, err := arbiter.New(nil)
	assert.ErrorIs(t, err, arbiter.ErrNilState)
}

// TestRequest_Granted is the textbook admission: P1 asks [1,0,2] and the
// resulting state is safe with P1 completing first.
func TestRequest_Granted(t *testing.T) {
	arb, st := classicArbiter(t)

	dec, err := arb.Request(1, []int64{1, 0, 2})
	require.NoError(t, err)
	assert.True(t, dec.Granted)
	assert.Equal(t, arbiter.ReasonGranted, dec.Reason)
	require.NotEmpty(t, dec.Sequence)
	assert.Equal(t, core.ProcID(1), dec.Sequence[0]) // P1 runs first

	alloc, err := st.Allocated(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 0, 2}, alloc)
	assert.Equal(t, []int64{2, 3, 0}, st.Available())
}

// TestRequest_ExceedsMaximumClaim: P0 asking 8 of R0 overshoots need 7.
func TestRequest_ExceedsMaximumClaim(t *testing.T) {
	arb, st := classicArbiter(t)
	before := stateFingerprint(st)

	dec, err := arb.Request(0, []int64{8, 0, 0})
	require.NoError(t, err)
	assert.False(t, dec.Granted)
	assert.Equal(t, arbiter.ReasonExceedsMaximumClaim, dec.Reason)
	assert.Equal(t, before, stateFingerprint(st)) // zero side effects
}

// TestRequest_InsufficientResources: within the claim but beyond the pool.
func TestRequest_InsufficientResources(t *testing.T) {
	arb, st := classicArbiter(t)
	before := stateFingerprint(st)

	// P0 needs up to [7,4,3] but only [3,3,2] is available.
	dec, err := arb.Request(0, []int64{4, 0, 0})
	require.NoError(t, err)
	assert.False(t, dec.Granted)
	assert.Equal(t, arbiter.ReasonInsufficientResources, dec.Reason)
	assert.Equal(t, before, stateFingerprint(st))
}

// TestRequest_UnsafeState is the textbook rejection: after P1's grant, P0
// asking [0,2,0] passes the arithmetic checks but leaves no safe order.
func TestRequest_UnsafeState(t *testing.T) {
	arb, st := classicArbiter(t)

	dec, err := arb.Request(1, []int64{1, 0, 2})
	require.NoError(t, err)
	require.True(t, dec.Granted)

	before := stateFingerprint(st)
	dec, err = arb.Request(0, []int64{0, 2, 0})
	require.NoError(t, err)
	assert.False(t, dec.Granted)
	assert.Equal(t, arbiter.ReasonUnsafeState, dec.Reason)
	assert.Equal(t, before, stateFingerprint(st)) // scratch copy discarded
}

// TestRequest_UnknownEntity covers out-of-range processes, wrong arity, and
// terminated requesters.
func TestRequest_UnknownEntity(t *testing.T) {
	arb, st := classicArbiter(t)

	dec, err := arb.Request(42, []int64{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, arbiter.ReasonUnknownEntity, dec.Reason)

	dec, err = arb.Request(0, []int64{1}) // arity 1, want 3
	require.NoError(t, err)
	assert.Equal(t, arbiter.ReasonUnknownEntity, dec.Reason)

	_, err = st.Reclaim(3)
	require.NoError(t, err)
	dec, err = arb.Request(3, []int64{0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, arbiter.ReasonUnknownEntity, dec.Reason)
}

// TestRequest_NegativeUnits is a caller bug, not a denial.
func TestRequest_NegativeUnits(t *testing.T) {
	arb, _ := classicArbiter(t)

	_, err := arb.Request(0, []int64{1, -1, 0})
	assert.ErrorIs(t, err, arbiter.ErrNegativeUnits)
	assert.ErrorIs(t, arb.Release(0, []int64{-1, 0, 0}), arbiter.ErrNegativeUnits)
}

// TestRequestOne exercises the single-resource convenience surface.
func TestRequestOne(t *testing.T) {
	arb, st := classicArbiter(t)

	dec, err := arb.RequestOne(1, 0, 1)
	require.NoError(t, err)
	assert.True(t, dec.Granted)
	alloc, err := st.Allocated(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 0, 0}, alloc)

	// Unknown resource identifier is an entity denial.
	dec, err = arb.RequestOne(1, 9, 1)
	require.NoError(t, err)
	assert.Equal(t, arbiter.ReasonUnknownEntity, dec.Reason)
}

// TestRelease_RoundTrip: grant then full release restores availability
// byte-for-byte.
func TestRelease_RoundTrip(t *testing.T) {
	arb, st := classicArbiter(t)
	before := st.Available()

	dec, err := arb.Request(1, []int64{1, 0, 2})
	require.NoError(t, err)
	require.True(t, dec.Granted)

	require.NoError(t, arb.Release(1, []int64{1, 0, 2}))
	assert.Equal(t, before, st.Available())
}

// TestRelease_Invalid: over-release fails atomically.
func TestRelease_Invalid(t *testing.T) {
	arb, st := classicArbiter(t)

	// P1 holds [2,0,0]; releasing 3 of R0 must fail and change nothing.
	err := arb.Release(1, []int64{3, 0, 0})
	assert.ErrorIs(t, err, arbiter.ErrInvalidRelease)
	alloc, err2 := st.Allocated(1)
	require.NoError(t, err2)
	assert.Equal(t, []int64{2, 0, 0}, alloc)

	// Wrong arity and unknown process surface as core sentinels.
	assert.ErrorIs(t, arb.Release(1, []int64{1}), core.ErrShapeMismatch)
	assert.ErrorIs(t, arb.Release(42, []int64{0, 0, 0}), core.ErrUnknownProcess)
}
