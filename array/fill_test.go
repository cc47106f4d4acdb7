package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendisuhubdy/sleip/alloc"
	"github.com/dendisuhubdy/sleip/internal/testutil"
)

// TestFill_RollbackOrdering tests the core transaction contract: filling six
// slots from a value whose copy construction fails on the sixth copy must
// leave a construction trace of exactly five ascending indexes and a
// destruction trace of the same five in descending order.
func TestFill_RollbackOrdering(t *testing.T) {
	tr := &testutil.Trace{FailAt: 6}
	proto := testutil.Tracked{T: tr}

	_, err := Fill(6, proto)
	require.ErrorIs(t, err, testutil.ErrCloneBoom, "the sixth copy should fail")

	assert.Equal(t, "abcde", string(tr.Built), "five elements should construct in ascending order")
	assert.Equal(t, "edcba", string(tr.Torn), "rollback should destroy them in descending order")
	assert.Zero(t, tr.Live, "no element should survive the rollback")
}

// TestFill_RollbackPreservesError tests that the failure surfaces to the
// caller unwrapped.
func TestFill_RollbackPreservesError(t *testing.T) {
	tr := &testutil.Trace{FailAt: 3}

	_, err := Fill(8, testutil.Tracked{T: tr})
	require.Error(t, err)
	assert.Equal(t, testutil.ErrCloneBoom, err, "the original error value should come back unwrapped")
}

// TestFill_AllocatorTrafficBalances tests that a failed fill returns the
// block and leaves allocator traffic balanced: one allocate, one deallocate,
// and destroy calls exactly covering the constructed prefix.
func TestFill_AllocatorTrafficBalances(t *testing.T) {
	counted := alloc.NewCounting[testutil.Tracked](alloc.NewHeap[testutil.Tracked]())
	tr := &testutil.Trace{FailAt: 4}

	_, err := FillIn[testutil.Tracked](counted, 6, testutil.Tracked{T: tr})
	require.ErrorIs(t, err, testutil.ErrCloneBoom)

	stats := counted.Stats()
	assert.Equal(t, 1, stats.Allocates, "exactly one block should be obtained")
	assert.Equal(t, 1, stats.Deallocates, "the block should be returned on failure")
	assert.Equal(t, 3, stats.Constructs, "three elements should construct before the failure")
	assert.Equal(t, 3, stats.Destroys, "rollback should destroy exactly the constructed prefix")
}

// TestFill_SuccessThenDestroyPairs tests the non-failure teardown path:
// Destroy reverses the construction order.
func TestFill_SuccessThenDestroyPairs(t *testing.T) {
	tr := &testutil.Trace{}

	buf, err := Fill(4, testutil.Tracked{T: tr})
	require.NoError(t, err, "no failure is injected")
	assert.Equal(t, "abcd", string(tr.Built))
	assert.Equal(t, 4, tr.Live)

	buf.Destroy()
	assert.Equal(t, "dcba", string(tr.Torn), "Destroy should tear down in reverse order")
	assert.Zero(t, tr.Live)
}

// TestSized_FirstDefaultFails tests the zero-prior-success scenario: when
// the very first default construction fails, the error propagates with zero
// destructor invocations.
func TestSized_FirstDefaultFails(t *testing.T) {
	flaky := &testutil.Flaky[int]{Inner: alloc.NewHeap[int](), FailDefaultAt: 1}

	_, err := SizedIn[int](flaky, 5)
	require.ErrorIs(t, err, testutil.ErrDefaultBoom)
	assert.Zero(t, flaky.Destroys, "nothing was constructed, so nothing may be destroyed")
}

// TestSized_MidwayDefaultFails tests rollback of a partial default fill.
func TestSized_MidwayDefaultFails(t *testing.T) {
	flaky := &testutil.Flaky[int]{Inner: alloc.NewHeap[int](), FailDefaultAt: 3}

	_, err := SizedIn[int](flaky, 5)
	require.ErrorIs(t, err, testutil.ErrDefaultBoom)
	assert.Equal(t, 2, flaky.Destroys, "the two constructed elements should be destroyed")
}

// TestFill_AllocateFails tests that allocation failure propagates before any
// element exists.
func TestFill_AllocateFails(t *testing.T) {
	flaky := &testutil.Flaky[int]{Inner: alloc.NewHeap[int](), FailAllocate: true}

	_, err := FillIn[int](flaky, 3, 1)
	require.ErrorIs(t, err, testutil.ErrAllocBoom)
	assert.Zero(t, flaky.Destroys, "no rollback is needed when allocation itself fails")
}
