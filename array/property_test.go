package array

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendisuhubdy/sleip/alloc"
	"github.com/dendisuhubdy/sleip/internal/testutil"
)

// TestProperty_NoLeaksUnderRandomWorkloads runs randomized construction
// workloads, with and without injected failures, and verifies the invariants
// that matter: allocator traffic balances, every constructed element is
// destroyed exactly once, and no element survives a failed construction.
func TestProperty_NoLeaksUnderRandomWorkloads(t *testing.T) {
	rng := rand.New(rand.NewSource(0x51e1b))

	for round := 0; round < 500; round++ {
		counted := alloc.NewCounting[testutil.Tracked](alloc.NewHeap[testutil.Tracked]())
		tr := &testutil.Trace{}
		n := rng.Intn(12)

		// Roughly half the rounds inject a copy failure somewhere in
		// range; the rest run clean.
		if rng.Intn(2) == 0 {
			tr.FailAt = 1 + rng.Intn(12)
		}

		buf, err := FillIn[testutil.Tracked](counted, n, testutil.Tracked{T: tr})
		if err != nil {
			require.ErrorIs(t, err, testutil.ErrCloneBoom, "round %d: only the injected failure may surface", round)
			assert.Zero(t, tr.Live, "round %d: a failed fill may not leave live elements", round)
		} else {
			assert.Equal(t, n, buf.Len(), "round %d", round)

			// Sometimes copy, sometimes move, before tearing down.
			switch rng.Intn(3) {
			case 0:
				dup, copyErr := Copy(buf)
				if copyErr == nil {
					dup.Destroy()
				} else {
					require.ErrorIs(t, copyErr, testutil.ErrCloneBoom, "round %d", round)
				}
			case 1:
				buf = Move(buf)
			}
			buf.Destroy()
			assert.Zero(t, tr.Live, "round %d: teardown must destroy every element", round)
		}

		stats := counted.Stats()
		assert.Equal(t, stats.Allocates, stats.Deallocates, "round %d: every block must be returned", round)
		assert.Equal(t, stats.Constructs, stats.Destroys, "round %d: construct/destroy must pair up", round)
	}
}
