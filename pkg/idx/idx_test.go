package idx

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProducesValidSortedIDs(t *testing.T) {
	t.Parallel()

	a := New()
	b := New()

	_, err := Parse(a.String())
	require.NoError(t, err)
	_, err = Parse(b.String())
	require.NoError(t, err)

	// Monotonic entropy guarantees ordering within a process.
	require.Less(t, a.String(), b.String())
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "not-a-ulid", "0000000000000000000000000!"} {
		_, err := Parse(s)
		require.ErrorIs(t, err, ErrInvalid)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	t.Parallel()

	id := New()
	require.WithinDuration(t, time.Now().UTC(), id.Time(), time.Second)
	require.True(t, ID("garbage").Time().IsZero())
}

func TestConcurrentGeneration(t *testing.T) {
	t.Parallel()

	const n = 200
	ids := make(chan ID, n)

	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- New()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[ID]struct{}, n)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
