package partition

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ParBLiSS/bliss/types"
)

func mustRange[T types.Numeric](t *testing.T, start, end T) types.Range[T] {
	t.Helper()
	r, err := types.New(start, end)
	require.NoError(t, err)

	return r
}

func TestBlock_Configure(t *testing.T) {
	t.Run("rejects zero partitions", func(t *testing.T) {
		p := NewBlock[int64]()
		err := p.Configure(mustRange[int64](t, 0, 100), 0, 0, 0)
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})

	t.Run("rejects negative ghost size", func(t *testing.T) {
		p := NewBlock[int64]()
		err := p.Configure(mustRange[int64](t, 0, 100), 3, 0, -1)
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})

	t.Run("rejects negative chunk size", func(t *testing.T) {
		p := NewBlock[int64]()
		err := p.Configure(mustRange[int64](t, 0, 100), 3, -5, 0)
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})

	t.Run("accepts zero chunk size and auto-computes", func(t *testing.T) {
		p := NewBlock[int64]()
		require.NoError(t, p.Configure(mustRange[int64](t, 0, 100), 3, 0, 0))
	})

	t.Run("strips the source overlap", func(t *testing.T) {
		src, err := types.NewWithOverlap[int64](0, 100, 7)
		require.NoError(t, err)
		p := NewBlock[int64]()
		require.NoError(t, p.Configure(src, 1, 0, 0))

		chunk, err := p.GetNext(0)
		require.NoError(t, err)
		require.EqualValues(t, 0, chunk.Overlap, "partitioning operates on an overlap-free source")
	})
}

func TestBlock_GetNext(t *testing.T) {
	t.Run("splits 100 over 3 partitions as 34/33/33", func(t *testing.T) {
		sizes := make(map[int]int64)
		for pid := range 3 {
			// One-shot per instance: each partition gets its own.
			p := NewBlock[int64]()
			require.NoError(t, p.Configure(mustRange[int64](t, 0, 100), 3, 0, 0))

			chunk, err := p.GetNext(pid)
			require.NoError(t, err)
			sizes[pid] = chunk.Size()
		}

		require.EqualValues(t, 34, sizes[0], "remainder goes to partition 0")
		require.EqualValues(t, 33, sizes[1])
		require.EqualValues(t, 33, sizes[2])
	})

	t.Run("partition bounds abut exactly", func(t *testing.T) {
		var prevEnd int64
		for pid := range 4 {
			p := NewBlock[int64]()
			require.NoError(t, p.Configure(mustRange[int64](t, 0, 1000), 4, 0, 0))

			chunk, err := p.GetNext(pid)
			require.NoError(t, err)
			require.EqualValues(t, prevEnd, chunk.Start)
			prevEnd = chunk.End
		}
		require.EqualValues(t, 1000, prevEnd)
	})

	t.Run("serves the whole source for a single partition", func(t *testing.T) {
		p := NewBlock[uint64]()
		require.NoError(t, p.Configure(mustRange[uint64](t, 10, 110), 1, 0, 0))

		chunk, err := p.GetNext(0)
		require.NoError(t, err)
		require.EqualValues(t, 10, chunk.Start)
		require.EqualValues(t, 110, chunk.End)
	})

	t.Run("returns the sentinel after the first call regardless of partition id", func(t *testing.T) {
		p := NewBlock[int64]()
		require.NoError(t, p.Configure(mustRange[int64](t, 0, 100), 3, 0, 0))

		first, err := p.GetNext(1)
		require.NoError(t, err)
		require.False(t, first.Empty())

		for pid := range 3 {
			again, err := p.GetNext(pid)
			require.NoError(t, err)
			require.True(t, again.Empty(), "block partitioning serves the instance once")
			require.EqualValues(t, 100, again.Start)
		}
	})

	t.Run("appends the ghost region to non-final partitions", func(t *testing.T) {
		for pid, want := range map[int]struct {
			start, end, ghost int64
		}{
			0: {0, 55, 5},   // 50-element share plus 5 ghost
			1: {50, 100, 0}, // final share, ghost clamped to nothing
		} {
			p := NewBlock[int64]()
			require.NoError(t, p.Configure(mustRange[int64](t, 0, 100), 2, 0, 5))

			chunk, err := p.GetNext(pid)
			require.NoError(t, err)
			require.EqualValues(t, want.start, chunk.Start)
			require.EqualValues(t, want.end, chunk.End)
			require.EqualValues(t, want.ghost, chunk.Overlap)
		}
	})

	t.Run("rejects a partition id beyond the configured count", func(t *testing.T) {
		p := NewBlock[int64]()
		require.NoError(t, p.Configure(mustRange[int64](t, 0, 100), 3, 0, 0))

		_, err := p.GetNext(3)
		require.ErrorIs(t, err, types.ErrInvalidPartitionID)
		_, err = p.GetNext(-1)
		require.ErrorIs(t, err, types.ErrInvalidPartitionID)
	})

	t.Run("fails before Configure", func(t *testing.T) {
		p := NewBlock[int64]()
		_, err := p.GetNext(0)
		require.ErrorIs(t, err, types.ErrNotConfigured)
	})

	t.Run("splits a floating domain without a remainder", func(t *testing.T) {
		p := NewBlock[float64]()
		require.NoError(t, p.Configure(mustRange[float64](t, 0, 100), 4, 0, 0))

		chunk, err := p.GetNext(1)
		require.NoError(t, err)
		require.InDelta(t, 25, chunk.Start, 1e-9)
		require.InDelta(t, 50, chunk.End, 1e-9)
	})
}

func TestBlock_Reset(t *testing.T) {
	p := NewBlock[int64]()
	require.NoError(t, p.Configure(mustRange[int64](t, 0, 100), 3, 0, 2))

	first, err := p.GetNext(1)
	require.NoError(t, err)

	sentinel, err := p.GetNext(1)
	require.NoError(t, err)
	require.True(t, sentinel.Empty())

	p.Reset()

	replay, err := p.GetNext(1)
	require.NoError(t, err)
	require.True(t, replay.Equal(first), "reset reproduces the identical chunk")
	require.Equal(t, first.Overlap, replay.Overlap)
	require.True(t, replay.Equal(p.Last()))
}

func TestBlock_ConcurrentFirstCall(t *testing.T) {
	// Exactly one of the racing callers may win the instance; everyone else
	// must observe the sentinel.
	p := NewBlock[uint64]()
	require.NoError(t, p.Configure(mustRange[uint64](t, 0, 1<<20), 8, 0, 0))

	var wg sync.WaitGroup
	served := make([]bool, 8)
	for pid := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			chunk, err := p.GetNext(pid)
			if err == nil && !chunk.Empty() {
				served[pid] = true
			}
		}()
	}
	wg.Wait()

	var winners int
	for _, won := range served {
		if won {
			winners++
		}
	}
	require.Equal(t, 1, winners)
}
