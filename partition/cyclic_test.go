package partition

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ParBLiSS/bliss/types"
)

// drain collects a partition's chunk sequence until the sentinel.
func drain[T types.Numeric](t *testing.T, p types.Partitioner[T], partitionID int) []types.Range[T] {
	t.Helper()

	var out []types.Range[T]
	for {
		chunk, err := p.GetNext(partitionID)
		require.NoError(t, err)
		if chunk.Empty() {
			return out
		}
		out = append(out, chunk)
	}
}

func TestCyclic_Configure(t *testing.T) {
	t.Run("requires a positive chunk size", func(t *testing.T) {
		p := NewCyclic[int64]()
		err := p.Configure(mustRange[int64](t, 0, 100), 3, 0, 0)
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})

	t.Run("rejects zero partitions", func(t *testing.T) {
		p := NewCyclic[int64]()
		err := p.Configure(mustRange[int64](t, 0, 100), 0, 10, 0)
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})
}

func TestCyclic_GetNext(t *testing.T) {
	t.Run("strides partition 0 through 100 by 30", func(t *testing.T) {
		p := NewCyclic[uint64]()
		require.NoError(t, p.Configure(mustRange[uint64](t, 0, 100), 3, 10, 0))

		chunks := drain[uint64](t, p, 0)
		require.Len(t, chunks, 4)
		for i, want := range [][2]uint64{{0, 10}, {30, 40}, {60, 70}, {90, 100}} {
			require.EqualValues(t, want[0], chunks[i].Start)
			require.EqualValues(t, want[1], chunks[i].End)
		}
	})

	t.Run("stays exhausted after the sequence until reset", func(t *testing.T) {
		p := NewCyclic[uint64]()
		require.NoError(t, p.Configure(mustRange[uint64](t, 0, 100), 3, 10, 0))

		drain[uint64](t, p, 1)
		again, err := p.GetNext(1)
		require.NoError(t, err)
		require.True(t, again.Empty())
	})

	t.Run("returns the sentinel immediately for partitions beyond the chunk count", func(t *testing.T) {
		// 25 elements in 10-sized chunks: 3 chunks for 5 partitions.
		p := NewCyclic[int64]()
		require.NoError(t, p.Configure(mustRange[int64](t, 0, 25), 5, 10, 0))

		for pid := 3; pid < 5; pid++ {
			chunk, err := p.GetNext(pid)
			require.NoError(t, err)
			require.True(t, chunk.Empty())
			require.EqualValues(t, 25, chunk.Start, "sentinel sits at the source end")
		}
	})

	t.Run("serves one chunk per slot when chunks do not outnumber partitions", func(t *testing.T) {
		p := NewCyclic[int64]()
		require.NoError(t, p.Configure(mustRange[int64](t, 0, 25), 5, 10, 0))

		for pid, want := range [][2]int64{{0, 10}, {10, 20}, {20, 25}} {
			chunks := drain[int64](t, p, pid)
			require.Len(t, chunks, 1)
			require.EqualValues(t, want[0], chunks[0].Start)
			require.EqualValues(t, want[1], chunks[0].End)
		}
	})

	t.Run("appends the ghost and clamps it on the final chunk", func(t *testing.T) {
		// 22 elements, chunk 10, ghost 3, single partition. The chunk at 10
		// has only 2 elements of ghost room left, so its end clamps to the
		// source end and the slot finishes there; the remaining tail is
		// covered by that clamped ghost.
		p := NewCyclic[int64]()
		require.NoError(t, p.Configure(mustRange[int64](t, 0, 22), 1, 10, 3))

		chunks := drain[int64](t, p, 0)
		require.Len(t, chunks, 2)

		require.EqualValues(t, 13, chunks[0].End)
		require.EqualValues(t, 3, chunks[0].Overlap)

		require.EqualValues(t, 10, chunks[1].Start)
		require.EqualValues(t, 22, chunks[1].End, "ghost clamped at the source end")
		require.EqualValues(t, 2, chunks[1].Overlap)
	})

	t.Run("terminates a slot whose first chunk already clamps", func(t *testing.T) {
		// A ghost wider than the stride makes even the first chunk reach the
		// source end; the slot must not stride on past it.
		p := NewCyclic[int64]()
		require.NoError(t, p.Configure(mustRange[int64](t, 0, 30), 2, 10, 25))

		chunks := drain[int64](t, p, 0)
		require.Len(t, chunks, 1)
		require.EqualValues(t, 30, chunks[0].End)
		require.EqualValues(t, 20, chunks[0].Overlap)
	})

	t.Run("rejects a partition id beyond the configured count", func(t *testing.T) {
		p := NewCyclic[int64]()
		require.NoError(t, p.Configure(mustRange[int64](t, 0, 100), 3, 10, 0))

		_, err := p.GetNext(3)
		require.ErrorIs(t, err, types.ErrInvalidPartitionID)
	})

	t.Run("fails before Configure", func(t *testing.T) {
		p := NewCyclic[int64]()
		_, err := p.GetNext(0)
		require.ErrorIs(t, err, types.ErrNotConfigured)
	})

	t.Run("handles an empty source", func(t *testing.T) {
		p := NewCyclic[uint32]()
		require.NoError(t, p.Configure(mustRange[uint32](t, 5, 5), 2, 4, 0))

		chunk, err := p.GetNext(0)
		require.NoError(t, err)
		require.True(t, chunk.Empty())
	})

	t.Run("covers a floating domain with a partial trailing chunk", func(t *testing.T) {
		p := NewCyclic[float64]()
		require.NoError(t, p.Configure(mustRange[float64](t, 0, 25), 1, 10, 0))

		chunks := drain[float64](t, p, 0)
		require.Len(t, chunks, 3, "ceiling division keeps the partial chunk")
		require.InDelta(t, 25, chunks[2].End, 1e-9)
	})
}

func TestCyclic_Reset(t *testing.T) {
	p := NewCyclic[uint64]()
	require.NoError(t, p.Configure(mustRange[uint64](t, 0, 100), 3, 10, 2))

	first := drain[uint64](t, p, 2)
	p.Reset()
	replay := drain[uint64](t, p, 2)

	require.Equal(t, len(first), len(replay))
	for i := range first {
		require.True(t, first[i].Equal(replay[i]), "reset reproduces the identical sequence")
		require.Equal(t, first[i].Overlap, replay[i].Overlap)
	}
}

func TestCyclic_Last(t *testing.T) {
	p := NewCyclic[uint64]()
	require.NoError(t, p.Configure(mustRange[uint64](t, 0, 100), 3, 10, 0))

	chunk, err := p.GetNext(0)
	require.NoError(t, err)
	require.True(t, chunk.Equal(p.Last(0)))
	require.True(t, p.Last(7).Empty(), "ids without a slot report the sentinel")
}
