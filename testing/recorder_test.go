package testing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ParBLiSS/bliss/types"
)

func chunk(t *testing.T, start, end, overlap int64) types.Range[int64] {
	t.Helper()
	r, err := types.NewWithOverlap(start, end, overlap)
	require.NoError(t, err)

	return r
}

func TestRecorder_Record(t *testing.T) {
	rec := NewRecorder[int64]()

	rec.Record(chunk(t, 0, 10, 0))
	rec.Record(chunk(t, 10, 20, 0))
	rec.Record(chunk(t, 5, 5, 0)) // sentinel, ignored

	require.Equal(t, 2, rec.Len())
}

func TestRecorder_ChunksSorted(t *testing.T) {
	rec := NewRecorder[int64]()
	rec.Record(chunk(t, 20, 30, 0))
	rec.Record(chunk(t, 0, 10, 0))
	rec.Record(chunk(t, 10, 20, 0))

	chunks := rec.Chunks()
	require.Len(t, chunks, 3)
	for i := 1; i < len(chunks); i++ {
		require.Less(t, chunks[i-1].Start, chunks[i].Start)
	}
}

func TestRecorder_VerifyCoverage(t *testing.T) {
	src, err := types.New[int64](0, 30)
	require.NoError(t, err)

	t.Run("accepts an exact tiling", func(t *testing.T) {
		rec := NewRecorder[int64]()
		rec.Record(chunk(t, 0, 12, 2))
		rec.Record(chunk(t, 10, 22, 2))
		rec.Record(chunk(t, 20, 30, 0))

		require.NoError(t, rec.VerifyCoverage(src))
	})

	t.Run("accepts a tail closed by a clamped ghost", func(t *testing.T) {
		rec := NewRecorder[int64]()
		rec.Record(chunk(t, 0, 20, 0))
		rec.Record(chunk(t, 20, 30, 4))

		require.NoError(t, rec.VerifyCoverage(src))
	})

	t.Run("rejects a gap", func(t *testing.T) {
		rec := NewRecorder[int64]()
		rec.Record(chunk(t, 0, 10, 0))
		rec.Record(chunk(t, 15, 30, 0))

		require.ErrorContains(t, rec.VerifyCoverage(src), "gap")
	})

	t.Run("rejects overlap beyond the declared ghost", func(t *testing.T) {
		rec := NewRecorder[int64]()
		rec.Record(chunk(t, 0, 20, 2))
		rec.Record(chunk(t, 15, 30, 0))

		require.ErrorContains(t, rec.VerifyCoverage(src), "overlaps")
	})

	t.Run("rejects a wrong first chunk", func(t *testing.T) {
		rec := NewRecorder[int64]()
		rec.Record(chunk(t, 5, 30, 0))

		require.ErrorContains(t, rec.VerifyCoverage(src), "begin")
	})

	t.Run("rejects an open tail", func(t *testing.T) {
		rec := NewRecorder[int64]()
		rec.Record(chunk(t, 0, 25, 0))

		require.ErrorContains(t, rec.VerifyCoverage(src), "close")
	})

	t.Run("accepts an empty recording of an empty source", func(t *testing.T) {
		empty, err := types.New[int64](7, 7)
		require.NoError(t, err)
		require.NoError(t, NewRecorder[int64]().VerifyCoverage(empty))
	})

	t.Run("rejects an empty recording of a non-empty source", func(t *testing.T) {
		require.ErrorContains(t, NewRecorder[int64]().VerifyCoverage(src), "no chunks")
	})
}

func TestRecorder_Fingerprint(t *testing.T) {
	a := NewRecorder[int64]()
	b := NewRecorder[int64]()

	// Same chunk set, different insertion order.
	a.Record(chunk(t, 0, 10, 2))
	a.Record(chunk(t, 10, 20, 0))
	b.Record(chunk(t, 10, 20, 0))
	b.Record(chunk(t, 0, 10, 2))

	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	// A differing ghost length changes the fingerprint.
	c := NewRecorder[int64]()
	c.Record(chunk(t, 0, 10, 1))
	c.Record(chunk(t, 10, 20, 0))
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
