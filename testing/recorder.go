package testing

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/zeebo/xxh3"

	"github.com/ParBLiSS/bliss/types"
)

// Recorder collects the chunks handed out during a traversal, safely from
// any number of goroutines, and checks the properties every partitioning
// strategy must uphold: the non-sentinel chunks of a full traversal cover
// exactly [src.Start, src.End) with no gaps and no overlap beyond each
// chunk's declared ghost region.
type Recorder[T types.Numeric] struct {
	chunks *xsync.Map[uint64, types.Range[T]]
}

// NewRecorder creates an empty chunk recorder.
func NewRecorder[T types.Numeric]() *Recorder[T] {
	return &Recorder[T]{chunks: xsync.NewMap[uint64, types.Range[T]]()}
}

// Record stores a chunk. Sentinel (empty) ranges are ignored so workers can
// feed every GetNext result straight in. Recording two distinct chunks with
// the same start keeps only the last one; VerifyCoverage then reports the
// resulting gap.
func (rec *Recorder[T]) Record(chunk types.Range[T]) {
	if chunk.Empty() {
		return
	}
	rec.chunks.Store(bitsOf(chunk.Start), chunk)
}

// Len returns the number of distinct chunks recorded.
func (rec *Recorder[T]) Len() int {
	return rec.chunks.Size()
}

// Chunks returns the recorded chunks sorted by start position.
func (rec *Recorder[T]) Chunks() []types.Range[T] {
	out := make([]types.Range[T], 0, rec.chunks.Size())
	rec.chunks.Range(func(_ uint64, chunk types.Range[T]) bool {
		out = append(out, chunk)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })

	return out
}

// VerifyCoverage checks that the recorded chunks tile the source exactly:
// successive chunk regions (the span excluding the trailing ghost) must abut
// with no gap and no overlap, the first must begin at src.Start, and the last
// must end at src.End with a fully clamped ghost.
//
// Parameters:
//   - src: The source range the traversal was configured with
//
// Returns:
//   - error: Description of the first violation found, nil when coverage is exact
func (rec *Recorder[T]) VerifyCoverage(src types.Range[T]) error {
	chunks := rec.Chunks()
	if len(chunks) == 0 {
		if src.Empty() {
			return nil
		}

		return fmt.Errorf("no chunks recorded for non-empty source %v", src)
	}

	if chunks[0].Start != src.Start {
		return fmt.Errorf("first chunk %v does not begin at source start %v", chunks[0], src.Start)
	}

	for i := 1; i < len(chunks); i++ {
		prev, cur := chunks[i-1], chunks[i]
		regionEnd := prev.End - prev.Overlap
		if cur.Start < regionEnd {
			return fmt.Errorf("chunk %v overlaps previous %v beyond its declared ghost", cur, prev)
		}
		if cur.Start > regionEnd {
			return fmt.Errorf("gap between %v and %v", prev, cur)
		}
	}

	// The last chunk may close the source with its ghost region alone (a
	// cyclic slot stops once its end clamps), so only the union matters here.
	last := chunks[len(chunks)-1]
	if last.End != src.End {
		return fmt.Errorf("last chunk %v does not close at source end %v", last, src.End)
	}

	return nil
}

// Fingerprint returns an xxh3 hash over the sorted chunk set, including each
// chunk's bounds and ghost length. Two traversals that produced the same set
// of chunks have the same fingerprint regardless of goroutine scheduling or
// partition assignment, which makes replay comparisons one integer compare.
func (rec *Recorder[T]) Fingerprint() uint64 {
	h := xxh3.New()
	var buf [8 * 3]byte
	for _, chunk := range rec.Chunks() {
		binary.LittleEndian.PutUint64(buf[0:8], bitsOf(chunk.Start))
		binary.LittleEndian.PutUint64(buf[8:16], bitsOf(chunk.End))
		binary.LittleEndian.PutUint64(buf[16:24], bitsOf(chunk.Overlap))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

// bitsOf encodes a numeric value as a map key / hash input. The encoding is
// a bijection per value domain, which is all the recorder needs.
func bitsOf[T types.Numeric](v T) uint64 {
	switch x := any(v).(type) {
	case float32:
		return uint64(math.Float32bits(x))
	case float64:
		return math.Float64bits(x)
	default:
		return uint64(int64(v))
	}
}
