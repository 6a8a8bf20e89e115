package partition

import (
	"fmt"
	"math"

	"github.com/ParBLiSS/bliss/types"
)

// base carries the configuration state and boundary math shared by all
// strategies. It is not usable on its own; each strategy embeds it and
// implements the Partitioner contract on top.
type base[T types.Numeric] struct {
	// src is the range to be partitioned, with its overlap stripped to zero.
	// Partitioning operates on an overlap-free source; the ghost region is
	// something the partitioner produces, not consumes.
	src types.Range[T]

	// sentinel is the precomputed "no more work" range [src.End, src.End).
	sentinel types.Range[T]

	nPartitions int
	chunkSize   T
	ghostSize   T

	name       string
	logger     types.Logger
	metrics    types.MetricsCollector
	configured bool
}

// configure validates and stores the shared configuration.
//
// needChunkSize is set by strategies that divide by the chunk size (Cyclic,
// DemandDriven); Block auto-computes its own and accepts zero.
func (b *base[T]) configure(src types.Range[T], nPartitions int, chunkSize, ghostSize T, needChunkSize bool) error {
	if nPartitions < 1 {
		return fmt.Errorf("%w: nPartitions must be >= 1, got %d", types.ErrInvalidConfig, nPartitions)
	}
	if ghostSize < 0 {
		return fmt.Errorf("%w: ghostSize must be >= 0, got %v", types.ErrInvalidConfig, ghostSize)
	}
	if chunkSize < 0 {
		return fmt.Errorf("%w: chunkSize must be >= 0, got %v", types.ErrInvalidConfig, chunkSize)
	}
	if needChunkSize && chunkSize == 0 {
		return fmt.Errorf("%w: %s partitioner requires a positive chunkSize", types.ErrInvalidConfig, b.name)
	}

	b.src = src
	b.src.Overlap = 0
	b.sentinel = types.Range[T]{BlockStart: src.End, Start: src.End, End: src.End}
	b.nPartitions = nPartitions
	b.chunkSize = chunkSize
	b.ghostSize = ghostSize
	b.configured = true

	return nil
}

// checkPartitionID guards the GetNext entry points.
func (b *base[T]) checkPartitionID(partitionID int) error {
	if !b.configured {
		return types.ErrNotConfigured
	}
	if partitionID < 0 || partitionID >= b.nPartitions {
		return fmt.Errorf("%w: %d not in [0, %d)", types.ErrInvalidPartitionID, partitionID, b.nPartitions)
	}

	return nil
}

// chunkSpanAt computes the chunk starting at start with the given chunk size,
// folding in the configured ghost region, and reports whether the chunk is
// the final one before the source end.
//
// Branches, ordered by distance from the source end:
//  1. the end lies within the chunk region: truncate, ghost = 0
//  2. the end lies within the ghost region: truncate, ghost = what remains
//  3. far from the end: full chunkSize + ghost
//
// All comparisons stay on the non-negative side of the value domain so the
// math is safe for unsigned T.
func (b *base[T]) chunkSpanAt(start, chunkSize T) (types.Range[T], bool) {
	if start >= b.src.End {
		return b.sentinel, true
	}

	remaining := b.src.End - start
	r := types.Range[T]{BlockStart: start, Start: start}
	switch {
	case remaining <= chunkSize:
		r.End = b.src.End
		r.Overlap = 0

		return r, true
	case remaining-chunkSize <= b.ghostSize:
		r.End = b.src.End
		r.Overlap = remaining - chunkSize

		return r, true
	default:
		r.End = start + chunkSize + b.ghostSize
		r.Overlap = b.ghostSize

		return r, false
	}
}

// chunkCount returns the number of chunkSize-sized chunks covering the
// source, using ceiling division for both integral and floating domains.
// A trailing partial chunk counts as a whole one; a zero-size source has no
// chunks.
func (b *base[T]) chunkCount() uint64 {
	return chunkCount(b.src.Size(), b.chunkSize)
}

func chunkCount[T types.Numeric](size, chunkSize T) uint64 {
	if size <= 0 || chunkSize <= 0 {
		return 0
	}

	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return uint64(math.Ceil(float64(size) / float64(chunkSize)))
	default:
		// (size-1)/chunkSize + 1 avoids the overflow of size+chunkSize-1.
		return uint64((size-1)/chunkSize) + 1
	}
}

// isFloatDomain reports whether T is a floating-point value domain.
func isFloatDomain[T types.Numeric]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

func (b *base[T]) logConfigured(chunks uint64) {
	b.logger.Debug("partitioner configured",
		"strategy", b.name,
		"start", b.src.Start,
		"end", b.src.End,
		"partitions", b.nPartitions,
		"chunkSize", b.chunkSize,
		"ghostSize", b.ghostSize,
		"chunks", chunks,
	)
	b.metrics.RecordConfigure(b.name, b.nPartitions, chunks)
}

func (b *base[T]) logReset() {
	b.logger.Debug("partitioner reset", "strategy", b.name)
	b.metrics.RecordReset(b.name)
}
