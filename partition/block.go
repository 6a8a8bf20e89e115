package partition

import (
	"sync/atomic"

	"github.com/ParBLiSS/bliss/types"
)

// Block divides the source once into nPartitions near-equal static chunks;
// each partition receives exactly one chunk, and the sizes are guaranteed to
// be within one element of each other.
//
// Block is one-shot per instance, not per partition: once any partition has
// been served, every subsequent GetNext call returns the sentinel until
// Reset. Callers that want every partition to receive its share either give
// each worker its own configured instance, or reset between calls. The done
// flag is atomic, so concurrent first calls race safely and exactly one of
// them wins the instance.
type Block[T types.Numeric] struct {
	base[T]

	// done flips when the instance has served its single chunk.
	done atomic.Bool

	// rem is the left-over spread out to the first rem partitions, which each
	// receive one extra element. Always zero for floating domains.
	rem T

	// curr caches the most recently served chunk for Last.
	curr types.Range[T]
}

// Compile-time assertion that Block implements Partitioner.
var _ types.Partitioner[int64] = (*Block[int64])(nil)

// NewBlock creates an unconfigured block partitioner.
//
// Parameters:
//   - opts: Optional dependencies (WithLogger, WithMetrics)
//
// Returns:
//   - *Block[T]: Strategy instance; call Configure before use
//
// Example:
//
//	p := partition.NewBlock[uint64]()
//	if err := p.Configure(src, 4, 0, 1024); err != nil { ... }
func NewBlock[T types.Numeric](opts ...Option) *Block[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Block[T]{}
	b.name = "block"
	b.logger = o.logger
	b.metrics = o.metrics

	return b
}

// Configure divides the source into nPartitions near-equal shares.
//
// The chunkSize parameter exists to satisfy the Partitioner contract and is
// normally passed as 0: Block always computes its own chunk size as
// size/nPartitions, with the remainder going one element at a time to the
// first partitions.
func (b *Block[T]) Configure(src types.Range[T], nPartitions int, chunkSize, ghostSize T) error {
	if err := b.configure(src, nPartitions, chunkSize, ghostSize, false); err != nil {
		return err
	}

	b.chunkSize = b.src.Size() / T(nPartitions)
	// Not using modulus since T may be a floating domain. Float division
	// spreads the source exactly, so no remainder is distributed there;
	// rounding noise in size-chunkSize*n must not hand partition 0 a whole
	// extra element.
	b.rem = 0
	if !isFloatDomain[T]() {
		b.rem = b.src.Size() - b.chunkSize*T(nPartitions)
	}

	b.logConfigured(uint64(nPartitions))
	b.rewind()

	return nil
}

// GetNext returns this partition's single static chunk on the first call to
// the instance, and the sentinel on every call after that.
func (b *Block[T]) GetNext(partitionID int) (types.Range[T], error) {
	if err := b.checkPartitionID(partitionID); err != nil {
		return types.Range[T]{}, err
	}

	// Block partitioning serves the whole instance once.
	if !b.done.CompareAndSwap(false, true) {
		return b.sentinel, nil
	}

	if b.nPartitions == 1 {
		b.curr = b.src
		b.metrics.RecordChunk(b.name, partitionID, float64(b.src.Size()))
		b.metrics.RecordExhausted(b.name)

		return b.src, nil
	}

	// Partitions [0, rem) get chunkSize+1 elements starting at src.Start;
	// partitions [rem, nPartitions) get chunkSize elements offset by rem.
	chunkSize := b.chunkSize
	start := b.src.Start
	if T(partitionID) < b.rem {
		chunkSize++
	} else {
		start += b.rem
	}

	r, _ := b.chunkSpanAt(start+T(partitionID)*chunkSize, chunkSize)
	b.curr = r
	b.metrics.RecordChunk(b.name, partitionID, float64(r.Size()))
	b.metrics.RecordExhausted(b.name)

	return r, nil
}

// rewind returns the instance to its post-Configure state. Shared by
// Configure and Reset so that configuring is not itself counted as a reset.
func (b *Block[T]) rewind() {
	b.curr = b.src
	b.done.Store(false)
}

// Reset rewinds the instance so GetNext serves again.
func (b *Block[T]) Reset() {
	b.rewind()
	b.logReset()
}

// Last returns the chunk most recently served by this instance. Valid only
// after a traversal has completed; not synchronized with concurrent GetNext
// calls.
func (b *Block[T]) Last() types.Range[T] {
	return b.curr
}
