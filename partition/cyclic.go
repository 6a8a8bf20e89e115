package partition

import "github.com/ParBLiSS/bliss/types"

// slotState tracks a cyclic partition slot through its three-state machine.
type slotState uint8

const (
	slotBefore slotState = iota // getNext not called yet, first chunk precomputed
	slotDuring                  // traversal in progress
	slotAfter                   // terminal until Reset
)

// Cyclic divides the source into fixed-size chunks and assigns them
// round-robin: partition p receives chunks p, p+nPartitions, p+2*nPartitions,
// and so on, each successive chunk offset by a fixed stride of
// chunkSize*nPartitions. When the chunks do not outnumber the partitions the
// stride is the full source size, so each slot serves at most one chunk.
//
// Cyclic requires no cross-goroutine synchronization as long as each
// goroutine only ever calls GetNext with its own partition id: every slot is
// touched by exactly one caller.
type Cyclic[T types.Numeric] struct {
	base[T]

	state []slotState
	curr  []types.Range[T]

	// nChunks caps the partition ids that ever receive work: a partition id
	// at or beyond it gets the sentinel on the very first call.
	nChunks uint64

	stride T
}

// Compile-time assertion that Cyclic implements Partitioner.
var _ types.Partitioner[int64] = (*Cyclic[int64])(nil)

// NewCyclic creates an unconfigured cyclic partitioner.
//
// Parameters:
//   - opts: Optional dependencies (WithLogger, WithMetrics)
//
// Returns:
//   - *Cyclic[T]: Strategy instance; call Configure before use
//
// Example:
//
//	p := partition.NewCyclic[uint64]()
//	if err := p.Configure(src, 4, 4096, 128); err != nil { ... }
func NewCyclic[T types.Numeric](opts ...Option) *Cyclic[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Cyclic[T]{}
	c.name = "cyclic"
	c.logger = o.logger
	c.metrics = o.metrics

	return c
}

// Configure validates the parameters, precomputes the chunk count and stride,
// and allocates one slot per partition that will ever receive work. A
// positive chunkSize is required.
func (c *Cyclic[T]) Configure(src types.Range[T], nPartitions int, chunkSize, ghostSize T) error {
	if err := c.configure(src, nPartitions, chunkSize, ghostSize, true); err != nil {
		return err
	}

	c.nChunks = c.chunkCount()

	// With fewer chunks than partitions each slot is walked through at most
	// once, so one stride covers the whole source.
	if c.nChunks > uint64(nPartitions) {
		c.stride = chunkSize * T(nPartitions)
	} else {
		c.stride = c.src.Size()
	}

	slots := min(c.nChunks, uint64(nPartitions))
	c.state = make([]slotState, slots)
	c.curr = make([]types.Range[T], slots)

	c.logConfigured(c.nChunks)
	c.rewind()

	return nil
}

// GetNext returns the partition's next chunk, striding through the source,
// or the sentinel once the partition's chunks are exhausted.
func (c *Cyclic[T]) GetNext(partitionID int) (types.Range[T], error) {
	if err := c.checkPartitionID(partitionID); err != nil {
		return types.Range[T]{}, err
	}

	// Partitions beyond the chunk count never receive work.
	if uint64(partitionID) >= c.nChunks {
		return c.sentinel, nil
	}

	switch c.state[partitionID] {
	case slotAfter:
		return c.sentinel, nil
	case slotBefore:
		// Recompute rather than trust the precomputed copy: the first chunk
		// may already clamp at the source end, which terminates the slot.
		r, final := c.chunkSpanAt(c.curr[partitionID].Start, c.chunkSize)
		c.curr[partitionID] = r
		if final {
			c.state[partitionID] = slotAfter
			c.metrics.RecordExhausted(c.name)
		} else {
			c.state[partitionID] = slotDuring
		}
		c.metrics.RecordChunk(c.name, partitionID, float64(r.Size()))

		return r, nil
	}

	// Advance by one stride. Comparing against the remaining span instead of
	// adding keeps the math clear of overflow for unsigned domains.
	if c.src.End-c.curr[partitionID].Start <= c.stride {
		c.state[partitionID] = slotAfter
		c.metrics.RecordExhausted(c.name)

		return c.sentinel, nil
	}

	r, final := c.chunkSpanAt(c.curr[partitionID].Start+c.stride, c.chunkSize)
	c.curr[partitionID] = r
	if final {
		// The chunk's end was clamped to the source end, with the ghost
		// reduced to whatever still fits. This is the slot's last chunk.
		c.state[partitionID] = slotAfter
		c.metrics.RecordExhausted(c.name)
	}
	c.metrics.RecordChunk(c.name, partitionID, float64(r.Size()))

	return r, nil
}

// rewind reinitializes every slot to its precomputed first chunk. Shared by
// Configure and Reset so that configuring is not itself counted as a reset.
func (c *Cyclic[T]) rewind() {
	for i := range c.curr {
		c.state[i] = slotBefore
		c.curr[i], _ = c.chunkSpanAt(c.src.Start+T(i)*c.chunkSize, c.chunkSize)
	}
}

// Reset reinitializes every slot to its precomputed first chunk.
func (c *Cyclic[T]) Reset() {
	c.rewind()
	c.logReset()
}

// Last returns the chunk most recently handed to the given partition. Valid
// only from the goroutine that owns the partition id.
func (c *Cyclic[T]) Last(partitionID int) types.Range[T] {
	if partitionID < 0 || uint64(partitionID) >= uint64(len(c.curr)) {
		return c.sentinel
	}

	return c.curr[partitionID]
}
