package partition

import (
	"github.com/ParBLiSS/bliss/internal/alloc"
	"github.com/ParBLiSS/bliss/types"
)

// DemandDriven hands out fixed-size chunks from a shared atomic cursor in
// call order, independent of which logical partition asks. Fast partitions
// come back for more work sooner, so the strategy load-balances across
// goroutines with uneven progress; the goroutine-to-chunk mapping is
// non-deterministic, but the set of chunks produced by a full traversal is.
//
// Concurrency contract: any number of goroutines may call GetNext
// concurrently as long as they use distinct partition ids. Two concurrent
// calls with the same partition id leave that id's last-assigned slot in an
// undefined state. Once any caller observes exhaustion, no caller can obtain
// another valid chunk until Reset.
type DemandDriven[T types.Numeric] struct {
	base[T]

	cursor *alloc.Cursor[T]

	nChunks uint64

	// curr records the last subrange assigned per slot, indexed by chunk id
	// when partitions outnumber chunks and by partition id otherwise.
	curr []types.Range[T]
}

// Compile-time assertion that DemandDriven implements Partitioner.
var _ types.Partitioner[int64] = (*DemandDriven[int64])(nil)

// NewDemandDriven creates an unconfigured demand-driven partitioner.
//
// Parameters:
//   - opts: Optional dependencies (WithLogger, WithMetrics)
//
// Returns:
//   - *DemandDriven[T]: Strategy instance; call Configure before use
//
// Example:
//
//	p := partition.NewDemandDriven[uint64]()
//	if err := p.Configure(src, runtime.NumCPU(), 1<<20, 4096); err != nil { ... }
func NewDemandDriven[T types.Numeric](opts ...Option) *DemandDriven[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &DemandDriven[T]{}
	d.name = "demand-driven"
	d.logger = o.logger
	d.metrics = o.metrics

	return d
}

// Configure validates the parameters and allocates the shared cursor and the
// last-assigned slots. A positive chunkSize is required.
func (d *DemandDriven[T]) Configure(src types.Range[T], nPartitions int, chunkSize, ghostSize T) error {
	if err := d.configure(src, nPartitions, chunkSize, ghostSize, true); err != nil {
		return err
	}

	d.nChunks = d.chunkCount()
	d.curr = make([]types.Range[T], min(d.nChunks, uint64(nPartitions)))
	d.cursor = alloc.New(d.src.Start)

	d.logConfigured(d.nChunks)
	d.rewind()

	return nil
}

// GetNext atomically reserves the next chunk of the source, regardless of
// which partition asks. The sentinel is returned once the source is
// exhausted. Safe for concurrent callers with distinct partition ids.
func (d *DemandDriven[T]) GetNext(partitionID int) (types.Range[T], error) {
	if err := d.checkPartitionID(partitionID); err != nil {
		return types.Range[T]{}, err
	}

	if d.cursor.Exhausted() {
		return d.sentinel, nil
	}

	offset, chunkID := d.cursor.Reserve(d.chunkSize)
	if offset >= d.src.End {
		if d.cursor.Exhaust() {
			d.metrics.RecordExhausted(d.name)
		}

		return d.sentinel, nil
	}

	r, _ := d.chunkSpanAt(offset, d.chunkSize)

	slot := uint64(partitionID)
	if d.nChunks < uint64(d.nPartitions) {
		slot = chunkID
	}
	// Chunk ids can outrun the slot count when reservations race with
	// exhaustion; such ids never belong to a valid chunk's natural slot.
	if slot < uint64(len(d.curr)) {
		d.curr[slot] = r
	}

	d.metrics.RecordChunk(d.name, partitionID, float64(r.Size()))

	return r, nil
}

// rewind returns the cursor and slots to their post-Configure state. Shared
// by Configure and Reset so that configuring is not itself counted as a
// reset. Slots seed as empty ghost-free ranges at the source start.
func (d *DemandDriven[T]) rewind() {
	if d.cursor != nil {
		d.cursor.Reset(d.src.Start)
	}
	for i := range d.curr {
		d.curr[i] = types.Range[T]{BlockStart: d.src.Start, Start: d.src.Start, End: d.src.Start}
	}
}

// Reset rewinds the shared cursor to the source start and clears the
// last-assigned slots. Not safe to call concurrently with GetNext.
func (d *DemandDriven[T]) Reset() {
	d.rewind()
	d.logReset()
}

// Last returns the chunk most recently assigned to the given slot. Valid only
// while no GetNext call is in flight for that slot.
func (d *DemandDriven[T]) Last(partitionID int) types.Range[T] {
	if partitionID < 0 || uint64(partitionID) >= uint64(len(d.curr)) {
		return d.sentinel
	}

	return d.curr[partitionID]
}
