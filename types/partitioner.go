package types

// Partitioner divides a source range into chunks and hands them out to a
// fixed number of logical partitions (typically one worker goroutine per
// partition id).
//
// Strategies implement different distribution policies:
//   - Block: one near-equal static chunk per partition, served once per instance
//   - Cyclic: fixed-size chunks assigned round-robin by a fixed stride
//   - DemandDriven: fixed-size chunks allocated in call order from a shared
//     atomic cursor, for genuine multi-goroutine load balancing
//
// Lifecycle: one instance is configured per partitioning job; workers call
// GetNext with their partition id until they receive an empty sentinel range
// (start == end == source end); Reset rewinds the instance for a new
// traversal over the same configuration without re-validating it.
//
// Partitioners never spawn goroutines, block, or perform I/O; concurrency
// guarantees are strategy-specific and documented on each implementation.
type Partitioner[T Numeric] interface {
	// Configure sets the source range, partition count, chunk size, and ghost
	// size for subsequent traversals. The source's own overlap is ignored:
	// partitioning operates on an overlap-free source, and the ghost region
	// is something the partitioner produces, not consumes.
	//
	// Parameters:
	//   - src: Range to be partitioned
	//   - nPartitions: Number of logical consumers, >= 1
	//   - chunkSize: Chunk length; 0 requests auto-computation (Block only)
	//   - ghostSize: Trailing ghost length appended to every non-final chunk, >= 0
	//
	// Returns:
	//   - error: ErrInvalidConfig wrap when a parameter is out of contract
	Configure(src Range[T], nPartitions int, chunkSize, ghostSize T) error

	// GetNext returns the next chunk for the given partition id.
	//
	// An empty range (Empty() == true) signals that no further work exists
	// for this partition; it is a normal termination signal, not a failure.
	//
	// Parameters:
	//   - partitionID: Partition id in [0, nPartitions)
	//
	// Returns:
	//   - Range[T]: The next chunk, or the empty sentinel
	//   - error: ErrInvalidPartitionID when the id is out of range,
	//     ErrNotConfigured before Configure
	GetNext(partitionID int) (Range[T], error)

	// Reset returns the partitioner to its post-Configure state so the same
	// configuration can be traversed again.
	Reset()
}
