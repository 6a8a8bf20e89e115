package types

// MetricsCollector defines methods for recording partitioner metrics.
//
// Implementations must be non-blocking and safe for concurrent use: the
// demand-driven strategy records chunks from multiple goroutines at once.
type MetricsCollector interface {
	// RecordConfigure records a successful Configure call.
	//
	// Parameters:
	//   - strategy: Strategy name ("block", "cyclic", "demand-driven")
	//   - partitions: Configured partition count
	//   - chunks: Precomputed total chunk count (0 when not applicable)
	RecordConfigure(strategy string, partitions int, chunks uint64)

	// RecordChunk records a non-sentinel chunk handed out by GetNext.
	//
	// Parameters:
	//   - strategy: Strategy name
	//   - partitionID: Partition the chunk was handed to
	//   - size: Chunk length including the ghost region
	RecordChunk(strategy string, partitionID int, size float64)

	// RecordExhausted records a partition slot (or, for demand-driven, the
	// whole instance) reaching the end of its traversal.
	RecordExhausted(strategy string)

	// RecordReset records a Reset call.
	RecordReset(strategy string)
}
