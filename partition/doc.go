// Package partition provides the built-in partitioning strategy
// implementations.
//
// A partitioner divides a one-dimensional source range into chunks and
// assigns the chunks to a fixed number of logical partitions, typically one
// worker goroutine per partition id. The package includes three strategies,
// all implementing types.Partitioner:
//
//   - Block: one near-equal static chunk per partition, computed in a single
//     division of the source; the instance serves exactly once
//   - Cyclic: fixed-size chunks assigned round-robin by a fixed stride of
//     chunkSize*nPartitions
//   - DemandDriven: fixed-size chunks allocated in call order from a shared
//     atomic cursor, safe for concurrent callers with distinct partition ids
//
// # Strategy Selection Guide
//
// Block:
//   - Use when per-element cost is uniform and partitions run at equal speed
//   - Cheapest possible bookkeeping: the split is computed once
//   - Give each worker its own configured instance (serving is one-shot per
//     instance, not per partition)
//
// Cyclic:
//   - Use when cost varies slowly across the source; striding spreads hot
//     regions over all partitions
//   - No synchronization needed as long as each goroutine keeps to its own
//     partition id
//
// DemandDriven:
//   - Use when per-chunk cost is unpredictable; idle workers pull the next
//     chunk as soon as they finish
//   - Lock-free: an atomic add for integral domains, a compare-and-swap
//     retry loop for floating domains
//
// Every strategy folds a configurable trailing ghost region into each
// non-final chunk so a downstream record parser never sees a record
// truncated exactly at a chunk boundary; the final chunk's ghost is clamped
// to whatever still fits before the source end.
//
// Exhaustion is signaled by an empty sentinel range, never by an error.
package partition
