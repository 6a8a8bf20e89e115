// Package bliss provides range partitioning for data-parallel pipelines:
// it divides a one-dimensional index interval (such as a byte range of a
// file) into chunks and assigns the chunks to a fixed number of logical
// partitions, typically one worker goroutine per partition id.
//
// # Quick Start
//
// Static equal division of a 1 GiB file across 8 workers:
//
//	import "github.com/ParBLiSS/bliss"
//
//	src, _ := bliss.NewRange[uint64](0, 1<<30)
//	p, _ := bliss.New[uint64](bliss.KindBlock)
//	if err := p.Configure(src, 8, 0, 4096); err != nil {
//	    log.Fatal(err)
//	}
//
//	chunk, _ := p.GetNext(workerID)
//	for !chunk.Empty() {
//	    process(chunk)
//	    chunk, _ = p.GetNext(workerID)
//	}
//
// # Key Features
//
//   - Three distribution policies: static equal division (Block), static
//     round-robin striding (Cyclic), and dynamic demand-driven allocation
//     from a shared atomic cursor (DemandDriven)
//   - Ghost regions: every non-final chunk carries a configurable trailing
//     overlap so a downstream record parser never sees a record truncated
//     exactly at a chunk boundary
//   - Generic over integral and floating value domains, with overflow-safe
//     boundary arithmetic for unsigned types
//   - Block-aligned access: ranges can align their block start to a page
//     size for efficient memory-mapped I/O
//
// # Architecture
//
// The Range value type and the Partitioner interface live in the types
// subpackage and are re-exported here; the three strategy implementations
// live in the partition subpackage and are selected either directly or at
// runtime through New. Workers call GetNext with their partition id until
// they receive an empty sentinel range; Reset rewinds an instance for
// another traversal of the same configuration.
//
// Partitioners never spawn goroutines, block, or perform I/O. DemandDriven
// is safe for concurrent callers with distinct partition ids; Block and
// Cyclic need no synchronization as long as each goroutine keeps to its own
// partition id.
//
// See the examples/ directory for complete working examples.
package bliss
