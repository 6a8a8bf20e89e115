package bliss

import (
	"fmt"

	"github.com/ParBLiSS/bliss/partition"
	"github.com/ParBLiSS/bliss/types"
)

// Kind identifies a partitioning strategy for runtime selection.
type Kind string

// Built-in partitioning strategies.
const (
	// KindBlock divides the source once into near-equal static chunks, one
	// per partition.
	KindBlock Kind = "block"

	// KindCyclic assigns fixed-size chunks round-robin by a fixed stride.
	KindCyclic Kind = "cyclic"

	// KindDemandDriven allocates fixed-size chunks in call order from a
	// shared atomic cursor.
	KindDemandDriven Kind = "demand-driven"
)

// New creates a partitioner of the given kind.
//
// The strategy is chosen at runtime, which lets callers drive the policy
// from configuration; use the partition package constructors directly when
// the strategy is fixed at compile time or when the concrete type's extra
// queries (e.g. Last) are needed.
//
// Parameters:
//   - kind: Strategy selector (KindBlock, KindCyclic, KindDemandDriven)
//   - opts: Optional dependencies (partition.WithLogger, partition.WithMetrics)
//
// Returns:
//   - Partitioner[T]: Unconfigured strategy instance; call Configure before use
//   - error: ErrInvalidConfig wrap for an unknown kind
//
// Example:
//
//	p, err := bliss.New[uint64](bliss.KindDemandDriven)
//	if err != nil { ... }
//	if err := p.Configure(src, runtime.NumCPU(), 1<<20, 4096); err != nil { ... }
func New[T types.Numeric](kind Kind, opts ...partition.Option) (Partitioner[T], error) {
	switch kind {
	case KindBlock:
		return partition.NewBlock[T](opts...), nil
	case KindCyclic:
		return partition.NewCyclic[T](opts...), nil
	case KindDemandDriven:
		return partition.NewDemandDriven[T](opts...), nil
	default:
		return nil, fmt.Errorf("%w: unknown partitioner kind %q", ErrInvalidConfig, kind)
	}
}
