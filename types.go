package bliss

import "github.com/ParBLiSS/bliss/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing the strategy
// and internal packages to depend on `types` without depending on the root
// `bliss` package, while still providing a convenient `bliss.Range`,
// `bliss.Partitioner`, etc. for users.
type (
	Range[T types.Numeric]       = types.Range[T]
	Partitioner[T types.Numeric] = types.Partitioner[T]
)

// Re-export interfaces and constraints from the types subpackage for convenience.
type (
	Numeric          = types.Numeric
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// NewRange creates a range over [start, end) with no overlap.
// See types.New.
func NewRange[T types.Numeric](start, end T) (Range[T], error) {
	return types.New(start, end)
}

// NewRangeWithOverlap creates a range over [start, end) carrying a trailing
// ghost region. See types.NewWithOverlap.
func NewRangeWithOverlap[T types.Numeric](start, end, overlap T) (Range[T], error) {
	return types.NewWithOverlap(start, end, overlap)
}
