package types

import "errors"

// Sentinel errors for the bliss partition library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components use these sentinels for known error conditions
// and wrap them with context using fmt.Errorf("...: %w", err).
//
// Note that "no more work" is never an error: partitioners signal exhaustion
// with a zero-length sentinel range, and callers must treat it as normal
// termination.

// Range errors - returned by Range constructors and alignment operations.
var (
	// ErrInvalidRange is returned when a range start exceeds its end.
	ErrInvalidRange = errors.New("invalid range: start must not exceed end")

	// ErrInvalidOverlap is returned when a range overlap is negative.
	ErrInvalidOverlap = errors.New("invalid range: overlap must be non-negative")

	// ErrInvalidPageSize is returned when a page/block size is not positive.
	ErrInvalidPageSize = errors.New("page size must be positive")

	// ErrPageSizeUnderflow is returned when aligning a range start to a page
	// boundary would pass below the minimum representable value of the range's
	// value domain. This is a configuration error (page size too large for the
	// domain) and is never silently clamped.
	ErrPageSizeUnderflow = errors.New("page alignment underflows the value domain")
)

// Partitioner errors - returned by Configure and GetNext.
var (
	// ErrInvalidConfig is returned when the partitioner configuration is
	// invalid (zero partitions, negative chunk or ghost size, or a zero chunk
	// size for a strategy that requires one).
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidPartitionID is returned when GetNext is called with a
	// partition id outside [0, nPartitions).
	ErrInvalidPartitionID = errors.New("partition id out of range")

	// ErrNotConfigured is returned when GetNext is called before Configure.
	ErrNotConfigured = errors.New("partitioner not configured")
)
