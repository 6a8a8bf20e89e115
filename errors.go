package bliss

import "github.com/ParBLiSS/bliss/types"

// Sentinel errors re-exported from the types subpackage so callers can use
// errors.Is against the root package.
var (
	// ErrInvalidRange is returned when a range start exceeds its end.
	ErrInvalidRange = types.ErrInvalidRange

	// ErrInvalidOverlap is returned when a range overlap is negative.
	ErrInvalidOverlap = types.ErrInvalidOverlap

	// ErrInvalidPageSize is returned when a page/block size is not positive.
	ErrInvalidPageSize = types.ErrInvalidPageSize

	// ErrPageSizeUnderflow is returned when page alignment would pass below
	// the minimum representable value of the range's value domain.
	ErrPageSizeUnderflow = types.ErrPageSizeUnderflow

	// ErrInvalidConfig is returned when the partitioner configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidPartitionID is returned when GetNext is called with a
	// partition id outside [0, nPartitions).
	ErrInvalidPartitionID = types.ErrInvalidPartitionID

	// ErrNotConfigured is returned when GetNext is called before Configure.
	ErrNotConfigured = types.ErrNotConfigured
)
