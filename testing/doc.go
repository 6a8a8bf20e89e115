// Package testing provides test utilities for the bliss partition library.
//
// It follows Go's convention of offering testing helpers in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: types.Logger that writes through testing.T
//   - Recorder: concurrency-safe chunk recorder for verifying traversal
//     coverage and comparing replays by fingerprint
//
// Example usage:
//
//	import (
//	    "testing"
//	    blisstest "github.com/ParBLiSS/bliss/testing"
//	)
//
//	func TestTraversal(t *testing.T) {
//	    rec := blisstest.NewRecorder[uint64]()
//	    // workers: rec.Record(chunk) for every non-sentinel chunk
//	    require.NoError(t, rec.VerifyCoverage(src))
//	}
package testing
