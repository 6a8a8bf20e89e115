// Package alloc provides the lock-free allocator state shared by
// demand-driven partitioning: an atomic offset cursor, a monotonically
// increasing chunk counter, and an exhaustion flag, consolidated behind one
// type so the ordering contract can be tested independently of any chunk
// boundary math.
package alloc

import (
	"math"
	"sync/atomic"

	"github.com/ParBLiSS/bliss/types"
)

// Cursor hands out successive fixed-size spans of a numeric domain to any
// number of goroutines without a lock.
//
// The offset is stored as the value's bit pattern in a single atomic word.
// Integral domains advance with one atomic add (two's-complement addition on
// the bit pattern equals addition on the value); floating domains advance
// with a compare-and-swap retry loop, since atomic addition is not defined
// for them. Go's atomics are sequentially consistent, which satisfies the
// acquire-release contract: once a goroutine observes Exhausted, no other
// goroutine can reserve a span that another caller also received.
type Cursor[T types.Numeric] struct {
	// bits holds the encoded next unallocated offset.
	bits atomic.Uint64

	// next assigns chunk ids in reservation order. Ids are handed out even
	// for reservations that land past the end of the source, so a consumer
	// indexing by chunk id must bounds-check.
	next atomic.Uint64

	exhausted atomic.Bool

	isFloat bool
}

// New creates a cursor positioned at start.
func New[T types.Numeric](start T) *Cursor[T] {
	c := &Cursor[T]{isFloat: isFloat[T]()}
	c.Reset(start)

	return c
}

// Reserve atomically claims the next step-sized span and returns its starting
// offset along with the reservation's chunk id. No two callers ever receive
// overlapping spans.
func (c *Cursor[T]) Reserve(step T) (T, uint64) {
	var offset T
	if c.isFloat {
		// CAS retry loop; comparing bit patterns sidesteps float equality.
		for {
			old := c.bits.Load()
			v := fromBits[T](old)
			if c.bits.CompareAndSwap(old, toBits(v+step)) {
				offset = v
				break
			}
		}
	} else {
		stepBits := toBits(step)
		offset = fromBits[T](c.bits.Add(stepBits) - stepBits)
	}

	return offset, c.next.Add(1) - 1
}

// Exhaust marks the cursor as drained and reports whether this call was the
// first to do so. Irreversible until Reset.
func (c *Cursor[T]) Exhaust() bool {
	return c.exhausted.CompareAndSwap(false, true)
}

// Exhausted reports whether the cursor has been drained.
func (c *Cursor[T]) Exhausted() bool {
	return c.exhausted.Load()
}

// Reset rewinds the cursor to start, clears the chunk counter, and lifts the
// exhaustion flag. Not safe to call concurrently with Reserve.
func (c *Cursor[T]) Reset(start T) {
	c.bits.Store(toBits(start))
	c.next.Store(0)
	c.exhausted.Store(false)
}

func isFloat[T types.Numeric]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// toBits encodes a numeric value into a uint64 bit pattern. The encoding is
// a bijection for every domain narrower than or equal to 64 bits, so decode
// after encode is the identity.
func toBits[T types.Numeric](v T) uint64 {
	switch x := any(v).(type) {
	case float32:
		return uint64(math.Float32bits(x))
	case float64:
		return math.Float64bits(x)
	default:
		return uint64(int64(v))
	}
}

func fromBits[T types.Numeric](b uint64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math.Float32frombits(uint32(b)))
	case float64:
		return T(math.Float64frombits(b))
	default:
		return T(int64(b))
	}
}
