package types

import "fmt"

// Range represents a half-open interval [Start, End) over a numeric value
// domain, such as a byte range of a file or an abstract index space.
//
// The trailing Overlap ("ghost") region is counted inside [Start, End): a
// chunk with Overlap > 0 extends past its nominal share so that a downstream
// record parser never sees a record truncated exactly at a chunk boundary.
// BlockStart marks the greatest block-aligned position at or before Start
// (e.g. a page boundary for efficient memory-mapped I/O) and never exceeds
// Start.
//
// Range has pure value semantics and no concurrency concerns. Equality
// (Equal) compares Start and End only.
type Range[T Numeric] struct {
	// BlockStart is the starting position aligned to an underlying block
	// boundary, such as a disk page. Always <= Start.
	BlockStart T

	// Start is the starting position in absolute coordinates.
	Start T

	// End is one past the last position, in absolute coordinates.
	// The overlap region is included.
	End T

	// Overlap is the length of the trailing ghost region shared with the
	// next adjacent range.
	Overlap T
}

// New creates a range over [start, end) with no overlap.
//
// Parameters:
//   - start: Starting position in absolute coordinates
//   - end: One past the last position
//
// Returns:
//   - Range[T]: The constructed range with BlockStart == start
//   - error: ErrInvalidRange when start > end
func New[T Numeric](start, end T) (Range[T], error) {
	return NewWithOverlap(start, end, 0)
}

// NewWithOverlap creates a range over [start, end) carrying a trailing ghost
// region of the given length.
//
// Parameters:
//   - start: Starting position in absolute coordinates
//   - end: One past the last position (the ghost region is included)
//   - overlap: Length of the trailing ghost region
//
// Returns:
//   - Range[T]: The constructed range with BlockStart == start
//   - error: ErrInvalidRange when start > end, ErrInvalidOverlap when overlap < 0
func NewWithOverlap[T Numeric](start, end, overlap T) (Range[T], error) {
	if start > end {
		return Range[T]{}, fmt.Errorf("%w: [%v, %v)", ErrInvalidRange, start, end)
	}
	if overlap < 0 {
		return Range[T]{}, fmt.Errorf("%w: %v", ErrInvalidOverlap, overlap)
	}

	return Range[T]{BlockStart: start, Start: start, End: end, Overlap: overlap}, nil
}

// Equal reports whether two ranges cover the same interval.
// BlockStart and Overlap are not compared.
func (r Range[T]) Equal(other Range[T]) bool {
	return r.Start == other.Start && r.End == other.End
}

// Size returns the length of the interval, including the overlap region.
func (r Range[T]) Size() T {
	return r.End - r.Start
}

// Empty reports whether the range is zero-length.
//
// Partitioners signal "no more work" with an empty sentinel range, so callers
// typically use Empty as the loop termination test.
func (r Range[T]) Empty() bool {
	return r.Start == r.End
}

// Union expands the range to cover both operands, taking the larger overlap.
// The result may include positions contained in neither operand.
func (r Range[T]) Union(other Range[T]) Range[T] {
	r.UnionWith(other)
	return r
}

// UnionWith is the in-place form of Union.
func (r *Range[T]) UnionWith(other Range[T]) {
	r.Start = min(r.Start, other.Start)
	r.BlockStart = r.Start
	r.End = max(r.End, other.End)
	r.Overlap = max(r.Overlap, other.Overlap)
}

// Intersect shrinks the range to the positions contained in both operands,
// clamped to non-negative size. When the operands do not intersect the result
// is an empty range positioned at the smaller of the two candidate bounds.
func (r Range[T]) Intersect(other Range[T]) Range[T] {
	r.IntersectWith(other)
	return r
}

// IntersectWith is the in-place form of Intersect.
func (r *Range[T]) IntersectWith(other Range[T]) {
	r.Start = max(r.Start, other.Start)
	r.End = min(r.End, other.End)
	r.Overlap = max(r.Overlap, other.Overlap)

	// Disjoint operands would leave start past end.
	r.Start = min(r.Start, r.End)
	r.BlockStart = r.Start
}

// Subtract truncates the range at the other range's start. The operation is
// order-sensitive: r.Subtract(other) != other.Subtract(r) in general.
//
// Outcomes by position of other.Start:
//   - before r: empty range at other.Start
//   - inside r: [r.Start, other.Start)
//   - after r: r unchanged
func (r Range[T]) Subtract(other Range[T]) Range[T] {
	r.SubtractWith(other)
	return r
}

// SubtractWith is the in-place form of Subtract.
func (r *Range[T]) SubtractWith(other Range[T]) {
	r.Start = min(r.Start, other.Start)
	r.BlockStart = r.Start
	r.End = min(r.End, other.Start)
}

// ShiftRight translates both bounds up by amount and resets BlockStart to the
// new start.
func (r Range[T]) ShiftRight(amount T) Range[T] {
	r.Start += amount
	r.End += amount
	r.BlockStart = r.Start

	return r
}

// ShiftLeft translates both bounds down by amount and resets BlockStart to
// the new start.
func (r Range[T]) ShiftLeft(amount T) Range[T] {
	r.Start -= amount
	r.End -= amount
	r.BlockStart = r.Start

	return r
}

// AlignToPage aligns the range to an underlying block boundary, e.g. a disk
// page size, by moving BlockStart back to the greatest multiple of pageSize
// that is <= Start, rounding toward negative infinity. Start and End are left
// unchanged.
//
// Parameters:
//   - pageSize: The size of the underlying block, must be positive
//
// Returns:
//   - Range[T]: The range with BlockStart recomputed
//   - error: ErrInvalidPageSize when pageSize <= 0, ErrPageSizeUnderflow when
//     the alignment would pass below T's minimum representable value
func (r Range[T]) AlignToPage(pageSize T) (Range[T], error) {
	if pageSize <= 0 {
		return r, fmt.Errorf("%w: %v", ErrInvalidPageSize, pageSize)
	}

	aligned, err := alignDown(r.Start, pageSize)
	if err != nil {
		return r, fmt.Errorf("align range %v to page %v: %w", r, pageSize, err)
	}
	r.BlockStart = aligned

	return r, nil
}

// IsPageAligned reports whether BlockStart sits on a multiple of pageSize.
// A non-positive pageSize is never aligned.
func (r Range[T]) IsPageAligned(pageSize T) bool {
	if pageSize <= 0 {
		return false
	}

	return modulo(r.BlockStart, pageSize) == 0
}

// String renders the range for logs and error messages.
func (r Range[T]) String() string {
	return fmt.Sprintf("range: block@%v [%v:%v) overlap %v", r.BlockStart, r.Start, r.End, r.Overlap)
}
