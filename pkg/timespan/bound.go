// Package timespan defines the time windows a span tween is active for.
//
// A [Span] is a pair of [Bound] values on a single timeline. Each bound is
// either inclusive or exclusive, so a span can be closed, open, or
// half-open on either side:
//
//	s, err := timespan.Range(1*time.Second, 3*time.Second) // [1s, 3s)
//	q := s.Quotient(2 * time.Second)                        // Inside
//
// Spans are validated on construction and immutable afterwards.
package timespan

import (
	"fmt"
	"time"
)

// BoundKind selects how a [Bound] is compared against an instant.
type BoundKind uint8

const (
	// Inclusive bounds contain their own instant.
	Inclusive BoundKind = iota
	// Exclusive bounds stop just short of their instant.
	Exclusive
)

// String returns a human-readable representation of the bound kind.
func (k BoundKind) String() string {
	switch k {
	case Inclusive:
		return "inclusive"
	case Exclusive:
		return "exclusive"
	default:
		return fmt.Sprintf("BoundKind(%d)", int(k))
	}
}

// Bound is a duration tagged as inclusive or exclusive.
//
// The zero value is Inclusive(0).
type Bound struct {
	kind BoundKind
	d    time.Duration
}

// InclusiveBound returns a bound that contains d.
func InclusiveBound(d time.Duration) Bound {
	return Bound{kind: Inclusive, d: d}
}

// ExclusiveBound returns a bound that excludes d.
func ExclusiveBound(d time.Duration) Bound {
	return Bound{kind: Exclusive, d: d}
}

// Duration returns the inner duration regardless of the bound kind.
func (b Bound) Duration() time.Duration {
	return b.d
}

// Kind returns whether the bound is inclusive or exclusive.
func (b Bound) Kind() BoundKind {
	return b.kind
}

// IsInclusive reports whether the bound contains its own instant.
func (b Bound) IsInclusive() bool {
	return b.kind == Inclusive
}

// IsExclusive reports whether the bound excludes its own instant.
func (b Bound) IsExclusive() bool {
	return b.kind == Exclusive
}

func (b Bound) String() string {
	return fmt.Sprintf("%s(%v)", b.kind, b.d)
}
