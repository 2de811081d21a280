package timespan

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNotTime is returned when both bounds are exclusive and equal, so
	// the span contains no instant at all.
	ErrNotTime = errors.New("span does not contain any time")
	// ErrMinGreaterThanMax is returned when the min bound lies after the max bound.
	ErrMinGreaterThanMax = errors.New("span has min greater than max")
)

// SpanError reports why a pair of bounds could not form a [Span].
type SpanError struct {
	// Err is ErrNotTime or ErrMinGreaterThanMax.
	Err error
	// Min is the rejected min bound.
	Min Bound
	// Max is the rejected max bound.
	Max Bound
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("%v: min %v max %v", e.Err, e.Min, e.Max)
}

func (e *SpanError) Unwrap() error {
	return e.Err
}

// Quotient classifies an instant relative to a span.
type Quotient int

const (
	// Before means the instant fails the min-side test.
	Before Quotient = iota
	// Inside means the instant passes both tests.
	Inside
	// After means the instant fails the max-side test.
	After
)

// String returns a human-readable representation of the quotient.
func (q Quotient) String() string {
	switch q {
	case Before:
		return "before"
	case Inside:
		return "inside"
	case After:
		return "after"
	default:
		return fmt.Sprintf("Quotient(%d)", int(q))
	}
}

// Span is a validated time window over one timeline.
//
// The zero value is the closed span [0, 0]. Use [Default] for [0, 0).
type Span struct {
	min Bound
	max Bound
}

// New returns a span from min to max, or a *SpanError wrapping
// [ErrNotTime] or [ErrMinGreaterThanMax].
func New(min, max Bound) (Span, error) {
	if min.IsExclusive() && max.IsExclusive() && min.d == max.d {
		return Span{}, &SpanError{Err: ErrNotTime, Min: min, Max: max}
	}
	if min.d > max.d {
		return Span{}, &SpanError{Err: ErrMinGreaterThanMax, Min: min, Max: max}
	}
	return newUnchecked(min, max), nil
}

func newUnchecked(min, max Bound) Span {
	return Span{min: min, max: max}
}

// Must returns s or panics if err is non-nil. It is intended for spans
// built from constants:
//
//	s := timespan.Must(timespan.Range(0, time.Second))
func Must(s Span, err error) Span {
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns [0, 0).
func Default() Span {
	return newUnchecked(InclusiveBound(0), ExclusiveBound(0))
}

// Range returns [start, end).
func Range(start, end time.Duration) (Span, error) {
	return New(InclusiveBound(start), ExclusiveBound(end))
}

// RangeInclusive returns [start, end].
func RangeInclusive(start, end time.Duration) (Span, error) {
	return New(InclusiveBound(start), InclusiveBound(end))
}

// RangeTo returns [0, end).
func RangeTo(end time.Duration) (Span, error) {
	return New(InclusiveBound(0), ExclusiveBound(end))
}

// RangeToInclusive returns [0, end].
func RangeToInclusive(end time.Duration) (Span, error) {
	return New(InclusiveBound(0), InclusiveBound(end))
}

// Min returns the lower bound.
func (s Span) Min() Bound {
	return s.min
}

// Max returns the upper bound.
func (s Span) Max() Bound {
	return s.max
}

// Length returns the span's local duration, max minus min.
func (s Span) Length() time.Duration {
	return s.max.d - s.min.d
}

// Quotient classifies d against the span. Each side is tested with its
// own bound kind.
func (s Span) Quotient(d time.Duration) Quotient {
	var afterMin, beforeMax bool
	if s.min.IsInclusive() {
		afterMin = d >= s.min.d
	} else {
		afterMin = d > s.min.d
	}
	if s.max.IsInclusive() {
		beforeMax = d <= s.max.d
	} else {
		beforeMax = d < s.max.d
	}
	switch {
	case afterMin && beforeMax:
		return Inside
	case afterMin:
		return After
	default:
		// Failing both sides would need min > max, which New rejects.
		return Before
	}
}

// Contains reports whether d lies inside the span.
func (s Span) Contains(d time.Duration) bool {
	return s.Quotient(d) == Inside
}

// String returns the span in interval notation, e.g. "[1s, 3s)".
func (s Span) String() string {
	var sb strings.Builder
	if s.min.IsInclusive() {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}
	sb.WriteString(s.min.d.String())
	sb.WriteString(", ")
	sb.WriteString(s.max.d.String())
	if s.max.IsInclusive() {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}
	return sb.String()
}
