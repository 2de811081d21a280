package timespan

import (
	"fmt"
	"strings"
	"time"
)

// Parse reads a span written in range syntax with Go duration literals:
//
//	"1s..3s"    [1s, 3s)
//	"1s..=3s"   [1s, 3s]
//	"..3s"      [0, 3s)
//	"..=3s"     [0, 3s]
func Parse(s string) (Span, error) {
	s = strings.TrimSpace(s)
	start, end, ok := strings.Cut(s, "..")
	if !ok {
		return Span{}, fmt.Errorf("invalid span %q: missing \"..\"", s)
	}

	inclusive := strings.HasPrefix(end, "=")
	end = strings.TrimPrefix(end, "=")

	max, err := parseDuration(end)
	if err != nil {
		return Span{}, fmt.Errorf("invalid span %q: %w", s, err)
	}

	start = strings.TrimSpace(start)
	if start == "" {
		if inclusive {
			return RangeToInclusive(max)
		}
		return RangeTo(max)
	}

	min, err := parseDuration(start)
	if err != nil {
		return Span{}, fmt.Errorf("invalid span %q: %w", s, err)
	}
	if inclusive {
		return RangeInclusive(min, max)
	}
	return Range(min, max)
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %v", d)
	}
	return d, nil
}
