package timer

import "fmt"

// Repeat is how many more times a timer may repeat after its first cycle.
type Repeat struct {
	infinite bool
	times    int
	repeated int
}

// Infinitely returns a repeat policy that never runs out.
func Infinitely() Repeat {
	return Repeat{infinite: true}
}

// Times returns a repeat policy allowing n repeats after the first cycle.
// Negative n is treated as zero.
func Times(n int) Repeat {
	return Repeat{times: max(n, 0)}
}

// IsInfinite reports whether the policy never runs out.
func (r Repeat) IsInfinite() bool {
	return r.infinite
}

// Repeated returns how many repeats have happened so far.
func (r Repeat) Repeated() int {
	return r.repeated
}

// Remaining returns how many repeats are left. ok is false for infinite
// policies.
func (r Repeat) Remaining() (n int, ok bool) {
	if r.infinite {
		return 0, false
	}
	return r.times - r.repeated, true
}

// Exhausted reports whether no repeats are left.
func (r Repeat) Exhausted() bool {
	return !r.infinite && r.repeated >= r.times
}

// Reset clears the repeat counter.
func (r *Repeat) Reset() {
	r.repeated = 0
}

func (r *Repeat) advance() bool {
	if r.Exhausted() {
		return false
	}
	r.repeated++
	return true
}

func (r Repeat) String() string {
	if r.infinite {
		return fmt.Sprintf("infinitely (repeated %d)", r.repeated)
	}
	return fmt.Sprintf("%d/%d times", r.repeated, r.times)
}
