package interval

import (
	"fmt"
	"strings"
)

// Interval is a half-open range [Lo, End) of integer codes.
type Interval struct {
	Lo  int64
	End int64
}

func (r Interval) IsValid() bool { return r.Lo < r.End }

func (r Interval) IsZero() bool { return r == Interval{} }

// Count returns the number of codes covered by r.
func (r Interval) Count() int64 { return r.End - r.Lo }

func (r Interval) Contains(code int64) bool { return r.Lo <= code && code < r.End }

func (r Interval) String() string {
	return fmt.Sprintf("[%d,%d)", r.Lo, r.End)
}

// Set maintains the minimal sorted list of disjoint, non-adjacent
// intervals covering a set of integer codes. Runs that touch are
// merged on insertion, runs with an interior code removed are split,
// so the list is always the shortest possible representation.
// A Set is owned by a single caller and is not safe for concurrent
// use.
type Set struct {
	rr []Interval
}

// New returns an empty set.
func New() *Set {
	return &Set{}
}

// NewSeeded returns a set covering exactly [lo, end).
func NewSeeded(lo, end int64) (*Set, error) {
	if lo >= end {
		return nil, fmt.Errorf("invalid seed interval [%d,%d)", lo, end)
	}
	return &Set{rr: []Interval{{Lo: lo, End: end}}}, nil
}

// Add ensures code is covered. Adding an already covered code is a
// no-op.
func (s *Set) Add(code int64) {
	for i, r := range s.rr {
		switch {
		case r.Contains(code):
			return
		case code == r.End:
			// code grows r on the right; a single-code gap to the
			// next interval collapses both into one run
			if i+1 < len(s.rr) && s.rr[i+1].Lo == code+1 {
				s.rr[i].End = s.rr[i+1].End
				s.rr = append(s.rr[:i+1], s.rr[i+2:]...)
			} else {
				s.rr[i].End = code + 1
			}
			return
		case code+1 == r.Lo:
			// code grows r on the left
			if i > 0 && s.rr[i-1].End == code {
				s.rr[i-1].End = r.End
				s.rr = append(s.rr[:i], s.rr[i+1:]...)
			} else {
				s.rr[i].Lo = code
			}
			return
		case code < r.Lo:
			// isolated code in the gap before r
			s.rr = append(s.rr, Interval{})
			copy(s.rr[i+1:], s.rr[i:])
			s.rr[i] = Interval{Lo: code, End: code + 1}
			return
		}
	}
	// past the end of the last interval, or the set is empty
	s.rr = append(s.rr, Interval{Lo: code, End: code + 1})
}

// Remove ensures code is not covered. Removing an absent code is a
// no-op.
func (s *Set) Remove(code int64) {
	for i, r := range s.rr {
		if code < r.Lo {
			return
		}
		if !r.Contains(code) {
			continue
		}
		switch {
		case r.Count() == 1:
			s.rr = append(s.rr[:i], s.rr[i+1:]...)
		case code == r.Lo:
			s.rr[i].Lo = code + 1
		case code == r.End-1:
			s.rr[i].End = code
		default:
			// interior delete splits the run in two
			s.rr = append(s.rr, Interval{})
			copy(s.rr[i+2:], s.rr[i+1:])
			s.rr[i] = Interval{Lo: r.Lo, End: code}
			s.rr[i+1] = Interval{Lo: code + 1, End: r.End}
		}
		return
	}
}

func (s *Set) Has(code int64) bool {
	for _, r := range s.rr {
		if code < r.Lo {
			return false
		}
		if r.Contains(code) {
			return true
		}
	}
	return false
}

// Count returns the number of covered codes.
func (s *Set) Count() int64 {
	var n int64
	for _, r := range s.rr {
		n += r.Count()
	}
	return n
}

// Len returns the number of intervals.
func (s *Set) Len() int {
	return len(s.rr)
}

func (s *Set) IsEmpty() bool {
	return len(s.rr) == 0
}

func (s *Set) Clone() *Set {
	rr := make([]Interval, len(s.rr))
	copy(rr, s.rr)
	return &Set{rr: rr}
}

func (s *Set) String() string {
	var sb strings.Builder
	for i, r := range s.rr {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(r.String())
	}
	return sb.String()
}

// Ranges returns an iterator over the current intervals in ascending
// order. The iterator holds a snapshot; mutating the set afterwards
// does not affect it.
func (s *Set) Ranges() *Iterator {
	rr := make([]Interval, len(s.rr))
	copy(rr, s.rr)
	return &Iterator{current: -1, rr: rr}
}

// Gaps returns an iterator over the uncovered ranges within the
// window [lo, end).
func (s *Set) Gaps(lo, end int64) *Iterator {
	var gaps []Interval
	next := lo
	for _, r := range s.rr {
		if r.End <= next {
			continue
		}
		if r.Lo >= end {
			break
		}
		if r.Lo > next {
			gaps = append(gaps, Interval{Lo: next, End: min(r.Lo, end)})
		}
		next = max(next, r.End)
		if next >= end {
			break
		}
	}
	if next < end {
		gaps = append(gaps, Interval{Lo: next, End: end})
	}
	return &Iterator{current: -1, rr: gaps}
}
