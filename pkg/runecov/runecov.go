package runecov

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/henderiw/covtable/pkg/interval"
)

const maxRune = int64(unicode.MaxRune)

type Coverage interface {
	Add(r rune) error
	Remove(r rune) error
	AddString(s string)
	AddRangeTable(rt *unicode.RangeTable) error

	Has(r rune) bool
	Count() int64
	IsEmpty() bool

	Ranges() *interval.Iterator
	Gaps() *interval.Iterator

	Intervals() *interval.Set
	RangeTable() *unicode.RangeTable
	String() string
}

// New returns an empty code point coverage over the Unicode range
// 0..U+10FFFF.
func New() Coverage {
	return &runeCoverage{
		set: interval.New(),
		max: maxRune,
	}
}

type runeCoverage struct {
	set *interval.Set
	max int64
}

func (r *runeCoverage) validate(c rune) error {
	if c < 0 || int64(c) > r.max {
		return fmt.Errorf("code point %#x out of range, max allowed: %#x", c, r.max)
	}
	return nil
}

func (r *runeCoverage) Add(c rune) error {
	if err := r.validate(c); err != nil {
		return err
	}
	r.set.Add(int64(c))
	return nil
}

func (r *runeCoverage) Remove(c rune) error {
	if err := r.validate(c); err != nil {
		return err
	}
	r.set.Remove(int64(c))
	return nil
}

// AddString covers every code point occurring in s.
func (r *runeCoverage) AddString(s string) {
	for _, c := range s {
		r.set.Add(int64(c))
	}
}

func (r *runeCoverage) AddRangeTable(rt *unicode.RangeTable) error {
	for _, r16 := range rt.R16 {
		for c := int64(r16.Lo); c <= int64(r16.Hi); c += int64(r16.Stride) {
			r.set.Add(c)
		}
	}
	for _, r32 := range rt.R32 {
		if int64(r32.Hi) > r.max {
			return fmt.Errorf("range table entry %#x-%#x out of range, max allowed: %#x", r32.Lo, r32.Hi, r.max)
		}
		for c := int64(r32.Lo); c <= int64(r32.Hi); c += int64(r32.Stride) {
			r.set.Add(c)
		}
	}
	return nil
}

func (r *runeCoverage) Has(c rune) bool {
	if c < 0 || int64(c) > r.max {
		return false
	}
	return r.set.Has(int64(c))
}

func (r *runeCoverage) Count() int64 {
	return r.set.Count()
}

func (r *runeCoverage) IsEmpty() bool {
	return r.set.IsEmpty()
}

func (r *runeCoverage) Ranges() *interval.Iterator {
	return r.set.Ranges()
}

// Gaps returns the uncovered code point ranges within 0..U+10FFFF.
func (r *runeCoverage) Gaps() *interval.Iterator {
	return r.set.Gaps(0, r.max+1)
}

// Intervals returns a copy of the underlying interval set, e.g. for
// registration in a covtable.Index.
func (r *runeCoverage) Intervals() *interval.Set {
	return r.set.Clone()
}

// RangeTable converts the coverage to a unicode.RangeTable with
// stride-1 ranges, usable with the unicode.Is* functions.
func (r *runeCoverage) RangeTable() *unicode.RangeTable {
	rt := &unicode.RangeTable{}
	iter := r.set.Ranges()
	for iter.Next() {
		lo, hi := iter.Lo(), iter.End()-1
		if hi <= 0xFFFF {
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(lo), Hi: uint16(hi), Stride: 1})
			if hi <= unicode.MaxLatin1 {
				rt.LatinOffset++
			}
			continue
		}
		if lo <= 0xFFFF {
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(lo), Hi: 0xFFFF, Stride: 1})
			lo = 0x10000
		}
		rt.R32 = append(rt.R32, unicode.Range32{Lo: uint32(lo), Hi: uint32(hi), Stride: 1})
	}
	return rt
}

// String renders the covered ranges as U+ summaries, e.g.
// "U+0041..U+005A,U+0061..U+007A".
func (r *runeCoverage) String() string {
	var sb strings.Builder
	first := true
	iter := r.set.Ranges()
	for iter.Next() {
		if !first {
			sb.WriteString(",")
		}
		first = false
		sb.WriteString(FormatRange(iter.Range()))
	}
	return sb.String()
}

// FormatRange renders a single interval as an inclusive U+ range,
// e.g. "U+0041..U+005A", or "U+0041" for a singleton.
func FormatRange(r interval.Interval) string {
	if r.Count() == 1 {
		return fmt.Sprintf("U+%04X", r.Lo)
	}
	return fmt.Sprintf("U+%04X..U+%04X", r.Lo, r.End-1)
}
