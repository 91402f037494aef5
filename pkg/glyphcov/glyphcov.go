package glyphcov

import (
	"fmt"
	"strings"

	"github.com/henderiw/covtable/pkg/interval"
)

type Coverage interface {
	Add(gid int64) error
	Remove(gid int64) error

	Has(gid int64) bool
	Count() int64
	IsEmpty() bool
	NumGlyphs() int64

	Ranges() *interval.Iterator
	Gaps() *interval.Iterator

	String() string
}

// New returns an empty glyph index coverage for a font with
// numGlyphs glyphs, covering indices 0..numGlyphs-1.
func New(numGlyphs int64) (Coverage, error) {
	if numGlyphs <= 0 {
		return nil, fmt.Errorf("invalid glyph count %d", numGlyphs)
	}
	return &glyphCoverage{
		set:  interval.New(),
		size: numGlyphs,
	}, nil
}

type glyphCoverage struct {
	set  *interval.Set
	size int64
}

func (r *glyphCoverage) validate(gid int64) error {
	if gid < 0 || gid > r.size-1 {
		return fmt.Errorf("glyph id %d is bigger then max allowed index: %d", gid, r.size-1)
	}
	return nil
}

func (r *glyphCoverage) Add(gid int64) error {
	if err := r.validate(gid); err != nil {
		return err
	}
	r.set.Add(gid)
	return nil
}

func (r *glyphCoverage) Remove(gid int64) error {
	if err := r.validate(gid); err != nil {
		return err
	}
	r.set.Remove(gid)
	return nil
}

func (r *glyphCoverage) Has(gid int64) bool {
	if gid < 0 || gid > r.size-1 {
		return false
	}
	return r.set.Has(gid)
}

func (r *glyphCoverage) Count() int64 {
	return r.set.Count()
}

func (r *glyphCoverage) IsEmpty() bool {
	return r.set.IsEmpty()
}

func (r *glyphCoverage) NumGlyphs() int64 {
	return r.size
}

func (r *glyphCoverage) Ranges() *interval.Iterator {
	return r.set.Ranges()
}

// Gaps returns the unmapped glyph index ranges within
// 0..numGlyphs-1.
func (r *glyphCoverage) Gaps() *interval.Iterator {
	return r.set.Gaps(0, r.size)
}

// String renders the covered ranges as inclusive GID summaries, e.g.
// "GID 17..42,GID 64".
func (r *glyphCoverage) String() string {
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

// FormatRange renders a single interval as an inclusive GID range,
// e.g. "GID 17..42", or "GID 64" for a singleton.
func FormatRange(r interval.Interval) string {
	if r.Count() == 1 {
		return fmt.Sprintf("GID %d", r.Lo)
	}
	return fmt.Sprintf("GID %d..%d", r.Lo, r.End-1)
}
