package fontcov

import (
	"fmt"
	"unicode"

	"golang.org/x/image/font/sfnt"

	"github.com/henderiw/covtable/pkg/glyphcov"
	"github.com/henderiw/covtable/pkg/runecov"
)

// Coverage holds the code point and glyph index coverage extracted
// from a font's character map.
type Coverage struct {
	// Runes are the code points the character map assigns a glyph to.
	Runes runecov.Coverage
	// Glyphs are the glyph indices reachable from the character map,
	// plus index 0 (.notdef), which every font carries.
	Glyphs glyphcov.Coverage
}

// FromData parses an OpenType or TrueType font and extracts its
// coverage.
func FromData(data []byte) (*Coverage, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("cannot parse font: %v", err)
	}
	return FromFont(f)
}

// FromFont walks the full Unicode range through the font's character
// map and records every mapped code point and every reachable glyph
// index.
func FromFont(f *sfnt.Font) (*Coverage, error) {
	glyphs, err := glyphcov.New(int64(f.NumGlyphs()))
	if err != nil {
		return nil, err
	}
	if err := glyphs.Add(0); err != nil {
		return nil, err
	}

	runes := runecov.New()

	var buf sfnt.Buffer
	for c := rune(0); c <= unicode.MaxRune; c++ {
		gid, err := f.GlyphIndex(&buf, c)
		if err != nil {
			return nil, fmt.Errorf("cannot look up %#x in character map: %v", c, err)
		}
		if gid == 0 {
			continue
		}
		if err := runes.Add(c); err != nil {
			return nil, err
		}
		if err := glyphs.Add(int64(gid)); err != nil {
			return nil, err
		}
	}

	return &Coverage{
		Runes:  runes,
		Glyphs: glyphs,
	}, nil
}

// FontName returns the font's family name, or "" if the name table
// has no family entry.
func FontName(f *sfnt.Font) string {
	var buf sfnt.Buffer
	name, err := f.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}
