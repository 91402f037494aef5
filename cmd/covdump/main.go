// Command covdump prints the character and glyph coverage of one or
// more OpenType/TrueType font files.
//
//	covdump font.ttf [font2.ttf ...]
//	covdump -code U+0416 font.ttf font2.ttf
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/unicode/runenames"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/henderiw/covtable/pkg/covtable"
	"github.com/henderiw/covtable/pkg/fontcov"
	"github.com/henderiw/covtable/pkg/glyphcov"
	"github.com/henderiw/covtable/pkg/runecov"
)

var (
	gaps  = flag.Bool("gaps", false, "also print uncovered glyph index ranges")
	names = flag.Bool("names", false, "annotate code point ranges with Unicode character names")
	code  = flag.String("code", "", "print only the fonts covering the given code point, e.g. U+0416")
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: covdump [flags] font.ttf [font2.ttf ...]\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	idx := covtable.New()
	covs := map[string]*fontcov.Coverage{}

	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("cannot read %s: %v", path, err)
		}
		f, err := sfnt.Parse(data)
		if err != nil {
			log.Fatalf("cannot parse %s: %v", path, err)
		}
		cov, err := fontcov.FromFont(f)
		if err != nil {
			log.Fatalf("cannot extract coverage of %s: %v", path, err)
		}
		name := fontcov.FontName(f)
		if name == "" {
			name = filepath.Base(path)
		}
		if err := idx.Claim(name, cov.Runes.Intervals(), labels.Set{"file": filepath.Base(path)}); err != nil {
			log.Fatalf("cannot index %s: %v", path, err)
		}
		covs[name] = cov
	}

	if *code != "" {
		c, err := parseCode(*code)
		if err != nil {
			log.Fatalf("invalid code point %q: %v", *code, err)
		}
		for _, e := range idx.Covering(c) {
			fmt.Printf("%s (%s)\n", e.Name(), e.Labels()["file"])
		}
		return
	}

	iter := idx.Iterate()
	for iter.Next() {
		cov := covs[iter.Name()]
		fmt.Printf("%s: %d code points, %d/%d glyphs\n",
			iter.Name(), cov.Runes.Count(), cov.Glyphs.Count(), cov.Glyphs.NumGlyphs())
		printRuneRanges(cov.Runes)
		if *gaps {
			printGlyphGaps(cov.Glyphs)
		}
		fmt.Println()
	}
}

func printRuneRanges(cov runecov.Coverage) {
	iter := cov.Ranges()
	for iter.Next() {
		r := iter.Range()
		fmt.Printf("  %-22s %6d", runecov.FormatRange(r), r.Count())
		if *names {
			fmt.Printf("  %s", rangeNames(r.Lo, r.End))
		}
		fmt.Println()
	}
}

func rangeNames(lo, end int64) string {
	if end-lo == 1 {
		return runenames.Name(rune(lo))
	}
	return runenames.Name(rune(lo)) + " .. " + runenames.Name(rune(end-1))
}

func printGlyphGaps(cov glyphcov.Coverage) {
	fmt.Println("  unmapped glyphs:")
	iter := cov.Gaps()
	for iter.Next() {
		r := iter.Range()
		fmt.Printf("  %-22s %6d\n", glyphcov.FormatRange(r), r.Count())
	}
}

// parseCode accepts "U+0416", "0x416" and plain decimal.
func parseCode(s string) (int64, error) {
	if rest, ok := strings.CutPrefix(strings.ToUpper(s), "U+"); ok {
		return strconv.ParseInt(rest, 16, 64)
	}
	return strconv.ParseInt(s, 0, 64)
}
