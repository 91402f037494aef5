package runecov

import (
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/covtable/pkg/interval"
	"github.com/tj/assert"
)

func collect(iter *interval.Iterator) []interval.Interval {
	var rr []interval.Interval
	for iter.Next() {
		rr = append(rr, iter.Range())
	}
	return rr
}

func TestAdd(t *testing.T) {
	cases := map[string]struct {
		successRunes []rune
		failedRunes  []rune
		expected     []interval.Interval
	}{
		"Normal": {
			successRunes: []rune{'A', 'B', 'C'},
			expected:     []interval.Interval{{Lo: 0x41, End: 0x44}},
		},
		"OutOfRange": {
			successRunes: []rune{'A'},
			failedRunes:  []rune{-1, unicode.MaxRune + 1},
			expected:     []interval.Interval{{Lo: 0x41, End: 0x42}},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cov := New()
			for _, c := range tc.successRunes {
				err := cov.Add(c)
				assert.NoError(t, err)
			}
			for _, c := range tc.failedRunes {
				err := cov.Add(c)
				assert.Error(t, err)
			}
			if diff := cmp.Diff(tc.expected, collect(cov.Ranges())); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestAddString(t *testing.T) {
	cov := New()
	cov.AddString("cabbage")

	assert.Equal(t, int64(5), cov.Count())
	assert.True(t, cov.Has('a'))
	assert.True(t, cov.Has('g'))
	assert.False(t, cov.Has('f'))
	if diff := cmp.Diff(
		[]interval.Interval{{Lo: 'a', End: 'd'}, {Lo: 'e', End: 'f'}, {Lo: 'g', End: 'h'}},
		collect(cov.Ranges()),
	); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}
}

func TestAddRangeTable(t *testing.T) {
	cov := New()
	err := cov.AddRangeTable(unicode.Cherokee)
	assert.NoError(t, err)

	for c := rune(0x13A0); c <= 0x13F5; c++ {
		assert.True(t, cov.Has(c))
	}
	assert.False(t, cov.Has(0x13F6))
}

func TestRangeTableRoundTrip(t *testing.T) {
	cov := New()
	cov.AddString("hello")
	assert.NoError(t, cov.Add(0x10400))
	assert.NoError(t, cov.Add(0x10401))

	rt := cov.RangeTable()
	for _, c := range "helo" {
		assert.True(t, unicode.Is(rt, c))
	}
	assert.False(t, unicode.Is(rt, 'a'))
	assert.True(t, unicode.Is(rt, 0x10400))
	assert.True(t, unicode.Is(rt, 0x10401))
	assert.False(t, unicode.Is(rt, 0x10402))
}

func TestString(t *testing.T) {
	cases := map[string]struct {
		add      string
		expected string
	}{
		"Empty":     {add: "", expected: ""},
		"Singleton": {add: "A", expected: "U+0041"},
		"Runs":      {add: "ABCx", expected: "U+0041..U+0043,U+0078"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cov := New()
			cov.AddString(tc.add)
			assert.Equal(t, tc.expected, cov.String())
		})
	}
}

func TestRemove(t *testing.T) {
	cov := New()
	cov.AddString("ABC")
	assert.NoError(t, cov.Remove('B'))

	if diff := cmp.Diff(
		[]interval.Interval{{Lo: 'A', End: 'B'}, {Lo: 'C', End: 'D'}},
		collect(cov.Ranges()),
	); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}
}

func TestGaps(t *testing.T) {
	cov := New()
	assert.NoError(t, cov.Add(0))
	assert.NoError(t, cov.Add(1))

	iter := cov.Gaps()
	assert.True(t, iter.Next())
	assert.Equal(t, int64(2), iter.Lo())
	assert.Equal(t, int64(unicode.MaxRune)+1, iter.End())
	assert.False(t, iter.Next())
}
