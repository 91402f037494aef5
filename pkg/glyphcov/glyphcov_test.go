package glyphcov

import (
	"testing"

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

func TestNew(t *testing.T) {
	cases := map[string]struct {
		numGlyphs   int64
		expectedErr bool
	}{
		"Normal":   {numGlyphs: 256},
		"Single":   {numGlyphs: 1},
		"Zero":     {numGlyphs: 0, expectedErr: true},
		"Negative": {numGlyphs: -1, expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cov, err := New(tc.numGlyphs)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.numGlyphs, cov.NumGlyphs())
			assert.True(t, cov.IsEmpty())
		})
	}
}

func TestAdd(t *testing.T) {
	cases := map[string]struct {
		numGlyphs   int64
		successGids []int64
		failedGids  []int64
		expected    []interval.Interval
	}{
		"Normal": {
			numGlyphs:   64,
			successGids: []int64{0, 1, 2, 10},
			expected:    []interval.Interval{{Lo: 0, End: 3}, {Lo: 10, End: 11}},
		},
		"OutOfRange": {
			numGlyphs:   64,
			successGids: []int64{63},
			failedGids:  []int64{64, -1},
			expected:    []interval.Interval{{Lo: 63, End: 64}},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cov, err := New(tc.numGlyphs)
			assert.NoError(t, err)
			for _, gid := range tc.successGids {
				err := cov.Add(gid)
				assert.NoError(t, err)
			}
			for _, gid := range tc.failedGids {
				err := cov.Add(gid)
				assert.Error(t, err)
			}
			if diff := cmp.Diff(tc.expected, collect(cov.Ranges())); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestGaps(t *testing.T) {
	cov, err := New(16)
	assert.NoError(t, err)
	for _, gid := range []int64{0, 1, 2, 3, 8, 9} {
		assert.NoError(t, cov.Add(gid))
	}

	if diff := cmp.Diff(
		[]interval.Interval{{Lo: 4, End: 8}, {Lo: 10, End: 16}},
		collect(cov.Gaps()),
	); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}
}

func TestString(t *testing.T) {
	cov, err := New(128)
	assert.NoError(t, err)
	for _, gid := range []int64{17, 18, 19, 64} {
		assert.NoError(t, cov.Add(gid))
	}
	assert.Equal(t, "GID 17..19,GID 64", cov.String())

	assert.NoError(t, cov.Remove(18))
	assert.Equal(t, "GID 17,GID 19,GID 64", cov.String())
}
