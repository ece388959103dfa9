// seehuhn.de/go/webfont - analysis and subsetting of fonts for web delivery
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package metrics

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/webfont"
	"seehuhn.de/go/webfont/fonttest"
	"seehuhn.de/go/webfont/urange"
)

func TestCompute(t *testing.T) {
	font := &fonttest.Fake{
		CMap: map[rune]uint16{
			'A': 1, 'B': 2, 'C': 3, 'D': 4, 'z': 5,
		},
		Widths: map[uint16]int{
			1: 500, 2: 600, 3: 700, 4: 800,
			// gid 5 has no metrics
		},
		Names: map[fonttest.NameKey]string{
			{NameID: webfont.NameFamily, PlatformID: webfont.PlatformWindows, EncodingID: webfont.EncodingWindowsBMP}:     "Demo Sans",
			{NameID: webfont.NamePostScript, PlatformID: webfont.PlatformWindows, EncodingID: webfont.EncodingWindowsBMP}: "DemoSans-Regular",
		},
		Upem: 2048,
	}

	rep, err := Compute(font, "U+0041-005A,U+007A", urange.NewCache(4))
	if err != nil {
		t.Fatal(err)
	}

	want := &Report{
		PostScriptName:   "DemoSans-Regular",
		FamilyName:       "Demo Sans",
		UnitsPerEm:       2048,
		Processed:        4,
		Attempted:        5,
		CoverageRatio:    0.8,
		XAvgCharWidth:    650,
		XMedianCharWidth: 650,
		XStdCharWidth:    math.Sqrt(12500),
		Method:           MethodCMapHmtx,
	}
	if diff := cmp.Diff(want, rep); diff != "" {
		t.Errorf("report differs (-want +got):\n%s", diff)
	}
}

func TestComputeEmptySubset(t *testing.T) {
	font := &fonttest.Fake{
		CMap:   map[rune]uint16{'A': 1},
		Widths: map[uint16]int{1: 500},
	}

	rep, err := Compute(font, "U+4E00-4EFF", urange.NewCache(4))
	if err != nil {
		t.Fatal(err)
	}

	want := &Report{
		PostScriptName: "Unknown",
		FamilyName:     "Unknown",
		UnitsPerEm:     1000,
		Method:         MethodNoGlyphs,
	}
	if diff := cmp.Diff(want, rep); diff != "" {
		t.Errorf("report differs (-want +got):\n%s", diff)
	}
}

func TestComputeBadRange(t *testing.T) {
	font := &fonttest.Fake{}
	_, err := Compute(font, "not-a-range", urange.NewCache(4))
	var rangeErr *webfont.RangeSpecError
	if !errors.As(err, &rangeErr) {
		t.Errorf("got %v, want RangeSpecError", err)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		xs   []float64
		want float64
	}{
		{[]float64{3}, 3},
		{[]float64{3, 1}, 2},
		{[]float64{9, 1, 5}, 5},
		{[]float64{4, 1, 3, 2}, 2.5},
	}
	for _, tc := range tests {
		if got := median(tc.xs); got != tc.want {
			t.Errorf("median(%v) = %g, want %g", tc.xs, got, tc.want)
		}
	}
}

func TestPstdevSingleValue(t *testing.T) {
	font := &fonttest.Fake{
		CMap:   map[rune]uint16{'A': 1},
		Widths: map[uint16]int{1: 500},
	}
	rep, err := Compute(font, "U+0041", urange.NewCache(4))
	if err != nil {
		t.Fatal(err)
	}
	if rep.XStdCharWidth != 0 {
		t.Errorf("xStdCharWidth = %g, want 0 for single sample", rep.XStdCharWidth)
	}
	if rep.XAvgCharWidth != 500 || rep.XMedianCharWidth != 500 {
		t.Errorf("unexpected widths: %g / %g", rep.XAvgCharWidth, rep.XMedianCharWidth)
	}
}
