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

// Package metrics computes advance-width statistics over the part of a
// font's character map selected by a Unicode range.  The numbers predict
// the average character width of a subset before the subset is cut, which
// helps with font matching and layout-shift estimates.
package metrics

import (
	"math"
	"sort"

	"seehuhn.de/go/webfont"
	"seehuhn.de/go/webfont/urange"
)

// Method values reported in [Report].
const (
	MethodCMapHmtx = "cmap+hmtx_mean"
	MethodNoGlyphs = "no_glyphs_in_subset"
)

// Report holds advance-width statistics for one font and range.
//
// Attempted counts the mapped code points inside the range, Processed the
// subset of those with usable horizontal metrics.  The width fields are
// in font design units.
type Report struct {
	PostScriptName   string  `json:"postscriptName"`
	FamilyName       string  `json:"familyName"`
	UnitsPerEm       uint16  `json:"unitsPerEm"`
	Processed        int     `json:"processed"`
	Attempted        int     `json:"attempted"`
	CoverageRatio    float64 `json:"coverage_ratio"`
	XAvgCharWidth    float64 `json:"xAvgCharWidth"`
	XMedianCharWidth float64 `json:"xMedianCharWidth"`
	XStdCharWidth    float64 `json:"xStdCharWidth"`
	Method           string  `json:"method"`
}

// Compute calculates the width statistics of the given font over the
// repertoire described by spec.
func Compute(font webfont.FontHandle, spec string, cache *urange.Cache) (*Report, error) {
	set := cache.Parse(spec)
	if set.Count() == 0 {
		return nil, &webfont.RangeSpecError{Spec: spec}
	}

	attempted := 0
	var widths []float64
	for cp, gid := range font.BestCMap() {
		if !set.Contains(cp) {
			continue
		}
		attempted++
		if w, ok := font.AdvanceWidth(gid); ok {
			widths = append(widths, float64(w))
		}
	}

	rep := &Report{
		PostScriptName: lookupName(font, webfont.NamePostScript),
		FamilyName:     lookupName(font, webfont.NameFamily),
		UnitsPerEm:     font.UnitsPerEm(),
		Processed:      len(widths),
		Attempted:      attempted,
		Method:         MethodNoGlyphs,
	}
	if attempted > 0 {
		rep.CoverageRatio = float64(len(widths)) / float64(attempted)
	}
	if len(widths) > 0 {
		rep.XAvgCharWidth = mean(widths)
		rep.XMedianCharWidth = median(widths)
		if len(widths) > 1 {
			rep.XStdCharWidth = pstdev(widths)
		}
		rep.Method = MethodCMapHmtx
	}
	return rep, nil
}

// lookupName returns a name table entry, preferring Windows records over
// Macintosh ones.  Fonts without the record report "Unknown".
func lookupName(font webfont.FontHandle, nameID int) string {
	if s, ok := font.NameRecord(nameID, webfont.PlatformWindows, webfont.EncodingWindowsBMP); ok {
		return s
	}
	if s, ok := font.NameRecord(nameID, webfont.PlatformMacintosh, webfont.EncodingMacRoman); ok {
		return s
	}
	return "Unknown"
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// median returns the middle value, or the mean of the two middle values
// for samples of even size.
func median(xs []float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// pstdev returns the population standard deviation.
func pstdev(xs []float64) float64 {
	m := mean(xs)
	var sqSum float64
	for _, x := range xs {
		d := x - m
		sqSum += d * d
	}
	return math.Sqrt(sqSum / float64(len(xs)))
}
