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

// Package coverage reports which part of a requested character repertoire
// a font can display.
//
// Code points are classified into three buckets by their Unicode general
// category: "visible" (letters, numbers, punctuation, symbols, spaces),
// "combining" (marks) and "control_or_format" (control, format, surrogate
// and private-use code points, and everything unassigned).  The
// distinction matters when judging coverage numbers: a missing control
// character usually costs nothing, a missing letter does.
package coverage

import (
	"fmt"
	"math"
	"unicode"

	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/webfont"
	"seehuhn.de/go/webfont/urange"
)

// Buckets, in the order they appear in reports.
const (
	BucketVisible   = "visible"
	BucketCombining = "combining"
	BucketControl   = "control_or_format"
)

// sampleLimit is the number of named code points listed per bucket.
const sampleLimit = 20

// A Bucket summarizes the code points of one general-category class.
// Sample holds the first few entries of All, each code point rendered as
// "U+XXXX: NAME" with its Unicode name.
type Bucket struct {
	Count  int      `json:"count"`
	Sample []string `json:"sample"`
	All    []string `json:"all"`
}

// Report is the result of a coverage check.
type Report struct {
	Font             string             `json:"font"`
	RequestedTotal   int                `json:"requested_total"`
	CoveredTotal     int                `json:"covered_total"`
	MissingTotal     int                `json:"missing_total"`
	CoveragePercent  float64            `json:"coverage_percent"`
	CoveredBreakdown map[string]*Bucket `json:"covered_breakdown"`
	MissingBreakdown map[string]*Bucket `json:"missing_breakdown"`
	FontCMapSize     int                `json:"font_cmap_size"`
}

// Check determines how much of the repertoire described by spec the given
// font covers.  A spec without any valid tokens yields a report with zero
// totals, not an error.  The Font field of the report is left empty for
// the caller to fill in.
func Check(font webfont.FontHandle, spec string, cache *urange.Cache) *Report {
	set := cache.Parse(spec)
	cmap := font.BestCMap()

	covered := newBreakdown()
	missing := newBreakdown()
	coveredTotal := 0
	requestedTotal := 0
	for _, cp := range set.Codepoints() {
		requestedTotal++
		if _, ok := cmap[cp]; ok {
			coveredTotal++
			covered[bucketOf(cp)].add(cp)
		} else {
			missing[bucketOf(cp)].add(cp)
		}
	}

	percent := float64(coveredTotal) / float64(max(1, requestedTotal)) * 100
	return &Report{
		RequestedTotal:   requestedTotal,
		CoveredTotal:     coveredTotal,
		MissingTotal:     requestedTotal - coveredTotal,
		CoveragePercent:  math.Round(percent*100) / 100,
		CoveredBreakdown: covered,
		MissingBreakdown: missing,
		FontCMapSize:     len(cmap),
	}
}

func newBreakdown() map[string]*Bucket {
	return map[string]*Bucket{
		BucketVisible:   {Sample: []string{}, All: []string{}},
		BucketCombining: {Sample: []string{}, All: []string{}},
		BucketControl:   {Sample: []string{}, All: []string{}},
	}
}

func (b *Bucket) add(cp rune) {
	b.Count++
	name := runenames.Name(cp)
	if name == "" {
		name = "<UNASSIGNED>"
	}
	entry := fmt.Sprintf("U+%04X: %s", cp, name)
	if len(b.Sample) < sampleLimit {
		b.Sample = append(b.Sample, entry)
	}
	b.All = append(b.All, entry)
}

// bucketOf classifies a code point by its Unicode general category.
// Unassigned code points count as control_or_format.
func bucketOf(cp rune) string {
	switch {
	case unicode.Is(unicode.M, cp):
		return BucketCombining
	case unicode.Is(unicode.C, cp):
		return BucketControl
	case unicode.In(cp, unicode.L, unicode.N, unicode.P, unicode.S, unicode.Z):
		return BucketVisible
	default:
		return BucketControl
	}
}
