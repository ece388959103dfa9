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

// Package urange implements Unicode range specifications in the syntax of
// the CSS unicode-range descriptor: a comma-separated list of tokens, each
// either a single code point "U+4E00" or a closed range "U+4E00-9FFF".
package urange

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Range is an inclusive range of Unicode code points.
type Range struct {
	Lo, Hi rune
}

// Set is a sorted sequence of pairwise disjoint, non-adjacent ranges.
// Sets are built by [Parse] and must not be modified afterwards.
type Set []Range

// tokenRe matches one range token.  The "U+" prefix and the hex digits are
// case-insensitive, and the second bound of a range may repeat the prefix.
var tokenRe = regexp.MustCompile(`^(?i:u\+)([0-9a-fA-F]{1,6})(?:-(?:[uU]\+)?([0-9a-fA-F]{1,6}))?$`)

// Parse converts a range specification like "U+0000-00FF, U+0131" into a
// Set.  Malformed tokens are skipped; if no token can be parsed the result
// is an empty Set.  Bounds given in the wrong order are swapped.
func Parse(spec string) Set {
	var ranges []Range
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		m := tokenRe.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		lo64, err := strconv.ParseUint(m[1], 16, 32)
		if err != nil {
			continue
		}
		lo := rune(lo64)
		hi := lo
		if m[2] != "" {
			hi64, err := strconv.ParseUint(m[2], 16, 32)
			if err != nil {
				continue
			}
			hi = rune(hi64)
		}
		if hi < lo {
			lo, hi = hi, lo
		}
		ranges = append(ranges, Range{lo, hi})
	}
	return merge(ranges)
}

// merge sorts the ranges and folds every overlapping or adjacent pair, so
// that the result satisfies the Set invariants.
func merge(ranges []Range) Set {
	if len(ranges) == 0 {
		return Set{}
	}
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].Lo != ranges[j].Lo {
			return ranges[i].Lo < ranges[j].Lo
		}
		return ranges[i].Hi < ranges[j].Hi
	})
	res := Set{ranges[0]}
	for _, r := range ranges[1:] {
		cur := &res[len(res)-1]
		if r.Lo <= cur.Hi+1 {
			if r.Hi > cur.Hi {
				cur.Hi = r.Hi
			}
		} else {
			res = append(res, r)
		}
	}
	return res
}

// Contains reports whether the code point is a member of the set.
func (s Set) Contains(r rune) bool {
	idx := sort.Search(len(s), func(i int) bool {
		return s[i].Lo > r
	})
	return idx > 0 && r <= s[idx-1].Hi
}

// Count returns the number of code points in the set.
func (s Set) Count() int {
	n := 0
	for _, r := range s {
		n += int(r.Hi-r.Lo) + 1
	}
	return n
}

// Codepoints returns all code points of the set in ascending order.
// The returned slice is newly allocated on every call.
func (s Set) Codepoints() []rune {
	cps := make([]rune, 0, s.Count())
	for _, r := range s {
		for cp := r.Lo; cp <= r.Hi; cp++ {
			cps = append(cps, cp)
		}
	}
	return cps
}

// Normalize renders the set in canonical form: one string per range,
// upper-case hex digits, zero-padded to at least four digits.  Parsing the
// comma-joined result yields the set unchanged.
func (s Set) Normalize() []string {
	res := make([]string, len(s))
	for i, r := range s {
		if r.Lo == r.Hi {
			res[i] = fmt.Sprintf("U+%04X", r.Lo)
		} else {
			res[i] = fmt.Sprintf("U+%04X-%04X", r.Lo, r.Hi)
		}
	}
	return res
}

// String returns the comma-joined normalized form of the set.
func (s Set) String() string {
	return strings.Join(s.Normalize(), ",")
}
