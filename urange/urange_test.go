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

package urange

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	cases := []struct {
		spec string
		want Set
	}{
		{"U+0041", Set{{0x41, 0x41}}},
		{"u+0041", Set{{0x41, 0x41}}},
		{"U+0000-00FF, U+0131, U+0152-0153", Set{{0x0000, 0x00FF}, {0x0131, 0x0131}, {0x0152, 0x0153}}},
		{"U+0041-005A,U+0030-0039", Set{{0x30, 0x39}, {0x41, 0x5A}}},
		// reversed bounds are swapped, not rejected
		{"U+005A-0041", Set{{0x41, 0x5A}}},
		// overlapping and adjacent ranges are merged
		{"U+0010-0020,U+0021-0030", Set{{0x10, 0x30}}},
		{"U+0010-0025,U+0020-0030", Set{{0x10, 0x30}}},
		{"U+0041,U+0041", Set{{0x41, 0x41}}},
		// the second bound may repeat the prefix
		{"U+0152-U+0153", Set{{0x0152, 0x0153}}},
		// malformed tokens are dropped silently
		{"U+0041,bogus,U+0043", Set{{0x41, 0x41}, {0x43, 0x43}}},
		{"0041", Set{}},
		{"U+", Set{}},
		{"U+ZZZZ", Set{}},
		{"", Set{}},
		{" , ,", Set{}},
		// up to six hex digits
		{"U+10FFFF", Set{{0x10FFFF, 0x10FFFF}}},
		{"U+1F600-1F64F", Set{{0x1F600, 0x1F64F}}},
	}
	for _, c := range cases {
		got := Parse(c.spec)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", c.spec, d)
		}
	}
}

// TestInvariants checks that parsed sets are sorted, disjoint and leave no
// merge opportunity.
func TestInvariants(t *testing.T) {
	specs := []string{
		"U+0000-00FF, U+0131, U+0152-0153",
		"U+0020,U+0021,U+0022,U+0023",
		"U+0100-01FF,U+0000-00FF",
		"U+0041-0043,U+0030-0039,U+0042",
	}
	for _, spec := range specs {
		s := Parse(spec)
		for i, r := range s {
			if r.Hi < r.Lo {
				t.Errorf("%q: range %d reversed: %+v", spec, i, r)
			}
			if i > 0 && s[i-1].Hi+1 >= r.Lo {
				t.Errorf("%q: ranges %d and %d overlap or touch: %+v %+v",
					spec, i-1, i, s[i-1], r)
			}
		}
	}
}

// TestContainsAgainstLinearScan compares the binary-search membership test
// with a linear scan over the unmerged interval list.
func TestContainsAgainstLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		var raw []Range
		n := rng.Intn(20) + 1
		for i := 0; i < n; i++ {
			lo := rune(rng.Intn(0x110000))
			hi := lo + rune(rng.Intn(256))
			raw = append(raw, Range{lo, hi})
		}
		s := merge(append([]Range(nil), raw...))

		linear := func(cp rune) bool {
			for _, r := range raw {
				if cp >= r.Lo && cp <= r.Hi {
					return true
				}
			}
			return false
		}

		for i := 0; i < 2000; i++ {
			cp := rune(rng.Intn(0x110000))
			if got, want := s.Contains(cp), linear(cp); got != want {
				t.Fatalf("Contains(%#x) = %t, linear scan says %t (set %v)",
					cp, got, want, s)
			}
		}
		// boundary points are the interesting cases
		for _, r := range raw {
			for _, cp := range []rune{r.Lo - 1, r.Lo, r.Hi, r.Hi + 1} {
				if cp < 0 {
					continue
				}
				if got, want := s.Contains(cp), linear(cp); got != want {
					t.Fatalf("Contains(%#x) = %t, linear scan says %t",
						cp, got, want)
				}
			}
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	specs := []string{
		"U+0000-00FF, U+0131, U+0152-0153",
		"u+41,u+5a-41,u+30-39",
		"U+10FFFF,U+0000",
		"U+0010-0020,U+0021-0030,bogus",
	}
	for _, spec := range specs {
		s1 := Parse(spec)
		s2 := Parse(strings.Join(s1.Normalize(), ","))
		if d := cmp.Diff(s1, s2); d != "" {
			t.Errorf("Parse∘Normalize not idempotent for %q (-first +second):\n%s", spec, d)
		}
	}
}

func TestNormalizeFormat(t *testing.T) {
	s := Parse("u+41,u+1f600-1f64f")
	want := []string{"U+0041", "U+1F600-1F64F"}
	if d := cmp.Diff(want, s.Normalize()); d != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", d)
	}
}

func TestCountAndCodepoints(t *testing.T) {
	s := Parse("U+0041-0043,U+0030-0039")
	if s.Count() != 13 {
		t.Errorf("Count = %d, want 13", s.Count())
	}
	cps := s.Codepoints()
	if len(cps) != 13 {
		t.Fatalf("len(Codepoints) = %d, want 13", len(cps))
	}
	for i := 1; i < len(cps); i++ {
		if cps[i] <= cps[i-1] {
			t.Errorf("Codepoints not strictly ascending at %d: %v", i, cps)
		}
	}
	if cps[0] != 0x30 || cps[len(cps)-1] != 0x43 {
		t.Errorf("unexpected expansion: %v", cps)
	}
}

func FuzzParse(f *testing.F) {
	f.Add("U+0000-00FF, U+0131, U+0152-0153")
	f.Add("u+41-u+5a")
	f.Add("garbage,,U+")
	f.Fuzz(func(t *testing.T, spec string) {
		s := Parse(spec)
		for i, r := range s {
			if r.Hi < r.Lo {
				t.Fatalf("reversed range %+v", r)
			}
			if i > 0 && s[i-1].Hi+1 >= r.Lo {
				t.Fatalf("unmerged ranges %+v %+v", s[i-1], r)
			}
		}
		s2 := Parse(strings.Join(s.Normalize(), ","))
		if d := cmp.Diff(s, s2); d != "" {
			t.Fatalf("normalize round trip failed:\n%s", d)
		}
	})
}
