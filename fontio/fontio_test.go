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

package fontio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/webfont"
)

func openTestFont(t *testing.T) *Font {
	t.Helper()
	f, err := New(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestOpen(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "test.ttf")
	err := os.WriteFile(fname, goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	f, err := Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	if f.Path != fname {
		t.Errorf("wrong path %q", f.Path)
	}
	if f.NativeFlavor() != "ttf" {
		t.Errorf("wrong flavor %q", f.NativeFlavor())
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "no-such-font.ttf"))
	var notFound *webfont.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("got %v, want NotFoundError", err)
	}
}

func TestBestCMap(t *testing.T) {
	f := openTestFont(t)

	cmap := f.BestCMap()
	if len(cmap) == 0 {
		t.Fatal("empty cmap")
	}
	gid, ok := cmap['A']
	if !ok || gid == 0 {
		t.Errorf("no glyph for 'A': gid=%d ok=%v", gid, ok)
	}

	// repeated calls share the cached map
	again := f.BestCMap()
	if diff := cmp.Diff(cmap, again); diff != "" {
		t.Errorf("cmap differs (-first +second):\n%s", diff)
	}
}

func TestQueries(t *testing.T) {
	f := openTestFont(t)

	if n := f.NumGlyphs(); n <= 0 {
		t.Errorf("NumGlyphs = %d", n)
	}
	if upem := f.UnitsPerEm(); upem == 0 {
		t.Error("UnitsPerEm = 0")
	}
	if x := f.XHeight(); x <= 0 {
		t.Errorf("XHeight = %d", x)
	}
	if _, ok := f.Panose(); !ok {
		t.Error("no PANOSE bytes")
	}

	formats := f.CMapFormats()
	has4 := false
	for _, format := range formats {
		if format == 4 {
			has4 = true
		}
	}
	if !has4 {
		t.Errorf("no format 4 cmap subtable in %v", formats)
	}

	gid := f.BestCMap()['A']
	w, ok := f.AdvanceWidth(gid)
	if !ok || w <= 0 {
		t.Errorf("AdvanceWidth('A') = %d, %v", w, ok)
	}
	if _, ok := f.AdvanceWidth(uint16(f.NumGlyphs())); ok {
		t.Error("AdvanceWidth accepted out-of-range gid")
	}

	bbox, ok := f.GlyphBBox(gid)
	if !ok || bbox.Dy() <= 0 {
		t.Errorf("GlyphBBox('A') = %v, %v", bbox, ok)
	}
}

func TestNameRecord(t *testing.T) {
	f := openTestFont(t)

	family, ok := f.NameRecord(webfont.NameFamily, webfont.PlatformWindows, webfont.EncodingWindowsBMP)
	if !ok || !strings.HasPrefix(family, "Go") {
		t.Errorf("family = %q, %v", family, ok)
	}
	if _, ok := f.NameRecord(12345, webfont.PlatformWindows, webfont.EncodingWindowsBMP); ok {
		t.Error("found name record with invalid ID")
	}
}

func TestSubsetTo(t *testing.T) {
	f := openTestFont(t)
	before := f.NumGlyphs()

	kept := f.SubsetTo([]rune{'A', 'B', 'C', 0x10FFFD})
	if diff := cmp.Diff([]rune{'A', 'B', 'C'}, kept); diff != "" {
		t.Errorf("kept differs (-want +got):\n%s", diff)
	}

	after := f.NumGlyphs()
	if after >= before {
		t.Errorf("glyph count not reduced: %d -> %d", before, after)
	}
	if after < 4 { // .notdef, space and A, B, C at least
		t.Errorf("too few glyphs kept: %d", after)
	}

	cmap := f.BestCMap()
	for _, r := range kept {
		if _, ok := cmap[r]; !ok {
			t.Errorf("code point %#x lost", r)
		}
	}
	if _, ok := cmap['Z']; ok {
		t.Error("code point 'Z' still mapped after subsetting")
	}
}

func TestSubsetSupplementary(t *testing.T) {
	f := openTestFont(t)
	cps := []rune{'A', 0x1F600}

	f.SubsetTo(cps)
	cmap := f.BestCMap()
	if _, ok := cmap['A']; !ok {
		t.Error("code point 'A' lost")
	}
	// goregular has no emoji, so the request must shrink silently
	if _, ok := cmap[0x1F600]; ok {
		t.Error("unmapped code point appeared in subset")
	}
}

func TestEncodeSFNT(t *testing.T) {
	for _, preserve := range []bool{true, false} {
		f := openTestFont(t)
		f.SubsetTo([]rune{'A', 'B'})

		data, err := f.EncodeSFNT(preserve)
		if err != nil {
			t.Fatal(err)
		}

		names, err := TableNames(data)
		if err != nil {
			t.Fatal(err)
		}
		hasName := false
		for _, name := range names {
			if name == "name" {
				hasName = true
			}
		}
		if hasName != preserve {
			t.Errorf("preserve=%v: name table present=%v", preserve, hasName)
		}

		// the result must still be a readable font
		g, err := New(data)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := g.BestCMap()['A']; !ok {
			t.Error("code point 'A' lost in round trip")
		}
	}
}
