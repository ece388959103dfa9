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

// Package fontio reads and writes sfnt font files.
//
// The package implements [webfont.FontHandle] on top of
// seehuhn.de/go/sfnt.  In addition to the read-only queries of the
// interface it provides the mutating operations used when cutting a font
// down to a character repertoire: [Font.SubsetTo], [Font.EncodeSFNT].
package fontio

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"sort"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/header"

	"seehuhn.de/go/webfont"
)

// Font is an open font file.  It keeps both the decoded font and the raw
// table bytes of the original file, since some of the queries (PANOSE
// class, cmap subtable formats, individual name records) are not exposed
// by the decoded representation.
//
// A Font is not safe for concurrent use.
type Font struct {
	// Path is the file the font was read from, if any.
	Path string

	sf     *sfnt.Font
	flavor string
	raw    map[string][]byte

	cmap   map[rune]uint16
	bboxes []webfont.BBox
}

// Open reads a font file from disk.
func Open(fname string) (*Font, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &webfont.NotFoundError{Path: fname}
		}
		return nil, err
	}
	f, err := New(data)
	if err != nil {
		return nil, err
	}
	f.Path = fname
	return f, nil
}

// New decodes a font from the contents of a .ttf or .otf file.
func New(data []byte) (*Font, error) {
	sf, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	hdr, err := header.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	flavor := "ttf"
	if hdr.ScalerType == header.ScalerTypeCFF {
		flavor = "otf"
	}
	raw := make(map[string][]byte, len(hdr.Toc))
	for name, rec := range hdr.Toc {
		end := int64(rec.Offset) + int64(rec.Length)
		if int64(rec.Offset) > end || end > int64(len(data)) {
			continue
		}
		raw[name] = data[rec.Offset:end]
	}

	return &Font{sf: sf, flavor: flavor, raw: raw}, nil
}

// Close releases the decoded font and the raw table data.  The Font must
// not be used afterwards.
func (f *Font) Close() error {
	f.sf = nil
	f.raw = nil
	f.cmap = nil
	f.bboxes = nil
	return nil
}

// NativeFlavor returns "ttf" for fonts with TrueType outlines and "otf"
// for fonts with CFF outlines.
func (f *Font) NativeFlavor() string {
	return f.flavor
}

// BestCMap returns the font's best Unicode character map.  The result is
// computed once and shared between calls; callers must not modify it.
func (f *Font) BestCMap() map[rune]uint16 {
	if f.cmap != nil {
		return f.cmap
	}
	m := make(map[rune]uint16)
	f.cmap = m
	if f.sf.CMapTable == nil {
		return m
	}
	sub, err := f.sf.CMapTable.GetBest()
	if err != nil {
		return m
	}
	low, high := sub.CodeRange()
	for r := low; r <= high; r++ {
		if gid := sub.Lookup(r); gid != 0 {
			m[r] = uint16(gid)
		}
	}
	return m
}

// Tables returns the tags of all top-level tables, sorted.
func (f *Font) Tables() []string {
	names := maps.Keys(f.raw)
	sort.Strings(names)
	return names
}

// HasTable reports whether the original file contains a table with the
// given tag.
func (f *Font) HasTable(name string) bool {
	_, ok := f.raw[name]
	return ok
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.sf.NumGlyphs()
}

// AdvanceWidth returns the advance width of a glyph in font design units.
func (f *Font) AdvanceWidth(gid uint16) (int, bool) {
	if int(gid) >= f.sf.NumGlyphs() {
		return 0, false
	}
	return int(f.sf.GlyphWidth(glyph.ID(gid))), true
}

// UnitsPerEm returns the font's design units per em.
func (f *Font) UnitsPerEm() uint16 {
	return f.sf.UnitsPerEm
}

// GlyphBBox returns the bounding box of a glyph in font design units.
// Glyphs without an outline report a false second return value.
func (f *Font) GlyphBBox(gid uint16) (webfont.BBox, bool) {
	if f.bboxes == nil {
		rects := f.sf.GlyphBBoxes()
		f.bboxes = make([]webfont.BBox, len(rects))
		for i, r := range rects {
			f.bboxes[i] = webfont.BBox{
				XMin: int16(r.LLx),
				YMin: int16(r.LLy),
				XMax: int16(r.URx),
				YMax: int16(r.URy),
			}
		}
	}
	if int(gid) >= len(f.bboxes) {
		return webfont.BBox{}, false
	}
	b := f.bboxes[gid]
	if b.IsZero() {
		return b, false
	}
	return b, true
}
