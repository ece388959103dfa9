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

package webfont

// FontHandle is the fixed set of read-only queries the analysis code in
// this module performs against an open font.  The production
// implementation in seehuhn.de/go/webfont/fontio wraps seehuhn.de/go/sfnt;
// tests use the configurable fake in seehuhn.de/go/webfont/fonttest.
//
// Optional information which a font may or may not carry is reported via a
// second boolean return (or an empty result).  A missing or malformed
// optional table is never an error: callers treat the signal as absent.
type FontHandle interface {
	// BestCMap returns the font's best Unicode character map as a mapping
	// from code points to glyph IDs.  The map is empty (but non-nil) if
	// the font has no usable character map.
	BestCMap() map[rune]uint16

	// Tables returns the tags of all top-level tables in the font, sorted.
	Tables() []string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// AdvanceWidth returns the advance width of a glyph in font design
	// units.  The second return value is false if the glyph does not
	// exist or the font carries no horizontal metrics for it.
	AdvanceWidth(gid uint16) (int, bool)

	// NameRecord returns the decoded string for one record of the "name"
	// table, selected by name ID, platform ID and platform encoding ID.
	NameRecord(nameID int, platformID, encodingID uint16) (string, bool)

	// UnitsPerEm returns the font's design units per em.
	UnitsPerEm() uint16

	// XHeight returns the sxHeight field of the "OS/2" table, or 0 if the
	// table or field is absent.
	XHeight() int

	// Panose returns the 10 PANOSE classification bytes from the "OS/2"
	// table, if present.
	Panose() ([10]byte, bool)

	// CMapFormats returns the subtable format numbers present in the
	// "cmap" table, in table order.
	CMapFormats() []uint16

	// GlyphBBox returns the bounding box of a glyph in font design units.
	// The second return value is false if the glyph has no outline.
	GlyphBBox(gid uint16) (BBox, bool)
}

// Name IDs of the "name" table records used by this module.
const (
	NameFamily     = 1 // font family name
	NameFull       = 4 // full font name
	NamePostScript = 6 // PostScript name
)

// Platform and encoding IDs for "name" table records.
const (
	PlatformUnicode   = 0
	PlatformMacintosh = 1
	PlatformWindows   = 3

	EncodingMacRoman   = 0
	EncodingWindowsBMP = 1
)

// BBox is a glyph bounding box in font design units.
type BBox struct {
	XMin, YMin int16
	XMax, YMax int16
}

// IsZero reports whether the box is the zero box.
func (b BBox) IsZero() bool {
	return b == BBox{}
}

// Dy returns the height of the box.
func (b BBox) Dy() int {
	return int(b.YMax) - int(b.YMin)
}
