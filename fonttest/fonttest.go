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

// Package fonttest provides a configurable in-memory implementation of
// [webfont.FontHandle] for use in unit tests.
package fonttest

import (
	"seehuhn.de/go/webfont"
)

// NameKey selects one record of a font's "name" table.
type NameKey struct {
	NameID     int
	PlatformID uint16
	EncodingID uint16
}

// Fake implements [webfont.FontHandle] from literal data.  The zero value
// describes an empty font with 1000 design units per em.
type Fake struct {
	CMap      map[rune]uint16
	TableList []string
	Glyphs    int
	Widths    map[uint16]int
	Names     map[NameKey]string
	Upem      uint16
	XH        int
	Pan       *[10]byte
	Formats   []uint16
	BBoxes    map[uint16]webfont.BBox
}

func (f *Fake) BestCMap() map[rune]uint16 {
	if f.CMap == nil {
		return map[rune]uint16{}
	}
	return f.CMap
}

func (f *Fake) Tables() []string {
	return f.TableList
}

func (f *Fake) NumGlyphs() int {
	return f.Glyphs
}

func (f *Fake) AdvanceWidth(gid uint16) (int, bool) {
	w, ok := f.Widths[gid]
	return w, ok
}

func (f *Fake) NameRecord(nameID int, platformID, encodingID uint16) (string, bool) {
	s, ok := f.Names[NameKey{nameID, platformID, encodingID}]
	return s, ok && s != ""
}

func (f *Fake) UnitsPerEm() uint16 {
	if f.Upem == 0 {
		return 1000
	}
	return f.Upem
}

func (f *Fake) XHeight() int {
	return f.XH
}

func (f *Fake) Panose() ([10]byte, bool) {
	if f.Pan == nil {
		return [10]byte{}, false
	}
	return *f.Pan, true
}

func (f *Fake) CMapFormats() []uint16 {
	return f.Formats
}

func (f *Fake) GlyphBBox(gid uint16) (webfont.BBox, bool) {
	b, ok := f.BBoxes[gid]
	return b, ok && !b.IsZero()
}
