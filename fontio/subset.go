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
	"sort"

	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

// Glyphs which are kept in every subset, in addition to ".notdef":
// carriage return and space.
var recommendedRunes = []rune{0x000D, 0x0020}

// SubsetTo replaces the font's glyph set by the glyphs needed for the
// given code points, renumbering glyph IDs.  The ".notdef" glyph and the
// glyphs for carriage return and space are always kept.  Code points the
// font does not map are ignored; the returned slice lists the requested
// code points which were actually kept, in the order requested.
//
// The character map of the subset covers the kept code points plus the
// recommended glyphs.  All cached query results are invalidated.
func (f *Font) SubsetTo(cps []rune) []rune {
	origCMap := f.BestCMap()

	keep := map[glyph.ID]bool{0: true}
	mapped := make(map[rune]glyph.ID)
	for _, r := range recommendedRunes {
		if gid, ok := origCMap[r]; ok {
			keep[glyph.ID(gid)] = true
			mapped[r] = glyph.ID(gid)
		}
	}
	var kept []rune
	for _, r := range cps {
		gid, ok := origCMap[r]
		if !ok {
			continue
		}
		kept = append(kept, r)
		keep[glyph.ID(gid)] = true
		mapped[r] = glyph.ID(gid)
	}

	gids := make([]glyph.ID, 0, len(keep))
	for gid := range keep {
		gids = append(gids, gid)
	}
	sort.Slice(gids, func(i, j int) bool { return gids[i] < gids[j] })

	newGid := make(map[glyph.ID]glyph.ID, len(gids))
	for i, gid := range gids {
		newGid[gid] = glyph.ID(i)
	}

	sub := f.sf.Subset(gids)
	sub.CMapTable = makeCMap(mapped, newGid)

	f.sf = sub
	f.cmap = nil
	f.bboxes = nil
	return kept
}

// makeCMap builds the character map of a subset font.  Repertoires inside
// the BMP get a format 4 subtable, everything else format 12.
func makeCMap(mapped map[rune]glyph.ID, newGid map[glyph.ID]glyph.ID) cmap.Table {
	needs32 := false
	for r := range mapped {
		if r > 0xFFFF {
			needs32 = true
			break
		}
	}

	if needs32 {
		sub := cmap.Format12{}
		for r, gid := range mapped {
			sub[uint32(r)] = newGid[gid]
		}
		enc := sub.Encode(0)
		return cmap.Table{
			{PlatformID: 0, EncodingID: 4}:  enc,
			{PlatformID: 3, EncodingID: 10}: enc,
		}
	}

	sub := cmap.Format4{}
	for r, gid := range mapped {
		sub[uint16(r)] = newGid[gid]
	}
	enc := sub.Encode(0)
	return cmap.Table{
		{PlatformID: 0, EncodingID: 3}: enc,
		{PlatformID: 3, EncodingID: 1}: enc,
	}
}
