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

// Package webfont provides tools for preparing font files for use on the
// web: checking which parts of a requested character repertoire a font
// covers, classifying fonts by their visual nature (color emoji, symbol,
// barcode, non-textual), cutting fonts down to a requested repertoire, and
// computing glyph-metric statistics over such a subset.
//
// The package does not parse or write font containers itself.  All
// container I/O is delegated to seehuhn.de/go/sfnt; the [FontHandle]
// interface describes the fixed set of read-only queries the analysis code
// needs, and seehuhn.de/go/webfont/fontio binds it to real font files.
package webfont
