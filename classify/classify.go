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

// Package classify detects fonts which are unsuitable as general text
// fonts: color emoji fonts, symbol fonts, barcode fonts and fonts without
// a usable text repertoire.
//
// All checks are heuristics over the font's tables, character map, name
// records and glyph geometry.  They never fail; a damaged or exotic font
// simply produces weaker signals.
package classify

import (
	"seehuhn.de/go/webfont"
)

// Report holds the four classification flags.  The flags are independent
// of each other, except that emoji and symbol fonts are never reported as
// barcode fonts.
type Report struct {
	IsEmoji      bool `json:"is_emoji"`
	IsSymbol     bool `json:"is_symbol"`
	IsBarcode    bool `json:"is_barcode"`
	IsNonTextual bool `json:"is_non_textual"`
}

// Classify inspects a font and reports its visual nature.
func Classify(font webfont.FontHandle) *Report {
	tables := make(map[string]bool)
	for _, name := range font.Tables() {
		tables[name] = true
	}

	// color emoji fonts carry one of the color glyph table sets
	isEmoji := tables["COLR"] || tables["CBDT"] || tables["sbix"] || tables["SVG "]

	isSymbol := false
	if pan, ok := font.Panose(); ok && pan[0] == 5 {
		isSymbol = true
	}
	if !isSymbol {
		for _, format := range font.CMapFormats() {
			if format == 13 {
				isSymbol = true
				break
			}
		}
	}

	cmap := font.BestCMap()
	isNonTextual := true
	isBarcode := false
	if len(cmap) > 0 {
		letters, digits := 0, 0
		for cp := range cmap {
			switch {
			case 'A' <= cp && cp <= 'Z', 'a' <= cp && cp <= 'z':
				letters++
			case '0' <= cp && cp <= '9':
				digits++
			}
		}
		isNonTextual = letters < 10 && digits < 5

		if !isEmoji && !isSymbol {
			isBarcode = isBarcodeFont(font)
		}
	}

	return &Report{
		IsEmoji:      isEmoji,
		IsSymbol:     isSymbol,
		IsBarcode:    isBarcode,
		IsNonTextual: isNonTextual,
	}
}
