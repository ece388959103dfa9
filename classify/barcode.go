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

package classify

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"seehuhn.de/go/webfont"
)

// barcodeNameRe matches the names of common barcode symbologies.
var barcodeNameRe = regexp.MustCompile(
	`(?i)(barcode|code[\s-]?39|code[\s-]?128|ean|upc|itf|interleaved|msi|plessey|codabar|pdf417|datamatrix|qr|aztec)`)

// code39Alphabet is the character repertoire of Code 39.  Barcode fonts
// usually map little besides these 43 characters.
const code39Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789- .$/+%"

// isBarcodeFont reports whether a font looks like a barcode font.  A
// matching font name is decisive on its own.  Otherwise the character
// repertoire must resemble the Code 39 alphabet, the advance widths of
// the mapped ASCII characters must be near-uniform, and the glyphs must
// look like vertical bars (tall bounding boxes, or a zero x-height in the
// "OS/2" table).
func isBarcodeFont(font webfont.FontHandle) bool {
	if barcodeNameRe.MatchString(nameBlob(font)) {
		return true
	}

	cmap := font.BestCMap()
	var latin []rune
	uppers, lowers, digits := 0, 0, 0
	for cp := range cmap {
		if cp < 0x20 || cp > 0x7E {
			continue
		}
		latin = append(latin, cp)
		switch {
		case 'A' <= cp && cp <= 'Z':
			uppers++
		case 'a' <= cp && cp <= 'z':
			lowers++
		case '0' <= cp && cp <= '9':
			digits++
		}
	}
	if len(latin) < 10 {
		return false
	}
	sort.Slice(latin, func(i, j int) bool { return latin[i] < latin[j] })

	inCode39 := 0
	for _, cp := range latin {
		if strings.ContainsRune(code39Alphabet, cp) {
			inCode39++
		}
	}
	overlap := float64(inCode39) / float64(len(latin))
	if overlap < 0.7 || lowers > 2 || uppers+digits < 10 {
		return false
	}

	if !uniformWidths(font, cmap, latin) {
		return false
	}

	if font.XHeight() == 0 {
		return true
	}
	return tallBoxRatio(font, cmap, latin) >= 0.6
}

// nameBlob concatenates the family, full and PostScript name of the font.
// Windows name records are preferred, Macintosh records are the fallback.
func nameBlob(font webfont.FontHandle) string {
	var parts []string
	for _, nameID := range []int{webfont.NameFamily, webfont.NameFull, webfont.NamePostScript} {
		s, ok := font.NameRecord(nameID, webfont.PlatformWindows, webfont.EncodingWindowsBMP)
		if !ok {
			s, ok = font.NameRecord(nameID, webfont.PlatformMacintosh, webfont.EncodingMacRoman)
		}
		if ok {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// uniformWidths checks whether the advance widths of the first 30 mapped
// ASCII characters have a coefficient of variation below 2%.
func uniformWidths(font webfont.FontHandle, cmap map[rune]uint16, latin []rune) bool {
	var widths []float64
	for i, cp := range latin {
		if i >= 30 {
			break
		}
		if w, ok := font.AdvanceWidth(cmap[cp]); ok {
			widths = append(widths, float64(w))
		}
	}
	if len(widths) < 5 {
		return false
	}

	var sum float64
	for _, w := range widths {
		sum += w
	}
	mean := sum / float64(len(widths))
	if mean <= 0 {
		return false
	}

	var sqSum float64
	for _, w := range widths {
		d := w - mean
		sqSum += d * d
	}
	cv := math.Sqrt(sqSum/float64(len(widths))) / mean
	return cv < 0.02
}

// tallBoxRatio returns, among the glyphs of the first 20 mapped ASCII
// characters which have an outline, the fraction whose bounding box is
// taller than 85% of an em.
func tallBoxRatio(font webfont.FontHandle, cmap map[rune]uint16, latin []rune) float64 {
	upem := float64(font.UnitsPerEm())
	if upem <= 0 {
		return 0
	}

	tall, sample := 0, 0
	for i, cp := range latin {
		if i >= 20 {
			break
		}
		bbox, ok := font.GlyphBBox(cmap[cp])
		if !ok {
			continue
		}
		if float64(bbox.Dy())/upem > 0.85 {
			tall++
		}
		sample++
	}
	if sample == 0 {
		return 0
	}
	return float64(tall) / float64(sample)
}
