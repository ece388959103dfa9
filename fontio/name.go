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
	"encoding/binary"
	"errors"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/webfont"
)

var errUnsupportedEncoding = errors.New("unsupported name table encoding")

// NameRecord returns the decoded string for one record of the "name"
// table.  The first record matching the given name ID, platform ID and
// encoding ID is used, regardless of its language ID.
func (f *Font) NameRecord(nameID int, platformID, encodingID uint16) (string, bool) {
	data := f.raw["name"]
	if len(data) < 6 {
		return "", false
	}
	numRec := int(binary.BigEndian.Uint16(data[2:]))
	storage := int(binary.BigEndian.Uint16(data[4:]))

	for i := 0; i < numRec; i++ {
		base := 6 + i*12
		if base+12 > len(data) {
			break
		}
		pid := binary.BigEndian.Uint16(data[base:])
		eid := binary.BigEndian.Uint16(data[base+2:])
		nid := int(binary.BigEndian.Uint16(data[base+6:]))
		if pid != platformID || eid != encodingID || nid != nameID {
			continue
		}

		length := int(binary.BigEndian.Uint16(data[base+8:]))
		offset := int(binary.BigEndian.Uint16(data[base+10:]))
		start := storage + offset
		if start < 0 || start+length > len(data) {
			continue
		}
		s, err := decodeNameString(pid, data[start:start+length])
		if err != nil || s == "" {
			continue
		}
		return s, true
	}
	return "", false
}

func decodeNameString(platformID uint16, raw []byte) (string, error) {
	switch platformID {
	case webfont.PlatformUnicode, webfont.PlatformWindows:
		dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		out, err := dec.Bytes(raw)
		return string(out), err
	case webfont.PlatformMacintosh:
		out, err := charmap.Macintosh.NewDecoder().Bytes(raw)
		return string(out), err
	}
	return "", errUnsupportedEncoding
}
