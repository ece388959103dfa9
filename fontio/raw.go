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
)

// Panose returns the 10 PANOSE classification bytes from the "OS/2" table.
func (f *Font) Panose() ([10]byte, bool) {
	var p [10]byte
	os2 := f.raw["OS/2"]
	if len(os2) < 42 {
		return p, false
	}
	copy(p[:], os2[32:42])
	return p, true
}

// XHeight returns the sxHeight field of the "OS/2" table.  The field only
// exists from table version 2 on; for older tables XHeight returns 0.
func (f *Font) XHeight() int {
	os2 := f.raw["OS/2"]
	if len(os2) < 88 {
		return 0
	}
	version := binary.BigEndian.Uint16(os2)
	if version < 2 {
		return 0
	}
	return int(int16(binary.BigEndian.Uint16(os2[86:])))
}

// CMapFormats returns the format numbers of all "cmap" subtables, in
// directory order.  Damaged directory entries are skipped.
func (f *Font) CMapFormats() []uint16 {
	data := f.raw["cmap"]
	if len(data) < 4 {
		return nil
	}
	numTables := int(binary.BigEndian.Uint16(data[2:]))

	var formats []uint16
	for i := 0; i < numTables; i++ {
		base := 4 + i*8
		if base+8 > len(data) {
			break
		}
		offset := int64(binary.BigEndian.Uint32(data[base+4:]))
		if offset < 0 || offset+2 > int64(len(data)) {
			continue
		}
		formats = append(formats, binary.BigEndian.Uint16(data[offset:]))
	}
	return formats
}
