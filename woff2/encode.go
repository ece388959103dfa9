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

// Package woff2 converts sfnt font files into WOFF2 containers.
//
// The encoder is deliberately simple: all tables are stored with the null
// transform (no glyf/loca re-encoding), so the output decodes back to the
// input byte for byte.  The only size reduction comes from the shared
// Brotli-compressed table stream, which is what matters for web delivery.
//
// https://www.w3.org/TR/WOFF2/
package woff2

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/andybalholm/brotli"

	"seehuhn.de/go/sfnt/header"
)

// Signature is the magic number at the start of every WOFF2 file.
const Signature = 0x774F4632 // "wOF2"

// headerSize is the size of the fixed WOFF2 file header.
const headerSize = 48

// Transform versions for the null transform.  For glyf and loca the null
// transform is version 3, for all other tables it is version 0.
const (
	xformNull     = 0
	xformNullGlyf = 3
)

// Encode converts a complete .ttf or .otf file into a WOFF2 container.
func Encode(sfntData []byte) ([]byte, error) {
	hdr, err := header.Read(bytes.NewReader(sfntData))
	if err != nil {
		return nil, err
	}
	if len(hdr.Toc) == 0 {
		return nil, fmt.Errorf("woff2: no tables in font")
	}

	type table struct {
		name   string
		offset uint32
		data   []byte
	}
	tables := make([]table, 0, len(hdr.Toc))
	for name, rec := range hdr.Toc {
		end := int64(rec.Offset) + int64(rec.Length)
		if int64(rec.Offset) > end || end > int64(len(sfntData)) {
			return nil, fmt.Errorf("woff2: table %q out of bounds", name)
		}
		tables = append(tables, table{name, rec.Offset, sfntData[rec.Offset:end]})
	}
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].offset < tables[j].offset
	})

	// the loca table must immediately follow glyf in the directory
	glyfIdx, locaIdx := -1, -1
	for i, t := range tables {
		switch t.name {
		case "glyf":
			glyfIdx = i
		case "loca":
			locaIdx = i
		}
	}
	if glyfIdx >= 0 && locaIdx >= 0 && locaIdx != glyfIdx+1 {
		loca := tables[locaIdx]
		tables = append(tables[:locaIdx], tables[locaIdx+1:]...)
		if locaIdx < glyfIdx {
			glyfIdx--
		}
		rest := append([]table{loca}, tables[glyfIdx+1:]...)
		tables = append(tables[:glyfIdx+1], rest...)
	}

	// table directory and uncompressed stream
	var dir []byte
	var stream []byte
	totalSfntSize := uint32(12 + 16*len(tables))
	for _, t := range tables {
		xform := byte(xformNull)
		if t.name == "glyf" || t.name == "loca" {
			xform = xformNullGlyf
		}
		// arbitrary-tag flag 0x3f, tag given explicitly
		dir = append(dir, 0x3f|xform<<6)
		dir = append(dir, t.name...)
		dir = appendUIntBase128(dir, uint32(len(t.data)))

		stream = append(stream, t.data...)
		totalSfntSize += (uint32(len(t.data)) + 3) &^ 3
	}

	compressed := &bytes.Buffer{}
	bw := brotli.NewWriterLevel(compressed, brotli.BestCompression)
	if _, err := bw.Write(stream); err != nil {
		return nil, err
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}

	flavor := hdr.ScalerType
	if flavor == header.ScalerTypeApple {
		flavor = header.ScalerTypeTrueType
	}

	totalSize := headerSize + len(dir) + compressed.Len()
	out := make([]byte, 0, totalSize)
	var h [headerSize]byte
	binary.BigEndian.PutUint32(h[0:], Signature)
	binary.BigEndian.PutUint32(h[4:], flavor)
	binary.BigEndian.PutUint32(h[8:], uint32(totalSize))
	binary.BigEndian.PutUint16(h[12:], uint16(len(tables)))
	binary.BigEndian.PutUint32(h[16:], totalSfntSize)
	binary.BigEndian.PutUint32(h[20:], uint32(compressed.Len()))
	// version, metadata and private blocks stay zero
	out = append(out, h[:]...)
	out = append(out, dir...)
	out = append(out, compressed.Bytes()...)
	return out, nil
}

// appendUIntBase128 appends the variable-length UIntBase128 encoding of v:
// big-endian groups of 7 bits, all but the last byte with the high bit set.
func appendUIntBase128(dst []byte, v uint32) []byte {
	var tmp [5]byte
	n := 0
	for {
		tmp[n] = byte(v & 0x7f)
		v >>= 7
		n++
		if v == 0 {
			break
		}
	}
	for i := n - 1; i >= 0; i-- {
		b := tmp[i]
		if i != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}
