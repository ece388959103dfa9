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
	"bytes"
	"sort"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/sfnt/header"
)

// EncodeSFNT serializes the font into a fresh sfnt container, using the
// outline format already present in the font.  If preserveNames is false,
// the "name" table is removed from the result.
func (f *Font) EncodeSFNT(preserveNames bool) ([]byte, error) {
	buf := &bytes.Buffer{}
	if _, err := f.sf.Write(buf); err != nil {
		return nil, err
	}
	data := buf.Bytes()
	if preserveNames {
		return data, nil
	}
	return stripTables(data, "name")
}

// stripTables rewrites an sfnt container without the named tables.
func stripTables(data []byte, names ...string) ([]byte, error) {
	hdr, err := header.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	tables := make(map[string][]byte, len(hdr.Toc))
	for name, rec := range hdr.Toc {
		end := int64(rec.Offset) + int64(rec.Length)
		if int64(rec.Offset) > end || end > int64(len(data)) {
			continue
		}
		tables[name] = data[rec.Offset:end]
	}
	for _, name := range names {
		delete(tables, name)
	}

	buf := &bytes.Buffer{}
	if _, err := header.Write(buf, hdr.ScalerType, tables); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TableNames returns the sorted table tags of an sfnt container without
// fully decoding it.
func TableNames(data []byte) ([]string, error) {
	hdr, err := header.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	names := maps.Keys(hdr.Toc)
	sort.Strings(names)
	return names, nil
}
