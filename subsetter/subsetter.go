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

// Package subsetter cuts a font down to a requested character repertoire
// and writes the result in a web delivery format.
//
// Subsetting only narrows the character repertoire: layout features,
// glyph names, hinting and unrecognized tables survive.  The output
// container format follows the output path's extension.  For WOFF2
// output the in-process encoder is tried first and an external
// compressor acts as fallback; which path actually ran is visible in the
// report's operation log.
package subsetter

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"seehuhn.de/go/webfont"
	"seehuhn.de/go/webfont/fontio"
	"seehuhn.de/go/webfont/urange"
	"seehuhn.de/go/webfont/woff2"
)

// woff2Tool is the external compressor used when the in-process WOFF2
// encoder fails or is disallowed.
const woff2Tool = "woff2_compress"

// Options control a subset operation.  [DefaultOptions] matches the
// behavior web pipelines usually want.
type Options struct {
	// PreserveNames keeps the font's "name" table.  Stripping it makes
	// the output smaller but removes attribution and license metadata.
	PreserveNames bool

	// AllowDirectWOFF2 enables the in-process WOFF2 encoder.  When
	// false, WOFF2 output always goes through the external compressor.
	AllowDirectWOFF2 bool

	// Cache memoizes range parsing across calls.  May be nil.
	Cache *urange.Cache
}

// DefaultOptions returns the default subsetting options: names preserved,
// direct WOFF2 rewriting allowed.
func DefaultOptions() Options {
	return Options{
		PreserveNames:    true,
		AllowDirectWOFF2: true,
	}
}

// Report describes the outcome of a subset operation.
type Report struct {
	Success           bool     `json:"success"`
	OutputPath        string   `json:"output_path"`
	Format            string   `json:"format"`
	UnicodesRequested int      `json:"unicodes_requested"`
	UnicodesKept      int      `json:"unicodes_kept"`
	NormalizedRanges  []string `json:"normalized_ranges"`
	GlyphsBefore      int      `json:"glyphs_before"`
	GlyphsAfter       int      `json:"glyphs_after"`
	KeptTables        []string `json:"kept_tables"`
	RemovedMetadata   bool     `json:"removed_metadata"`
	RemovedShaping    bool     `json:"removed_shaping"`
	DroppedTables     []string `json:"dropped_tables"`
	LosslessOps       []string `json:"lossless_ops"`
	FESafe            bool     `json:"fe_safe"`
	FileSize          int64    `json:"file_size"`
}

// Subset reduces the font at inputPath to the repertoire described by
// spec and writes the result to outputPath.  The container format is
// chosen by the output extension (".ttf", ".otf", ".woff2"); any other
// extension keeps the input's native flavor.
func Subset(inputPath, outputPath, spec string, opt Options) (*Report, error) {
	font, err := fontio.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer font.Close()

	set := opt.Cache.Parse(spec)
	if set.Count() == 0 {
		return nil, &webfont.RangeSpecError{Spec: spec}
	}

	outDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	glyphsBefore := font.NumGlyphs()
	tablesBefore := font.Tables()

	kept := font.SubsetTo(set.Codepoints())
	glyphsAfter := font.NumGlyphs()

	data, err := font.EncodeSFNT(opt.PreserveNames)
	if err != nil {
		return nil, err
	}

	format := formatFor(outputPath, font.NativeFlavor())
	var ops []string
	if format == "woff2" {
		ops, err = writeWOFF2(data, outputPath, opt.AllowDirectWOFF2)
	} else {
		err = os.WriteFile(outputPath, data, 0o644)
	}
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(outputPath)
	if err != nil {
		return nil, err
	}
	if ops == nil {
		ops = []string{}
	}

	keptTables, err := fontio.TableNames(data)
	if err != nil {
		return nil, err
	}
	droppedTables := diffTables(tablesBefore, keptTables)
	removedMetadata := !containsTable(keptTables, "name")
	removedShaping := !containsTable(keptTables, "GSUB") &&
		!containsTable(keptTables, "GPOS") &&
		!containsTable(keptTables, "GDEF")

	feSafe := deliveryFormat(format) && opt.PreserveNames && !removedShaping

	return &Report{
		Success:           true,
		OutputPath:        outputPath,
		Format:            format,
		UnicodesRequested: set.Count(),
		UnicodesKept:      len(kept),
		NormalizedRanges:  set.Normalize(),
		GlyphsBefore:      glyphsBefore,
		GlyphsAfter:       glyphsAfter,
		KeptTables:        keptTables,
		RemovedMetadata:   removedMetadata,
		RemovedShaping:    removedShaping,
		DroppedTables:     droppedTables,
		LosslessOps:       ops,
		FESafe:            feSafe,
		FileSize:          fi.Size(),
	}, nil
}

// formatFor maps the output extension to a container format, defaulting
// to the input's native flavor.
func formatFor(outputPath, native string) string {
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".ttf":
		return "ttf"
	case ".otf":
		return "otf"
	case ".woff2":
		return "woff2"
	default:
		return native
	}
}

// deliveryFormat reports whether a format is acceptable for front-end
// delivery.
func deliveryFormat(format string) bool {
	switch format {
	case "ttf", "otf", "woff", "woff2":
		return true
	}
	return false
}

// writeWOFF2 stores an sfnt font as a WOFF2 file, trying the in-process
// encoder first (if allowed) and the external compressor second.  The
// returned log lists the repackaging operation which actually ran.
func writeWOFF2(data []byte, outputPath string, allowDirect bool) ([]string, error) {
	var rewriteErr error
	if allowDirect {
		woff2Data, err := woff2.Encode(data)
		if err == nil {
			err = os.WriteFile(outputPath, woff2Data, 0o644)
		}
		if err == nil {
			return []string{"repack:woff2"}, nil
		}
		rewriteErr = &webfont.RewriteError{Format: "woff2", Err: err}
	}

	ops, err := compressExternal(data, outputPath)
	if err != nil {
		var toolErr *webfont.ExternalToolError
		if rewriteErr != nil && errors.As(err, &toolErr) && toolErr.Err == nil {
			// keep the reason the direct path failed visible to Unwrap
			toolErr.Err = rewriteErr
		}
		return nil, err
	}
	return ops, nil
}

// compressExternal writes the font to a temporary uncompressed file next
// to the output, runs the external compressor on it and moves the result
// into place.  The temporary files are removed in every branch.
func compressExternal(data []byte, outputPath string) ([]string, error) {
	dir := filepath.Dir(outputPath)
	base := filepath.Base(outputPath)
	tempTTF := filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+"_temp.ttf")

	if err := os.WriteFile(tempTTF, data, 0o644); err != nil {
		return nil, err
	}
	defer os.Remove(tempTTF)

	cmd := exec.Command(woff2Tool, tempTTF)
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, &webfont.ExternalToolError{Tool: woff2Tool, Missing: true}
		}
		return nil, &webfont.ExternalToolError{Tool: woff2Tool, Err: err}
	}

	generated := strings.TrimSuffix(tempTTF, ".ttf") + ".woff2"
	if _, err := os.Stat(generated); err != nil {
		return nil, &webfont.ExternalToolError{Tool: woff2Tool, Err: errors.New("no output file produced")}
	}
	if err := os.Rename(generated, outputPath); err != nil {
		os.Remove(generated)
		return nil, err
	}
	return []string{"repack:woff2(cli)"}, nil
}

// diffTables returns the sorted table names present before but not after.
func diffTables(before, after []string) []string {
	kept := make(map[string]bool, len(after))
	for _, name := range after {
		kept[name] = true
	}
	dropped := []string{}
	for _, name := range before {
		if !kept[name] {
			dropped = append(dropped, name)
		}
	}
	sort.Strings(dropped)
	return dropped
}

func containsTable(tables []string, name string) bool {
	for _, t := range tables {
		if t == name {
			return true
		}
	}
	return false
}
