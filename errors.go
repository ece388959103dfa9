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

package webfont

// NotFoundError indicates that an input font file does not exist.
type NotFoundError struct {
	Path string
}

func (err *NotFoundError) Error() string {
	return "input font not found: " + err.Path
}

// RangeSpecError indicates that a Unicode range specification was empty or
// contained no parseable tokens at all.  Individually malformed tokens are
// skipped silently and do not cause this error.
type RangeSpecError struct {
	Spec string
}

func (err *RangeSpecError) Error() string {
	return "no valid unicode codepoints found"
}

// RewriteError indicates that the in-process container rewrite failed.
// Callers recover from it by falling back to an external compressor.
type RewriteError struct {
	Format string
	Err    error
}

func (err *RewriteError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "cannot rewrite font as " + err.Format + middle
}

func (err *RewriteError) Unwrap() error {
	return err.Err
}

// ExternalToolError indicates that the external compressor fallback failed,
// either because the executable is not installed or because it exited with
// an error.  Once this is returned the fallback chain is exhausted.
type ExternalToolError struct {
	Tool    string
	Missing bool
	Err     error
}

func (err *ExternalToolError) Error() string {
	if err.Missing {
		return err.Tool + " not found in PATH"
	}
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return err.Tool + " failed" + middle
}

func (err *ExternalToolError) Unwrap() error {
	return err.Err
}
