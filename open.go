/*
 * open.go, part of lammpstrj.
 *
 * Copyright 2026 The lammpstrj Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package lammpstrj

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// why couldn't *zstd.Decoder implement io.ReadCloser?
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// source is an open trajectory file, possibly behind a decompressor.
type source struct {
	f   *os.File
	dec io.ReadCloser //nil for plain text
	io.Reader
}

func (s *source) Close() error {
	if s.dec != nil {
		s.dec.Close()
	}
	return s.f.Close()
}

// openSource opens filename for reading. The extension decides how
// the content is decompressed: .gz is gzip, .zst and .zstd are z-standard,
// anything else is read as it is.
func openSource(filename, caller string) (*source, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, newError(ErrNotFound, filename, 0, caller, "%v", err)
	}
	s := &source{f: f, Reader: f}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		s.dec, err = gzip.NewReader(f)
	case ".zst", ".zstd":
		var d *zstd.Decoder
		d, err = zstd.NewReader(f)
		if err == nil {
			s.dec = zstdReadCloser{d}
		}
	}
	if err != nil {
		f.Close()
		return nil, newError(ErrMalformed, filename, 0, caller, "can't decompress: %v", err)
	}
	if s.dec != nil {
		s.Reader = s.dec
	}
	return s, nil
}
