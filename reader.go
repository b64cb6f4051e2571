/*
 * reader.go, part of lammpstrj.
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
	"strconv"
	"strings"
)

// Reader is an open trajectory, read one frame at a time. It is not safe for
// concurrent use.
type Reader struct {
	src      *source
	r        *lineReader
	filename string
	info     *SystemInfo
	frame    int   //index of the last "ITEM: TIMESTEP" seen, -1 before the first one
	timestep int64 //value of that timestep
	limit    int   //if >= 0, stop at the first frame with a larger index
	schema   *schema
	seen     []bool //ids already decoded in the current frame
	readable bool
}

// Open reads the header of filename with ReadInfo and then opens the file
// again, ready to read its frames.
func Open(filename string) (*Reader, error) {
	info, err := ReadInfo(filename)
	if err != nil {
		return nil, errDecorate(err, "Open")
	}
	src, err := openSource(filename, "Open")
	if err != nil {
		return nil, err
	}
	R := &Reader{
		src:      src,
		r:        newLineReader(src),
		filename: filename,
		info:     info,
		frame:    -1,
		timestep: -1,
		limit:    -1,
		readable: true,
	}
	return R, nil
}

// Readable returns true if the object is ready to be read from,
// false otherwise. It doesn't guarantee that there is something
// to read.
func (R *Reader) Readable() bool {
	return R.readable
}

// Len returns the number of atoms in each frame of the trajectory.
func (R *Reader) Len() int {
	return R.info.Atoms
}

// Info returns the atom count and box of the trajectory. It must not be modified.
func (R *Reader) Info() *SystemInfo {
	return R.info
}

// Frame returns the 0-based index of the last frame returned by Next,
// or -1 if no frame has been read.
func (R *Reader) Frame() int {
	return R.frame
}

// Timestep returns the timestep of the last frame returned by Next, or -1
// if it is not known.
func (R *Reader) Timestep() int64 {
	return R.timestep
}

// Close closes the file, and marks the Reader as unreadable.
func (R *Reader) Close() error {
	if R.src == nil {
		return nil
	}
	R.readable = false
	err := R.src.Close()
	R.src = nil
	return err
}

// Next puts the next frame of the trajectory in atoms, which must have at least
// Len() elements. The atom with id i goes to atoms[i-1]. If atoms is nil, the
// frame is skipped: its data lines are read but not decoded.
// At the end of the trajectory Next returns an error implementing LastFrameError,
// which wraps ErrLastFrame. That is not an actual error.
func (R *Reader) Next(atoms []Atom) error {
	if atoms != nil && len(atoms) < R.info.Atoms {
		return newError(io.ErrShortBuffer, R.filename, 0, "Next", "%d atoms given, but %d expected", len(atoms), R.info.Atoms)
	}
	if err := R.nextBlock(); err != nil {
		return errDecorate(err, "Next")
	}
	if atoms == nil {
		return errDecorate(R.skip(), "Next")
	}
	return errDecorate(R.decode(atoms[:R.info.Atoms]), "Next")
}

// nextBlock advances until the next "ITEM: ATOMS" line and parses it.
func (R *Reader) nextBlock() error {
	if !R.readable {
		return newLastFrameError(R.filename, "nextBlock")
	}
	for {
		line, err := R.r.next()
		if err != nil {
			R.readable = false
			if err == io.EOF {
				return newLastFrameError(R.filename, "nextBlock")
			}
			return newError(ErrMalformed, R.filename, R.r.n+1, "nextBlock", "%v", err)
		}
		switch {
		case strings.HasPrefix(line, timestepTag):
			R.frame++
			R.timestep = -1
			if R.limit >= 0 && R.frame > R.limit {
				R.readable = false
				return newLastFrameError(R.filename, "nextBlock")
			}
			if err := R.readTimestep(); err != nil {
				return err
			}
		case strings.HasPrefix(line, atomsTag):
			s, err := parseSchema(line)
			if err != nil {
				R.readable = false
				return newError(ErrMalformed, R.filename, R.r.n, "nextBlock", "%v", err)
			}
			R.schema = s
			return nil
		}
	}
}

// readTimestep reads the line after a timestep marker. A line that is not
// a timestep is left for the caller.
func (R *Reader) readTimestep() error {
	line, err := R.r.next()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		R.readable = false
		return newError(ErrMalformed, R.filename, R.r.n+1, "readTimestep", "%v", err)
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		R.r.unread()
		return nil
	}
	R.timestep = ts
	return nil
}

// decode reads exactly len(atoms) data lines into atoms.
func (R *Reader) decode(atoms []Atom) error {
	clear(atoms)
	n := len(atoms)
	if len(R.seen) < n {
		R.seen = make([]bool, n)
	}
	seen := R.seen[:n]
	clear(seen)
	for i := 0; i < n; i++ {
		line, err := R.r.next()
		if err == nil && isMarker(line) {
			R.r.unread()
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			R.readable = false
			return newError(ErrMalformed, R.filename, R.r.n+1, "decode", "frame %d has only %d of %d atoms", R.frame, i, n)
		}
		var a Atom
		if err := R.schema.decode(strings.Fields(line), R.info, &a); err != nil {
			R.readable = false
			return newError(ErrMalformed, R.filename, R.r.n, "decode", "%v", err)
		}
		if a.ID < 1 || a.ID > n {
			R.readable = false
			return newError(ErrMalformed, R.filename, R.r.n, "decode", "atom id %d out of range [1, %d]", a.ID, n)
		}
		if seen[a.ID-1] {
			R.readable = false
			return newError(ErrMalformed, R.filename, R.r.n, "decode", "atom id %d repeated in frame %d", a.ID, R.frame)
		}
		seen[a.ID-1] = true
		atoms[a.ID-1] = a
	}
	return nil
}

// skip discards the data lines of one frame. A file ending before all the lines
// are read is not an error, it just ends the trajectory.
func (R *Reader) skip() error {
	if _, err := R.r.skip(R.info.Atoms); err != nil {
		R.readable = false
		if err == io.EOF {
			return newLastFrameError(R.filename, "skip")
		}
		return newError(ErrMalformed, R.filename, R.r.n+1, "skip", "%v", err)
	}
	return nil
}
