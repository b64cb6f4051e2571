/*
 * frames.go, part of lammpstrj.
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
	"errors"
	"fmt"
	"log"
)

// ForEachFrame calls fn for every frame in filename, in the order they appear.
// The last frame is delivered even if no frame marker follows it.
// Reading stops at the first error, either from the file or from fn.
func ForEachFrame(filename string, fn FrameFunc) error {
	R, err := Open(filename)
	if err != nil {
		return errDecorate(err, "ForEachFrame")
	}
	defer R.Close()
	atoms := make([]Atom, R.Len())
	for {
		err := R.Next(atoms)
		if err != nil {
			if _, ok := err.(LastFrameError); ok {
				return nil //We processed all frames, not a real error.
			}
			return errDecorate(err, "ForEachFrame")
		}
		if err := call(fn, R, atoms); err != nil {
			return err
		}
	}
}

// ForFrame calls fn only for frame k (0-based) of filename. The data lines of the
// frames before k are skipped without being decoded, and nothing after frame k
// is read. It returns true if frame k was found. A trajectory with fewer frames
// is not an error: ForFrame logs a warning and returns false.
func ForFrame(k int, filename string, fn FrameFunc) (bool, error) {
	if k < 0 {
		return false, newError(ErrInvalidFrame, filename, 0, "ForFrame", "frame %d requested", k)
	}
	R, err := Open(filename)
	if err != nil {
		return false, errDecorate(err, "ForFrame")
	}
	defer R.Close()
	R.limit = k
	atoms := make([]Atom, R.Len())
	for {
		err := R.nextBlock()
		if err == nil {
			switch {
			case R.frame == k:
				if err = R.decode(atoms); err == nil {
					return true, call(fn, R, atoms)
				}
			default:
				err = R.skip()
			}
		}
		if err != nil {
			if errors.Is(err, ErrLastFrame) {
				log.Print(notAvailable(k, R))
				return false, nil
			}
			return false, errDecorate(err, "ForFrame")
		}
	}
}

// notAvailable explains why frame k was not delivered: either the file ends
// before it, or frame k has no atoms block and the next frame was reached.
func notAvailable(k int, R *Reader) *FileError {
	if R.frame > k {
		return newError(ErrNotAvailable, R.filename, 0, "ForFrame", "frame %d has no atoms block", k)
	}
	return newError(ErrNotAvailable, R.filename, 0, "ForFrame", "frame %d requested, %d frames found", k, R.frame+1)
}

// call hands a frame to fn, with a copy of the header so fn can't alter the
// one used for decoding.
func call(fn FrameFunc, R *Reader, atoms []Atom) error {
	si := *R.info
	if err := fn(&si, atoms); err != nil {
		return fmt.Errorf("frame %d: %w", R.frame, err)
	}
	return nil
}
