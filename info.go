/*
 * info.go, part of lammpstrj.
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

// ReadInfo reads the number of atoms and the box bounds from the first
// "ITEM: NUMBER OF ATOMS" and "ITEM: BOX BOUNDS" blocks in filename.
// It stops reading as soon as both have been found.
// The error wraps ErrNotFound if the file can't be opened, and ErrMalformed
// if either block is missing or can't be parsed.
func ReadInfo(filename string) (*SystemInfo, error) {
	src, err := openSource(filename, "ReadInfo")
	if err != nil {
		return nil, err
	}
	defer src.Close()
	si, err := readInfo(newLineReader(src), filename)
	if err != nil {
		return nil, errDecorate(err, "ReadInfo")
	}
	return si, nil
}

func readInfo(r *lineReader, filename string) (*SystemInfo, error) {
	si := new(SystemInfo)
	var atomsFound, boxFound bool
	for !(atomsFound && boxFound) {
		line, err := r.next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, newError(ErrMalformed, filename, r.n, "readInfo", "%v", err)
		}
		switch {
		case !atomsFound && strings.HasPrefix(line, natomsTag):
			if si.Atoms, err = readAtomCount(r, filename); err != nil {
				return nil, err
			}
			atomsFound = true
		case !boxFound && strings.HasPrefix(line, boxTag):
			if err = readBox(r, filename, si); err != nil {
				return nil, err
			}
			boxFound = true
		}
	}
	if !atomsFound {
		return nil, newError(ErrMalformed, filename, 0, "readInfo", "no %q block found", natomsTag)
	}
	if !boxFound {
		return nil, newError(ErrMalformed, filename, 0, "readInfo", "no %q block found", boxTag)
	}
	return si, nil
}

func readAtomCount(r *lineReader, filename string) (int, error) {
	line, err := r.next()
	if err != nil {
		return 0, newError(ErrMalformed, filename, r.n, "readAtomCount", "missing the number of atoms: %v", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, newError(ErrMalformed, filename, r.n, "readAtomCount", "can't read the number of atoms from '%s'", line)
	}
	if n < 0 {
		return 0, newError(ErrMalformed, filename, r.n, "readAtomCount", "negative number of atoms %d", n)
	}
	return n, nil
}

// readBox reads the three "lo hi" lines after a box bounds marker. Anything
// after the first two numbers of a line (i.e. tilt factors) is ignored.
func readBox(r *lineReader, filename string, si *SystemInfo) error {
	for k := 0; k < 3; k++ {
		line, err := r.next()
		if err != nil {
			return newError(ErrMalformed, filename, r.n, "readBox", "missing box bounds for axis %d: %v", k, err)
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return newError(ErrMalformed, filename, r.n, "readBox", "unable to get the size of the box from '%s'", line)
		}
		lo, err1 := strconv.ParseFloat(fields[0], 64)
		hi, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			return newError(ErrMalformed, filename, r.n, "readBox", "unable to get the size of the box from '%s'", line)
		}
		if hi <= lo {
			return newError(ErrMalformed, filename, r.n, "readBox", "box length %g for axis %d is not positive", hi-lo, k)
		}
		si.Lo[k] = lo
		si.Hi[k] = hi
		si.L[k] = hi - lo
	}
	return nil
}
