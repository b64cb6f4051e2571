/*
 * lines.go, part of lammpstrj.
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
	"bufio"
	"io"
	"strings"
)

// Markers of the dump format.
const (
	itemPrefix  = "ITEM:"
	timestepTag = "ITEM: TIMESTEP"
	natomsTag   = "ITEM: NUMBER OF ATOMS"
	boxTag      = "ITEM: BOX BOUNDS"
	atomsTag    = "ITEM: ATOMS"
)

// lineReader reads a text file one line at a time, keeping track of
// the line number. One line can be put back with unread.
type lineReader struct {
	r       *bufio.Reader
	n       int //lines read so far
	pending string
	back    bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReaderSize(r, 64*1024)}
}

// next returns the next line without the line terminator. It returns io.EOF
// only when there is nothing left; a last line without "\n" is still returned.
func (L *lineReader) next() (string, error) {
	if L.back {
		L.back = false
		L.n++
		return L.pending, nil
	}
	s, err := L.r.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}
	L.n++
	s = strings.TrimRight(s, "\r\n")
	L.pending = s
	return s, nil
}

// unread makes the next call to next return the last line again.
func (L *lineReader) unread() {
	L.back = true
	L.n--
}

// skip discards n lines. It returns the number of lines actually discarded,
// and io.EOF if the file ended before.
// Skipped lines are never copied out of the buffer.
func (L *lineReader) skip(n int) (int, error) {
	for i := 0; i < n; i++ {
		if L.back {
			L.back = false
			L.n++
			continue
		}
		read := 0
		for {
			b, err := L.r.ReadSlice('\n')
			read += len(b)
			if err == bufio.ErrBufferFull {
				continue
			}
			if err != nil && (err != io.EOF || read == 0) {
				return i, err
			}
			break
		}
		L.n++
	}
	return n, nil
}

func isMarker(line string) bool {
	return strings.HasPrefix(line, itemPrefix)
}
