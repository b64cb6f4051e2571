/*
 * errors.go, part of lammpstrj.
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
)

// The kinds of failure. Every error returned by this package wraps one of
// them, so they can be checked with errors.Is.
var (
	// The file could not be opened.
	ErrNotFound = errors.New("unable to open file")
	// The file is not a valid trajectory. Reading can't go on after this.
	ErrMalformed = errors.New("wrong format in the trajectory file or frame")
	// The requested frame is not in the file. The file itself may be fine.
	ErrNotAvailable = errors.New("frame not available")
	// A negative frame index was requested.
	ErrInvalidFrame = errors.New("invalid frame index")
	// The end of the trajectory was reached. Not an actual error.
	ErrLastFrame = errors.New("EOF")
)

const format = "lammpstrj"

// FileError is the general structure for trajectory errors. It fulfills Error and TrajError.
type FileError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //1-based line where the problem was found, 0 if unknown.
	kind     error
	deco     []string
	critical bool
}

func newError(kind error, filename string, line int, caller string, message string, args ...any) *FileError {
	return &FileError{
		message:  fmt.Sprintf(message, args...),
		filename: filename,
		line:     line,
		kind:     kind,
		deco:     []string{caller},
		critical: kind != ErrNotAvailable && kind != ErrLastFrame,
	}
}

func (err *FileError) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("%s file %s error at line %d: %s: %s", format, err.filename, err.line, err.kind, err.message)
	}
	return fmt.Sprintf("%s file %s error: %s: %s", format, err.filename, err.kind, err.message)
}

// Decorate adds new information to the error and returns the current
// decoration. An empty string only returns it.
func (err *FileError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Unwrap returns the kind of the error (ErrMalformed, ErrNotFound...).
func (err *FileError) Unwrap() error { return err.kind }

// FileName returns the file to which the failing trajectory was associated
func (err *FileError) FileName() string { return err.filename }

// Line returns the line of the file where the error was found, or 0.
func (err *FileError) Line() int { return err.line }

func (err *FileError) Format() string { return format }

// Critical returns true if the error is critical, false otherwise
func (err *FileError) Critical() bool { return err.critical }

// lastFrameError implements LastFrameError
type lastFrameError struct {
	*FileError
}

// NormalLastFrameTermination does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func newLastFrameError(filename string, caller string) lastFrameError {
	return lastFrameError{newError(ErrLastFrame, filename, 0, caller, "no more frames")}
}

// errDecorate decorates the error with the caller's name, if the error
// implements Error, and returns it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}
