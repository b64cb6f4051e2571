/*
 * interfaces.go, part of lammpstrj.
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

// FrameFunc is called once per selected frame. atoms has exactly si.Atoms elements,
// the atom with id i being at atoms[i-1]. The slice is only valid during the call:
// the next frame is decoded into the same memory, so anything that has to outlive
// the call must be copied. si must not be modified.
// A non-nil error stops the pass and is returned to the caller.
type FrameFunc func(si *SystemInfo, atoms []Atom) error

// Traj is the interface for a trajectory that can be read one frame at a time.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//Next decodes the next frame into atoms, or skips it if atoms is nil.
	Next(atoms []Atom) error

	//Returns the number of atoms per frame
	Len() int
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the decoration slice after adding the given string. An empty string adds nothing.
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so  they can be
// filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
