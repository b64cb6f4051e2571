/*
 * atom.go, part of lammpstrj.
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

import "fmt"

// Atom is one particle in one frame. Positions are absolute and inside the box.
type Atom struct {
	ID   int //1-based
	Type int
	Pos  [3]float64
	Vel  [3]float64
}

// SystemInfo contains the atom count and the box of a trajectory.
type SystemInfo struct {
	Atoms int
	Lo    [3]float64 //lower bound of the box in x, y and z
	Hi    [3]float64 //upper bound
	L     [3]float64 //Hi-Lo, the size of the box
}

// Volume returns the volume of the box.
func (si *SystemInfo) Volume() float64 {
	return si.L[0] * si.L[1] * si.L[2]
}

func (si *SystemInfo) String() string {
	return fmt.Sprintf("N=%d L=(%g, %g, %g) lo=(%g, %g, %g)", si.Atoms, si.L[0], si.L[1], si.L[2], si.Lo[0], si.Lo[1], si.Lo[2])
}

// Wrap puts v back into [Lo[axis], Hi[axis]] by adding or subtracting
// one box length. It is done only once, so particles that are more than
// one box away stay out.
func (si *SystemInfo) Wrap(axis int, v float64) float64 {
	if v < si.Lo[axis] {
		return v + si.L[axis]
	}
	if v > si.Hi[axis] {
		return v - si.L[axis]
	}
	return v
}

// Unscale turns a fraction of the box into an absolute coordinate.
func (si *SystemInfo) Unscale(axis int, f float64) float64 {
	return f*si.L[axis] + si.Lo[axis]
}
