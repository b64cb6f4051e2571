/*
 * condensation.go, part of lammpstrj.
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

package analysis

import (
	"fmt"
	"io"

	"github.com/rmera/lammpstrj"
)

// Condensation follows the formation of dense regions along a trajectory. For
// each frame it bins the atoms of one type in a grid and counts the clusters of
// cells denser than a threshold. Its Frame method is a lammpstrj.FrameFunc.
type Condensation struct {
	Mesh      float64 //largest cell size
	Threshold float64 //lowest density of a cell in a cluster
	Type      int     //atom type to bin, 0 for all
	//If not empty, the density of each frame is written to VTKPrefix.NNNN.vtk
	VTKPrefix string
	//If not nil, "frame clusters" is written here for each frame
	Out io.Writer

	Counts []int //clusters found in each frame

	grid *Grid
}

func (C *Condensation) Frame(si *lammpstrj.SystemInfo, atoms []lammpstrj.Atom) error {
	var err error
	if C.grid == nil {
		if C.grid, err = NewGrid(si, C.Mesh); err != nil {
			return err
		}
	}
	frame := len(C.Counts)
	C.grid.Bin(atoms, C.Type)
	n := Clusters(C.grid, C.Threshold)
	C.Counts = append(C.Counts, n)
	if C.VTKPrefix != "" {
		name := fmt.Sprintf("%s.%04d.vtk", C.VTKPrefix, frame)
		if err := WriteVTKFile(name, C.grid, fmt.Sprintf("density frame %d", frame)); err != nil {
			return err
		}
	}
	if C.Out != nil {
		if _, err := fmt.Fprintf(C.Out, "%d %d\n", frame, n); err != nil {
			return err
		}
	}
	return nil
}

// Grid returns the grid of the last frame, or nil if no frame was processed.
func (C *Condensation) Grid() *Grid {
	return C.grid
}
