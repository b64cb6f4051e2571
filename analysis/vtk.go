/*
 * vtk.go, part of lammpstrj.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteVTK writes the grid as a legacy VTK structured-points file with one
// scalar per cell, called "density".
func WriteVTK(w io.Writer, G *Grid, title string) error {
	if len(G.Data) != G.N[0]*G.N[1]*G.N[2] {
		return fmt.Errorf("analysis.WriteVTK: data size %d does not match grid dimensions %v", len(G.Data), G.N)
	}
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "# vtk DataFile Version 2.0\n%s\nASCII\nDATASET STRUCTURED_POINTS\n", title)
	fmt.Fprintf(b, "DIMENSIONS %d %d %d\n", G.N[0], G.N[1], G.N[2])
	fmt.Fprintf(b, "ORIGIN %g %g %g\n", G.Lo[0], G.Lo[1], G.Lo[2])
	fmt.Fprintf(b, "SPACING %g %g %g\n\n", G.Size[0], G.Size[1], G.Size[2])
	fmt.Fprintf(b, "POINT_DATA %d\n\nSCALARS density float\nLOOKUP_TABLE default\n", len(G.Data))
	var buf []byte
	for _, v := range G.Data {
		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		buf = append(buf, '\n')
		b.Write(buf)
	}
	return b.Flush()
}

// WriteVTKFile writes the grid to the file name. See WriteVTK.
func WriteVTKFile(name string, G *Grid, title string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := WriteVTK(f, G, title); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
