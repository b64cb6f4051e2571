/*
 * density.go, part of lammpstrj.
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
	"math"

	"github.com/rmera/lammpstrj"
	"gonum.org/v1/gonum/floats"
)

// Grid is a regular mesh over the simulation box, holding one value per cell.
type Grid struct {
	N    [3]int     //cells per axis
	Size [3]float64 //actual size of a cell in each axis
	Lo   [3]float64 //origin of the box
	Data []float64  //the cell (ix,iy,iz) is at ix+N[0]*(iy+N[1]*iz)
}

// NewGrid divides the box of si in cells no larger than mesh in any axis.
// The number of cells per axis is rounded up, so the cells are usually a bit
// smaller than mesh.
func NewGrid(si *lammpstrj.SystemInfo, mesh float64) (*Grid, error) {
	if mesh <= 0 || math.IsNaN(mesh) {
		return nil, fmt.Errorf("analysis.NewGrid: mesh size must be positive, got %g", mesh)
	}
	G := &Grid{Lo: si.Lo}
	total := 1
	for k := 0; k < 3; k++ {
		if si.L[k] <= 0 {
			return nil, fmt.Errorf("analysis.NewGrid: box length %g in axis %d", si.L[k], k)
		}
		G.N[k] = int(math.Ceil(si.L[k] / mesh))
		G.Size[k] = si.L[k] / float64(G.N[k])
		total *= G.N[k]
	}
	G.Data = make([]float64, total)
	return G, nil
}

// Len returns the number of cells.
func (G *Grid) Len() int {
	return len(G.Data)
}

// CellVolume returns the volume of one cell.
func (G *Grid) CellVolume() float64 {
	return G.Size[0] * G.Size[1] * G.Size[2]
}

// Index returns the position in Data of the cell (ix,iy,iz). Indexes out of
// the grid are wrapped around, as the box is periodic.
func (G *Grid) Index(ix, iy, iz int) int {
	ix = wrapIndex(ix, G.N[0])
	iy = wrapIndex(iy, G.N[1])
	iz = wrapIndex(iz, G.N[2])
	return ix + G.N[0]*(iy+G.N[1]*iz)
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// CellOf returns the position in Data of the cell containing p. Points
// on the upper face of the box go to the last cell.
func (G *Grid) CellOf(p [3]float64) int {
	var idx [3]int
	for k := 0; k < 3; k++ {
		i := int(math.Floor((p[k] - G.Lo[k]) / G.Size[k]))
		if i >= G.N[k] {
			i = G.N[k] - 1
		} else if i < 0 {
			i = 0
		}
		idx[k] = i
	}
	return G.Index(idx[0], idx[1], idx[2])
}

// Bin fills the grid with the number density (atoms per unit volume) of the
// atoms of type typ. If typ is 0, all the atoms are counted.
func (G *Grid) Bin(atoms []lammpstrj.Atom, typ int) {
	for i := range G.Data {
		G.Data[i] = 0
	}
	for _, a := range atoms {
		if typ != 0 && a.Type != typ {
			continue
		}
		G.Data[G.CellOf(a.Pos)] += 1.0
	}
	floats.Scale(1/G.CellVolume(), G.Data)
}
