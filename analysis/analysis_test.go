/*
 * analysis_test.go, part of lammpstrj.
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
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/lammpstrj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(lo, hi float64, n int) *lammpstrj.SystemInfo {
	si := &lammpstrj.SystemInfo{Atoms: n}
	for k := 0; k < 3; k++ {
		si.Lo[k] = lo
		si.Hi[k] = hi
		si.L[k] = hi - lo
	}
	return si
}

func TestTemperature(Te *testing.T) {
	atoms := []lammpstrj.Atom{
		{ID: 1, Vel: [3]float64{1, 0, 0}},
		{ID: 2, Vel: [3]float64{1, 1, 1}},
	}
	//(1+3)/2/3
	assert.InDelta(Te, 2.0/3.0, Temperature(box(0, 10, 2), atoms), 1e-12)
	assert.Equal(Te, 0.0, Temperature(box(0, 10, 0), nil))

	T := &Thermometer{Interval: 100}
	require.NoError(Te, T.Frame(box(0, 10, 2), atoms))
	mean, std := T.Mean()
	assert.InDelta(Te, 2.0/3.0, mean, 1e-12)
	assert.Equal(Te, 0.0, std)
	atoms[1].Vel = [3]float64{0, 0, 0}
	require.NoError(Te, T.Frame(box(0, 10, 2), atoms))
	assert.Equal(Te, []float64{0, 100}, T.Steps)
	min, max := T.Range()
	assert.InDelta(Te, 1.0/6.0, min, 1e-12)
	assert.InDelta(Te, 2.0/3.0, max, 1e-12)
	mean, std = T.Mean()
	assert.InDelta(Te, 5.0/12.0, mean, 1e-12)
	assert.Greater(Te, std, 0.0)
}

func TestGrid(Te *testing.T) {
	si := box(-5, 5, 3)
	si.Hi[2], si.L[2] = 0, 5
	G, err := NewGrid(si, 3)
	require.NoError(Te, err)
	assert.Equal(Te, [3]int{4, 4, 2}, G.N)
	assert.InDelta(Te, 2.5, G.Size[0], 1e-12)
	assert.InDelta(Te, 2.5, G.Size[2], 1e-12)
	assert.Equal(Te, 32, G.Len())

	assert.Equal(Te, 0, G.CellOf([3]float64{-5, -5, -5}))
	assert.Equal(Te, G.Index(3, 3, 1), G.CellOf([3]float64{5, 5, 0}))
	assert.Equal(Te, G.Index(0, 0, 0), G.Index(4, -4, 2))

	atoms := []lammpstrj.Atom{
		{ID: 1, Type: 1, Pos: [3]float64{-4, -4, -4}},
		{ID: 2, Type: 1, Pos: [3]float64{-3, -3, -3}},
		{ID: 3, Type: 2, Pos: [3]float64{4, 4, -1}},
	}
	G.Bin(atoms, 1)
	vol := G.CellVolume()
	assert.InDelta(Te, 2/vol, G.Data[0], 1e-12)
	assert.Equal(Te, 0.0, G.Data[G.Index(3, 3, 1)])
	G.Bin(atoms, 0)
	assert.InDelta(Te, 1/vol, G.Data[G.Index(3, 3, 1)], 1e-12)

	_, err = NewGrid(si, 0)
	assert.Error(Te, err)
}

func TestClusters(Te *testing.T) {
	G, err := NewGrid(box(0, 4, 0), 1)
	require.NoError(Te, err)
	assert.Equal(Te, 0, Clusters(G, 0.5))
	//two cells touching across the periodic boundary in x: one cluster.
	G.Data[G.Index(0, 1, 1)] = 1
	G.Data[G.Index(3, 1, 1)] = 1
	//an isolated one
	G.Data[G.Index(1, 3, 3)] = 1
	//and a diagonal neighbour, which does not count as touching
	G.Data[G.Index(2, 2, 2)] = 1
	labels, n := Label(G, 0.5)
	assert.Equal(Te, 3, n)
	assert.Equal(Te, labels[G.Index(0, 1, 1)], labels[G.Index(3, 1, 1)])
	assert.Equal(Te, -1, labels[G.Index(2, 2, 1)])
	//the threshold itself is included
	assert.Equal(Te, 3, Clusters(G, 1))
	assert.Equal(Te, 0, Clusters(G, 1.5))
	//fill a line through the box: everything joins
	for ix := 0; ix < 4; ix++ {
		G.Data[G.Index(ix, 2, 2)] = 1
	}
	G.Data[G.Index(1, 3, 2)] = 1
	G.Data[G.Index(1, 2, 1)] = 1
	G.Data[G.Index(1, 1, 1)] = 1
	assert.Equal(Te, 1, Clusters(G, 0.5))
}

func TestWriteVTK(Te *testing.T) {
	G, err := NewGrid(box(0, 2, 0), 1)
	require.NoError(Te, err)
	G.Data[1] = 0.5
	var b bytes.Buffer
	require.NoError(Te, WriteVTK(&b, G, "test"))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	assert.Equal(Te, "# vtk DataFile Version 2.0", lines[0])
	assert.Equal(Te, "test", lines[1])
	assert.Contains(Te, lines, "DIMENSIONS 2 2 2")
	assert.Contains(Te, lines, "POINT_DATA 8")
	assert.Equal(Te, "0.5", lines[len(lines)-7])
	assert.Equal(Te, "0", lines[len(lines)-1])

	G.Data = G.Data[:3]
	assert.Error(Te, WriteVTK(&b, G, "bad"))
}

const dropTraj = `ITEM: TIMESTEP
0
ITEM: NUMBER OF ATOMS
3
ITEM: BOX BOUNDS pp pp pp
0 4
0 4
0 4
ITEM: ATOMS id type xs ys zs vx vy vz
1 1 0.1 0.1 0.1 1 0 0
2 1 0.6 0.6 0.6 0 1 0
3 2 0.3 0.3 0.3 0 0 1
ITEM: TIMESTEP
100
ITEM: NUMBER OF ATOMS
3
ITEM: BOX BOUNDS pp pp pp
0 4
0 4
0 4
ITEM: ATOMS id type x y z
1 1 0.5 0.5 0.5
2 1 -0.5 0.5 0.5
3 2 2 2 2
`

func TestCondensationTrajectory(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "drop.lammpstrj")
	require.NoError(Te, os.WriteFile(name, []byte(dropTraj), 0o644))
	var out bytes.Buffer
	C := &Condensation{Mesh: 1, Threshold: 0.5, Type: 1, VTKPrefix: filepath.Join(dir, "density"), Out: &out}
	require.NoError(Te, lammpstrj.ForEachFrame(name, C.Frame))
	//frame 0: two separate cells; frame 1: neighbours through the x boundary.
	assert.Equal(Te, []int{2, 1}, C.Counts)
	assert.Equal(Te, "0 2\n1 1\n", out.String())
	for _, f := range []string{"density.0000.vtk", "density.0001.vtk"} {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(Te, err)
	}

	T := &Thermometer{Interval: 100}
	require.NoError(Te, lammpstrj.ForEachFrame(name, T.Frame))
	assert.Equal(Te, []float64{0, 100}, T.Steps)
	assert.InDelta(Te, 1.0/3.0, T.Temps[0], 1e-12)
	assert.True(Te, math.Abs(T.Temps[1]) < 1e-12)
}
