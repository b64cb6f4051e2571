/*
 * cluster.go, part of lammpstrj.
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

// Label finds the groups of neighbouring cells of G whose value is at least
// threshold. Two cells are neighbours if they share a face, across the periodic
// boundaries too. It returns, for each cell, the index of the first cell of its
// group (or -1 for cells below threshold), and the number of groups.
func Label(G *Grid, threshold float64) ([]int, int) {
	n := G.Len()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	above := func(i int) bool { return G.Data[i] >= threshold }
	unite := func(i1, i2 int) {
		if !above(i1) || !above(i2) {
			return
		}
		i1 = find(parent, i1)
		i2 = find(parent, i2)
		if i1 < i2 {
			parent[i2] = i1
		} else {
			parent[i1] = i2
		}
	}
	for iz := 0; iz < G.N[2]; iz++ {
		for iy := 0; iy < G.N[1]; iy++ {
			for ix := 0; ix < G.N[0]; ix++ {
				i1 := G.Index(ix, iy, iz)
				unite(i1, G.Index(ix+1, iy, iz))
				unite(i1, G.Index(ix, iy+1, iz))
				unite(i1, G.Index(ix, iy, iz+1))
			}
		}
	}
	groups := 0
	for i := range parent {
		if !above(i) {
			parent[i] = -1
			continue
		}
		parent[i] = find(parent, i)
		if parent[i] == i {
			groups++
		}
	}
	return parent, groups
}

// Clusters returns the number of groups found by Label.
func Clusters(G *Grid, threshold float64) int {
	_, n := Label(G, threshold)
	return n
}

// find returns the root of i, compressing the path on the way.
func find(parent []int, i int) int {
	root := i
	for root != parent[root] {
		root = parent[root]
	}
	for i != root {
		i, parent[i] = parent[i], root
	}
	return root
}
