/*
 * doc.go, part of lammpstrj.
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

/*
Package lammpstrj reads LAMMPS text trajectories (the "dump atom/custom" format,
usually with the .lammpstrj extension) and hands the decoded frames to analysis code.

A trajectory is a sequence of frames. Each frame looks like:

	ITEM: TIMESTEP
	100
	ITEM: NUMBER OF ATOMS
	2
	ITEM: BOX BOUNDS pp pp pp
	0.0 10.0
	0.0 10.0
	0.0 10.0
	ITEM: ATOMS id type xs ys zs vx vy vz
	1 1 0.5 0.5 0.5 0.1 0.0 -0.2
	2 1 0.9 0.5 0.5 0.0 0.3 0.0

The columns declared in the "ITEM: ATOMS" line can change from frame to frame, so
they are parsed again for every frame. The id column is mandatory. Recognized
columns are type, x y z (absolute), xs ys zs (fractions of the box), and vx vy vz.
Other columns are ignored.

Decoded coordinates are always absolute and wrapped into the box: scaled
coordinates are turned into absolute ones with f*L+lo, and a coordinate that lies
outside the box is moved back by one box length.

The atom count and the box are read once, from the first time they appear in the
file (see ReadInfo), and used for every frame.

Three ways of reading are offered:

	ForEachFrame  calls a function for every frame in the file.
	ForFrame      calls a function only for frame k, skipping the others without decoding them.
	Open          returns a Reader, which gives the frames one at a time on demand.

Files ending in .gz, .zst or .zstd are decompressed on the fly.
*/
package lammpstrj
