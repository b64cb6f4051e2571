/*
 * main.go, part of lammpstrj.
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

// Command systeminfo prints the box and the number of atoms of a LAMMPS trajectory.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rmera/lammpstrj"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("Usage: systeminfo FILE")
	}
	si, err := lammpstrj.ReadInfo(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Lx %g\nLy %g\nLz %g\nN %d\n", si.L[0], si.L[1], si.L[2], si.Atoms)
}
