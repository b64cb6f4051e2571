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

// Command condensation bins the atoms of a LAMMPS trajectory in a density grid
// and prints, for each frame, the number of clusters of dense cells.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/rmera/lammpstrj"
	"github.com/rmera/lammpstrj/analysis"
	"github.com/rmera/lammpstrj/cfg"
	"github.com/rmera/lammpstrj/trajplot"
)

func main() {
	path := flag.String("config", "", "YAML configuration file")
	flag.Parse()
	if *path == "" {
		log.Fatal("The path of the configuration file must be given with -config")
	}

	log.Printf("Reading configuration file `%s`\n", *path)
	c, err := cfg.New(*path)
	if err != nil {
		log.Fatal(err)
	}

	C := &analysis.Condensation{
		Mesh:      c.Mesh,
		Threshold: c.Threshold,
		Type:      c.Type,
		VTKPrefix: c.VTKPrefix,
		Out:       os.Stdout,
	}
	log.Println("Counting clusters")
	if err := lammpstrj.ForEachFrame(c.Traj, C.Frame); err != nil {
		log.Fatal(err)
	}
	if G := C.Grid(); G != nil {
		log.Printf("%d frames, grid %dx%dx%d", len(C.Counts), G.N[0], G.N[1], G.N[2])
	}

	if c.Plot != "" {
		steps := make([]float64, len(C.Counts))
		counts := make([]float64, len(C.Counts))
		for i, n := range C.Counts {
			steps[i] = float64(i * c.Interval)
			counts[i] = float64(n)
		}
		if err := trajplot.Line(steps, counts, "Condensation", "timestep", "clusters", c.Plot); err != nil {
			log.Fatal(err)
		}
	}
	log.Println("Done")
}
