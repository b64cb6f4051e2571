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

// Command temperature prints the kinetic temperature (reduced units) of each
// frame of a LAMMPS trajectory, or of one frame if -frame is given.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rmera/lammpstrj"
	"github.com/rmera/lammpstrj/analysis"
	"github.com/rmera/lammpstrj/trajplot"
)

func main() {
	interval := flag.Int("interval", 1, "timesteps between two frames of the file")
	frame := flag.Int("frame", -1, "only compute the temperature of this frame (0-based)")
	plot := flag.String("plot", "", "plot the temperature series to this file (png, svg, pdf)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: temperature [-interval N] [-frame K] [-plot out.png] FILE")
		flag.PrintDefaults()
		os.Exit(1)
	}
	name := flag.Arg(0)

	T := &analysis.Thermometer{Interval: *interval}
	if *frame >= 0 {
		T.Start = *frame
		found, err := lammpstrj.ForFrame(*frame, name, T.Frame)
		if err != nil {
			log.Fatal(err)
		}
		if !found {
			os.Exit(1)
		}
	} else if err := lammpstrj.ForEachFrame(name, T.Frame); err != nil {
		log.Fatal(err)
	}

	for i, t := range T.Temps {
		fmt.Printf("%d %.6g\n", int(T.Steps[i]), t)
	}
	mean, std := T.Mean()
	min, max := T.Range()
	log.Printf("%d frames, T = %.6g ± %.3g, min %.6g max %.6g", len(T.Temps), mean, std, min, max)

	if *plot != "" {
		err := trajplot.Line(T.Steps, T.Temps, "Temperature", "timestep", "T (reduced units)", *plot)
		if err != nil {
			log.Fatal(err)
		}
	}
}
