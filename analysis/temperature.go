/*
 * temperature.go, part of lammpstrj.
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
	"github.com/rmera/lammpstrj"
	v3 "github.com/rmera/lammpstrj/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Temperature returns the kinetic temperature of a frame in reduced units
// (unit masses, kB=1): the mean of vx²+vy²+vz² over the atoms, divided by 3.
func Temperature(si *lammpstrj.SystemInfo, atoms []lammpstrj.Atom) float64 {
	if si.Atoms == 0 || len(atoms) == 0 {
		return 0
	}
	V := v3.Velocities(atoms)
	return V.SumSquares() / float64(si.Atoms) / 3.0
}

// Thermometer collects the temperature of every frame it is given. Its Frame
// method can be used directly as a lammpstrj.FrameFunc.
type Thermometer struct {
	//Interval is the number of timesteps between two frames in the file.
	Interval int
	//Start is the index of the first frame given.
	Start int
	Steps []float64
	Temps []float64
}

func (T *Thermometer) Frame(si *lammpstrj.SystemInfo, atoms []lammpstrj.Atom) error {
	index := T.Start + len(T.Temps)
	T.Steps = append(T.Steps, float64(index*T.Interval))
	T.Temps = append(T.Temps, Temperature(si, atoms))
	return nil
}

// Mean returns the mean temperature and its standard deviation.
// The deviation is 0 with less than two frames.
func (T *Thermometer) Mean() (mean, std float64) {
	switch len(T.Temps) {
	case 0:
		return 0, 0
	case 1:
		return T.Temps[0], 0
	}
	return stat.MeanStdDev(T.Temps, nil)
}

// Range returns the lowest and highest temperature collected.
func (T *Thermometer) Range() (min, max float64) {
	if len(T.Temps) == 0 {
		return 0, 0
	}
	return floats.Min(T.Temps), floats.Max(T.Temps)
}
