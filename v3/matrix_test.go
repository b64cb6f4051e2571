/*
 * matrix_test.go, part of lammpstrj.
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

package v3

import (
	"math"
	"testing"

	"github.com/rmera/lammpstrj"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("view not reflected in the matrix: %v", A.At(1, 0))
	}
	_, err = NewMatrix([]float64{1, 2})
	e, ok := err.(*Error)
	if !ok {
		Te.Fatalf("expected a *Error for a slice not divisible by 3, got %v", err)
	}
	if !e.Critical() {
		Te.Error("shape error should be critical")
	}
	e.Decorate("TestNewMatrix")
	if deco := e.Decorate(""); len(deco) != 2 || deco[0] != "NewMatrix" || deco[1] != "TestNewMatrix" {
		Te.Errorf("decoration lost: %v", deco)
	}
	if _, err := NewMatrix(nil); err == nil {
		Te.Error("no error for an empty slice")
	}
}

func TestAtoms(Te *testing.T) {
	atoms := []lammpstrj.Atom{
		{ID: 1, Pos: [3]float64{1, 2, 3}, Vel: [3]float64{3, 4, 0}},
		{ID: 2, Pos: [3]float64{4, 5, 6}, Vel: [3]float64{0, 0, 1}},
	}
	P := Positions(atoms)
	if P.NVecs() != 2 || P.At(1, 2) != 6 || P.At(0, 1) != 2 {
		Te.Errorf("wrong positions matrix %v", P)
	}
	V := Velocities(atoms)
	if ss := V.SumSquares(); math.Abs(ss-26) > 1e-12 {
		Te.Errorf("sum of squares should be 26, got %f", ss)
	}
	norms := V.Norms(nil)
	if math.Abs(norms[0]-5) > 1e-12 || math.Abs(norms[1]-1) > 1e-12 {
		Te.Errorf("wrong norms %v", norms)
	}
}
