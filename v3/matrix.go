/*
 * matrix.go, part of lammpstrj.
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
	"fmt"
	"math"

	"github.com/rmera/lammpstrj"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space. Within the package a "vector" is
// a row: the x y z components for one atom.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
// vecs must be positive.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, &Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// VecView returns a view of the given vector of the matrix. Changes in the
// view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// SumSquares returns the sum of the squares of all the elements of F.
func (F *Matrix) SumSquares() float64 {
	n := mat.Norm(F.Dense, 2) //Frobenius
	return n * n
}

// Norms puts in dst, which is allocated if nil, the norm of each vector of F.
func (F *Matrix) Norms(dst []float64) []float64 {
	n := F.NVecs()
	if dst == nil {
		dst = make([]float64, n)
	}
	if len(dst) < n {
		panic(ErrShape)
	}
	for i := 0; i < n; i++ {
		r := F.RawRowView(i)
		dst[i] = math.Sqrt(r[0]*r[0] + r[1]*r[1] + r[2]*r[2])
	}
	return dst
}

// Positions returns a matrix with the positions of atoms, one atom per row.
func Positions(atoms []lammpstrj.Atom) *Matrix {
	M := Zeros(len(atoms))
	for i, a := range atoms {
		M.SetRow(i, a.Pos[:])
	}
	return M
}

// Velocities returns a matrix with the velocities of atoms, one atom per row.
func Velocities(atoms []lammpstrj.Atom) *Matrix {
	M := Zeros(len(atoms))
	for i, a := range atoms {
		M.SetRow(i, a.Vel[:])
	}
	return M
}

//Errors

type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("lammpstrj/v3: A VecMatrix should have 3 columns")
	ErrShape        = PanicMsg("lammpstrj/v3: Dimension mismatch")
)
