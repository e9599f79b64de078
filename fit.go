/*
 * fit.go, part of gordc.
 *
 * Copyright 2021 Raul Mera A. (raulpuntomeraatusachpuntocl)
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

package rdc

import (
	v3 "github.com/rmera/gordc/v3"
	"gonum.org/v1/gonum/mat"
)

//fitSolverAvailable reports whether the least-squares backend is
//compiled in. A build replacing this file with a stub makes New reject
//fit mode cleanly instead of failing at evaluation time.
func fitSolverAvailable() bool { return true }

//OrderTensor is the molecular alignment tensor: symmetric, traceless,
//with exactly 5 independent components. The dependent component Szz is
//always derived from the traceless condition, never stored.
type OrderTensor struct {
	sxx, syy, sxy, sxz, syz float64
}

//NewOrderTensor builds an order tensor from its 5 independent
//components.
func NewOrderTensor(sxx, syy, sxy, sxz, syz float64) *OrderTensor {
	return &OrderTensor{sxx: sxx, syy: syy, sxy: sxy, sxz: sxz, syz: syz}
}

func (S *OrderTensor) Sxx() float64 { return S.sxx }
func (S *OrderTensor) Syy() float64 { return S.syy }
func (S *OrderTensor) Sxy() float64 { return S.sxy }
func (S *OrderTensor) Sxz() float64 { return S.sxz }
func (S *OrderTensor) Syz() float64 { return S.syz }

//Szz returns the dependent component, -Sxx-Syy, so the tensor has zero
//trace.
func (S *OrderTensor) Szz() float64 { return -S.sxx - S.syy }

//Matrix returns the full symmetric 3x3 tensor.
func (S *OrderTensor) Matrix() *v3.Matrix {
	m, _ := v3.NewMatrix([]float64{
		S.sxx, S.sxy, S.sxz,
		S.sxy, S.syy, S.syz,
		S.sxz, S.syz, S.Szz(),
	}) //the slice is hardcoded to the right shape
	return m
}

//project gives the dimensionless coupling a bond with unit direction
//row i of the design matrix would have under the tensor.
func (S *OrderTensor) project(coef *mat.Dense, i int) float64 {
	s := [5]float64{S.sxx, S.syy, S.sxy, S.sxz, S.syz}
	var bc float64
	for j := 0; j < 5; j++ {
		bc += coef.At(i, j) * s[j]
	}
	return bc
}

//fitCalc back-calculates the couplings from the order tensor that best
//reproduces, in the least-squares sense, the experimental couplings
//given the current geometry. One row of the over-determined system per
//bond, 5 unknowns; Szz is eliminated with the traceless condition
//before the solve. No gradients are produced.
func (E *Engine) fitCalc(coords *v3.Matrix, disp Displacer) (*Results, error) {
	n := len(E.bonds)
	coef := mat.NewDense(n, 5, nil)
	target := make([]float64, n)
	dmax := make([]float64, n)
	d := v3.Zeros(1)
	for i, b := range E.bonds {
		if err := disp.Displacement(d, coords.VecView(b.A), coords.VecView(b.B)); err != nil {
			return nil, errDecorate(err, "fitCalc")
		}
		r := d.Norm(0)
		if r <= appzero {
			return nil, cError("fitCalc", "zero-length vector for bond %d (atoms %d and %d)", i+1, b.A, b.B)
		}
		max := -Kdipolar * b.Gyro * b.Scale
		dmax[i] = max / (r * r * r)
		mux := d.At(0, 0) / r
		muy := d.At(0, 1) / r
		muz := d.At(0, 2) / r
		coef.Set(i, 0, mux*mux-muz*muz)
		coef.Set(i, 1, muy*muy-muz*muz)
		coef.Set(i, 2, 2.0*mux*muy)
		coef.Set(i, 3, 2.0*mux*muz)
		coef.Set(i, 4, 2.0*muy*muz)
		target[i] = b.Coupling / dmax[i]
	}
	s, err := solveLeastSquares(coef, target)
	if err != nil {
		return nil, errDecorate(err, "fitCalc")
	}
	tensor := NewOrderTensor(s[0], s[1], s[2], s[3], s[4])
	rdc := make([]float64, n)
	for i := range rdc {
		rdc[i] = tensor.project(coef, i) * dmax[i]
	}
	return &Results{RDC: rdc, Tensor: tensor}, nil
}

//svdRcond is the relative threshold under which singular values are
//treated as zero when solving, which keeps rank-deficient geometries
//(e.g. many parallel bonds) from blowing up the solution.
const svdRcond = 1e-12

//solveLeastSquares solves the over-determined system A*x = b in the
//least-squares sense through a thin singular value decomposition,
//x = V*diag(1/s)*U^T*b, zeroing out negligible singular values.
func solveLeastSquares(A *mat.Dense, b []float64) ([]float64, error) {
	rows, cols := A.Dims()
	if rows < cols {
		return nil, cError("solveLeastSquares", "system with %d equations and %d unknowns is under-determined", rows, cols)
	}
	var svd mat.SVD
	if ok := svd.Factorize(A, mat.SVDThin); !ok {
		return nil, cError("solveLeastSquares", "singular value decomposition failed to converge")
	}
	s := svd.Values(nil)
	var U, V mat.Dense
	svd.UTo(&U)
	svd.VTo(&V)
	tol := svdRcond * s[0]
	//U^T*b scaled by the inverted singular values
	utb := make([]float64, cols)
	for k := 0; k < cols; k++ {
		if s[k] <= tol {
			continue //negligible direction, contributes nothing
		}
		var acc float64
		for i := 0; i < rows; i++ {
			acc += U.At(i, k) * b[i]
		}
		utb[k] = acc / s[k]
	}
	x := make([]float64, cols)
	for j := 0; j < cols; j++ {
		var acc float64
		for k := 0; k < cols; k++ {
			acc += V.At(j, k) * utb[k]
		}
		x[j] = acc
	}
	return x, nil
}
