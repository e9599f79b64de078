/*
 * direct.go, part of gordc.
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
)

//directCalc computes the coupling, the per-atom gradients and the
//per-bond virial contributions for the bonds owned by this worker, then
//sum-reduces the gradient and virial buffers across the team. Bond i is
//owned by worker i mod W, so each bond is computed exactly once
//whatever W is, and the reduced buffers are the same as in a serial
//run. The couplings themselves are never reduced: each worker's Results
//carries only the ones it owns.
func (E *Engine) directCalc(coords *v3.Matrix, disp Displacer, par Parallel) (*Results, error) {
	stride := par.Workers()
	rank := par.Worker()
	rdc := make([]float64, len(E.bonds))
	grad := v3.Zeros(E.natoms)
	vir := make([]float64, 9*len(E.bonds))
	d := v3.Zeros(1)
	for i := rank; i < len(E.bonds); i += stride {
		b := E.bonds[i]
		if err := disp.Displacement(d, coords.VecView(b.A), coords.VecView(b.B)); err != nil {
			return nil, errDecorate(err, "directCalc")
		}
		x := d.At(0, 0)
		y := d.At(0, 1)
		z := d.At(0, 2)
		x2 := x * x
		y2 := y * y
		z2 := z * z
		r := d.Norm(0)
		if r <= appzero {
			return nil, cError("directCalc", "zero-length vector for bond %d (atoms %d and %d)", i+1, b.A, b.B)
		}
		ind := 1. / r
		id3 := ind * ind * ind
		id7 := id3 * id3 * ind
		id9 := id7 * ind * ind
		max := -Kdipolar * b.Scale * b.Gyro
		dmax := id3 * max
		cosTheta := z * ind
		rdc[i] = 0.5 * dmax * (3.*cosTheta*cosTheta - 1.)
		prod := -max * id7 * (1.5*x2 + 1.5*y2 - 6.*z2)
		gx := prod * x
		gy := prod * y
		gz := -max * id9 * z * (4.5*x2*x2 + 4.5*y2*y2 + 1.5*y2*z2 - 3.*z2*z2 + x2*(9.*y2+1.5*z2))
		grad.Set(b.A, 0, gx)
		grad.Set(b.A, 1, gy)
		grad.Set(b.A, 2, gz)
		grad.Set(b.B, 0, -gx)
		grad.Set(b.B, 1, -gy)
		grad.Set(b.B, 2, -gz)
		//this bond's contribution to the virial: the outer product of
		//the displacement with the gradient on the first atom
		g := [3]float64{gx, gy, gz}
		dd := [3]float64{x, y, z}
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				vir[9*i+3*j+k] += dd[j] * g[k]
			}
		}
	}
	if stride > 1 {
		if err := par.AllReduceSum(grad.Raw()); err != nil {
			return nil, errDecorate(err, "directCalc")
		}
		if err := par.AllReduceSum(vir); err != nil {
			return nil, errDecorate(err, "directCalc")
		}
	}
	virials := make([]*v3.Matrix, len(E.bonds))
	for i := range virials {
		m, err := v3.NewMatrix(vir[9*i : 9*i+9])
		if err != nil {
			return nil, errDecorate(err, "directCalc")
		}
		virials[i] = m
	}
	return &Results{RDC: rdc, Gradients: grad, Virials: virials}, nil
}
