/*
 * fit_test.go, part of gordc.
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
	"math"
	"math/rand"
	"testing"

	v3 "github.com/rmera/gordc/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//designRow gives the 5 coefficients a bond with unit direction mu
//contributes to the tensor fit.
func designRow(mux, muy, muz float64) [5]float64 {
	return [5]float64{mux*mux - muz*muz, muy*muy - muz*muz, 2 * mux * muy, 2 * mux * muz, 2 * muy * muz}
}

//fitSystem builds nbonds bonds with random non-degenerate directions
//and the couplings an exactly-aligned sample with the given tensor
//would show.
func fitSystem(t *testing.T, tensor *OrderTensor, nbonds int, seed int64) (*Engine, *v3.Matrix) {
	rng := rand.New(rand.NewSource(seed))
	pairs := make([][2]int, nbonds)
	coords := make([]float64, 6*nbonds)
	couplings := make([]float64, nbonds)
	s := [5]float64{tensor.Sxx(), tensor.Syy(), tensor.Sxy(), tensor.Sxz(), tensor.Syz()}
	for i := 0; i < nbonds; i++ {
		pairs[i] = [2]int{2 * i, 2*i + 1}
		//random direction, rejecting near-degenerate draws
		var dx, dy, dz, r float64
		for r < 0.1 {
			dx, dy, dz = rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()
			r = math.Sqrt(dx*dx + dy*dy + dz*dz)
		}
		length := 1.0 + 0.1*rng.Float64()
		dx, dy, dz = dx/r*length, dy/r*length, dz/r*length
		for k, v := range []float64{rng.Float64(), rng.Float64(), rng.Float64()} {
			coords[6*i+k] = v
		}
		coords[6*i+3] = coords[6*i] + dx
		coords[6*i+4] = coords[6*i+1] + dy
		coords[6*i+5] = coords[6*i+2] + dz
		dmax := -Kdipolar * GyroNH / (length * length * length)
		row := designRow(dx/length, dy/length, dz/length)
		var bc float64
		for j := 0; j < 5; j++ {
			bc += row[j] * s[j]
		}
		couplings[i] = bc * dmax
	}
	o := DefaultOptions()
	o.Gyro(GyroNH)
	o.Fit(true)
	o.Couplings(couplings...)
	E, err := New(pairs, o)
	require.NoError(t, err)
	c, err := v3.NewMatrix(coords)
	require.NoError(t, err)
	return E, c
}

func TestFitRecoversTensor(t *testing.T) {
	known := NewOrderTensor(8.1e-4, -3.2e-4, 2.5e-4, -1.4e-4, 0.6e-4)
	E, coords := fitSystem(t, known, 8, 1917)
	res, err := E.Calc(coords, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, res.Tensor)
	got := res.Tensor
	assert.InDelta(t, known.Sxx(), got.Sxx(), 1e-9)
	assert.InDelta(t, known.Syy(), got.Syy(), 1e-9)
	assert.InDelta(t, known.Sxy(), got.Sxy(), 1e-9)
	assert.InDelta(t, known.Sxz(), got.Sxz(), 1e-9)
	assert.InDelta(t, known.Syz(), got.Syz(), 1e-9)
	assert.InDelta(t, known.Szz(), got.Szz(), 1e-9)
	//the tensor matrix must be symmetric and traceless by construction
	m := got.Matrix()
	tr := m.At(0, 0) + m.At(1, 1) + m.At(2, 2)
	assert.InDelta(t, 0, tr, 1e-14)
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			assert.Equal(t, m.At(i, j), m.At(j, i))
		}
	}
}

func TestFitBackCalculation(t *testing.T) {
	known := NewOrderTensor(5.0e-4, 1.0e-4, -2.0e-4, 3.0e-4, -1.5e-4)
	E, coords := fitSystem(t, known, 11, 2024)
	res, err := E.Calc(coords, nil, nil)
	require.NoError(t, err)
	//exact synthetic data: the back-calculated couplings must
	//reproduce the experimental ones to numerical precision
	for i := 0; i < E.NBonds(); i++ {
		assert.InDelta(t, E.Bond(i).Coupling, res.RDC[i], 1e-8, "bond %d", i)
	}
}

func TestFitIsForceFree(t *testing.T) {
	known := NewOrderTensor(1e-4, 2e-4, 3e-4, 4e-4, 5e-4)
	E, coords := fitSystem(t, known, 6, 3)
	//a worker team must be ignored: the fit is a global operation
	res, err := E.CalcConcurrent(coords, nil, 4)
	require.NoError(t, err)
	assert.Nil(t, res.Gradients)
	assert.Nil(t, res.Virials)
	vals := E.Values(res)
	for _, v := range vals {
		assert.Nil(t, v.DerivA)
		assert.Nil(t, v.DerivB)
		assert.Nil(t, v.Virial)
	}
}

func TestFitConfigurationErrors(t *testing.T) {
	pairs := [][2]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}}
	o := DefaultOptions()
	o.Gyro(GyroNH)
	o.Fit(true)
	o.Couplings(1, 2, 3, 4)
	_, err := New(pairs, o)
	require.Error(t, err, "4 bonds cannot determine a 5-parameter tensor")
	pairs = append(pairs, [2]int{8, 9})
	_, err = New(pairs, o)
	require.Error(t, err, "5 bonds with 4 couplings should be rejected")
	o.Couplings(1, 2, 3, 4, 5)
	_, err = New(pairs, o)
	require.NoError(t, err)
}

//A rank-deficient geometry (all bonds parallel) must produce a finite
//solution, not a crash or NaN.
func TestFitRankDeficient(t *testing.T) {
	nbonds := 6
	pairs := make([][2]int, nbonds)
	coords := make([]float64, 6*nbonds)
	couplings := make([]float64, nbonds)
	for i := 0; i < nbonds; i++ {
		pairs[i] = [2]int{2 * i, 2*i + 1}
		coords[6*i] = float64(i) //separate origins, same direction
		coords[6*i+3] = float64(i) + 0.6
		coords[6*i+4] = 0.6
		coords[6*i+5] = 0.52
		couplings[i] = 5.0
	}
	o := DefaultOptions()
	o.Gyro(GyroNH)
	o.Fit(true)
	o.Couplings(couplings...)
	E, err := New(pairs, o)
	require.NoError(t, err)
	c, err := v3.NewMatrix(coords)
	require.NoError(t, err)
	res, err := E.Calc(c, nil, nil)
	require.NoError(t, err)
	for i, v := range res.RDC {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "coupling %d is not finite", i)
	}
	for _, v := range []float64{res.Tensor.Sxx(), res.Tensor.Syy(), res.Tensor.Sxy(), res.Tensor.Sxz(), res.Tensor.Syz()} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}
