/*
 * stats_test.go, part of gordc.
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

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorr(t *testing.T) {
	exp := []float64{8.17, -8.271, -10.489, -9.871, -9.152}
	calc := make([]float64, len(exp))
	//a scaled and shifted copy correlates perfectly: only the aligned
	//fraction differs between simulation and experiment
	for i, v := range exp {
		calc[i] = 0.3*v + 1.2
	}
	c, err := Corr(calc, exp)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c, 1e-12)
	//reversing the sign of the scale flips the correlation
	for i, v := range exp {
		calc[i] = -0.3 * v
	}
	c, err = Corr(calc, exp)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, c, 1e-12)
}

func TestQ2(t *testing.T) {
	exp := []float64{8.17, -8.271, -10.489, -9.871, -9.152}
	q2, err := Q2(exp, exp)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, q2, 1e-14)
	q, err := Q(exp, exp)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, q, 1e-14)
	calc := []float64{8.17, -8.271, -10.489, -9.871, 0}
	q2, err = Q2(calc, exp)
	require.NoError(t, err)
	var den float64
	for _, v := range exp {
		den += v * v
	}
	assert.InDelta(t, 9.152*9.152/den, q2, 1e-12)
}

func TestErrors(t *testing.T) {
	_, err := Corr([]float64{1, 2}, []float64{1})
	assert.Error(t, err)
	_, err = Q2(nil, nil)
	assert.Error(t, err)
	_, err = Q2([]float64{1}, []float64{0})
	assert.Error(t, err, "all-zero experimental couplings leave Q2 undefined")
}
