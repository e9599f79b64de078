/*
 * bond.go, part of gordc.
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

//Bond is an ordered pair of atom indices for which a dipolar coupling
//is computed, together with its resolved per-bond parameters. Bonds are
//built by New and not modified afterwards.
type Bond struct {
	Index int //position in the declaration order, also the output order
	A     int //index of the first atom in the coordinate matrix
	B     int //index of the second atom
	Gyro  float64
	Scale float64
	//Coupling is the experimental value for this bond. Only meaningful
	//in fit mode.
	Coupling float64
}

//perBond resolves a numbered parameter group to one value per bond.
//A single given value is broadcast to all n bonds; exactly n values are
//used as-is; anything else is a configuration error naming the group.
//If no value is given, def is broadcast when mandatory is false, and an
//error is returned when it is true.
func perBond(group string, n int, vals []float64, def float64, mandatory bool) ([]float64, error) {
	ret := make([]float64, n)
	switch len(vals) {
	case 0:
		if mandatory {
			return nil, cError("perBond", "no %s values given, want 1 or %d", group, n)
		}
		for i := range ret {
			ret[i] = def
		}
	case 1:
		for i := range ret {
			ret[i] = vals[0]
		}
	case n:
		copy(ret, vals)
	default:
		return nil, cError("perBond", "found wrong number of %s values: got %d, want 1 or %d", group, len(vals), n)
	}
	return ret, nil
}
