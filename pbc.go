/*
 * pbc.go, part of gordc.
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

	v3 "github.com/rmera/gordc/v3"
)

//Displacer produces the displacement vector between two points,
//possibly taking periodic boundary conditions into account. dst, a and
//b must be 1x3 matrices; the result b-a (or its minimum-image
//equivalent) is put in dst.
type Displacer interface {
	Displacement(dst, a, b *v3.Matrix) error
}

//Free is a Displacer for non-periodic systems. It simply subtracts the
//two positions.
type Free struct{}

func (Free) Displacement(dst, a, b *v3.Matrix) error {
	dst.Sub(b, a)
	return nil
}

//Box is a Displacer for orthorhombic periodic cells. It returns the
//minimum-image displacement between two points.
type Box struct {
	l [3]float64
}

//NewBox builds an orthorhombic Box with the given side lengths, which
//must all be positive.
func NewBox(x, y, z float64) (*Box, error) {
	if x <= 0 || y <= 0 || z <= 0 {
		return nil, cError("NewBox", "box lengths must be positive, got %g %g %g", x, y, z)
	}
	return &Box{l: [3]float64{x, y, z}}, nil
}

//Displacement puts in dst the minimum-image vector from a to b.
func (B *Box) Displacement(dst, a, b *v3.Matrix) error {
	for k := 0; k < 3; k++ {
		d := b.At(0, k) - a.At(0, k)
		d -= B.l[k] * math.Round(d/B.l[k])
		dst.Set(0, k, d)
	}
	return nil
}
