/*
 * gocoords.go, part of gordc.
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

package v3

import (
	"fmt"
	"math"
	"strings"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//AddVec adds a vector to the matrix A and puts the result on the receiver.
//The vector is added to each vector of A.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	vr, vc := vec.Dims()
	fr, fc := F.Dims()
	if ac != 3 || vc != 3 || vr != 1 || ar != fr || fc != 3 {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)+vec.At(0, j))
		}
	}
}

//SubVec subtracts the vector vec from every vector of the matrix A and
//puts the result on the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	vr, vc := vec.Dims()
	fr, fc := F.Dims()
	if ac != 3 || vc != 3 || vr != 1 || ar != fr || fc != 3 {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)-vec.At(0, j))
		}
	}
}

//Cross puts the cross product of a and b on the receiver. All three
//must be 1x3 matrices.
func (F *Matrix) Cross(a, b *Matrix) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	fr, fc := F.Dims()
	if ac != 3 || bc != 3 || fc != 3 || ar != 1 || br != 1 || fr != 1 {
		panic(ErrNoCrossProduct)
	}
	F.Set(0, 0, a.At(0, 1)*b.At(0, 2)-a.At(0, 2)*b.At(0, 1))
	F.Set(0, 1, a.At(0, 2)*b.At(0, 0)-a.At(0, 0)*b.At(0, 2))
	F.Set(0, 2, a.At(0, 0)*b.At(0, 1)-a.At(0, 1)*b.At(0, 0))
}

//Dot returns the dot product between the receiver and the argument.
//Both must be 1x3 matrices.
func (F *Matrix) Dot(b *Matrix) float64 {
	fr, fc := F.Dims()
	br, bc := b.Dims()
	if fc != 3 || bc != 3 || fr != 1 || br != 1 {
		panic(ErrShape)
	}
	return F.At(0, 0)*b.At(0, 0) + F.At(0, 1)*b.At(0, 1) + F.At(0, 2)*b.At(0, 2)
}

//Norm returns the norm of the matrix. For the moment only the
//Euclidean norm (ord 0, for historical reasons) is implemented.
func (F *Matrix) Norm(ord int) float64 {
	if ord != 0 {
		panic(ErrShape)
	}
	var n float64
	r, c := F.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			n += F.At(i, j) * F.At(i, j)
		}
	}
	return math.Sqrt(n)
}

//Unit puts in the receiver the unit vector pointing in the same
//direction as the vector A (which must be a 1x3 matrix).
func (F *Matrix) Unit(A *Matrix) {
	norm := A.Norm(0)
	if norm <= appzero {
		panic(ErrZeroNorm)
	}
	F.Scale(1.0/norm, A)
}

//String returns a neat string representation of the matrix.
func (F *Matrix) String() string {
	r, c := F.Dims()
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]string, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			row[j] = fmt.Sprintf("%6.2f", F.At(i, j))
		}
		v[i+1] = strings.Join(row, " ")
		if i < r-1 {
			v[i+1] = v[i+1] + "\n"
		}
	}
	return strings.Join(v, "")
}
