/*
 * stats.go, part of gordc.
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

/*Package stats compares calculated and experimental residual dipolar
couplings. RDCs report only on the aligned fraction of the molecules, so
the absolute calculated values from a single structure are not directly
comparable to experiment; the correlation between the two sets, or the
quality factor, are the meaningful measures.*/
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

//Corr returns the Pearson correlation between the calculated and the
//experimental couplings.
func Corr(calc, exp []float64) (float64, error) {
	if err := sameLen(calc, exp); err != nil {
		return 0, err
	}
	return stat.Correlation(calc, exp, nil), nil
}

//Q2 returns the squared quality factor,
//Q2 = sum_i (Di-Diexp)^2 / sum_i (Diexp)^2,
//between the calculated and the experimental couplings.
func Q2(calc, exp []float64) (float64, error) {
	if err := sameLen(calc, exp); err != nil {
		return 0, err
	}
	var num, den float64
	for i, v := range calc {
		num += (v - exp[i]) * (v - exp[i])
		den += exp[i] * exp[i]
	}
	if den == 0 {
		return 0, fmt.Errorf("all experimental couplings are zero, Q2 is undefined")
	}
	return num / den, nil
}

//Q returns the quality factor, the square root of Q2.
func Q(calc, exp []float64) (float64, error) {
	q2, err := Q2(calc, exp)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(q2), nil
}

func sameLen(calc, exp []float64) error {
	if len(calc) == 0 || len(calc) != len(exp) {
		return fmt.Errorf("calculated (%d) and experimental (%d) couplings must have the same, non-zero length", len(calc), len(exp))
	}
	return nil
}
