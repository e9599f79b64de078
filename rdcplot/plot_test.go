/*
 * plot_test.go, part of gordc.
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

package rdcplot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCorrelation(Te *testing.T) {
	exp := []float64{8.17, -8.271, -10.489, -9.871, -9.152}
	calc := []float64{8.3, -8.1, -10.2, -10.0, -9.3}
	name := filepath.Join(Te.TempDir(), "nh_corr")
	if err := Correlation(calc, exp, "N-H couplings", name); err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Errorf("Plot file was not written: %v", err)
	}
	if err := Correlation(calc, exp[:3], "bad", name); err == nil {
		Te.Error("Mismatched lengths should be an error")
	}
}
