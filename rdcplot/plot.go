/*
 * plot.go, part of gordc.
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

/*Package rdcplot plots calculated against experimental residual dipolar
couplings.*/
package rdcplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Experimental RDC"
	p.Y.Label.Text = "Calculated RDC"
	p.Add(plotter.NewGrid())
	return p
}

//Correlation writes a scatter plot of the calculated couplings against
//the experimental ones, with the identity line for reference, to
//plotname.png.
func Correlation(calc, exp []float64, title, plotname string) error {
	if len(calc) == 0 || len(calc) != len(exp) {
		return fmt.Errorf("calculated (%d) and experimental (%d) couplings must have the same, non-zero length", len(calc), len(exp))
	}
	p := basicPlot(title)
	pts := make(plotter.XYs, len(calc))
	min, max := exp[0], exp[0]
	for i := range calc {
		pts[i].X = exp[i]
		pts[i].Y = calc[i]
		for _, v := range []float64{exp[i], calc[i]} {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = color.RGBA{R: 190, B: 40, A: 255}
	ident := plotter.XYs{{X: min, Y: min}, {X: max, Y: max}}
	l, err := plotter.NewLine(ident)
	if err != nil {
		return err
	}
	l.LineStyle.Color = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	p.Add(s, l)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}
