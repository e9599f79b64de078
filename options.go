/*
 * options.go, part of gordc.
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

//Options collects the configuration of an Engine. The zero value is not
//useful, use DefaultOptions. Each method returns the current value of
//its option and, if given an argument, sets the option to it first.
type Options struct {
	gyro      []float64
	scale     []float64
	couplings []float64
	fit       bool
	serial    bool
	verbose   bool
}

//DefaultOptions returns an Options set with the default options:
//direct mode, parallel allowed, scale 1.0 for every bond.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.scale = []float64{1.0}
	return ret
}

//Gyro returns the gyromagnetic products and sets them if any are given.
//Give a single value to use it for every bond, or one value per bond.
func (o *Options) Gyro(gyro ...float64) []float64 {
	if len(gyro) > 0 {
		o.gyro = gyro
	}
	return o.gyro
}

//Scale returns the scaling factors (which take into account
//concentration and other effects) and sets them if any are given. A
//single value is used for every bond.
func (o *Options) Scale(scale ...float64) []float64 {
	if len(scale) > 0 {
		o.scale = scale
	}
	return o.scale
}

//Couplings returns the experimental couplings and sets them if any are
//given. They are only used in fit mode, where exactly one per bond is
//required.
func (o *Options) Couplings(coupl ...float64) []float64 {
	if len(coupl) > 0 {
		o.couplings = coupl
	}
	return o.couplings
}

//Fit returns whether the engine back-calculates the couplings from an
//SVD-fitted order tensor instead of computing them directly, and sets
//it if a value is given.
func (o *Options) Fit(fit ...bool) bool {
	if len(fit) > 0 {
		o.fit = fit[0]
	}
	return o.fit
}

//Serial returns whether evaluations are forced to run on a single
//worker, and sets it if a value is given. Fit mode is always serial,
//regardless of this option.
func (o *Options) Serial(serial ...bool) bool {
	if len(serial) > 0 {
		o.serial = serial[0]
	}
	return o.serial
}

//Verbose returns whether the engine logs the configured bonds when
//built, and sets it if a value is given.
func (o *Options) Verbose(verbose ...bool) bool {
	if len(verbose) > 0 {
		o.verbose = verbose[0]
	}
	return o.verbose
}
