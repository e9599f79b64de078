/*
 * gyro.go, part of gordc.
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

//Kdipolar bundles the physical constants of the dipolar interaction,
//mu0*h/(8*pi^3), in the unit system where gyromagnetic ratios are given
//in C.G.S. and distances in nm, so that Dmax = -Kdipolar*gamma1*gamma2/r^3.
const Kdipolar = 0.3356806

//Gyromagnetic ratios (C.G.S.) for common nuclei, and the products for
//the bond types most often measured. The products are what the Gyro
//option of the engine takes.
const (
	GyroH1  = 26.7513
	GyroC13 = 6.7261
	GyroN15 = -2.7116

	GyroNH = -72.5388
	GyroCH = 179.9319
	GyroCN = -18.2385
	GyroCC = 45.2404
)
