/*
 * doc.go, part of gordc.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package rdc computes Residual Dipolar Couplings (RDCs) between pairs of
atoms from their cartesian coordinates.

The RDC between two atomic nuclei depends on the angle theta between the
inter-nuclear vector and the external magnetic field,

	D = Dmax * 0.5 * (3*cos2(theta)-1)

where Dmax = -mu0*gamma1*gamma2*h/(8*pi^3*r^3) is the maximal value of the
dipolar coupling for two nuclear spins with gyromagnetic ratios gamma, at
distance r. In isotropic media RDCs average to zero because of
orientational averaging; when rotational symmetry is broken, either by an
alignment medium or by a strongly anisotropic paramagnetic
susceptibility, they become measurable.

The package works in two mutually-exclusive modes, chosen when the Engine
is built:

Direct mode computes, for every bond, the coupling together with its
exact analytic gradient with respect to both atomic positions and the
bond's contribution to the virial tensor, so the coupling can be used as
a restraint in a simulation. The per-bond work can be split among several
workers; gradients and virials are then combined with an element-wise
sum reduction and the result does not depend on the number of workers.

Fit mode takes a set of experimental couplings and fits, by
singular-value-decomposition least squares, the 5 independent components
of the symmetric, traceless molecular alignment (order) tensor that best
reproduces them given the current geometry. It then back-calculates each
coupling from the fitted tensor. No gradients are produced in this mode.

The stats and rdcplot subpackages compare and plot calculated versus
experimental couplings.
*/
package rdc
