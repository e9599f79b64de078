/*
 * engine.go, part of gordc.
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

package rdc

import (
	"fmt"
	"log"

	v3 "github.com/rmera/gordc/v3"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Engine computes residual dipolar couplings for a fixed set of bonds.
//All configuration is validated when the Engine is built; evaluations
//only allocate per-call buffers and never mutate the Engine, so one
//Engine can be used from several goroutines.
type Engine struct {
	bonds  []*Bond
	natoms int //1 + the largest atom index any bond references
	fit    bool
	serial bool
}

//New builds an Engine for the given atom pairs. Each pair holds the two
//indices, in the coordinate matrix, of the atoms of one bond. The
//gyromagnetic products (mandatory), scaling factors, experimental
//couplings and mode flags are taken from o; if o is nil the defaults
//are used (which will fail, as there is no default gyromagnetic
//product). All configuration problems are reported here, never at
//evaluation time.
func New(pairs [][2]int, o *Options) (*Engine, error) {
	if o == nil {
		o = DefaultOptions()
	}
	ndata := len(pairs)
	if ndata == 0 {
		return nil, cError("New", "no bonds given")
	}
	gyro, err := perBond("GYROM", ndata, o.gyro, 0, true)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	scale, err := perBond("SCALE", ndata, o.scale, 1.0, false)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	coupl := make([]float64, ndata)
	if o.fit {
		if !fitSolverAvailable() {
			return nil, cError("New", "fit mode requested but the least-squares backend is not available")
		}
		if ndata < 5 {
			return nil, cError("New", "fit mode needs at least 5 bonds to determine the order tensor, got %d", ndata)
		}
		if len(o.couplings) != ndata {
			return nil, cError("New", "found wrong number of COUPLING values: got %d, want %d", len(o.couplings), ndata)
		}
		copy(coupl, o.couplings)
	} else if len(o.couplings) > 0 {
		return nil, cError("New", "experimental couplings given but fit mode not requested")
	}
	E := new(Engine)
	E.fit = o.fit
	E.serial = o.serial || o.fit //the tensor fit is a global operation, never split
	E.bonds = make([]*Bond, ndata)
	seen := make(map[int]int, 2*ndata)
	for i, p := range pairs {
		if p[0] < 0 || p[1] < 0 {
			return nil, cError("New", "bond %d has a negative atom index", i+1)
		}
		if p[0] == p[1] {
			return nil, cError("New", "bond %d uses the same atom twice", i+1)
		}
		for _, a := range p {
			if prev, dup := seen[a]; dup {
				return nil, cError("New", "atom %d appears in both bond %d and bond %d", a, prev+1, i+1)
			}
			seen[a] = i
			if a >= E.natoms {
				E.natoms = a + 1
			}
		}
		E.bonds[i] = &Bond{Index: i, A: p[0], B: p[1], Gyro: gyro[i], Scale: scale[i], Coupling: coupl[i]}
	}
	if o.verbose {
		for i, b := range E.bonds {
			log.Printf("The %dth bond dipolar coupling is calculated from atoms %d and %d. Gyromagnetic product: %f. Scaling factor: %f.", i+1, b.A, b.B, b.Gyro, b.Scale)
		}
	}
	return E, nil
}

//NBonds returns the number of bonds of the engine.
func (E *Engine) NBonds() int { return len(E.bonds) }

//Bond returns the ith bond. The returned value must not be modified.
func (E *Engine) Bond(i int) *Bond { return E.bonds[i] }

//Fit returns whether the engine runs in fit (order-tensor) mode.
func (E *Engine) Fit() bool { return E.fit }

//Results holds everything one evaluation produced. All buffers are
//freshly allocated by the evaluation that returns them.
type Results struct {
	//RDC holds one coupling per bond, in declaration order.
	RDC []float64
	//Gradients holds the gradient of the couplings with respect to each
	//atom position, one row per atom. Each row only receives
	//contributions from the single bond its atom belongs to. Nil in fit
	//mode.
	Gradients *v3.Matrix
	//Virials holds each bond's 3x3 contribution to the virial tensor.
	//Nil in fit mode.
	Virials []*v3.Matrix
	//Tensor is the fitted order tensor. Nil in direct mode.
	Tensor *OrderTensor
}

//Value is a named scalar quantity published by an evaluation, with the
//derivative and virial payload a force-application machinery needs to
//restrain it. In fit mode the payload is absent: there is no analytic
//derivative through the global least-squares solve, so fit-mode values
//cannot back a restraint.
type Value struct {
	Name   string
	Value  float64
	DerivA *v3.Matrix //gradient on the first atom of the bond
	DerivB *v3.Matrix //gradient on the second atom
	Virial *v3.Matrix
}

//Values publishes the couplings of res as named quantities, in bond
//declaration order. The derivative views share storage with
//res.Gradients.
func (E *Engine) Values(res *Results) []*Value {
	ret := make([]*Value, len(E.bonds))
	for i, b := range E.bonds {
		v := &Value{Name: fmt.Sprintf("rdc_%d", i), Value: res.RDC[i]}
		if res.Gradients != nil {
			v.DerivA = res.Gradients.VecView(b.A)
			v.DerivB = res.Gradients.VecView(b.B)
			v.Virial = res.Virials[i]
		}
		ret[i] = v
	}
	return ret
}

//Calc evaluates the couplings for the given coordinates (one row per
//atom). disp provides the (possibly periodic) displacement between two
//positions; if nil, plain subtraction is used. par is this worker's
//parallel context; give nil (or Serial{}) outside of a worker team. In
//fit mode par is ignored, as the fit always runs on a single worker.
//When running under a team, each worker calls Calc with its own context
//and only the couplings of the bonds it owns are filled in its Results;
//gradients and virials arrive fully reduced on every worker. Use
//CalcConcurrent to get all of this assembled in one call.
func (E *Engine) Calc(coords *v3.Matrix, disp Displacer, par Parallel) (*Results, error) {
	if coords == nil {
		return nil, cError("Calc", "nil coordinates")
	}
	if coords.NVecs() < E.natoms {
		return nil, cError("Calc", "coordinate matrix has %d atoms but the bonds reference up to atom %d", coords.NVecs(), E.natoms-1)
	}
	if disp == nil {
		disp = Free{}
	}
	if E.fit {
		return E.fitCalc(coords, disp)
	}
	if par == nil || E.serial {
		par = Serial{}
	}
	return E.directCalc(coords, disp, par)
}

//CalcConcurrent evaluates the couplings splitting the bonds among the
//given number of goroutine workers, and assembles the complete Results.
//The numbers produced are identical to a serial evaluation: every bond
//is computed by exactly one worker, and only the gradient and virial
//buffers go through the sum reduction.
func (E *Engine) CalcConcurrent(coords *v3.Matrix, disp Displacer, workers int) (*Results, error) {
	if E.fit || E.serial || workers <= 1 {
		return E.Calc(coords, disp, Serial{})
	}
	team, err := NewTeam(workers)
	if err != nil {
		return nil, errDecorate(err, "CalcConcurrent")
	}
	defer team.Close()
	type unit struct {
		rank int
		res  *Results
		err  error
	}
	ch := make(chan unit, workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			r, err2 := E.Calc(coords, disp, team.Member(w))
			ch <- unit{rank: w, res: r, err: err2}
		}(w)
	}
	partial := make([]*Results, workers)
	var firstErr error
	for i := 0; i < workers; i++ {
		u := <-ch
		if u.err != nil {
			if firstErr == nil {
				firstErr = u.err
			}
			team.Abort(u.err) //don't leave the others waiting at the barrier
			continue
		}
		partial[u.rank] = u.res
	}
	if firstErr != nil {
		return nil, errDecorate(firstErr, "CalcConcurrent")
	}
	//After the reduction the gradient and virial buffers are the same
	//on every rank. The couplings are not reduced: each is taken from
	//the one worker that owns its bond.
	final := partial[0]
	for w := 1; w < workers; w++ {
		for i := w; i < len(E.bonds); i += workers {
			final.RDC[i] = partial[w].RDC[i]
		}
	}
	return final, nil
}
