/*
 * parallel.go, part of gordc.
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
	"sync"

	"gonum.org/v1/gonum/floats"
)

//Parallel is the capability an Engine needs from a set of workers that
//split an evaluation among themselves: its own rank, the worker count,
//and a collective element-wise sum over equally-sized buffers. The
//engine never talks to a concrete communication layer, so a trivial
//single-worker implementation can always be substituted.
type Parallel interface {
	//Workers returns the total number of workers in the evaluation.
	Workers() int
	//Worker returns the 0-based rank of this worker.
	Worker() int
	//AllReduceSum replaces buf, on every worker, with the element-wise
	//sum of the buffers given by all workers. Every worker must call it
	//the same number of times, with buffers of the same length, in the
	//same order.
	AllReduceSum(buf []float64) error
}

//Serial is the single-worker Parallel context. Reductions are no-ops.
type Serial struct{}

func (Serial) Workers() int                 { return 1 }
func (Serial) Worker() int                  { return 0 }
func (Serial) AllReduceSum([]float64) error { return nil }

//Team coordinates a fixed set of workers running in goroutines of the
//same process. It provides one TeamWorker context per rank, whose
//reductions meet at a channel barrier served by a dedicated goroutine.
type Team struct {
	n     int
	in    chan teamContrib
	abort chan struct{}
	once  sync.Once
	err   error
}

type teamContrib struct {
	buf  []float64
	back chan []float64
}

//NewTeam builds a Team of n workers and starts its reduction goroutine.
//Call Close when done with the team.
func NewTeam(n int) (*Team, error) {
	if n < 1 {
		return nil, cError("NewTeam", "a team needs at least 1 worker, got %d", n)
	}
	t := &Team{
		n:     n,
		in:    make(chan teamContrib, n),
		abort: make(chan struct{}),
	}
	go t.reduce()
	return t, nil
}

//reduce serves one reduction round after another: it collects n
//buffers, sums them, and hands the sum back to each contributor.
func (t *Team) reduce() {
	for {
		var acc []float64
		backs := make([]chan []float64, 0, t.n)
		for i := 0; i < t.n; i++ {
			select {
			case c := <-t.in:
				if acc == nil {
					acc = make([]float64, len(c.buf))
				}
				if len(c.buf) != len(acc) {
					t.Abort(cError("Team.reduce", "mismatched buffer lengths in reduction: %d vs %d", len(c.buf), len(acc)))
					return
				}
				floats.Add(acc, c.buf)
				backs = append(backs, c.back)
			case <-t.abort:
				return
			}
		}
		for _, b := range backs {
			b <- acc
		}
	}
}

//Abort makes every pending and future reduction on the team return err,
//and stops the reduction goroutine. Only the first call has any effect.
//It is used when one worker fails before reaching the barrier, so the
//others don't wait for it forever.
func (t *Team) Abort(err error) {
	t.once.Do(func() {
		t.err = err
		close(t.abort)
	})
}

//Close shuts the team down. Any worker still blocked on a reduction is
//released.
func (t *Team) Close() {
	t.Abort(nil)
}

//Member returns the Parallel context for the given rank.
func (t *Team) Member(rank int) *TeamWorker {
	if rank < 0 || rank >= t.n {
		panic("rank out of range for this team")
	}
	return &TeamWorker{t: t, rank: rank}
}

//TeamWorker is the per-rank view of a Team. It implements Parallel.
type TeamWorker struct {
	t    *Team
	rank int
}

func (w *TeamWorker) Workers() int { return w.t.n }

func (w *TeamWorker) Worker() int { return w.rank }

//AllReduceSum meets the team barrier and replaces buf with the
//element-wise sum over all ranks.
func (w *TeamWorker) AllReduceSum(buf []float64) error {
	back := make(chan []float64, 1)
	select {
	case w.t.in <- teamContrib{buf: buf, back: back}:
	case <-w.t.abort:
		return w.abortErr()
	}
	select {
	case sum := <-back:
		copy(buf, sum)
		return nil
	case <-w.t.abort:
		return w.abortErr()
	}
}

func (w *TeamWorker) abortErr() error {
	if w.t.err != nil {
		return errDecorate(w.t.err, "AllReduceSum")
	}
	return cError("AllReduceSum", "reduction aborted")
}
