/*
 * couplings_test.go, part of gordc.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const couplingTable = `#bond  coupling
NH1    8.17
NH2   -8.271
NH3  -10.489
NH4   -9.871
NH5   -9.152
`

var couplingWant = []float64{8.17, -8.271, -10.489, -9.871, -9.152}

func TestReadCouplings(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "nh.dat")
	if err := os.WriteFile(name, []byte(couplingTable), 0644); err != nil {
		Te.Fatal(err)
	}
	got, err := ReadCouplings(name)
	if err != nil {
		Te.Fatal(err)
	}
	if len(got) != len(couplingWant) {
		Te.Fatalf("Read %d couplings, want %d", len(got), len(couplingWant))
	}
	for i, v := range couplingWant {
		if got[i] != v {
			Te.Errorf("Coupling %d: got %v, want %v", i, got[i], v)
		}
	}
}

func TestReadCouplingsGzip(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "nh.dat.gz")
	f, err := os.Create(name)
	if err != nil {
		Te.Fatal(err)
	}
	w := gzip.NewWriter(f)
	if _, err := w.Write([]byte(couplingTable)); err != nil {
		Te.Fatal(err)
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
	if err := f.Close(); err != nil {
		Te.Fatal(err)
	}
	got, err := ReadCouplings(name)
	if err != nil {
		Te.Fatal(err)
	}
	if len(got) != len(couplingWant) {
		Te.Fatalf("Read %d couplings, want %d", len(got), len(couplingWant))
	}
	for i, v := range couplingWant {
		if got[i] != v {
			Te.Errorf("Coupling %d: got %v, want %v", i, got[i], v)
		}
	}
}

func TestReadCouplingsErrors(Te *testing.T) {
	if _, err := ReadCouplings(filepath.Join(Te.TempDir(), "missing.dat")); err == nil {
		Te.Error("A missing file should be an error")
	}
	name := filepath.Join(Te.TempDir(), "bad.dat")
	if err := os.WriteFile(name, []byte("NH1 notanumber\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err := ReadCouplings(name); err == nil {
		Te.Error("A non-numeric coupling should be an error")
	}
	name = filepath.Join(Te.TempDir(), "empty.dat")
	if err := os.WriteFile(name, []byte("#only a comment\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err := ReadCouplings(name); err == nil {
		Te.Error("A file with no couplings should be an error")
	}
}
