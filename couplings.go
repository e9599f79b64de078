/*
 * couplings.go, part of gordc.
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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//ReadCouplings reads a table of experimental couplings: one per line,
//optionally preceded by label columns (the last whitespace-separated
//field of each line is taken as the value). Blank lines and lines
//starting with # are skipped. Files ending in .gz or .zst are
//decompressed on the fly.
func ReadCouplings(name string) ([]float64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errDecorate(err, "ReadCouplings")
	}
	defer f.Close()
	var r io.Reader = f
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errDecorate(err, "ReadCouplings "+name)
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(name, ".zst"):
		zs, err := zstd.NewReader(f)
		if err != nil {
			return nil, errDecorate(err, "ReadCouplings "+name)
		}
		defer zs.Close()
		r = zs
	}
	return parseCouplings(r, name)
}

func parseCouplings(r io.Reader, name string) ([]float64, error) {
	couplings := make([]float64, 0, 10)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		val, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return nil, cError("parseCouplings", "%s, line %d: %s is not a valid coupling", name, line, fields[len(fields)-1])
		}
		couplings = append(couplings, val)
	}
	if err := scanner.Err(); err != nil {
		return nil, errDecorate(err, "parseCouplings "+name)
	}
	if len(couplings) == 0 {
		return nil, cError("parseCouplings", "no couplings found in %s", name)
	}
	return couplings, nil
}
