// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"fmt"
	goio "io"
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/henrij22/gomuesli/msolid"
)

// WriteTable writes the results of a driver run as aligned text columns
//  Note: the header holds ResultKeys; strains are E = (FᵀF - I)/2 for finite strain runs
func WriteTable(w goio.Writer, drv *msolid.Driver) (err error) {
	keys := ResultKeys()
	cols := make([][]float64, len(keys))
	for i, key := range keys {
		cols[i], err = GetRes(drv, key)
		if err != nil {
			return
		}
	}
	hdr := make([]string, len(keys))
	for i, key := range keys {
		hdr[i] = fmt.Sprintf("%23s", key)
	}
	_, err = fmt.Fprintln(w, strings.Join(hdr, " "))
	if err != nil {
		return
	}
	row := make([]string, len(keys))
	for j := range drv.Times {
		for i := range keys {
			row[i] = fmt.Sprintf("%23.15e", cols[i][j])
		}
		_, err = fmt.Fprintln(w, strings.Join(row, " "))
		if err != nil {
			return
		}
	}
	return
}

// SaveTable writes the results of a driver run to dirout/key.res
func SaveTable(dirout, key string, drv *msolid.Driver, verbose bool) (filename string, err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return "", chk.Err("cannot create output directory:\n%v", err)
	}
	var sb strings.Builder
	err = WriteTable(&sb, drv)
	if err != nil {
		return
	}
	filename = Filename(dirout, key, ".res")
	err = save_file(filename, []byte(sb.String()), verbose)
	if err != nil {
		return "", chk.Err("cannot save table:\n%v", err)
	}
	return
}

// PrintSummary prints the last converged values of a driver run
func PrintSummary(drv *msolid.Driver) {
	n := len(drv.Times)
	if n == 0 {
		io.Pfred("no results\n")
		return
	}
	io.Pfcyan("increments = %d  t = %g  W = %g\n", n, drv.Times[n-1], drv.W[n-1])
	io.Pf("ε or E = %v\n", drv.Eps[n-1])
	io.Pf("σ      = %v\n", drv.Sig[n-1])
	if drv.CheckD {
		io.Pfgreen("max difference between tangents = %.3e\n", drv.MaxDD)
	}
}
