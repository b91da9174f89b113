// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_table01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table01")

	_, drv := run(tst, false)
	var sb strings.Builder
	err := WriteTable(&sb, drv)
	if err != nil {
		tst.Errorf("WriteTable failed: %v\n", err)
		return
	}
	io.Pf("%s", sb.String())

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	chk.IntAssert(len(lines), len(drv.Times)+1)
	chk.Strings(tst, "header", strings.Fields(lines[0]), ResultKeys())
	chk.IntAssert(len(strings.Fields(lines[1])), len(ResultKeys()))

	e00, err := GetRes(drv, "e00")
	if err != nil {
		tst.Errorf("GetRes failed: %v\n", err)
		return
	}
	chk.Float64(tst, "e00 at end", 1e-17, e00[len(e00)-1], 0.01)
	_, err = GetRes(drv, "sx")
	if err == nil {
		tst.Errorf("GetRes should have failed\n")
	}
	if chk.Verbose {
		PrintSummary(drv)
	}
}
