// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_matdb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matdb01. read materials")

	mdb, err := ReadMat("data", "materials.mat")
	if err != nil {
		tst.Errorf("ReadMat failed: %v\n", err)
		return
	}
	if io.Verbose {
		io.Pf("%v\n", mdb)
	}
	chk.Strings(tst, "names", mdb.Names(), []string{"steel", "rubber", "polymer", "metal"})

	steel := mdb.Get("steel")
	if steel == nil {
		tst.Errorf("cannot find steel\n")
		return
	}
	chk.String(tst, steel.Model, "ElasticIsotropic")
	props := steel.Properties()
	chk.Array(tst, "young", 1e-17, props.Get("young"), []float64{200000})
	chk.Array(tst, "density", 1e-17, props.Get("density"), []float64{7.85e-3})

	poly := mdb.Get("polymer").Properties()
	chk.Array(tst, "eta", 1e-17, poly.Get("eta"), []float64{1, 2})
	chk.Array(tst, "tau", 1e-17, poly.Get("tau"), []float64{0.1, 0.2})

	metal := mdb.Get("metal").Properties()
	chk.String(tst, metal.GetString("plasticity"), "vonmises")

	if mdb.Get("wood") != nil {
		tst.Errorf("wood should not be found\n")
	}
}

func TestMatDbErrors(t *testing.T) {
	for _, read := range []func() error{
		func() error { _, err := ReadMat("data", "nonexistent.mat"); return err },
		func() error { _, err := ReadPath("data", "nonexistent.pat"); return err },
		func() error { _, err := ReadSim("data/nonexistent.sim", ""); return err },
	} {
		assert.NotPanics(t, func() {
			assert.ErrorContains(t, read(), "nonexistent")
		})
	}

	_, err := ReadMat("data", "uniaxial.pat")
	assert.NoError(t, err) // unknown fields are ignored; the database is empty

	var buf bytes.Buffer
	mdb, err := ReadMat("data", "materials.mat")
	require.NoError(t, err)
	mdb.Get("metal").Print(&buf)
	assert.Contains(t, buf.String(), "metal: Splastic")
	assert.Contains(t, buf.String(), "plasticity")
}

func Test_path01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("path01. read paths")

	pth, err := ReadPath("data", "uniaxial.pat")
	if err != nil {
		tst.Errorf("ReadPath failed: %v\n", err)
		return
	}
	chk.IntAssert(pth.Size(), 3)
	chk.Array(tst, "times", 1e-17, pth.Times, []float64{0, 0.5, 1})
	chk.Array(tst, "ε[2]", 1e-17, pth.Eps[2][:], []float64{0.002, 0, 0, 0, 0, 0})

	pth, err = ReadPath("data", "stretch.pat")
	if err != nil {
		tst.Errorf("ReadPath failed: %v\n", err)
		return
	}
	if !pth.Large {
		tst.Errorf("path should be large\n")
		return
	}
	chk.Array(tst, "F[1] row 0", 1e-17, pth.Fdef[1][0][:], []float64{1.1, 0, 0})
}

func TestPathErrors(t *testing.T) {
	_, err := ReadPath("data", "badsize.pat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 3 values")

	_, err = ReadPath("data", "asymmetric.pat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not symmetric")

	o := &Path{Times: []float64{0, 1, 0.5}, Strains: make([][]float64, 3)}
	assert.Error(t, o.Init())

	o = &Path{Times: []float64{0, 1}, Strains: [][]float64{make([]float64, 9)}}
	assert.Error(t, o.Init())

	o = &Path{}
	assert.Error(t, o.Init())

	_, err = NewUniaxialPath(0, 0.1, false)
	assert.Error(t, err)
}

func TestUniaxialPath(t *testing.T) {
	pth, err := NewUniaxialPath(4, 0.01, false)
	require.NoError(t, err)
	assert.Equal(t, 5, pth.Size())
	assert.InDelta(t, 0.005, pth.Eps[2][0], 1e-17)
	assert.Len(t, pth.Strains[4], 9)

	pth, err = NewUniaxialPath(2, 0.2, true)
	require.NoError(t, err)
	assert.True(t, pth.Large)
	assert.InDelta(t, 1.2, pth.Fdef[2][0][0], 1e-15)
	assert.Equal(t, 1.0, pth.Fdef[2][1][1])
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read simulation")

	sim, err := ReadSim("data/uniaxial.sim", "a")
	if err != nil {
		tst.Errorf("ReadSim failed: %v\n", err)
		return
	}
	chk.String(tst, sim.Key, "uniaxial-a")
	chk.String(tst, sim.EncType, "json")
	chk.String(tst, sim.Data.Compress, "zstd")
	chk.String(tst, sim.DirOut, "/tmp/gomuesli/uniaxial")
	chk.String(tst, sim.Mat.Name, "steel")
	chk.IntAssert(sim.Path.Size(), 3)
	chk.Float64(tst, "TolD", 1e-17, sim.Driver.TolD, 1e-8)
	if !sim.Driver.CheckD {
		tst.Errorf("CheckD should be true\n")
	}

	var buf bytes.Buffer
	err = sim.GetInfo(&buf)
	if err != nil {
		tst.Errorf("GetInfo failed: %v\n", err)
	}
	if io.Verbose {
		io.Pf("%s\n", buf.String())
	}
}
