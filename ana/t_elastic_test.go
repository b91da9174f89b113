// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/henrij22/gomuesli/inp"
	"github.com/henrij22/gomuesli/msolid"
	"github.com/henrij22/gomuesli/tensor"
)

func Test_lame01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lame01")

	λ, μ := Lame(100, 0.25)
	io.Pforan("λ = %v  μ = %v\n", λ, μ)
	chk.Float64(tst, "λ", 1e-13, λ, 40)
	chk.Float64(tst, "μ", 1e-13, μ, 40)
	chk.Float64(tst, "K", 1e-13, Bulk(λ, μ), 40+80.0/3.0)

	E, ν := Enu(λ, μ)
	chk.Float64(tst, "E", 1e-13, E, 100)
	chk.Float64(tst, "ν", 1e-15, ν, 0.25)

	// against the collaborator helpers
	λ, μ = Lame(210000, 0.3)
	chk.Float64(tst, "λ", 1e-9, λ, msolid.Calc_l_from_Enu(210000, 0.3))
	chk.Float64(tst, "μ", 1e-9, μ, msolid.Calc_G_from_Enu(210000, 0.3))
}

func Test_linelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast01. uniaxial strain and stress")

	props := inp.NewProperties()
	props.SetEnu(100, 0.25)
	var sol LinElast
	err := sol.Init(props)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// uniaxial strain
	σ := sol.UniaxialStrain(0.01)
	chk.Array(tst, "σ", 1e-14, σ[:], []float64{1.2, 0.4, 0.4, 0, 0, 0})
	ε := tensor.NewSymTensor(0.01, 0, 0, 0, 0, 0)
	s := sol.Stress(ε)
	chk.Array(tst, "σ general", 1e-14, s[:], σ[:])

	// uniaxial stress
	ε = sol.UniaxialStress(1)
	chk.Array(tst, "ε", 1e-15, ε[:], []float64{0.01, -0.0025, -0.0025, 0, 0, 0})
	s = sol.Stress(ε)
	chk.Array(tst, "σ back", 1e-14, s[:], []float64{1, 0, 0, 0, 0, 0})
	chk.Float64(tst, "W", 1e-15, sol.Energy(ε), 0.5*1*0.01)

	// shear
	ε = tensor.NewSymTensor(0, 0, 0, 0, 0, 0.005)
	s = sol.Stress(ε)
	chk.Float64(tst, "σ01", 1e-15, s[5], sol.SimpleShear(0.01))

	// invalid
	props.Set("poisson", 0.5)
	err = sol.Init(props)
	if err == nil {
		tst.Errorf("Init should have failed\n")
	}
}

func Test_linelast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast02. driver against analytical solutions")

	props := inp.NewProperties()
	props.SetEnu(200, 0.3)
	var sol LinElast
	err := sol.Init(props)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	for _, large := range []bool{false, true} {
		kind := "ElasticIsotropic"
		if large {
			kind = "SVK"
		}
		mdl, err := msolid.New(kind, "", props)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		pth, err := inp.NewUniaxialPath(4, 0.02, large)
		if err != nil {
			tst.Errorf("path failed: %v\n", err)
			return
		}
		var drv msolid.Driver
		err = drv.Init(mdl)
		if err == nil {
			err = drv.Run(pth)
		}
		if err != nil {
			tst.Errorf("driver failed: %v\n", err)
			return
		}
		for i, t := range drv.Times {
			var σ tensor.SymTensor
			if large {
				_, σ = sol.SVKStretch(1 + 0.02*t)
			} else {
				σ = sol.UniaxialStrain(0.02 * t)
			}
			io.Pf("%s: t = %g  σ00 = %g\n", kind, t, drv.Sig[i][0])
			chk.Array(tst, io.Sf("%s σ @ %d", kind, i), 1e-12, drv.Sig[i][:], σ[:])
		}
	}
}
