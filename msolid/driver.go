// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/henrij22/gomuesli/inp"
	"github.com/henrij22/gomuesli/tensor"
)

// Driver runs a material point along a loading path
type Driver struct {

	// input
	CheckD bool    // check consistent tangent numerically
	TolD   float64 // tolerance for the numerical check
	VerD   bool    // show messages during the check

	// internal
	mdl Material // model
	pt  Point    // material point

	// results
	Times []float64          // times
	Res   []*State           // converged states
	Eps   []tensor.SymTensor // ε (small) or E = (Fᵀ F - I)/2 (finite)
	Sig   []tensor.SymTensor // σ (Cauchy)
	W     []float64          // stored energy
	MaxDD float64            // maximum difference between analytical and numerical tangents
}

// Init initialises driver
func (o *Driver) Init(mdl Material) (err error) {
	if mdl == nil {
		return chk.Err("driver needs a model")
	}
	o.mdl = mdl
	if o.TolD == 0 {
		o.TolD = 1e-8
	}
	return
}

// Point returns the material point of the last run
func (o *Driver) Point() Point { return o.pt }

// Run runs simulation
func (o *Driver) Run(pth *inp.Path) (err error) {

	// check
	if o.mdl == nil {
		return chk.Err("driver must be initialised first")
	}
	if pth == nil || pth.Size() == 0 {
		return chk.Err("driver needs a non-empty path")
	}

	// allocate results
	o.pt = o.mdl.NewPoint()
	n := pth.Size()
	o.Times = make([]float64, 0, n)
	o.Res = make([]*State, 0, n)
	o.Eps = make([]tensor.SymTensor, 0, n)
	o.Sig = make([]tensor.SymTensor, 0, n)
	o.W = make([]float64, 0, n)
	o.MaxDD = 0

	// run
	switch pt := o.pt.(type) {
	case Small:
		if pth.Large {
			return chk.Err("small strain model %q cannot follow a finite strain path", o.mdl.Kind())
		}
		for i, t := range pth.Times {
			err = pt.UpdateCurrentState(t, pth.Eps[i])
			if err != nil {
				return chk.Err("update failed at increment %d:\n%v", i, err)
			}
			if o.CheckD {
				err = o.checkSmall(pt, i)
				if err != nil {
					return
				}
			}
			pt.CommitCurrentState()
			o.record(t, pth.Eps[i], pt.Stress(), pt.StoredEnergy())
		}

	case Large:
		if !pth.Large {
			return chk.Err("finite strain model %q cannot follow a small strain path", o.mdl.Kind())
		}
		for i, t := range pth.Times {
			F := pth.Fdef[i]
			err = pt.UpdateCurrentState(t, F)
			if err != nil {
				return chk.Err("update failed at increment %d:\n%v", i, err)
			}
			if o.CheckD {
				err = o.checkLarge(pt, i)
				if err != nil {
					return
				}
			}
			pt.CommitCurrentState()
			E := F.Transpose().Mul(F).Sym().Add(-1, tensor.SymIdentity()).Scale(0.5)
			o.record(t, E, pt.CauchyStress(), pt.StoredEnergy())
		}

	default:
		return chk.Err("material point of %q has no strain capabilities", o.mdl.Kind())
	}
	return
}

func (o *Driver) record(t float64, ε, σ tensor.SymTensor, W float64) {
	o.Times = append(o.Times, t)
	o.Res = append(o.Res, o.pt.ConvergedState())
	o.Eps = append(o.Eps, ε)
	o.Sig = append(o.Sig, σ)
	o.W = append(o.W, W)
}

// checkSmall compares C with dσ/dε computed numerically
func (o *Driver) checkSmall(pt Small, inc int) error {
	Dana := pt.TangentMatrix()
	Dnum, err := NumTangentSmall(pt)
	if err != nil {
		return chk.Err("numerical tangent failed at increment %d:\n%v", inc, err)
	}
	scale := 1.0
	for _, row := range Dana {
		for _, v := range row {
			scale = math.Max(scale, 2.0*math.Abs(v))
		}
	}
	for I := 0; I < tensor.NVoigt; I++ {
		for J := 0; J < tensor.NVoigt; J++ {
			ana := Dana[I][J]
			if J > 2 { // a perturbation of an off-diagonal strain changes both mirrored entries
				ana *= 2.0
			}
			if err = o.compare(io.Sf("D%d%d", I, J), inc, scale, ana, Dnum[I][J]); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkLarge compares A with dP/dF computed numerically
func (o *Driver) checkLarge(pt Large, inc int) error {
	var Aana, Anum tensor.Tensor4
	pt.MaterialTangent(&Aana)
	err := NumMaterialTangent(pt, &Anum)
	if err != nil {
		return chk.Err("numerical tangent failed at increment %d:\n%v", inc, err)
	}
	scale := 1.0
	for _, v := range tensor.EncodeTensor4(&Aana) {
		scale = math.Max(scale, math.Abs(v))
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					if err = o.compare(io.Sf("A%d%d%d%d", i, j, k, l), inc, scale, Aana[i][j][k][l], Anum[i][j][k][l]); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// compare checks the difference between analytical and numerical values relative to the
// largest entry of the tangent
func (o *Driver) compare(key string, inc int, scale, ana, num float64) error {
	dif := math.Abs(ana-num) / scale
	o.MaxDD = math.Max(o.MaxDD, dif)
	if o.VerD {
		io.Pf("%3d %6s: ana = %23.15e  num = %23.15e  dif = %.3e\n", inc, key, ana, num, dif)
	}
	if dif > o.TolD {
		if o.VerD {
			io.Pfred("tangent check failed\n")
		}
		return chk.Err("tangent check failed at increment %d: %s: |ana - num| = %g > %g", inc, key, dif, o.TolD)
	}
	return nil
}
