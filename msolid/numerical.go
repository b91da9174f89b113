// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/henrij22/gomuesli/tensor"
	"gonum.org/v1/gonum/diff/fd"
)

// NumStep is the step used by numerical derivatives
const NumStep = 1e-6

var central = &fd.Settings{Formula: fd.Central, Step: NumStep}

// NumTangentSmall computes dσ/dε numerically at the current state of a small strain point.
// The result is given in SymTensor order; i.e. D[I][J] = dσ[I]/dε[J] where an off-diagonal
// ε[J] perturbs both mirrored entries
//  Note: the current state is restored after the computation
func NumTangentSmall(p Small) (D [][]float64, err error) {
	cur := p.CurrentState()
	if len(cur.Stensors) == 0 {
		return nil, chk.Err("state of small strain point has no strain")
	}
	t, ε := cur.Time, cur.Stensors[0]
	D = make([][]float64, tensor.NVoigt)
	for I := 0; I < tensor.NVoigt; I++ {
		D[I] = make([]float64, tensor.NVoigt)
		for J := 0; J < tensor.NVoigt; J++ {
			D[I][J] = fd.Derivative(func(x float64) float64 {
				e := ε
				e[J] = x
				if err == nil {
					err = p.UpdateCurrentState(t, e)
				}
				return p.Stress()[I]
			}, ε[J], central)
		}
	}
	if e := p.UpdateCurrentState(t, ε); err == nil {
		err = e
	}
	return
}

// NumMaterialTangent computes A = dP/dF numerically at the current state of a finite strain point
//  Note: the current state is restored after the computation
func NumMaterialTangent(p Large, A *tensor.Tensor4) (err error) {
	t, F := p.CurrentState().Time, p.DeformationGradient()
	for k := 0; k < 3; k++ {
		for L := 0; L < 3; L++ {
			for i := 0; i < 3; i++ {
				for J := 0; J < 3; J++ {
					A[i][J][k][L] = fd.Derivative(func(x float64) float64 {
						G := F
						G[k][L] = x
						if err == nil {
							err = p.UpdateCurrentState(t, G)
						}
						return p.FirstPiolaKirchhoffStress()[i][J]
					}, F[k][L], central)
				}
			}
		}
	}
	if e := p.UpdateCurrentState(t, F); err == nil {
		err = e
	}
	return
}

// NumFirstPiolaKirchhoff computes P = dW/dF numerically at the current state
//  Note: the current state is restored after the computation
func NumFirstPiolaKirchhoff(p Large) (P tensor.Tensor3x3, err error) {
	t, F := p.CurrentState().Time, p.DeformationGradient()
	for i := 0; i < 3; i++ {
		for J := 0; J < 3; J++ {
			P[i][J] = fd.Derivative(func(x float64) float64 {
				G := F
				G[i][J] = x
				if err == nil {
					err = p.UpdateCurrentState(t, G)
				}
				return p.StoredEnergy()
			}, F[i][J], central)
		}
	}
	if e := p.UpdateCurrentState(t, F); err == nil {
		err = e
	}
	return
}

// NumSecondPiolaKirchhoff computes S = sym(F⁻¹ P) with P computed numerically
func NumSecondPiolaKirchhoff(p Large) (S tensor.SymTensor, err error) {
	P, err := NumFirstPiolaKirchhoff(p)
	if err != nil {
		return
	}
	Fi, err := p.DeformationGradient().Inverse()
	if err != nil {
		return
	}
	return Fi.Mul(P).Sym(), nil
}
