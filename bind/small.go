// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"github.com/cpmech/gosl/chk"
	"github.com/henrij22/gomuesli/msolid"
	"github.com/henrij22/gomuesli/tensor"
)

// SmallStrainMP wraps a small strain material point. Strains and stresses are 9 buffers
// (row-major), vectors are 3 buffers and fourth order tensors are 81 buffers (outer-major)
type SmallStrainMP struct {
	kind string
	pt   msolid.Small
}

// NewSmallStrainMP creates a material point of a small strain model
func NewSmallStrainMP(mat msolid.Material) (o *SmallStrainMP, err error) {
	if mat == nil {
		return nil, chk.Err("material is not available")
	}
	pt, ok := mat.NewPoint().(msolid.Small)
	if !ok {
		return nil, chk.Err("%q is not a small strain model", mat.Kind())
	}
	return &SmallStrainMP{kind: mat.Kind(), pt: pt}, nil
}

// Point returns the wrapped material point
func (o *SmallStrainMP) Point() msolid.Small { return o.pt }

// bookkeeping /////////////////////////////////////////////////////////////////////////////////////

// UpdateCurrentState updates the state for a new strain
func (o *SmallStrainMP) UpdateCurrentState(t float64, strain []float64) error {
	ε, err := tensor.DecodeSymTensor(strain)
	if err != nil {
		return err
	}
	return o.pt.UpdateCurrentState(t, ε)
}

// SetConvergedState sets the converged state of elastic points
func (o *SmallStrainMP) SetConvergedState(t float64, strain []float64) error {
	ε, err := tensor.DecodeSymTensor(strain)
	if err != nil {
		return err
	}
	return o.pt.SetConvergedState(t, ε)
}

// SetConvergedPlasticState sets the converged state of elastoplastic points
//  dg -- plastic multiplier; epn -- plastic strain; xin -- isotropic hardening; Xin -- back stress
func (o *SmallStrainMP) SetConvergedPlasticState(t float64, strain []float64, dg float64, epn []float64, xin float64, Xin []float64) error {
	p, ok := o.pt.(msolid.PlasticStateSetter)
	if !ok {
		return o.unsupported("a plastic state")
	}
	ts, err := decodeSyms(strain, epn, Xin)
	if err != nil {
		return err
	}
	return p.SetConvergedPlasticState(t, ts[0], dg, ts[1], xin, ts[2])
}

// SetConvergedViscousState sets the converged state of viscoelastic points
//  epsv -- viscous strains, one per branch; epsdev -- deviatoric strain; theta -- volumetric strain
func (o *SmallStrainMP) SetConvergedViscousState(t float64, strain []float64, epsv *ArrayOfIsTensors, epsdev []float64, theta float64) error {
	p, ok := o.pt.(msolid.ViscousStateSetter)
	if !ok {
		return o.unsupported("a viscous state")
	}
	if epsv == nil {
		epsv = NewArrayOfIsTensors()
	}
	ts, err := decodeSyms(strain, epsdev)
	if err != nil {
		return err
	}
	return p.SetConvergedViscousState(t, ts[0], epsv.Items(), ts[1], theta)
}

// CommitCurrentState sets converged state := current state
func (o *SmallStrainMP) CommitCurrentState() { o.pt.CommitCurrentState() }

// ResetCurrentState sets current state := converged state
func (o *SmallStrainMP) ResetCurrentState() { o.pt.ResetCurrentState() }

// GetConvergedState returns a copy of the converged state
func (o *SmallStrainMP) GetConvergedState() *MaterialState { return wrapState(o.pt.ConvergedState()) }

// GetCurrentState returns a copy of the current state
func (o *SmallStrainMP) GetCurrentState() *MaterialState { return wrapState(o.pt.CurrentState()) }

// GetConvergedPlasticStrain returns εp at the converged state
func (o *SmallStrainMP) GetConvergedPlasticStrain() []float64 {
	return tensor.EncodeSymTensor(o.pt.ConvergedPlasticStrain())
}

// GetCurrentPlasticStrain returns εp at the current state
func (o *SmallStrainMP) GetCurrentPlasticStrain() []float64 {
	return tensor.EncodeSymTensor(o.pt.CurrentPlasticStrain())
}

// stresses ////////////////////////////////////////////////////////////////////////////////////////

// Stress returns σ
func (o *SmallStrainMP) Stress() []float64 { return tensor.EncodeSymTensor(o.pt.Stress()) }

// StressInto writes σ into out
func (o *SmallStrainMP) StressInto(out []float64) error {
	return tensor.EncodeSymTensorInto(o.pt.Stress(), out)
}

// DeviatoricStress returns dev(σ)
func (o *SmallStrainMP) DeviatoricStress() []float64 {
	return tensor.EncodeSymTensor(o.pt.DeviatoricStress())
}

// DeviatoricStressInto writes dev(σ) into out
func (o *SmallStrainMP) DeviatoricStressInto(out []float64) error {
	return tensor.EncodeSymTensorInto(o.pt.DeviatoricStress(), out)
}

// Pressure returns tr(σ)/3
func (o *SmallStrainMP) Pressure() float64 { return o.pt.Pressure() }

// tangents ////////////////////////////////////////////////////////////////////////////////////////

// TangentTensor returns C = dσ/dε
func (o *SmallStrainMP) TangentTensor() []float64 {
	var C tensor.Tensor4
	o.pt.TangentTensor(&C)
	return tensor.EncodeTensor4(&C)
}

// TangentTensorInto writes C = dσ/dε into out
func (o *SmallStrainMP) TangentTensorInto(out []float64) error {
	var C tensor.Tensor4
	o.pt.TangentTensor(&C)
	return tensor.EncodeTensor4Into(&C, out)
}

// TangentMatrix returns the 6x6 reduced tangent as a 36 buffer (row-major)
func (o *SmallStrainMP) TangentMatrix() ([]float64, error) {
	return tensor.EncodeMatrix6(o.pt.TangentMatrix())
}

// TangentMatrixInto writes the 6x6 reduced tangent into a 36 buffer
func (o *SmallStrainMP) TangentMatrixInto(out []float64) error {
	if err := tensor.AssertSize(out, tensor.NMatrix6, tensor.WhatMatrix6); err != nil {
		return err
	}
	buf, err := o.TangentMatrix()
	if err != nil {
		return err
	}
	copy(out, buf)
	return nil
}

// DissipationTangentInto writes the tangent of dissipation into out
func (o *SmallStrainMP) DissipationTangentInto(out []float64) error {
	var D tensor.Tensor4
	o.pt.DissipationTangent(&D)
	return tensor.EncodeTensor4Into(&D, out)
}

// ContractWithTangentInto writes T(a,b) = C(a,p,b,q) v1(p) v2(q) into out
func (o *SmallStrainMP) ContractWithTangentInto(v1, v2, out []float64) error {
	a, b, err := decodeVectors(v1, v2)
	if err != nil {
		return err
	}
	return tensor.EncodeTensor3x3Into(o.pt.ContractWithTangent(a, b), out)
}

// ContractWithDeviatoricTangentInto writes the contraction with the deviatoric tangent into out
func (o *SmallStrainMP) ContractWithDeviatoricTangentInto(v1, v2, out []float64) error {
	a, b, err := decodeVectors(v1, v2)
	if err != nil {
		return err
	}
	return tensor.EncodeTensor3x3Into(o.pt.ContractWithDeviatoricTangent(a, b), out)
}

// ContractWithMixedTangentInto writes C : 1 into out
func (o *SmallStrainMP) ContractWithMixedTangentInto(out []float64) error {
	var C tensor.Tensor4
	o.pt.TangentTensor(&C)
	return tensor.EncodeSymTensorInto(C.DdotSym(tensor.SymIdentity()).Sym(), out)
}

// scalars /////////////////////////////////////////////////////////////////////////////////////////

// ShearStiffness returns G
func (o *SmallStrainMP) ShearStiffness() float64 { return o.pt.ShearStiffness() }

// VolumetricStiffness returns K
func (o *SmallStrainMP) VolumetricStiffness() float64 { return o.pt.VolumetricStiffness() }

// PlasticSlip returns the accumulated plastic slip
func (o *SmallStrainMP) PlasticSlip() float64 { return o.pt.PlasticSlip() }

// StoredEnergy returns the stored energy density
func (o *SmallStrainMP) StoredEnergy() float64 { return o.pt.StoredEnergy() }

// DeviatoricEnergy returns the deviatoric part of the stored energy
func (o *SmallStrainMP) DeviatoricEnergy() float64 { return o.pt.DeviatoricEnergy() }

// VolumetricEnergy returns the volumetric part of the stored energy
func (o *SmallStrainMP) VolumetricEnergy() float64 { return o.pt.VolumetricEnergy() }

// EffectiveStoredEnergy returns the energy used by incremental formulations
func (o *SmallStrainMP) EffectiveStoredEnergy() float64 { return o.pt.EffectiveStoredEnergy() }

// KineticPotential returns the kinetic potential
func (o *SmallStrainMP) KineticPotential() float64 { return o.pt.KineticPotential() }

// EnergyDissipationInStep returns the dissipated energy in the current step
func (o *SmallStrainMP) EnergyDissipationInStep() float64 { return o.pt.EnergyDissipationInStep() }

func (o *SmallStrainMP) unsupported(what string) error {
	return chk.Err("material point of %q cannot be set to %s", o.kind, what)
}

// decodeSyms decodes symmetric tensors given as 9 buffers
func decodeSyms(bufs ...[]float64) (ts []tensor.SymTensor, err error) {
	ts = make([]tensor.SymTensor, len(bufs))
	for i, buf := range bufs {
		ts[i], err = tensor.DecodeSymTensor(buf)
		if err != nil {
			return nil, err
		}
	}
	return
}

func decodeVectors(v1, v2 []float64) (a, b tensor.Vector3, err error) {
	if a, err = tensor.DecodeVector3(v1); err != nil {
		return
	}
	b, err = tensor.DecodeVector3(v2)
	return
}
