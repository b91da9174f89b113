// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"github.com/cpmech/gosl/chk"
	"github.com/henrij22/gomuesli/msolid"
	"github.com/henrij22/gomuesli/tensor"
)

// FiniteStrainMP wraps a finite strain material point. Deformation gradients and stresses are
// 9 buffers (row-major) and fourth order tensors are 81 buffers (outer-major)
type FiniteStrainMP struct {
	kind string
	pt   msolid.Large
}

// NewFiniteStrainMP creates a material point of a finite strain model
func NewFiniteStrainMP(mat msolid.Material) (o *FiniteStrainMP, err error) {
	if mat == nil {
		return nil, chk.Err("material is not available")
	}
	pt, ok := mat.NewPoint().(msolid.Large)
	if !ok {
		return nil, chk.Err("%q is not a finite strain model", mat.Kind())
	}
	return &FiniteStrainMP{kind: mat.Kind(), pt: pt}, nil
}

// Point returns the wrapped material point
func (o *FiniteStrainMP) Point() msolid.Large { return o.pt }

// bookkeeping /////////////////////////////////////////////////////////////////////////////////////

// UpdateCurrentState updates the state for a new deformation gradient
func (o *FiniteStrainMP) UpdateCurrentState(t float64, F []float64) error {
	f, err := tensor.DecodeTensor3x3(F)
	if err != nil {
		return err
	}
	return o.pt.UpdateCurrentState(t, f)
}

// SetConvergedState sets the converged state of hyperelastic points
func (o *FiniteStrainMP) SetConvergedState(t float64, F []float64) error {
	f, err := tensor.DecodeTensor3x3(F)
	if err != nil {
		return err
	}
	return o.pt.SetConvergedState(t, f)
}

// SetConvergedPlasticState sets the converged state of elastoplastic points
//  iso -- isotropic hardening; kine -- kinematic hardening (3 buffer); be -- elastic left Cauchy-Green tensor
func (o *FiniteStrainMP) SetConvergedPlasticState(t float64, F []float64, iso float64, kine, be []float64) error {
	p, ok := o.pt.(msolid.FinitePlasticStateSetter)
	if !ok {
		return chk.Err("material point of %q cannot be set to a plastic state", o.kind)
	}
	f, err := tensor.DecodeTensor3x3(F)
	if err != nil {
		return err
	}
	k, err := tensor.DecodeVector3(kine)
	if err != nil {
		return err
	}
	b, err := tensor.DecodeSymTensor(be)
	if err != nil {
		return err
	}
	return p.SetConvergedPlasticState(t, f, iso, k, b)
}

// SetRandom sets the point to a random admissible state
func (o *FiniteStrainMP) SetRandom() error {
	r, ok := o.pt.(msolid.Randomizer)
	if !ok {
		return chk.Err("material point of %q cannot be set to a random state", o.kind)
	}
	r.SetRandom()
	return nil
}

// SetTemperature sets the temperature
func (o *FiniteStrainMP) SetTemperature(θ float64) { o.pt.SetTemperature(θ) }

// CommitCurrentState sets converged state := current state
func (o *FiniteStrainMP) CommitCurrentState() { o.pt.CommitCurrentState() }

// ResetCurrentState sets current state := converged state
func (o *FiniteStrainMP) ResetCurrentState() { o.pt.ResetCurrentState() }

// GetConvergedState returns a copy of the converged state
func (o *FiniteStrainMP) GetConvergedState() *MaterialState { return wrapState(o.pt.ConvergedState()) }

// GetCurrentState returns a copy of the current state
func (o *FiniteStrainMP) GetCurrentState() *MaterialState { return wrapState(o.pt.CurrentState()) }

// DeformationGradient returns the current F
func (o *FiniteStrainMP) DeformationGradient() []float64 {
	return tensor.EncodeTensor3x3(o.pt.DeformationGradient())
}

// ConvergedDeformationGradient returns the converged F
func (o *FiniteStrainMP) ConvergedDeformationGradient() []float64 {
	return tensor.EncodeTensor3x3(o.pt.ConvergedDeformationGradient())
}

// stresses ////////////////////////////////////////////////////////////////////////////////////////

// CauchyStressInto writes σ into out
func (o *FiniteStrainMP) CauchyStressInto(out []float64) error {
	return tensor.EncodeSymTensorInto(o.pt.CauchyStress(), out)
}

// KirchhoffStressInto writes τ into out
func (o *FiniteStrainMP) KirchhoffStressInto(out []float64) error {
	return tensor.EncodeSymTensorInto(o.pt.KirchhoffStress(), out)
}

// FirstPiolaKirchhoffStressInto writes P into out
func (o *FiniteStrainMP) FirstPiolaKirchhoffStressInto(out []float64) error {
	return tensor.EncodeTensor3x3Into(o.pt.FirstPiolaKirchhoffStress(), out)
}

// FirstPiolaKirchhoffStressNumericalInto writes P = dW/dF computed numerically into out
func (o *FiniteStrainMP) FirstPiolaKirchhoffStressNumericalInto(out []float64) error {
	if err := tensor.AssertSize(out, tensor.NT, tensor.WhatTensor); err != nil {
		return err
	}
	P, err := msolid.NumFirstPiolaKirchhoff(o.pt)
	if err != nil {
		return err
	}
	return tensor.EncodeTensor3x3Into(P, out)
}

// SecondPiolaKirchhoffStressInto writes S into out
func (o *FiniteStrainMP) SecondPiolaKirchhoffStressInto(out []float64) error {
	return tensor.EncodeSymTensorInto(o.pt.SecondPiolaKirchhoffStress(), out)
}

// SecondPiolaKirchhoffStressNumericalInto writes S = F⁻¹ P with P computed numerically into out
func (o *FiniteStrainMP) SecondPiolaKirchhoffStressNumericalInto(out []float64) error {
	if err := tensor.AssertSize(out, tensor.NT, tensor.WhatTensor); err != nil {
		return err
	}
	S, err := msolid.NumSecondPiolaKirchhoff(o.pt)
	if err != nil {
		return err
	}
	return tensor.EncodeSymTensorInto(S, out)
}

// EnergyMomentumTensorInto writes the Eshelby tensor into out
func (o *FiniteStrainMP) EnergyMomentumTensorInto(out []float64) error {
	return tensor.EncodeTensor3x3Into(o.pt.EnergyMomentumTensor(), out)
}

// DissipatedEnergyDFInto writes the derivative of the dissipation w.r.t F into out
func (o *FiniteStrainMP) DissipatedEnergyDFInto(out []float64) error {
	return tensor.EncodeTensor3x3Into(o.pt.DissipatedEnergyDF(), out)
}

// tangents ////////////////////////////////////////////////////////////////////////////////////////

// MaterialTangentInto writes dP/dF into out
func (o *FiniteStrainMP) MaterialTangentInto(out []float64) error {
	var C tensor.Tensor4
	o.pt.MaterialTangent(&C)
	return tensor.EncodeTensor4Into(&C, out)
}

// SpatialTangentInto writes the spatial tangent into out
func (o *FiniteStrainMP) SpatialTangentInto(out []float64) error {
	var C tensor.Tensor4
	o.pt.SpatialTangent(&C)
	return tensor.EncodeTensor4Into(&C, out)
}

// ConvectedTangentInto writes dS/dE into out
func (o *FiniteStrainMP) ConvectedTangentInto(out []float64) error {
	var C tensor.Tensor4
	o.pt.ConvectedTangent(&C)
	return tensor.EncodeTensor4Into(&C, out)
}

// ContractWithConvectedTangentInto writes the contraction with the convected tangent into out
func (o *FiniteStrainMP) ContractWithConvectedTangentInto(v1, v2, out []float64) error {
	a, b, err := decodeVectors(v1, v2)
	if err != nil {
		return err
	}
	return tensor.EncodeTensor3x3Into(o.pt.ContractWithConvectedTangent(a, b), out)
}

// ContractWithSpatialTangentInto writes the contraction with the spatial tangent into out
func (o *FiniteStrainMP) ContractWithSpatialTangentInto(v1, v2, out []float64) error {
	a, b, err := decodeVectors(v1, v2)
	if err != nil {
		return err
	}
	return tensor.EncodeTensor3x3Into(o.pt.ContractWithSpatialTangent(a, b), out)
}

// ContractWithDeviatoricTangentInto writes the contraction with the deviatoric tangent into out
func (o *FiniteStrainMP) ContractWithDeviatoricTangentInto(v1, v2, out []float64) error {
	a, b, err := decodeVectors(v1, v2)
	if err != nil {
		return err
	}
	return tensor.EncodeTensor3x3Into(o.pt.ContractWithDeviatoricTangent(a, b), out)
}

// ContractWithMixedTangentInto writes c : 1 into out
func (o *FiniteStrainMP) ContractWithMixedTangentInto(out []float64) error {
	return tensor.EncodeSymTensorInto(o.pt.ContractWithMixedTangent(), out)
}

// ConvectedTangentTimesSymmetricTensorInto writes C : M into out
func (o *FiniteStrainMP) ConvectedTangentTimesSymmetricTensorInto(M, out []float64) error {
	m, err := tensor.DecodeSymTensor(M)
	if err != nil {
		return err
	}
	return tensor.EncodeSymTensorInto(o.pt.ConvectedTangentTimesSymmetricTensor(m), out)
}

// scalars /////////////////////////////////////////////////////////////////////////////////////////

// StoredEnergy returns the stored energy density
func (o *FiniteStrainMP) StoredEnergy() float64 { return o.pt.StoredEnergy() }

// EffectiveStoredEnergy returns the energy used by incremental formulations
func (o *FiniteStrainMP) EffectiveStoredEnergy() float64 { return o.pt.EffectiveStoredEnergy() }

// KineticPotential returns the kinetic potential
func (o *FiniteStrainMP) KineticPotential() float64 { return o.pt.KineticPotential() }

// EnergyDissipationInStep returns the dissipated energy in the current step
func (o *FiniteStrainMP) EnergyDissipationInStep() float64 { return o.pt.EnergyDissipationInStep() }

// DissipatedEnergyDTheta returns the derivative of the dissipation w.r.t temperature
func (o *FiniteStrainMP) DissipatedEnergyDTheta() float64 { return o.pt.DissipatedEnergyDTheta() }

// VolumetricStiffness returns the bulk stiffness
func (o *FiniteStrainMP) VolumetricStiffness() float64 { return o.pt.VolumetricStiffness() }

// Density returns ρ
func (o *FiniteStrainMP) Density() float64 { return o.pt.Density() }

// PlasticSlip returns the accumulated plastic slip
func (o *FiniteStrainMP) PlasticSlip() float64 { return o.pt.PlasticSlip() }

// WaveVelocity returns the maximum wave velocity
func (o *FiniteStrainMP) WaveVelocity() float64 { return o.pt.WaveVelocity() }

// GetDamage returns the damage variable
func (o *FiniteStrainMP) GetDamage() float64 { return o.pt.GetDamage() }

// IsFullyDamaged tells whether damage reached its limit
func (o *FiniteStrainMP) IsFullyDamaged() bool { return o.pt.IsFullyDamaged() }
