// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements the contracts of material models for solids and their material
// points, together with a registry linking model kinds to their implementations
/*
 *            |    Point
 *  ============================================
 *            |
 *    Small   | UpdateCurrentState(t, ε)
 *            | σ, C = dσ/dε
 *            |
 *  --------------------------------------------
 *            |
 *    Large   | UpdateCurrentState(t, F)
 *            | σ, τ, P, S, tangents
 *            |
 */
package msolid

import (
	goio "io"

	"github.com/henrij22/gomuesli/inp"
	"github.com/henrij22/gomuesli/tensor"
)

// Material defines a constitutive model with its parameters
type Material interface {
	Init(name string, props *inp.Properties) error // initialises model
	Name() string                                  // name given at initialisation
	Kind() string                                  // kind of model; e.g. "ElasticIsotropic"
	Check() bool                                   // checks whether the parameters are admissible
	Print(w goio.Writer)                           // prints parameters
	GetProperty(p inp.PropertyName) float64        // returns a scalar property; 0 if unknown
	Density() float64                              // returns ρ
	NewPoint() Point                               // allocates a new material point
}

// Point defines the bookkeeping and energies common to all material points
type Point interface {
	CommitCurrentState()              // converged state := current state
	ResetCurrentState()               // current state := converged state
	ConvergedState() *State           // copy of the converged state
	CurrentState() *State             // copy of the current state
	StoredEnergy() float64            // stored energy density
	EffectiveStoredEnergy() float64   // stored energy density used by incremental formulations
	KineticPotential() float64        // kinetic potential
	EnergyDissipationInStep() float64 // dissipated energy in current step
	PlasticSlip() float64             // accumulated plastic slip
	VolumetricStiffness() float64     // volumetric (bulk) stiffness
	Density() float64                 // density of parent material
}

// Small defines material points for small strain analyses
type Small interface {
	Point
	UpdateCurrentState(t float64, ε tensor.SymTensor) error               // updates state for new strain
	SetConvergedState(t float64, ε tensor.SymTensor) error                // sets converged (and current) state
	Stress() tensor.SymTensor                                             // σ
	DeviatoricStress() tensor.SymTensor                                   // dev(σ)
	Pressure() float64                                                    // p = tr(σ)/3
	TangentTensor(C *tensor.Tensor4)                                      // C = dσ/dε
	TangentMatrix() [][]float64                                           // 6x6 reduced C
	DissipationTangent(D *tensor.Tensor4)                                 // tangent of dissipation
	ContractWithTangent(v1, v2 tensor.Vector3) tensor.Tensor3x3           // T(a,b) = C(a,p,b,q) v1(p) v2(q)
	ContractWithDeviatoricTangent(v1, v2 tensor.Vector3) tensor.Tensor3x3 // same with deviatoric C
	ShearStiffness() float64                                              // G
	DeviatoricEnergy() float64                                            // deviatoric part of stored energy
	VolumetricEnergy() float64                                            // volumetric part of stored energy
	ConvergedPlasticStrain() tensor.SymTensor                             // εp at converged state
	CurrentPlasticStrain() tensor.SymTensor                               // εp at current state
}

// Large defines material points for finite strain analyses
type Large interface {
	Point
	UpdateCurrentState(t float64, F tensor.Tensor3x3) error                   // updates state for new deformation gradient
	SetConvergedState(t float64, F tensor.Tensor3x3) error                    // sets converged (and current) state
	SetTemperature(θ float64)                                                 // sets temperature
	CauchyStress() tensor.SymTensor                                           // σ
	KirchhoffStress() tensor.SymTensor                                        // τ = J σ
	FirstPiolaKirchhoffStress() tensor.Tensor3x3                              // P = τ F⁻ᵀ
	SecondPiolaKirchhoffStress() tensor.SymTensor                             // S = F⁻¹ P
	EnergyMomentumTensor() tensor.Tensor3x3                                   // Eshelby tensor
	MaterialTangent(C *tensor.Tensor4)                                        // C = dP/dF
	SpatialTangent(C *tensor.Tensor4)                                         // push forward of the convected tangent
	ConvectedTangent(C *tensor.Tensor4)                                       // C = dS/dE
	ContractWithConvectedTangent(v1, v2 tensor.Vector3) tensor.Tensor3x3      // T(a,b) = C(a,p,b,q) v1(p) v2(q)
	ContractWithSpatialTangent(v1, v2 tensor.Vector3) tensor.Tensor3x3        // same with spatial c
	ContractWithDeviatoricTangent(v1, v2 tensor.Vector3) tensor.Tensor3x3     // same with deviatoric c
	ContractWithMixedTangent() tensor.SymTensor                               // c : 1
	ConvectedTangentTimesSymmetricTensor(M tensor.SymTensor) tensor.SymTensor // C : M
	DeformationGradient() tensor.Tensor3x3                                    // current F
	ConvergedDeformationGradient() tensor.Tensor3x3                           // converged F
	DissipatedEnergyDF() tensor.Tensor3x3                                     // derivative of dissipation w.r.t F
	DissipatedEnergyDTheta() float64                                          // derivative of dissipation w.r.t temperature
	WaveVelocity() float64                                                    // maximum wave velocity
	GetDamage() float64                                                       // damage variable
	IsFullyDamaged() bool                                                     // whether damage reached its limit
}

// PlasticStateSetter is implemented by small strain elastoplastic points that accept a complete
// converged state; e.g. Splastic
type PlasticStateSetter interface {
	SetConvergedPlasticState(t float64, ε tensor.SymTensor, dg float64, εp tensor.SymTensor, xi float64, Xi tensor.SymTensor) error
}

// ViscousStateSetter is implemented by viscoelastic points
type ViscousStateSetter interface {
	SetConvergedViscousState(t float64, ε tensor.SymTensor, εv []tensor.SymTensor, εdev tensor.SymTensor, θ float64) error
}

// FinitePlasticStateSetter is implemented by finite strain elastoplastic points
type FinitePlasticStateSetter interface {
	SetConvergedPlasticState(t float64, F tensor.Tensor3x3, iso float64, kine tensor.Vector3, be tensor.SymTensor) error
}

// Randomizer is implemented by points that can be set to a random admissible state
type Randomizer interface {
	SetRandom()
}
