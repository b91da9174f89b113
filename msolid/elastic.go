// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"fmt"
	goio "io"

	"github.com/henrij22/gomuesli/inp"
	"github.com/henrij22/gomuesli/tensor"
)

// ElasticIsotropic implements a linear elastic isotropic model for small strains
type ElasticIsotropic struct {

	// parameters
	name string  // name of material
	E    float64 // Young's modulus
	Nu   float64 // Poisson's coefficient
	Rho  float64 // density

	// derived
	l float64 // λ: Lamé's first parameter
	G float64 // μ: shear modulus
	K float64 // bulk modulus
}

// add model to factory
func init() {
	allocators["ElasticIsotropic"] = func() Material { return new(ElasticIsotropic) }
}

// Init initialises model
func (o *ElasticIsotropic) Init(name string, props *inp.Properties) (err error) {
	o.name, o.Rho = name, 1.0
	for _, p := range props.Params() {
		switch p.N {
		case "young", "E":
			o.E = p.V
		case "poisson", "nu":
			o.Nu = p.V
		case "density", "rho":
			o.Rho = p.V
		}
	}
	if err = CheckEnu(o.E, o.Nu); err != nil {
		return
	}
	o.l = Calc_l_from_Enu(o.E, o.Nu)
	o.G = Calc_G_from_Enu(o.E, o.Nu)
	o.K = Calc_K_from_Enu(o.E, o.Nu)
	return
}

// Name returns the name of material
func (o *ElasticIsotropic) Name() string { return o.name }

// Kind returns "ElasticIsotropic"
func (o *ElasticIsotropic) Kind() string { return "ElasticIsotropic" }

// Check checks parameters
func (o *ElasticIsotropic) Check() bool {
	return CheckEnu(o.E, o.Nu) == nil && o.Rho > 0
}

// Print prints parameters
func (o *ElasticIsotropic) Print(w goio.Writer) {
	fmt.Fprintf(w, "Small strain, elastic, isotropic material: %s\n", o.name)
	fmt.Fprintf(w, "  Young modulus:  E   = %g\n", o.E)
	fmt.Fprintf(w, "  Poisson ratio:  nu  = %g\n", o.Nu)
	fmt.Fprintf(w, "  Lame constants: lam = %g, mu = %g\n", o.l, o.G)
	fmt.Fprintf(w, "  Bulk modulus:   K   = %g\n", o.K)
	fmt.Fprintf(w, "  Density:        rho = %g\n", o.Rho)
}

// GetProperty returns a scalar property
func (o *ElasticIsotropic) GetProperty(p inp.PropertyName) float64 {
	switch p {
	case inp.PrYoung:
		return o.E
	case inp.PrPoisson, inp.PrNu:
		return o.Nu
	case inp.PrLambda:
		return o.l
	case inp.PrMu:
		return o.G
	case inp.PrBulk:
		return o.K
	}
	return 0
}

// Density returns ρ
func (o *ElasticIsotropic) Density() float64 { return o.Rho }

// NewPoint allocates a material point at the undeformed state
func (o *ElasticIsotropic) NewPoint() Point {
	return &ElasticIsotropicMP{
		mat:       o,
		current:   NewState(0, 1, 0),
		converged: NewState(0, 1, 0),
	}
}

// ElasticIsotropicMP implements the material point of ElasticIsotropic
//  Stensors[0] holds ε
type ElasticIsotropicMP struct {
	mat       *ElasticIsotropic
	current   *State
	converged *State
}

// UpdateCurrentState sets the current strain
func (o *ElasticIsotropicMP) UpdateCurrentState(t float64, ε tensor.SymTensor) error {
	o.current.Time = t
	o.current.Stensors[0] = ε
	return nil
}

// SetConvergedState sets both the converged and current strains
func (o *ElasticIsotropicMP) SetConvergedState(t float64, ε tensor.SymTensor) error {
	o.converged.Time = t
	o.converged.Stensors[0] = ε
	o.current.Set(o.converged)
	return nil
}

// CommitCurrentState commits the current state
func (o *ElasticIsotropicMP) CommitCurrentState() { o.converged.Set(o.current) }

// ResetCurrentState restores the converged state
func (o *ElasticIsotropicMP) ResetCurrentState() { o.current.Set(o.converged) }

// ConvergedState returns a copy of the converged state
func (o *ElasticIsotropicMP) ConvergedState() *State { return o.converged.GetCopy() }

// CurrentState returns a copy of the current state
func (o *ElasticIsotropicMP) CurrentState() *State { return o.current.GetCopy() }

// Stress returns σ = λ tr(ε) I + 2 μ ε
func (o *ElasticIsotropicMP) Stress() tensor.SymTensor {
	ε := o.current.Stensors[0]
	return ε.Scale(2.0*o.mat.G).Add(o.mat.l*ε.Trace(), tensor.SymIdentity())
}

// DeviatoricStress returns dev(σ)
func (o *ElasticIsotropicMP) DeviatoricStress() tensor.SymTensor { return o.Stress().Dev() }

// Pressure returns tr(σ)/3
func (o *ElasticIsotropicMP) Pressure() float64 { return o.Stress().Trace() / 3.0 }

// TangentTensor computes C
func (o *ElasticIsotropicMP) TangentTensor(C *tensor.Tensor4) { IsotropicTangent(C, o.mat.l, o.mat.G) }

// TangentMatrix returns the 6x6 reduced C
func (o *ElasticIsotropicMP) TangentMatrix() [][]float64 {
	var C tensor.Tensor4
	o.TangentTensor(&C)
	return tensor.TangentMatrix(&C)
}

// DissipationTangent sets D = 0
func (o *ElasticIsotropicMP) DissipationTangent(D *tensor.Tensor4) { *D = tensor.Tensor4{} }

// ContractWithTangent returns T(a,b) = C(a,p,b,q) v1(p) v2(q)
func (o *ElasticIsotropicMP) ContractWithTangent(v1, v2 tensor.Vector3) tensor.Tensor3x3 {
	var C tensor.Tensor4
	o.TangentTensor(&C)
	return C.Contract(v1, v2)
}

// ContractWithDeviatoricTangent contracts the deviatoric part of C
func (o *ElasticIsotropicMP) ContractWithDeviatoricTangent(v1, v2 tensor.Vector3) tensor.Tensor3x3 {
	var C tensor.Tensor4
	DeviatoricTangent(&C, o.mat.G)
	return C.Contract(v1, v2)
}

// StoredEnergy returns W = λ/2 tr(ε)² + μ ε:ε
func (o *ElasticIsotropicMP) StoredEnergy() float64 {
	ε := o.current.Stensors[0]
	tr := ε.Trace()
	return 0.5*o.mat.l*tr*tr + o.mat.G*ε.Ddot(ε)
}

// DeviatoricEnergy returns μ e:e
func (o *ElasticIsotropicMP) DeviatoricEnergy() float64 {
	e := o.current.Stensors[0].Dev()
	return o.mat.G * e.Ddot(e)
}

// VolumetricEnergy returns K/2 tr(ε)²
func (o *ElasticIsotropicMP) VolumetricEnergy() float64 {
	tr := o.current.Stensors[0].Trace()
	return 0.5 * o.mat.K * tr * tr
}

// EffectiveStoredEnergy equals StoredEnergy
func (o *ElasticIsotropicMP) EffectiveStoredEnergy() float64 { return o.StoredEnergy() }

// KineticPotential returns 0
func (o *ElasticIsotropicMP) KineticPotential() float64 { return 0 }

// EnergyDissipationInStep returns 0
func (o *ElasticIsotropicMP) EnergyDissipationInStep() float64 { return 0 }

// PlasticSlip returns 0
func (o *ElasticIsotropicMP) PlasticSlip() float64 { return 0 }

// VolumetricStiffness returns K
func (o *ElasticIsotropicMP) VolumetricStiffness() float64 { return o.mat.K }

// ShearStiffness returns μ
func (o *ElasticIsotropicMP) ShearStiffness() float64 { return o.mat.G }

// ConvergedPlasticStrain returns 0
func (o *ElasticIsotropicMP) ConvergedPlasticStrain() (εp tensor.SymTensor) { return }

// CurrentPlasticStrain returns 0
func (o *ElasticIsotropicMP) CurrentPlasticStrain() (εp tensor.SymTensor) { return }

// Density returns ρ
func (o *ElasticIsotropicMP) Density() float64 { return o.mat.Rho }
