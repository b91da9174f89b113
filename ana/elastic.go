// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/henrij22/gomuesli/inp"
	"github.com/henrij22/gomuesli/tensor"
)

// Lame returns λ and μ from Young's modulus and Poisson's coefficient
func Lame(E, ν float64) (λ, μ float64) {
	λ = E * ν / ((1.0 + ν) * (1.0 - 2.0*ν))
	μ = E / (2.0 * (1.0 + ν))
	return
}

// Enu returns Young's modulus and Poisson's coefficient from λ and μ
func Enu(λ, μ float64) (E, ν float64) {
	E = μ * (3.0*λ + 2.0*μ) / (λ + μ)
	ν = λ / (2.0 * (λ + μ))
	return
}

// Bulk returns the bulk modulus K = λ + 2μ/3
func Bulk(λ, μ float64) float64 {
	return λ + 2.0*μ/3.0
}

// LinElast implements solutions of homogeneous deformations of a linear elastic isotropic solid
//
//         ε = ε00 e0⊗e0        σ = σ00 e0⊗e0
//        ┌─────────┐ →        ┌─────────┐ →
//        │         │ →      ← │         │ →
//        │         │ →      ← │         │ →
//        └─────────┘ →        └─────────┘ →
//      uniaxial strain      uniaxial stress
type LinElast struct {

	// input
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient

	// derived
	λ float64 // Lamé's first parameter
	μ float64 // shear modulus
	K float64 // bulk modulus
}

// Init initialises this structure
func (o *LinElast) Init(props *inp.Properties) (err error) {

	// default values
	o.E = 1000 // Young modulus
	o.ν = 0.25 // Poisson's ratio

	// parameters
	for _, p := range props.Params() {
		switch p.N {
		case "young", "E":
			o.E = p.V
		case "poisson", "nu":
			o.ν = p.V
		}
	}
	if o.E <= 0 || o.ν <= -1 || o.ν >= 0.5 {
		return chk.Err("E=%g and ν=%g are not admissible", o.E, o.ν)
	}

	// derived
	o.λ, o.μ = Lame(o.E, o.ν)
	o.K = Bulk(o.λ, o.μ)
	return
}

// Moduli returns λ, μ and K
func (o LinElast) Moduli() (λ, μ, K float64) { return o.λ, o.μ, o.K }

// Stress returns σ = λ tr(ε) I + 2 μ ε
func (o LinElast) Stress(ε tensor.SymTensor) tensor.SymTensor {
	return ε.Scale(2.0*o.μ).Add(o.λ*ε.Trace(), tensor.SymIdentity())
}

// Energy returns W = λ/2 tr(ε)² + μ ε:ε
func (o LinElast) Energy(ε tensor.SymTensor) float64 {
	tr := ε.Trace()
	return 0.5*o.λ*tr*tr + o.μ*ε.Ddot(ε)
}

// UniaxialStrain returns the stress of ε = ε00 e0⊗e0
func (o LinElast) UniaxialStrain(ε00 float64) (σ tensor.SymTensor) {
	σ[0] = (o.λ + 2.0*o.μ) * ε00
	σ[1] = o.λ * ε00
	σ[2] = o.λ * ε00
	return
}

// UniaxialStress returns the strain of σ = σ00 e0⊗e0
func (o LinElast) UniaxialStress(σ00 float64) (ε tensor.SymTensor) {
	ε[0] = σ00 / o.E
	ε[1] = -o.ν * σ00 / o.E
	ε[2] = -o.ν * σ00 / o.E
	return
}

// SimpleShear returns σ01 for the engineering shear strain γ = 2 ε01
func (o LinElast) SimpleShear(γ float64) float64 {
	return o.μ * γ
}

// SVKStretch returns the first Piola-Kirchhoff and Cauchy stresses of a Saint Venant-Kirchhoff
// solid under F = diag(λ1, 1, 1)
func (o LinElast) SVKStretch(λ1 float64) (P tensor.Tensor3x3, σ tensor.SymTensor) {
	E00 := 0.5 * (λ1*λ1 - 1.0)
	S00 := (o.λ + 2.0*o.μ) * E00
	S11 := o.λ * E00
	P[0][0] = λ1 * S00
	P[1][1] = S11
	P[2][2] = S11
	σ[0] = λ1 * S00
	σ[1] = S11 / λ1
	σ[2] = S11 / λ1
	return
}
