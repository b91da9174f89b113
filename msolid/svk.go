// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"fmt"
	goio "io"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"
	"github.com/henrij22/gomuesli/inp"
	"github.com/henrij22/gomuesli/tensor"
)

// SVK implements the Saint Venant-Kirchhoff hyperelastic model
//  W = λ/2 tr(E)² + μ E:E  with  E = (Fᵀ F - I) / 2
type SVK struct {

	// parameters
	name string  // name of material
	E    float64 // Young's modulus
	Nu   float64 // Poisson's coefficient
	Rho  float64 // density

	// derived
	l float64 // λ
	G float64 // μ
	K float64 // bulk modulus (small strain limit)
}

// add model to factory
func init() {
	allocators["SVK"] = func() Material { return new(SVK) }
}

// Init initialises model
func (o *SVK) Init(name string, props *inp.Properties) (err error) {
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
func (o *SVK) Name() string { return o.name }

// Kind returns "SVK"
func (o *SVK) Kind() string { return "SVK" }

// Check checks parameters
func (o *SVK) Check() bool {
	return CheckEnu(o.E, o.Nu) == nil && o.Rho > 0
}

// Print prints parameters
func (o *SVK) Print(w goio.Writer) {
	fmt.Fprintf(w, "Saint Venant-Kirchhoff material: %s\n", o.name)
	fmt.Fprintf(w, "  Young modulus:  E   = %g\n", o.E)
	fmt.Fprintf(w, "  Poisson ratio:  nu  = %g\n", o.Nu)
	fmt.Fprintf(w, "  Lame constants: lam = %g, mu = %g\n", o.l, o.G)
	fmt.Fprintf(w, "  Density:        rho = %g\n", o.Rho)
}

// GetProperty returns a scalar property
func (o *SVK) GetProperty(p inp.PropertyName) float64 {
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
func (o *SVK) Density() float64 { return o.Rho }

// NewPoint allocates a material point at the undeformed state
func (o *SVK) NewPoint() Point {
	mp := &SVKMP{
		mat:       o,
		current:   NewState(0, 0, 1),
		converged: NewState(0, 0, 1),
	}
	mp.converged.Tensors[0] = tensor.Identity()
	mp.current.Tensors[0] = tensor.Identity()
	return mp
}

// SVKMP implements the material point of SVK
//  Tensors[0] holds F
type SVKMP struct {
	mat       *SVK
	current   *State
	converged *State
	θ         float64 // temperature
}

// UpdateCurrentState sets the current deformation gradient
func (o *SVKMP) UpdateCurrentState(t float64, F tensor.Tensor3x3) error {
	if F.Det() <= 0 {
		return chk.Err("deformation gradient must have positive determinant; det(F)=%g is invalid", F.Det())
	}
	o.current.Time = t
	o.current.Tensors[0] = F
	return nil
}

// SetConvergedState sets both the converged and current deformation gradients
func (o *SVKMP) SetConvergedState(t float64, F tensor.Tensor3x3) error {
	if err := o.UpdateCurrentState(t, F); err != nil {
		return err
	}
	o.converged.Set(o.current)
	return nil
}

// SetRandom sets a random deformation gradient close to the identity and commits it
func (o *SVKMP) SetRandom() {
	δ := make([]float64, tensor.NT)
	rnd.Float64s(δ, -0.1, 0.1)
	F := tensor.Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			F[i][j] += δ[tensor.Index2(i, j)]
		}
	}
	o.current.Tensors[0] = F
	o.converged.Set(o.current)
}

// SetTemperature sets θ
func (o *SVKMP) SetTemperature(θ float64) { o.θ = θ }

// CommitCurrentState commits the current state
func (o *SVKMP) CommitCurrentState() { o.converged.Set(o.current) }

// ResetCurrentState restores the converged state
func (o *SVKMP) ResetCurrentState() { o.current.Set(o.converged) }

// ConvergedState returns a copy of the converged state
func (o *SVKMP) ConvergedState() *State { return o.converged.GetCopy() }

// CurrentState returns a copy of the current state
func (o *SVKMP) CurrentState() *State { return o.current.GetCopy() }

// DeformationGradient returns the current F
func (o *SVKMP) DeformationGradient() tensor.Tensor3x3 { return o.current.Tensors[0] }

// ConvergedDeformationGradient returns the converged F
func (o *SVKMP) ConvergedDeformationGradient() tensor.Tensor3x3 { return o.converged.Tensors[0] }

// GreenLagrange returns E = (Fᵀ F - I) / 2
func (o *SVKMP) GreenLagrange() tensor.SymTensor {
	F := o.current.Tensors[0]
	return F.Transpose().Mul(F).Sym().Add(-1, tensor.SymIdentity()).Scale(0.5)
}

// SecondPiolaKirchhoffStress returns S = λ tr(E) I + 2 μ E
func (o *SVKMP) SecondPiolaKirchhoffStress() tensor.SymTensor {
	E := o.GreenLagrange()
	return E.Scale(2.0*o.mat.G).Add(o.mat.l*E.Trace(), tensor.SymIdentity())
}

// FirstPiolaKirchhoffStress returns P = F S
func (o *SVKMP) FirstPiolaKirchhoffStress() tensor.Tensor3x3 {
	return o.current.Tensors[0].Mul(o.SecondPiolaKirchhoffStress().Full())
}

// KirchhoffStress returns τ = F S Fᵀ
func (o *SVKMP) KirchhoffStress() tensor.SymTensor {
	F := o.current.Tensors[0]
	return F.Mul(o.SecondPiolaKirchhoffStress().Full()).Mul(F.Transpose()).Sym()
}

// CauchyStress returns σ = τ / J
func (o *SVKMP) CauchyStress() tensor.SymTensor {
	return o.KirchhoffStress().Scale(1.0 / o.current.Tensors[0].Det())
}

// EnergyMomentumTensor returns Σ = W I - Fᵀ P
func (o *SVKMP) EnergyMomentumTensor() tensor.Tensor3x3 {
	F := o.current.Tensors[0]
	return tensor.Identity().Scale(o.StoredEnergy()).Add(-1, F.Transpose().Mul(o.FirstPiolaKirchhoffStress()))
}

// ConvectedTangent computes C = dS/dE
func (o *SVKMP) ConvectedTangent(C *tensor.Tensor4) { IsotropicTangent(C, o.mat.l, o.mat.G) }

// SpatialTangent computes c = (1/J) F F F F : C
func (o *SVKMP) SpatialTangent(c *tensor.Tensor4) {
	var C tensor.Tensor4
	o.ConvectedTangent(&C)
	F := o.current.Tensors[0]
	PushForward(c, &C, F, 1.0/F.Det())
}

// MaterialTangent computes A = dP/dF
//  A(i,J,k,L) = δik S(L,J) + F(i,K) C(K,J,M,L) F(k,M)
func (o *SVKMP) MaterialTangent(A *tensor.Tensor4) {
	var C tensor.Tensor4
	o.ConvectedTangent(&C)
	F := o.current.Tensors[0]
	S := o.SecondPiolaKirchhoffStress()
	for i := 0; i < 3; i++ {
		for J := 0; J < 3; J++ {
			for k := 0; k < 3; k++ {
				for L := 0; L < 3; L++ {
					sum := δ(i, k) * S.At(L, J)
					for K := 0; K < 3; K++ {
						for M := 0; M < 3; M++ {
							sum += F[i][K] * C[K][J][M][L] * F[k][M]
						}
					}
					A[i][J][k][L] = sum
				}
			}
		}
	}
}

// ContractWithConvectedTangent returns T(a,b) = C(a,p,b,q) v1(p) v2(q)
func (o *SVKMP) ContractWithConvectedTangent(v1, v2 tensor.Vector3) tensor.Tensor3x3 {
	var C tensor.Tensor4
	o.ConvectedTangent(&C)
	return C.Contract(v1, v2)
}

// ContractWithSpatialTangent returns T(a,b) = c(a,p,b,q) v1(p) v2(q)
func (o *SVKMP) ContractWithSpatialTangent(v1, v2 tensor.Vector3) tensor.Tensor3x3 {
	var c tensor.Tensor4
	o.SpatialTangent(&c)
	return c.Contract(v1, v2)
}

// ContractWithDeviatoricTangent contracts the deviatoric projection of the spatial tangent
func (o *SVKMP) ContractWithDeviatoricTangent(v1, v2 tensor.Vector3) tensor.Tensor3x3 {
	var c, cdev tensor.Tensor4
	o.SpatialTangent(&c)
	DeviatoricProjection(&cdev, &c)
	return cdev.Contract(v1, v2)
}

// ContractWithMixedTangent returns c : 1
func (o *SVKMP) ContractWithMixedTangent() tensor.SymTensor {
	var c tensor.Tensor4
	o.SpatialTangent(&c)
	return c.DdotSym(tensor.SymIdentity()).Sym()
}

// ConvectedTangentTimesSymmetricTensor returns C : M
func (o *SVKMP) ConvectedTangentTimesSymmetricTensor(M tensor.SymTensor) tensor.SymTensor {
	var C tensor.Tensor4
	o.ConvectedTangent(&C)
	return C.DdotSym(M).Sym()
}

// StoredEnergy returns W = λ/2 tr(E)² + μ E:E
func (o *SVKMP) StoredEnergy() float64 {
	E := o.GreenLagrange()
	tr := E.Trace()
	return 0.5*o.mat.l*tr*tr + o.mat.G*E.Ddot(E)
}

// EffectiveStoredEnergy equals StoredEnergy
func (o *SVKMP) EffectiveStoredEnergy() float64 { return o.StoredEnergy() }

// KineticPotential returns 0
func (o *SVKMP) KineticPotential() float64 { return 0 }

// EnergyDissipationInStep returns 0
func (o *SVKMP) EnergyDissipationInStep() float64 { return 0 }

// DissipatedEnergyDF returns 0
func (o *SVKMP) DissipatedEnergyDF() (r tensor.Tensor3x3) { return }

// DissipatedEnergyDTheta returns 0
func (o *SVKMP) DissipatedEnergyDTheta() float64 { return 0 }

// PlasticSlip returns 0
func (o *SVKMP) PlasticSlip() float64 { return 0 }

// VolumetricStiffness returns the bulk modulus of the small strain limit
func (o *SVKMP) VolumetricStiffness() float64 { return o.mat.K }

// WaveVelocity returns sqrt((λ + 2μ) / ρ)
func (o *SVKMP) WaveVelocity() float64 { return math.Sqrt((o.mat.l + 2.0*o.mat.G) / o.mat.Rho) }

// GetDamage returns 0
func (o *SVKMP) GetDamage() float64 { return 0 }

// IsFullyDamaged returns false
func (o *SVKMP) IsFullyDamaged() bool { return false }

// Density returns ρ
func (o *SVKMP) Density() float64 { return o.mat.Rho }
