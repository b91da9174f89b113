// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"github.com/cpmech/gosl/chk"
	"github.com/henrij22/gomuesli/inp"
	"github.com/henrij22/gomuesli/msolid"
	"github.com/henrij22/gomuesli/tensor"
)

// DefaultDensity is used by constructors when rho is zero
const DefaultDensity = 1.0

// number of elastic constants of the anisotropic elastic models
const (
	NAnisotropic    = 21
	NOrthotropic    = 9
	NTransIsotropic = 6
)

// FromProperties returns a model initialised with a property bag
func FromProperties(kind string, props *inp.Properties) (msolid.Material, error) {
	return msolid.New(kind, "", props)
}

// ElasticIsotropic returns a linear elastic isotropic model
func ElasticIsotropic(E, nu, rho float64) (msolid.Material, error) {
	p := inp.NewProperties()
	p.SetEnu(E, nu)
	p.Set("density", density(rho))
	return FromProperties("ElasticIsotropic", p)
}

// ElasticAnisotropic returns a linear elastic model with 21 constants
func ElasticAnisotropic(c []float64, rho float64) (msolid.Material, error) {
	return elasticWithConstants("ElasticAnisotropic", c, NAnisotropic, rho)
}

// ElasticOrthotropic returns a linear elastic orthotropic model with 9 constants
func ElasticOrthotropic(c []float64, rho float64) (msolid.Material, error) {
	return elasticWithConstants("ElasticOrthotropic", c, NOrthotropic, rho)
}

// ElasticTransverselyisotropic returns a linear elastic transversely isotropic model with 6 constants
func ElasticTransverselyisotropic(c []float64, rho float64) (msolid.Material, error) {
	return elasticWithConstants("ElasticTransverselyisotropic", c, NTransIsotropic, rho)
}

// Splastic returns a small strain elastoplastic model
//  ptype -- plasticity type; e.g. "mises" or "tresca"
func Splastic(E, nu, rho, Hiso, Hkine, yield, xalpha float64, ptype string) (msolid.Material, error) {
	p := inp.NewProperties()
	p.SetEnu(E, nu)
	p.Set("density", rho)
	p.Set("isotropic_hardening", Hiso)
	p.Set("kinematic_hardening", Hkine)
	p.Set("yieldstress", yield)
	p.Set("xalpha", xalpha)
	p.SetString("plasticity", ptype)
	return FromProperties("Splastic", p)
}

// Viscoelastic returns a generalised Maxwell model with nvisco branches
func Viscoelastic(E, nu, rho float64, nvisco int, eta, tau []float64) (msolid.Material, error) {
	if nvisco < 0 {
		return nil, chk.Err("number of viscous branches must not be negative; nvisco=%d is invalid", nvisco)
	}
	if err := tensor.AssertVectorSize(eta, nvisco); err != nil {
		return nil, err
	}
	if err := tensor.AssertVectorSize(tau, nvisco); err != nil {
		return nil, err
	}
	p := inp.NewProperties()
	p.SetEnu(E, nu)
	p.Set("density", rho)
	p.Set("nvisco", float64(nvisco))
	for i := 0; i < nvisco; i++ {
		p.Set("eta", eta[i])
		p.Set("tau", tau[i])
	}
	return FromProperties("Viscoelastic", p)
}

// Viscoplastic returns a small strain viscoplastic model
func Viscoplastic(E, nu, rho, Hiso, Hkine, yield float64, ptype string, eta, alpha float64) (msolid.Material, error) {
	p := inp.NewProperties()
	p.SetEnu(E, nu)
	p.Set("density", rho)
	p.Set("isotropic_hardening", Hiso)
	p.Set("kinematic_hardening", Hkine)
	p.Set("yieldstress", yield)
	p.SetString("plasticity", ptype)
	p.Set("viscosity", eta)
	p.Set("alpha", alpha)
	return FromProperties("Viscoplastic", p)
}

// GTN returns a Gurson-Tvergaard-Needleman damage model
func GTN(E, nu, rho, q1, q2, yield float64) (msolid.Material, error) {
	return damage("GTN", E, nu, rho, yield, map[string]float64{"q1": q1, "q2": q2})
}

// Gurson returns a Gurson damage model
func Gurson(E, nu, rho, Rinf, Rb, yield float64) (msolid.Material, error) {
	return damage("Gurson", E, nu, rho, yield, map[string]float64{"rinf": Rinf, "rb": Rb})
}

// Lemaitre returns a Lemaitre damage model
func Lemaitre(E, nu, rho, r, s, yield, Rinf, Rb float64) (msolid.Material, error) {
	return damage("Lemaitre", E, nu, rho, yield, map[string]float64{"r": r, "s": s, "rinf": Rinf, "rb": Rb})
}

// LemKin returns a Lemaitre damage model with kinematic hardening
func LemKin(E, nu, rho, r, s, yield, Rinf, Rb, a, b float64) (msolid.Material, error) {
	return damage("LemKin", E, nu, rho, yield, map[string]float64{"r": r, "s": s, "rinf": Rinf, "rb": Rb, "a": a, "b": b})
}

// NeoHooke returns a compressible neo-Hookean model
func NeoHooke(E, nu, rho float64) (msolid.Material, error) {
	p := inp.NewProperties()
	p.SetEnu(E, nu)
	p.Set("density", density(rho))
	return FromProperties("NeoHooke", p)
}

// SVK returns a Saint Venant-Kirchhoff model
func SVK(E, nu float64) (msolid.Material, error) {
	p := inp.NewProperties()
	p.SetEnu(E, nu)
	return FromProperties("SVK", p)
}

// Mooney returns a Mooney-Rivlin model
func Mooney(alpha0, alpha1, alpha2 float64, incompressible bool) (msolid.Material, error) {
	p := inp.NewProperties()
	p.Set("alpha0", alpha0)
	p.Set("alpha1", alpha1)
	p.Set("alpha2", alpha2)
	p.Set("incompressible", flag(incompressible))
	return FromProperties("Mooney", p)
}

// ArrudaBoyce returns an Arruda-Boyce model
func ArrudaBoyce(C1, lambdam, bulk float64, compressible bool) (msolid.Material, error) {
	p := inp.NewProperties()
	p.Set("c1", C1)
	p.Set("lambdam", lambdam)
	p.Set("bulk", bulk)
	p.Set("compressible", flag(compressible))
	return FromProperties("ArrudaBoyce", p)
}

// Yeoh returns a Yeoh model
func Yeoh(C1, C2, C3, bulk float64, compressible bool) (msolid.Material, error) {
	p := inp.NewProperties()
	p.Set("c1", C1)
	p.Set("c2", C2)
	p.Set("c3", C3)
	p.Set("bulk", bulk)
	p.Set("compressible", flag(compressible))
	return FromProperties("Yeoh", p)
}

// Fplastic returns a finite strain elastoplastic model
func Fplastic(E, nu, Hiso, Hkine, Y0, Yinf, Yexp, soft float64) (msolid.Material, error) {
	p := inp.NewProperties()
	p.SetEnu(E, nu)
	p.Set("isotropich", Hiso)
	p.Set("kinematich", Hkine)
	p.Set("yieldstress", Y0)
	p.Set("yieldinf", Yinf)
	p.Set("hardexp", Yexp)
	p.Set("softening", soft)
	return FromProperties("Fplastic", p)
}

func elasticWithConstants(kind string, c []float64, n int, rho float64) (msolid.Material, error) {
	if err := tensor.AssertVectorSize(c, n); err != nil {
		return nil, err
	}
	p := inp.NewProperties()
	for _, v := range c {
		p.Set("c", v)
	}
	p.Set("density", density(rho))
	return FromProperties(kind, p)
}

func damage(kind string, E, nu, rho, yield float64, extra map[string]float64) (msolid.Material, error) {
	p := inp.NewProperties()
	p.SetEnu(E, nu)
	p.Set("density", rho)
	p.Set("yieldstress", yield)
	info, _ := msolid.FindKind(kind)
	for _, key := range info.Prms {
		if v, ok := extra[key]; ok {
			p.Set(key, v)
		}
	}
	return FromProperties(kind, p)
}

func density(rho float64) float64 {
	if rho == 0 {
		return DefaultDensity
	}
	return rho
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
