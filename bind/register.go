// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"github.com/cpmech/gosl/chk"
	"github.com/henrij22/gomuesli/inp"
	"github.com/henrij22/gomuesli/msolid"
)

// root types of models
const (
	TypeMaterial      = "Material"
	TypeMaterialPoint = "MaterialPoint"
)

// methods of all materials
var materialMethods = []string{"check", "print", "getProperty", "createMaterialPoint"}

// methods of small strain material points
var smallMPMethods = []string{
	"contractWithDeviatoricTangent!", "contractWithTangent!", "contractWithMixedTangent!",
	"dissipationTangent!", "plasticSlip", "shearStiffness", "tangentTensor!", "tangentMatrix!",
	"volumetricStiffness",
	"deviatoricEnergy", "energyDissipationInStep", "effectiveStoredEnergy", "kineticPotential",
	"storedEnergy", "volumetricEnergy",
	"pressure", "stress!", "deviatoricStress!",
	"getConvergedPlasticStrain", "getCurrentPlasticStrain", "getConvergedState", "getCurrentState",
	"commitCurrentState", "resetCurrentState", "updateCurrentState",
}

// methods of finite strain material points
var finiteMPMethods = []string{
	"setRandom", "setTemperature",
	"energyDissipationInStep", "dissipatedEnergyDF!", "dissipatedEnergyDTheta", "kineticPotential",
	"effectiveStoredEnergy", "storedEnergy",
	"CauchyStress!", "energyMomentumTensor!", "firstPiolaKirchhoffStress!",
	"firstPiolaKirchhoffStressNumerical!", "KirchhoffStress!", "secondPiolaKirchhoffStress!",
	"secondPiolaKirchhoffStressNumerical!",
	"convectedTangent!", "materialTangent!", "spatialTangent!",
	"contractWithConvectedTangent!", "contractWithSpatialTangent!", "contractWithDeviatoricTangent!",
	"contractWithMixedTangent!", "convectedTangentTimesSymmetricTensor!", "volumetricStiffness",
	"commitCurrentState", "resetCurrentState", "updateCurrentState",
	"convergedDeformationGradient", "deformationGradient", "getConvergedState", "getCurrentState",
	"density", "plasticSlip", "waveVelocity", "getDamage", "isFullyDamaged",
}

// kinds whose points expose setConvergedState; plastic and viscous kinds take an extended state
var convergedStateKinds = map[string]bool{
	"ElasticIsotropic":             true,
	"ElasticAnisotropic":           true,
	"ElasticOrthotropic":           true,
	"ElasticTransverselyisotropic": true,
	"Splastic":                     true,
	"Viscoelastic":                 true,
	"Viscoplastic":                 true,
	"Fplastic":                     true,
}

// Register declares all types, methods and constants exposed to the host
func Register(mod *Module) (err error) {
	if mod == nil {
		return chk.Err("module is not available")
	}
	steps := []func(*Module) error{registerTensors, registerHelpers, registerMaterialState, registerPropertyNames, registerModels}
	for _, step := range steps {
		if err = step(mod); err != nil {
			return chk.Err("cannot register module %q:\n%v", mod.Name, err)
		}
	}
	return
}

// registerTensors declares the tensor types; a symmetric tensor is a general tensor with a
// compact encoding
func registerTensors(mod *Module) (err error) {
	if _, err = mod.AddType("ivector", ""); err != nil {
		return
	}
	if _, err = mod.AddType("itensor", ""); err != nil {
		return
	}
	if _, err = mod.AddType("istensor", "itensor"); err != nil {
		return
	}
	_, err = mod.AddType("itensor4", "")
	return
}

func registerHelpers(mod *Module) (err error) {
	_, err = mod.AddType("MaterialProperties", "", "setProperty!", "getProperty", "setString!", "getString", "hasKeyword")
	if err != nil {
		return
	}
	for _, name := range []string{"ArrayOfIsTensors", "ArrayOfITensors"} {
		if _, err = mod.AddType(name, "", "push!", "clear!", "size"); err != nil {
			return
		}
	}
	return
}

func registerMaterialState(mod *Module) (err error) {
	_, err = mod.AddType("materialState", "", "getTime", "getDouble",
		"getVectorSize", "getVector", "getStensorSize", "getStensor!", "getTensorSize", "getTensor!")
	return
}

func registerPropertyNames(mod *Module) (err error) {
	for _, p := range inp.AllPropertyNames() {
		if err = mod.AddConstant(p.String(), int(p)); err != nil {
			return
		}
	}
	return
}

func registerModels(mod *Module) (err error) {

	// roots and base categories
	if _, err = mod.AddType(TypeMaterial, ""); err != nil {
		return
	}
	if _, err = mod.AddType(TypeMaterialPoint, ""); err != nil {
		return
	}
	bases := []struct{ name, base string }{
		{msolid.BaseSmall, TypeMaterial},
		{msolid.BaseSmallMP, TypeMaterialPoint},
		{msolid.BaseSdamage, msolid.BaseSmall},
		{msolid.BaseSdamageMP, msolid.BaseSmallMP},
		{msolid.BaseFinite, TypeMaterial},
		{msolid.BaseFinv, msolid.BaseFinite},
		{msolid.BaseFiniteMP, TypeMaterialPoint},
		{msolid.BaseFisoMP, msolid.BaseFiniteMP},
	}
	for _, b := range bases {
		if _, err = mod.AddType(b.name, b.base); err != nil {
			return
		}
	}

	// models
	for _, k := range msolid.Kinds {
		if _, err = mod.AddType(k.MaterialType(), k.Base, materialMethods...); err != nil {
			return
		}
		methods := smallMPMethods
		if k.Large {
			methods = finiteMPMethods
		}
		if _, err = mod.AddType(k.PointType(), k.BaseMP, methods...); err != nil {
			return
		}
		if convergedStateKinds[k.Name] {
			if err = mod.AddMethods(k.PointType(), "setConvergedState"); err != nil {
				return
			}
		}
	}
	return
}
