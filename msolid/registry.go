// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"errors"
	"sort"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/henrij22/gomuesli/inp"
)

// ErrNotAvailable is returned when a known kind of model has no linked implementation
var ErrNotAvailable = errors.New("msolid: model is not available")

// base categories of materials and points
const (
	BaseSmall     = "SmallStrainMaterial"
	BaseSdamage   = "SdamageMaterial"
	BaseFinite    = "FiniteStrainMaterial"
	BaseFinv      = "F_invariants"
	BaseSmallMP   = "SmallStrainMP"
	BaseSdamageMP = "SdamageMP"
	BaseFiniteMP  = "FiniteStrainMP"
	BaseFisoMP    = "FisotropicMP"
)

// KindInfo describes one kind of material model
type KindInfo struct {
	Name    string             // kind; e.g. "GTN"
	Host    string             // prefix of host type names; e.g. "GTN_" => "GTN_Material" and "GTN_MP"
	Large   bool               // finite strain model
	Base    string             // base category of the material
	BaseMP  string             // base category of the material point
	Prms    []string           // positional constructor arguments
	Default map[string]float64 // default values of trailing arguments
}

// MaterialType returns the host name of the material type
func (o KindInfo) MaterialType() string { return o.Host + "Material" }

// PointType returns the host name of the material point type
func (o KindInfo) PointType() string { return o.Host + "MP" }

// Kinds holds all kinds of models that the host can instantiate
var Kinds = []KindInfo{

	// small strain
	{"ElasticIsotropic", "ElasticIsotropic", false, BaseSmall, BaseSmallMP, []string{"young", "poisson", "density"}, map[string]float64{"density": 1}},
	{"ElasticAnisotropic", "ElasticAnisotropic", false, BaseSmall, BaseSmallMP, []string{"c", "density"}, map[string]float64{"density": 1}},
	{"ElasticOrthotropic", "ElasticOrthotropic", false, BaseSmall, BaseSmallMP, []string{"c", "density"}, map[string]float64{"density": 1}},
	{"ElasticTransverselyisotropic", "ElasticTransverselyisotropic", false, BaseSmall, BaseSmallMP, []string{"c", "density"}, map[string]float64{"density": 1}},
	{"Splastic", "Splastic", false, BaseSmall, BaseSmallMP, []string{"young", "poisson", "density", "isotropic_hardening", "kinematic_hardening", "yieldstress", "xalpha", "plasticity"}, nil},
	{"Viscoelastic", "Viscoelastic", false, BaseSmall, BaseSmallMP, []string{"young", "poisson", "density", "nvisco", "eta", "tau"}, nil},
	{"Viscoplastic", "Viscoplastic", false, BaseSmall, BaseSmallMP, []string{"young", "poisson", "density", "isotropic_hardening", "kinematic_hardening", "yieldstress", "plasticity", "viscosity", "alpha"}, nil},
	{"GTN", "GTN_", false, BaseSdamage, BaseSdamageMP, []string{"young", "poisson", "density", "q1", "q2", "yieldstress"}, nil},
	{"Gurson", "Gurson_", false, BaseSdamage, BaseSdamageMP, []string{"young", "poisson", "density", "rinf", "rb", "yieldstress"}, nil},
	{"Lemaitre", "Lemaitre_", false, BaseSdamage, BaseSdamageMP, []string{"young", "poisson", "density", "r", "s", "yieldstress", "rinf", "rb"}, nil},
	{"LemKin", "LemKin_", false, BaseSdamage, BaseSdamageMP, []string{"young", "poisson", "density", "r", "s", "yieldstress", "rinf", "rb", "a", "b"}, nil},

	// finite strain
	{"NeoHooke", "NeoHooke", true, BaseFinv, BaseFisoMP, []string{"young", "poisson", "density"}, map[string]float64{"density": 1}},
	{"SVK", "SVK", true, BaseFinite, BaseFiniteMP, []string{"young", "poisson"}, nil},
	{"Mooney", "Mooney", true, BaseFinv, BaseFisoMP, []string{"alpha0", "alpha1", "alpha2", "incompressible"}, map[string]float64{"incompressible": 1}},
	{"ArrudaBoyce", "ArrudaBoyce", true, BaseFinv, BaseFisoMP, []string{"c1", "lambdam", "bulk", "compressible"}, nil},
	{"Yeoh", "Yeoh", true, BaseFinv, BaseFisoMP, []string{"c1", "c2", "c3", "bulk", "compressible"}, nil},
	{"Fplastic", "Fplastic", true, BaseFinite, BaseFiniteMP, []string{"young", "poisson", "isotropich", "kinematich", "yieldstress", "yieldinf", "hardexp", "softening"}, nil},
}

// FindKind returns information about a kind of model
func FindKind(kind string) (info KindInfo, found bool) {
	for _, k := range Kinds {
		if k.Name == kind {
			return k, true
		}
	}
	return
}

// allocators holds all linked solid models; kind => allocator
var (
	allocators   = map[string]func() Material{}
	allocatorsMu sync.RWMutex
)

// Register links an implementation to a known kind of model, replacing any previous one
func Register(kind string, allocator func() Material) error {
	if _, found := FindKind(kind); !found {
		return chk.Err("cannot register unknown kind of model %q", kind)
	}
	if allocator == nil {
		return chk.Err("allocator of %q must not be nil", kind)
	}
	allocatorsMu.Lock()
	defer allocatorsMu.Unlock()
	allocators[kind] = allocator
	return nil
}

// Unregister unlinks the implementation of a kind of model
func Unregister(kind string) {
	allocatorsMu.Lock()
	defer allocatorsMu.Unlock()
	delete(allocators, kind)
}

// Available returns the kinds with linked implementations, sorted by name
func Available() (kinds []string) {
	allocatorsMu.RLock()
	defer allocatorsMu.RUnlock()
	for kind := range allocators {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return
}

// New allocates and initialises a new model
func New(kind, name string, props *inp.Properties) (mdl Material, err error) {
	info, found := FindKind(kind)
	if !found {
		return nil, chk.Err("model %q is not available in 'msolid' database", kind)
	}
	allocatorsMu.RLock()
	allocator, ok := allocators[info.Name]
	allocatorsMu.RUnlock()
	if !ok {
		return nil, &NotAvailable{Kind: kind}
	}
	if props == nil {
		props = inp.NewProperties()
	}
	if name == "" {
		name = kind
	}
	mdl = allocator()
	err = mdl.Init(name, props)
	if err != nil {
		return nil, chk.Err("cannot initialise %q model:\n%v", kind, err)
	}
	return
}

// GetModel returns a new model initialised with the parameters of a material in the database
func GetModel(mdb *inp.MatDb, matname string) (mdl Material, err error) {
	if mdb == nil {
		return nil, chk.Err("materials database is not available")
	}
	matdata := mdb.Get(matname)
	if matdata == nil {
		return nil, chk.Err("materials database failed on getting %q (solid) material", matname)
	}
	return New(matdata.Model, matdata.Name, matdata.Properties())
}

// NotAvailable reports a known kind of model without linked implementation
type NotAvailable struct {
	Kind string
}

// Error implements error
func (o *NotAvailable) Error() string {
	return "model " + o.Kind + " is not linked; register an implementation with msolid.Register"
}

// Is makes errors.Is(err, ErrNotAvailable) hold
func (o *NotAvailable) Is(target error) bool {
	return target == ErrNotAvailable
}
