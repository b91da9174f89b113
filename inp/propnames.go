// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// PropertyName identifies a scalar property that a material can report
type PropertyName int

// property names, in host order
const (
	PrAlpha PropertyName = iota
	PrBulk
	PrCharLength
	PrConductivity
	PrCp
	PrCs
	PrCrefl
	PrCreft
	PrDiffusivity
	PrEta
	PrGCritical
	PrGf
	PrHeatSupply
	PrHiso
	PrHkine
	PrIsohard
	PrKinhard
	PrLambda
	PrMassExp
	PrMu
	PrMurefl
	PrMureft
	PrN
	PrNl
	PrNt
	PrNu
	PrPlstressC
	PrPoisson
	PrQ1Gurson
	PrQ2Gurson
	PrRgas
	PrRLemaitre
	PrSLemaitre
	PrRinfHardening
	PrRbHardening
	PrAkinHardening
	PrBkinHardening
	PrSmax
	PrSrref
	PrTaylorQuinney
	PrThermalCap
	PrThermalExp
	PrTref
	PrVexponent
	PrYield
	PrYoung
	PrMu0l
	PrMu0t
	PrMuref
	nPropertyNames
)

var propertyNames = [nPropertyNames]string{
	"PR_ALPHA",
	"PR_BULK",
	"PR_CHAR_LENGTH",
	"PR_CONDUCTIVITY",
	"PR_CP",
	"PR_CS",
	"PR_CREFL",
	"PR_CREFT",
	"PR_DIFFUSIVITY",
	"PR_ETA",
	"PR_G_CRITICAL",
	"PR_GF",
	"PR_HEAT_SUPPLY",
	"PR_HISO",
	"PR_HKINE",
	"PR_ISOHARD",
	"PR_KINHARD",
	"PR_LAMBDA",
	"PR_MASS_EXP",
	"PR_MU",
	"PR_MUREFL",
	"PR_MUREFT",
	"PR_N",
	"PR_NL",
	"PR_NT",
	"PR_NU",
	"PR_PLSTRESS_C",
	"PR_POISSON",
	"PR_Q1_GURSON",
	"PR_Q2_GURSON",
	"PR_Rgas",
	"PR_R_Lemaitre",
	"PR_S_Lemaitre",
	"PR_Rinf_Hardening",
	"PR_Rb_Hardening",
	"PR_akin_Hardening",
	"PR_bkin_Hardening",
	"PR_SMAX",
	"PR_SRREF",
	"PR_TAYLOR_QUINNEY",
	"PR_THERMAL_CAP",
	"PR_THERMAL_EXP",
	"PR_TREF",
	"PR_VEXPONENT",
	"PR_YIELD",
	"PR_YOUNG",
	"PR_MU0L",
	"PR_MU0T",
	"PR_MUREF",
}

// String returns the name seen by the host; e.g. "PR_YOUNG"
func (o PropertyName) String() string {
	if o < 0 || o >= nPropertyNames {
		return "PR_UNKNOWN"
	}
	return propertyNames[o]
}

// Valid tells whether o is one of the known names
func (o PropertyName) Valid() bool {
	return o >= 0 && o < nPropertyNames
}

// AllPropertyNames returns every property name in host order
func AllPropertyNames() []PropertyName {
	res := make([]PropertyName, nPropertyNames)
	for i := range res {
		res[i] = PropertyName(i)
	}
	return res
}

// ParsePropertyName returns the property with the given host name
func ParsePropertyName(name string) (PropertyName, bool) {
	for i, s := range propertyNames {
		if s == name {
			return PropertyName(i), true
		}
	}
	return -1, false
}
