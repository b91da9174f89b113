// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of material point runs: checkpoints of converged states
// and tables of results
package out

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/henrij22/gomuesli/msolid"
	"github.com/henrij22/gomuesli/tensor"
)

// keys of results; strains and stresses follow the symmetric tensor order 00,11,22,12,20,01
var (
	StrainKeys = []string{"e00", "e11", "e22", "e12", "e20", "e01"}
	StressKeys = []string{"s00", "s11", "s22", "s12", "s20", "s01"}
)

// ResultKeys returns all keys accepted by GetRes in table order
func ResultKeys() (keys []string) {
	keys = append(keys, "t")
	keys = append(keys, StrainKeys...)
	keys = append(keys, StressKeys...)
	return append(keys, "W")
}

// GetRes returns a series of results of a driver run
//  key -- "t", "W", one of StrainKeys or one of StressKeys
func GetRes(drv *msolid.Driver, key string) (res []float64, err error) {
	if drv == nil {
		return nil, chk.Err("driver is not available")
	}
	switch key {
	case "t":
		return append([]float64{}, drv.Times...), nil
	case "W":
		return append([]float64{}, drv.W...), nil
	}
	if i := keyIndex(StrainKeys, key); i >= 0 {
		return component(drv.Eps, i), nil
	}
	if i := keyIndex(StressKeys, key); i >= 0 {
		return component(drv.Sig, i), nil
	}
	return nil, chk.Err("cannot get results with key %q. options are %q", key, ResultKeys())
}

// Filename returns the path of an output file
//  Example: dirout/key.cpt
func Filename(dirout, key, ext string) string {
	return filepath.Join(dirout, io.Sf("%s%s", key, ext))
}

func keyIndex(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}

func component(ts []tensor.SymTensor, i int) []float64 {
	res := make([]float64, len(ts))
	for j, t := range ts {
		res[j] = t[i]
	}
	return res
}
