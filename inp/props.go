// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"

	"github.com/cpmech/gosl/fun/dbf"
)

// NotFound is returned by GetString when no option matches the key
const NotFound = "NotFound"

// Properties holds the configuration of a material as an ordered list of (key, value) entries.
// Keys may repeat; e.g. the relaxation times of a viscoelastic material.
//  Options (non-numeric settings) are stored as entries named "key word" with value 0
type Properties struct {
	prms dbf.Params
}

// NewProperties returns an empty property bag
func NewProperties() *Properties {
	return new(Properties)
}

// Set appends an entry; existing entries with the same key are kept
func (o *Properties) Set(key string, v float64) {
	o.prms = append(o.prms, &dbf.P{N: key, V: v})
}

// Get returns all values stored under key in insertion order. It returns an empty slice if absent
func (o *Properties) Get(key string) (values []float64) {
	values = make([]float64, 0)
	for _, p := range o.prms {
		if p.N == key {
			values = append(values, p.V)
		}
	}
	return
}

// Value returns the first value stored under key
func (o *Properties) Value(key string) (v float64, found bool) {
	for _, p := range o.prms {
		if p.N == key {
			return p.V, true
		}
	}
	return
}

// SetString stores an option; e.g. SetString("plasticity", "vonmises")
func (o *Properties) SetString(key, word string) {
	o.prms = append(o.prms, &dbf.P{N: key + " " + word})
}

// GetString returns the word of the first option with the given key or NotFound
func (o *Properties) GetString(key string) string {
	prefix := key + " "
	for _, p := range o.prms {
		if strings.HasPrefix(p.N, prefix) {
			return strings.Fields(p.N[len(prefix):] + " " + NotFound)[0]
		}
	}
	return NotFound
}

// HasKeyword tells whether a value or an option exists with the given key
func (o *Properties) HasKeyword(key string) bool {
	prefix := key + " "
	for _, p := range o.prms {
		if p.N == key || strings.HasPrefix(p.N, prefix) {
			return true
		}
	}
	return false
}

// SetEnu sets Young's modulus and Poisson's coefficient
func (o *Properties) SetEnu(E, nu float64) {
	o.Set("young", E)
	o.Set("poisson", nu)
}

// Len returns the number of entries
func (o *Properties) Len() int {
	return len(o.prms)
}

// Params returns the entries in insertion order
func (o *Properties) Params() dbf.Params {
	return o.prms
}

// Copy returns a deep copy of this bag
func (o *Properties) Copy() *Properties {
	other := &Properties{prms: make(dbf.Params, len(o.prms))}
	for i, p := range o.prms {
		q := *p
		other.prms[i] = &q
	}
	return other
}
