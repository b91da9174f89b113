// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bind implements the boundary between a host runtime and the material library: a
// registry of exposed types and methods, constructors with the host argument contracts, and
// material point wrappers exchanging flat buffers only
package bind

import (
	"fmt"
	goio "io"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/cpmech/gosl/chk"
)

// Type holds an exposed type
type Type struct {
	Name    string   // host name; e.g. "ElasticIsotropicMaterial"
	Base    string   // host name of base type; empty for root types
	ID      uint64   // hash of module and type names
	Methods []string // host method names; a trailing "!" marks methods writing into an output buffer
}

// HasMethod tells whether the type exposes a method
func (o *Type) HasMethod(name string) bool {
	for _, m := range o.Methods {
		if m == name {
			return true
		}
	}
	return false
}

// Constant holds an exposed integer constant
type Constant struct {
	Name  string
	Value int
}

// Module holds the types and constants exposed to the host
type Module struct {
	Name   string
	types  []*Type
	index  map[string]*Type
	consts []Constant
}

// NewModule returns a new empty module
func NewModule(name string) *Module {
	return &Module{Name: name, index: make(map[string]*Type)}
}

// AddType adds a type. The base type must have been added before
func (o *Module) AddType(name, base string, methods ...string) (t *Type, err error) {
	if name == "" {
		return nil, chk.Err("type name must not be empty")
	}
	if _, found := o.index[name]; found {
		return nil, chk.Err("type %q is already registered in module %q", name, o.Name)
	}
	if base != "" {
		if _, found := o.index[base]; !found {
			return nil, chk.Err("base type %q of %q must be registered first", base, name)
		}
	}
	t = &Type{Name: name, Base: base, ID: TypeID(o.Name, name)}
	t.Methods = append(t.Methods, methods...)
	o.types = append(o.types, t)
	o.index[name] = t
	return
}

// AddMethods adds methods to an existing type
func (o *Module) AddMethods(name string, methods ...string) error {
	t, found := o.index[name]
	if !found {
		return chk.Err("cannot add methods to unknown type %q", name)
	}
	for _, m := range methods {
		if !t.HasMethod(m) {
			t.Methods = append(t.Methods, m)
		}
	}
	return nil
}

// AddConstant adds an integer constant
func (o *Module) AddConstant(name string, value int) error {
	for _, c := range o.consts {
		if c.Name == name {
			return chk.Err("constant %q is already registered in module %q", name, o.Name)
		}
	}
	o.consts = append(o.consts, Constant{name, value})
	return nil
}

// Type returns a type by name; nil if not found
func (o *Module) Type(name string) *Type { return o.index[name] }

// Types returns all types in registration order
func (o *Module) Types() []*Type { return append([]*Type{}, o.types...) }

// Constants returns all constants in registration order
func (o *Module) Constants() []Constant { return append([]Constant{}, o.consts...) }

// IsA tells whether a type is, or derives from, a base type
func (o *Module) IsA(name, base string) bool {
	for t := o.index[name]; t != nil; t = o.index[t.Base] {
		if t.Name == base {
			return true
		}
	}
	return false
}

// Derived returns the names of the types deriving directly from base, sorted
func (o *Module) Derived(base string) (names []string) {
	for _, t := range o.types {
		if t.Base == base {
			names = append(names, t.Name)
		}
	}
	sort.Strings(names)
	return
}

// Print prints types and constants
func (o *Module) Print(w goio.Writer) {
	fmt.Fprintf(w, "module %s\n", o.Name)
	for _, t := range o.types {
		if t.Base == "" {
			fmt.Fprintf(w, "  %s [%016x]\n", t.Name, t.ID)
		} else {
			fmt.Fprintf(w, "  %s <: %s [%016x]\n", t.Name, t.Base, t.ID)
		}
		for _, m := range t.Methods {
			fmt.Fprintf(w, "    %s\n", m)
		}
	}
	for _, c := range o.consts {
		fmt.Fprintf(w, "  %s = %d\n", c.Name, c.Value)
	}
}

// TypeID returns the identifier of a type within a module
func TypeID(module, name string) uint64 {
	return xxhash.Sum64String(module + "." + name)
}
