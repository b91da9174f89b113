// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"errors"

	"github.com/cpmech/gosl/io"
	"github.com/henrij22/gomuesli/tensor"
)

// ErrOutOfRange is returned when accessing an element past the end of a state
var ErrOutOfRange = errors.New("msolid: index out of range")

// State holds the internal variables of a material point
//  Note: small strain points keep ε in Stensors[0] and finite strain points keep F in Tensors[0]
type State struct {
	Time     float64            // time of state
	Double   float64            // scalar internal variable; e.g. accumulated plastic slip
	Vectors  []tensor.Vector3   // vector internal variables
	Stensors []tensor.SymTensor // symmetric tensor internal variables; e.g. ε, εp
	Tensors  []tensor.Tensor3x3 // general tensor internal variables; e.g. F
}

// NewState allocates a state
//  nvec  -- number of vectors
//  nsten -- number of symmetric tensors
//  nten  -- number of general tensors
func NewState(nvec, nsten, nten int) *State {
	return &State{
		Vectors:  make([]tensor.Vector3, nvec),
		Stensors: make([]tensor.SymTensor, nsten),
		Tensors:  make([]tensor.Tensor3x3, nten),
	}
}

// Set copies states
//  Note: 1) this and other states must have been pre-allocated with the same sizes
//        2) this method does not check for errors
func (o *State) Set(other *State) {
	o.Time = other.Time
	o.Double = other.Double
	copy(o.Vectors, other.Vectors)
	copy(o.Stensors, other.Stensors)
	copy(o.Tensors, other.Tensors)
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Vectors), len(o.Stensors), len(o.Tensors))
	other.Set(o)
	return other
}

// Vector returns the i-th vector
func (o *State) Vector(i int) (v tensor.Vector3, err error) {
	if i < 0 || i >= len(o.Vectors) {
		return v, &IndexError{What: "vector", Index: i, Size: len(o.Vectors)}
	}
	return o.Vectors[i], nil
}

// Stensor returns the i-th symmetric tensor
func (o *State) Stensor(i int) (s tensor.SymTensor, err error) {
	if i < 0 || i >= len(o.Stensors) {
		return s, &IndexError{What: "stensor", Index: i, Size: len(o.Stensors)}
	}
	return o.Stensors[i], nil
}

// Tensor returns the i-th general tensor
func (o *State) Tensor(i int) (t tensor.Tensor3x3, err error) {
	if i < 0 || i >= len(o.Tensors) {
		return t, &IndexError{What: "tensor", Index: i, Size: len(o.Tensors)}
	}
	return o.Tensors[i], nil
}

// IndexError reports an access past the end of a state
type IndexError struct {
	What  string // "vector", "stensor" or "tensor"
	Index int    // requested index
	Size  int    // number of elements
}

// Error implements error
func (o *IndexError) Error() string {
	return io.Sf("index out of range in get %s: index=%d, size=%d", o.What, o.Index, o.Size)
}

// Is makes errors.Is(err, ErrOutOfRange) hold
func (o *IndexError) Is(target error) bool {
	return target == ErrOutOfRange
}
