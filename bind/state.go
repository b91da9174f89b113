// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"github.com/henrij22/gomuesli/msolid"
	"github.com/henrij22/gomuesli/tensor"
)

// ArrayOfIsTensors collects symmetric tensors given by the host
type ArrayOfIsTensors = tensor.Array[tensor.SymTensor]

// ArrayOfITensors collects general tensors given by the host
type ArrayOfITensors = tensor.Array[tensor.Tensor3x3]

// NewArrayOfIsTensors returns an empty array of symmetric tensors
func NewArrayOfIsTensors() *ArrayOfIsTensors { return tensor.NewSymArray() }

// NewArrayOfITensors returns an empty array of general tensors
func NewArrayOfITensors() *ArrayOfITensors { return tensor.NewTensorArray() }

// MaterialState exposes a copy of a material point state through buffers
type MaterialState struct {
	s *msolid.State
}

// NewMaterialState returns an empty state
func NewMaterialState() *MaterialState {
	return &MaterialState{s: msolid.NewState(0, 0, 0)}
}

func wrapState(s *msolid.State) *MaterialState {
	if s == nil {
		return NewMaterialState()
	}
	return &MaterialState{s: s}
}

// GetTime returns the time of the state
func (o *MaterialState) GetTime() float64 { return o.s.Time }

// GetDouble returns the scalar internal variable
func (o *MaterialState) GetDouble() float64 { return o.s.Double }

// GetVectorSize returns the number of vectors
func (o *MaterialState) GetVectorSize() int { return len(o.s.Vectors) }

// GetStensorSize returns the number of symmetric tensors
func (o *MaterialState) GetStensorSize() int { return len(o.s.Stensors) }

// GetTensorSize returns the number of general tensors
func (o *MaterialState) GetTensorSize() int { return len(o.s.Tensors) }

// GetVector returns the i-th vector as a 3 buffer
func (o *MaterialState) GetVector(i int) ([]float64, error) {
	v, err := o.s.Vector(i)
	if err != nil {
		return nil, err
	}
	return tensor.EncodeVector3(v), nil
}

// GetStensorInto writes the i-th symmetric tensor into a 9 buffer
func (o *MaterialState) GetStensorInto(i int, out []float64) error {
	s, err := o.s.Stensor(i)
	if err != nil {
		return err
	}
	return tensor.EncodeSymTensorInto(s, out)
}

// GetTensorInto writes the i-th general tensor into a 9 buffer
func (o *MaterialState) GetTensorInto(i int, out []float64) error {
	t, err := o.s.Tensor(i)
	if err != nil {
		return err
	}
	return tensor.EncodeTensor3x3Into(t, out)
}

// State returns a copy of the wrapped state
func (o *MaterialState) State() *msolid.State { return o.s.GetCopy() }
