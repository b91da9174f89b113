// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

// Array collects tensors decoded from host buffers; e.g. the viscous strains of a viscoelastic
// material point given one by one by the host
type Array[T any] struct {
	decode func([]float64) (T, error)
	items  []T
}

// NewSymArray returns an array of symmetric tensors
func NewSymArray() *Array[SymTensor] {
	return &Array[SymTensor]{decode: DecodeSymTensor}
}

// NewTensorArray returns an array of general tensors
func NewTensorArray() *Array[Tensor3x3] {
	return &Array[Tensor3x3]{decode: DecodeTensor3x3}
}

// Push decodes buf and appends the result. Nothing is appended on error
func (o *Array[T]) Push(buf []float64) error {
	t, err := o.decode(buf)
	if err != nil {
		return err
	}
	o.items = append(o.items, t)
	return nil
}

// Clear removes all items
func (o *Array[T]) Clear() {
	o.items = o.items[:0]
}

// Size returns the number of items
func (o *Array[T]) Size() int {
	return len(o.items)
}

// Items returns a copy of the items
func (o *Array[T]) Items() []T {
	res := make([]T, len(o.items))
	copy(res, o.items)
	return res
}
