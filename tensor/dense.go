// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Dense returns a gonum view of a copy of T. gonum stores row-major, as the codec does
func (t Tensor3x3) Dense() *mat.Dense {
	return mat.NewDense(3, 3, EncodeTensor3x3(t))
}

// SymDense returns a gonum symmetric matrix holding S
func (s SymTensor) SymDense() *mat.SymDense {
	return mat.NewSymDense(3, EncodeSymTensor(s))
}

// FromDense returns the tensor held by a 3x3 gonum matrix
func FromDense(m mat.Matrix) (t Tensor3x3, err error) {
	r, c := m.Dims()
	if r != 3 || c != 3 {
		return t, &ShapeMismatch{What: WhatTensor, Expected: NT, Actual: r * c}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m.At(i, j)
		}
	}
	return
}

// Det returns det(T)
func (t Tensor3x3) Det() float64 {
	return mat.Det(t.Dense())
}

// Inverse returns T⁻¹
func (t Tensor3x3) Inverse() (inv Tensor3x3, err error) {
	var d mat.Dense
	err = d.Inverse(t.Dense())
	if err != nil {
		return inv, chk.Err("cannot invert tensor:\n%v", err)
	}
	return FromDense(&d)
}

// Inverse returns S⁻¹
func (s SymTensor) Inverse() (inv SymTensor, err error) {
	full, err := s.Full().Inverse()
	if err != nil {
		return
	}
	return full.Sym(), nil
}
