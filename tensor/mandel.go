// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// sizes of reduced (Voigt) matrices
const (
	NVoigt   = 6  // rows/columns of a tangent matrix
	NMatrix6 = 36 // values of a flattened tangent matrix
)

// WhatMatrix6 describes the flattened tangent matrix in error messages
const WhatMatrix6 = "6 x 6 matrix"

// mandelPairs holds the components of each Mandel slot: (00, 11, 22, 01, 12, 20)
var mandelPairs = [NSym][2]int{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {1, 2}, {2, 0}}

// mandelFactor returns √2 for off-diagonal slots and 1 otherwise
func mandelFactor(k int) float64 {
	if k < 3 {
		return 1
	}
	return math.Sqrt2
}

// Mandel returns the Mandel representation of S (off-diagonals multiplied by √2)
//  Note: the order is (00, 11, 22, 01, 12, 20)
func (s SymTensor) Mandel() []float64 {
	m := make([]float64, NSym)
	for k, p := range mandelPairs {
		m[k] = s.At(p[0], p[1]) * mandelFactor(k)
	}
	return m
}

// FromMandel returns the symmetric tensor given its Mandel representation
func FromMandel(m []float64) (s SymTensor, err error) {
	if err = AssertVectorSize(m, NSym); err != nil {
		return
	}
	for k, p := range mandelPairs {
		s.Set(p[0], p[1], m[k]/mandelFactor(k))
	}
	return
}

// TangentMatrix returns the 6x6 reduced form of c: D[I][J] = c(i,j,k,l) where (i,j) and (k,l)
// are the representative pairs of I and J in SymTensor order (00, 11, 22, 12, 20, 01)
func TangentMatrix(c *Tensor4) [][]float64 {
	D := utl.Alloc(NVoigt, NVoigt)
	for I, p := range symPairs {
		for J, q := range symPairs {
			D[I][J] = c[p[0]][p[1]][q[0]][q[1]]
		}
	}
	return D
}

// EncodeMatrix6 flattens a 6x6 matrix row by row: buf[I*6+J] = D[I][J]
func EncodeMatrix6(D [][]float64) (buf []float64, err error) {
	if len(D) != NVoigt {
		return nil, &ShapeMismatch{What: WhatMatrix6, Expected: NMatrix6, Actual: len(D) * NVoigt}
	}
	buf = make([]float64, NMatrix6)
	for I, row := range D {
		if len(row) != NVoigt {
			return nil, &ShapeMismatch{What: WhatMatrix6, Expected: NMatrix6, Actual: NVoigt * len(row)}
		}
		copy(buf[I*NVoigt:], row)
	}
	return
}

// DecodeMatrix6 is the inverse of EncodeMatrix6
func DecodeMatrix6(buf []float64) (D [][]float64, err error) {
	if err = AssertSize(buf, NMatrix6, WhatMatrix6); err != nil {
		return
	}
	D = utl.Alloc(NVoigt, NVoigt)
	for I := 0; I < NVoigt; I++ {
		copy(D[I], buf[I*NVoigt:(I+1)*NVoigt])
	}
	return
}
