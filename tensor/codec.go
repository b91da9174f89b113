// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// buffer sizes
const (
	NV   = 3  // values in a vector buffer
	NT   = 9  // values in a second order tensor buffer (general or symmetric)
	NT4  = 81 // values in a fourth order tensor buffer
	NSym = 6  // independent values of a symmetric tensor
)

// shape descriptions used in error messages
const (
	WhatVector  = "3 vector"
	WhatTensor  = "3 x 3 matrix"
	WhatTensor4 = "3x3x3x3 array"
)

// Index2 returns the buffer position of M[i][j] (row-major)
func Index2(i, j int) int {
	return i*3 + j
}

// Index4 returns the buffer position of T(i,j,k,l) (outer-major)
func Index4(i, j, k, l int) int {
	return i*27 + j*9 + k*3 + l
}

// AssertSize checks that buf holds exactly expected values. buf is never modified
func AssertSize(buf []float64, expected int, what string) error {
	if len(buf) != expected {
		return &ShapeMismatch{What: what, Expected: expected, Actual: len(buf)}
	}
	return nil
}

// AssertVectorSize checks a generic vector buffer; e.g. the 21 anisotropic constants
func AssertVectorSize(buf []float64, expected int) error {
	return AssertSize(buf, expected, io.Sf("%d vector", expected))
}

// vectors /////////////////////////////////////////////////////////////////////////////////////////

// DecodeVector3 returns the vector v[i] = buf[i]
func DecodeVector3(buf []float64) (v Vector3, err error) {
	if err = AssertSize(buf, NV, WhatVector); err != nil {
		return
	}
	copy(v[:], buf)
	return
}

// EncodeVector3 returns a new buffer with the components of v
func EncodeVector3(v Vector3) []float64 {
	buf := make([]float64, NV)
	copy(buf, v[:])
	return buf
}

// EncodeVector3Into writes v into out
func EncodeVector3Into(v Vector3, out []float64) error {
	if err := AssertSize(out, NV, WhatVector); err != nil {
		return err
	}
	copy(out, v[:])
	return nil
}

// general second order tensors ////////////////////////////////////////////////////////////////////

// DecodeTensor3x3 returns T[i][j] = buf[i*3+j]
func DecodeTensor3x3(buf []float64) (t Tensor3x3, err error) {
	if err = AssertSize(buf, NT, WhatTensor); err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = buf[Index2(i, j)]
		}
	}
	return
}

// EncodeTensor3x3 returns a new row-major buffer with the components of t
func EncodeTensor3x3(t Tensor3x3) []float64 {
	buf := make([]float64, NT)
	encodeTensor3x3(t, buf)
	return buf
}

// EncodeTensor3x3Into writes t into out (row-major)
func EncodeTensor3x3Into(t Tensor3x3, out []float64) error {
	if err := AssertSize(out, NT, WhatTensor); err != nil {
		return err
	}
	encodeTensor3x3(t, out)
	return nil
}

func encodeTensor3x3(t Tensor3x3, buf []float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			buf[Index2(i, j)] = t[i][j]
		}
	}
}

// symmetric second order tensors //////////////////////////////////////////////////////////////////

// DecodeSymTensor reads the 6 canonical components from a full 3x3 buffer:
//  t00 = buf[0], t11 = buf[4], t22 = buf[8], t12 = buf[5], t20 = buf[6], t01 = buf[1]
//  The mirrored entries (buf[7], buf[2], buf[3]) are not read; an asymmetric buffer is collapsed
//  to these representatives without error
func DecodeSymTensor(buf []float64) (s SymTensor, err error) {
	if err = AssertSize(buf, NT, WhatTensor); err != nil {
		return
	}
	for m, p := range symPairs {
		s[m] = buf[Index2(p[0], p[1])]
	}
	return
}

// DecodeSymTensorStrict works as DecodeSymTensor but fails with ErrAsymmetric when
// |buf(i,j) - buf(j,i)| > tol for any mirrored pair
func DecodeSymTensorStrict(buf []float64, tol float64) (s SymTensor, err error) {
	if err = AssertSize(buf, NT, WhatTensor); err != nil {
		return
	}
	for m := 3; m < NSym; m++ {
		i, j := symPairs[m][0], symPairs[m][1]
		if math.Abs(buf[Index2(i, j)]-buf[Index2(j, i)]) > tol {
			return s, ErrAsymmetric
		}
	}
	return DecodeSymTensor(buf)
}

// EncodeSymTensor returns a new 9-value buffer with each off-diagonal mirrored
func EncodeSymTensor(s SymTensor) []float64 {
	buf := make([]float64, NT)
	encodeSymTensor(s, buf)
	return buf
}

// EncodeSymTensorInto writes the full 3x3 form of s into out
func EncodeSymTensorInto(s SymTensor, out []float64) error {
	if err := AssertSize(out, NT, WhatTensor); err != nil {
		return err
	}
	encodeSymTensor(s, out)
	return nil
}

func encodeSymTensor(s SymTensor, buf []float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			buf[Index2(i, j)] = s[symIdx[i][j]]
		}
	}
}

// fourth order tensors ////////////////////////////////////////////////////////////////////////////

// DecodeTensor4 returns C(i,j,k,l) = buf[i*27+j*9+k*3+l]
func DecodeTensor4(buf []float64) (c Tensor4, err error) {
	if err = AssertSize(buf, NT4, WhatTensor4); err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = buf[Index4(i, j, k, l)]
				}
			}
		}
	}
	return
}

// EncodeTensor4 returns a new outer-major buffer with the components of c
func EncodeTensor4(c *Tensor4) []float64 {
	buf := make([]float64, NT4)
	encodeTensor4(c, buf)
	return buf
}

// EncodeTensor4Into writes c into out (outer-major)
func EncodeTensor4Into(c *Tensor4, out []float64) error {
	if err := AssertSize(out, NT4, WhatTensor4); err != nil {
		return err
	}
	encodeTensor4(c, out)
	return nil
}

func encodeTensor4(c *Tensor4, buf []float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					buf[Index4(i, j, k, l)] = c[i][j][k][l]
				}
			}
		}
	}
}
