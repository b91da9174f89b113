// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tensor implements the native tensor types exchanged with constitutive models and the
// codec that converts them to and from the flat buffers handled by the host runtime.
//
//  Buffer conventions (the only ones used in this module):
//   rank 2 : row-major       buffer[i*3+j]            == M[i][j]
//   rank 4 : outer-major     buffer[i*27+j*9+k*3+l]   == T(i,j,k,l)
//
//  A symmetric tensor is stored as 6 scalars in the order
//   (t00, t11, t22, t12, t20, t01)
//  but is always exchanged with the host as a full 9-value buffer.
package tensor

import "math"

// Vector3 holds the 3 components of a vector
type Vector3 [3]float64

// Tensor3x3 holds a general (non-symmetric) second order tensor; T[i][j]
type Tensor3x3 [3][3]float64

// SymTensor holds the 6 independent components of a symmetric second order tensor
//  S = (t00, t11, t22, t12, t20, t01)
type SymTensor [6]float64

// Tensor4 holds a dense fourth order tensor; C[i][j][k][l]
type Tensor4 [3][3][3][3]float64

// symIdx maps (i,j) to the position in SymTensor
var symIdx = [3][3]int{
	{0, 5, 4},
	{5, 1, 3},
	{4, 3, 2},
}

// symPairs maps the positions in SymTensor to a representative (i,j) pair
var symPairs = [6][2]int{{0, 0}, {1, 1}, {2, 2}, {1, 2}, {2, 0}, {0, 1}}

// constructors ////////////////////////////////////////////////////////////////////////////////////

// NewSymTensor returns a symmetric tensor from its canonical components
func NewSymTensor(t00, t11, t22, t12, t20, t01 float64) SymTensor {
	return SymTensor{t00, t11, t22, t12, t20, t01}
}

// NewTensor3x3 returns a tensor given row by row
func NewTensor3x3(a00, a01, a02, a10, a11, a12, a20, a21, a22 float64) Tensor3x3 {
	return Tensor3x3{{a00, a01, a02}, {a10, a11, a12}, {a20, a21, a22}}
}

// TensorFromRows returns a tensor whose rows are a, b and c
func TensorFromRows(a, b, c Vector3) Tensor3x3 {
	return Tensor3x3{a, b, c}
}

// Identity returns the second order identity tensor
func Identity() Tensor3x3 {
	return Tensor3x3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// SymIdentity returns the symmetric identity tensor
func SymIdentity() SymTensor {
	return SymTensor{1, 1, 1, 0, 0, 0}
}

// Vector3 /////////////////////////////////////////////////////////////////////////////////////////

// Dot returns u · v
func (u Vector3) Dot(v Vector3) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// Norm returns |u|
func (u Vector3) Norm() float64 {
	return math.Sqrt(u.Dot(u))
}

// Tensor3x3 ///////////////////////////////////////////////////////////////////////////////////////

// At returns T[i][j]
func (t Tensor3x3) At(i, j int) float64 {
	return t[i][j]
}

// Trace returns tr(T)
func (t Tensor3x3) Trace() float64 {
	return t[0][0] + t[1][1] + t[2][2]
}

// Transpose returns Tᵀ
func (t Tensor3x3) Transpose() (r Tensor3x3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = t[j][i]
		}
	}
	return
}

// Add returns T + α B
func (t Tensor3x3) Add(α float64, b Tensor3x3) (r Tensor3x3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = t[i][j] + α*b[i][j]
		}
	}
	return
}

// Scale returns α T
func (t Tensor3x3) Scale(α float64) (r Tensor3x3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = α * t[i][j]
		}
	}
	return
}

// Mul returns T · B
func (t Tensor3x3) Mul(b Tensor3x3) (r Tensor3x3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += t[i][k] * b[k][j]
			}
		}
	}
	return
}

// Apply returns T · v
func (t Tensor3x3) Apply(v Vector3) (r Vector3) {
	for i := 0; i < 3; i++ {
		r[i] = t[i][0]*v[0] + t[i][1]*v[1] + t[i][2]*v[2]
	}
	return
}

// Ddot returns T : B
func (t Tensor3x3) Ddot(b Tensor3x3) (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res += t[i][j] * b[i][j]
		}
	}
	return
}

// Sym returns the symmetric part of T
func (t Tensor3x3) Sym() (s SymTensor) {
	for m, p := range symPairs {
		s[m] = 0.5 * (t[p[0]][p[1]] + t[p[1]][p[0]])
	}
	return
}

// SymTensor ///////////////////////////////////////////////////////////////////////////////////////

// At returns S[i][j] == S[j][i]
func (s SymTensor) At(i, j int) float64 {
	return s[symIdx[i][j]]
}

// Set sets S[i][j] and S[j][i]
func (s *SymTensor) Set(i, j int, v float64) {
	s[symIdx[i][j]] = v
}

// Full returns the 3x3 representation of S
func (s SymTensor) Full() (t Tensor3x3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = s[symIdx[i][j]]
		}
	}
	return
}

// Trace returns tr(S)
func (s SymTensor) Trace() float64 {
	return s[0] + s[1] + s[2]
}

// Add returns S + α B
func (s SymTensor) Add(α float64, b SymTensor) (r SymTensor) {
	for m := 0; m < 6; m++ {
		r[m] = s[m] + α*b[m]
	}
	return
}

// Scale returns α S
func (s SymTensor) Scale(α float64) (r SymTensor) {
	for m := 0; m < 6; m++ {
		r[m] = α * s[m]
	}
	return
}

// Dev returns dev(S) = S - tr(S)/3 I
func (s SymTensor) Dev() SymTensor {
	return s.Add(-s.Trace()/3.0, SymIdentity())
}

// Ddot returns S : B
func (s SymTensor) Ddot(b SymTensor) float64 {
	return s[0]*b[0] + s[1]*b[1] + s[2]*b[2] + 2.0*(s[3]*b[3]+s[4]*b[4]+s[5]*b[5])
}

// Norm returns sqrt(S : S)
func (s SymTensor) Norm() float64 {
	return math.Sqrt(s.Ddot(s))
}

// Tensor4 /////////////////////////////////////////////////////////////////////////////////////////

// At returns C(i,j,k,l)
func (c *Tensor4) At(i, j, k, l int) float64 {
	return c[i][j][k][l]
}

// DdotSym returns C : S
func (c *Tensor4) DdotSym(s SymTensor) (r Tensor3x3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					r[i][j] += c[i][j][k][l] * s.At(k, l)
				}
			}
		}
	}
	return
}

// Contract returns T[a][b] = C(a,p,b,q) v1[p] v2[q]
func (c *Tensor4) Contract(v1, v2 Vector3) (r Tensor3x3) {
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for p := 0; p < 3; p++ {
				for q := 0; q < 3; q++ {
					r[a][b] += c[a][p][b][q] * v1[p] * v2[q]
				}
			}
		}
	}
	return
}
