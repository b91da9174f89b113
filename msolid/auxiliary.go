// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/henrij22/gomuesli/tensor"
)

// Calc_K_from_Enu returns the bulk modulus K given Young's modulus and Poisson's coefficient
func Calc_K_from_Enu(E, ν float64) float64 {
	return E / (3.0 * (1.0 - 2.0*ν))
}

// Calc_G_from_Enu returns the shear modulus G given Young's modulus and Poisson's coefficient
func Calc_G_from_Enu(E, ν float64) float64 {
	return E / (2.0 * (1.0 + ν))
}

// Calc_l_from_Enu returns Lamé's first parameter λ
func Calc_l_from_Enu(E, ν float64) float64 {
	return E * ν / ((1.0 + ν) * (1.0 - 2.0*ν))
}

// CheckEnu checks Young's modulus and Poisson's coefficient
func CheckEnu(E, ν float64) error {
	if E <= 0 {
		return chk.Err("Young's modulus must be positive; E=%g is invalid", E)
	}
	if ν <= -1.0 || ν >= 0.5 {
		return chk.Err("Poisson's coefficient must be in (-1, 0.5); ν=%g is invalid", ν)
	}
	return nil
}

// IsotropicTangent computes C(i,j,k,l) = λ δij δkl + μ (δik δjl + δil δjk)
func IsotropicTangent(C *tensor.Tensor4, λ, μ float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					C[i][j][k][l] = λ*δ(i, j)*δ(k, l) + μ*(δ(i, k)*δ(j, l)+δ(i, l)*δ(j, k))
				}
			}
		}
	}
}

// DeviatoricTangent computes Cdev(i,j,k,l) = μ (δik δjl + δil δjk - 2/3 δij δkl)
func DeviatoricTangent(C *tensor.Tensor4, μ float64) {
	IsotropicTangent(C, -2.0*μ/3.0, μ)
}

// δ is the Kronecker delta
func δ(i, j int) float64 {
	if i == j {
		return 1
	}
	return 0
}

// PushForward computes c(i,j,k,l) = s F(i,I) F(j,J) F(k,K) F(l,L) C(I,J,K,L)
func PushForward(c *tensor.Tensor4, C *tensor.Tensor4, F tensor.Tensor3x3, s float64) {
	var tmp tensor.Tensor4
	*c = *C
	for n := 0; n < 4; n++ { // one index at a time
		tmp = *c
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				for k := 0; k < 3; k++ {
					for l := 0; l < 3; l++ {
						sum := 0.0
						for m := 0; m < 3; m++ {
							switch n {
							case 0:
								sum += F[i][m] * tmp[m][j][k][l]
							case 1:
								sum += F[j][m] * tmp[i][m][k][l]
							case 2:
								sum += F[k][m] * tmp[i][j][m][l]
							case 3:
								sum += F[l][m] * tmp[i][j][k][m]
							}
						}
						c[i][j][k][l] = sum
					}
				}
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] *= s
				}
			}
		}
	}
}

// DeviatoricProjection computes cdev = Pdev : c : Pdev with Pdev = Isym - 1⊗1/3
func DeviatoricProjection(cdev *tensor.Tensor4, c *tensor.Tensor4) {
	var P, tmp tensor.Tensor4
	IsotropicTangent(&P, -1.0/3.0, 0.5)
	ddot4(&tmp, &P, c)
	ddot4(cdev, &tmp, &P)
}

// ddot4 computes r(i,j,k,l) = a(i,j,m,n) b(m,n,k,l)
func ddot4(r, a, b *tensor.Tensor4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					sum := 0.0
					for m := 0; m < 3; m++ {
						for n := 0; n < 3; n++ {
							sum += a[i][j][m][n] * b[m][n][k][l]
						}
					}
					r[i][j][k][l] = sum
				}
			}
		}
	}
}
