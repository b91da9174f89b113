// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
	"github.com/henrij22/gomuesli/inp"
	"github.com/henrij22/gomuesli/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSVK(tst *testing.T, E, ν float64) *SVKMP {
	props := inp.NewProperties()
	props.SetEnu(E, ν)
	mdl, err := New("SVK", "", props)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	return mdl.NewPoint().(*SVKMP)
}

func Test_svk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("svk01. uniaxial stretch")

	// λ = μ = 40
	p := newSVK(tst, 100, 0.25)
	F := tensor.NewTensor3x3(1.1, 0, 0, 0, 1, 0, 0, 0, 1)
	err := p.UpdateCurrentState(1, F)
	if err != nil {
		tst.Errorf("update failed: %v\n", err)
		return
	}

	// E00 = 0.105
	S := p.SecondPiolaKirchhoffStress()
	io.Pforan("S = %v\n", S)
	chk.Array(tst, "S", 1e-13, S[:], []float64{12.6, 4.2, 4.2, 0, 0, 0})

	P := p.FirstPiolaKirchhoffStress()
	chk.Array(tst, "P row 0", 1e-13, P[0][:], []float64{13.86, 0, 0})

	τ := p.KirchhoffStress()
	chk.Array(tst, "τ", 1e-13, τ[:], []float64{15.246, 4.2, 4.2, 0, 0, 0})

	σ := p.CauchyStress()
	chk.Array(tst, "σ", 1e-13, σ[:], []float64{13.86, 4.2 / 1.1, 4.2 / 1.1, 0, 0, 0})

	chk.Float64(tst, "W", 1e-14, p.StoredEnergy(), 0.6615)
}

func Test_svk02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("svk02. numerical derivatives")

	p := newSVK(tst, 100, 0.3)
	F := tensor.NewTensor3x3(
		1.10, 0.05, -0.02,
		0.01, 0.95, 0.03,
		-0.04, 0.02, 1.05,
	)
	err := p.UpdateCurrentState(0.5, F)
	if err != nil {
		tst.Errorf("update failed: %v\n", err)
		return
	}

	// P = dW/dF
	Pnum, err := NumFirstPiolaKirchhoff(p)
	if err != nil {
		tst.Errorf("numerical P failed: %v\n", err)
		return
	}
	P := p.FirstPiolaKirchhoffStress()
	chk.Array(tst, "P", 1e-7, tensor.EncodeTensor3x3(Pnum), tensor.EncodeTensor3x3(P))

	Snum, err := NumSecondPiolaKirchhoff(p)
	if err != nil {
		tst.Errorf("numerical S failed: %v\n", err)
		return
	}
	S := p.SecondPiolaKirchhoffStress()
	chk.Array(tst, "S", 1e-7, Snum[:], S[:])

	// A = dP/dF
	var A, Anum tensor.Tensor4
	p.MaterialTangent(&A)
	err = NumMaterialTangent(p, &Anum)
	if err != nil {
		tst.Errorf("numerical A failed: %v\n", err)
		return
	}
	chk.Array(tst, "A", 1e-7, tensor.EncodeTensor4(&Anum), tensor.EncodeTensor4(&A))

	// state is restored
	chk.Array(tst, "F", 1e-17, tensor.EncodeTensor3x3(p.DeformationGradient()), tensor.EncodeTensor3x3(F))
}

func TestSVKTangents(t *testing.T) {
	p := newSVK(t, 100, 0.25)

	// at F = I all tangents coincide with the small strain one
	var C, c, A tensor.Tensor4
	p.ConvectedTangent(&C)
	p.SpatialTangent(&c)
	p.MaterialTangent(&A)
	assert.InDeltaSlice(t, tensor.EncodeTensor4(&C), tensor.EncodeTensor4(&c), 1e-13)
	assert.InDeltaSlice(t, tensor.EncodeTensor4(&C), tensor.EncodeTensor4(&A), 1e-13)

	T := p.ContractWithSpatialTangent(tensor.Vector3{1, 0, 0}, tensor.Vector3{1, 0, 0})
	assert.InDelta(t, 120.0, T[0][0], 1e-13)
	T = p.ContractWithConvectedTangent(tensor.Vector3{0, 1, 0}, tensor.Vector3{0, 1, 0})
	assert.InDelta(t, 40.0, T[0][0], 1e-13)
	T = p.ContractWithDeviatoricTangent(tensor.Vector3{1, 0, 0}, tensor.Vector3{1, 0, 0})
	assert.InDelta(t, 80.0-80.0/3.0, T[0][0], 1e-13)

	// c : 1 = (3λ + 2μ) 1
	m := p.ContractWithMixedTangent()
	assert.InDeltaSlice(t, []float64{200, 200, 200, 0, 0, 0}, m[:], 1e-13)

	M := p.ConvectedTangentTimesSymmetricTensor(tensor.NewSymTensor(0, 0, 0, 0, 0, 1))
	assert.InDeltaSlice(t, []float64{0, 0, 0, 0, 0, 80}, M[:], 1e-13)
}

func TestSVKBookkeeping(t *testing.T) {
	p := newSVK(t, 100, 0.25)
	assert.Equal(t, tensor.Identity(), p.ConvergedDeformationGradient())

	F := tensor.NewTensor3x3(1.2, 0, 0, 0, 1, 0, 0, 0, 1)
	require.NoError(t, p.UpdateCurrentState(1, F))
	assert.Equal(t, tensor.Identity(), p.ConvergedDeformationGradient())
	p.CommitCurrentState()
	assert.Equal(t, F, p.ConvergedDeformationGradient())

	bad := tensor.NewTensor3x3(-1, 0, 0, 0, 1, 0, 0, 0, 1)
	assert.Error(t, p.UpdateCurrentState(2, bad))
	assert.Equal(t, F, p.DeformationGradient())

	rnd.Init(1234)
	p.SetRandom()
	assert.Equal(t, p.DeformationGradient(), p.ConvergedDeformationGradient())
	Fr, I := p.DeformationGradient(), tensor.Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Less(t, math.Abs(Fr[i][j]-I[i][j]), 0.1)
		}
	}
	assert.Greater(t, p.DeformationGradient().Det(), 0.0)

	Σ := p.EnergyMomentumTensor()
	assert.InDelta(t, 3*p.StoredEnergy()-tensor.Identity().Ddot(p.DeformationGradient().Transpose().Mul(p.FirstPiolaKirchhoffStress())), Σ.Trace(), 1e-12)

	assert.False(t, p.IsFullyDamaged())
	assert.Zero(t, p.GetDamage())
	assert.InDelta(t, 10.954451150103322, p.WaveVelocity(), 1e-12)
}
