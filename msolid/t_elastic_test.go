// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"bytes"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/henrij22/gomuesli/inp"
	"github.com/henrij22/gomuesli/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newElastic(tst *testing.T, E, ν float64) *ElasticIsotropicMP {
	props := inp.NewProperties()
	props.SetEnu(E, ν)
	mdl, err := New("ElasticIsotropic", "", props)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	return mdl.NewPoint().(*ElasticIsotropicMP)
}

func Test_elastic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elastic01. uniaxial strain")

	// λ = μ = 40, K = 200/3
	p := newElastic(tst, 100, 0.25)
	err := p.UpdateCurrentState(1, tensor.NewSymTensor(0.01, 0, 0, 0, 0, 0))
	if err != nil {
		tst.Errorf("update failed: %v\n", err)
		return
	}
	σ := p.Stress()
	io.Pforan("σ = %v\n", σ)
	chk.Array(tst, "σ", 1e-15, σ[:], []float64{1.2, 0.4, 0.4, 0, 0, 0})
	chk.Float64(tst, "p", 1e-15, p.Pressure(), 2.0/3.0)
	s := p.DeviatoricStress()
	chk.Float64(tst, "tr(s)", 1e-15, s.Trace(), 0)

	chk.Float64(tst, "W", 1e-15, p.StoredEnergy(), 0.006)
	chk.Float64(tst, "Wvol", 1e-15, p.VolumetricEnergy(), 0.01/3.0)
	chk.Float64(tst, "Wdev", 1e-15, p.DeviatoricEnergy(), 0.008/3.0)
	chk.Float64(tst, "Wvol+Wdev", 1e-15, p.VolumetricEnergy()+p.DeviatoricEnergy(), p.StoredEnergy())
	chk.Float64(tst, "K", 1e-13, p.VolumetricStiffness(), 200.0/3.0)
	chk.Float64(tst, "G", 1e-15, p.ShearStiffness(), 40)

	// shear
	err = p.UpdateCurrentState(2, tensor.NewSymTensor(0, 0, 0, 0, 0, 0.01))
	if err != nil {
		tst.Errorf("update failed: %v\n", err)
		return
	}
	σ = p.Stress()
	chk.Array(tst, "σ", 1e-15, σ[:], []float64{0, 0, 0, 0, 0, 0.8})
}

func Test_elastic02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elastic02. tangent")

	p := newElastic(tst, 100, 0.25)
	D := p.TangentMatrix()
	chk.Deep2(tst, "D", 1e-14, D, [][]float64{
		{120, 40, 40, 0, 0, 0},
		{40, 120, 40, 0, 0, 0},
		{40, 40, 120, 0, 0, 0},
		{0, 0, 0, 40, 0, 0},
		{0, 0, 0, 0, 40, 0},
		{0, 0, 0, 0, 0, 40},
	})

	// e1 ⊗ e1 contraction gives the longitudinal and shear acoustic stiffnesses
	T := p.ContractWithTangent(tensor.Vector3{1, 0, 0}, tensor.Vector3{1, 0, 0})
	chk.Array(tst, "T row 0", 1e-14, T[0][:], []float64{120, 0, 0})
	chk.Array(tst, "T row 1", 1e-14, T[1][:], []float64{0, 40, 0})

	Td := p.ContractWithDeviatoricTangent(tensor.Vector3{1, 0, 0}, tensor.Vector3{1, 0, 0})
	chk.Float64(tst, "Td00", 1e-14, Td[0][0], 80.0-80.0/3.0)

	var Dd tensor.Tensor4
	p.DissipationTangent(&Dd)
	chk.Array(tst, "Dd", 1e-17, tensor.EncodeTensor4(&Dd), make([]float64, 81))
}

func TestElasticBookkeeping(t *testing.T) {
	p := newElastic(t, 100, 0.25)
	ε := tensor.NewSymTensor(0.01, 0, 0, 0, 0, 0)

	require.NoError(t, p.UpdateCurrentState(1, ε))
	assert.Equal(t, tensor.SymTensor{}, p.ConvergedState().Stensors[0])
	p.CommitCurrentState()
	assert.Equal(t, ε, p.ConvergedState().Stensors[0])
	assert.Equal(t, 1.0, p.ConvergedState().Time)

	require.NoError(t, p.UpdateCurrentState(2, ε.Scale(2)))
	p.ResetCurrentState()
	assert.Equal(t, ε, p.CurrentState().Stensors[0])

	require.NoError(t, p.SetConvergedState(3, ε.Scale(3)))
	assert.Equal(t, ε.Scale(3), p.CurrentState().Stensors[0])
	assert.Equal(t, 3.0, p.ConvergedState().Time)

	// copies are returned
	s := p.CurrentState()
	s.Stensors[0][0] = 100
	assert.Equal(t, ε.Scale(3), p.CurrentState().Stensors[0])

	assert.Zero(t, p.PlasticSlip())
	assert.Zero(t, p.EnergyDissipationInStep())
	assert.Equal(t, tensor.SymTensor{}, p.CurrentPlasticStrain())
	assert.Equal(t, 1.0, p.Density())
}

func TestElasticMaterial(t *testing.T) {
	props := inp.NewProperties()
	props.SetEnu(100, 0.25)
	props.Set("density", 2.5)
	mdl, err := New("ElasticIsotropic", "soil", props)
	require.NoError(t, err)
	assert.Equal(t, "soil", mdl.Name())
	assert.Equal(t, "ElasticIsotropic", mdl.Kind())
	assert.True(t, mdl.Check())
	assert.Equal(t, 2.5, mdl.Density())
	assert.Equal(t, 100.0, mdl.GetProperty(inp.PrYoung))
	assert.Equal(t, 0.25, mdl.GetProperty(inp.PrPoisson))
	assert.InDelta(t, 40.0, mdl.GetProperty(inp.PrLambda), 1e-13)
	assert.InDelta(t, 40.0, mdl.GetProperty(inp.PrMu), 1e-13)
	assert.Zero(t, mdl.GetProperty(inp.PrYield))

	var buf bytes.Buffer
	mdl.Print(&buf)
	assert.Contains(t, buf.String(), "soil")

	props = inp.NewProperties()
	props.SetEnu(100, 0.5)
	_, err = New("ElasticIsotropic", "", props)
	assert.Error(t, err)
}
