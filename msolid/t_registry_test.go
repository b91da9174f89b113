// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"errors"
	"testing"

	"github.com/henrij22/gomuesli/inp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orthotropicStub stands for a linked collaborator
type orthotropicStub struct {
	ElasticIsotropic
}

func (o *orthotropicStub) Kind() string { return "ElasticOrthotropic" }

func TestKinds(t *testing.T) {
	assert.Len(t, Kinds, 17)
	nsmall, nlarge := 0, 0
	for _, k := range Kinds {
		if k.Large {
			nlarge++
		} else {
			nsmall++
		}
		assert.NotEmpty(t, k.Prms, k.Name)
	}
	assert.Equal(t, 11, nsmall)
	assert.Equal(t, 6, nlarge)

	gtn, found := FindKind("GTN")
	require.True(t, found)
	assert.Equal(t, "GTN_Material", gtn.MaterialType())
	assert.Equal(t, "GTN_MP", gtn.PointType())
	assert.Equal(t, BaseSdamage, gtn.Base)

	neo, _ := FindKind("NeoHooke")
	assert.Equal(t, BaseFinv, neo.Base)
	assert.Equal(t, BaseFisoMP, neo.BaseMP)

	_, found = FindKind("Unknown")
	assert.False(t, found)
}

func TestRegistry(t *testing.T) {
	assert.Contains(t, Available(), "ElasticIsotropic")
	assert.Contains(t, Available(), "SVK")

	// known but not linked
	_, err := New("ElasticOrthotropic", "", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotAvailable))

	// unknown
	_, err = New("Plasticine", "", nil)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotAvailable))

	// link a collaborator
	require.NoError(t, Register("ElasticOrthotropic", func() Material { return new(orthotropicStub) }))
	t.Cleanup(func() { Unregister("ElasticOrthotropic") })
	props := inp.NewProperties()
	props.SetEnu(10, 0.2)
	mdl, err := New("ElasticOrthotropic", "wood", props)
	require.NoError(t, err)
	assert.Equal(t, "ElasticOrthotropic", mdl.Kind())
	assert.Equal(t, "wood", mdl.Name())
	_, ok := mdl.NewPoint().(Small)
	assert.True(t, ok)

	assert.Error(t, Register("Plasticine", func() Material { return new(ElasticIsotropic) }))
	assert.Error(t, Register("ElasticOrthotropic", nil))
}

func TestGetModel(t *testing.T) {
	mdb, err := inp.ReadMat("../inp/data", "materials.mat")
	require.NoError(t, err)

	mdl, err := GetModel(mdb, "steel")
	require.NoError(t, err)
	assert.Equal(t, "steel", mdl.Name())
	assert.Equal(t, 7.85e-3, mdl.Density())

	mdl, err = GetModel(mdb, "rubber")
	require.NoError(t, err)
	_, ok := mdl.NewPoint().(Large)
	assert.True(t, ok)

	_, err = GetModel(mdb, "polymer")
	assert.True(t, errors.Is(err, ErrNotAvailable))

	_, err = GetModel(mdb, "wood")
	assert.Error(t, err)
	_, err = GetModel(nil, "steel")
	assert.Error(t, err)
}
