// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"fmt"
	goio "io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data read from a .mat JSON file
type Material struct {
	Name  string            `json:"name"`  // name of material; e.g. "steel"
	Model string            `json:"model"` // kind of model; e.g. "ElasticIsotropic"
	Desc  string            `json:"desc"`  // description
	Prms  dbf.Params        `json:"prms"`  // numeric parameters; keys may repeat
	Opts  map[string]string `json:"opts"`  // options; e.g. {"plasticity": "vonmises"}
}

// MatDb implements a database of materials
type MatDb struct {
	Materials []*Material `json:"materials"`
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	fullpath := filepath.Join(dir, fn)
	b, err := os.ReadFile(fullpath)
	if err != nil {
		return nil, chk.Err("cannot read materials file %q:\n%v", fullpath, err)
	}

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q:\n%v", fullpath, err)
	}

	// check
	names := make(map[string]bool)
	for i, mat := range mdb.Materials {
		if mat.Name == "" {
			return nil, chk.Err("material # %d in %q has no name", i, fullpath)
		}
		if names[mat.Name] {
			return nil, chk.Err("material %q is defined twice in %q", mat.Name, fullpath)
		}
		names[mat.Name] = true
		for j, prm := range mat.Prms {
			if prm == nil || prm.N == "" {
				return nil, chk.Err("parameter # %d of material %q has no name", j, mat.Name)
			}
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Names returns the names of all materials
func (o MatDb) Names() (names []string) {
	for _, mat := range o.Materials {
		names = append(names, mat.Name)
	}
	return
}

// String returns the JSON representation of the database
func (o MatDb) String() string {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return io.Sf("cannot marshal materials database: %v", err)
	}
	return string(b)
}

// Properties returns a new property bag with the parameters (in file order) followed by the
// options (sorted by key)
func (o *Material) Properties() *Properties {
	props := NewProperties()
	for _, prm := range o.Prms {
		props.Set(prm.N, prm.V)
	}
	for _, key := range o.optKeys() {
		props.SetString(key, o.Opts[key])
	}
	return props
}

// Print writes a summary of the material
func (o *Material) Print(w goio.Writer) {
	fmt.Fprintf(w, "%s: %s", o.Name, o.Model)
	if o.Desc != "" {
		fmt.Fprintf(w, " (%s)", o.Desc)
	}
	fmt.Fprintf(w, "\n")
	for _, prm := range o.Prms {
		fmt.Fprintf(w, "  %-12s = %g\n", prm.N, prm.V)
	}
	for _, key := range o.optKeys() {
		fmt.Fprintf(w, "  %-12s : %s\n", key, o.Opts[key])
	}
}

func (o *Material) optKeys() []string {
	keys := make([]string, 0, len(o.Opts))
	for key := range o.Opts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
