// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim, .mat and .pat) JSON files
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc     string `json:"desc"`     // description of simulation
	Matfile  string `json:"matfile"`  // materials file path
	Matname  string `json:"matname"`  // name of material in materials file
	Pathfile string `json:"pathfile"` // loading path file path
	DirOut   string `json:"dirout"`   // directory for output; e.g. /tmp/gomuesli
	Encoder  string `json:"encoder"`  // encoder name; e.g. "gob" "json"
	Compress string `json:"compress"` // checkpoint compression; e.g. "none" "zstd" "s2" "lz4"
}

// DriverData holds data for the material point driver
type DriverData struct {
	CheckD bool    `json:"checkd"` // check consistent tangent numerically
	TolD   float64 `json:"told"`   // tolerance for the numerical check
	VerD   bool    `json:"verd"`   // show messages during the check
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data   Data       `json:"data"`   // global simulation data
	Driver DriverData `json:"driver"` // driver data

	// derived
	Key     string    `json:"-"` // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	DirOut  string    `json:"-"` // directory to save results
	EncType string    `json:"-"` // encoder type
	MatDb   *MatDb    `json:"-"` // materials database
	Mat     *Material `json:"-"` // material of this simulation
	Path    *Path     `json:"-"` // loading path
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// set default values
	o = new(Simulation)
	o.Driver.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gomuesli/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}
	if o.Data.Compress == "" {
		o.Data.Compress = "none"
	}

	// read materials database
	o.MatDb, err = ReadMat(dir, o.Data.Matfile)
	if err != nil {
		return nil, err
	}
	o.Mat = o.MatDb.Get(o.Data.Matname)
	if o.Mat == nil {
		return nil, chk.Err("cannot find material %q in %q", o.Data.Matname, o.Data.Matfile)
	}

	// read path
	o.Path, err = ReadPath(dir, o.Data.Pathfile)
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// SetDefault sets defaults values
func (o *DriverData) SetDefault() {
	o.TolD = 1e-8
}
