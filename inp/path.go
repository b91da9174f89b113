// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/henrij22/gomuesli/tensor"
)

// SymTol is the tolerance for the symmetry of strain buffers in path files
const SymTol = 1e-12

// Path holds a loading path: one strain (small) or deformation gradient (finite) per time.
// Each strain or deformation gradient is given as a row-major 9 values buffer
type Path struct {

	// input
	Large   bool        `json:"large"`   // finite strain path; uses F instead of Strains
	Times   []float64   `json:"times"`   // time at each increment
	Strains [][]float64 `json:"strains"` // ε at each increment (small strain)
	F       [][]float64 `json:"F"`       // F at each increment (finite strain)

	// derived
	Eps  []tensor.SymTensor `json:"-"` // decoded strains
	Fdef []tensor.Tensor3x3 `json:"-"` // decoded deformation gradients
}

// ReadPath reads a .pat JSON file
func ReadPath(dir, fn string) (o *Path, err error) {
	fullpath := filepath.Join(dir, fn)
	b, err := os.ReadFile(fullpath)
	if err != nil {
		return nil, chk.Err("cannot read path file %q:\n%v", fullpath, err)
	}
	o = new(Path)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal path file %q:\n%v", fullpath, err)
	}
	err = o.Init()
	if err != nil {
		return nil, chk.Err("invalid path in %q:\n%v", fullpath, err)
	}
	return
}

// NewSmallPath returns a small strain path
func NewSmallPath(times []float64, eps []tensor.SymTensor) (o *Path, err error) {
	o = &Path{Times: times}
	for _, e := range eps {
		o.Strains = append(o.Strains, tensor.EncodeSymTensor(e))
	}
	return o, o.Init()
}

// NewLargePath returns a finite strain path
func NewLargePath(times []float64, F []tensor.Tensor3x3) (o *Path, err error) {
	o = &Path{Large: true, Times: times}
	for _, f := range F {
		o.F = append(o.F, tensor.EncodeTensor3x3(f))
	}
	return o, o.Init()
}

// NewUniaxialPath returns a path with n increments of ε00 (or F00 - 1) from 0 to emax in unit time
func NewUniaxialPath(n int, emax float64, large bool) (o *Path, err error) {
	if n < 1 {
		return nil, chk.Err("number of increments must be positive; n=%d is invalid", n)
	}
	times := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		times[i] = float64(i) / float64(n)
	}
	if large {
		F := make([]tensor.Tensor3x3, n+1)
		for i := range F {
			F[i] = tensor.Identity()
			F[i][0][0] += emax * times[i]
		}
		return NewLargePath(times, F)
	}
	eps := make([]tensor.SymTensor, n+1)
	for i := range eps {
		eps[i][0] = emax * times[i]
	}
	return NewSmallPath(times, eps)
}

// Init checks and decodes the buffers
func (o *Path) Init() (err error) {
	if len(o.Times) == 0 {
		return chk.Err("path must have at least one time")
	}
	for i := 1; i < len(o.Times); i++ {
		if o.Times[i] < o.Times[i-1] {
			return chk.Err("times must be non-decreasing; t[%d]=%g < t[%d]=%g", i, o.Times[i], i-1, o.Times[i-1])
		}
	}
	bufs := o.Strains
	if o.Large {
		bufs = o.F
	}
	if len(bufs) != len(o.Times) {
		return chk.Err("path must have one buffer per time; %d != %d", len(bufs), len(o.Times))
	}
	o.Eps, o.Fdef = nil, nil
	for i, buf := range bufs {
		if o.Large {
			var f tensor.Tensor3x3
			f, err = tensor.DecodeTensor3x3(buf)
			if err != nil {
				return chk.Err("F # %d: %v", i, err)
			}
			o.Fdef = append(o.Fdef, f)
			continue
		}
		var e tensor.SymTensor
		e, err = tensor.DecodeSymTensorStrict(buf, SymTol)
		if err != nil {
			return chk.Err("strain # %d: %v", i, err)
		}
		o.Eps = append(o.Eps, e)
	}
	return
}

// Size returns the number of increments (including the initial one)
func (o *Path) Size() int {
	return len(o.Times)
}
