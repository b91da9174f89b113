// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

var (
	// ErrShapeMismatch matches every *ShapeMismatch via errors.Is
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrAsymmetric is returned by the strict symmetric decoder
	ErrAsymmetric = errors.New("tensor: buffer is not symmetric")
)

// ShapeMismatch reports a buffer whose length differs from the one required by a tensor shape
type ShapeMismatch struct {
	What     string // description of the shape; e.g. "3 x 3 matrix"
	Expected int    // required number of values
	Actual   int    // number of values given
}

// Error implements error
func (o *ShapeMismatch) Error() string {
	return io.Sf("input has to be a %s (%d values); got %d values", o.What, o.Expected, o.Actual)
}

// Is makes errors.Is(err, ErrShapeMismatch) hold
func (o *ShapeMismatch) Is(target error) bool {
	return target == ErrShapeMismatch
}
