// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

func Test_codec01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("codec01. general tensor: row-major")

	buf := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	t, err := DecodeTensor3x3(buf)
	if err != nil {
		tst.Errorf("decode failed: %v\n", err)
		return
	}
	io.Pforan("t = %v\n", t)
	chk.Array(tst, "row 0", 1e-17, t[0][:], []float64{1, 2, 3})
	chk.Array(tst, "row 1", 1e-17, t[1][:], []float64{4, 5, 6})
	chk.Array(tst, "row 2", 1e-17, t[2][:], []float64{7, 8, 9})
	chk.Array(tst, "encoded", 1e-17, EncodeTensor3x3(t), buf)
	chk.Array(tst, "input untouched", 1e-17, buf, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
}

func Test_codec02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("codec02. symmetric tensor")

	// identity pattern
	s, err := DecodeSymTensor([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	if err != nil {
		tst.Errorf("decode failed: %v\n", err)
		return
	}
	chk.Array(tst, "s", 1e-17, s[:], []float64{1, 1, 1, 0, 0, 0})
	chk.Array(tst, "encoded", 1e-17, EncodeSymTensor(s), []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})

	// canonical positions: t00, t11, t22, t12, t20, t01
	s, err = DecodeSymTensor([]float64{
		11, 16, 15,
		16, 22, 14,
		15, 14, 33,
	})
	if err != nil {
		tst.Errorf("decode failed: %v\n", err)
		return
	}
	chk.Array(tst, "canonical", 1e-17, s[:], []float64{11, 22, 33, 14, 15, 16})
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Float64(tst, io.Sf("s(%d,%d)==s(%d,%d)", i, j, j, i), 1e-17, s.At(i, j), s.At(j, i))
		}
	}

	// asymmetric input collapses to the representatives (0,1), (1,2) and (2,0)
	s, err = DecodeSymTensor([]float64{
		1, 7, -1,
		-7, 2, 8,
		9, -8, 3,
	})
	if err != nil {
		tst.Errorf("decode failed: %v\n", err)
		return
	}
	chk.Array(tst, "collapsed", 1e-17, s[:], []float64{1, 2, 3, 8, 9, 7})
	chk.Array(tst, "mirrored", 1e-17, EncodeSymTensor(s), []float64{1, 7, 9, 7, 2, 8, 9, 8, 3})

	// strict variant
	_, err = DecodeSymTensorStrict([]float64{1, 7, -1, -7, 2, 8, 9, -8, 3}, 1e-12)
	if err != ErrAsymmetric {
		tst.Errorf("strict decode should have failed with ErrAsymmetric; got %v\n", err)
		return
	}
	s, err = DecodeSymTensorStrict([]float64{1, 4, 5, 4, 2, 6, 5, 6, 3}, 1e-12)
	if err != nil {
		tst.Errorf("strict decode failed: %v\n", err)
		return
	}
	chk.Array(tst, "strict", 1e-17, s[:], []float64{1, 2, 3, 6, 5, 4})
}

func Test_codec03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("codec03. fourth order tensor: outer-major")

	buf := make([]float64, NT4)
	buf[0] = 5.0
	c, err := DecodeTensor4(buf)
	if err != nil {
		tst.Errorf("decode failed: %v\n", err)
		return
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					correct := 0.0
					if i == 0 && j == 0 && k == 0 && l == 0 {
						correct = 5.0
					}
					chk.Float64(tst, io.Sf("C%d%d%d%d", i, j, k, l), 1e-17, c.At(i, j, k, l), correct)
				}
			}
		}
	}

	// the last index runs fastest
	buf[0] = 0
	buf[1] = 1.0  // (0,0,0,1)
	buf[27] = 2.0 // (1,0,0,0)
	buf[80] = 3.0 // (2,2,2,2)
	c, _ = DecodeTensor4(buf)
	chk.Float64(tst, "C0001", 1e-17, c[0][0][0][1], 1)
	chk.Float64(tst, "C1000", 1e-17, c[1][0][0][0], 2)
	chk.Float64(tst, "C2222", 1e-17, c[2][2][2][2], 3)
	chk.Float64(tst, "C0100", 1e-17, c[0][1][0][0], 0)
	chk.Array(tst, "encoded", 1e-17, EncodeTensor4(&c), buf)
}

func Test_codec04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("codec04. round trips")

	rnd.Init(1234)
	for trial := 0; trial < 100; trial++ {

		// vector
		var v Vector3
		for i := range v {
			v[i] = rnd.Float64(-1, 1)
		}
		vv, err := DecodeVector3(EncodeVector3(v))
		if err != nil || vv != v {
			tst.Errorf("vector round trip failed: %v != %v (err=%v)\n", vv, v, err)
			return
		}

		// general tensor
		var t Tensor3x3
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				t[i][j] = rnd.Float64(-1, 1)
			}
		}
		tt, err := DecodeTensor3x3(EncodeTensor3x3(t))
		if err != nil || tt != t {
			tst.Errorf("tensor round trip failed: %v != %v (err=%v)\n", tt, t, err)
			return
		}

		// symmetric tensor
		var s SymTensor
		for m := range s {
			s[m] = rnd.Float64(-1, 1)
		}
		ss, err := DecodeSymTensor(EncodeSymTensor(s))
		if err != nil || ss != s {
			tst.Errorf("symmetric round trip failed: %v != %v (err=%v)\n", ss, s, err)
			return
		}

		// fourth order tensor
		buf := make([]float64, NT4)
		for m := range buf {
			buf[m] = rnd.Float64(-1, 1)
		}
		c, err := DecodeTensor4(buf)
		if err != nil {
			tst.Errorf("decode failed: %v\n", err)
			return
		}
		cc, _ := DecodeTensor4(EncodeTensor4(&c))
		if cc != c {
			tst.Errorf("fourth order round trip failed\n")
			return
		}

		// decode => encode does not change buffers
		chk.Array(tst, "idempotent", 0, EncodeTensor4(&c), buf)
		tbuf := EncodeTensor3x3(t)
		t2, _ := DecodeTensor3x3(tbuf)
		chk.Array(tst, "idempotent", 0, EncodeTensor3x3(t2), tbuf)
		sbuf := EncodeSymTensor(s)
		s2, _ := DecodeSymTensor(sbuf)
		chk.Array(tst, "idempotent", 0, EncodeSymTensor(s2), sbuf)
	}
}

func Test_codec05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("codec05. encode into caller buffers")

	out := make([]float64, NT)
	s := NewSymTensor(1, 2, 3, 4, 5, 6)
	if err := EncodeSymTensorInto(s, out); err != nil {
		tst.Errorf("encode failed: %v\n", err)
		return
	}
	chk.Array(tst, "sym", 1e-17, out, []float64{1, 6, 5, 6, 2, 4, 5, 4, 3})

	t := NewTensor3x3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	if err := EncodeTensor3x3Into(t, out); err != nil {
		tst.Errorf("encode failed: %v\n", err)
		return
	}
	chk.Array(tst, "ten", 1e-17, out, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})

	vout := make([]float64, NV)
	if err := EncodeVector3Into(Vector3{7, 8, 9}, vout); err != nil {
		tst.Errorf("encode failed: %v\n", err)
		return
	}
	chk.Array(tst, "vec", 1e-17, vout, []float64{7, 8, 9})

	// wrong output sizes leave the buffer untouched
	short := []float64{-1, -1, -1, -1, -1, -1, -1, -1}
	if err := EncodeTensor3x3Into(t, short); err == nil {
		tst.Errorf("encode into short buffer should have failed\n")
		return
	}
	chk.Array(tst, "untouched", 1e-17, short, []float64{-1, -1, -1, -1, -1, -1, -1, -1})
	var c Tensor4
	if err := EncodeTensor4Into(&c, make([]float64, 80)); err == nil {
		tst.Errorf("encode into short buffer should have failed\n")
	}
}
