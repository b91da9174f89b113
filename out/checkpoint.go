// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"encoding/json"
	"errors"
	goio "io"
	"math"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/henrij22/gomuesli/msolid"
)

// ErrChecksum is returned when the payload of a checkpoint does not match its checksum
var ErrChecksum = errors.New("out: checkpoint checksum mismatch")

// checkpoint header
const (
	cptMagic      = "GMCP"
	cptVersion    = 1
	cptHeaderSize = 24 // magic(4) version(1) encoder(1) codec(1) reserved(1) rawlen(8) checksum(8)
	cptExt        = ".cpt"
)

// encoder identifiers stored in checkpoint headers
const (
	encGob byte = iota
	encJSON
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e any) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e any) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Checkpoint holds the converged states of a material point run
type Checkpoint struct {
	Kind    string          // kind of model
	Matname string          // name of material
	Large   bool            // finite strain run
	Times   []float64       // times
	States  []*msolid.State // converged states
}

// NewCheckpoint collects the converged states of a driver run
func NewCheckpoint(mdl msolid.Material, drv *msolid.Driver) (o *Checkpoint, err error) {
	if mdl == nil || drv == nil {
		return nil, chk.Err("checkpoint needs a model and a driver")
	}
	if len(drv.Res) != len(drv.Times) {
		return nil, chk.Err("driver results are inconsistent: %d states and %d times", len(drv.Res), len(drv.Times))
	}
	o = &Checkpoint{Kind: mdl.Kind(), Matname: mdl.Name()}
	if info, found := msolid.FindKind(mdl.Kind()); found {
		o.Large = info.Large
	}
	o.Times = append(o.Times, drv.Times...)
	for _, s := range drv.Res {
		o.States = append(o.States, s.GetCopy())
	}
	return
}

// Size returns the number of states
func (o *Checkpoint) Size() int { return len(o.States) }

// Restore sets the converged state of a material point to the idx-th state
func (o *Checkpoint) Restore(pt msolid.Point, idx int) (err error) {
	if idx < 0 || idx >= len(o.States) {
		return chk.Err("cannot restore state %d; checkpoint has %d states", idx, len(o.States))
	}
	s := o.States[idx]
	switch p := pt.(type) {
	case msolid.Small:
		ε, err := s.Stensor(0)
		if err != nil {
			return chk.Err("state %d has no strain:\n%v", idx, err)
		}
		return p.SetConvergedState(s.Time, ε)
	case msolid.Large:
		F, err := s.Tensor(0)
		if err != nil {
			return chk.Err("state %d has no deformation gradient:\n%v", idx, err)
		}
		return p.SetConvergedState(s.Time, F)
	}
	return chk.Err("material point cannot be restored")
}

// Encode encodes and compresses checkpoint
//  enctype  -- "gob" or "json"
//  compress -- one of CompressNone, CompressZstd, CompressS2 or CompressLZ4
func (o *Checkpoint) Encode(enctype string, compress byte) ([]byte, error) {

	// encoder
	var encid byte
	switch enctype {
	case "", "gob":
		encid = encGob
	case "json":
		encid = encJSON
	default:
		return nil, chk.Err("encoder %q is invalid; options are \"gob\" or \"json\"", enctype)
	}
	codec, err := GetCodec(compress)
	if err != nil {
		return nil, err
	}

	// payload
	var raw bytes.Buffer
	err = GetEncoder(&raw, enctype).Encode(o)
	if err != nil {
		return nil, chk.Err("cannot encode checkpoint:\n%v", err)
	}
	payload, err := codec.Compress(raw.Bytes())
	if err != nil {
		return nil, err
	}

	// header
	buf := make([]byte, cptHeaderSize, cptHeaderSize+len(payload))
	copy(buf, cptMagic)
	buf[4] = cptVersion
	buf[5] = encid
	buf[6] = compress
	binary.LittleEndian.PutUint64(buf[8:], uint64(raw.Len()))
	binary.LittleEndian.PutUint64(buf[16:], xxhash.Sum64(raw.Bytes()))
	return append(buf, payload...), nil
}

// DecodeCheckpoint decodes a checkpoint produced by Encode
func DecodeCheckpoint(data []byte) (o *Checkpoint, err error) {

	// header
	if len(data) < cptHeaderSize {
		return nil, chk.Err("checkpoint is too short: %d bytes", len(data))
	}
	if string(data[:4]) != cptMagic {
		return nil, chk.Err("data is not a checkpoint")
	}
	if data[4] != cptVersion {
		return nil, chk.Err("checkpoint version %d is not supported", data[4])
	}
	enctype := "gob"
	switch data[5] {
	case encGob:
	case encJSON:
		enctype = "json"
	default:
		return nil, chk.Err("checkpoint encoder identifier %d is invalid", data[5])
	}
	codec, err := GetCodec(data[6])
	if err != nil {
		return nil, err
	}
	rawLen := binary.LittleEndian.Uint64(data[8:])
	sum := binary.LittleEndian.Uint64(data[16:])
	if rawLen > math.MaxInt {
		return nil, ErrChecksum
	}

	// payload
	raw, err := codec.Decompress(data[cptHeaderSize:], int(rawLen))
	if err != nil {
		return nil, errors.Join(ErrChecksum, err)
	}
	if uint64(len(raw)) != rawLen || xxhash.Sum64(raw) != sum {
		return nil, ErrChecksum
	}
	o = new(Checkpoint)
	err = GetDecoder(bytes.NewReader(raw), enctype).Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode checkpoint:\n%v", err)
	}
	return
}

// Save saves checkpoint to dirout/key.cpt
func (o *Checkpoint) Save(dirout, key, enctype string, compress byte, verbose bool) (filename string, err error) {
	data, err := o.Encode(enctype, compress)
	if err != nil {
		return
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return "", chk.Err("cannot create output directory:\n%v", err)
	}
	filename = Filename(dirout, key, cptExt)
	return filename, save_file(filename, data, verbose)
}

// ReadCheckpoint reads a checkpoint file
func ReadCheckpoint(filename string) (o *Checkpoint, err error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, chk.Err("cannot read checkpoint file %q:\n%v", filename, err)
	}
	return DecodeCheckpoint(data)
}

// save_file saves data to file
func save_file(filename string, data []byte, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	_, err = fil.Write(data)
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
