// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// compression identifiers stored in checkpoint headers
const (
	CompressNone byte = iota
	CompressZstd
	CompressS2
	CompressLZ4
)

var compressNames = []string{"none", "zstd", "s2", "lz4"}

// CompressionNames returns the names accepted by ParseCompression
func CompressionNames() []string {
	return append([]string{}, compressNames...)
}

// ParseCompression returns the identifier of a compression given its name
func ParseCompression(name string) (byte, error) {
	if name == "" {
		return CompressNone, nil
	}
	for i, n := range compressNames {
		if n == name {
			return byte(i), nil
		}
	}
	return 0, chk.Err("compression %q is invalid; options are %q", name, compressNames)
}

// Codec compresses and decompresses checkpoint payloads
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte, rawLen int) ([]byte, error) // rawLen is the size of the original data
}

// lz4MaxRatio bounds the expansion of an lz4 block: each length byte adds at most 255 bytes
const lz4MaxRatio = 255

// errRawLen reports a payload that cannot hold rawLen bytes
func errRawLen(size, rawLen int) error {
	return chk.Err("payload of %d bytes cannot decompress to %d bytes", size, rawLen)
}

// GetCodec returns the codec of a compression identifier
func GetCodec(id byte) (Codec, error) {
	switch id {
	case CompressNone:
		return noopCodec{}, nil
	case CompressZstd:
		return zstdCodec{}, nil
	case CompressS2:
		return s2Codec{}, nil
	case CompressLZ4:
		return lz4Codec{}, nil
	}
	return nil, chk.Err("compression identifier %d is invalid", id)
}

// none ////////////////////////////////////////////////////////////////////////////////////////////

type noopCodec struct{}

func (noopCodec) Compress(data []byte) ([]byte, error) {
	return append([]byte{}, data...), nil
}

func (noopCodec) Decompress(data []byte, rawLen int) ([]byte, error) {
	if len(data) != rawLen {
		return nil, errRawLen(len(data), rawLen)
	}
	return append([]byte{}, data...), nil
}

// zstd ////////////////////////////////////////////////////////////////////////////////////////////

var zstdEncoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault), zstd.WithEncoderCRC(false))
		if err != nil {
			chk.Panic("cannot create zstd encoder: %v", err)
		}
		return enc
	},
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			chk.Panic("cannot create zstd decoder: %v", err)
		}
		return dec
	},
}

type zstdCodec struct{}

func (zstdCodec) Compress(data []byte) ([]byte, error) {
	enc := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)
	return enc.EncodeAll(data, nil), nil
}

func (zstdCodec) Decompress(data []byte, rawLen int) ([]byte, error) {
	if len(data) == 0 {
		if rawLen != 0 {
			return nil, errRawLen(0, rawLen)
		}
		return nil, nil
	}
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return nil, chk.Err("invalid zstd frame:\n%v", err)
	}
	var dst []byte // small frames carry no content size
	if h.HasFCS {
		if h.FrameContentSize != uint64(rawLen) {
			return nil, errRawLen(len(data), rawLen)
		}
		dst = make([]byte, 0, rawLen)
	}
	dec := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)
	res, err := dec.DecodeAll(data, dst)
	if err != nil {
		return nil, chk.Err("zstd decompression failed:\n%v", err)
	}
	return res, nil
}

// s2 //////////////////////////////////////////////////////////////////////////////////////////////

type s2Codec struct{}

func (s2Codec) Compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

func (s2Codec) Decompress(data []byte, rawLen int) ([]byte, error) {
	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, chk.Err("invalid s2 block:\n%v", err)
	}
	if n != rawLen {
		return nil, errRawLen(len(data), rawLen)
	}
	res, err := s2.Decode(make([]byte, rawLen), data)
	if err != nil {
		return nil, chk.Err("s2 decompression failed:\n%v", err)
	}
	return res, nil
}

// lz4 /////////////////////////////////////////////////////////////////////////////////////////////

var lz4CompressorPool = sync.Pool{
	New: func() any { return new(lz4.Compressor) },
}

type lz4Codec struct{}

func (lz4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	lc := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)
	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, chk.Err("lz4 compression failed:\n%v", err)
	}
	if n == 0 || n >= len(data) { // incompressible: stored as is
		return append([]byte{}, data...), nil
	}
	return dst[:n], nil
}

func (lz4Codec) Decompress(data []byte, rawLen int) ([]byte, error) {
	switch {
	case len(data) == rawLen:
		return append([]byte{}, data...), nil
	case len(data) > rawLen, rawLen/lz4MaxRatio > len(data):
		return nil, errRawLen(len(data), rawLen)
	}
	dst := make([]byte, rawLen)
	n, err := lz4.UncompressBlock(data, dst)
	if err != nil {
		return nil, chk.Err("lz4 decompression failed:\n%v", err)
	}
	return dst[:n], nil
}
