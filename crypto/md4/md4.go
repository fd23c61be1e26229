// Copyright (c) 2017-2018 The nox developers

// Package md4 implements the MD4 hash (RFC 1320) on top of the mdx
// streaming core. MD4 is thoroughly broken; provided only for legacy
// protocol compatibility.
package md4

import (
	"hash"

	"github.com/noxproject/mdhash/crypto/mdx"
)

// Size is the length of an MD4 digest in bytes.
const Size = 16

// BlockSize is the MD4 compression block length in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

type state struct {
	s [4]uint32
}

func (d *state) Init() {
	d.s = [4]uint32{init0, init1, init2, init3}
}

func (d *state) Compress(p []byte, n int) {
	for ; n > 0; n-- {
		block(d, p[:BlockSize])
		p = p[BlockSize:]
	}
}

func (d *state) Words() []uint32 {
	return d.s[:]
}

func (d *state) Params() mdx.Params {
	return mdx.Params{
		BlockSize: BlockSize,
		Size:      Size,
		CtrSize:   8,
		BitOrder:  mdx.BigEndian,
		ByteOrder: mdx.LittleEndian,
	}
}

// New returns a hash.Hash computing the MD4 checksum.
func New() hash.Hash {
	return mdx.NewHash(new(state))
}

// Sum returns the MD4 checksum of data.
func Sum(data []byte) [Size]byte {
	e := mdx.New(new(state))
	e.Update(data)
	var out [Size]byte
	e.Final(out[:])
	return out
}
