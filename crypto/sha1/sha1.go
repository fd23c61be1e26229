// Copyright (c) 2017-2018 The nox developers

// Package sha1 implements the SHA-1 hash (FIPS 180-1) on top of the mdx
// streaming core.
package sha1

import (
	"hash"

	"github.com/noxproject/mdhash/crypto/mdx"
)

// Size is the length of a SHA-1 digest in bytes.
const Size = 20

// BlockSize is the SHA-1 compression block length in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
	init4 = 0xc3d2e1f0
)

type state struct {
	s [5]uint32
}

func (d *state) Init() {
	d.s = [5]uint32{init0, init1, init2, init3, init4}
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
		ByteOrder: mdx.BigEndian,
	}
}

// New returns a hash.Hash computing the SHA-1 checksum.
func New() hash.Hash {
	return mdx.NewHash(new(state))
}

// Sum returns the SHA-1 checksum of data.
func Sum(data []byte) [Size]byte {
	e := mdx.New(new(state))
	e.Update(data)
	var out [Size]byte
	e.Final(out[:])
	return out
}
