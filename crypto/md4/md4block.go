// Copyright (c) 2017-2018 The nox developers

package md4

import (
	"encoding/binary"
	"math/bits"
)

var shift1 = [4]int{3, 7, 11, 19}
var shift2 = [4]int{3, 5, 9, 13}
var shift3 = [4]int{3, 9, 11, 15}

var xIndex2 = [16]int{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}
var xIndex3 = [16]int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}

func block(dig *state, p []byte) {
	var x [16]uint32
	for i := 0; i < 16; i++ {
		x[i] = binary.LittleEndian.Uint32(p[i*4:])
	}

	a, b, c, d := dig.s[0], dig.s[1], dig.s[2], dig.s[3]

	// Round 1.
	for i := 0; i < 16; i++ {
		f := (b & c) | (^b & d)
		a += f + x[i]
		a = bits.RotateLeft32(a, shift1[i&3])
		a, b, c, d = d, a, b, c
	}

	// Round 2.
	for i := 0; i < 16; i++ {
		g := (b & c) | (b & d) | (c & d)
		a += g + x[xIndex2[i]] + 0x5a827999
		a = bits.RotateLeft32(a, shift2[i&3])
		a, b, c, d = d, a, b, c
	}

	// Round 3.
	for i := 0; i < 16; i++ {
		h := b ^ c ^ d
		a += h + x[xIndex3[i]] + 0x6ed9eba1
		a = bits.RotateLeft32(a, shift3[i&3])
		a, b, c, d = d, a, b, c
	}

	dig.s[0] += a
	dig.s[1] += b
	dig.s[2] += c
	dig.s[3] += d
}
