// Copyright (c) 2017-2018 The nox developers

package md5

import (
	gomd5 "crypto/md5"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noxproject/mdhash/common/util"
)

type _Golden struct {
	out string
	in  string
}

// RFC 1321 test suite
var goldenTest = []_Golden{
	{"d41d8cd98f00b204e9800998ecf8427e", ""},
	{"0cc175b9c0f1b6a831c399e269772661", "a"},
	{"900150983cd24fb0d6963f7d28e17f72", "abc"},
	{"f96b697d7cb7938d525a2f31aaf161d0", "message digest"},
	{"c3fcd3d76192e4007dfb496cca67e13b", "abcdefghijklmnopqrstuvwxyz"},
	{"d174ab98d277d9f5a5611c2c9f419d9f", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"},
	{"57edf4a22be3c955ac49da2e2107b67a", "12345678901234567890123456789012345678901234567890123456789012345678901234567890"},
}

func TestGolden(t *testing.T) {
	for _, g := range goldenTest {
		sum := Sum([]byte(g.in))
		assert.Equal(t, g.out, hex.EncodeToString(sum[:]), "md5(%q)", g.in)

		h := New()
		h.Write([]byte(g.in))
		assert.Equal(t, util.MustDecodeHexString(g.out), h.Sum(nil), "md5(%q)", g.in)
	}
}

// Every length through twice the block size, compared against the
// standard library. Covers the padding boundaries at 55/56/57 and
// 119/120/121 and the one-under/exact/one-over block lengths.
func TestAgainstStdlib(t *testing.T) {
	for n := uint(0); n <= 2*BlockSize+2; n++ {
		data := util.ReadSizedRand(nil, n)
		want := gomd5.Sum(data)
		got := Sum(data)
		assert.Equal(t, want[:], got[:], "length %d", n)
	}
}

func TestChunkedWrites(t *testing.T) {
	data := util.ReadSizedRand(nil, 1000)
	want := Sum(data)

	h := New()
	for _, n := range []int{1, 62, 63, 64, 65, 500, 128} {
		h.Write(data[:n])
		data = data[n:]
	}
	h.Write(data)
	assert.Equal(t, want[:], h.Sum(nil))
}

func TestSizes(t *testing.T) {
	h := New()
	assert.Equal(t, Size, h.Size())
	assert.Equal(t, BlockSize, h.BlockSize())
	assert.Equal(t, Size, len(h.Sum(nil)))
}
