// Copyright (c) 2017-2018 The nox developers

package md4

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	xmd4 "golang.org/x/crypto/md4"

	"github.com/noxproject/mdhash/common/util"
)

type _Golden struct {
	out string
	in  string
}

// RFC 1320 test suite
var goldenTest = []_Golden{
	{"31d6cfe0d16ae931b73c59d7e0c089c0", ""},
	{"bde52cb31de33e46245e05fbdbd6fb24", "a"},
	{"a448017aaf21d8525fc10ae87aa6729d", "abc"},
	{"d9130a8164549fe818874806e1c7014b", "message digest"},
	{"d79e1c308aa5bbcdeea8ed63df412da9", "abcdefghijklmnopqrstuvwxyz"},
	{"043f8582f241db351ce627e153e7f0e4", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"},
	{"e33b4ddc9c38f2199c3e7b164fcc0536", "12345678901234567890123456789012345678901234567890123456789012345678901234567890"},
}

func TestGolden(t *testing.T) {
	for _, g := range goldenTest {
		sum := Sum([]byte(g.in))
		assert.Equal(t, g.out, hex.EncodeToString(sum[:]), "md4(%q)", g.in)
	}
}

// Cross-checked against the independent golang.org/x/crypto
// implementation over every length through twice the block size.
func TestAgainstXCrypto(t *testing.T) {
	for n := uint(0); n <= 2*BlockSize+2; n++ {
		data := util.ReadSizedRand(nil, n)

		ref := xmd4.New()
		ref.Write(data)
		want := ref.Sum(nil)

		got := Sum(data)
		assert.Equal(t, want, got[:], "length %d", n)
	}
}

func TestChunkedWrites(t *testing.T) {
	data := util.ReadSizedRand(nil, 777)
	want := Sum(data)

	h := New()
	for len(data) > 0 {
		n := 13
		if n > len(data) {
			n = len(data)
		}
		h.Write(data[:n])
		data = data[n:]
	}
	assert.Equal(t, want[:], h.Sum(nil))
}
