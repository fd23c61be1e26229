// Copyright (c) 2017-2018 The nox developers

package md5

import (
	"hash"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noxproject/mdhash/common/util"
)

// the finalize-and-reset contract makes cached digests reusable, so a
// sync.Pool of them is safe; whether it is faster is hardware-dependent
var pool = &sync.Pool{New: func() interface{} {
	return New()
}}

func sumWithPool(b []byte) []byte {
	h := pool.Get().(hash.Hash)
	defer pool.Put(h)
	h.Write(b)
	return h.Sum(nil)
}

// Ensure same result with the normal way
func TestSumWithPoolGotSameResult(t *testing.T) {
	data := []byte("Test data")
	want := Sum(data)
	assert.Equal(t, want[:], sumWithPool(data))
	assert.Equal(t, want[:], sumWithPool(data))
}

func BenchmarkSumWithPool(b *testing.B) {
	data := util.ReadSizedRand(nil, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sumWithPool(data)
	}
}

func BenchmarkSumWithoutPool(b *testing.B) {
	data := util.ReadSizedRand(nil, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum(data)
	}
}

func BenchmarkSum8K(b *testing.B) {
	data := util.ReadSizedRand(nil, 8192)
	b.SetBytes(8192)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum(data)
	}
}
