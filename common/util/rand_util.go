// Copyright (c) 2017-2018 The nox developers

package util

import (
	cryptorand "crypto/rand"
	"encoding/hex"
	"io"
)

// ReadSizedRand read size bytes from input rand
// if input rand is nil, use crypto/rand
func ReadSizedRand(rand io.Reader, size uint) []byte {
	readBuff := make([]byte, size)
	if rand == nil {
		rand = cryptorand.Reader
	}
	_, err := io.ReadFull(rand, readBuff)
	if err != nil {
		panic("reading from crypto/rand failed: " + err.Error())
	}
	return readBuff
}

// MustDecodeHexString wrap the calling to hex.DecodeString() method to return
// the bytes represented by the hexadecimal string. It panics if an error
// occurs. This is useful in the tests or some special cases.
func MustDecodeHexString(hexStr string) []byte {
	bytes, err := hex.DecodeString(hexStr)
	if err != nil {
		panic("invalid hex string in " + err.Error() + ", hex: " + hexStr)
	}
	return bytes
}
