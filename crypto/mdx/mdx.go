// Copyright (c) 2017-2018 The nox developers

// Package mdx implements the streaming core shared by the MDx family of
// hash functions (MD4, MD5, SHA-1 and friends): buffering of partial
// blocks, bit padding, length encoding and digest extraction. The per
// algorithm compression function is plugged in through the State
// contract; crypto/md4, crypto/md5 and crypto/sha1 in this repository
// are such plug-ins.
package mdx

import (
	"encoding/binary"
	"fmt"
)

// Endian selects a significance order. An algorithm carries two
// independent Endian axes: BitOrder governs which bit of the padding
// marker byte is set, ByteOrder governs the encoding of the length
// counter and the digest words. They are never the same knob.
type Endian int

const (
	LittleEndian Endian = iota
	BigEndian
)

// Params are the fixed constants of one concrete hash algorithm. They
// define wire-exact behavior and must match the published specification
// of the target algorithm byte for byte.
type Params struct {
	BlockSize int    // bytes per compression block, power of two, >= 64
	Size      int    // digest output bytes, >= 16
	CtrSize   int    // length counter field bytes, power of two, >= 8, < BlockSize
	BitOrder  Endian // bit order of the padding marker byte
	ByteOrder Endian // byte order of counter and digest words
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// check rejects plug-in programming errors. These are construction-time
// assertions, never reachable from input data.
func (p Params) check() {
	if p.BlockSize < 64 || !isPowerOfTwo(p.BlockSize) {
		panic(fmt.Sprintf("mdx: invalid block size %d", p.BlockSize))
	}
	if p.Size < 16 {
		panic(fmt.Sprintf("mdx: invalid output size %d", p.Size))
	}
	if p.CtrSize < 8 || !isPowerOfTwo(p.CtrSize) || p.CtrSize >= p.BlockSize {
		panic(fmt.Sprintf("mdx: invalid counter size %d", p.CtrSize))
	}
}

// State is the compression plug-in contract.
type State interface {
	// Init resets the digest words to the algorithm's initial vector.
	Init()

	// Compress folds n whole blocks into the digest words, strictly in
	// order. It must be a pure function of the state and the block
	// bytes and must not retain the slice after returning.
	Compress(blocks []byte, n int)

	// Words exposes the digest words for serialization.
	Words() []uint32

	// Params returns the algorithm's fixed constants.
	Params() Params
}

// Engine drives the Merkle-Damgard construction over one plug-in state.
// Instantiating it with a concrete state type compiles the dispatch
// away; instantiating it with the State interface itself gives the
// runtime-dispatched rendition used by NewHash. Both produce identical
// digests for identical input.
//
// An Engine must not be used from multiple goroutines at once. Distinct
// engines share nothing and may run concurrently.
type Engine[S State] struct {
	state S
	p     Params
	buf   AlignmentBuffer
	count uint64
}

// New builds an engine around state. It panics if the plug-in constants
// violate the family constraints or if the state exposes fewer digest
// words than the output size needs.
func New[S State](state S) *Engine[S] {
	p := state.Params()
	p.check()
	if len(state.Words())*4 < p.Size {
		panic(fmt.Sprintf("mdx: %d digest words cannot fill %d output bytes",
			len(state.Words()), p.Size))
	}
	e := &Engine[S]{state: state, p: p, buf: NewAlignmentBuffer(p.BlockSize)}
	e.Clear()
	return e
}

func (e *Engine[S]) Size() int {
	return e.p.Size
}

func (e *Engine[S]) BlockSize() int {
	return e.p.BlockSize
}

// Update absorbs p. Input may be chunked arbitrarily across calls: the
// sequence of compression calls, and therefore the digest, depends only
// on the concatenated bytes. A pending partial block is completed and
// compressed first, whole blocks are then compressed straight out of p
// without copying, and the tail is buffered.
func (e *Engine[S]) Update(p []byte) {
	in := NewSlicer(p)
	for !in.Empty() {
		if block, ok := e.buf.HandleUnaligned(&in); ok {
			e.state.Compress(block, 1)
		}
		if e.buf.InAlignment() {
			if data, blocks := e.buf.AlignedData(&in); blocks > 0 {
				e.state.Compress(data, blocks)
			}
			if !in.Empty() {
				e.buf.Append(in.TakeAll())
			}
		}
	}
	e.count += uint64(len(p))
}

// Final writes the digest into out, which must hold at least Size()
// bytes, and resets the engine so it is immediately reusable for a new
// message.
func (e *Engine[S]) Final(out []byte) {
	if len(out) < e.p.Size {
		panic("mdx: output buffer smaller than digest size")
	}
	e.appendPaddingBit()
	e.appendCounterAndCompress()
	e.copyOut(out)
	e.Clear()
}

// Clear reinitializes the digest words, the pending block and the byte
// counter. Idempotent, safe at any point.
func (e *Engine[S]) Clear() {
	e.state.Init()
	e.buf.Clear()
	e.count = 0
}

// appendPaddingBit appends the single padding bit as one marker byte.
// Update never leaves the buffer exactly full, so there is always room.
func (e *Engine[S]) appendPaddingBit() {
	marker := byte(0x01)
	if e.p.BitOrder == BigEndian {
		marker = 0x80
	}
	e.buf.Append([]byte{marker})
}

// appendCounterAndCompress closes the message. If the final block cannot
// hold the counter field any more, the block is zero-filled and
// compressed early and a fresh one is started. The exact trigger is
// UntilAligned() < CtrSize; reference digests at the boundary lengths
// depend on it.
func (e *Engine[S]) appendCounterAndCompress() {
	if e.buf.UntilAligned() < e.p.CtrSize {
		e.buf.FillWithZeros()
		e.state.Compress(e.buf.Consume(), 1)
	}
	e.buf.FillWithZeros()

	// The bit count is a 64-bit quantity placed at the low-order end of
	// the CtrSize-byte field; any wider field keeps its high bytes zero.
	bits := e.count * 8
	ctr := e.buf.LastBytes(e.p.CtrSize)
	if e.p.ByteOrder == BigEndian {
		binary.BigEndian.PutUint64(ctr[len(ctr)-8:], bits)
	} else {
		binary.LittleEndian.PutUint64(ctr[:8], bits)
	}

	e.state.Compress(e.buf.Consume(), 1)
}

// copyOut serializes the digest words into out, Size() bytes exactly.
func (e *Engine[S]) copyOut(out []byte) {
	words := e.state.Words()
	if e.p.ByteOrder == BigEndian {
		for i := 0; i < e.p.Size/4; i++ {
			binary.BigEndian.PutUint32(out[i*4:], words[i])
		}
	} else {
		for i := 0; i < e.p.Size/4; i++ {
			binary.LittleEndian.PutUint32(out[i*4:], words[i])
		}
	}
}
