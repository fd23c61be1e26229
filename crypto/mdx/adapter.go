// Copyright (c) 2017-2018 The nox developers

package mdx

import (
	"hash"
)

// digest adapts the runtime-dispatched engine to the standard hash.Hash
// interface, so call sites that juggle several algorithms get one
// uniform type.
type digest struct {
	e *Engine[State]
}

// NewHash wraps state in a hash.Hash. Unlike the standard library
// digests, Sum finalizes the pending message and resets the state, the
// same way Engine.Final does; callers wanting a mid-stream checkpoint
// must hash a copy of the input instead.
func NewHash(state State) hash.Hash {
	return &digest{e: New[State](state)}
}

func (d *digest) Write(p []byte) (int, error) {
	d.e.Update(p)
	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	out := make([]byte, d.e.Size())
	d.e.Final(out)
	return append(in, out...)
}

func (d *digest) Reset() {
	d.e.Clear()
}

func (d *digest) Size() int {
	return d.e.Size()
}

func (d *digest) BlockSize() int {
	return d.e.BlockSize()
}
