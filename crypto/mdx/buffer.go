// Copyright (c) 2017-2018 The nox developers

package mdx

// AlignmentBuffer owns the current partial block of a streaming hash.
// It absorbs arbitrarily chunked input and hands out whole blocks to the
// compression function, copying only what is needed to stitch a block
// together across Update calls.
//
// The fill position stays strictly below the block size except at the
// instant a completed block is consumed, so there is always room left
// for the padding marker byte.
type AlignmentBuffer struct {
	block []byte
	pos   int
}

func NewAlignmentBuffer(blockSize int) AlignmentBuffer {
	return AlignmentBuffer{block: make([]byte, blockSize)}
}

func (b *AlignmentBuffer) Size() int {
	return len(b.block)
}

// InAlignment reports whether the buffer holds no pending bytes.
func (b *AlignmentBuffer) InAlignment() bool {
	return b.pos == 0
}

// UntilAligned returns how many bytes are still needed to complete the
// pending block.
func (b *AlignmentBuffer) UntilAligned() int {
	return len(b.block) - b.pos
}

// ReadyToConsume reports whether exactly one full block is pending.
func (b *AlignmentBuffer) ReadyToConsume() bool {
	return b.pos == len(b.block)
}

// Append copies p into the buffer. p must fit into the remaining
// capacity.
func (b *AlignmentBuffer) Append(p []byte) {
	if len(p) > b.UntilAligned() {
		panic("mdx: append exceeds block capacity")
	}
	copy(b.block[b.pos:], p)
	b.pos += len(p)
}

// HandleUnaligned completes a pending partial block from in, if there is
// one and in carries enough bytes. It returns the completed block and
// true, or nil and false when no block was stitched because the buffer
// is empty or in ran dry (in the latter case the shortfall is absorbed
// into the buffer).
func (b *AlignmentBuffer) HandleUnaligned(in *Slicer) ([]byte, bool) {
	if b.InAlignment() || in.Empty() {
		return nil, false
	}
	need := b.UntilAligned()
	if in.Remaining() < need {
		b.Append(in.TakeAll())
		return nil, false
	}
	b.Append(in.Take(need))
	return b.Consume(), true
}

// AlignedData takes the longest whole-block prefix of in's remaining
// bytes and returns it together with the block count. The returned slice
// aliases the caller's input; nothing is copied. Only meaningful while
// InAlignment().
func (b *AlignmentBuffer) AlignedData(in *Slicer) ([]byte, int) {
	blocks := in.Remaining() / len(b.block)
	return in.Take(blocks * len(b.block)), blocks
}

// FillWithZeros zero-fills from the fill position to the end of the
// block, leaving the buffer ready to consume.
func (b *AlignmentBuffer) FillWithZeros() {
	for i := b.pos; i < len(b.block); i++ {
		b.block[i] = 0
	}
	b.pos = len(b.block)
}

// LastBytes returns a writable view over the final n bytes of a block
// that has been filled to capacity. Used to overwrite the right-most
// zero padding with the length counter.
func (b *AlignmentBuffer) LastBytes(n int) []byte {
	if !b.ReadyToConsume() {
		panic("mdx: buffer not filled to capacity")
	}
	return b.block[len(b.block)-n:]
}

// Consume hands out the pending full block and resets the fill position.
func (b *AlignmentBuffer) Consume() []byte {
	if !b.ReadyToConsume() {
		panic("mdx: no full block to consume")
	}
	b.pos = 0
	return b.block
}

// Clear drops any pending bytes. Digest state is not touched here.
func (b *AlignmentBuffer) Clear() {
	b.pos = 0
}
