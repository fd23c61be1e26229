// Copyright (c) 2017-2018 The nox developers

package mdx

// Slicer is an incrementally advancing, non-owning view over a
// caller-supplied byte slice. It never copies and must not outlive the
// slice it wraps.
type Slicer struct {
	data []byte
}

func NewSlicer(data []byte) Slicer {
	return Slicer{data: data}
}

// Take removes the next n bytes from the view and returns them. Taking
// more than Remaining() is a caller bug.
func (s *Slicer) Take(n int) []byte {
	if n > len(s.data) {
		panic("mdx: slicer take out of range")
	}
	taken := s.data[:n]
	s.data = s.data[n:]
	return taken
}

// TakeAll removes and returns everything left in the view.
func (s *Slicer) TakeAll() []byte {
	return s.Take(len(s.data))
}

func (s *Slicer) Remaining() int {
	return len(s.data)
}

func (s *Slicer) Empty() bool {
	return len(s.data) == 0
}
