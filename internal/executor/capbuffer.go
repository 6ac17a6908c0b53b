package executor

import "bytes"

// capBuffer stores up to max bytes and discards the rest, tracking overflow.
type capBuffer struct {
	buf      bytes.Buffer
	max      int
	overflow bool
}

func newCapBuffer(max int) *capBuffer {
	return &capBuffer{max: max}
}

// Write keeps the first max bytes and reports the full length as written so
// the child process never sees a short write.
func (b *capBuffer) Write(p []byte) (int, error) {
	remaining := b.max - b.buf.Len()
	if remaining <= 0 {
		b.overflow = b.overflow || len(p) > 0
		return len(p), nil
	}
	if len(p) > remaining {
		b.buf.Write(p[:remaining])
		b.overflow = true
		return len(p), nil
	}
	b.buf.Write(p)
	return len(p), nil
}

func (b *capBuffer) String() string {
	return b.buf.String()
}

// Overflowed reports whether any output was discarded.
func (b *capBuffer) Overflowed() bool {
	return b.overflow
}
