package capi

import "github.com/reoring/urlkit"

// OutputBuffer receives one variable-length result. Implementations are
// call-scoped; the arena never retains them.
type OutputBuffer interface {
	// SetSize declares the number of bytes about to be written.
	SetSize(n int)
	// Buffer returns a writable region of at least the declared size, or
	// nil when none could be obtained.
	Buffer() []byte
}

// ByteBuffer is an OutputBuffer backed by a Go slice. It can be reused
// across calls.
type ByteBuffer struct {
	b []byte
}

func (bb *ByteBuffer) SetSize(n int) {
	if cap(bb.b) < n {
		bb.b = make([]byte, n)
	}
	bb.b = bb.b[:n]
}

func (bb *ByteBuffer) Buffer() []byte { return bb.b }

// Bytes returns the bytes written by the last call.
func (bb *ByteBuffer) Bytes() []byte { return bb.b }

func (bb *ByteBuffer) String() string { return string(bb.b) }

// writeString runs the size, buffer, copy sequence for s.
func writeString(out OutputBuffer, s string) urlkit.Code {
	if out == nil {
		return urlkit.CodeInvalidArg
	}
	out.SetSize(len(s))
	if len(s) == 0 {
		return urlkit.CodeOK
	}
	buf := out.Buffer()
	if len(buf) < len(s) {
		return urlkit.CodeFailure
	}
	copy(buf, s)
	return urlkit.CodeOK
}
