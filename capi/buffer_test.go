package capi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/urlkit"
)

// recordingBuffer logs every callback so tests can check the protocol order.
type recordingBuffer struct {
	calls []string
	buf   []byte
	// nilBuffer makes Buffer return nil; short hands out one byte too few.
	nilBuffer bool
	short     bool
}

func (r *recordingBuffer) SetSize(n int) {
	r.calls = append(r.calls, fmt.Sprintf("size:%d", n))
	switch {
	case r.nilBuffer:
		r.buf = nil
	case r.short && n > 0:
		r.buf = make([]byte, n-1)
	default:
		r.buf = make([]byte, n)
	}
}

func (r *recordingBuffer) Buffer() []byte {
	r.calls = append(r.calls, "buffer")
	return r.buf
}

func TestWriteString_Protocol(t *testing.T) {
	out := &recordingBuffer{}
	assert.Equal(t, urlkit.CodeOK, writeString(out, "abc"))
	assert.Equal(t, []string{"size:3", "buffer"}, out.calls)
	assert.Equal(t, "abc", string(out.buf))
}

func TestWriteString_EmptySkipsBuffer(t *testing.T) {
	out := &recordingBuffer{}
	assert.Equal(t, urlkit.CodeOK, writeString(out, ""))
	assert.Equal(t, []string{"size:0"}, out.calls)
}

func TestWriteString_Failures(t *testing.T) {
	assert.Equal(t, urlkit.CodeInvalidArg, writeString(nil, "x"))
	assert.Equal(t, urlkit.CodeFailure, writeString(&recordingBuffer{nilBuffer: true}, "x"))
	assert.Equal(t, urlkit.CodeFailure, writeString(&recordingBuffer{short: true}, "xyz"))
}

func TestByteBuffer_Reuse(t *testing.T) {
	var bb ByteBuffer
	assert.Equal(t, urlkit.CodeOK, writeString(&bb, "longer value"))
	assert.Equal(t, "longer value", bb.String())
	assert.Equal(t, urlkit.CodeOK, writeString(&bb, "short"))
	assert.Equal(t, "short", bb.String())
	assert.Equal(t, urlkit.CodeOK, writeString(&bb, ""))
	assert.Empty(t, bb.Bytes())
}
