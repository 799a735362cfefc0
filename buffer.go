package apns

import (
	"bytes"
	"sync"
)

var buffers = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

// getBuffer returns an empty byte buffer from the pool.
func getBuffer() *bytes.Buffer {
	return buffers.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool.
func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	buffers.Put(buf)
}

// body wraps a pooled payload buffer as a request body: the HTTP transport
// closes the body when it is done with it, returning the buffer to the
// pool.
type body struct{ *bytes.Buffer }

func (b body) Close() error {
	putBuffer(b.Buffer)
	return nil
}
