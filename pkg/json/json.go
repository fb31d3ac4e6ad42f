// Package json renders JSON through goccy/go-json, staging output in buffers
// borrowed from a bounded pool.
package json

import (
	"bytes"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/ajitpratap0/patternlab/pkg/pool"
)

// BufferPoolCapacity bounds the idle buffers kept between calls.
const BufferPoolCapacity = 8

// maxPooledBuffer keeps unusually large buffers out of the pool.
const maxPooledBuffer = 1 << 20

var buffers = pool.New(BufferPoolCapacity,
	func() *bytes.Buffer { return bytes.NewBuffer(make([]byte, 0, 4096)) },
	(*bytes.Buffer).Reset,
	pool.WithName("json-buffer"),
)

// GetBuffer borrows an empty buffer.
func GetBuffer() *bytes.Buffer {
	return buffers.Borrow()
}

// PutBuffer returns buf to the pool. Buffers over 1MiB are dropped.
func PutBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledBuffer {
		return
	}
	buffers.Release(buf)
}

// Marshal is a drop-in replacement for encoding/json.Marshal.
func Marshal(v any) ([]byte, error) {
	return gojson.Marshal(v)
}

// Unmarshal is a drop-in replacement for encoding/json.Unmarshal.
func Unmarshal(data []byte, v any) error {
	return gojson.Unmarshal(data, v)
}

// MarshalIndent is a drop-in replacement for encoding/json.MarshalIndent.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(v, prefix, indent)
}

// WriteIndented writes v to w indented by two spaces and followed by a
// newline. Nothing is written when encoding fails.
func WriteIndented(w io.Writer, v any) error {
	buf := GetBuffer()
	defer PutBuffer(buf)

	enc := gojson.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// Stats reports the buffer pool counters.
func Stats() pool.Stats {
	return buffers.Stats()
}
