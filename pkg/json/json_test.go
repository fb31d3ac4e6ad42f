package json

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
	Link string   `json:"link"`
}

func TestWriteIndented(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteIndented(&out, sample{Name: "a", Tags: []string{"x"}, Link: "<b>"}))

	assert.Contains(t, out.String(), "\n  \"name\": \"a\",\n")
	assert.Contains(t, out.String(), `"link": "<b>"`)
	assert.True(t, bytes.HasSuffix(out.Bytes(), []byte("}\n")))
}

func TestWriteIndented_ReusesBuffers(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteIndented(&out, 1))
	before := Stats()
	require.NoError(t, WriteIndented(&out, 2))
	after := Stats()

	assert.Equal(t, before.Created, after.Created)
	assert.Greater(t, after.Reused, before.Reused)
	assert.Equal(t, "1\n2\n", out.String())
}

type unencodable struct{}

func (unencodable) MarshalJSON() ([]byte, error) { return nil, errors.New("boom") }

func TestWriteIndented_ErrorWritesNothing(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, WriteIndented(&out, unencodable{}))
	assert.Zero(t, out.Len())
}

func TestBuffersComeBackEmpty(t *testing.T) {
	buf := GetBuffer()
	buf.WriteString("dirty")
	PutBuffer(buf)

	again := GetBuffer()
	defer PutBuffer(again)
	assert.Zero(t, again.Len())
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(sample{Name: "n"})
	require.NoError(t, err)

	var got sample
	require.NoError(t, Unmarshal(data, &got))
	assert.Equal(t, "n", got.Name)
}
