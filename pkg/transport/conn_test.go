package transport

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConn_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	c := NewConn(&buf)

	require.NoError(t, c.Send([]byte("hello")))
	require.NoError(t, c.Send([]byte("world")))

	msg, err := c.Receive()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), msg)

	msg, err = c.Receive()
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), msg)
}

func TestConn_EmptyMessage(t *testing.T) {
	var buf bytes.Buffer
	c := NewConn(&buf)

	assert.ErrorIs(t, c.Send(nil), ErrMessageEmpty)

	buf.Write([]byte{0, 0, 0, 0})
	_, err := c.Receive()
	assert.ErrorIs(t, err, ErrMessageEmpty)
}

func TestConn_TooLarge(t *testing.T) {
	var buf bytes.Buffer
	c := NewConnWithMaxSize(&buf, 4)

	assert.ErrorIs(t, c.Send([]byte("hello")), ErrMessageTooLarge)

	// A peer declaring an oversized frame is rejected before any payload
	// read.
	buf.Write([]byte{0, 0, 0, 5})
	_, err := c.Receive()
	assert.ErrorIs(t, err, ErrMessageTooLarge)
}

func TestExceedsMax(t *testing.T) {
	assert.False(t, exceedsMax(4, 4))
	assert.True(t, exceedsMax(5, 4))
	assert.False(t, exceedsMax(1<<32-1, 1<<32-1))

	// A length beyond 4 GiB must not slip past the guard by truncation of
	// its low 32 bits.
	assert.True(t, exceedsMax(1<<32+5, DefaultMaxMessageSize))
	assert.True(t, exceedsMax(1<<32, 1<<32-1))
}

func TestConn_TruncatedFrame(t *testing.T) {
	var buf bytes.Buffer
	c := NewConn(&buf)

	buf.Write([]byte{0, 0})
	_, err := c.Receive()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	buf.Reset()
	buf.Write([]byte{0, 0, 0, 5, 'h', 'e'})
	_, err = c.Receive()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
