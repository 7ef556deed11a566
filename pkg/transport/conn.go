package transport

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// LengthPrefixSize is the size of the frame length prefix in bytes.
	LengthPrefixSize = 4

	// DefaultMaxMessageSize is the default maximum message size (64 KB).
	DefaultMaxMessageSize = 65536
)

var (
	ErrMessageTooLarge = errors.New("transport: message too large")
	ErrMessageEmpty    = errors.New("transport: message is empty")
)

// exceedsMax compares a message length against the frame size limit without
// truncating it to uint32 first, so lengths beyond 4 GiB are still rejected.
func exceedsMax(n int, max uint32) bool {
	return uint64(n) > uint64(max)
}

// Conn adapts a stream connection, typically a net.Conn, into a message
// Channel using 4-byte big-endian length-prefixed frames.
type Conn struct {
	rw             io.ReadWriter
	maxMessageSize uint32
}

func NewConn(rw io.ReadWriter) *Conn {
	return &Conn{rw: rw, maxMessageSize: DefaultMaxMessageSize}
}

func NewConnWithMaxSize(rw io.ReadWriter, maxSize uint32) *Conn {
	return &Conn{rw: rw, maxMessageSize: maxSize}
}

func (c *Conn) Send(msg []byte) error {
	if len(msg) == 0 {
		return ErrMessageEmpty
	}
	if exceedsMax(len(msg), c.maxMessageSize) {
		return fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, len(msg), c.maxMessageSize)
	}

	var lengthBuf [LengthPrefixSize]byte
	binary.BigEndian.PutUint32(lengthBuf[:], uint32(len(msg)))

	if _, err := c.rw.Write(lengthBuf[:]); err != nil {
		return fmt.Errorf("transport: write length prefix: %w", err)
	}
	if _, err := c.rw.Write(msg); err != nil {
		return fmt.Errorf("transport: write payload: %w", err)
	}
	return nil
}

func (c *Conn) Receive() ([]byte, error) {
	var lengthBuf [LengthPrefixSize]byte
	if _, err := io.ReadFull(c.rw, lengthBuf[:]); err != nil {
		return nil, fmt.Errorf("transport: read length prefix: %w", err)
	}

	n := binary.BigEndian.Uint32(lengthBuf[:])
	if n == 0 {
		return nil, ErrMessageEmpty
	}
	if n > c.maxMessageSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, n, c.maxMessageSize)
	}

	msg := make([]byte, n)
	if _, err := io.ReadFull(c.rw, msg); err != nil {
		return nil, fmt.Errorf("transport: read payload: %w", err)
	}
	return msg, nil
}
