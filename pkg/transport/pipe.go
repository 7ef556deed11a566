package transport

import (
	"errors"
	"sync"
)

var ErrChannelClosed = errors.New("transport: channel closed")

const pipeBuffer = 64

// PipeChannel is one end of an in-process, bidirectional message pipe.
// Messages are delivered in order; Receive blocks until a message is
// available or either end is closed. Pending messages may still be received
// after close.
type PipeChannel struct {
	in   chan []byte
	out  chan []byte
	done chan struct{}
	once *sync.Once
}

// Pipe returns a connected pair of channel ends. Everything sent on one end
// is received on the other.
func Pipe() (*PipeChannel, *PipeChannel) {
	ab := make(chan []byte, pipeBuffer)
	ba := make(chan []byte, pipeBuffer)
	done := make(chan struct{})
	once := &sync.Once{}
	a := &PipeChannel{in: ba, out: ab, done: done, once: once}
	b := &PipeChannel{in: ab, out: ba, done: done, once: once}
	return a, b
}

func (p *PipeChannel) Send(msg []byte) error {
	// Check closure first: a select would otherwise pick at random between
	// the closed done channel and free buffer space in out.
	select {
	case <-p.done:
		return ErrChannelClosed
	default:
	}

	m := append([]byte(nil), msg...)
	select {
	case <-p.done:
		return ErrChannelClosed
	case p.out <- m:
		return nil
	}
}

func (p *PipeChannel) Receive() ([]byte, error) {
	select {
	case m := <-p.in:
		return m, nil
	case <-p.done:
		// Drain messages that were already in flight at close time.
		select {
		case m := <-p.in:
			return m, nil
		default:
			return nil, ErrChannelClosed
		}
	}
}

// Close tears down both ends of the pipe.
func (p *PipeChannel) Close() error {
	p.once.Do(func() { close(p.done) })
	return nil
}
