package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestPipe_RoundTrip(t *testing.T) {
	a, b := Pipe()

	require.NoError(t, a.Send([]byte("hello")))
	msg, err := b.Receive()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), msg)

	require.NoError(t, b.Send([]byte("world")))
	msg, err = a.Receive()
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), msg)
}

func TestPipe_Ordered(t *testing.T) {
	a, b := Pipe()

	for i := byte(0); i < 10; i++ {
		require.NoError(t, a.Send([]byte{i}))
	}
	for i := byte(0); i < 10; i++ {
		msg, err := b.Receive()
		require.NoError(t, err)
		assert.Equal(t, []byte{i}, msg)
	}
}

func TestPipe_SendCopies(t *testing.T) {
	a, b := Pipe()

	buf := []byte("hello")
	require.NoError(t, a.Send(buf))
	buf[0] = 'X'

	msg, err := b.Receive()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), msg)
}

func TestPipe_Close(t *testing.T) {
	a, b := Pipe()

	require.NoError(t, a.Send([]byte("pending")))
	require.NoError(t, a.Close())

	// In-flight messages are still delivered after close.
	msg, err := b.Receive()
	require.NoError(t, err)
	assert.Equal(t, []byte("pending"), msg)

	_, err = b.Receive()
	assert.ErrorIs(t, err, ErrChannelClosed)
	assert.ErrorIs(t, a.Send([]byte("late")), ErrChannelClosed)

	// Closing twice is fine, from either end.
	assert.NoError(t, a.Close())
	assert.NoError(t, b.Close())
}

func TestPipe_SendAfterCloseAlwaysFails(t *testing.T) {
	a, b := Pipe()
	require.NoError(t, a.Close())

	// Buffer space must never win over the closed state.
	for i := 0; i < 200; i++ {
		assert.ErrorIs(t, a.Send([]byte("late")), ErrChannelClosed, "iteration %d", i)
		assert.ErrorIs(t, b.Send([]byte("late")), ErrChannelClosed, "iteration %d", i)
	}
}

func TestPipe_BlockingReceive(t *testing.T) {
	a, b := Pipe()

	var g errgroup.Group
	g.Go(func() error {
		msg, err := b.Receive()
		if err != nil {
			return err
		}
		assert.Equal(t, []byte("hello"), msg)
		return nil
	})

	require.NoError(t, a.Send([]byte("hello")))
	require.NoError(t, g.Wait())
}
