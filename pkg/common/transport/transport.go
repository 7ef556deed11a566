package transport

// Channel is a blocking, ordered, reliable byte-message link between two
// parties of a protocol session. Send delivers one message; Receive blocks
// until one complete message is available. A channel failure is fatal to the
// in-progress operation and is surfaced to the caller; retry policy, if any,
// belongs to the implementation behind the channel, never to the protocol
// core.
type Channel interface {
	Send(msg []byte) error
	Receive() ([]byte, error)
}
