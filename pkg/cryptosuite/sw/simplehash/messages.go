package simplehash

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/mr-shifu/commitment-lib/pkg/common/commitment"
)

const (
	idSize  = 8
	lenSize = 4
)

var (
	ErrMessageTruncated = errors.New("simplehash: message truncated")
	ErrTrailingBytes    = errors.New("simplehash: trailing bytes after message")
	ErrFieldTooLarge    = errors.New("simplehash: field exceeds maximum length")
)

// CommitmentMessage carries the commitment bytes for one commitment id.
//
// Wire form: 8-byte big-endian id, then a 4-byte big-endian length prefix
// followed by the commitment bytes.
type CommitmentMessage struct {
	id uint64
	c  []byte
}

func NewCommitmentMessage(id uint64, c []byte) *CommitmentMessage {
	return &CommitmentMessage{id: id, c: append([]byte(nil), c...)}
}

func (m *CommitmentMessage) ID() uint64 { return m.id }

func (m *CommitmentMessage) Commitment() []byte {
	return append([]byte(nil), m.c...)
}

func (m *CommitmentMessage) MarshalBinary() ([]byte, error) {
	buf := make([]byte, idSize, idSize+lenSize+len(m.c))
	binary.BigEndian.PutUint64(buf, m.id)
	return appendField(buf, m.c)
}

func (m *CommitmentMessage) UnmarshalBinary(data []byte) error {
	if len(data) < idSize {
		return ErrMessageTruncated
	}
	id := binary.BigEndian.Uint64(data[:idSize])

	c, rest, err := readField(data[idSize:])
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return ErrTrailingBytes
	}

	m.id = id
	m.c = append([]byte(nil), c...)
	return nil
}

// DecommitmentMessage reveals the randomness and the value that open a
// previously sent commitment.
//
// Wire form: a 4-byte big-endian length prefix followed by the randomness,
// then a 4-byte big-endian length prefix followed by the value.
type DecommitmentMessage struct {
	r []byte
	x []byte
}

func NewDecommitmentMessage(r, x []byte) *DecommitmentMessage {
	return &DecommitmentMessage{
		r: append([]byte(nil), r...),
		x: append([]byte(nil), x...),
	}
}

func (m *DecommitmentMessage) Random() []byte {
	return append([]byte(nil), m.r...)
}

func (m *DecommitmentMessage) Value() []byte {
	return append([]byte(nil), m.x...)
}

func (m *DecommitmentMessage) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, 2*lenSize+len(m.r)+len(m.x))
	buf, err := appendField(buf, m.r)
	if err != nil {
		return nil, err
	}
	return appendField(buf, m.x)
}

func (m *DecommitmentMessage) UnmarshalBinary(data []byte) error {
	r, rest, err := readField(data)
	if err != nil {
		return err
	}
	x, rest, err := readField(rest)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return ErrTrailingBytes
	}

	m.r = append([]byte(nil), r...)
	m.x = append([]byte(nil), x...)
	return nil
}

func appendField(buf, field []byte) ([]byte, error) {
	if uint64(len(field)) > math.MaxUint32 {
		return nil, ErrFieldTooLarge
	}
	var lengthBuf [lenSize]byte
	binary.BigEndian.PutUint32(lengthBuf[:], uint32(len(field)))
	buf = append(buf, lengthBuf[:]...)
	return append(buf, field...), nil
}

func readField(data []byte) (field, rest []byte, err error) {
	if len(data) < lenSize {
		return nil, nil, ErrMessageTruncated
	}
	n := binary.BigEndian.Uint32(data[:lenSize])
	data = data[lenSize:]
	if uint64(len(data)) < uint64(n) {
		return nil, nil, ErrMessageTruncated
	}
	return data[:n], data[n:], nil
}

var (
	_ commitment.CommitmentMsg   = (*CommitmentMessage)(nil)
	_ commitment.DecommitmentMsg = (*DecommitmentMessage)(nil)
)
