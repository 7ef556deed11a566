package commitstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitment_BytesRoundTrip(t *testing.T) {
	cmt := &Commitment{
		Commitment: []byte{1, 2, 3},
		Random:     []byte{4, 5, 6},
		Value:      []byte("hello"),
	}

	cb, err := cmt.Bytes()
	require.NoError(t, err)

	restored, err := FromBytes(cb)
	require.NoError(t, err)
	assert.Equal(t, cmt, restored)
}

func TestCommitment_ReceiverSideRecord(t *testing.T) {
	cmt := &Commitment{Commitment: []byte{1, 2, 3}}

	cb, err := cmt.Bytes()
	require.NoError(t, err)

	restored, err := FromBytes(cb)
	require.NoError(t, err)
	assert.Equal(t, cmt.Commitment, restored.Commitment)
	assert.Nil(t, restored.Random)
	assert.Nil(t, restored.Value)
}

func TestCommitment_FromBytesRejectsGarbage(t *testing.T) {
	_, err := FromBytes([]byte{0xff, 0xff, 0xff})
	assert.Error(t, err)
}
