package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash_Size(t *testing.T) {
	for _, h := range []Hash{SHA256(), SHA3(), Blake3()} {
		assert.Equal(t, 32, h.Size())
		assert.Len(t, h.Digest([]byte("hello")), h.Size())
	}
}

func TestHash_Deterministic(t *testing.T) {
	for _, h := range []Hash{SHA256(), SHA3(), Blake3()} {
		d1 := h.Digest([]byte("hello"))
		d2 := h.Digest([]byte("hello"))
		assert.Equal(t, d1, d2)

		d3 := h.Digest([]byte("hellp"))
		assert.NotEqual(t, d1, d3)
	}
}

func TestHash_DigestCopies(t *testing.T) {
	h := SHA256()
	d1 := h.Digest([]byte("hello"))
	d2 := h.Digest([]byte("hello"))
	d1[0] ^= 0xff
	assert.NotEqual(t, d1, d2)
}
