package hash

import (
	"crypto/sha256"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// Hash is a stateless, collision-resistant digest function with a fixed
// output length. Both parties of a commitment scheme must be instantiated
// with the same Hash, otherwise every verification will reject.
type Hash interface {
	// Digest returns the digest of data. The returned slice is freshly
	// allocated and always Size() bytes long.
	Digest(data []byte) []byte

	// Size returns the digest length in bytes.
	Size() int
}

type sha256Hash struct{}

// SHA256 returns the SHA-256 digest function. This is the default hash for
// the commitment schemes in this module.
func SHA256() Hash { return sha256Hash{} }

func (sha256Hash) Digest(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

func (sha256Hash) Size() int { return sha256.Size }

type sha3Hash struct{}

// SHA3 returns the SHA3-256 digest function.
func SHA3() Hash { return sha3Hash{} }

func (sha3Hash) Digest(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}

func (sha3Hash) Size() int { return 32 }

type blake3Hash struct{}

// Blake3 returns the BLAKE3 digest function truncated to 256 bits.
func Blake3() Hash { return blake3Hash{} }

func (blake3Hash) Digest(data []byte) []byte {
	sum := blake3.Sum256(data)
	return sum[:]
}

func (blake3Hash) Size() int { return 32 }
