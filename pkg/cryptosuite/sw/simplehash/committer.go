package simplehash

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/mr-shifu/commitment-lib/core/hash"
	"github.com/mr-shifu/commitment-lib/lib/params"
	"github.com/mr-shifu/commitment-lib/pkg/common/commitment"
	comm_commitstore "github.com/mr-shifu/commitment-lib/pkg/common/commitstore"
	"github.com/mr-shifu/commitment-lib/pkg/common/transport"
	"github.com/mr-shifu/commitment-lib/pkg/commitstore"
)

// Committer runs the committing side of the SimpleHash scheme:
//
//	Commit phase
//		SAMPLE a random value r <- {0,1}^n
//		COMPUTE c = H(r || x)
//		SEND (id, c) to R
//	Decommit phase
//		SEND (r, x) to R
//
// Binding follows from the collision resistance of the hash; hiding from the
// fresh n bytes of randomness mixed into every commitment. Several
// commitments may be outstanding at once under distinct ids.
type Committer struct {
	channel transport.Channel
	hash    hash.Hash
	n       int
	random  io.Reader
	store   comm_commitstore.CommitStore
}

// NewCommitter creates a committer over channel with an explicit hash,
// security parameter n (bytes of randomness per commitment), randomness
// source and commitment store. The receiver must be instantiated with the
// same hash and security parameter.
func NewCommitter(channel transport.Channel, h hash.Hash, n int, random io.Reader, store comm_commitstore.CommitStore) *Committer {
	return &Committer{
		channel: channel,
		hash:    h,
		n:       n,
		random:  random,
		store:   store,
	}
}

// NewDefaultCommitter creates a committer with SHA-256, 32 bytes of
// randomness per commitment, the operating system's randomness source and a
// fresh in-memory store.
func NewDefaultCommitter(channel transport.Channel) *Committer {
	return NewCommitter(channel, hash.SHA256(), params.SecBytes, rand.Reader, commitstore.NewInMemoryCommitStore())
}

// GenerateCommitmentMsg samples fresh randomness r, computes c = H(r || x)
// for the raw bytes x of value, records (r, x, c) under id and returns the
// commitment message. Committing again under an id that has not been deleted
// fails, preserving one binding per id.
func (cmtr *Committer) GenerateCommitmentMsg(value commitment.CommitValue, id uint64) (commitment.CommitmentMsg, error) {
	rv, err := cmtr.sampleRandomValue()
	if err != nil {
		return nil, err
	}

	r := rv.Bytes()
	x := value.Bytes()
	c := computeCommitment(cmtr.hash, r, x)

	record := &comm_commitstore.Commitment{
		Commitment: c,
		Random:     r,
		Value:      x,
	}
	if err := cmtr.store.ImportNew(id, record); err != nil {
		return nil, fmt.Errorf("simplehash: commitment id %d: %w", id, err)
	}

	return NewCommitmentMessage(id, c), nil
}

// GenerateDecommitmentMsg returns the opening (r, x) of the commitment
// recorded under id. The record is kept, so re-opening the same id yields
// the same message.
func (cmtr *Committer) GenerateDecommitmentMsg(id uint64) (commitment.DecommitmentMsg, error) {
	record, err := cmtr.store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("simplehash: commitment id %d: %w", id, err)
	}
	return NewDecommitmentMessage(record.Random, record.Value), nil
}

// Commit generates a commitment message for value under id and sends it.
func (cmtr *Committer) Commit(value commitment.CommitValue, id uint64) error {
	msg, err := cmtr.GenerateCommitmentMsg(value, id)
	if err != nil {
		return err
	}
	mb, err := msg.MarshalBinary()
	if err != nil {
		return err
	}
	if err := cmtr.channel.Send(mb); err != nil {
		return fmt.Errorf("simplehash: send commitment: %w", err)
	}
	return nil
}

// Decommit sends the opening of the commitment recorded under id.
func (cmtr *Committer) Decommit(id uint64) error {
	msg, err := cmtr.GenerateDecommitmentMsg(id)
	if err != nil {
		return err
	}
	mb, err := msg.MarshalBinary()
	if err != nil {
		return err
	}
	if err := cmtr.channel.Send(mb); err != nil {
		return fmt.Errorf("simplehash: send decommitment: %w", err)
	}
	return nil
}

// SampleRandomCommitValue returns a committable value wrapping n freshly
// sampled random bytes. It does not touch the id-keyed store.
func (cmtr *Committer) SampleRandomCommitValue() (commitment.CommitValue, error) {
	x := make([]byte, cmtr.n)
	if _, err := io.ReadFull(cmtr.random, x); err != nil {
		return commitment.CommitValue{}, fmt.Errorf("simplehash: sample commit value: %w", err)
	}
	return commitment.NewCommitValue(x), nil
}

// GenerateCommitValue wraps raw bytes as a committable value.
func (cmtr *Committer) GenerateCommitValue(x []byte) commitment.CommitValue {
	return commitment.NewCommitValue(x)
}

// GenerateBytesFromCommitValue unwraps a committable value to raw bytes.
func (cmtr *Committer) GenerateBytesFromCommitValue(value commitment.CommitValue) []byte {
	return value.Bytes()
}

// PreProcessValues returns nil: the SimpleHash scheme has no preprocessing
// phase.
func (cmtr *Committer) PreProcessValues() [][]byte { return nil }

func (cmtr *Committer) sampleRandomValue() (commitment.RandomValue, error) {
	r := make([]byte, cmtr.n)
	if _, err := io.ReadFull(cmtr.random, r); err != nil {
		return commitment.RandomValue{}, fmt.Errorf("simplehash: sample randomness: %w", err)
	}
	return commitment.NewRandomValue(r), nil
}

// computeCommitment hashes the concatenation r || x.
func computeCommitment(h hash.Hash, r, x []byte) []byte {
	buf := make([]byte, 0, len(r)+len(x))
	buf = append(buf, r...)
	buf = append(buf, x...)
	return h.Digest(buf)
}

var _ commitment.Committer = (*Committer)(nil)
