package simplehash

import (
	"bytes"
	"fmt"

	"github.com/mr-shifu/commitment-lib/core/hash"
	"github.com/mr-shifu/commitment-lib/lib/params"
	"github.com/mr-shifu/commitment-lib/pkg/common/commitment"
	comm_commitstore "github.com/mr-shifu/commitment-lib/pkg/common/commitstore"
	"github.com/mr-shifu/commitment-lib/pkg/common/transport"
	"github.com/mr-shifu/commitment-lib/pkg/commitstore"
)

// Receiver runs the receiving side of the SimpleHash scheme:
//
//	Commit phase
//		WAIT for (id, c)
//		STORE c under id
//	Decommit phase
//		WAIT for (r, x)
//		IF c = H(r || x) AND |r| = n
//			OUTPUT ACC and value x
//		ELSE
//			OUTPUT REJ
//
// A rejected opening is an expected protocol outcome and is reported through
// the ok result, never as an error.
type Receiver struct {
	channel transport.Channel
	hash    hash.Hash
	n       int
	store   comm_commitstore.CommitStore
}

// NewReceiver creates a receiver over channel with an explicit hash,
// security parameter n and commitment store. The committer must be
// instantiated with the same hash and security parameter.
func NewReceiver(channel transport.Channel, h hash.Hash, n int, store comm_commitstore.CommitStore) *Receiver {
	return &Receiver{
		channel: channel,
		hash:    h,
		n:       n,
		store:   store,
	}
}

// NewDefaultReceiver creates a receiver with SHA-256, the default security
// parameter and a fresh in-memory store.
func NewDefaultReceiver(channel transport.Channel) *Receiver {
	return NewReceiver(channel, hash.SHA256(), params.SecBytes, commitstore.NewInMemoryCommitStore())
}

// ReceiveCommitment blocks until one commitment message arrives, stores the
// received commitment bytes under the carried id and returns the message.
// The receiver never recomputes the commitment at this stage. A repeated
// commitment for an id that has not been opened replaces the stored bytes.
// Nothing is stored when the transport fails or the message does not decode.
func (rcvr *Receiver) ReceiveCommitment() (commitment.CommitmentMsg, error) {
	raw, err := rcvr.channel.Receive()
	if err != nil {
		return nil, fmt.Errorf("simplehash: receive commitment: %w", err)
	}

	msg := &CommitmentMessage{}
	if err := msg.UnmarshalBinary(raw); err != nil {
		return nil, err
	}

	record := &comm_commitstore.Commitment{Commitment: msg.Commitment()}
	if err := rcvr.store.Import(msg.ID(), record); err != nil {
		return nil, err
	}

	return msg, nil
}

// ReceiveDecommitment blocks until one decommitment message arrives and
// checks it against the commitment stored under id. On acceptance it returns
// the revealed value and ok=true. A missing stored commitment for id is a
// protocol error.
func (rcvr *Receiver) ReceiveDecommitment(id uint64) (commitment.CommitValue, bool, error) {
	raw, err := rcvr.channel.Receive()
	if err != nil {
		return commitment.CommitValue{}, false, fmt.Errorf("simplehash: receive decommitment: %w", err)
	}

	msg := &DecommitmentMessage{}
	if err := msg.UnmarshalBinary(raw); err != nil {
		return commitment.CommitValue{}, false, err
	}

	record, err := rcvr.store.Get(id)
	if err != nil {
		return commitment.CommitValue{}, false, fmt.Errorf("simplehash: commitment id %d: %w", id, err)
	}

	value, ok := rcvr.verify(record.Commitment, msg.Random(), msg.Value())
	return value, ok, nil
}

// VerifyDecommitment checks a decommitment against a commitment message
// obtained out-of-band, without consulting the receiver's stored table.
func (rcvr *Receiver) VerifyDecommitment(cmt commitment.CommitmentMsg, dcm commitment.DecommitmentMsg) (commitment.CommitValue, bool) {
	return rcvr.verify(cmt.Commitment(), dcm.Random(), dcm.Value())
}

// PreProcessedValues returns nil: the SimpleHash scheme has no preprocessing
// phase.
func (rcvr *Receiver) PreProcessedValues() [][]byte { return nil }

func (rcvr *Receiver) verify(c, r, x []byte) (commitment.CommitValue, bool) {
	rv := commitment.NewRandomValue(r)
	if err := rv.Validate(rcvr.n); err != nil {
		return commitment.CommitValue{}, false
	}
	if !bytes.Equal(computeCommitment(rcvr.hash, r, x), c) {
		return commitment.CommitValue{}, false
	}
	return commitment.NewCommitValue(x), true
}

var _ commitment.Receiver = (*Receiver)(nil)
