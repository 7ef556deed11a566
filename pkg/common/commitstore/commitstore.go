package commitstore

import "github.com/fxamacker/cbor/v2"

// Commitment is the per-id record of one commitment. On the committer side
// all three fields are populated; the receiver only stores the commitment
// bytes it was sent and leaves Random and Value nil until the opening.
type Commitment struct {
	// Commitment holds the computed commitment c = H(r || x).
	Commitment []byte

	// Random holds the randomness r sampled at commit time.
	Random []byte

	// Value holds the committed value x.
	Value []byte
}

type rawCommitment struct {
	Commitment []byte
	Random     []byte
	Value      []byte
}

// Bytes returns the CBOR serialization of the record.
func (c *Commitment) Bytes() ([]byte, error) {
	raw := rawCommitment{
		Commitment: c.Commitment,
		Random:     c.Random,
		Value:      c.Value,
	}
	return cbor.Marshal(raw)
}

// FromBytes deserializes a record produced by Bytes.
func FromBytes(data []byte) (*Commitment, error) {
	raw := &rawCommitment{}
	if err := cbor.Unmarshal(data, raw); err != nil {
		return nil, err
	}
	return &Commitment{
		Commitment: raw.Commitment,
		Random:     raw.Random,
		Value:      raw.Value,
	}, nil
}

// CommitStore keeps commitment records keyed by commitment id. The id
// namespace is caller-supplied and may be sparse.
type CommitStore interface {
	// ImportNew stores a record under a previously unused id and fails if
	// the id is already present.
	ImportNew(id uint64, commitment *Commitment) error

	// Import stores a record under id, replacing any existing one.
	Import(id uint64, commitment *Commitment) error

	// Get returns the record stored under id.
	Get(id uint64) (*Commitment, error)

	// Delete removes the record stored under id.
	Delete(id uint64) error
}
