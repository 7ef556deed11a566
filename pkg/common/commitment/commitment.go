package commitment

// CommitmentMsg is the wire message of the commit phase. It fixes the
// committed value under a caller-chosen id without revealing it.
type CommitmentMsg interface {
	// ID returns the commitment id chosen by the committer.
	ID() uint64

	// Commitment returns a copy of the opaque commitment bytes.
	Commitment() []byte

	MarshalBinary() ([]byte, error)
}

// DecommitmentMsg is the wire message of the decommit phase. It reveals the
// committed value together with the randomness that opens the commitment.
type DecommitmentMsg interface {
	// Random returns a copy of the randomness sampled at commit time.
	Random() []byte

	// Value returns a copy of the revealed value bytes.
	Value() []byte

	MarshalBinary() ([]byte, error)
}

// Committer is the committing side of a two-phase commitment scheme.
//
// A single Committer may hold several outstanding commitments under distinct
// ids. Committing twice under the same id is an error. Instances are not safe
// for concurrent use; callers sharing one across goroutines must serialize
// access themselves.
type Committer interface {
	// GenerateCommitmentMsg samples fresh randomness, computes the
	// commitment to value and records the pair under id.
	GenerateCommitmentMsg(value CommitValue, id uint64) (CommitmentMsg, error)

	// GenerateDecommitmentMsg returns the opening of the commitment
	// previously generated under id. The record is retained, so repeated
	// calls yield the same message.
	GenerateDecommitmentMsg(id uint64) (DecommitmentMsg, error)

	// Commit generates a commitment message for value under id and sends
	// its encoding over the channel.
	Commit(value CommitValue, id uint64) error

	// Decommit sends the opening of the commitment under id.
	Decommit(id uint64) error

	// SampleRandomCommitValue returns a uniformly random committable value
	// of the scheme's security-parameter length.
	SampleRandomCommitValue() (CommitValue, error)

	// GenerateCommitValue wraps raw bytes as a committable value.
	GenerateCommitValue(x []byte) CommitValue

	// GenerateBytesFromCommitValue unwraps a committable value to raw
	// bytes. Together with GenerateCommitValue it is an identity round
	// trip.
	GenerateBytesFromCommitValue(value CommitValue) []byte

	// PreProcessValues returns the values produced by the scheme's
	// preprocessing phase. Schemes without preprocessing return nil.
	PreProcessValues() [][]byte
}

// Receiver is the receiving side of a two-phase commitment scheme.
//
// Verification failure is reported through the ok result, never as an error:
// a rejected opening is an expected protocol outcome.
type Receiver interface {
	// ReceiveCommitment blocks until one commitment message arrives,
	// stores its commitment under the carried id and returns it.
	ReceiveCommitment() (CommitmentMsg, error)

	// ReceiveDecommitment blocks until one decommitment message arrives
	// and checks it against the commitment stored under id. On acceptance
	// it returns the revealed value and ok=true; on rejection ok=false.
	ReceiveDecommitment(id uint64) (value CommitValue, ok bool, err error)

	// VerifyDecommitment checks a decommitment against a commitment
	// message obtained out-of-band, without touching stored state.
	VerifyDecommitment(cmt CommitmentMsg, dcm DecommitmentMsg) (value CommitValue, ok bool)

	// PreProcessedValues mirrors Committer.PreProcessValues.
	PreProcessedValues() [][]byte
}
