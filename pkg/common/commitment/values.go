package commitment

import "fmt"

// CommitValue is an immutable wrapper around the opaque byte string a
// committer commits to. Construction and unwrapping both copy, so a caller
// buffer, a stored record and an outgoing message never alias.
type CommitValue struct {
	x []byte
}

// NewCommitValue wraps a copy of x.
func NewCommitValue(x []byte) CommitValue {
	return CommitValue{x: append([]byte(nil), x...)}
}

// Bytes returns a copy of the wrapped bytes.
func (v CommitValue) Bytes() []byte {
	return append([]byte(nil), v.x...)
}

// Len returns the length of the wrapped bytes.
func (v CommitValue) Len() int { return len(v.x) }

// RandomValue is the randomness sampled once per commitment. Its length is
// fixed by the security parameter of the scheme that produced it.
type RandomValue struct {
	r []byte
}

// NewRandomValue wraps a copy of r.
func NewRandomValue(r []byte) RandomValue {
	return RandomValue{r: append([]byte(nil), r...)}
}

// Bytes returns a copy of the wrapped randomness.
func (r RandomValue) Bytes() []byte {
	return append([]byte(nil), r.r...)
}

// Len returns the length of the wrapped randomness.
func (r RandomValue) Len() int { return len(r.r) }

// Validate ensures the randomness has exactly n bytes.
func (r RandomValue) Validate(n int) error {
	if len(r.r) != n {
		return fmt.Errorf("random value has wrong length %d, expected %d", len(r.r), n)
	}
	return nil
}
