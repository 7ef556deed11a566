package params

const (
	// SecParam is the default statistical security parameter, in bits.
	SecParam = 256

	// SecBytes is the security parameter in bytes. It is the default length
	// of the randomness sampled for each commitment.
	SecBytes = SecParam / 8
)
