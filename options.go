package minqueue

// Option is a functional option for configuring the hasher of a queue
// built by New, NewBytes, NewString or their implicit counterparts.
type Option func(*hashConfig)

type hashConfig struct {
	seed      uint64
	seedSet   bool
	algorithm HashAlgorithmID
}

// defaultHashConfig derives the seed from the window width, so queues of the
// same width order elements identically unless a seed is given.
func defaultHashConfig(width int, opts []Option) *hashConfig {
	c := &hashConfig{algorithm: AlgoDefault}
	for _, opt := range opts {
		opt(c)
	}
	if !c.seedSet {
		c.seed = uint64(width)
	}
	return c
}

// WithSeed sets the hash seed. Changing the seed changes the ordering of the
// minimizers. Default: the window width.
func WithSeed(seed uint64) Option {
	return func(c *hashConfig) {
		c.seed = seed
		c.seedSet = true
	}
}

// WithAlgorithm sets the hash algorithm.
// Default is AlgoDefault (AlgoWyMix for integers, AlgoXXH3 for bytes and strings).
func WithAlgorithm(algo HashAlgorithmID) Option {
	return func(c *hashConfig) {
		c.algorithm = algo
	}
}
