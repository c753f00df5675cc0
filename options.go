package treap

// Config holds configuration for a Set.
type Config struct {
	// seed initializes the default RNG when no priority source is given.
	seed    uint64
	hasSeed bool

	// source overrides the default RNG.
	source PrioritySource

	// checkInvariants runs a full validation after every mutation.
	checkInvariants bool
}

// Option configures a Set.
type Option func(*Config)

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{}
}

// WithSeed seeds the set's RNG so that the priority sequence, and therefore
// the tree shape for a given sequence of operations, is reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.seed = seed
		c.hasSeed = true
	}
}

// WithPrioritySource makes the set draw node priorities from src. It takes
// precedence over WithSeed.
func WithPrioritySource(src PrioritySource) Option {
	return func(c *Config) { c.source = src }
}

// WithInvariantChecks validates the whole tree after every Add and Remove and
// panics with ErrInvariantViolation on failure. Each check is O(n); use it in
// tests and debugging only.
func WithInvariantChecks(enabled bool) Option {
	return func(c *Config) { c.checkInvariants = enabled }
}

func (c Config) prioritySource() PrioritySource {
	if c.source != nil {
		return c.source
	}
	if c.hasSeed {
		return NewRNG(c.seed)
	}
	return NewRNG(newRandomSeed())
}
