package protocols

import (
	"github.com/rs/zerolog"
)

// StarkConfig binds the collaborators of a proving system instance: the
// commitment scheme and the transcript hash. Prover and verifier must be
// constructed from equal configurations or verification fails.
type StarkConfig struct {
	pcs      Pcs
	hashFunc string
	logger   zerolog.Logger
}

// NewStarkConfig creates a configuration around the given commitment scheme
// with the default transcript hash and no logging.
func NewStarkConfig(pcs Pcs) *StarkConfig {
	return &StarkConfig{
		pcs:      pcs,
		hashFunc: "tip5",
		logger:   zerolog.Nop(),
	}
}

// WithHashFunction sets the transcript hash function ("tip5" or "sha3").
func (c *StarkConfig) WithHashFunction(hashFunc string) *StarkConfig {
	c.hashFunc = hashFunc
	return c
}

// WithLogger sets the logger used for phase-level progress events.
func (c *StarkConfig) WithLogger(logger zerolog.Logger) *StarkConfig {
	c.logger = logger
	return c
}

// PCS returns the commitment scheme.
func (c *StarkConfig) PCS() Pcs {
	return c.pcs
}

// InitialiseChallenger creates a fresh transcript in its initial state.
func (c *StarkConfig) InitialiseChallenger() *Challenger {
	return NewChallenger(c.hashFunc)
}

// IsZK reports whether the configured commitment scheme hides committed
// values.
func (c *StarkConfig) IsZK() bool {
	return c.pcs.IsZK()
}

// Logger returns the configured logger.
func (c *StarkConfig) Logger() zerolog.Logger {
	return c.logger
}
