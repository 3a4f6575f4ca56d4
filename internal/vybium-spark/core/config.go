package core

import (
	"fmt"
	"math/big"
)

// Config represents the configuration shared by a proving/verification
// session: the field every argument operates over, and the top-level
// transcript domain-separation tag.
type Config struct {
	// FieldModulus is the prime field every argument operates over.
	FieldModulus *big.Int

	// TranscriptTag domain-separates this session's Fiat-Shamir
	// transcript from any other protocol sharing the same field.
	TranscriptTag string
}

// DefaultConfig returns a default configuration using a 31-bit test prime
// convenient for examples and unit tests.
func DefaultConfig() *Config {
	return &Config{
		FieldModulus:  big.NewInt(2147483647), // 2^31 - 1, Mersenne prime
		TranscriptTag: "vybium-spark",
	}
}

// Validate checks if the configuration is well formed.
func (c *Config) Validate() error {
	if c.FieldModulus.Cmp(big.NewInt(2)) <= 0 {
		return fmt.Errorf("field modulus must be greater than 2")
	}
	if c.TranscriptTag == "" {
		return fmt.Errorf("transcript tag must not be empty")
	}
	return nil
}

// WithFieldModulus sets the field modulus.
func (c *Config) WithFieldModulus(modulus *big.Int) *Config {
	c.FieldModulus = new(big.Int).Set(modulus)
	return c
}

// WithTranscriptTag sets the transcript domain-separation tag.
func (c *Config) WithTranscriptTag(tag string) *Config {
	c.TranscriptTag = tag
	return c
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	return &Config{
		FieldModulus:  new(big.Int).Set(c.FieldModulus),
		TranscriptTag: c.TranscriptTag,
	}
}
