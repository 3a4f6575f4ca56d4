package vybiumspark

import (
	"math/big"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig() is invalid: %v", err)
	}
}

func TestNewFieldRejectsSmallModulus(t *testing.T) {
	if _, err := NewField(big.NewInt(1)); err == nil {
		t.Fatalf("expected error for modulus <= 2")
	}
}

func TestNewTranscriptDistinguishesTags(t *testing.T) {
	field, err := NewField(big.NewInt(101))
	if err != nil {
		t.Fatalf("NewField() error: %v", err)
	}

	a := NewTranscript(field, "tag-a")
	b := NewTranscript(field, "tag-b")

	challengeA := a.SqueezeScalar("x")
	challengeB := b.SqueezeScalar("x")

	if challengeA.Equal(challengeB) {
		t.Errorf("transcripts with different tags produced the same challenge")
	}
}
