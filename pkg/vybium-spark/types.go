package vybiumspark

import (
	"github.com/vybium/vybium-spark/internal/vybium-spark/core"
	"github.com/vybium/vybium-spark/internal/vybium-spark/grandproduct"
	"github.com/vybium/vybium-spark/internal/vybium-spark/spark"
	"github.com/vybium/vybium-spark/internal/vybium-spark/sumcheck"
)

// FieldElement represents an element in a finite field. This is the
// public type for field elements used throughout vybium-spark.
type FieldElement = core.FieldElement

// Field represents a finite field.
type Field = core.Field

// Transcript is the Fiat-Shamir transcript binding a prover and verifier
// to the same sequence of challenges.
type Transcript = core.Transcript

// Commitment is a harness-level Merkle binding over a vector of byte
// strings, for callers that want to commit to a witness before handing
// it to a prover. The arguments themselves never consult it.
type Commitment = core.Commitment

// SumcheckProof is the record of a sumcheck run: one round polynomial per
// bound variable and the final openings of its input polynomials.
type SumcheckProof = sumcheck.Proof

// GrandProductProof is the record of a grand product run: the two-element
// product tree root and a 3-input sumcheck per layer down to the leaves.
type GrandProductProof = grandproduct.Proof

// SparkProof is the record of a Spark sparse matrix-vector evaluation
// run: the densified sparse entries, their row/column lookups, the
// primary sumcheck, and the two memory-check grand products.
type SparkProof = spark.Proof

// SparseEntry is one nonzero entry of a matrix, identified by its row and
// column index into a 2^n x 2^n logical grid.
type SparseEntry = spark.SparseEntry

// Config represents the configuration shared by a proving/verification
// session.
type Config = core.Config
