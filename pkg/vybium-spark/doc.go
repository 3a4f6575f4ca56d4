// Package vybiumspark provides interactive arguments over a prime field:
// sumcheck, grand product, and Spark sparse matrix-vector evaluation,
// composed through a shared Fiat-Shamir transcript.
//
// # Features
//
// - Fiat-Shamir transcript with labelled domain separation
// - Multilinear and univariate polynomial evaluation primitives
// - Sumcheck over a product of K multilinear polynomials
// - Grand product via a tower of 3-input sumchecks over a product tree
// - Spark sparse matrix-vector evaluation, backed by two offline
//   memory-checking grand products
//
// # Quick Start
//
// Proving and verifying a grand product claim:
//
//	field, _ := vybiumspark.NewField(vybiumspark.DefaultConfig().FieldModulus)
//	leaves := []*vybiumspark.FieldElement{ /* power-of-two length, >= 2 */ }
//	transcript := vybiumspark.NewTranscript(field, "example")
//	proof, product, err := vybiumspark.ProveGrandProduct(transcript, leaves)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	verifyTranscript := vybiumspark.NewTranscript(field, "example")
//	if _, _, err := vybiumspark.VerifyGrandProduct(verifyTranscript, product, len(leaves), proof); err != nil {
//		log.Fatal(err)
//	}
//
// # Architecture
//
// - pkg/vybium-spark/: public API (this package)
// - internal/vybium-spark/: private implementation (not importable)
//
// internal/core holds the field, Fiat-Shamir transcript, and harness-only
// Merkle commitment; internal/multilinear and internal/univariate hold
// evaluation primitives; internal/sumcheck, internal/grandproduct, and
// internal/spark hold the three arguments themselves. The public API
// layers a stable surface with typed errors over that implementation, so
// internal/ can be refactored without breaking callers.
//
// # Scope
//
// These arguments operate in an oracle model: a claim about a
// polynomial's evaluation is reduced to a claim about another
// polynomial's evaluation, down to a final claim the caller must check
// against whatever backs that polynomial (a commitment, or direct
// access, depending on the caller). This package does not implement a
// polynomial commitment scheme.
package vybiumspark
