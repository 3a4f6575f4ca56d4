package vybiumspark

import (
	"math/big"

	"github.com/vybium/vybium-spark/internal/vybium-spark/core"
	"github.com/vybium/vybium-spark/internal/vybium-spark/grandproduct"
	"github.com/vybium/vybium-spark/internal/vybium-spark/spark"
	"github.com/vybium/vybium-spark/internal/vybium-spark/sumcheck"
)

// DefaultConfig returns a default configuration using a 31-bit test prime
// convenient for examples and unit tests.
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// NewField creates a new prime field with the given modulus.
func NewField(modulus *big.Int) (*Field, error) {
	field, err := core.NewField(modulus)
	if err != nil {
		return nil, wrapError(ErrFieldCreation, "failed to create field", err)
	}
	return field, nil
}

// NewTranscript creates a new Fiat-Shamir transcript over field, domain
// separated by tag.
func NewTranscript(field *Field, tag string) *Transcript {
	return core.NewTranscript(field, []byte(tag))
}

// Commit binds a vector of byte strings into a Merkle commitment.
func Commit(data [][]byte) (*Commitment, error) {
	commitment, err := core.Commit(data)
	if err != nil {
		return nil, wrapError(ErrInvalidInput, "failed to commit", err)
	}
	return commitment, nil
}

// ProveSumcheck proves that the pointwise product of polys, each a
// length-2^n evaluation table, sums to claim over the Boolean hypercube.
func ProveSumcheck(transcript *Transcript, claim *FieldElement, polys [][]*FieldElement) (*SumcheckProof, []*FieldElement, error) {
	proof, point, err := sumcheck.Prove(transcript, claim, polys)
	if err != nil {
		return nil, nil, wrapError(ErrProofGeneration, "sumcheck proving failed", err)
	}
	return proof, point, nil
}

// VerifySumcheck checks that proof reduces claim, a claimed sum over
// numVars Boolean variables of a product of degree many polynomials, to
// a challenge point. The caller must check proof.FinalEvals against
// whatever backs each input polynomial.
func VerifySumcheck(transcript *Transcript, claim *FieldElement, numVars, degree int, proof *SumcheckProof) ([]*FieldElement, error) {
	point, err := sumcheck.Verify(transcript, claim, numVars, degree, proof)
	if err != nil {
		return nil, wrapError(ErrProofVerification, "sumcheck verification failed", err)
	}
	return point, nil
}

// ProveGrandProduct proves the product of leaves (power-of-two length,
// at least 2) equals the value it returns.
func ProveGrandProduct(transcript *Transcript, leaves []*FieldElement) (*GrandProductProof, *FieldElement, error) {
	proof, product, err := grandproduct.Prove(transcript, leaves)
	if err != nil {
		return nil, nil, wrapError(ErrProofGeneration, "grand product proving failed", err)
	}
	return proof, product, nil
}

// VerifyGrandProduct checks that proof attests to claimedProduct being
// the product of numLeaves (power-of-two, at least 2) field elements. It
// returns the point and claim the proof reduces to on the leaves'
// multilinear extension; the caller must check that claim against
// whatever backs the leaves.
func VerifyGrandProduct(transcript *Transcript, claimedProduct *FieldElement, numLeaves int, proof *GrandProductProof) ([]*FieldElement, *FieldElement, error) {
	point, claim, err := grandproduct.Verify(transcript, claimedProduct, numLeaves, proof)
	if err != nil {
		return nil, nil, wrapError(ErrProofVerification, "grand product verification failed", err)
	}
	return point, claim, nil
}

// ProveSpark builds a Spark evaluation argument for a 2^n x 2^n sparse
// matrix given by entries, evaluated at (rx, ry). It returns the proof
// and the claimed evaluation the proof attests to.
func ProveSpark(transcript *Transcript, field *Field, rx, ry []*FieldElement, entries []SparseEntry) (*SparkProof, *FieldElement, error) {
	proof, claim, err := spark.Prove(transcript, field, rx, ry, entries)
	if err != nil {
		return nil, nil, wrapError(ErrProofGeneration, "spark proving failed", err)
	}
	return proof, claim, nil
}

// VerifySpark checks proof against a claimed evaluation of a sparse
// matrix at (rx, ry).
func VerifySpark(transcript *Transcript, field *Field, rx, ry []*FieldElement, claim *FieldElement, proof *SparkProof) error {
	if err := spark.Verify(transcript, field, rx, ry, claim, proof); err != nil {
		return wrapError(ErrProofVerification, "spark verification failed", err)
	}
	return nil
}
