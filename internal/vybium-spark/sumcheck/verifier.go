package sumcheck

import (
	"fmt"

	"github.com/vybium/vybium-spark/internal/vybium-spark/core"
	"github.com/vybium/vybium-spark/internal/vybium-spark/univariate"
)

// Verify replays the transcript against proof and checks it reduces
// claim, a claimed sum over numVars Boolean variables of a product of
// degree many multilinear polynomials, to a single evaluation claim at a
// challenge point. It returns that challenge point; the caller is
// responsible for checking proof.FinalEvals against whatever oracle backs
// each input polynomial (this package has no access to the polynomials
// themselves, by design — a verifier here never sees more than claim and
// the proof).
func Verify(transcript *core.Transcript, claim *core.FieldElement, numVars, degree int, proof *Proof) ([]*core.FieldElement, error) {
	if proof.NumVars() != numVars {
		return nil, fmt.Errorf("sumcheck: proof has %d rounds, expected %d", proof.NumVars(), numVars)
	}
	if proof.Degree() != degree {
		return nil, fmt.Errorf("sumcheck: proof round degree %d, expected %d", proof.Degree(), degree)
	}
	if len(proof.FinalEvals) != degree {
		return nil, fmt.Errorf("sumcheck: proof has %d final evaluations, expected %d", len(proof.FinalEvals), degree)
	}

	field := claim.Field()

	transcript.AbsorbScalar("sumcheck_claim", claim)
	transcript.AbsorbBytes("sumcheck_degree", []byte(fmt.Sprintf("%d", degree)))
	transcript.AbsorbBytes("sumcheck_rounds", []byte(fmt.Sprintf("%d", numVars)))

	current := claim
	point := make([]*core.FieldElement, numVars)

	for round := 0; round < numVars; round++ {
		evals := proof.RoundPolys[round]

		sum := evals[0].Add(evals[1])
		if !sum.Equal(current) {
			return nil, fmt.Errorf("sumcheck: round %d consistency check failed", round)
		}

		label := fmt.Sprintf("sumcheck_round_%d", round)
		transcript.AbsorbScalars(label, evals)
		r := transcript.SqueezeScalar(label + "_challenge")

		current = univariate.EvalULE(evals, r)
		point[round] = r
	}

	product := field.One()
	for _, v := range proof.FinalEvals {
		product = product.Mul(v)
	}
	if !product.Equal(current) {
		return nil, fmt.Errorf("sumcheck: final evaluation product does not match reduced claim")
	}

	return point, nil
}
