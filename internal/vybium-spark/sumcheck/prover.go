package sumcheck

import (
	"fmt"

	"github.com/vybium/vybium-spark/internal/vybium-spark/core"
	"github.com/vybium/vybium-spark/internal/vybium-spark/multilinear"
	"github.com/vybium/vybium-spark/internal/vybium-spark/univariate"
)

// Prove runs the sumcheck prover over polys, a slice of K multilinear
// polynomials each given as a length-2^numVars evaluation table, claimed
// to sum (as a pointwise product) to claim over the Boolean hypercube.
// It absorbs each round polynomial into transcript and squeezes the next
// round's challenge from it, exactly mirroring what Verify replays.
func Prove(transcript *core.Transcript, claim *core.FieldElement, polys [][]*core.FieldElement) (*Proof, []*core.FieldElement, error) {
	if len(polys) == 0 {
		return nil, nil, fmt.Errorf("sumcheck: no input polynomials")
	}
	numVars := multilinear.Log2(len(polys[0]))
	if numVars < 0 {
		return nil, nil, fmt.Errorf("sumcheck: polynomial length must be a power of two")
	}
	for _, p := range polys {
		if len(p) != len(polys[0]) {
			return nil, nil, fmt.Errorf("sumcheck: input polynomial length mismatch")
		}
	}

	current := make([][]*core.FieldElement, len(polys))
	for i, p := range polys {
		current[i] = append([]*core.FieldElement(nil), p...)
	}

	field := claim.Field()
	degree := len(polys)

	transcript.AbsorbScalar("sumcheck_claim", claim)
	transcript.AbsorbBytes("sumcheck_degree", []byte(fmt.Sprintf("%d", degree)))
	transcript.AbsorbBytes("sumcheck_rounds", []byte(fmt.Sprintf("%d", numVars)))

	roundPolys := make([][]*core.FieldElement, 0, numVars)
	point := make([]*core.FieldElement, 0, numVars)
	running := claim

	for round := 0; round < numVars; round++ {
		evals := make([]*core.FieldElement, degree+1)
		half := len(current[0]) / 2
		for t := 0; t <= degree; t++ {
			if t == 1 {
				// g(1) = running claim - g(0): the two hypercube values of
				// the bound variable must sum to the running claim, so the
				// t=1 evaluation needs no separate sweep.
				evals[1] = running.Sub(evals[0])
				continue
			}
			x := field.NewElementFromUint64(uint64(t))
			sum := field.Zero()
			for b := 0; b < half; b++ {
				term := field.One()
				for _, poly := range current {
					lo, hi := poly[b], poly[b+half]
					value := lo.Add(x.Mul(hi.Sub(lo)))
					term = term.Mul(value)
				}
				sum = sum.Add(term)
			}
			evals[t] = sum
		}

		label := fmt.Sprintf("sumcheck_round_%d", round)
		transcript.AbsorbScalars(label, evals)
		roundPolys = append(roundPolys, evals)

		r := transcript.SqueezeScalar(label + "_challenge")
		point = append(point, r)
		running = univariate.EvalULE(evals, r)
		for i, poly := range current {
			current[i] = multilinear.SetVariableLow(poly, r)
		}
	}

	finalEvals := make([]*core.FieldElement, len(current))
	for i, poly := range current {
		finalEvals[i] = poly[0]
	}

	return &Proof{RoundPolys: roundPolys, FinalEvals: finalEvals}, point, nil
}
