// Package sumcheck implements the K-input sumcheck protocol: proving a
// claimed sum over the Boolean hypercube of a product of K multilinear
// polynomials, reduced round by round to a single evaluation claim.
package sumcheck

import "github.com/vybium/vybium-spark/internal/vybium-spark/core"

// Proof is the transcript-independent record of a sumcheck run: one round
// polynomial (as a list of evaluations at 0, 1, ..., K) per variable, and
// the K final openings of the input polynomials at the fully bound
// challenge point.
type Proof struct {
	// RoundPolys[i] holds degree-K polynomial g_i evaluated at
	// 0, 1, ..., K, for round i.
	RoundPolys [][]*core.FieldElement

	// FinalEvals holds p_1(r), ..., p_K(r) for the challenge point r the
	// rounds bind, i.e. the K polynomials' values at the point sumcheck
	// reduces the original claim to. A caller checks these against
	// whatever oracle backs each p_k; this package only checks internal
	// consistency with the round polynomials and the transcript.
	FinalEvals []*core.FieldElement
}

// NumVars returns the number of rounds (bound variables) in the proof.
func (p *Proof) NumVars() int {
	return len(p.RoundPolys)
}

// Degree returns the shared per-round degree K (one less than the number
// of evaluation points in a round polynomial), or -1 for an empty proof.
func (p *Proof) Degree() int {
	if len(p.RoundPolys) == 0 {
		return -1
	}
	return len(p.RoundPolys[0]) - 1
}
