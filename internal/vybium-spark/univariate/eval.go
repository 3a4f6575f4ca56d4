// Package univariate implements evaluation of a univariate polynomial
// given only as a list of evaluations at 0, 1, 2, ... — the round
// polynomials a sumcheck prover sends never leave this representation.
package univariate

import (
	"math/big"

	"github.com/vybium/vybium-spark/internal/vybium-spark/core"
)

// EvalULE evaluates the degree-(len(evals)-1) polynomial defined by
// evals[i] = p(i) at an arbitrary field point, via barycentric
// interpolation over the implicit nodes 0, 1, ..., len(evals)-1.
//
// When point's canonical representative is itself a small non-negative
// integer less than len(evals), the value is already in evals and no
// interpolation is needed; this also keeps the barycentric formula from
// dividing by zero at a node.
func EvalULE(evals []*core.FieldElement, point *core.FieldElement) *core.FieldElement {
	n := len(evals)
	if n == 0 {
		panic("eval_ule: no evaluations provided")
	}
	if n == 1 {
		return evals[0]
	}

	field := point.Field()

	if idx, ok := smallIndex(point, n); ok {
		return evals[idx]
	}

	weights := barycentricWeights(field, n)

	differences := make([]*core.FieldElement, n)
	for i := 0; i < n; i++ {
		differences[i] = point.Sub(field.NewElementFromUint64(uint64(i)))
	}
	diffInverses := batchInvert(differences)

	numerator := field.Zero()
	denominator := field.Zero()
	for i := 0; i < n; i++ {
		term := weights[i].Mul(diffInverses[i])
		numerator = numerator.Add(term.Mul(evals[i]))
		denominator = denominator.Add(term)
	}

	inv, err := denominator.Inv()
	if err != nil {
		panic("eval_ule: degenerate barycentric denominator")
	}
	return numerator.Mul(inv)
}

// smallIndex reports whether point's canonical big.Int lift equals some
// integer i in [0, n), returning that i.
func smallIndex(point *core.FieldElement, n int) (int, bool) {
	v := point.Big()
	if v.Sign() < 0 {
		return 0, false
	}
	bound := big.NewInt(int64(n))
	if v.Cmp(bound) >= 0 {
		return 0, false
	}
	return int(v.Int64()), true
}

// barycentricWeights computes w_i = 1 / Π_{j!=i} (i - j) for the
// equally spaced nodes 0, ..., n-1.
func barycentricWeights(field *core.Field, n int) []*core.FieldElement {
	weights := make([]*core.FieldElement, n)
	for i := 0; i < n; i++ {
		xi := field.NewElementFromUint64(uint64(i))
		product := field.One()
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			xj := field.NewElementFromUint64(uint64(j))
			product = product.Mul(xi.Sub(xj))
		}
		inv, err := product.Inv()
		if err != nil {
			panic("eval_ule: degenerate barycentric weight")
		}
		weights[i] = inv
	}
	return weights
}

// batchInvert inverts every element independently. The sumcheck round
// widths this module evaluates at (2-4 points) never justify Montgomery's
// trick's bookkeeping.
func batchInvert(elems []*core.FieldElement) []*core.FieldElement {
	out := make([]*core.FieldElement, len(elems))
	for i, e := range elems {
		inv, err := e.Inv()
		if err != nil {
			panic("eval_ule: evaluation point coincides with an interpolation node")
		}
		out[i] = inv
	}
	return out
}
