package grandproduct

import (
	"fmt"

	"github.com/vybium/vybium-spark/internal/vybium-spark/core"
	"github.com/vybium/vybium-spark/internal/vybium-spark/multilinear"
	"github.com/vybium/vybium-spark/internal/vybium-spark/sumcheck"
	"github.com/vybium/vybium-spark/internal/vybium-spark/univariate"
)

// Verify replays the transcript against proof and checks it reduces a
// claimed grand product over numLeaves elements to a single evaluation
// claim on the leaves' multilinear extension. It returns that point and
// claim; the caller is responsible for checking them against whatever
// oracle backs the leaves (this package never sees the leaves directly).
func Verify(transcript *core.Transcript, claimedProduct *core.FieldElement, numLeaves int, proof *Proof) ([]*core.FieldElement, *core.FieldElement, error) {
	n := multilinear.Log2(numLeaves)
	if n < 1 {
		return nil, nil, fmt.Errorf("grandproduct: leaf count must be a power of two of at least 2")
	}
	if len(proof.LayerProofs) != n-1 {
		return nil, nil, fmt.Errorf("grandproduct: expected %d layer proofs, got %d", n-1, len(proof.LayerProofs))
	}

	root := []*core.FieldElement{proof.Root[0], proof.Root[1]}
	if !root[0].Mul(root[1]).Equal(claimedProduct) {
		return nil, nil, fmt.Errorf("grandproduct: root product does not match claimed product")
	}

	transcript.AbsorbScalars("grandproduct_root", root)
	transcript.AbsorbScalar("grandproduct_claim", claimedProduct)
	r0 := transcript.SqueezeScalar("grandproduct_root_challenge")
	claim := univariate.EvalULE(root, r0)
	point := []*core.FieldElement{r0}

	for idx, layerProof := range proof.LayerProofs {
		j := n - 2 - idx
		numVars := len(point)
		verifiedPoint, err := sumcheck.Verify(transcript, claim, numVars, 3, layerProof)
		if err != nil {
			return nil, nil, fmt.Errorf("grandproduct: layer %d: %w", j, err)
		}

		eqExpected := multilinear.EvalEq(point, verifiedPoint)
		if !layerProof.FinalEvals[0].Equal(eqExpected) {
			return nil, nil, fmt.Errorf("grandproduct: layer %d: eq evaluation mismatch", j)
		}

		label := fmt.Sprintf("grandproduct_layer_%d", j)
		transcript.AbsorbScalar(label+"_left_open", layerProof.FinalEvals[1])
		transcript.AbsorbScalar(label+"_right_open", layerProof.FinalEvals[2])

		foldLabel := label + "_fold"
		rPrime := transcript.SqueezeScalar(foldLabel)
		claim = univariate.EvalULE([]*core.FieldElement{layerProof.FinalEvals[1], layerProof.FinalEvals[2]}, rPrime)
		point = append(append([]*core.FieldElement(nil), verifiedPoint...), rPrime)
	}

	return point, claim, nil
}
