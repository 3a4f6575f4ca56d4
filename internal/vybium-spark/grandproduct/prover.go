package grandproduct

import (
	"fmt"

	"github.com/vybium/vybium-spark/internal/vybium-spark/core"
	"github.com/vybium/vybium-spark/internal/vybium-spark/multilinear"
	"github.com/vybium/vybium-spark/internal/vybium-spark/sumcheck"
	"github.com/vybium/vybium-spark/internal/vybium-spark/univariate"
)

// Prove builds the product tree over leaves (length must be a power of
// two, at least 2) and proves its product equals the value it returns.
func Prove(transcript *core.Transcript, leaves []*core.FieldElement) (*Proof, *core.FieldElement, error) {
	n := multilinear.Log2(len(leaves))
	if n < 1 {
		return nil, nil, fmt.Errorf("grandproduct: leaf count must be a power of two of at least 2")
	}

	layers := make([][]*core.FieldElement, n)
	layers[0] = leaves
	for i := 1; i < n; i++ {
		prev := layers[i-1]
		layer := make([]*core.FieldElement, len(prev)/2)
		for x := range layer {
			layer[x] = prev[2*x].Mul(prev[2*x+1])
		}
		layers[i] = layer
	}
	root := layers[n-1]
	claimedProduct := root[0].Mul(root[1])

	transcript.AbsorbScalars("grandproduct_root", root)
	transcript.AbsorbScalar("grandproduct_claim", claimedProduct)
	r0 := transcript.SqueezeScalar("grandproduct_root_challenge")
	claim := univariate.EvalULE(root, r0)
	point := []*core.FieldElement{r0}

	layerProofs := make([]*sumcheck.Proof, 0, n-1)
	for j := n - 2; j >= 0; j-- {
		child := layers[j]
		half := len(child) / 2
		l := make([]*core.FieldElement, half)
		r := make([]*core.FieldElement, half)
		for x := 0; x < half; x++ {
			l[x] = child[2*x]
			r[x] = child[2*x+1]
		}
		eqTable := multilinear.Chis(point)

		label := fmt.Sprintf("grandproduct_layer_%d", j)
		proof, challengePoint, err := sumcheck.Prove(transcript, claim, [][]*core.FieldElement{eqTable, l, r})
		if err != nil {
			return nil, nil, fmt.Errorf("grandproduct: layer %d: %w", j, err)
		}
		layerProofs = append(layerProofs, proof)

		transcript.AbsorbScalar(label+"_left_open", proof.FinalEvals[1])
		transcript.AbsorbScalar(label+"_right_open", proof.FinalEvals[2])

		foldLabel := label + "_fold"
		rPrime := transcript.SqueezeScalar(foldLabel)
		claim = univariate.EvalULE([]*core.FieldElement{proof.FinalEvals[1], proof.FinalEvals[2]}, rPrime)
		point = append(append([]*core.FieldElement(nil), challengePoint...), rPrime)
	}

	return &Proof{Root: [2]*core.FieldElement{root[0], root[1]}, LayerProofs: layerProofs}, claimedProduct, nil
}
