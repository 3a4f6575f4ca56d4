// Package grandproduct implements the grand product argument: proving the
// product of a vector of field elements equals a claimed value, by
// reducing a balanced binary product tree layer by layer down to the
// leaves via a tower of 3-input (eq, L, R) sumchecks.
package grandproduct

import (
	"github.com/vybium/vybium-spark/internal/vybium-spark/core"
	"github.com/vybium/vybium-spark/internal/vybium-spark/sumcheck"
)

// Proof is the transcript-independent record of a grand product run.
type Proof struct {
	// Root holds the two elements of the product tree's top internal
	// layer, whose product is the claimed grand product. This layer is
	// small enough to send in the clear rather than reduce with a
	// sumcheck.
	Root [2]*core.FieldElement

	// LayerProofs[i] is the 3-input sumcheck reducing the claim on the
	// layer of length 2^(i+1) (root-relative; LayerProofs[0] reduces the
	// root's own claim down to the length-4 layer) to a claim on the
	// next layer down. The last entry reduces to a claim on the leaves.
	LayerProofs []*sumcheck.Proof
}
