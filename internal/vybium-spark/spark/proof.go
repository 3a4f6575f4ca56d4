package spark

import (
	"github.com/vybium/vybium-spark/internal/vybium-spark/core"
	"github.com/vybium/vybium-spark/internal/vybium-spark/grandproduct"
	"github.com/vybium/vybium-spark/internal/vybium-spark/sumcheck"
)

// Proof is the full record of a Spark evaluation argument: the sparse
// triple backing the claimed evaluation (logically the matrix's nonzero
// entries, densified to a power-of-two count), the per-entry row and
// column lookup reads the primary sumcheck consumes, the primary
// sumcheck itself, and the two memory-check grand products certifying
// those reads are genuine.
type Proof struct {
	Rows []int
	Cols []int
	Vals []*core.FieldElement

	// ERx[k], ECol[k] are eq(rx, rows[k]) and eq(ry, cols[k]) — the
	// per-entry row and column lookups the primary sumcheck's product
	// vals[k]*ERx[k]*ECol[k] is built from.
	ERx []*core.FieldElement
	ECol []*core.FieldElement

	Primary *sumcheck.Proof

	RowCheck *grandproduct.Proof
	ColCheck *grandproduct.Proof
}
