package spark

import (
	"fmt"

	"github.com/vybium/vybium-spark/internal/vybium-spark/core"
	"github.com/vybium/vybium-spark/internal/vybium-spark/grandproduct"
	"github.com/vybium/vybium-spark/internal/vybium-spark/multilinear"
	"github.com/vybium/vybium-spark/internal/vybium-spark/sumcheck"
)

// Prove builds a Spark evaluation argument for a 2^n x 2^n sparse matrix
// given by entries, evaluated at (rx, ry). It returns the proof and the
// claimed evaluation M(rx, ry) the proof attests to.
func Prove(transcript *core.Transcript, field *core.Field, rx, ry []*core.FieldElement, entries []SparseEntry) (*Proof, *core.FieldElement, error) {
	if len(rx) != len(ry) {
		return nil, nil, fmt.Errorf("spark: row and column evaluation points must have equal length")
	}
	if len(entries) == 0 {
		return nil, nil, fmt.Errorf("spark: matrix has no entries")
	}

	dense := Densify(field, entries)

	chiRx := multilinear.Chis(rx)
	chiRy := multilinear.Chis(ry)
	numAddr := len(chiRx)

	rows := make([]int, len(dense))
	cols := make([]int, len(dense))
	vals := make([]*core.FieldElement, len(dense))
	eRx := make([]*core.FieldElement, len(dense))
	eCol := make([]*core.FieldElement, len(dense))

	for k, e := range dense {
		if e.Row < 0 || e.Row >= numAddr || e.Col < 0 || e.Col >= numAddr {
			return nil, nil, fmt.Errorf("spark: entry %d row/col out of range", k)
		}
		rows[k] = e.Row
		cols[k] = e.Col
		vals[k] = e.Val
		eRx[k] = chiRx[e.Row]
		eCol[k] = chiRy[e.Col]
	}

	claim := field.Zero()
	for k := range dense {
		claim = claim.Add(vals[k].Mul(eRx[k]).Mul(eCol[k]))
	}

	transcript.AbsorbScalars("spark_rx", rx)
	transcript.AbsorbScalars("spark_ry", ry)

	primaryProof, _, err := sumcheck.Prove(transcript, claim, [][]*core.FieldElement{vals, eRx, eCol})
	if err != nil {
		return nil, nil, fmt.Errorf("spark: primary sumcheck: %w", err)
	}

	_, _, rowQuotient, err := memCheckWitness(transcript, field, chiRx, rows, eRx)
	if err != nil {
		return nil, nil, fmt.Errorf("spark: row memory check: %w", err)
	}
	rowProof, rowProduct, err := grandproduct.Prove(transcript, rowQuotient)
	if err != nil {
		return nil, nil, fmt.Errorf("spark: row memory check grand product: %w", err)
	}
	if !rowProduct.Equal(field.One()) {
		return nil, nil, fmt.Errorf("spark: row memory check witness is inconsistent")
	}

	_, _, colQuotient, err := memCheckWitness(transcript, field, chiRy, cols, eCol)
	if err != nil {
		return nil, nil, fmt.Errorf("spark: column memory check: %w", err)
	}
	colProof, colProduct, err := grandproduct.Prove(transcript, colQuotient)
	if err != nil {
		return nil, nil, fmt.Errorf("spark: column memory check grand product: %w", err)
	}
	if !colProduct.Equal(field.One()) {
		return nil, nil, fmt.Errorf("spark: column memory check witness is inconsistent")
	}

	proof := &Proof{
		Rows:     rows,
		Cols:     cols,
		Vals:     vals,
		ERx:      eRx,
		ECol:     eCol,
		Primary:  primaryProof,
		RowCheck: rowProof,
		ColCheck: colProof,
	}
	return proof, claim, nil
}
