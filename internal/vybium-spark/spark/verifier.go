package spark

import (
	"fmt"

	"github.com/vybium/vybium-spark/internal/vybium-spark/core"
	"github.com/vybium/vybium-spark/internal/vybium-spark/grandproduct"
	"github.com/vybium/vybium-spark/internal/vybium-spark/multilinear"
	"github.com/vybium/vybium-spark/internal/vybium-spark/sumcheck"
)

// Verify checks proof against a claimed evaluation M(rx, ry) = claim of a
// 2^n x 2^n sparse matrix, replaying the same transcript the prover used.
func Verify(transcript *core.Transcript, field *core.Field, rx, ry []*core.FieldElement, claim *core.FieldElement, proof *Proof) error {
	if len(rx) != len(ry) {
		return fmt.Errorf("spark: row and column evaluation points must have equal length")
	}
	n := len(proof.Vals)
	if len(proof.Rows) != n || len(proof.Cols) != n || len(proof.ERx) != n || len(proof.ECol) != n {
		return fmt.Errorf("spark: proof witness arrays have inconsistent lengths")
	}
	numVars := multilinear.Log2(n)
	if numVars < 0 {
		return fmt.Errorf("spark: entry count must be a power of two")
	}

	chiRx := multilinear.Chis(rx)
	chiRy := multilinear.Chis(ry)
	numAddr := len(chiRx)

	for k := range proof.Rows {
		if proof.Rows[k] < 0 || proof.Rows[k] >= numAddr || proof.Cols[k] < 0 || proof.Cols[k] >= numAddr {
			return fmt.Errorf("spark: entry %d row/col out of range", k)
		}
	}

	transcript.AbsorbScalars("spark_rx", rx)
	transcript.AbsorbScalars("spark_ry", ry)

	primaryPoint, err := sumcheck.Verify(transcript, claim, numVars, 3, proof.Primary)
	if err != nil {
		return fmt.Errorf("spark: primary sumcheck: %w", err)
	}

	finalEvals := proof.Primary.FinalEvals
	if !finalEvals[0].Equal(multilinear.EvalMLE(primaryPoint, proof.Vals)) {
		return fmt.Errorf("spark: primary sumcheck vals opening mismatch")
	}
	if !finalEvals[1].Equal(multilinear.EvalMLE(primaryPoint, proof.ERx)) {
		return fmt.Errorf("spark: primary sumcheck row-lookup opening mismatch")
	}
	if !finalEvals[2].Equal(multilinear.EvalMLE(primaryPoint, proof.ECol)) {
		return fmt.Errorf("spark: primary sumcheck column-lookup opening mismatch")
	}

	if err := verifyMemCheck(transcript, field, chiRx, proof.Rows, proof.ERx, proof.RowCheck); err != nil {
		return fmt.Errorf("spark: row memory check: %w", err)
	}
	if err := verifyMemCheck(transcript, field, chiRy, proof.Cols, proof.ECol, proof.ColCheck); err != nil {
		return fmt.Errorf("spark: column memory check: %w", err)
	}

	return nil
}

func verifyMemCheck(transcript *core.Transcript, field *core.Field, table []*core.FieldElement, indices []int, reads []*core.FieldElement, proof *grandproduct.Proof) error {
	_, _, quotient, err := memCheckWitness(transcript, field, table, indices, reads)
	if err != nil {
		return err
	}
	point, finalClaim, err := grandproduct.Verify(transcript, field.One(), len(quotient), proof)
	if err != nil {
		return err
	}
	if !finalClaim.Equal(multilinear.EvalMLE(point, quotient)) {
		return fmt.Errorf("memory check final evaluation mismatch")
	}
	return nil
}
