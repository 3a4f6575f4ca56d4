package spark

import (
	"fmt"

	"github.com/vybium/vybium-spark/internal/vybium-spark/core"
	"github.com/vybium/vybium-spark/internal/vybium-spark/multilinear"
)

// memCheckWitness builds the offline-memory-checking quotient witness for
// one address space: table is the full dense lookup table (the content,
// unchanging throughout), indices is the sequence of addresses read, and
// reads is the value the prover claims each read returned. It returns the
// Fiat-Shamir constants gamma, tau it drew to fingerprint records, and
// the (next-power-of-two padded) quotient witness whose product a grand
// product argument must show equals one.
//
// The witness pairs an Init(a, table[a], 0) U Write(a, reads[k], t+1)
// multiset against a Read(a, reads[k], t) U Final(a, table[a], count[a])
// multiset, fingerprinting every tuple as a*gamma^2 + v*gamma + t - tau
// and dividing the two multisets' fingerprints entry by entry — the
// overall product of that quotient is one iff the multisets are equal,
// independent of how entries are paired, since it telescopes to
// (product of lhs)/(product of rhs).
func memCheckWitness(transcript *core.Transcript, field *core.Field, table []*core.FieldElement, indices []int, reads []*core.FieldElement) (*core.FieldElement, *core.FieldElement, []*core.FieldElement, error) {
	if len(indices) != len(reads) {
		return nil, nil, nil, fmt.Errorf("spark: memory check index/read count mismatch")
	}

	idxElems := make([]*core.FieldElement, len(indices))
	for i, idx := range indices {
		idxElems[i] = field.NewElementFromUint64(uint64(idx))
	}
	transcript.AbsorbScalars("memcheck_indices", idxElems)
	transcript.AbsorbScalars("memcheck_reads", reads)

	gamma := transcript.SqueezeScalar("memcheck_gamma")
	tau := transcript.SqueezeScalar("memcheck_tau")

	fp := func(a, v, t *core.FieldElement) *core.FieldElement {
		return a.Mul(gamma).Mul(gamma).Add(v.Mul(gamma)).Add(t).Sub(tau)
	}

	numAddr := len(table)
	counts := make([]int, numAddr)

	initWrite := make([]*core.FieldElement, 0, numAddr+len(indices))
	readFinal := make([]*core.FieldElement, 0, numAddr+len(indices))

	for a := 0; a < numAddr; a++ {
		addr := field.NewElementFromUint64(uint64(a))
		initWrite = append(initWrite, fp(addr, table[a], field.Zero()))
	}

	for k, addrIdx := range indices {
		if addrIdx < 0 || addrIdx >= numAddr {
			return nil, nil, nil, fmt.Errorf("spark: memory check address %d out of range [0, %d)", addrIdx, numAddr)
		}
		addr := field.NewElementFromUint64(uint64(addrIdx))
		readTs := field.NewElementFromUint64(uint64(counts[addrIdx]))
		readFinal = append(readFinal, fp(addr, reads[k], readTs))

		counts[addrIdx]++
		writeTs := field.NewElementFromUint64(uint64(counts[addrIdx]))
		initWrite = append(initWrite, fp(addr, reads[k], writeTs))
	}

	for a := 0; a < numAddr; a++ {
		addr := field.NewElementFromUint64(uint64(a))
		finalTs := field.NewElementFromUint64(uint64(counts[a]))
		readFinal = append(readFinal, fp(addr, table[a], finalTs))
	}

	quotient := make([]*core.FieldElement, len(initWrite))
	for i := range quotient {
		inv, err := readFinal[i].Inv()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("spark: degenerate memory check fingerprint: %w", err)
		}
		quotient[i] = initWrite[i].Mul(inv)
	}

	padded := make([]*core.FieldElement, multilinear.NextPowerOfTwo(len(quotient)))
	copy(padded, quotient)
	for i := len(quotient); i < len(padded); i++ {
		padded[i] = field.One()
	}

	return gamma, tau, padded, nil
}
