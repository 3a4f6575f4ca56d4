// Package spark implements the sparse matrix-vector evaluation argument:
// a primary sumcheck over a matrix's nonzero entries, bound to two
// offline memory-checking grand products that certify the row and
// column lookup tables the primary sumcheck consumes.
package spark

import (
	"github.com/vybium/vybium-spark/internal/vybium-spark/core"
	"github.com/vybium/vybium-spark/internal/vybium-spark/multilinear"
)

// SparseEntry is one nonzero entry of a matrix, identified by its row and
// column index into a 2^n x 2^n logical grid.
type SparseEntry struct {
	Row, Col int
	Val      *core.FieldElement
}

// Densify right-pads a sparse matrix's entries (zero value, row 0, col 0)
// up to the next power of two in count. A zero-valued padding entry
// contributes nothing to the primary sumcheck's vals*E_rx*E_ry product
// regardless of what its row/col lookup reads, and both memory-check
// arguments treat it as one more legitimate read of address 0 — its
// timestamp bookkeeping is generated the same way as any other entry, so
// it never perturbs either multiset equality.
func Densify(field *core.Field, entries []SparseEntry) []SparseEntry {
	n := multilinear.NextPowerOfTwo(len(entries))
	if n == len(entries) {
		return append([]SparseEntry(nil), entries...)
	}
	out := make([]SparseEntry, n)
	copy(out, entries)
	for i := len(entries); i < n; i++ {
		out[i] = SparseEntry{Row: 0, Col: 0, Val: field.Zero()}
	}
	return out
}
