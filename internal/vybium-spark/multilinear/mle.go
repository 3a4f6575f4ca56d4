// Package multilinear implements the multilinear-extension primitives
// shared by sumcheck, grand product, and Spark: equality tables, MLE
// evaluation, variable fixing, and power-of-two padding.
package multilinear

import "github.com/vybium/vybium-spark/internal/vybium-spark/core"

// IsPowerOfTwo reports whether n is a power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

// Log2 computes the base-2 logarithm of a power-of-two n, or -1 if n is
// not a power of two.
func Log2(n int) int {
	if !IsPowerOfTwo(n) {
		return -1
	}
	result := 0
	for n > 1 {
		n >>= 1
		result++
	}
	return result
}

// NextPowerOfTwo returns the smallest power of two >= n.
func NextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	if IsPowerOfTwo(n) {
		return n
	}
	power := 1
	for power < n {
		power <<= 1
	}
	return power
}

// PadNextPowerOfTwo right-pads terms with field zeros to the next
// power-of-two length.
func PadNextPowerOfTwo(field *core.Field, terms []*core.FieldElement) []*core.FieldElement {
	next := NextPowerOfTwo(len(terms))
	if next == len(terms) {
		return append([]*core.FieldElement(nil), terms...)
	}
	out := make([]*core.FieldElement, next)
	copy(out, terms)
	for i := len(terms); i < next; i++ {
		out[i] = field.Zero()
	}
	return out
}

// Chis builds the length-2^n equality table for point r = (r_0,...,r_{n-1}):
// entry b is Π_i (b_i*r_i + (1-b_i)*(1-r_i)). It iteratively doubles the
// table, starting from [1] and, for each r_i, replacing each entry t with
// the pair ((1-r_i)*t, r_i*t) — so r_0 selects the most significant bit
// of the resulting index and r_{n-1}, which varies fastest, the least
// significant. This is the variable order SetVariableLow assumes: it binds
// the variable carried by the top index bit first.
func Chis(r []*core.FieldElement) []*core.FieldElement {
	if len(r) == 0 {
		return nil
	}
	field := r[0].Field()
	table := []*core.FieldElement{field.One()}
	for _, ri := range r {
		oneMinusRi := field.One().Sub(ri)
		next := make([]*core.FieldElement, len(table)*2)
		for i, t := range table {
			next[2*i] = oneMinusRi.Mul(t)
			next[2*i+1] = ri.Mul(t)
		}
		table = next
	}
	return table
}

// EvalChis computes Σ_b chis[b]*evals[b]. Requires len(chis) == len(evals).
func EvalChis(chis, evals []*core.FieldElement) *core.FieldElement {
	if len(chis) != len(evals) {
		panic("eval_chis: chis and evals length mismatch")
	}
	field := chis[0].Field()
	sum := field.Zero()
	for i := range chis {
		sum = sum.Add(chis[i].Mul(evals[i]))
	}
	return sum
}

// EvalMLE evaluates the multilinear extension of evals at point, i.e.
// Σ_b chis(point)[b]*evals[b]. Requires len(evals) == 2^len(point).
func EvalMLE(point, evals []*core.FieldElement) *core.FieldElement {
	return EvalChis(Chis(point), evals)
}

// EvalEq evaluates the equality MLE on two points of equal length:
// Π_i (a_i*b_i + (1-a_i)*(1-b_i)).
func EvalEq(a, b []*core.FieldElement) *core.FieldElement {
	if len(a) != len(b) {
		panic("eval_eq: point length mismatch")
	}
	if len(a) == 0 {
		panic("eval_eq: empty point")
	}
	field := a[0].Field()
	prod := field.One()
	one := field.One()
	for i := range a {
		term := a[i].Mul(b[i]).Add(one.Sub(a[i]).Mul(one.Sub(b[i])))
		prod = prod.Mul(term)
	}
	return prod
}

// SetVariableLow fixes the lowest remaining variable of mle to r, halving
// its length: entry i becomes (1-r)*mle[i] + r*mle[i+len/2].
func SetVariableLow(mle []*core.FieldElement, r *core.FieldElement) []*core.FieldElement {
	half := len(mle) / 2
	field := r.Field()
	one := field.One()
	out := make([]*core.FieldElement, half)
	for i := 0; i < half; i++ {
		out[i] = one.Sub(r).Mul(mle[i]).Add(r.Mul(mle[i+half]))
	}
	return out
}

// SetVariableHigh fixes the highest remaining variable of mle to r,
// halving its length: entry i becomes (1-r)*mle[2i] + r*mle[2i+1], i.e. it
// binds the variable carried by the lowest index bit, the opposite end
// from SetVariableLow. No argument in this module calls it; Spark keeps
// separate row and column tables rather than splitting a flattened index.
func SetVariableHigh(mle []*core.FieldElement, r *core.FieldElement) []*core.FieldElement {
	half := len(mle) / 2
	field := r.Field()
	one := field.One()
	out := make([]*core.FieldElement, half)
	for i := 0; i < half; i++ {
		out[i] = one.Sub(r).Mul(mle[2*i]).Add(r.Mul(mle[2*i+1]))
	}
	return out
}
