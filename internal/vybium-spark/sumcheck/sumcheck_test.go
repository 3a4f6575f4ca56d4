package sumcheck

import (
	"testing"

	"github.com/vybium/vybium-spark/internal/vybium-spark/core"
)

func testField(t *testing.T) *core.Field {
	t.Helper()
	field, err := core.NewFieldFromUint64(2147483647)
	if err != nil {
		t.Fatalf("NewFieldFromUint64() error: %v", err)
	}
	return field
}

func sumOfProducts(polys [][]*core.FieldElement) *core.FieldElement {
	field := polys[0][0].Field()
	sum := field.Zero()
	for i := range polys[0] {
		term := field.One()
		for _, p := range polys {
			term = term.Mul(p[i])
		}
		sum = sum.Add(term)
	}
	return sum
}

func TestSumcheckRoundTripTwoInputs(t *testing.T) {
	field := testField(t)
	a := make([]*core.FieldElement, 8)
	b := make([]*core.FieldElement, 8)
	for i := range a {
		a[i] = field.NewElementFromInt64(int64(2*i + 1))
		b[i] = field.NewElementFromInt64(int64(5*i + 3))
	}
	claim := sumOfProducts([][]*core.FieldElement{a, b})

	proverTranscript := core.NewTranscript(field, []byte("sumcheck-test"))
	proof, _, err := Prove(proverTranscript, claim, [][]*core.FieldElement{a, b})
	if err != nil {
		t.Fatalf("Prove() error: %v", err)
	}

	verifierTranscript := core.NewTranscript(field, []byte("sumcheck-test"))
	point, err := Verify(verifierTranscript, claim, 3, 2, proof)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if len(point) != 3 {
		t.Fatalf("challenge point has %d coordinates, want 3", len(point))
	}
}

func TestSumcheckRoundTripThreeInputs(t *testing.T) {
	field := testField(t)
	n := 16
	a := make([]*core.FieldElement, n)
	b := make([]*core.FieldElement, n)
	c := make([]*core.FieldElement, n)
	for i := range a {
		a[i] = field.NewElementFromInt64(int64(i + 1))
		b[i] = field.NewElementFromInt64(int64(2*i + 1))
		c[i] = field.NewElementFromInt64(int64(3*i + 2))
	}
	claim := sumOfProducts([][]*core.FieldElement{a, b, c})

	proverTranscript := core.NewTranscript(field, []byte("sumcheck-test-3"))
	proof, _, err := Prove(proverTranscript, claim, [][]*core.FieldElement{a, b, c})
	if err != nil {
		t.Fatalf("Prove() error: %v", err)
	}

	verifierTranscript := core.NewTranscript(field, []byte("sumcheck-test-3"))
	if _, err := Verify(verifierTranscript, claim, 4, 3, proof); err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
}

func TestSumcheckRejectsWrongClaim(t *testing.T) {
	field := testField(t)
	a := make([]*core.FieldElement, 4)
	b := make([]*core.FieldElement, 4)
	for i := range a {
		a[i] = field.NewElementFromInt64(int64(i + 1))
		b[i] = field.NewElementFromInt64(int64(i + 2))
	}
	claim := sumOfProducts([][]*core.FieldElement{a, b})

	proverTranscript := core.NewTranscript(field, []byte("sumcheck-tamper"))
	proof, _, err := Prove(proverTranscript, claim, [][]*core.FieldElement{a, b})
	if err != nil {
		t.Fatalf("Prove() error: %v", err)
	}

	verifierTranscript := core.NewTranscript(field, []byte("sumcheck-tamper"))
	wrongClaim := claim.Add(field.One())
	if _, err := Verify(verifierTranscript, wrongClaim, 2, 2, proof); err == nil {
		t.Errorf("Verify() accepted a proof against the wrong claim")
	}
}

func TestSumcheckRejectsTamperedRoundPoly(t *testing.T) {
	field := testField(t)
	a := make([]*core.FieldElement, 4)
	b := make([]*core.FieldElement, 4)
	for i := range a {
		a[i] = field.NewElementFromInt64(int64(i + 1))
		b[i] = field.NewElementFromInt64(int64(i + 2))
	}
	claim := sumOfProducts([][]*core.FieldElement{a, b})

	proverTranscript := core.NewTranscript(field, []byte("sumcheck-tamper-round"))
	proof, _, err := Prove(proverTranscript, claim, [][]*core.FieldElement{a, b})
	if err != nil {
		t.Fatalf("Prove() error: %v", err)
	}
	proof.RoundPolys[0][0] = proof.RoundPolys[0][0].Add(field.One())

	verifierTranscript := core.NewTranscript(field, []byte("sumcheck-tamper-round"))
	if _, err := Verify(verifierTranscript, claim, 2, 2, proof); err == nil {
		t.Errorf("Verify() accepted a proof with a tampered round polynomial")
	}
}
