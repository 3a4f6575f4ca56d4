package univariate

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

func TestEvalULEAtNodesReturnsEvals(t *testing.T) {
	field := testField(t)
	evals := []*core.FieldElement{
		field.NewElementFromInt64(5),
		field.NewElementFromInt64(11),
		field.NewElementFromInt64(19),
		field.NewElementFromInt64(29),
	}
	for i, want := range evals {
		got := EvalULE(evals, field.NewElementFromUint64(uint64(i)))
		if !got.Equal(want) {
			t.Errorf("EvalULE at node %d = %s, want %s", i, got, want)
		}
	}
}

func TestEvalULEInterpolatesLinear(t *testing.T) {
	// p(x) = 2x + 3
	field := testField(t)
	evals := []*core.FieldElement{field.NewElementFromInt64(3), field.NewElementFromInt64(5)}
	x := field.NewElementFromInt64(10)
	got := EvalULE(evals, x)
	want := field.NewElementFromInt64(23)
	if !got.Equal(want) {
		t.Errorf("EvalULE(2x+3, 10) = %s, want %s", got, want)
	}
}

func TestEvalULEInterpolatesQuadratic(t *testing.T) {
	// p(x) = x^2 + 1, sampled at 0,1,2
	field := testField(t)
	evals := []*core.FieldElement{
		field.NewElementFromInt64(1),
		field.NewElementFromInt64(2),
		field.NewElementFromInt64(5),
	}
	x := field.NewElementFromInt64(7)
	got := EvalULE(evals, x)
	want := field.NewElementFromInt64(50)
	if !got.Equal(want) {
		t.Errorf("EvalULE(x^2+1, 7) = %s, want %s", got, want)
	}
}

func TestEvalULESinglePoint(t *testing.T) {
	field := testField(t)
	evals := []*core.FieldElement{field.NewElementFromInt64(42)}
	got := EvalULE(evals, field.NewElementFromInt64(99))
	if !got.Equal(field.NewElementFromInt64(42)) {
		t.Errorf("EvalULE with one evaluation should be constant, got %s", got)
	}
}
