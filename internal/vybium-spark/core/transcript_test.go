package core

import "testing"

func TestTranscriptDeterministic(t *testing.T) {
	field := testField(t)

	t1 := NewTranscript(field, []byte("test"))
	t1.AbsorbScalar("a", field.NewElementFromInt64(7))
	c1 := t1.SqueezeScalar("challenge")

	t2 := NewTranscript(field, []byte("test"))
	t2.AbsorbScalar("a", field.NewElementFromInt64(7))
	c2 := t2.SqueezeScalar("challenge")

	if !c1.Equal(c2) {
		t.Errorf("identical transcripts produced different challenges: %s != %s", c1, c2)
	}
}

func TestTranscriptDivergesOnMessage(t *testing.T) {
	field := testField(t)

	t1 := NewTranscript(field, []byte("test"))
	t1.AbsorbScalar("a", field.NewElementFromInt64(7))
	c1 := t1.SqueezeScalar("challenge")

	t2 := NewTranscript(field, []byte("test"))
	t2.AbsorbScalar("a", field.NewElementFromInt64(8))
	c2 := t2.SqueezeScalar("challenge")

	if c1.Equal(c2) {
		t.Errorf("transcripts absorbing different messages produced the same challenge")
	}
}

func TestTranscriptDivergesOnTag(t *testing.T) {
	field := testField(t)

	c1 := NewTranscript(field, []byte("tag-a")).SqueezeScalar("x")
	c2 := NewTranscript(field, []byte("tag-b")).SqueezeScalar("x")

	if c1.Equal(c2) {
		t.Errorf("transcripts with different domain tags produced the same challenge")
	}
}

func TestSqueezeScalarsIndependent(t *testing.T) {
	field := testField(t)
	transcript := NewTranscript(field, []byte("test"))
	challenges := transcript.SqueezeScalars("round", 4)
	if len(challenges) != 4 {
		t.Fatalf("SqueezeScalars returned %d elements, want 4", len(challenges))
	}
	for i := 0; i < len(challenges); i++ {
		for j := i + 1; j < len(challenges); j++ {
			if challenges[i].Equal(challenges[j]) {
				t.Errorf("SqueezeScalars produced duplicate challenges at %d and %d", i, j)
			}
		}
	}
}

func TestAbsorbScalarsFramingPreventsAmbiguity(t *testing.T) {
	field := testField(t)

	t1 := NewTranscript(field, []byte("test"))
	t1.AbsorbScalars("a", []*FieldElement{field.NewElementFromInt64(1), field.NewElementFromInt64(2)})
	c1 := t1.SqueezeScalar("challenge")

	t2 := NewTranscript(field, []byte("test"))
	t2.AbsorbScalars("a", []*FieldElement{field.NewElementFromInt64(1)})
	t2.AbsorbScalars("a", []*FieldElement{field.NewElementFromInt64(2)})
	c2 := t2.SqueezeScalar("challenge")

	if c1.Equal(c2) {
		t.Errorf("absorbing [1,2] as one call and as two calls produced the same challenge")
	}
}
