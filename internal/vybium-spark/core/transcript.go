package core

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// Transcript implements the Fiat-Shamir contract of a single argument
// proof: absorb-only until a challenge is squeezed, with labelled domain
// separation on every operation so prover and verifier walk the identical
// absorb/squeeze sequence.
//
// Each absorb or squeeze re-keys a fresh SHAKE256 extendable-output
// function from the transcript's running digest plus the framed
// label/message, then reads a new digest out of it — a duplex built atop
// an XOF that does not itself support interleaved Write/Read (the
// golang.org/x/crypto/sha3 ShakeHash panics if written to after it has
// been read from). This follows the same chaining idea as a
// state = hash(state || data) update on every absorb/squeeze, generalized
// from a fixed-output hash to a SHAKE256 XOF so a single squeeze can
// natively produce a wide enough output to reduce into a field element
// with negligible bias.
type Transcript struct {
	digest []byte
	field  *Field
}

const digestLen = 32

// NewTranscript creates a new transcript over the given field, domain
// separated by tag (analogous to a Merlin transcript's top-level label).
func NewTranscript(field *Field, tag []byte) *Transcript {
	t := &Transcript{digest: make([]byte, digestLen), field: field}
	t.AbsorbBytes("transcript_tag", tag)
	return t
}

func framed(w sha3.ShakeHash, b []byte) {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(b)))
	w.Write(lenBuf[:])
	w.Write(b)
}

// AbsorbBytes mixes a labelled message into the transcript state.
func (t *Transcript) AbsorbBytes(label string, msg []byte) {
	xof := sha3.NewShake256()
	xof.Write(t.digest)
	framed(xof, []byte(label))
	framed(xof, msg)
	next := make([]byte, digestLen)
	xof.Read(next)
	t.digest = next
}

// AbsorbScalar serializes a field element to canonical little-endian bytes
// and absorbs it under label.
func (t *Transcript) AbsorbScalar(label string, f *FieldElement) {
	t.AbsorbBytes(label, f.Bytes())
}

// AbsorbScalars absorbs a domain-separating begin marker, each scalar
// under label, then an end marker, preventing ambiguous decomposition of
// an arbitrary-length list of scalars.
func (t *Transcript) AbsorbScalars(label string, fs []*FieldElement) {
	t.AbsorbBytes(label, []byte("begin"))
	for _, f := range fs {
		t.AbsorbScalar(label, f)
	}
	t.AbsorbBytes(label, []byte("end"))
}

// SqueezeScalar squeezes 64 bytes under label and reduces them modulo the
// field order to produce a verifier challenge. The same squeeze also
// advances the transcript's running digest, so two squeezes under an
// identical label never repeat.
func (t *Transcript) SqueezeScalar(label string) *FieldElement {
	xof := sha3.NewShake256()
	xof.Write(t.digest)
	framed(xof, []byte(label))
	out := make([]byte, 64)
	xof.Read(out)
	next := make([]byte, digestLen)
	xof.Read(next)
	t.digest = next
	return t.field.ElementFromBytes(out)
}

// SqueezeScalars performs n successive squeezes under the same label,
// rather than a single larger squeeze, so the size of a batch of
// challenges never changes how any individual challenge is derived.
func (t *Transcript) SqueezeScalars(label string, n int) []*FieldElement {
	out := make([]*FieldElement, n)
	for i := range out {
		out[i] = t.SqueezeScalar(label)
	}
	return out
}

// Field returns the field this transcript derives challenges over.
func (t *Transcript) Field() *Field {
	return t.field
}
