package core

import (
	"crypto/sha256"
	"fmt"
)

// Commitment is a Merkle-tree binding over a vector of byte strings. The
// argument protocols in this module never consult it: they treat
// committed polynomials as oracles and leave the commitment scheme itself
// to the caller. It is exposed for callers that want to bind their input
// vectors before producing a proof, the way a caller driving these
// arguments against a real commitment scheme would.
type Commitment struct {
	root   []byte
	leaves [][]byte
	levels [][][]byte
}

// CommitProofNode is one sibling hash in an opening proof.
type CommitProofNode struct {
	Hash    []byte
	IsRight bool
}

// Commit builds a Commitment over data. data must be non-empty.
func Commit(data [][]byte) (*Commitment, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot commit to an empty vector")
	}

	leaves := make([][]byte, len(data))
	for i, item := range data {
		leaves[i] = leafHash(item)
	}

	levels := [][][]byte{leaves}
	current := leaves
	for len(current) > 1 {
		next := make([][]byte, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			if i+1 < len(current) {
				next = append(next, nodeHash(current[i], current[i+1]))
			} else {
				next = append(next, nodeHash(current[i], current[i]))
			}
		}
		levels = append(levels, next)
		current = next
	}

	return &Commitment{root: current[0], leaves: leaves, levels: levels}, nil
}

// Root returns the commitment root.
func (c *Commitment) Root() []byte {
	return append([]byte(nil), c.root...)
}

// Open produces an opening proof for the given index.
func (c *Commitment) Open(index int) ([]CommitProofNode, error) {
	if index < 0 || index >= len(c.leaves) {
		return nil, fmt.Errorf("index %d out of range [0, %d)", index, len(c.leaves))
	}

	var proof []CommitProofNode
	idx := index
	for level := 0; level < len(c.levels)-1; level++ {
		cur := c.levels[level]
		var siblingIdx int
		var isRight bool
		if idx%2 == 0 {
			siblingIdx, isRight = idx+1, true
		} else {
			siblingIdx, isRight = idx-1, false
		}
		if siblingIdx < len(cur) {
			proof = append(proof, CommitProofNode{Hash: cur[siblingIdx], IsRight: isRight})
		} else {
			// An odd last node was paired with itself when the level above
			// was built.
			proof = append(proof, CommitProofNode{Hash: cur[idx], IsRight: true})
		}
		idx /= 2
	}
	return proof, nil
}

// VerifyOpen checks an opening proof against a commitment root.
func VerifyOpen(root []byte, leaf []byte, proof []CommitProofNode) bool {
	hash := leafHash(leaf)
	for _, node := range proof {
		if node.IsRight {
			hash = nodeHash(hash, node.Hash)
		} else {
			hash = nodeHash(node.Hash, hash)
		}
	}
	return string(hash) == string(root)
}

func leafHash(data []byte) []byte {
	h := sha256.Sum256(append([]byte{0x00}, data...))
	return h[:]
}

func nodeHash(left, right []byte) []byte {
	combined := make([]byte, 0, len(left)+len(right)+1)
	combined = append(combined, 0x01)
	combined = append(combined, left...)
	combined = append(combined, right...)
	h := sha256.Sum256(combined)
	return h[:]
}
