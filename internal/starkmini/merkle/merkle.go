// Package merkle implements a binary Merkle tree over a power-of-two
// vector of field elements, hashed with BLAKE3, built level by level
// with sibling-path openings.
package merkle

import (
	"fmt"

	"github.com/plafer/stark-102/internal/starkmini/field17"
	"lukechampine.com/blake3"
)

// Digest is a 32-byte BLAKE3 hash, as committed to the channel and
// embedded in a StarkProof.
type Digest [32]byte

// hashLeaf returns H(byte(value)), the one-byte leaf preimage.
func hashLeaf(value field17.Element) Digest {
	sum := blake3.Sum256([]byte{value.Uint8()})
	return Digest(sum)
}

// hashInternal returns H(left || right), the 64-byte internal
// preimage.
func hashInternal(left, right Digest) Digest {
	var buf [64]byte
	copy(buf[:32], left[:])
	copy(buf[32:], right[:])
	sum := blake3.Sum256(buf[:])
	return Digest(sum)
}

// Tree is a perfect binary Merkle tree over a power-of-two leaf
// vector of field elements.
type Tree struct {
	levels [][]Digest // levels[0] = leaf hashes, levels[len-1] = [root]
}

// Commit builds a Merkle tree over leaves, a power-of-two-length
// sequence of field elements.
func Commit(leaves []field17.Element) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, fmt.Errorf("merkle: cannot commit to an empty leaf vector")
	}
	if !isPowerOfTwo(len(leaves)) {
		return nil, fmt.Errorf("merkle: leaf vector length %d is not a power of two", len(leaves))
	}

	level := make([]Digest, len(leaves))
	for i, v := range leaves {
		level[i] = hashLeaf(v)
	}

	levels := [][]Digest{level}
	for len(level) > 1 {
		next := make([]Digest, len(level)/2)
		for i := range next {
			next[i] = hashInternal(level[2*i], level[2*i+1])
		}
		levels = append(levels, next)
		level = next
	}

	return &Tree{levels: levels}, nil
}

// Root returns the tree's root hash.
func (t *Tree) Root() Digest {
	return t.levels[len(t.levels)-1][0]
}

// Open returns the ordered sequence of sibling hashes from the leaf
// at index i up to (but not including) the root.
func (t *Tree) Open(i int) ([]Digest, error) {
	numLeaves := len(t.levels[0])
	if i < 0 || i >= numLeaves {
		return nil, fmt.Errorf("merkle: index %d out of range [0, %d)", i, numLeaves)
	}

	path := make([]Digest, 0, len(t.levels)-1)
	idx := i
	for level := 0; level < len(t.levels)-1; level++ {
		siblingIdx := idx ^ 1
		path = append(path, t.levels[level][siblingIdx])
		idx /= 2
	}
	return path, nil
}

// Verify recomputes the root from (i, value, path) and reports
// whether it matches root. Sibling placement at each level follows
// the parity of i>>level, exactly as Open walked up.
func Verify(root Digest, i int, value field17.Element, path []Digest) bool {
	hash := hashLeaf(value)
	idx := i
	for _, sibling := range path {
		if idx&1 == 0 {
			hash = hashInternal(hash, sibling)
		} else {
			hash = hashInternal(sibling, hash)
		}
		idx /= 2
	}
	return hash == root
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
