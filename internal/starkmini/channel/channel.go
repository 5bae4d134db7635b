// Package channel implements the Fiat-Shamir transcript that binds
// the prover's commitments to the verifier's challenges: state plus
// an append-only log of every interaction, exposed for debugging via
// Transcript, and the accumulated digest trail exposed via
// Commitments. Its hash function is pinned to BLAKE3 and its draw
// semantics are fixed: random field elements reject a drawn 0 and
// redraw, random integers do not.
package channel

import (
	"encoding/binary"
	"fmt"

	"github.com/plafer/stark-102/internal/starkmini"
	"github.com/plafer/stark-102/internal/starkmini/field17"
	"lukechampine.com/blake3"
)

// Salt is the fixed byte the channel's initial digest is derived
// from: BLAKE3(Salt). It is read from starkmini.DefaultParams rather
// than duplicated as its own literal.
var Salt = starkmini.DefaultParams().ChannelSalt

// Channel is a Fiat-Shamir transcript: a 32-byte digest plus a
// monotonically increasing draw counter.
type Channel struct {
	digest      [32]byte
	counter     uint64
	log         []string
	commitments [][32]byte
}

// New creates a channel with digest = BLAKE3(Salt), counter = 0.
func New() *Channel {
	c := &Channel{digest: blake3.Sum256([]byte{Salt})}
	c.log = append(c.log, fmt.Sprintf("init: digest=%x", c.digest))
	return c
}

// Commit folds bytes into the transcript: digest <- BLAKE3(digest ||
// bytes); counter resets to 0.
func (c *Channel) Commit(data []byte) {
	c.digest = blake3.Sum256(append(append([]byte(nil), c.digest[:]...), data...))
	c.counter = 0
	c.log = append(c.log, fmt.Sprintf("commit(%d bytes): digest=%x", len(data), c.digest))
}

// CommitDigest commits a 32-byte Merkle root or similar fixed-size
// digest, and appends it to Commitments - unlike Commit, which also
// folds in short non-digest values (such as the FRI terminal scalar)
// that never belong in that accumulated list.
func (c *Channel) CommitDigest(d [32]byte) {
	c.Commit(d[:])
	c.commitments = append(c.commitments, d)
}

// Commitments returns every digest committed via CommitDigest, in
// order - the accumulated trail a finished proof bundles its roots
// from.
func (c *Channel) Commitments() [][32]byte {
	return append([][32]byte(nil), c.commitments...)
}

// RandomElement draws v <- (first byte of BLAKE3(digest||counter)) mod
// 17, rejecting and redrawing (incrementing counter) whenever the
// drawn value would be 0: 0 has no discrete logarithm
// (field17.Element.Log rejects it), so the channel never hands one out
// as a "random field element" challenge.
func (c *Channel) RandomElement() field17.Element {
	for {
		v := c.draw()[0] % field17.Prime
		if v != 0 {
			c.log = append(c.log, fmt.Sprintf("random_element -> %d", v))
			return field17.New(int64(v))
		}
		c.log = append(c.log, "random_element -> 0, rejected, redrawing")
	}
}

// RandomInteger draws v <- (u64 from first 8 bytes of
// BLAKE3(digest||counter)) mod bound. Unlike RandomElement, there is
// no rejection sampling: 0 is a legitimate query index.
func (c *Channel) RandomInteger(bound uint64) uint64 {
	if bound == 0 {
		panic("channel: RandomInteger bound must be positive")
	}
	drawn := c.draw()
	raw := binary.LittleEndian.Uint64(drawn[:8])
	v := raw % bound
	c.log = append(c.log, fmt.Sprintf("random_integer(bound=%d) -> %d", bound, v))
	return v
}

// draw computes BLAKE3(digest || counter_le_bytes) and advances the
// counter, without interpreting the result - RandomElement and
// RandomInteger each interpret it differently.
func (c *Channel) draw() [32]byte {
	var counterBytes [8]byte
	binary.LittleEndian.PutUint64(counterBytes[:], c.counter)
	c.counter++
	buf := append(append([]byte(nil), c.digest[:]...), counterBytes[:]...)
	return blake3.Sum256(buf)
}

// Transcript returns a human-readable log of every commit/random_*
// call made on this channel, in order - useful for diagnosing the
// soundness-critical ordering of commits and challenges.
func (c *Channel) Transcript() []string {
	return append([]string(nil), c.log...)
}

// Digest returns the channel's current 32-byte state.
func (c *Channel) Digest() [32]byte {
	return c.digest
}
