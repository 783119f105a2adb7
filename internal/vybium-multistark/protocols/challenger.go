package protocols

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/core"
)

// Challenger is the Fiat-Shamir transcript. The prover observes every
// commitment and public input into it and samples challenges from it; the
// verifier replays exactly the same sequence, so both arrive at identical
// challenges without interaction.
//
// Two hash backends are supported: "tip5" chains Tip5 digests over field
// elements directly, "sha3" keeps a byte state and encodes elements as
// little-endian words.
type Challenger struct {
	hashFunc  string
	state     hash.Digest
	byteState []byte
}

// NewChallenger creates a challenger with a deterministic initial state.
func NewChallenger(hashFunc string) *Challenger {
	if hashFunc == "" {
		hashFunc = "tip5"
	}
	return &Challenger{
		hashFunc:  hashFunc,
		byteState: []byte{0},
	}
}

// Observe absorbs field elements into the transcript.
func (c *Challenger) Observe(values ...field.Element) {
	switch c.hashFunc {
	case "sha3":
		buf := make([]byte, 0, len(values)*8)
		for _, v := range values {
			buf = binary.LittleEndian.AppendUint64(buf, v.Value())
		}
		digest := sha3.Sum256(append(c.byteState, buf...))
		c.byteState = digest[:]
	default:
		input := make([]field.Element, 0, hash.DigestLen+len(values))
		input = append(input, c.state[:]...)
		input = append(input, values...)
		c.state = hash.HashVarlen(input)
	}
}

// ObserveDigest absorbs a commitment digest.
func (c *Challenger) ObserveDigest(d hash.Digest) {
	c.Observe(d[:]...)
}

// ObserveX absorbs an extension field element coefficient-wise.
func (c *Challenger) ObserveX(x core.XFieldElement) {
	c.Observe(x.C0, x.C1)
}

// ObserveXSlice absorbs a slice of extension field elements.
func (c *Challenger) ObserveXSlice(xs []core.XFieldElement) {
	for _, x := range xs {
		c.ObserveX(x)
	}
}

// Sample draws one base field element and advances the state.
func (c *Challenger) Sample() field.Element {
	switch c.hashFunc {
	case "sha3":
		digest := sha3.Sum256(c.byteState)
		c.byteState = digest[:]
		return field.New(binary.LittleEndian.Uint64(digest[:8]) % field.P)
	default:
		c.state = hash.HashVarlen(c.state[:])
		return c.state[0]
	}
}

// SampleX draws one extension field element and advances the state.
func (c *Challenger) SampleX() core.XFieldElement {
	switch c.hashFunc {
	case "sha3":
		c0 := c.Sample()
		c1 := c.Sample()
		return core.NewXFieldElement(c0, c1)
	default:
		c.state = hash.HashVarlen(c.state[:])
		return core.NewXFieldElement(c.state[0], c.state[1])
	}
}

// SampleXSlice draws n extension field elements in order.
func (c *Challenger) SampleXSlice(n int) []core.XFieldElement {
	out := make([]core.XFieldElement, n)
	for i := range out {
		out[i] = c.SampleX()
	}
	return out
}
