package protocols

import (
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"
)

func TestChallengerDeterminism(t *testing.T) {
	for _, hashFunc := range []string{"tip5", "sha3"} {
		t.Run(hashFunc, func(t *testing.T) {
			a := NewChallenger(hashFunc)
			b := NewChallenger(hashFunc)

			a.Observe(field.New(1), field.New(2))
			b.Observe(field.New(1), field.New(2))

			if !a.Sample().Equal(b.Sample()) {
				t.Error("identical observations produced different samples")
			}
			if !a.SampleX().Equal(b.SampleX()) {
				t.Error("identical states produced different extension samples")
			}
		})
	}
}

func TestChallengerDivergence(t *testing.T) {
	for _, hashFunc := range []string{"tip5", "sha3"} {
		t.Run(hashFunc, func(t *testing.T) {
			a := NewChallenger(hashFunc)
			b := NewChallenger(hashFunc)

			a.Observe(field.New(1))
			b.Observe(field.New(2))

			if a.Sample().Equal(b.Sample()) {
				t.Error("different observations produced the same sample")
			}
		})
	}
}

func TestChallengerSamplesAdvanceState(t *testing.T) {
	for _, hashFunc := range []string{"tip5", "sha3"} {
		t.Run(hashFunc, func(t *testing.T) {
			c := NewChallenger(hashFunc)
			c.Observe(field.New(7))

			first := c.SampleX()
			second := c.SampleX()
			if first.Equal(second) {
				t.Error("consecutive samples must differ")
			}
		})
	}
}

func TestChallengerObserveDigest(t *testing.T) {
	var digest hash.Digest
	for i := range digest {
		digest[i] = field.New(uint64(i + 1))
	}

	a := NewChallenger("tip5")
	b := NewChallenger("tip5")

	a.ObserveDigest(digest)
	b.Observe(digest[:]...)

	if !a.Sample().Equal(b.Sample()) {
		t.Error("ObserveDigest must match observing the digest's elements")
	}
}

func TestChallengerObserveOrderMatters(t *testing.T) {
	a := NewChallenger("tip5")
	b := NewChallenger("tip5")

	a.Observe(field.New(1))
	a.Observe(field.New(2))
	b.Observe(field.New(2))
	b.Observe(field.New(1))

	if a.Sample().Equal(b.Sample()) {
		t.Error("observation order must affect the transcript")
	}
}

func TestChallengerSampleXSlice(t *testing.T) {
	a := NewChallenger("tip5")
	b := NewChallenger("tip5")
	a.Observe(field.New(3))
	b.Observe(field.New(3))

	batch := a.SampleXSlice(3)
	if len(batch) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(batch))
	}
	for i, x := range batch {
		if !x.Equal(b.SampleX()) {
			t.Errorf("batched sample %d differs from sequential sampling", i)
		}
	}
}
