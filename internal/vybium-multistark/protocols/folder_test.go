package protocols

import (
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/core"
)

func sampleConstraints() []core.XFieldElement {
	return []core.XFieldElement{
		core.NewXFieldElement(field.New(3), field.New(1)),
		core.NewXFieldElement(field.New(0), field.New(5)),
		core.NewXFieldElement(field.New(42), field.New(0)),
		core.NewXFieldElement(field.New(7), field.New(7)),
		core.NewXFieldElement(field.New(12345), field.New(999)),
	}
}

// The prover weights constraint i by α^(n-1-i) from a precomputed table; the
// verifier folds with Horner's rule. Both must produce the same value for
// the same assert sequence.
func TestFolderEquivalence(t *testing.T) {
	alpha := core.NewXFieldElement(field.New(0xabcdef), field.New(17))
	constraints := sampleConstraints()
	n := len(constraints)

	alphaPowers := make([]core.XFieldElement, n)
	power := core.XOne
	for i := 0; i < n; i++ {
		alphaPowers[i] = power
		power = power.Mul(alpha)
	}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		alphaPowers[i], alphaPowers[j] = alphaPowers[j], alphaPowers[i]
	}

	prover := &ProverFolder{AlphaPowers: alphaPowers, Accumulator: core.XZero}
	verifier := &VerifierFolder{Alpha: alpha, Accumulator: core.XZero}

	for _, c := range constraints {
		prover.AssertZero(c)
		verifier.AssertZero(c)
	}

	if !prover.Accumulator.Equal(verifier.Accumulator) {
		t.Errorf("prover accumulator %v != verifier accumulator %v",
			prover.Accumulator, verifier.Accumulator)
	}
}

func TestFolderEquivalenceMixedAsserts(t *testing.T) {
	alpha := core.NewXFieldElement(field.New(5), field.New(11))
	constraints := sampleConstraints()
	n := len(constraints)

	alphaPowers := make([]core.XFieldElement, n)
	power := core.XOne
	for i := range alphaPowers {
		alphaPowers[n-1-i] = power
		power = power.Mul(alpha)
	}

	prover := &ProverFolder{AlphaPowers: alphaPowers, Accumulator: core.XZero}
	verifier := &VerifierFolder{Alpha: alpha, Accumulator: core.XZero}

	// Alternate the two assert flavours; they must fold identically.
	for i, c := range constraints {
		if i%2 == 0 {
			prover.AssertZero(c)
			verifier.AssertZero(c)
		} else {
			prover.AssertZeroExt(c)
			verifier.AssertZeroExt(c)
		}
	}

	if !prover.Accumulator.Equal(verifier.Accumulator) {
		t.Error("mixed assert sequence diverged between folders")
	}
}

func TestTransitionWindowSize(t *testing.T) {
	folders := map[string]Builder{
		"prover":   &ProverFolder{},
		"verifier": &VerifierFolder{},
		"counting": &countingFolder{},
	}
	for name, folder := range folders {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic for window size 3")
				}
			}()
			folder.IsTransitionWindow(3)
		})
	}
}

func TestCountConstraints(t *testing.T) {
	air := countingTestAir{}
	if got := CountConstraints(air, air.Width(), 0); got != 3 {
		t.Errorf("expected 3 constraints, got %d", got)
	}
}

type countingTestAir struct {
	NoAuxTrace
}

func (countingTestAir) Width() int { return 2 }

func (countingTestAir) Eval(builder Builder) {
	main := builder.Main()
	builder.AssertZero(main.GetLocal(0))
	builder.AssertZero(main.GetLocal(1).Sub(main.GetNext(0)))
	builder.AssertZeroExt(main.GetNext(1))
}
