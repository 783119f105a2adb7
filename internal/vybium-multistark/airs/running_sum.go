package airs

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/core"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/protocols"
)

// RunningSumAir is a two-phase AIR. The main trace is a single column of
// values; the auxiliary trace is a running sum seeded with a transcript
// challenge β: s_0 = β + v_0 and s_{i+1} = s_i + v_{i+1}.
//
// The auxiliary trace cannot be built before the main trace is committed,
// because β is sampled from the transcript after the main commitment. The
// transition constraint s' - s - v' is independent of β, so the verifier
// never needs the challenge itself.
type RunningSumAir struct{}

// Width returns the number of main trace columns.
func (RunningSumAir) Width() int {
	return 1
}

// AuxWidth returns the number of auxiliary columns.
func (RunningSumAir) AuxWidth() int {
	return 1
}

// NumChallenges returns how many transcript challenges the builder consumes.
func (RunningSumAir) NumChallenges() int {
	return 1
}

// BuildAuxTrace derives the challenge-seeded running sum column.
func (RunningSumAir) BuildAuxTrace(main *core.Matrix, challenges []core.XFieldElement) *core.XMatrix {
	beta := challenges[0]
	height := main.Height()
	column := make([]core.XFieldElement, height)
	column[0] = beta.AddBase(main.Get(0, 0))
	for i := 1; i < height; i++ {
		column[i] = column[i-1].AddBase(main.Get(i, 0))
	}
	return core.NewXMatrixFromColumn(column)
}

// Eval asserts the running-sum transition across both traces.
func (RunningSumAir) Eval(builder protocols.Builder) {
	main := builder.Main()
	aux := builder.Aux()

	sum := aux.GetLocal(0)
	nextSum := aux.GetNext(0)
	nextValue := main.GetNext(0)

	transition := builder.IsTransition()
	builder.AssertZeroExt(transition.Mul(nextSum.Sub(sum).Sub(nextValue)))
}

// GenerateRunningSumTrace produces a main trace of n consecutive values.
func GenerateRunningSumTrace(n int) (*core.Matrix, error) {
	trace, err := core.NewZeroMatrix(n, 1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		trace.Set(i, 0, field.New(uint64(i+1)))
	}
	return trace, nil
}
