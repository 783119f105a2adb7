package airs

import (
	"math/rand"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/core"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/protocols"
)

// mulRepetitions is how many a*b=c triples each row carries.
const mulRepetitions = 20

// MulAir asserts a^(Degree-1) * b = c for every (a, b, c) triple in a row,
// plus a boundary constraint b = a^2 + 1 on the first row and a transition
// constraint next_a = a + mulRepetitions. Degrees 2 through 4 exercise the
// quotient domain's headroom.
type MulAir struct {
	protocols.NoAuxTrace

	// Degree of the multiplication constraint, 2 to 4.
	Degree uint64

	UsesBoundaryConstraints   bool
	UsesTransitionConstraints bool
}

// NewMulAir returns a MulAir of the given degree with all constraint groups
// enabled.
func NewMulAir(degree uint64) MulAir {
	return MulAir{
		Degree:                    degree,
		UsesBoundaryConstraints:   true,
		UsesTransitionConstraints: true,
	}
}

// Width returns the number of trace columns.
func (MulAir) Width() int {
	return mulRepetitions * 3
}

// Eval asserts the constraints of every repetition.
func (m MulAir) Eval(builder protocols.Builder) {
	main := builder.Main()
	for i := 0; i < mulRepetitions; i++ {
		start := i * 3
		a := main.GetLocal(start)
		b := main.GetLocal(start + 1)
		c := main.GetLocal(start + 2)

		builder.AssertZero(a.ExpU64(m.Degree - 1).Mul(b).Sub(c))

		if m.UsesBoundaryConstraints {
			builder.AssertZero(builder.IsFirstRow().Mul(a.Square().Add(core.XOne).Sub(b)))
		}
		if m.UsesTransitionConstraints {
			nextA := main.GetNext(start)
			builder.AssertZero(builder.IsTransition().Mul(a.AddBase(field.New(mulRepetitions)).Sub(nextA)))
		}
	}
}

// RandomValidTrace produces a satisfying trace of the given height using a
// fixed-seed generator so tests are reproducible.
func (m MulAir) RandomValidTrace(rows int) (*core.Matrix, error) {
	trace, err := core.NewZeroMatrix(rows, m.Width())
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(1))
	for row := 0; row < rows; row++ {
		for rep := 0; rep < mulRepetitions; rep++ {
			idx := row*mulRepetitions + rep
			var a field.Element
			if m.UsesTransitionConstraints {
				a = field.New(uint64(idx))
			} else {
				a = field.New(rng.Uint64() % field.P)
			}
			var b field.Element
			if m.UsesBoundaryConstraints && row == 0 {
				b = a.Mul(a).Add(field.One)
			} else {
				b = field.New(rng.Uint64() % field.P)
			}
			c := a.ModPow(m.Degree - 1).Mul(b)

			trace.Set(row, rep*3, a)
			trace.Set(row, rep*3+1, b)
			trace.Set(row, rep*3+2, c)
		}
	}
	return trace, nil
}
