// Package airs holds the built-in AIRs used by the command line tool, the
// examples, and the integration tests.
package airs

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/core"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/protocols"
)

const numFibonacciCols = 2

// FibonacciAir constrains a two-column Fibonacci trace: the first row is
// (0, 1) and every transition satisfies left' = right, right' = left + right.
type FibonacciAir struct {
	protocols.NoAuxTrace
}

// Width returns the number of trace columns.
func (FibonacciAir) Width() int {
	return numFibonacciCols
}

// Eval asserts the boundary and transition constraints.
func (FibonacciAir) Eval(builder protocols.Builder) {
	main := builder.Main()
	left := main.GetLocal(0)
	right := main.GetLocal(1)
	nextLeft := main.GetNext(0)
	nextRight := main.GetNext(1)

	first := builder.IsFirstRow()
	builder.AssertZero(first.Mul(left))
	builder.AssertZero(first.Mul(right.Sub(core.XOne)))

	transition := builder.IsTransition()
	builder.AssertZero(transition.Mul(right.Sub(nextLeft)))
	builder.AssertZero(transition.Mul(left.Add(right).Sub(nextRight)))
}

// GenerateFibonacciTrace produces n rows of the Fibonacci sequence starting
// from (a, b). n must be a power of two.
func GenerateFibonacciTrace(a, b uint64, n int) (*core.Matrix, error) {
	trace, err := core.NewZeroMatrix(n, numFibonacciCols)
	if err != nil {
		return nil, err
	}
	trace.Set(0, 0, field.New(a))
	trace.Set(0, 1, field.New(b))
	for i := 1; i < n; i++ {
		trace.Set(i, 0, trace.Get(i-1, 1))
		trace.Set(i, 1, trace.Get(i-1, 0).Add(trace.Get(i-1, 1)))
	}
	return trace, nil
}
