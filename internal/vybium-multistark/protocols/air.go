package protocols

import (
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/core"
)

// BaseAir describes the shape of a main trace.
type BaseAir interface {
	// Width returns the number of main trace columns.
	Width() int
}

// Air is an algebraic intermediate representation: a set of polynomial
// constraints over adjacent trace rows. Eval must assert the same
// constraints in the same order on every call; the folding of constraints
// into one value relies on this.
type Air interface {
	BaseAir

	// Eval asserts the AIR's constraints against the rows exposed by the
	// builder. It is called once per evaluation point during proving and
	// once at the out-of-domain point during verification.
	Eval(builder Builder)
}

// AuxTraceBuilder is the capability to derive an auxiliary trace after the
// main trace has been committed. The challenges passed to BuildAuxTrace are
// sampled from the transcript after the main commitment is observed, so the
// auxiliary trace can depend on verifier randomness.
type AuxTraceBuilder interface {
	// AuxWidth returns the number of auxiliary columns; 0 disables the
	// auxiliary phase entirely.
	AuxWidth() int

	// NumChallenges returns how many extension field challenges the
	// builder consumes. Must be 0 when AuxWidth is 0.
	NumChallenges() int

	// BuildAuxTrace derives the auxiliary trace from the main trace and
	// the sampled challenges. The result must have exactly AuxWidth
	// columns and the same height as the main trace.
	BuildAuxTrace(main *core.Matrix, challenges []core.XFieldElement) *core.XMatrix
}

// MultiTraceAir is an AIR with the auxiliary trace capability. Single-phase
// AIRs satisfy it by embedding NoAuxTrace.
type MultiTraceAir interface {
	Air
	AuxTraceBuilder
}

// NoAuxTrace is the default single-phase implementation of AuxTraceBuilder.
// Embed it in AIRs that do not use an auxiliary trace.
type NoAuxTrace struct{}

// AuxWidth returns 0.
func (NoAuxTrace) AuxWidth() int { return 0 }

// NumChallenges returns 0.
func (NoAuxTrace) NumChallenges() int { return 0 }

// BuildAuxTrace panics; it must never be called when AuxWidth is 0.
func (NoAuxTrace) BuildAuxTrace(*core.Matrix, []core.XFieldElement) *core.XMatrix {
	panic("BuildAuxTrace called on an AIR without an auxiliary trace")
}
