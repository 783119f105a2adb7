// Package vybiummultistark provides a multi-trace univariate STARK proving
// system over the Goldilocks field.
//
// The engine proves that an execution trace satisfies an algebraic
// intermediate representation (AIR). Proving runs in two phases: the main
// trace is committed first, then transcript challenges become available and
// an optional auxiliary trace - typically a permutation or lookup argument
// seeded with that randomness - is built and committed. A single folded
// quotient polynomial covers the constraints of both traces.
//
// # Quick Start
//
// Proving and verifying a computation:
//
//	config := vybiummultistark.DefaultConfig()
//
//	proof, err := vybiummultistark.Prove(config, air, trace, publicValues)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := vybiummultistark.Verify(config, air, proof, publicValues); err != nil {
//		log.Fatal(err)
//	}
//
// # Defining an AIR
//
// An AIR declares its trace width and asserts constraints against a
// builder. Single-phase AIRs embed NoAuxTrace:
//
//	type MyAir struct {
//		vybiummultistark.NoAuxTrace
//	}
//
//	func (MyAir) Width() int { return 2 }
//
//	func (MyAir) Eval(b vybiummultistark.Builder) {
//		main := b.Main()
//		b.AssertZero(b.IsFirstRow().Mul(main.GetLocal(0)))
//	}
//
// Two-phase AIRs additionally implement AuxWidth, NumChallenges, and
// BuildAuxTrace; the challenges passed to BuildAuxTrace are sampled after
// the main trace commitment, so the auxiliary trace can depend on verifier
// randomness.
//
// # Architecture
//
// - pkg/vybium-multistark/: Public API (this package)
// - internal/vybium-multistark/: Private implementation (not importable)
//
// The public API provides stable interfaces for configuration, proving,
// verification, and AIR definition. Implementation details in internal/
// can be refactored without breaking the public API.
//
// # References
//
// - STARK Paper: https://eprint.iacr.org/2018/046
//
// # License
//
// See LICENSE file in the repository root.
package vybiummultistark
